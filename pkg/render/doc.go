// Package render provides visualization rendering for existential graphs.
//
// # Overview
//
// This package contains the rendering pipeline that transforms existential
// graphs into visual outputs.
//
// # Diagrams
//
// The [diagram] subpackage renders graphs through Graphviz. Cuts become
// dashed clusters, generic vertices become Peirce's heavy dots, constants
// become labeled boxes, and predicate arguments become numbered connecting
// lines.
//
//	dot := diagram.ToDOT(g, diagram.Options{})
//	svg, err := diagram.RenderSVG(ctx, dot)
//	png, err := diagram.RenderPNG(ctx, dot)
//
// [diagram]: github.com/mhalvorsen/cutsheet/pkg/render/diagram
package render
