// Package pkg provides the core libraries for Cutsheet, a toolkit for
// Peirce's existential graphs.
//
// # Overview
//
// Cutsheet models existential graphs as immutable hypergraphs and moves
// between three representations: EGIF text, a JSON wire format, and
// Graphviz diagrams. The pkg directory is organized into five main areas:
//
//  1. [eg] - The graph model (vertices, edges, cuts, areas) and its builder
//  2. [eg/transform] - Peirce's transformation rules over the model
//  3. [egif], [egjson] - Text and JSON codecs
//  4. [render] - Diagram generation via Graphviz
//  5. [pipeline] - Orchestration (parse → transform → render)
//
// # Architecture
//
// The typical data flow through Cutsheet:
//
//	EGIF text
//	     ↓
//	[egif] package (parse to an immutable graph)
//	     ↓
//	[eg/transform] package (apply inference rules)
//	     ↓
//	[render/diagram] package (DOT generation, Graphviz rendering)
//	     ↓
//	EGIF/JSON/DOT/SVG/PNG output
//
// # Quick Start
//
// Parse a graph, apply a rule, and render it:
//
//	import (
//	    "context"
//	    "github.com/mhalvorsen/cutsheet/pkg/eg/transform"
//	    "github.com/mhalvorsen/cutsheet/pkg/egif"
//	    "github.com/mhalvorsen/cutsheet/pkg/render/diagram"
//	)
//
//	// 1. Parse EGIF text
//	g, _ := egif.Parse("~[ (man *x) ~[ (mortal x) ] ]")
//
//	// 2. Apply a transformation rule
//	dc, _ := transform.AddDoubleCut(g, g.Sheet(), nil)
//
//	// 3. Render to SVG
//	dot := diagram.ToDOT(dc.Graph, diagram.Options{})
//	svg, _ := diagram.RenderSVG(context.Background(), dot)
//
// # Main Packages
//
// [eg] holds the immutable graph model. Graphs are values: every
// transformation produces a new graph and leaves its input untouched.
// Mutation happens through a single-use Builder.
//
// [eg/transform] implements the eight canonical rules: erasure, insertion,
// iteration, de-iteration, the double-cut pair, and the isolated-vertex
// pair. Each rule checks its legality preconditions before building the
// result.
//
// [egif] is the bidirectional EGIF codec; [egjson] is the lossless JSON
// projection used by the HTTP API and file persistence.
//
// [corpus] loads TOML collections of named example graphs.
//
// [pipeline] ties the stages together for the CLI and the server, with a
// content-addressed artifact cache ([cache]) in front of Graphviz.
//
// [errors] carries the uniform error taxonomy: every failure exposes a
// stable machine-readable code.
package pkg
