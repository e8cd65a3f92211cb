package diagram

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/mhalvorsen/cutsheet/pkg/eg"
)

// Options configures diagram rendering.
type Options struct {
	// Detailed includes element ids in labels.
	// When false, only relation names and constant labels are shown.
	Detailed bool
}

// ToDOT converts an existential graph to Graphviz DOT format.
// The resulting DOT string can be rendered with [RenderSVG] or [RenderPNG].
//
// Cuts are emitted as nested clusters with dashed borders, so the visual
// nesting matches the area mapping exactly: every cut is one cluster and
// its cluster encloses precisely its full context.
func ToDOT(g *eg.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph EG {\n")
	buf.WriteString("  compound=true;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontsize=12];\n")
	buf.WriteString("  edge [color=\"#333333\"];\n")
	buf.WriteString("\n")

	writeArea(&buf, g, g.Sheet(), "  ", opts)

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		argv, _ := g.Arguments(e.ID)
		for i, arg := range argv {
			if len(argv) > 1 {
				fmt.Fprintf(&buf, "  %q -- %q [label=\"%d\", fontsize=9];\n", e.ID, arg, i+1)
			} else {
				fmt.Fprintf(&buf, "  %q -- %q;\n", e.ID, arg)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// writeArea emits the nodes of one context and a nested cluster per cut.
func writeArea(buf *bytes.Buffer, g *eg.Graph, ctx eg.ID, indent string, opts Options) {
	area, err := g.DirectArea(ctx)
	if err != nil {
		return
	}
	for _, id := range area {
		if v, ok := g.Vertex(id); ok {
			fmt.Fprintf(buf, "%s%q [%s];\n", indent, id, strings.Join(vertexAttrs(v, opts), ", "))
			continue
		}
		if _, ok := g.Edge(id); ok {
			rel, _ := g.Relation(id)
			label := rel
			if opts.Detailed {
				label = fmt.Sprintf("%s\n%s", rel, id.Short())
			}
			fmt.Fprintf(buf, "%s%q [shape=box, style=rounded, label=%q];\n", indent, id, label)
			continue
		}
		if _, ok := g.Cut(id); ok {
			fmt.Fprintf(buf, "%ssubgraph \"cluster_%s\" {\n", indent, id)
			fmt.Fprintf(buf, "%s  style=dashed;\n", indent)
			fmt.Fprintf(buf, "%s  margin=12;\n", indent)
			writeArea(buf, g, id, indent+"  ", opts)
			fmt.Fprintf(buf, "%s}\n", indent)
		}
	}
}

func vertexAttrs(v eg.Vertex, opts Options) []string {
	if v.Constant {
		label := v.Label
		if opts.Detailed {
			label = fmt.Sprintf("%s\n%s", v.Label, v.ID.Short())
		}
		return []string{"shape=box", fmt.Sprintf("label=%q", label), "style=filled", "fillcolor=\"#eeeeee\""}
	}
	attrs := []string{"shape=point", "width=0.12"}
	if opts.Detailed {
		attrs = append(attrs, fmt.Sprintf("xlabel=%q", v.ID.Short()))
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
