package transform_test

import (
	"testing"

	"github.com/mhalvorsen/cutsheet/pkg/eg"
	"github.com/mhalvorsen/cutsheet/pkg/eg/transform"
	egerr "github.com/mhalvorsen/cutsheet/pkg/errors"
)

func TestEraseEdgeOnSheet(t *testing.T) {
	g := mustParse(t, "(man *x) (mortal x)")
	sel := transform.NewSelection(findEdge(t, g, "mortal"))

	out, err := transform.Erase(g, sel)
	if err != nil {
		t.Fatalf("Erase: %v", err)
	}
	checkCounts(t, out, 1, 1, 0)
	findEdge(t, out, "man")

	// The source graph is untouched.
	checkCounts(t, g, 1, 2, 0)
}

func TestEraseSubgraphWithVertex(t *testing.T) {
	g := mustParse(t, "(man *x) (mortal x)")
	man := findEdge(t, g, "man")
	mortal := findEdge(t, g, "mortal")
	sel := transform.NewSelection(argAt(t, g, man, 0), man, mortal)

	out, err := transform.Erase(g, sel)
	if err != nil {
		t.Fatalf("Erase: %v", err)
	}
	checkCounts(t, out, 0, 0, 0)
}

func TestEraseWholeCut(t *testing.T) {
	g := mustParse(t, "(p *x) ~[ (q x) ]")
	cut := findCut(t, g, 1)
	q := findEdge(t, g, "q")

	out, err := transform.Erase(g, transform.NewSelection(cut, q))
	if err != nil {
		t.Fatalf("Erase: %v", err)
	}
	checkCounts(t, out, 1, 1, 0)
}

func TestEraseDoublyNestedIsPositive(t *testing.T) {
	// Depth two is a positive context again, so erasure there is legal.
	g := mustParse(t, "~[ ~[ (p *x) ] ]")
	p := findEdge(t, g, "p")
	sel := transform.NewSelection(p, argAt(t, g, p, 0))

	out, err := transform.Erase(g, sel)
	if err != nil {
		t.Fatalf("Erase: %v", err)
	}
	checkCounts(t, out, 0, 0, 2)
}

func TestEraseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		sel   func(t *testing.T, g *eg.Graph) transform.Selection
		code  egerr.Code
	}{
		{
			name:  "NegativeContext",
			input: "~[ (p *x) ]",
			sel: func(t *testing.T, g *eg.Graph) transform.Selection {
				p := findEdge(t, g, "p")
				return transform.NewSelection(p, argAt(t, g, p, 0))
			},
			code: egerr.ErrCodeIllegalContext,
		},
		{
			name:  "VertexWithoutIncidentEdges",
			input: "(p *x)",
			sel: func(t *testing.T, g *eg.Graph) transform.Selection {
				return transform.NewSelection(argAt(t, g, findEdge(t, g, "p"), 0))
			},
			code: egerr.ErrCodeStructuralSelection,
		},
		{
			name:  "CutWithoutItsContents",
			input: "~[ (p *x) ]",
			sel: func(t *testing.T, g *eg.Graph) transform.Selection {
				return transform.NewSelection(findCut(t, g, 1))
			},
			code: egerr.ErrCodeStructuralSelection,
		},
		{
			name:  "Sheet",
			input: "(p *x)",
			sel: func(t *testing.T, g *eg.Graph) transform.Selection {
				return transform.NewSelection(g.Sheet())
			},
			code: egerr.ErrCodeStructuralSelection,
		},
		{
			name:  "Empty",
			input: "(p *x)",
			sel: func(t *testing.T, g *eg.Graph) transform.Selection {
				return transform.Selection{}
			},
			code: egerr.ErrCodeStructuralSelection,
		},
		{
			name:  "UnknownElement",
			input: "(p *x)",
			sel: func(t *testing.T, g *eg.Graph) transform.Selection {
				return transform.NewSelection(eg.NewVertexID())
			},
			code: egerr.ErrCodeElementNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustParse(t, tt.input)
			_, err := transform.Erase(g, tt.sel(t, g))
			wantCode(t, err, tt.code)
		})
	}
}
