package transform_test

import (
	"testing"

	"github.com/mhalvorsen/cutsheet/pkg/eg"
	"github.com/mhalvorsen/cutsheet/pkg/eg/transform"
	egerr "github.com/mhalvorsen/cutsheet/pkg/errors"
)

func TestDeIterateDuplicateEdge(t *testing.T) {
	g := mustParse(t, "(p *x) (p x)")
	edges := findEdges(t, g, "p")
	if len(edges) != 2 {
		t.Fatalf("edges = %d, want 2", len(edges))
	}

	out, err := transform.DeIterate(g, transform.NewSelection(edges[1]))
	if err != nil {
		t.Fatalf("DeIterate: %v", err)
	}
	checkCounts(t, out, 1, 1, 0)
}

func TestDeIterateCopyInsideCut(t *testing.T) {
	// (man x) inside the cut duplicates (man *x) on the sheet along the
	// same line of identity, so it can be withdrawn.
	g := mustParse(t, "(man *x) ~[ (man x) (mortal x) ]")
	var inner eg.ID
	for _, id := range findEdges(t, g, "man") {
		ctx, err := g.ContextOf(id)
		if err != nil {
			t.Fatalf("ContextOf: %v", err)
		}
		if ctx != g.Sheet() {
			inner = id
		}
	}
	if inner == "" {
		t.Fatal("no man edge inside the cut")
	}

	out, err := transform.DeIterate(g, transform.NewSelection(inner))
	if err != nil {
		t.Fatalf("DeIterate: %v", err)
	}
	checkCounts(t, out, 1, 2, 1)
}

func TestDeIterateDetachedCopy(t *testing.T) {
	// The second (p *y) carries its own vertex. Selecting the vertex too
	// makes the pair a self-contained copy of (p *x), which matches under
	// isomorphism.
	g := mustParse(t, "(p *x) (p *y)")
	edges := findEdges(t, g, "p")
	sel := transform.NewSelection(edges[1], argAt(t, g, edges[1], 0))

	out, err := transform.DeIterate(g, sel)
	if err != nil {
		t.Fatalf("DeIterate: %v", err)
	}
	checkCounts(t, out, 1, 1, 0)
}

func TestDeIterateCutCopy(t *testing.T) {
	g := mustParse(t, "~[ (p *x) ] ~[ (p *y) ]")
	cuts := g.Cuts()
	if len(cuts) != 2 {
		t.Fatalf("cuts = %d, want 2", len(cuts))
	}
	target := cuts[1].ID
	area, err := g.DirectArea(target)
	if err != nil {
		t.Fatalf("DirectArea: %v", err)
	}
	sel := transform.NewSelection(append([]eg.ID{target}, area...)...)

	out, err := transform.DeIterate(g, sel)
	if err != nil {
		t.Fatalf("DeIterate: %v", err)
	}
	checkCounts(t, out, 1, 1, 1)
}

func TestDeIterateErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		sel   func(t *testing.T, g *eg.Graph) transform.Selection
		code  egerr.Code
	}{
		{
			name:  "NoWitness",
			input: "~[ (p *x) ]",
			sel: func(t *testing.T, g *eg.Graph) transform.Selection {
				return transform.NewSelection(findEdge(t, g, "p"))
			},
			code: egerr.ErrCodeIllegalContext,
		},
		{
			name: "BoundaryVertexDiffers",
			// Selecting only the second edge leaves its vertex as a
			// boundary: the witness would have to share that exact line of
			// identity, and (p *x) does not.
			input: "(p *x) (p *y)",
			sel: func(t *testing.T, g *eg.Graph) transform.Selection {
				return transform.NewSelection(findEdges(t, g, "p")[1])
			},
			code: egerr.ErrCodeIllegalContext,
		},
		{
			name:  "RelationNameDiffers",
			input: "(p *x) (q x)",
			sel: func(t *testing.T, g *eg.Graph) transform.Selection {
				return transform.NewSelection(findEdge(t, g, "q"))
			},
			code: egerr.ErrCodeIllegalContext,
		},
		{
			name:  "WitnessBelowNotAbove",
			input: "(p *x) ~[ (p x) ]",
			sel: func(t *testing.T, g *eg.Graph) transform.Selection {
				for _, id := range findEdges(t, g, "p") {
					ctx, err := g.ContextOf(id)
					if err != nil {
						t.Fatalf("ContextOf: %v", err)
					}
					if ctx == g.Sheet() {
						return transform.NewSelection(id)
					}
				}
				t.Fatal("no sheet edge")
				return nil
			},
			code: egerr.ErrCodeIllegalContext,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustParse(t, tt.input)
			_, err := transform.DeIterate(g, tt.sel(t, g))
			wantCode(t, err, tt.code)
		})
	}
}
