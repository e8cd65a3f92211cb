package transform_test

import (
	"testing"

	"github.com/mhalvorsen/cutsheet/pkg/eg"
	"github.com/mhalvorsen/cutsheet/pkg/egif"
	egerr "github.com/mhalvorsen/cutsheet/pkg/errors"
)

func mustParse(t *testing.T, text string) *eg.Graph {
	t.Helper()
	g, err := egif.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	return g
}

// findEdge returns the first edge whose relation carries the given name.
func findEdge(t *testing.T, g *eg.Graph, name string) eg.ID {
	t.Helper()
	for _, e := range g.Edges() {
		rel, err := g.Relation(e.ID)
		if err != nil {
			t.Fatalf("Relation: %v", err)
		}
		if rel == name {
			return e.ID
		}
	}
	t.Fatalf("no edge named %q", name)
	return ""
}

// findEdges returns every edge with the given relation name.
func findEdges(t *testing.T, g *eg.Graph, name string) []eg.ID {
	t.Helper()
	var out []eg.ID
	for _, e := range g.Edges() {
		rel, err := g.Relation(e.ID)
		if err != nil {
			t.Fatalf("Relation: %v", err)
		}
		if rel == name {
			out = append(out, e.ID)
		}
	}
	return out
}

// findCut returns the first cut at the given nesting depth.
func findCut(t *testing.T, g *eg.Graph, depth int) eg.ID {
	t.Helper()
	for _, c := range g.Cuts() {
		d, err := g.Depth(c.ID)
		if err != nil {
			t.Fatalf("Depth: %v", err)
		}
		if d == depth {
			return c.ID
		}
	}
	t.Fatalf("no cut at depth %d", depth)
	return ""
}

// argAt returns the vertex at position i of the edge's argument sequence.
func argAt(t *testing.T, g *eg.Graph, edge eg.ID, i int) eg.ID {
	t.Helper()
	argv, err := g.Arguments(edge)
	if err != nil {
		t.Fatalf("Arguments: %v", err)
	}
	if i >= len(argv) {
		t.Fatalf("edge has %d arguments, want index %d", len(argv), i)
	}
	return argv[i]
}

// isolatedVertex returns the one vertex with no incident edges.
func isolatedVertex(t *testing.T, g *eg.Graph) eg.ID {
	t.Helper()
	for _, v := range g.Vertices() {
		ok, err := g.IsIsolated(v.ID)
		if err != nil {
			t.Fatalf("IsIsolated: %v", err)
		}
		if ok {
			return v.ID
		}
	}
	t.Fatal("no isolated vertex")
	return ""
}

// wantCode fails unless err carries the expected code.
func wantCode(t *testing.T, err error, code egerr.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %s, got nil", code)
	}
	if got := egerr.GetCode(err); got != code {
		t.Fatalf("error code = %s, want %s (err: %v)", got, code, err)
	}
}

// checkCounts fails unless the graph holds exactly the given element counts.
func checkCounts(t *testing.T, g *eg.Graph, vertices, edges, cuts int) {
	t.Helper()
	if g.VertexCount() != vertices || g.EdgeCount() != edges || g.CutCount() != cuts {
		t.Fatalf("counts = %d/%d/%d, want %d/%d/%d",
			g.VertexCount(), g.EdgeCount(), g.CutCount(), vertices, edges, cuts)
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
