package egjson

import (
	"bytes"
	"path/filepath"
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

// Export then import must preserve every element id, the argument order of
// every edge, and the area of every context.
func TestRoundTripPreservesIDs(t *testing.T) {
	inputs := []string{
		"(Human *x)",
		"(man *x) ~[ (mortal x) ]",
		`(gives *x *y *z) (person x) (person "Jane")`,
		"~[ ~[ ] ] *u",
		"",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			g := mustParse(t, input)
			back, err := ToGraph(FromGraph(g))
			if err != nil {
				t.Fatalf("ToGraph: %v", err)
			}
			if err := back.Validate(); err != nil {
				t.Fatalf("Validate: %v", err)
			}

			if back.Sheet() != g.Sheet() {
				t.Errorf("sheet id changed: %s vs %s", g.Sheet(), back.Sheet())
			}
			for _, v := range g.Vertices() {
				bv, ok := back.Vertex(v.ID)
				if !ok {
					t.Fatalf("vertex %s lost", v.ID.Short())
				}
				if bv.Label != v.Label || bv.Constant != v.Constant {
					t.Errorf("vertex %s changed: %+v vs %+v", v.ID.Short(), v, bv)
				}
			}
			for _, e := range g.Edges() {
				rel, _ := g.Relation(e.ID)
				bRel, err := back.Relation(e.ID)
				if err != nil || bRel != rel {
					t.Fatalf("edge %s relation changed: %q vs %q", e.ID.Short(), rel, bRel)
				}
				argv, _ := g.Arguments(e.ID)
				bArgv, _ := back.Arguments(e.ID)
				if len(argv) != len(bArgv) {
					t.Fatalf("edge %s arity changed", e.ID.Short())
				}
				for i := range argv {
					if argv[i] != bArgv[i] {
						t.Errorf("edge %s argument %d changed", e.ID.Short(), i)
					}
				}
			}
			for _, c := range g.Cuts() {
				area, _ := g.DirectArea(c.ID)
				bArea, err := back.DirectArea(c.ID)
				if err != nil {
					t.Fatalf("cut %s lost", c.ID.Short())
				}
				if len(area) != len(bArea) {
					t.Fatalf("cut %s area size changed", c.ID.Short())
				}
				for i := range area {
					if area[i] != bArea[i] {
						t.Errorf("cut %s area order changed", c.ID.Short())
					}
				}
			}
		})
	}
}

func TestMarshalReadGraph(t *testing.T) {
	g := mustParse(t, "(man *x) ~[ (mortal x) ]")
	data, err := MarshalGraph(g)
	if err != nil {
		t.Fatalf("MarshalGraph: %v", err)
	}

	back, err := ReadGraph(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadGraph: %v", err)
	}
	if back.VertexCount() != 1 || back.EdgeCount() != 2 || back.CutCount() != 1 {
		t.Errorf("counts = %d/%d/%d, want 1/2/1",
			back.VertexCount(), back.EdgeCount(), back.CutCount())
	}
}

func TestWriteReadGraphFile(t *testing.T) {
	g := mustParse(t, `(owns "Jane" *x) (boat x)`)
	path := filepath.Join(t.TempDir(), "graph.json")

	if err := WriteGraphFile(g, path); err != nil {
		t.Fatalf("WriteGraphFile: %v", err)
	}
	back, err := ReadGraphFile(path)
	if err != nil {
		t.Fatalf("ReadGraphFile: %v", err)
	}
	if back.VertexCount() != g.VertexCount() || back.EdgeCount() != g.EdgeCount() {
		t.Error("counts changed over file round trip")
	}
}

func TestReadGraphFileMissing(t *testing.T) {
	if _, err := ReadGraphFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadGraphInvalidJSON(t *testing.T) {
	if _, err := ReadGraph(bytes.NewReader([]byte("{not json"))); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestToGraphRejectsCorruptInput(t *testing.T) {
	tests := []struct {
		name string
		data Graph
	}{
		{
			name: "NoSheet",
			data: Graph{},
		},
		{
			name: "VertexNotPlaced",
			data: Graph{
				Sheet:    "sheet:1",
				Vertices: []Vertex{{ID: "vertex:1"}},
			},
		},
		{
			name: "EdgeNotPlaced",
			data: Graph{
				Sheet: "sheet:1",
				Edges: []Edge{{ID: "edge:1", Relation: "p", Args: []string{}}},
			},
		},
		{
			name: "DanglingEdgeArgument",
			data: Graph{
				Sheet: "sheet:1",
				Edges: []Edge{{ID: "edge:1", Relation: "p", Args: []string{"vertex:ghost"}}},
				Areas: []Area{{Context: "sheet:1", Elements: []string{"edge:1"}}},
			},
		},
		{
			name: "DoubleContainment",
			data: Graph{
				Sheet:    "sheet:1",
				Vertices: []Vertex{{ID: "vertex:1"}},
				Cuts:     []Cut{{ID: "cut:1"}},
				Areas: []Area{
					{Context: "sheet:1", Elements: []string{"vertex:1", "cut:1"}},
					{Context: "cut:1", Elements: []string{"vertex:1"}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToGraph(tt.data)
			if err == nil {
				t.Fatal("expected error")
			}
			if code := egerr.GetCode(err); code != egerr.ErrCodeInvalidInput {
				t.Errorf("error code = %s, want %s", code, egerr.ErrCodeInvalidInput)
			}
		})
	}
}
