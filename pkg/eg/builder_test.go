package eg

import (
	"errors"
	"testing"
)

func TestBuilderEmptyGraph(t *testing.T) {
	g, err := NewBuilder().Graph()
	if err != nil {
		t.Fatalf("Graph: %v", err)
	}
	if g.VertexCount()+g.EdgeCount()+g.CutCount() != 0 {
		t.Error("empty builder should seal an empty graph")
	}
	if !g.IsContext(g.Sheet()) {
		t.Error("sheet should be a context")
	}
}

func TestBuilderErrors(t *testing.T) {
	tests := []struct {
		name     string
		build    func(b *Builder) error
		sentinel error
	}{
		{
			name: "UnknownContext",
			build: func(b *Builder) error {
				return b.AddVertex("c_missing", Generic())
			},
			sentinel: ErrUnknownContext,
		},
		{
			name: "EmptyID",
			build: func(b *Builder) error {
				return b.AddVertex(b.Sheet(), Vertex{})
			},
			sentinel: ErrInvalidElementID,
		},
		{
			name: "DuplicateID",
			build: func(b *Builder) error {
				v := Generic()
				if err := b.AddVertex(b.Sheet(), v); err != nil {
					return err
				}
				return b.AddVertex(b.Sheet(), v)
			},
			sentinel: ErrDuplicateElementID,
		},
		{
			name: "UnknownArgument",
			build: func(b *Builder) error {
				return b.AddEdge(b.Sheet(), NewEdge(), "p", []ID{"v_missing"})
			},
			sentinel: ErrUnknownArgumentVertex,
		},
		{
			name: "DeleteReferencedVertex",
			build: func(b *Builder) error {
				v := Generic()
				if err := b.AddVertex(b.Sheet(), v); err != nil {
					return err
				}
				if err := b.AddEdge(b.Sheet(), NewEdge(), "p", []ID{v.ID}); err != nil {
					return err
				}
				return b.DeleteVertex(v.ID)
			},
			sentinel: ErrVertexInUse,
		},
		{
			name: "DeleteNonEmptyCut",
			build: func(b *Builder) error {
				c := NewCut()
				if err := b.AddCut(b.Sheet(), c); err != nil {
					return err
				}
				if err := b.AddVertex(c.ID, Generic()); err != nil {
					return err
				}
				return b.DeleteCut(c.ID)
			},
			sentinel: ErrCutNotEmpty,
		},
		{
			name: "DeleteUnknownElement",
			build: func(b *Builder) error {
				return b.DeleteEdge("e_missing")
			},
			sentinel: ErrUnknownElement,
		},
		{
			name: "ReparentIntoOwnSubtree",
			build: func(b *Builder) error {
				outer, inner := NewCut(), NewCut()
				if err := b.AddCut(b.Sheet(), outer); err != nil {
					return err
				}
				if err := b.AddCut(outer.ID, inner); err != nil {
					return err
				}
				return b.Reparent(outer.ID, inner.ID)
			},
			sentinel: ErrContainmentCycle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build(NewBuilder())
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("err = %v, want %v", err, tt.sentinel)
			}
		})
	}
}

func TestReparentMovesSubtree(t *testing.T) {
	b := NewBuilder()
	c := NewCut()
	if err := b.AddCut(b.Sheet(), c); err != nil {
		t.Fatal(err)
	}
	v := Generic()
	if err := b.AddVertex(b.Sheet(), v); err != nil {
		t.Fatal(err)
	}
	if err := b.Reparent(v.ID, c.ID); err != nil {
		t.Fatal(err)
	}
	g, err := b.Graph()
	if err != nil {
		t.Fatal(err)
	}

	ctx, err := g.ContextOf(v.ID)
	if err != nil {
		t.Fatal(err)
	}
	if ctx != c.ID {
		t.Errorf("ContextOf = %s, want the cut", ctx.Short())
	}
	area, _ := g.DirectArea(g.Sheet())
	for _, id := range area {
		if id == v.ID {
			t.Error("vertex should have left the sheet area")
		}
	}
}

// Deriving a new graph from an existing one must never change the source:
// the snapshot taken before the derivation still describes the original.
func TestBuilderFromLeavesSourceUntouched(t *testing.T) {
	b := NewBuilder()
	v := Generic()
	if err := b.AddVertex(b.Sheet(), v); err != nil {
		t.Fatal(err)
	}
	original, err := b.Graph()
	if err != nil {
		t.Fatal(err)
	}

	wantVerts := original.VertexCount()
	wantArea, _ := original.DirectArea(original.Sheet())

	derived := NewBuilderFrom(original)
	if err := derived.AddVertex(derived.Sheet(), Generic()); err != nil {
		t.Fatal(err)
	}
	c := NewCut()
	if err := derived.AddCut(derived.Sheet(), c); err != nil {
		t.Fatal(err)
	}
	if err := derived.Reparent(v.ID, c.ID); err != nil {
		t.Fatal(err)
	}
	g2, err := derived.Graph()
	if err != nil {
		t.Fatal(err)
	}

	if original.VertexCount() != wantVerts {
		t.Errorf("source VertexCount changed to %d", original.VertexCount())
	}
	area, _ := original.DirectArea(original.Sheet())
	if len(area) != len(wantArea) {
		t.Errorf("source area changed: %d items, want %d", len(area), len(wantArea))
	}
	ctx, _ := original.ContextOf(v.ID)
	if ctx != original.Sheet() {
		t.Error("source containment changed by derived reparent")
	}

	if g2.VertexCount() != wantVerts+1 || g2.CutCount() != 1 {
		t.Error("derived graph missing its edits")
	}
}

func TestValidateAcceptsBuiltGraphs(t *testing.T) {
	g, _, _, _, _ := buildNested(t)
	if err := g.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}
