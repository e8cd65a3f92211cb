package transform

import (
	"slices"

	"github.com/mhalvorsen/cutsheet/pkg/eg"
	egerr "github.com/mhalvorsen/cutsheet/pkg/errors"
)

// Selection names the elements a rule operates on. Order is irrelevant;
// duplicates are ignored.
type Selection []eg.ID

// NewSelection builds a selection from element ids.
func NewSelection(ids ...eg.ID) Selection { return Selection(ids) }

// selection is a validated Selection: a set plus its root elements (those
// not contained inside any selected cut).
type selection struct {
	set   map[eg.ID]bool
	roots []eg.ID
}

func (s *selection) contains(id eg.ID) bool { return s.set[id] }

// validateSelection checks that the selection is a proper subgraph:
//
//   - every id names an existing vertex, edge, or cut (not a context used
//     as a container; the sheet is never selectable)
//   - context-consistent: a selected cut implies its entire full context
//     is selected, so no element is orphaned inside a removed boundary
//   - edge-complete: a selected vertex implies every edge referencing it
//     is selected, so no argument sequence is left dangling
//
// These structural checks run before any rule-specific precondition.
func validateSelection(g *eg.Graph, sel Selection) (*selection, error) {
	if len(sel) == 0 {
		return nil, egerr.New(egerr.ErrCodeStructuralSelection, "empty selection")
	}

	set := make(map[eg.ID]bool, len(sel))
	for _, id := range sel {
		if id == g.Sheet() {
			return nil, egerr.New(egerr.ErrCodeStructuralSelection, "sheet of assertion cannot be selected")
		}
		if !g.Contains(id) {
			return nil, egerr.New(egerr.ErrCodeElementNotFound, "element %s not in graph", id.Short())
		}
		set[id] = true
	}

	// Context consistency: selecting a cut selects everything inside it.
	for id := range set {
		if _, isCut := g.Cut(id); !isCut {
			continue
		}
		contents, err := g.FullContext(id)
		if err != nil {
			return nil, err
		}
		for _, inner := range contents {
			if !set[inner] {
				return nil, egerr.New(egerr.ErrCodeStructuralSelection,
					"selection includes cut %s but not its content %s", id.Short(), inner.Short())
			}
		}
	}

	// Edge completeness: selecting a vertex selects its incident edges.
	for id := range set {
		if _, isVertex := g.Vertex(id); !isVertex {
			continue
		}
		incident, err := g.IncidentEdges(id)
		if err != nil {
			return nil, err
		}
		for _, edgeID := range incident {
			if !set[edgeID] {
				return nil, egerr.New(egerr.ErrCodeStructuralSelection,
					"selection includes vertex %s but not its incident edge %s", id.Short(), edgeID.Short())
			}
		}
	}

	// Roots: selected elements whose containing context is unselected.
	var roots []eg.ID
	for id := range set {
		ctx, err := g.ContextOf(id)
		if err != nil {
			return nil, err
		}
		if !set[ctx] {
			roots = append(roots, id)
		}
	}
	slices.Sort(roots)

	return &selection{set: set, roots: roots}, nil
}

// singleRootContext returns the one context directly containing every root
// element, or a structural error if the roots span several contexts.
// Iteration and de-iteration need a well-defined source context.
func (s *selection) singleRootContext(g *eg.Graph) (eg.ID, error) {
	var ctx eg.ID
	for i, id := range s.roots {
		c, err := g.ContextOf(id)
		if err != nil {
			return "", err
		}
		if i == 0 {
			ctx = c
			continue
		}
		if c != ctx {
			return "", egerr.New(egerr.ErrCodeStructuralSelection,
				"selection roots span contexts %s and %s", ctx.Short(), c.Short())
		}
	}
	return ctx, nil
}

// deleteSelection removes every selected element from the builder:
// edges first, then vertices, then cuts deepest first so each cut is
// empty by the time it is deleted.
func deleteSelection(g *eg.Graph, b *eg.Builder, s *selection) error {
	for id := range s.set {
		if _, ok := g.Edge(id); ok {
			if err := b.DeleteEdge(id); err != nil {
				return egerr.Wrap(egerr.ErrCodeInternal, err, "delete edge %s", id.Short())
			}
		}
	}
	for id := range s.set {
		if _, ok := g.Vertex(id); ok {
			if err := b.DeleteVertex(id); err != nil {
				return egerr.Wrap(egerr.ErrCodeInternal, err, "delete vertex %s", id.Short())
			}
		}
	}

	var cutIDs []eg.ID
	for id := range s.set {
		if _, ok := g.Cut(id); ok {
			cutIDs = append(cutIDs, id)
		}
	}
	slices.SortFunc(cutIDs, func(a, b eg.ID) int {
		da, _ := g.Depth(a)
		db, _ := g.Depth(b)
		return db - da
	})
	for _, id := range cutIDs {
		if err := b.DeleteCut(id); err != nil {
			return egerr.Wrap(egerr.ErrCodeInternal, err, "delete cut %s", id.Short())
		}
	}
	return nil
}
