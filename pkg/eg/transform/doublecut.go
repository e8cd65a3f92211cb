package transform

import (
	"github.com/mhalvorsen/cutsheet/pkg/eg"
	egerr "github.com/mhalvorsen/cutsheet/pkg/errors"
)

// DoubleCut is the result of a successful [AddDoubleCut] call: the new
// graph plus the ids of the two cuts that were introduced, outer enclosing
// inner.
type DoubleCut struct {
	Graph *eg.Graph
	Outer eg.ID
	Inner eg.ID
}

// AddDoubleCut wraps the given elements of ctx in two nested cuts. The
// double negation is logically inert, so the rule is legal in any context.
// The elements may be empty, producing an empty double cut; otherwise each
// element must lie directly in ctx's area.
func AddDoubleCut(g *eg.Graph, ctx eg.ID, elements []eg.ID) (*DoubleCut, error) {
	if !g.IsContext(ctx) {
		return nil, egerr.New(egerr.ErrCodeElementNotFound, "context %s not in graph", ctx.Short())
	}
	for _, id := range elements {
		if !g.Contains(id) {
			return nil, egerr.New(egerr.ErrCodeElementNotFound, "element %s not in graph", id.Short())
		}
		home, err := g.ContextOf(id)
		if err != nil {
			return nil, err
		}
		if home != ctx {
			return nil, egerr.New(egerr.ErrCodeStructuralSelection,
				"element %s is not directly in context %s", id.Short(), ctx.Short())
		}
	}

	b := eg.NewBuilderFrom(g)
	outer := eg.NewCut()
	inner := eg.NewCut()
	if err := b.AddCut(ctx, outer); err != nil {
		return nil, egerr.Wrap(egerr.ErrCodeInternal, err, "add outer cut")
	}
	if err := b.AddCut(outer.ID, inner); err != nil {
		return nil, egerr.Wrap(egerr.ErrCodeInternal, err, "add inner cut")
	}
	for _, id := range elements {
		if err := b.Reparent(id, inner.ID); err != nil {
			return nil, egerr.Wrap(egerr.ErrCodeInternal, err, "move %s into double cut", id.Short())
		}
	}
	out, err := b.Graph()
	if err != nil {
		return nil, err
	}
	return &DoubleCut{Graph: out, Outer: outer.ID, Inner: inner.ID}, nil
}

// RemoveDoubleCut collapses a double cut: the target must be a cut whose
// area is exactly one nested cut and nothing else. The inner cut's
// contents are promoted two levels up, into the outer cut's context, in
// their original order.
func RemoveDoubleCut(g *eg.Graph, outer eg.ID) (*eg.Graph, error) {
	if _, ok := g.Cut(outer); !ok {
		return nil, egerr.New(egerr.ErrCodeElementNotFound, "cut %s not in graph", outer.Short())
	}

	outerArea, err := g.DirectArea(outer)
	if err != nil {
		return nil, err
	}
	if len(outerArea) != 1 {
		return nil, egerr.New(egerr.ErrCodeInvalidCutStructure,
			"cut %s holds %d elements, want exactly one nested cut", outer.Short(), len(outerArea))
	}
	inner := outerArea[0]
	if _, ok := g.Cut(inner); !ok {
		return nil, egerr.New(egerr.ErrCodeInvalidCutStructure,
			"cut %s holds %s, want a nested cut", outer.Short(), inner.Short())
	}

	home, err := g.ContextOf(outer)
	if err != nil {
		return nil, err
	}
	innerArea, err := g.DirectArea(inner)
	if err != nil {
		return nil, err
	}

	b := eg.NewBuilderFrom(g)
	for _, id := range innerArea {
		if err := b.Reparent(id, home); err != nil {
			return nil, egerr.Wrap(egerr.ErrCodeInternal, err, "promote %s", id.Short())
		}
	}
	if err := b.DeleteCut(inner); err != nil {
		return nil, egerr.Wrap(egerr.ErrCodeInternal, err, "delete inner cut")
	}
	if err := b.DeleteCut(outer); err != nil {
		return nil, egerr.Wrap(egerr.ErrCodeInternal, err, "delete outer cut")
	}
	return b.Graph()
}
