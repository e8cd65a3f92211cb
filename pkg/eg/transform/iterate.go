package transform

import (
	"github.com/mhalvorsen/cutsheet/pkg/eg"
	egerr "github.com/mhalvorsen/cutsheet/pkg/errors"
)

// Iterated is the result of a successful [Iterate] call: the new graph and
// the mapping from original element ids to their copies. The mapping is
// what a later [DeIterate] of the copy would match against.
type Iterated struct {
	Graph  *eg.Graph
	Copies map[eg.ID]eg.ID
}

// Iterate places a copy of the selected subgraph into the target context.
// Legal only when the target is the selection's own context or one nested
// at or below it, and not inside a selected cut (a subgraph cannot be
// iterated into its own copy source). Ligatures are preserved: copied
// edges keep referencing the original vertices for every argument outside
// the selection.
func Iterate(g *eg.Graph, sel Selection, target eg.ID) (*Iterated, error) {
	s, err := validateSelection(g, sel)
	if err != nil {
		return nil, err
	}
	src, err := s.singleRootContext(g)
	if err != nil {
		return nil, err
	}
	if !g.IsContext(target) {
		return nil, egerr.New(egerr.ErrCodeElementNotFound, "context %s not in graph", target.Short())
	}

	below, err := g.IsAncestorOrSelf(src, target)
	if err != nil {
		return nil, err
	}
	if !below {
		return nil, egerr.New(egerr.ErrCodeIllegalContext,
			"cannot iterate: context %s is not nested at or below %s", target.Short(), src.Short())
	}
	if walkErr := forbidSelectedEnclosure(g, s, target); walkErr != nil {
		return nil, walkErr
	}

	b := eg.NewBuilderFrom(g)
	c := newCopier(g, b, s.contains)
	if err := c.copyArea(src, target); err != nil {
		return nil, err
	}
	out, err := b.Graph()
	if err != nil {
		return nil, err
	}
	return &Iterated{Graph: out, Copies: c.copies}, nil
}

// forbidSelectedEnclosure rejects a target context lying inside any
// selected cut.
func forbidSelectedEnclosure(g *eg.Graph, s *selection, target eg.ID) error {
	ctx := target
	for ctx != g.Sheet() {
		if s.contains(ctx) {
			return egerr.New(egerr.ErrCodeIllegalContext,
				"cannot iterate into %s: it lies inside the selected subgraph", target.Short())
		}
		parent, err := g.ContextOf(ctx)
		if err != nil {
			return err
		}
		ctx = parent
	}
	return nil
}
