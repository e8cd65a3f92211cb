package transform

import (
	"github.com/mhalvorsen/cutsheet/pkg/eg"
	egerr "github.com/mhalvorsen/cutsheet/pkg/errors"
)

// Insert grafts a copy of the fragment graph's sheet contents into the
// target context. Legal only when the target context is negative (odd
// nesting depth); the sheet itself is never a legal insertion target.
//
// The fragment is typically built by parsing an EGIF string. Its elements
// are copied with fresh ids, so the fragment remains independently usable.
func Insert(g *eg.Graph, ctx eg.ID, fragment *eg.Graph) (*eg.Graph, error) {
	if !g.IsContext(ctx) {
		return nil, egerr.New(egerr.ErrCodeElementNotFound, "context %s not in graph", ctx.Short())
	}
	pol, err := g.Polarity(ctx)
	if err != nil {
		return nil, err
	}
	if pol != eg.Negative {
		return nil, egerr.New(egerr.ErrCodeIllegalContext,
			"cannot insert: context %s is positive", ctx.Short())
	}
	if fragment == nil || fragment.VertexCount()+fragment.EdgeCount()+fragment.CutCount() == 0 {
		return nil, egerr.New(egerr.ErrCodeInvalidInput, "nothing to insert")
	}

	b := eg.NewBuilderFrom(g)
	c := newCopier(fragment, b, func(eg.ID) bool { return true })
	if err := c.copyArea(fragment.Sheet(), ctx); err != nil {
		return nil, err
	}
	return b.Graph()
}
