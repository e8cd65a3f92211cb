package transform

import (
	"github.com/mhalvorsen/cutsheet/pkg/eg"
	egerr "github.com/mhalvorsen/cutsheet/pkg/errors"
)

// Erase removes the selected subgraph. Legal only when the selection lies
// entirely within positive contexts: every root element of the selection
// must sit in a context of even nesting depth. Elements inside a selected
// cut travel with it regardless of their own depth, since removing the cut
// removes its whole subtree from the positive context that holds it.
func Erase(g *eg.Graph, sel Selection) (*eg.Graph, error) {
	s, err := validateSelection(g, sel)
	if err != nil {
		return nil, err
	}

	for _, id := range s.roots {
		ctx, err := g.ContextOf(id)
		if err != nil {
			return nil, err
		}
		pol, err := g.Polarity(ctx)
		if err != nil {
			return nil, err
		}
		if pol != eg.Positive {
			return nil, egerr.New(egerr.ErrCodeIllegalContext,
				"cannot erase: %s lies in a negative context", id.Short())
		}
	}

	b := eg.NewBuilderFrom(g)
	if err := deleteSelection(g, b, s); err != nil {
		return nil, err
	}
	return b.Graph()
}
