package transform

import (
	"github.com/mhalvorsen/cutsheet/pkg/eg"
	egerr "github.com/mhalvorsen/cutsheet/pkg/errors"
)

// IsolatedVertex is the result of a successful [AddIsolatedVertex] call.
type IsolatedVertex struct {
	Graph  *eg.Graph
	Vertex eg.ID
}

// AddIsolatedVertex adds a fresh generic vertex with no incident edges
// (Peirce's heavy dot) to the given context. Legal in any context: a bare
// assertion of existence carries no polarity constraint.
func AddIsolatedVertex(g *eg.Graph, ctx eg.ID) (*IsolatedVertex, error) {
	if !g.IsContext(ctx) {
		return nil, egerr.New(egerr.ErrCodeElementNotFound, "context %s not in graph", ctx.Short())
	}
	b := eg.NewBuilderFrom(g)
	v := eg.Generic()
	if err := b.AddVertex(ctx, v); err != nil {
		return nil, egerr.Wrap(egerr.ErrCodeInternal, err, "add isolated vertex")
	}
	out, err := b.Graph()
	if err != nil {
		return nil, err
	}
	return &IsolatedVertex{Graph: out, Vertex: v.ID}, nil
}

// RemoveIsolatedVertex removes a vertex that has no incident edges. A
// vertex still referenced by any predicate is part of a ligature and
// cannot be removed by this rule.
func RemoveIsolatedVertex(g *eg.Graph, vertexID eg.ID) (*eg.Graph, error) {
	if _, ok := g.Vertex(vertexID); !ok {
		return nil, egerr.New(egerr.ErrCodeElementNotFound, "vertex %s not in graph", vertexID.Short())
	}
	isolated, err := g.IsIsolated(vertexID)
	if err != nil {
		return nil, err
	}
	if !isolated {
		return nil, egerr.New(egerr.ErrCodeStructuralSelection,
			"vertex %s has incident edges and is not isolated", vertexID.Short())
	}
	b := eg.NewBuilderFrom(g)
	if err := b.DeleteVertex(vertexID); err != nil {
		return nil, egerr.Wrap(egerr.ErrCodeInternal, err, "delete vertex")
	}
	return b.Graph()
}
