package eg

import (
	"slices"

	egerr "github.com/mhalvorsen/cutsheet/pkg/errors"
)

// Graph is an immutable existential graph: vertices, edges, and cuts keyed
// by id in flat collections, with all relationships expressed as id-indexed
// mappings. A Graph is fully constructed by a [Builder] (directly, by the
// EGIF parser, or by a transformation) and never changes afterwards, so a
// published instance is safe for concurrent reads without locking.
type Graph struct {
	sheet    ID
	vertices map[ID]Vertex
	edges    map[ID]Edge
	cuts     map[ID]Cut
	rel      map[ID]string // edge id -> relation name
	args     map[ID][]ID   // edge id -> ordered argument vertex ids
	area     map[ID][]ID   // context id -> direct children, insertion ordered
	location map[ID]ID     // element id -> containing context (derived index)
}

// Sheet returns the id of the sheet of assertion, the always-positive
// root context. It is always present and never deleted.
func (g *Graph) Sheet() ID { return g.sheet }

// VertexCount returns the number of vertices in the graph.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges (predicate instances) in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// CutCount returns the number of cuts in the graph.
func (g *Graph) CutCount() int { return len(g.cuts) }

// Vertex looks up a vertex by id.
func (g *Graph) Vertex(id ID) (Vertex, bool) {
	v, ok := g.vertices[id]
	return v, ok
}

// Edge looks up an edge by id.
func (g *Graph) Edge(id ID) (Edge, bool) {
	e, ok := g.edges[id]
	return e, ok
}

// Cut looks up a cut by id.
func (g *Graph) Cut(id ID) (Cut, bool) {
	c, ok := g.cuts[id]
	return c, ok
}

// Vertices returns all vertices sorted by id.
func (g *Graph) Vertices() []Vertex {
	out := make([]Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b Vertex) int { return compareIDs(a.ID, b.ID) })
	return out
}

// Edges returns all edges sorted by id.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Edge) int { return compareIDs(a.ID, b.ID) })
	return out
}

// Cuts returns all cuts sorted by id.
func (g *Graph) Cuts() []Cut {
	out := make([]Cut, 0, len(g.cuts))
	for _, c := range g.cuts {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Cut) int { return compareIDs(a.ID, b.ID) })
	return out
}

func compareIDs(a, b ID) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Contains reports whether the id names any element or context in the graph.
func (g *Graph) Contains(id ID) bool {
	if id == g.sheet {
		return true
	}
	_, inV := g.vertices[id]
	_, inE := g.edges[id]
	_, inC := g.cuts[id]
	return inV || inE || inC
}

// IsContext reports whether the id names a context (the sheet or a cut).
func (g *Graph) IsContext(id ID) bool {
	if id == g.sheet {
		return true
	}
	_, ok := g.cuts[id]
	return ok
}

// Relation returns the relation name of an edge.
func (g *Graph) Relation(edgeID ID) (string, error) {
	name, ok := g.rel[edgeID]
	if !ok {
		return "", egerr.New(egerr.ErrCodeElementNotFound, "edge %s not in graph", edgeID.Short())
	}
	return name, nil
}

// Arguments returns a copy of the ordered argument vertex ids of an edge.
// Argument order is semantically meaningful and is never reordered.
func (g *Graph) Arguments(edgeID ID) ([]ID, error) {
	argv, ok := g.args[edgeID]
	if !ok {
		return nil, egerr.New(egerr.ErrCodeElementNotFound, "edge %s not in graph", edgeID.Short())
	}
	return slices.Clone(argv), nil
}

// ContextOf returns the context whose area directly contains the element.
// The sheet of assertion has no containing context.
func (g *Graph) ContextOf(id ID) (ID, error) {
	ctx, ok := g.location[id]
	if !ok {
		return "", egerr.New(egerr.ErrCodeElementNotFound, "element %s not in graph", id.Short())
	}
	return ctx, nil
}

// DirectArea returns a copy of the ids directly contained in the given
// context, in insertion order. It is not recursive: a nested cut appears
// as a single id, its contents do not.
func (g *Graph) DirectArea(ctx ID) ([]ID, error) {
	if !g.IsContext(ctx) {
		return nil, egerr.New(egerr.ErrCodeElementNotFound, "context %s not in graph", ctx.Short())
	}
	return slices.Clone(g.area[ctx]), nil
}

// FullContext returns every element transitively contained in the given
// context: the direct area plus, for each nested cut, that cut's full
// context. The closure is computed on demand and never stored.
func (g *Graph) FullContext(ctx ID) ([]ID, error) {
	if !g.IsContext(ctx) {
		return nil, egerr.New(egerr.ErrCodeElementNotFound, "context %s not in graph", ctx.Short())
	}
	var out []ID
	var walk func(c ID)
	walk = func(c ID) {
		for _, id := range g.area[c] {
			out = append(out, id)
			if _, isCut := g.cuts[id]; isCut {
				walk(id)
			}
		}
	}
	walk(ctx)
	return out, nil
}

// Depth returns the cut-nesting depth of a context: 0 for the sheet,
// incremented by one for each enclosing cut.
func (g *Graph) Depth(ctx ID) (int, error) {
	if !g.IsContext(ctx) {
		return 0, egerr.New(egerr.ErrCodeElementNotFound, "context %s not in graph", ctx.Short())
	}
	depth := 0
	for ctx != g.sheet {
		parent, ok := g.location[ctx]
		if !ok {
			return 0, egerr.New(egerr.ErrCodeElementNotFound, "context %s has no containing context", ctx.Short())
		}
		depth++
		ctx = parent
	}
	return depth, nil
}

// Polarity returns the derived polarity of a context: positive for the
// sheet and even nesting depths, negative for odd depths. It is computed
// at call time, never cached, since the context structure of a derived
// graph may differ from its ancestor's.
func (g *Graph) Polarity(ctx ID) (Polarity, error) {
	depth, err := g.Depth(ctx)
	if err != nil {
		return Positive, err
	}
	if depth%2 == 1 {
		return Negative, nil
	}
	return Positive, nil
}

// IsAncestorOrSelf reports whether ancestor equals ctx or encloses it.
func (g *Graph) IsAncestorOrSelf(ancestor, ctx ID) (bool, error) {
	if !g.IsContext(ancestor) {
		return false, egerr.New(egerr.ErrCodeElementNotFound, "context %s not in graph", ancestor.Short())
	}
	if !g.IsContext(ctx) {
		return false, egerr.New(egerr.ErrCodeElementNotFound, "context %s not in graph", ctx.Short())
	}
	for {
		if ctx == ancestor {
			return true, nil
		}
		if ctx == g.sheet {
			return false, nil
		}
		ctx = g.location[ctx]
	}
}

// IncidentEdges returns the ids of all edges that reference the vertex in
// their argument sequence, sorted by id. An edge referencing the vertex at
// several argument positions appears once.
func (g *Graph) IncidentEdges(vertexID ID) ([]ID, error) {
	if _, ok := g.vertices[vertexID]; !ok {
		return nil, egerr.New(egerr.ErrCodeElementNotFound, "vertex %s not in graph", vertexID.Short())
	}
	var out []ID
	for edgeID, argv := range g.args {
		if slices.Contains(argv, vertexID) {
			out = append(out, edgeID)
		}
	}
	slices.SortFunc(out, compareIDs)
	return out, nil
}

// IsIsolated reports whether the vertex has no incident edges: Peirce's
// "heavy dot", a predication-free assertion of existence.
func (g *Graph) IsIsolated(vertexID ID) (bool, error) {
	incident, err := g.IncidentEdges(vertexID)
	if err != nil {
		return false, err
	}
	return len(incident) == 0, nil
}
