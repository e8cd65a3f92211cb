package transform

import (
	"github.com/mhalvorsen/cutsheet/pkg/eg"
	egerr "github.com/mhalvorsen/cutsheet/pkg/errors"
)

// DeIterate removes the selected subgraph after proving it is a
// duplicate-by-iteration: an isomorphic witness subgraph must exist in the
// selection's own context or in one strictly enclosing it. The
// isomorphism must preserve relation names, argument order, and cut
// nesting shape, and must map every boundary vertex (a vertex referenced
// by the selection but not part of it) to itself, so ligature identity is
// respected.
func DeIterate(g *eg.Graph, sel Selection) (*eg.Graph, error) {
	s, err := validateSelection(g, sel)
	if err != nil {
		return nil, err
	}
	src, err := s.singleRootContext(g)
	if err != nil {
		return nil, err
	}

	found := false
	ctx := src
	for {
		m := newMatcher(g, s)
		if m.match(s.roots, ctx, false) {
			found = true
			break
		}
		if ctx == g.Sheet() {
			break
		}
		parent, err := g.ContextOf(ctx)
		if err != nil {
			return nil, err
		}
		ctx = parent
	}
	if !found {
		return nil, egerr.New(egerr.ErrCodeIllegalContext,
			"cannot de-iterate: no matching subgraph at or above context %s", src.Short())
	}

	b := eg.NewBuilderFrom(g)
	if err := deleteSelection(g, b, s); err != nil {
		return nil, err
	}
	return b.Graph()
}

// matcher searches for an isomorphism between the selected subgraph and a
// disjoint witness subgraph. Graphs in practice are small, so the search
// is plain backtracking; cloning the matcher state at each branch point
// keeps the rollback logic trivial.
type matcher struct {
	g       *eg.Graph
	s       *selection
	mapping map[eg.ID]eg.ID // selected id -> witness id
	claimed map[eg.ID]bool  // witness ids already paired
}

func newMatcher(g *eg.Graph, s *selection) *matcher {
	return &matcher{
		g:       g,
		s:       s,
		mapping: map[eg.ID]eg.ID{},
		claimed: map[eg.ID]bool{},
	}
}

func (m *matcher) clone() *matcher {
	cp := newMatcher(m.g, m.s)
	for k, v := range m.mapping {
		cp.mapping[k] = v
	}
	for k, v := range m.claimed {
		cp.claimed[k] = v
	}
	return cp
}

func (m *matcher) adopt(other *matcher) {
	m.mapping = other.mapping
	m.claimed = other.claimed
}

// match pairs every item with a distinct witness element from wCtx's area.
// In exact mode (inside a cut) the witness area must be consumed entirely;
// at the top level the witness items may sit among unrelated siblings.
// Edges are matched first since relation name and argument order constrain
// the vertex mapping the most, then cuts, then any still-unmapped vertices.
func (m *matcher) match(items []eg.ID, wCtx eg.ID, exact bool) bool {
	area, err := m.g.DirectArea(wCtx)
	if err != nil {
		return false
	}
	var pool []eg.ID
	for _, id := range area {
		if m.s.contains(id) {
			if exact {
				return false // witness overlaps the selection
			}
			continue
		}
		pool = append(pool, id)
	}
	if exact && len(pool) != len(items) {
		return false
	}

	ordered := orderForMatching(m.g, items)
	return m.assign(ordered, pool, exact)
}

// assign recursively pairs items[0] with each compatible pool candidate.
func (m *matcher) assign(items, pool []eg.ID, exact bool) bool {
	if len(items) == 0 {
		if exact {
			for _, w := range pool {
				if !m.claimed[w] {
					return false // leftover witness content breaks exact shape
				}
			}
		}
		return true
	}

	item := items[0]
	if w, done := m.mapping[item]; done {
		// Already constrained through an edge's argument sequence; it
		// still must live in this witness area.
		inPool := false
		for _, p := range pool {
			if p == w {
				inPool = true
				break
			}
		}
		if !inPool {
			return false
		}
		m.claimed[w] = true
		return m.assign(items[1:], pool, exact)
	}

	for _, w := range pool {
		if m.claimed[w] {
			continue
		}
		trial := m.clone()
		if !trial.pair(item, w) {
			continue
		}
		trial.claimed[w] = true
		if trial.assign(items[1:], pool, exact) {
			m.adopt(trial)
			return true
		}
	}
	return false
}

// pair attempts to match one selected element against one witness element
// of the same kind.
func (m *matcher) pair(sid, wid eg.ID) bool {
	if sv, ok := m.g.Vertex(sid); ok {
		wv, ok := m.g.Vertex(wid)
		if !ok {
			return false
		}
		return m.pairVertices(sv, wv)
	}
	if _, ok := m.g.Edge(sid); ok {
		if _, ok := m.g.Edge(wid); !ok {
			return false
		}
		return m.pairEdges(sid, wid)
	}
	if _, ok := m.g.Cut(sid); ok {
		if _, ok := m.g.Cut(wid); !ok {
			return false
		}
		return m.pairCuts(sid, wid)
	}
	return false
}

func (m *matcher) pairVertices(sv, wv eg.Vertex) bool {
	if m.s.contains(wv.ID) {
		return false
	}
	if sv.Constant != wv.Constant || sv.Label != wv.Label {
		return false
	}
	if w, done := m.mapping[sv.ID]; done {
		return w == wv.ID
	}
	for _, mapped := range m.mapping {
		if mapped == wv.ID {
			return false // injectivity
		}
	}
	m.mapping[sv.ID] = wv.ID
	return true
}

func (m *matcher) pairEdges(se, we eg.ID) bool {
	sName, err1 := m.g.Relation(se)
	wName, err2 := m.g.Relation(we)
	if err1 != nil || err2 != nil || sName != wName {
		return false
	}
	sArgs, err1 := m.g.Arguments(se)
	wArgs, err2 := m.g.Arguments(we)
	if err1 != nil || err2 != nil || len(sArgs) != len(wArgs) {
		return false
	}
	for i := range sArgs {
		sArg, wArg := sArgs[i], wArgs[i]
		if !m.s.contains(sArg) {
			// Boundary vertex: the witness must share the very same
			// line of identity.
			if wArg != sArg {
				return false
			}
			continue
		}
		sv, _ := m.g.Vertex(sArg)
		wv, ok := m.g.Vertex(wArg)
		if !ok || !m.pairVertices(sv, wv) {
			return false
		}
	}
	m.mapping[se] = we
	return true
}

func (m *matcher) pairCuts(sc, wc eg.ID) bool {
	inner, err := m.g.DirectArea(sc)
	if err != nil {
		return false
	}
	if !m.match(inner, wc, true) {
		return false
	}
	m.mapping[sc] = wc
	return true
}

// orderForMatching sorts selection items for the backtracking search:
// edges first, then cuts, then vertices.
func orderForMatching(g *eg.Graph, items []eg.ID) []eg.ID {
	var edges, cuts, verts []eg.ID
	for _, id := range items {
		switch {
		case isEdge(g, id):
			edges = append(edges, id)
		case isCut(g, id):
			cuts = append(cuts, id)
		default:
			verts = append(verts, id)
		}
	}
	out := make([]eg.ID, 0, len(items))
	out = append(out, edges...)
	out = append(out, cuts...)
	out = append(out, verts...)
	return out
}

func isEdge(g *eg.Graph, id eg.ID) bool { _, ok := g.Edge(id); return ok }
func isCut(g *eg.Graph, id eg.ID) bool  { _, ok := g.Cut(id); return ok }
