package eg

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidElementID is returned by the [Builder] add methods when an
	// element id is empty. All elements must have non-empty identifiers.
	ErrInvalidElementID = errors.New("element ID must not be empty")

	// ErrDuplicateElementID is returned by the [Builder] add methods when
	// an element with the same id already exists in the graph.
	ErrDuplicateElementID = errors.New("duplicate element ID")

	// ErrUnknownContext is returned when a context id names neither the
	// sheet of assertion nor a cut.
	ErrUnknownContext = errors.New("unknown context")

	// ErrUnknownElement is returned by the [Builder] delete and reparent
	// methods when the element does not exist.
	ErrUnknownElement = errors.New("unknown element")

	// ErrUnknownArgumentVertex is returned by [Builder.AddEdge] when an
	// argument id does not name an existing vertex, and by [Graph.Validate]
	// when an argument sequence references a missing vertex. The latter
	// indicates graph corruption.
	ErrUnknownArgumentVertex = errors.New("unknown argument vertex")

	// ErrVertexInUse is returned by [Builder.DeleteVertex] when the vertex
	// is still referenced by an edge's argument sequence.
	ErrVertexInUse = errors.New("vertex still referenced by an edge")

	// ErrCutNotEmpty is returned by [Builder.DeleteCut] when the cut still
	// directly contains elements.
	ErrCutNotEmpty = errors.New("cut area not empty")

	// ErrMissingRelationName is returned by [Graph.Validate] when an edge
	// has no entry in the relation-name mapping.
	ErrMissingRelationName = errors.New("edge missing relation name")

	// ErrOrphanElement is returned by [Graph.Validate] when an element is
	// contained in no context's area.
	ErrOrphanElement = errors.New("element contained in no area")

	// ErrDoubleContainment is returned by [Graph.Validate] when an element
	// appears in more than one area, or twice in the same area.
	ErrDoubleContainment = errors.New("element contained in more than one area")

	// ErrContainmentCycle is returned by [Graph.Validate] when the
	// containment structure induced by the area mapping is not a tree
	// rooted at the sheet, and by [Builder.Reparent] when a move would
	// create such a cycle.
	ErrContainmentCycle = errors.New("containment structure is not a tree")
)

// Validate checks the four graph-level invariants:
//
//  1. Referential integrity: every edge has a relation name and an argument
//     sequence, and every argument id names an existing vertex.
//  2. Single containment: every vertex, edge, and cut appears in the area
//     of exactly one context.
//  3. Tree shape: the containment structure induced by the area mapping is
//     a tree rooted at the sheet of assertion.
//  4. Area consistency: areas reference only existing elements, and the
//     location index agrees with the area mapping.
//
// Polarity needs no checking of its own: it is derived from nesting depth,
// which invariant 3 makes well defined.
//
// A graph sealed by [Builder.Graph] always passes; Validate exists so that
// tests and external deserializers can prove invariant preservation.
func (g *Graph) Validate() error {
	// Invariant 1: referential integrity of the edge mappings.
	for edgeID := range g.edges {
		if _, ok := g.rel[edgeID]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingRelationName, edgeID.Short())
		}
		argv, ok := g.args[edgeID]
		if !ok {
			return fmt.Errorf("edge %s missing argument sequence", edgeID.Short())
		}
		for _, arg := range argv {
			if _, ok := g.vertices[arg]; !ok {
				return fmt.Errorf("%w: edge %s references %s", ErrUnknownArgumentVertex, edgeID.Short(), arg.Short())
			}
		}
	}
	for edgeID := range g.rel {
		if _, ok := g.edges[edgeID]; !ok {
			return fmt.Errorf("relation name for unknown edge %s", edgeID.Short())
		}
	}
	for edgeID := range g.args {
		if _, ok := g.edges[edgeID]; !ok {
			return fmt.Errorf("argument sequence for unknown edge %s", edgeID.Short())
		}
	}

	// Invariant 2 and 4: every element in exactly one area, areas
	// referencing only known elements, location index in agreement.
	seen := make(map[ID]ID, len(g.location))
	for ctx, children := range g.area {
		if !g.IsContext(ctx) {
			return fmt.Errorf("%w: area entry %s", ErrUnknownContext, ctx.Short())
		}
		for _, id := range children {
			if !g.Contains(id) || id == g.sheet {
				return fmt.Errorf("area of %s references unknown element %s", ctx.Short(), id.Short())
			}
			if prev, dup := seen[id]; dup {
				return fmt.Errorf("%w: %s in %s and %s", ErrDoubleContainment, id.Short(), prev.Short(), ctx.Short())
			}
			seen[id] = ctx
			if g.location[id] != ctx {
				return fmt.Errorf("location index disagrees with area mapping for %s", id.Short())
			}
		}
	}
	for _, id := range g.elementIDs() {
		if _, ok := seen[id]; !ok {
			return fmt.Errorf("%w: %s", ErrOrphanElement, id.Short())
		}
	}

	// Invariant 3: containment is a tree rooted at the sheet. With single
	// containment already established, it suffices that every cut is
	// reachable from the sheet by walking areas.
	reachable := map[ID]bool{}
	var walk func(ctx ID)
	walk = func(ctx ID) {
		for _, id := range g.area[ctx] {
			if _, isCut := g.cuts[id]; isCut {
				reachable[id] = true
				walk(id)
			}
		}
	}
	walk(g.sheet)
	for cutID := range g.cuts {
		if !reachable[cutID] {
			return fmt.Errorf("%w: cut %s unreachable from sheet", ErrContainmentCycle, cutID.Short())
		}
	}

	return nil
}

// elementIDs returns the ids of all vertices, edges, and cuts.
func (g *Graph) elementIDs() []ID {
	out := make([]ID, 0, len(g.vertices)+len(g.edges)+len(g.cuts))
	for id := range g.vertices {
		out = append(out, id)
	}
	for id := range g.edges {
		out = append(out, id)
	}
	for id := range g.cuts {
		out = append(out, id)
	}
	return out
}
