package eg

import (
	"fmt"
	"slices"
)

// NewEdge returns a fresh edge with a unique id.
func NewEdge() Edge { return Edge{ID: NewEdgeID()} }

// NewCut returns a fresh cut with a unique id.
func NewCut() Cut { return Cut{ID: NewCutID()} }

// Builder assembles a [Graph]. It is the only way to construct or derive
// graphs: the parser builds from scratch, transformations start from an
// existing graph with [NewBuilderFrom] and edit the copy.
//
// A Builder is single-use: after [Builder.Graph] returns successfully the
// builder must be discarded. Builders are not safe for concurrent use.
type Builder struct {
	g *Graph
}

// NewBuilder creates a builder holding an empty graph: just the sheet of
// assertion with an empty area.
func NewBuilder() *Builder {
	return NewBuilderWithSheet(NewSheetID())
}

// NewBuilderWithSheet creates a builder whose sheet of assertion carries
// the given id. Used by deserializers that must preserve ids exactly.
func NewBuilderWithSheet(sheet ID) *Builder {
	return &Builder{g: &Graph{
		sheet:    sheet,
		vertices: map[ID]Vertex{},
		edges:    map[ID]Edge{},
		cuts:     map[ID]Cut{},
		rel:      map[ID]string{},
		args:     map[ID][]ID{},
		area:     map[ID][]ID{sheet: nil},
		location: map[ID]ID{},
	}}
}

// NewBuilderFrom creates a builder seeded with a deep copy of g's mutable
// mappings. The source graph is never touched; editing the builder and
// sealing it yields an independent new instance, which is how every
// transformation preserves its input.
func NewBuilderFrom(g *Graph) *Builder {
	cp := &Graph{
		sheet:    g.sheet,
		vertices: make(map[ID]Vertex, len(g.vertices)),
		edges:    make(map[ID]Edge, len(g.edges)),
		cuts:     make(map[ID]Cut, len(g.cuts)),
		rel:      make(map[ID]string, len(g.rel)),
		args:     make(map[ID][]ID, len(g.args)),
		area:     make(map[ID][]ID, len(g.area)),
		location: make(map[ID]ID, len(g.location)),
	}
	for id, v := range g.vertices {
		cp.vertices[id] = v
	}
	for id, e := range g.edges {
		cp.edges[id] = e
	}
	for id, c := range g.cuts {
		cp.cuts[id] = c
	}
	for id, name := range g.rel {
		cp.rel[id] = name
	}
	for id, argv := range g.args {
		cp.args[id] = slices.Clone(argv)
	}
	for id, children := range g.area {
		cp.area[id] = slices.Clone(children)
	}
	for id, ctx := range g.location {
		cp.location[id] = ctx
	}
	return &Builder{g: cp}
}

// Sheet returns the id of the sheet of assertion under construction.
func (b *Builder) Sheet() ID { return b.g.sheet }

// IsContext reports whether id names the sheet or a cut in the builder.
func (b *Builder) IsContext(id ID) bool { return b.g.IsContext(id) }

// checkContext verifies ctx names a known context.
func (b *Builder) checkContext(ctx ID) error {
	if !b.g.IsContext(ctx) {
		return fmt.Errorf("%w: %s", ErrUnknownContext, ctx.Short())
	}
	return nil
}

// checkFresh verifies the id is not already used by any element.
func (b *Builder) checkFresh(id ID) error {
	if id == "" {
		return ErrInvalidElementID
	}
	if b.g.Contains(id) {
		return fmt.Errorf("%w: %s", ErrDuplicateElementID, id.Short())
	}
	return nil
}

// AddVertex places a vertex into the area of ctx.
// Returns ErrUnknownContext if ctx does not exist, ErrInvalidElementID if
// the vertex id is empty, or ErrDuplicateElementID if the id is taken.
func (b *Builder) AddVertex(ctx ID, v Vertex) error {
	if err := b.checkContext(ctx); err != nil {
		return err
	}
	if err := b.checkFresh(v.ID); err != nil {
		return err
	}
	b.g.vertices[v.ID] = v
	b.place(v.ID, ctx)
	return nil
}

// AddCut places a new cut into the area of ctx, nesting a fresh negation
// context inside it.
func (b *Builder) AddCut(ctx ID, c Cut) error {
	if err := b.checkContext(ctx); err != nil {
		return err
	}
	if err := b.checkFresh(c.ID); err != nil {
		return err
	}
	b.g.cuts[c.ID] = c
	if _, ok := b.g.area[c.ID]; !ok {
		b.g.area[c.ID] = nil
	}
	b.place(c.ID, ctx)
	return nil
}

// AddEdge places an edge asserting relation name over the ordered argument
// vertices into the area of ctx. Every argument must already exist as a
// vertex; argument order is preserved exactly as given.
func (b *Builder) AddEdge(ctx ID, e Edge, name string, argv []ID) error {
	if err := b.checkContext(ctx); err != nil {
		return err
	}
	if err := b.checkFresh(e.ID); err != nil {
		return err
	}
	for _, arg := range argv {
		if _, ok := b.g.vertices[arg]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownArgumentVertex, arg.Short())
		}
	}
	b.g.edges[e.ID] = e
	b.g.rel[e.ID] = name
	b.g.args[e.ID] = slices.Clone(argv)
	b.place(e.ID, ctx)
	return nil
}

// DeleteVertex removes a vertex from the graph and from its containing
// area. The vertex must not be referenced by any edge.
func (b *Builder) DeleteVertex(id ID) error {
	if _, ok := b.g.vertices[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownElement, id.Short())
	}
	for edgeID, argv := range b.g.args {
		if slices.Contains(argv, id) {
			return fmt.Errorf("%w: vertex %s still referenced by edge %s",
				ErrVertexInUse, id.Short(), ID(edgeID).Short())
		}
	}
	delete(b.g.vertices, id)
	b.unplace(id)
	return nil
}

// DeleteEdge removes an edge, its relation name, and its argument sequence.
// Argument vertices are left in place.
func (b *Builder) DeleteEdge(id ID) error {
	if _, ok := b.g.edges[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownElement, id.Short())
	}
	delete(b.g.edges, id)
	delete(b.g.rel, id)
	delete(b.g.args, id)
	b.unplace(id)
	return nil
}

// DeleteCut removes a cut whose area is empty. Callers emptying a cut
// recursively must delete or reparent its contents first.
func (b *Builder) DeleteCut(id ID) error {
	if _, ok := b.g.cuts[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownElement, id.Short())
	}
	if len(b.g.area[id]) != 0 {
		return fmt.Errorf("%w: cut %s area not empty", ErrCutNotEmpty, id.Short())
	}
	delete(b.g.cuts, id)
	delete(b.g.area, id)
	b.unplace(id)
	return nil
}

// Reparent moves an element from its current area into the area of newCtx,
// appended at the end. Moving a cut moves its entire subtree with it.
// Returns ErrContainmentCycle if newCtx lies inside the element being moved.
func (b *Builder) Reparent(id ID, newCtx ID) error {
	if _, ok := b.g.location[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownElement, id.Short())
	}
	if err := b.checkContext(newCtx); err != nil {
		return err
	}
	if b.g.IsContext(id) {
		inside, err := b.g.IsAncestorOrSelf(id, newCtx)
		if err != nil {
			return err
		}
		if inside {
			return fmt.Errorf("%w: cannot move %s into its own context", ErrContainmentCycle, id.Short())
		}
	}
	b.unplace(id)
	b.place(id, newCtx)
	return nil
}

// place records id as a direct child of ctx.
func (b *Builder) place(id, ctx ID) {
	b.g.area[ctx] = append(b.g.area[ctx], id)
	b.g.location[id] = ctx
}

// unplace removes id from its containing area and the location index.
func (b *Builder) unplace(id ID) {
	ctx, ok := b.g.location[id]
	if !ok {
		return
	}
	b.g.area[ctx] = slices.DeleteFunc(b.g.area[ctx], func(x ID) bool { return x == id })
	delete(b.g.location, id)
}

// Graph validates the assembled structure and seals it. On success the
// returned graph satisfies every model invariant and the builder must not
// be used again. On failure no graph is returned; the builder state is
// unchanged and may be corrected and resealed.
func (b *Builder) Graph() (*Graph, error) {
	if err := b.g.Validate(); err != nil {
		return nil, err
	}
	return b.g, nil
}
