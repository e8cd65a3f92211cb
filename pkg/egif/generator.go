package egif

import (
	"fmt"
	"strings"

	"github.com/mhalvorsen/cutsheet/pkg/eg"
)

// nameBases are the variable names handed out in defining-emission order.
// After the bases are exhausted a numeric suffix is appended (x1, y1, ...).
var nameBases = []string{"x", "y", "z", "u", "v", "w"}

// Generate emits canonical EGIF text for a graph.
//
// The walk starts at the sheet and recurses through the area mapping.
// Each vertex has a home context: the lowest common ancestor of its
// registered context and the contexts of every edge that mentions it.
// The defining occurrence *x is emitted at the home, either by the first
// mentioning edge there or standalone when no local edge mentions the
// vertex; every later mention anywhere below is the bound occurrence x.
// A vertex registered deeper than one of its mentions, which rules like
// double cut addition can produce, is hoisted to its home so the output
// never defines the same variable twice. Which vertices are already
// defined is tracked per call and discarded on return: the input graph
// is never touched and repeated calls are independent.
//
// Within a context the order is standalone vertices, then edges, then
// cuts, each in area insertion order. Emitting definitions before the
// cuts that reference them is what makes the output reparse.
func Generate(g *eg.Graph) string {
	gen := &generator{
		g:       g,
		defined: map[eg.ID]bool{},
		names:   map[eg.ID]string{},
		homes:   map[eg.ID]eg.ID{},
		hoisted: map[eg.ID][]eg.ID{},
	}
	gen.collectHomes(g.Sheet())
	var b strings.Builder
	gen.emitArea(&b, g.Sheet())
	return b.String()
}

// generator holds the per-call traversal state. It is created fresh for
// every Generate call and never outlives it.
type generator struct {
	g       *eg.Graph
	defined map[eg.ID]bool
	names   map[eg.ID]string
	next    int

	// homes maps each vertex to the context where its defining
	// occurrence is emitted; hoisted lists, per context, the vertices
	// whose home is shallower than their registered context.
	homes   map[eg.ID]eg.ID
	hoisted map[eg.ID][]eg.ID
}

// collectHomes walks the areas depth first and records every vertex's
// home context. The walk order keeps hoisted emission deterministic.
func (gen *generator) collectHomes(ctx eg.ID) {
	area, err := gen.g.DirectArea(ctx)
	if err != nil {
		return
	}
	for _, id := range area {
		if _, ok := gen.g.Vertex(id); !ok {
			continue
		}
		home := gen.homeOf(id, ctx)
		gen.homes[id] = home
		if home != ctx {
			gen.hoisted[home] = append(gen.hoisted[home], id)
		}
	}
	for _, id := range area {
		if _, ok := gen.g.Cut(id); ok {
			gen.collectHomes(id)
		}
	}
}

// homeOf folds the lowest common ancestor over the vertex's registered
// context and the context of every incident edge.
func (gen *generator) homeOf(id, registered eg.ID) eg.ID {
	home := registered
	edges, err := gen.g.IncidentEdges(id)
	if err != nil {
		return home
	}
	for _, e := range edges {
		ctx, err := gen.g.ContextOf(e)
		if err != nil {
			continue
		}
		home = gen.lca(home, ctx)
	}
	return home
}

// lca returns the lowest common ancestor of two contexts.
func (gen *generator) lca(a, b eg.ID) eg.ID {
	da, _ := gen.g.Depth(a)
	db, _ := gen.g.Depth(b)
	for da > db {
		a, _ = gen.g.ContextOf(a)
		da--
	}
	for db > da {
		b, _ = gen.g.ContextOf(b)
		db--
	}
	for a != b {
		a, _ = gen.g.ContextOf(a)
		b, _ = gen.g.ContextOf(b)
	}
	return a
}

// nameFor assigns or returns the synthesized variable name for a generic
// vertex.
func (gen *generator) nameFor(id eg.ID) string {
	if name, ok := gen.names[id]; ok {
		return name
	}
	base := nameBases[gen.next%len(nameBases)]
	round := gen.next / len(nameBases)
	gen.next++
	name := base
	if round > 0 {
		name = fmt.Sprintf("%s%d", base, round)
	}
	gen.names[id] = name
	return name
}

// emitArea writes the items of one context, space separated.
func (gen *generator) emitArea(b *strings.Builder, ctx eg.ID) {
	area, err := gen.g.DirectArea(ctx)
	if err != nil {
		return
	}

	var items []string

	// Vertices homed here that no local edge mentions need a standalone
	// emission: either they are isolated, or every mention happens in a
	// nested cut and the reparse would otherwise register them too deep.
	for _, id := range area {
		v, ok := gen.g.Vertex(id)
		if !ok {
			continue
		}
		if gen.homes[id] != ctx {
			continue
		}
		if gen.mentionedByLocalEdge(ctx, id) {
			continue
		}
		items = append(items, gen.emitStandalone(v))
	}

	// Vertices hoisted up from deeper contexts. A local edge mention
	// covers the definition; otherwise the vertex is emitted standalone
	// so every bound occurrence below stays in scope.
	for _, id := range gen.hoisted[ctx] {
		if gen.mentionedByLocalEdge(ctx, id) {
			continue
		}
		v, ok := gen.g.Vertex(id)
		if !ok {
			continue
		}
		items = append(items, gen.emitStandalone(v))
	}

	for _, id := range area {
		if _, ok := gen.g.Edge(id); ok {
			items = append(items, gen.emitEdge(id))
		}
	}

	for _, id := range area {
		if _, ok := gen.g.Cut(id); ok {
			var inner strings.Builder
			gen.emitArea(&inner, id)
			if inner.Len() == 0 {
				items = append(items, "~[ ]")
			} else {
				items = append(items, "~[ "+inner.String()+" ]")
			}
		}
	}

	b.WriteString(strings.Join(items, " "))
}

// mentionedByLocalEdge reports whether any edge in the same area carries
// the vertex in its argument sequence.
func (gen *generator) mentionedByLocalEdge(ctx, vertexID eg.ID) bool {
	area, _ := gen.g.DirectArea(ctx)
	for _, id := range area {
		if _, ok := gen.g.Edge(id); !ok {
			continue
		}
		argv, _ := gen.g.Arguments(id)
		for _, arg := range argv {
			if arg == vertexID {
				return true
			}
		}
	}
	return false
}

// emitStandalone writes a vertex item with no enclosing relation: Peirce's
// heavy dot.
func (gen *generator) emitStandalone(v eg.Vertex) string {
	gen.defined[v.ID] = true
	if v.Constant {
		return fmt.Sprintf("%q", v.Label)
	}
	return "*" + gen.nameFor(v.ID)
}

// emitEdge writes (Name arg1 ... argN), choosing defining or bound form
// per argument.
func (gen *generator) emitEdge(edgeID eg.ID) string {
	name, _ := gen.g.Relation(edgeID)
	argv, _ := gen.g.Arguments(edgeID)

	parts := []string{name}
	for _, arg := range argv {
		parts = append(parts, gen.emitArgument(arg))
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// emitArgument writes one argument occurrence. Constants are always
// emitted as their quoted label: the parser merges same-label constants
// along the scope chain back into one vertex. Generic vertices get a
// defining occurrence exactly once.
func (gen *generator) emitArgument(id eg.ID) string {
	v, ok := gen.g.Vertex(id)
	if !ok {
		return ""
	}
	if v.Constant {
		gen.defined[id] = true
		return fmt.Sprintf("%q", v.Label)
	}
	if gen.defined[id] {
		return gen.nameFor(id)
	}
	gen.defined[id] = true
	return "*" + gen.nameFor(id)
}
