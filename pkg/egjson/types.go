// Package egjson is the canonical JSON projection of an existential graph.
// Used for tooling persistence, API responses, and cross-tool exchange.
//
// The format is lossless with respect to the six invariant-bearing
// components of the model: vertices, edges, the argument-order mapping,
// cuts, the area mapping, and the relation-name mapping. Import → export →
// re-import preserves every element id and every mapping exactly.
package egjson

import (
	"encoding/json"

	"github.com/mhalvorsen/cutsheet/pkg/eg"
	egerr "github.com/mhalvorsen/cutsheet/pkg/errors"
)

// Graph is the serialization format for existential graphs.
type Graph struct {
	Sheet    string   `json:"sheet"`
	Vertices []Vertex `json:"vertices,omitempty"`
	Edges    []Edge   `json:"edges,omitempty"`
	Cuts     []Cut    `json:"cuts,omitempty"`
	Areas    []Area   `json:"areas,omitempty"`
}

// Vertex is one individual: generic (existential) or a named constant.
type Vertex struct {
	ID       string `json:"id"`
	Label    string `json:"label,omitempty"`
	Constant bool   `json:"constant,omitempty"`
}

// Edge is one predicate instance with its relation name and ordered
// argument vertex ids. Argument order is semantically meaningful.
type Edge struct {
	ID       string   `json:"id"`
	Relation string   `json:"relation"`
	Args     []string `json:"args"`
}

// Cut is one negation context. Its position comes from Areas.
type Cut struct {
	ID string `json:"id"`
}

// Area lists the direct children of one context, in traversal order.
type Area struct {
	Context  string   `json:"context"`
	Elements []string `json:"elements"`
}

// FromGraph converts a graph to its serialization format. Vertices, edges,
// and cuts are sorted by id for deterministic output; areas are listed in
// depth-first traversal order from the sheet, each preserving its
// insertion order.
func FromGraph(g *eg.Graph) Graph {
	out := Graph{Sheet: string(g.Sheet())}

	for _, v := range g.Vertices() {
		out.Vertices = append(out.Vertices, Vertex{ID: string(v.ID), Label: v.Label, Constant: v.Constant})
	}
	for _, e := range g.Edges() {
		rel, _ := g.Relation(e.ID)
		argv, _ := g.Arguments(e.ID)
		args := make([]string, len(argv))
		for i, a := range argv {
			args[i] = string(a)
		}
		out.Edges = append(out.Edges, Edge{ID: string(e.ID), Relation: rel, Args: args})
	}
	for _, c := range g.Cuts() {
		out.Cuts = append(out.Cuts, Cut{ID: string(c.ID)})
	}

	var walk func(ctx eg.ID)
	walk = func(ctx eg.ID) {
		area, err := g.DirectArea(ctx)
		if err != nil {
			return
		}
		elements := make([]string, len(area))
		for i, id := range area {
			elements[i] = string(id)
		}
		out.Areas = append(out.Areas, Area{Context: string(ctx), Elements: elements})
		for _, id := range area {
			if _, ok := g.Cut(id); ok {
				walk(id)
			}
		}
	}
	walk(g.Sheet())

	return out
}

// ToGraph rebuilds a graph from its serialization format, preserving every
// id. The rebuilt graph is validated; corrupt input (dangling references,
// double containment, non-tree nesting) is rejected rather than repaired.
func ToGraph(data Graph) (*eg.Graph, error) {
	if data.Sheet == "" {
		return nil, egerr.New(egerr.ErrCodeInvalidInput, "graph has no sheet id")
	}
	b := eg.NewBuilderWithSheet(eg.ID(data.Sheet))

	vertices := make(map[string]Vertex, len(data.Vertices))
	for _, v := range data.Vertices {
		vertices[v.ID] = v
	}
	edges := make(map[string]Edge, len(data.Edges))
	for _, e := range data.Edges {
		edges[e.ID] = e
	}
	cuts := make(map[string]bool, len(data.Cuts))
	for _, c := range data.Cuts {
		cuts[c.ID] = true
	}
	areas := make(map[string][]string, len(data.Areas))
	for _, a := range data.Areas {
		areas[a.Context] = a.Elements
	}

	// First pass places vertices and cuts top-down so every context
	// exists before its children; the second pass adds edges once all
	// argument vertices are in place.
	var place func(ctx string) error
	place = func(ctx string) error {
		for _, id := range areas[ctx] {
			switch {
			case cuts[id]:
				if err := b.AddCut(eg.ID(ctx), eg.Cut{ID: eg.ID(id)}); err != nil {
					return egerr.Wrap(egerr.ErrCodeInvalidInput, err, "place cut %s", id)
				}
				if err := place(id); err != nil {
					return err
				}
			default:
				if v, ok := vertices[id]; ok {
					ev := eg.Vertex{ID: eg.ID(v.ID), Label: v.Label, Constant: v.Constant}
					if err := b.AddVertex(eg.ID(ctx), ev); err != nil {
						return egerr.Wrap(egerr.ErrCodeInvalidInput, err, "place vertex %s", id)
					}
				}
			}
		}
		return nil
	}
	if err := place(data.Sheet); err != nil {
		return nil, err
	}

	var placeEdges func(ctx string) error
	placeEdges = func(ctx string) error {
		for _, id := range areas[ctx] {
			if cuts[id] {
				if err := placeEdges(id); err != nil {
					return err
				}
				continue
			}
			e, ok := edges[id]
			if !ok {
				continue
			}
			argv := make([]eg.ID, len(e.Args))
			for i, a := range e.Args {
				argv[i] = eg.ID(a)
			}
			if err := b.AddEdge(eg.ID(ctx), eg.Edge{ID: eg.ID(e.ID)}, e.Relation, argv); err != nil {
				return egerr.Wrap(egerr.ErrCodeInvalidInput, err, "place edge %s", id)
			}
		}
		return nil
	}
	if err := placeEdges(data.Sheet); err != nil {
		return nil, err
	}

	g, err := b.Graph()
	if err != nil {
		return nil, egerr.Wrap(egerr.ErrCodeInvalidInput, err, "rebuild graph")
	}

	// Anything declared but never placed in an area is an orphan the
	// builder cannot have seen; report it rather than silently dropping.
	for _, v := range data.Vertices {
		if _, ok := g.Vertex(eg.ID(v.ID)); !ok {
			return nil, egerr.New(egerr.ErrCodeInvalidInput, "vertex %s not placed in any area", v.ID)
		}
	}
	for _, e := range data.Edges {
		if _, ok := g.Edge(eg.ID(e.ID)); !ok {
			return nil, egerr.New(egerr.ErrCodeInvalidInput, "edge %s not placed in any area", e.ID)
		}
	}
	for _, c := range data.Cuts {
		if _, ok := g.Cut(eg.ID(c.ID)); !ok {
			return nil, egerr.New(egerr.ErrCodeInvalidInput, "cut %s not placed in any area", c.ID)
		}
	}

	return g, nil
}

// UnmarshalGraph deserializes JSON bytes to the wire format.
func UnmarshalGraph(data []byte) (Graph, error) {
	var g Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return Graph{}, err
	}
	return g, nil
}
