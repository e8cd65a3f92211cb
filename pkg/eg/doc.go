// Package eg implements the immutable data model for Peirce's Existential
// Graphs in Dau's formal presentation: a relational graph with cuts.
//
// A [Graph] holds vertices (lines of identity), edges (predicate instances
// with ordered arguments), and cuts (negation contexts) in flat id-keyed
// collections. Containment is expressed purely through the area mapping
// (context id to direct children), never through parent or child pointers,
// so the structure is acyclic by construction and cheap to copy.
//
// Graphs are immutable once built. Construction goes through [Builder]:
//
//	b := eg.NewBuilder()
//	x, _ := b.AddVertex(b.Sheet(), eg.Generic())
//	b.AddEdge(b.Sheet(), "Human", x)
//	g, err := b.Graph()
//
// Every operation that derives a new graph (see the transform subpackage)
// starts a fresh builder from the old graph and returns a new instance;
// the original remains valid, which is what makes undo and concurrent
// reads trivial for callers.
//
// # Area versus full context
//
// [Graph.DirectArea] returns only the direct children of a context.
// [Graph.FullContext] returns the transitive closure, computed on demand
// and never stored. The two are deliberately separate operations; callers
// that conflate them reintroduce a historical class of duplication bugs.
//
// # Polarity
//
// Context polarity is derived, not stored: the sheet of assertion is
// positive and each level of cut nesting flips it. See [Graph.Polarity].
package eg
