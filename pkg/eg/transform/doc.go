// Package transform implements the eight canonical inference rules for
// existential graphs as pure functions from graph to graph.
//
// Every rule validates its legality preconditions before touching
// anything, and returns a new [eg.Graph] on success; the input graph is
// never mutated and remains valid, so callers can keep a history of
// instances for undo. On violation a structured error is returned and the
// caller retains the original graph.
//
// The rules and their preconditions:
//
//   - [Erase]: target selection lies in positive contexts
//   - [Insert]: target context is negative
//   - [Iterate]: copy placed in the source context or one nested below it
//   - [DeIterate]: target is a duplicate-by-iteration of a subgraph at or
//     above it
//   - [AddDoubleCut]: always legal
//   - [RemoveDoubleCut]: target is exactly two nested cuts with nothing
//     between them
//   - [AddIsolatedVertex]: always legal
//   - [RemoveIsolatedVertex]: target vertex has no incident edges
//
// Rules operating on a subgraph take a [Selection], which is validated for
// edge-completeness and context-consistency before any rule-specific
// precondition is checked.
package transform
