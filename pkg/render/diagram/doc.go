// Package diagram renders existential graphs as node-link diagrams via
// Graphviz.
//
// The projection follows the conventional reading of Peirce's notation:
// cuts become nested dashed clusters, vertices become identity spots
// (heavy dots), and predicates become labeled boxes joined to their
// argument spots by undirected lines carrying the argument position.
//
// The package is a pure consumer of the core model: it walks a graph's
// area mapping and never mutates it.
package diagram
