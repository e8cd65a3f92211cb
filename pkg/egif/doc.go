// Package egif implements the EGIF linear notation for existential graphs:
// a parser from text to [eg.Graph] and a generator back to text.
//
// The grammar is a sequence of whitespace-separated items at every nesting
// level:
//
//   - relation:  (Name arg1 ... argN), N >= 0
//   - cut:       ~[ item item ... ]
//   - isolated vertex: a bare defining occurrence *x or a bare "Constant"
//
// Arguments are a defining variable occurrence *x (introduces a fresh
// variable), a bound occurrence x (must resolve in the current context or
// an ancestor context), or a quoted constant "Name".
//
// Parse and Generate are semantic round-trip partners: for any valid graph
// g, Parse(Generate(g)) is isomorphic to g. Surface form is not guaranteed
// byte-identical, since item ordering within a context carries no meaning.
package egif
