package eg

import (
	"strings"

	"github.com/google/uuid"
)

// ID is an opaque unique identifier for a vertex, edge, or cut.
// The sheet of assertion is identified by a cut-like context id.
// IDs carry a short kind prefix for readability in logs and serialized
// graphs, but no code may depend on the prefix for semantics.
type ID string

// Id prefixes by element kind.
const (
	vertexPrefix = "v_"
	edgePrefix   = "e_"
	cutPrefix    = "c_"
	sheetPrefix  = "s_"
)

// NewVertexID returns a fresh unique vertex id.
func NewVertexID() ID { return ID(vertexPrefix + uuid.NewString()) }

// NewEdgeID returns a fresh unique edge id.
func NewEdgeID() ID { return ID(edgePrefix + uuid.NewString()) }

// NewCutID returns a fresh unique cut id.
func NewCutID() ID { return ID(cutPrefix + uuid.NewString()) }

// NewSheetID returns a fresh unique sheet-of-assertion id.
func NewSheetID() ID { return ID(sheetPrefix + uuid.NewString()) }

// Short returns an abbreviated form of the id for display purposes.
func (id ID) Short() string {
	s := string(id)
	if i := strings.Index(s, "_"); i >= 0 && len(s) > i+9 {
		return s[:i+9]
	}
	return s
}

// Vertex represents an individual: a line-of-identity endpoint.
// Generic vertices denote existentially quantified individuals and carry
// no label; constant vertices denote named individuals.
// Vertices are immutable value objects.
type Vertex struct {
	ID       ID
	Label    string // set only when Constant
	Constant bool
}

// IsGeneric reports whether the vertex denotes an existential variable
// rather than a named constant.
func (v Vertex) IsGeneric() bool { return !v.Constant }

// Generic returns a fresh generic vertex.
func Generic() Vertex {
	return Vertex{ID: NewVertexID()}
}

// Constant returns a fresh constant vertex with the given label.
func Constant(label string) Vertex {
	return Vertex{ID: NewVertexID(), Label: label, Constant: true}
}

// Edge represents a predicate instance. Its relation name and ordered
// argument sequence live in the graph-level mappings, not on the edge
// itself, mirroring the heavy reliance on id-indexed mappings throughout
// the model.
type Edge struct {
	ID ID
}

// Cut represents a negation boundary. Its position in the hierarchy and
// its contents are determined entirely by the graph's area mapping.
type Cut struct {
	ID ID
}

// Polarity of a context: positive (sheet or even cut-nesting depth) or
// negative (odd depth). Polarity governs which transformation rules are
// legal in a context.
type Polarity int

const (
	// Positive polarity: assertions in this context are asserted.
	Positive Polarity = iota
	// Negative polarity: assertions in this context are denied.
	Negative
)

// String returns "positive" or "negative".
func (p Polarity) String() string {
	if p == Negative {
		return "negative"
	}
	return "positive"
}
