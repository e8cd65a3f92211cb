package eg_test

import (
	"fmt"

	"github.com/mhalvorsen/cutsheet/pkg/eg"
)

// Build "Socrates is a man, and it is not the case that Socrates is mortal":
// a constant vertex shared between an assertion on the sheet and one inside
// a cut.
func Example() {
	b := eg.NewBuilder()
	socrates := eg.Constant("Socrates")
	if err := b.AddVertex(b.Sheet(), socrates); err != nil {
		panic(err)
	}
	if err := b.AddEdge(b.Sheet(), eg.NewEdge(), "man", []eg.ID{socrates.ID}); err != nil {
		panic(err)
	}

	cut := eg.NewCut()
	if err := b.AddCut(b.Sheet(), cut); err != nil {
		panic(err)
	}
	if err := b.AddEdge(cut.ID, eg.NewEdge(), "mortal", []eg.ID{socrates.ID}); err != nil {
		panic(err)
	}

	g, err := b.Graph()
	if err != nil {
		panic(err)
	}

	pol, _ := g.Polarity(cut.ID)
	fmt.Printf("vertices=%d edges=%d cuts=%d\n", g.VertexCount(), g.EdgeCount(), g.CutCount())
	fmt.Printf("cut polarity: %s\n", pol)

	// Output:
	// vertices=1 edges=2 cuts=1
	// cut polarity: negative
}

// A derived graph never disturbs the one it came from.
func ExampleNewBuilderFrom() {
	b := eg.NewBuilder()
	if err := b.AddVertex(b.Sheet(), eg.Generic()); err != nil {
		panic(err)
	}
	original, err := b.Graph()
	if err != nil {
		panic(err)
	}

	d := eg.NewBuilderFrom(original)
	if err := d.AddVertex(d.Sheet(), eg.Generic()); err != nil {
		panic(err)
	}
	derived, err := d.Graph()
	if err != nil {
		panic(err)
	}

	fmt.Printf("original=%d derived=%d\n", original.VertexCount(), derived.VertexCount())

	// Output:
	// original=1 derived=2
}
