package transform

import (
	"github.com/mhalvorsen/cutsheet/pkg/eg"
	egerr "github.com/mhalvorsen/cutsheet/pkg/errors"
)

// copier duplicates elements from a source graph into a builder, tracking
// the old-to-new id mapping so argument sequences can be rewritten.
// Vertices outside the copied set keep their original ids in rewritten
// argument sequences, which is how ligature identity to the originals is
// preserved.
type copier struct {
	src     *eg.Graph
	b       *eg.Builder
	include func(eg.ID) bool
	copies  map[eg.ID]eg.ID
}

func newCopier(src *eg.Graph, b *eg.Builder, include func(eg.ID) bool) *copier {
	return &copier{src: src, b: b, include: include, copies: map[eg.ID]eg.ID{}}
}

// copyArea copies the included elements of srcCtx's direct area into
// dstCtx: vertices first, then edges, then cuts recursively, in area
// insertion order. Edges within a copied cut always find their copied
// argument vertices because vertices of every level are placed before the
// level's edges and a vertex is always at or above its referencing edge.
func (c *copier) copyArea(srcCtx, dstCtx eg.ID) error {
	area, err := c.src.DirectArea(srcCtx)
	if err != nil {
		return err
	}

	for _, id := range area {
		v, ok := c.src.Vertex(id)
		if !ok || !c.include(id) {
			continue
		}
		cp := eg.Vertex{ID: eg.NewVertexID(), Label: v.Label, Constant: v.Constant}
		if err := c.b.AddVertex(dstCtx, cp); err != nil {
			return egerr.Wrap(egerr.ErrCodeInternal, err, "copy vertex %s", id.Short())
		}
		c.copies[id] = cp.ID
	}

	for _, id := range area {
		if _, ok := c.src.Edge(id); !ok || !c.include(id) {
			continue
		}
		name, err := c.src.Relation(id)
		if err != nil {
			return err
		}
		argv, err := c.src.Arguments(id)
		if err != nil {
			return err
		}
		mapped := make([]eg.ID, len(argv))
		for i, arg := range argv {
			if cp, ok := c.copies[arg]; ok {
				mapped[i] = cp
			} else {
				mapped[i] = arg
			}
		}
		cp := eg.NewEdge()
		if err := c.b.AddEdge(dstCtx, cp, name, mapped); err != nil {
			return egerr.Wrap(egerr.ErrCodeInternal, err, "copy edge %s", id.Short())
		}
		c.copies[id] = cp.ID
	}

	for _, id := range area {
		if _, ok := c.src.Cut(id); !ok || !c.include(id) {
			continue
		}
		cp := eg.NewCut()
		if err := c.b.AddCut(dstCtx, cp); err != nil {
			return egerr.Wrap(egerr.ErrCodeInternal, err, "copy cut %s", id.Short())
		}
		c.copies[id] = cp.ID
		if err := c.copyArea(id, cp.ID); err != nil {
			return err
		}
	}

	return nil
}
