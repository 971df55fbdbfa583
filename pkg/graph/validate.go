package graph

import (
	"math"

	"github.com/matzehuels/graphsvg/pkg/errors"
)

// Validate reports the first structural problem in g: an edge endpoint
// outside the vertex range, a non-finite coordinate, or a duplicate id.
// A nil error means both renderers can draw g without a lookup failure.
func Validate(g *Graph) error {
	ids := make(map[string]int, len(g.Vertices))
	for i, v := range g.Vertices {
		if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
			return errors.New(errors.ErrCodeInvalidGraph, "vertex %d: non-finite position", i)
		}
		if v.ID == "" {
			continue
		}
		if j, dup := ids[v.ID]; dup {
			return errors.New(errors.ErrCodeInvalidGraph, "vertex %d: duplicate id %q (first used by vertex %d)", i, v.ID, j)
		}
		ids[v.ID] = i
	}

	edgeIDs := make(map[string]int, len(g.Edges))
	for i, e := range g.Edges {
		for _, end := range []int{e.V1, e.V2} {
			if end < 0 || end >= len(g.Vertices) {
				return errors.New(errors.ErrCodeInvalidGraph, "edge %d: vertex %d out of range [0,%d)", i, end, len(g.Vertices))
			}
		}
		if e.ID == "" {
			continue
		}
		if j, dup := edgeIDs[e.ID]; dup {
			return errors.New(errors.ErrCodeInvalidGraph, "edge %d: duplicate id %q (first used by edge %d)", i, e.ID, j)
		}
		edgeIDs[e.ID] = i
	}
	return nil
}

// Validate checks that the optional arrays of a are absent or aligned with
// the vertices and edges they annotate.
func (a ArrayGraph) Validate() error {
	aligned := []struct {
		name  string
		n, to int
	}{
		{"verticesImagesUrl", len(a.VerticesImageURL), len(a.Vertices)},
		{"verticesLabel", len(a.VerticesLabel), len(a.Vertices)},
		{"verticesHoverLabel", len(a.VerticesHoverLabel), len(a.Vertices)},
		{"edgesWeight", len(a.EdgesWeight), len(a.Edges)},
	}
	for _, c := range aligned {
		if c.n != 0 && c.n != c.to {
			return errors.New(errors.ErrCodeInvalidGraph, "%s has %d entries, want %d", c.name, c.n, c.to)
		}
	}
	return nil
}
