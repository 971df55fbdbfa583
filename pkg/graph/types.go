package graph

import "fmt"

// Point is a position in user coordinates.
type Point struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

// Vertex is a positioned graph vertex. Every field except the position is optional.
type Vertex struct {
	ID         string   `json:"id,omitempty" toml:"id"`     // Stable identity for incremental updates
	X          float64  `json:"x" toml:"x"`                 // Center x
	Y          float64  `json:"y" toml:"y"`                 // Center y
	Label      string   `json:"label,omitempty" toml:"label"`
	HoverLabel string   `json:"hoverLabel,omitempty" toml:"hover_label"`
	ImageURL   string   `json:"imageUrl,omitempty" toml:"image_url"`
	Weight     *float64 `json:"weight,omitempty" toml:"weight"` // Scales the radius
	Class      string   `json:"class,omitempty" toml:"class"`
}

// Point returns the vertex center.
func (v Vertex) Point() Point { return Point{X: v.X, Y: v.Y} }

// Edge connects two vertices by index.
type Edge struct {
	ID         string   `json:"id,omitempty" toml:"id"`
	V1         int      `json:"v1" toml:"v1"`
	V2         int      `json:"v2" toml:"v2"`
	Weight     *float64 `json:"weight,omitempty" toml:"weight"` // Scales the stroke width
	Class      string   `json:"class,omitempty" toml:"class"`
	HoverLabel string   `json:"hoverLabel,omitempty" toml:"hover_label"`
}

// Graph is the canonical graph description consumed by every renderer.
// Edge endpoints must be valid indices into Vertices.
type Graph struct {
	Vertices []Vertex `json:"vertices" toml:"vertices"`
	Edges    []Edge   `json:"edges" toml:"edges"`
}

// HasImages reports whether any vertex carries an image URL.
func (g *Graph) HasImages() bool {
	for _, v := range g.Vertices {
		if v.ImageURL != "" {
			return true
		}
	}
	return false
}

// HasLabels reports whether any vertex carries a label.
func (g *Graph) HasLabels() bool {
	for _, v := range g.Vertices {
		if v.Label != "" {
			return true
		}
	}
	return false
}

// ClipPathID returns the id of the circular clip path of vertex index v in
// the document element elementID.
func ClipPathID(elementID string, v int) string {
	return fmt.Sprintf("%s-v%d", elementID, v)
}

// W returns a weight pointer, for building graphs in code.
func W(w float64) *float64 { return &w }

// ArrayGraph is the parallel-array graph shape: positions and index pairs,
// plus optional arrays aligned with Vertices or Edges.
type ArrayGraph struct {
	Vertices           []Point   `json:"vertices"`
	Edges              [][2]int  `json:"edges"`
	VerticesImageURL   []string  `json:"verticesImagesUrl,omitempty"`
	VerticesLabel      []string  `json:"verticesLabel,omitempty"`
	VerticesHoverLabel []string  `json:"verticesHoverLabel,omitempty"`
	EdgesWeight        []float64 `json:"edgesWeight,omitempty"`
}

// ToGraph converts the parallel arrays into a [Graph]. Entries missing from a
// short optional array are treated as absent.
func (a ArrayGraph) ToGraph() *Graph {
	g := &Graph{
		Vertices: make([]Vertex, len(a.Vertices)),
		Edges:    make([]Edge, len(a.Edges)),
	}
	for i, p := range a.Vertices {
		g.Vertices[i] = Vertex{
			X:          p.X,
			Y:          p.Y,
			Label:      at(a.VerticesLabel, i),
			HoverLabel: at(a.VerticesHoverLabel, i),
			ImageURL:   at(a.VerticesImageURL, i),
		}
	}
	for i, e := range a.Edges {
		g.Edges[i] = Edge{V1: e[0], V2: e[1]}
		if i < len(a.EdgesWeight) {
			g.Edges[i].Weight = W(a.EdgesWeight[i])
		}
	}
	return g
}

func at(s []string, i int) string {
	if i < len(s) {
		return s[i]
	}
	return ""
}
