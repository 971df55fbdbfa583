package svg_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/graphsvg/pkg/graph"
	"github.com/matzehuels/graphsvg/pkg/render/svg"
)

func ExampleRender() {
	g := &graph.Graph{
		Vertices: []graph.Vertex{{X: 0, Y: 0}, {X: 10, Y: 0}},
		Edges:    []graph.Edge{{V1: 0, V2: 1}},
	}
	s := graph.Settings{Width: 100, Height: 50, VertexRadius: 5, VertexStrokeWidth: 1, EdgeWidth: 2}

	out := svg.Render("example", g, s)

	fmt.Println(strings.Count(out, "<circle"), "circles")
	fmt.Println(strings.Count(out, "<line"), "line")
	// Output:
	// 2 circles
	// 1 line
}
