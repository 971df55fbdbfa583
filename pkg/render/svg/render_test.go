package svg

import (
	"fmt"
	"strings"
	"testing"

	"github.com/matzehuels/graphsvg/pkg/graph"
)

func baseSettings() graph.Settings {
	return graph.Settings{Width: 100, Height: 50, VertexRadius: 5, VertexStrokeWidth: 1, EdgeWidth: 2}
}

func twoVertices() *graph.Graph {
	return &graph.Graph{
		Vertices: []graph.Vertex{{X: 0, Y: 0}, {X: 10, Y: 0}},
		Edges:    []graph.Edge{{V1: 0, V2: 1}},
	}
}

func TestRender_Basic(t *testing.T) {
	out := Render("g1", twoVertices(), baseSettings())

	wantContains := []string{
		`<svg id="g1" width="100" height="50" version="1.1"`,
		`xmlns="http://www.w3.org/2000/svg"`,
		`xmlns:xlink="http://www.w3.org/1999/xlink"`,
		`<line x1="0" y1="0" x2="10" y2="0"/>`,
		`<circle cx="0" cy="0" r="5">`,
		`<circle cx="10" cy="0" r="5">`,
		`stroke:black;stroke-width:2px;`,
		`fill:black;stroke:black;stroke-width:1px;`,
		`</svg>`,
	}
	for _, want := range wantContains {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q\n%s", want, out)
		}
	}

	for _, absent := range []string{"viewBox", "<text", "<image", "<title", "<clipPath", "<defs"} {
		if strings.Contains(out, absent) {
			t.Errorf("Render() unexpectedly contains %q", absent)
		}
	}

	if n := strings.Count(out, "<circle"); n != 2 {
		t.Errorf("circle count = %d, want 2", n)
	}
	if n := strings.Count(out, "<line"); n != 1 {
		t.Errorf("line count = %d, want 1", n)
	}
}

func TestRender_ElementCounts(t *testing.T) {
	for _, n := range []int{0, 1, 5, 20} {
		g := &graph.Graph{}
		for i := 0; i < n; i++ {
			g.Vertices = append(g.Vertices, graph.Vertex{X: float64(i), Y: float64(2 * i)})
			if i > 0 {
				g.Edges = append(g.Edges, graph.Edge{V1: i - 1, V2: i}, graph.Edge{V1: 0, V2: i})
			}
		}

		out := Render("g", g, baseSettings())

		if got := strings.Count(out, "<circle"); got != len(g.Vertices) {
			t.Errorf("n=%d: circles = %d, want %d", n, got, len(g.Vertices))
		}
		if got := strings.Count(out, "<line"); got != len(g.Edges) {
			t.Errorf("n=%d: lines = %d, want %d", n, got, len(g.Edges))
		}
	}
}

func TestRender_ViewBox(t *testing.T) {
	s := baseSettings()
	s.ViewBox = "0 0 200 100"
	out := Render("g", twoVertices(), s)
	if !strings.Contains(out, `viewBox="0 0 200 100"`) {
		t.Errorf("Render() missing viewBox:\n%s", out)
	}
}

func TestRender_EdgeWeights(t *testing.T) {
	g := &graph.Graph{
		Vertices: []graph.Vertex{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}},
		Edges: []graph.Edge{
			{V1: 0, V2: 1, Weight: graph.W(1)},
			{V1: 1, V2: 2, Weight: graph.W(2.5)},
			{V1: 0, V2: 2},
		},
	}

	out := Render("g", g, baseSettings())

	if n := strings.Count(out, ` stroke-width="`); n != 1 {
		t.Errorf("stroke-width overrides = %d, want 1\n%s", n, out)
	}
	if !strings.Contains(out, `<line x1="1" y1="1" x2="2" y2="2" stroke-width="5px"/>`) {
		t.Errorf("missing weighted edge override:\n%s", out)
	}
}

func TestRender_Colors(t *testing.T) {
	s := baseSettings()
	s.EdgeColor = "gray"
	s.VertexFillColor = "red"
	s.VertexStrokeColor = "blue"
	s.LabelColor = "yellow"

	g := twoVertices()
	g.Vertices[0].Label = "a"

	out := Render("g", g, s)

	for _, want := range []string{
		"stroke:gray;stroke-width:2px;",
		"fill:red;stroke:blue;stroke-width:1px;",
		"text-anchor: middle; fill: yellow",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q\n%s", want, out)
		}
	}
}

func TestRender_ColorsEscaped(t *testing.T) {
	s := baseSettings()
	s.EdgeColor = `gray"><script>`
	s.VertexFillColor = `red"`
	s.VertexStrokeColor = "<b>"
	s.LabelColor = `red"><script>`

	g := twoVertices()
	g.Vertices[0].Label = "a"

	out := Render("g", g, s)

	if strings.Contains(out, "<script>") || strings.Contains(out, "<b>") {
		t.Errorf("color injected markup:\n%s", out)
	}
	for _, want := range []string{
		`stroke:gray&#34;&gt;&lt;script&gt;;`,
		`fill:red&#34;;stroke:&lt;b&gt;;`,
		`fill: red&#34;&gt;&lt;script&gt;"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q\n%s", want, out)
		}
	}
}

func TestRender_PlainGroups(t *testing.T) {
	g := twoVertices()
	g.Vertices[0].ImageURL = "a.png"

	out := Render("g", g, baseSettings())

	if strings.Contains(out, "<g >") {
		t.Errorf("group tag has a trailing space:\n%s", out)
	}
	if n := strings.Count(out, "<g>\n"); n != 2 {
		t.Errorf("bare <g> count = %d, want 2\n%s", n, out)
	}
}

func TestRender_Labels(t *testing.T) {
	g := twoVertices()
	g.Vertices[0].Label = "A&B"
	g.Vertices[0].HoverLabel = "first vertex"

	out := Render("g", g, baseSettings())

	if !strings.Contains(out, "text-anchor: middle; fill: white") {
		t.Errorf("label group should default to white:\n%s", out)
	}
	if !strings.Contains(out, `<text x="0" y="0" style="dominant-baseline: central;">A&amp;B`) {
		t.Errorf("missing escaped label:\n%s", out)
	}
	if n := strings.Count(out, "<text"); n != 1 {
		t.Errorf("text count = %d, want 1", n)
	}
	// Hover text is nested in both the circle and the label.
	if n := strings.Count(out, "<title>first vertex</title>"); n != 2 {
		t.Errorf("title count = %d, want 2\n%s", n, out)
	}
}

func TestRender_Images(t *testing.T) {
	g := &graph.Graph{
		Vertices: []graph.Vertex{
			{X: 10, Y: 20, ImageURL: "a.png", Label: "a", HoverLabel: "A"},
			{X: 30, Y: 40, Label: "b"},
			{X: 50, Y: 60, ImageURL: "c.png"},
		},
	}

	out := Render("graph", g, baseSettings())

	if n := strings.Count(out, "<clipPath"); n != 3 {
		t.Errorf("clipPath count = %d, want 3 (one per vertex)", n)
	}
	for i := range g.Vertices {
		id := fmt.Sprintf(`id="graph-v%d"`, i)
		if n := strings.Count(out, id); n != 1 {
			t.Errorf("%s count = %d, want 1", id, n)
		}
	}
	if strings.Contains(out, "<text") {
		t.Error("labels must not be drawn when images are present")
	}
	if n := strings.Count(out, "<image"); n != 2 {
		t.Errorf("image count = %d, want 2", n)
	}
	want := `<image xlink:href="a.png" clip-path="url(#graph-v0)" x="5" y="15" width="11" height="11">`
	if !strings.Contains(out, want) {
		t.Errorf("missing %q\n%s", want, out)
	}
	if !strings.Contains(out, `clip-path="url(#graph-v2)"`) {
		t.Error("image for vertex 2 should reference its own clip path")
	}
	// Clip circles plus vertex circles.
	if n := strings.Count(out, "<circle"); n != 6 {
		t.Errorf("circle count = %d, want 6", n)
	}
}

func TestRender_ExplicitMode(t *testing.T) {
	g := twoVertices()
	g.Vertices[0].ImageURL = "a.png"
	g.Vertices[0].Label = "a"

	s := baseSettings()
	s.Mode = graph.ModeLabels
	out := Render("g", g, s)
	if strings.Contains(out, "<image") || strings.Contains(out, "<clipPath") {
		t.Error("labels mode must not draw images or clip paths")
	}
	if !strings.Contains(out, "<text") {
		t.Error("labels mode should draw labels")
	}

	s.Mode = graph.ModeNone
	out = Render("g", g, s)
	if strings.Contains(out, "<image") || strings.Contains(out, "<text") {
		t.Error("none mode should draw circles only")
	}
}

func TestRender_Tooltips(t *testing.T) {
	g := twoVertices()
	g.Vertices[1].HoverLabel = "<second>"
	g.Edges[0].HoverLabel = "link"

	out := Render("g", g, baseSettings())

	if n := strings.Count(out, "<title>"); n != 2 {
		t.Errorf("title count = %d, want 2\n%s", n, out)
	}
	if !strings.Contains(out, "&lt;second&gt;") {
		t.Errorf("hover text should be escaped:\n%s", out)
	}
	if !strings.Contains(out, "<circle cx=\"0\" cy=\"0\" r=\"5\"></circle>") {
		t.Errorf("vertex without hover text should have no title:\n%s", out)
	}
}

func TestRender_Class(t *testing.T) {
	g := twoVertices()
	g.Vertices[0].Class = "root"
	g.Edges[0].Class = "tree"

	out := Render("g", g, baseSettings())

	if !strings.Contains(out, `r="5" class="root">`) {
		t.Errorf("missing vertex class:\n%s", out)
	}
	if !strings.Contains(out, `y2="0" class="tree"/>`) {
		t.Errorf("missing edge class:\n%s", out)
	}
}

func TestRender_Deterministic(t *testing.T) {
	g := twoVertices()
	g.Vertices[0].ImageURL = "x.png"
	if Render("g", g, baseSettings()) != Render("g", g, baseSettings()) {
		t.Error("Render() should be deterministic")
	}
}

func TestRender_OutOfRangeEdgePanics(t *testing.T) {
	g := &graph.Graph{
		Vertices: []graph.Vertex{{}},
		Edges:    []graph.Edge{{V1: 0, V2: 3}},
	}
	defer func() {
		if recover() == nil {
			t.Error("Render() should panic on an out-of-range edge endpoint")
		}
	}()
	Render("g", g, baseSettings())
}

func TestRenderArrays(t *testing.T) {
	a := graph.ArrayGraph{
		Vertices:           []graph.Point{{X: 0, Y: 0}, {X: 10, Y: 0}},
		Edges:              [][2]int{{0, 1}},
		VerticesLabel:      []string{"a", "b"},
		VerticesHoverLabel: []string{"A", "B"},
		EdgesWeight:        []float64{3},
	}

	out := RenderArrays("g", a, baseSettings())

	if n := strings.Count(out, "<text"); n != 2 {
		t.Errorf("text count = %d, want 2", n)
	}
	if !strings.Contains(out, `stroke-width="6px"`) {
		t.Errorf("missing weighted stroke:\n%s", out)
	}
}
