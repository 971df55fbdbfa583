package bind

import (
	"strconv"

	"golang.org/x/net/html"

	"github.com/matzehuels/graphsvg/pkg/dom"
	"github.com/matzehuels/graphsvg/pkg/errors"
	"github.com/matzehuels/graphsvg/pkg/graph"
)

// Layer group classes, in paint order.
const (
	ClassEdges    = "edges"
	ClassVertices = "vertices"
	ClassLabels   = "verticesLabels"
	ClassImages   = "verticesImage"
)

// Counts reports how a data join changed one layer.
type Counts struct {
	Entered int
	Updated int
	Exited  int
}

// Report summarizes one Update call.
type Report struct {
	Created   bool // the <svg> element was created by this call
	Vertices  Counts
	Edges     Counts
	ClipPaths Counts
	Images    Counts
	Labels    Counts
}

type vertexDatum struct {
	graph.Vertex
	Index int
}

type edgeDatum struct {
	graph.Edge
	Index int
}

// Update resolves containerSelector in doc and brings the graph element in it
// up to date with g.
func Update(doc *html.Node, containerSelector, elementID string, g *graph.Graph, s graph.Settings) (Report, error) {
	container, err := dom.Select(doc, containerSelector)
	if err != nil {
		return Report{}, err
	}
	if container.Empty() {
		return Report{}, errors.New(errors.ErrCodeNotFound, "container %q not found", containerSelector)
	}
	return Bind(container, elementID, g, s), nil
}

// Bind brings the graph element under the first node of container up to
// date with g.
func Bind(container *dom.Selection, elementID string, g *graph.Graph, s graph.Settings) Report {
	var report Report
	root := findRoot(container, elementID)
	if root.Empty() {
		root = container.Append("svg").
			Attr("id", elementID).
			Attr("version", "1.1").
			Attr("xmlns", "http://www.w3.org/2000/svg").
			Attr("xmlns:xlink", "http://www.w3.org/1999/xlink")
		report.Created = true
	}
	ensureLayers(root)

	root.Attr("width", num(s.Width)).Attr("height", num(s.Height))
	if s.ViewBox != "" {
		root.Attr("viewBox", s.ViewBox)
	} else {
		root.RemoveAttr("viewBox")
	}

	vertices := make([]vertexDatum, len(g.Vertices))
	for i, v := range g.Vertices {
		vertices[i] = vertexDatum{Vertex: v, Index: i}
	}
	edges := make([]edgeDatum, len(g.Edges))
	for i, e := range g.Edges {
		edges[i] = edgeDatum{Edge: e, Index: i}
	}

	var imaged, labelled []vertexDatum
	for _, v := range vertices {
		if v.ImageURL != "" && s.Mode.Images() {
			imaged = append(imaged, v)
		}
		if v.Label != "" && s.Mode.Labels() {
			labelled = append(labelled, v)
		}
	}

	circles := bindVertices(root, vertices, s, &report.Vertices)
	lines := bindEdges(root, edges, g, s, &report.Edges)
	bindClipPaths(root, imaged, elementID, s, &report.ClipPaths)
	images := bindImages(root, imaged, elementID, s, &report.Images)
	labels := bindLabels(root, labelled, s, &report.Labels)

	for _, sel := range []*dom.Bound[vertexDatum]{circles, images, labels} {
		sel.Children("title").Remove()
		sel.Filter(func(v vertexDatum, _ int) bool { return v.HoverLabel != "" }).
			Append("title").
			TextFunc(func(v vertexDatum, _ int) string { return v.HoverLabel })
	}
	lines.Children("title").Remove()
	lines.Filter(func(e edgeDatum, _ int) bool { return e.HoverLabel != "" }).
		Append("title").
		TextFunc(func(e edgeDatum, _ int) string { return e.HoverLabel })

	return report
}

// findRoot returns the <svg id=elementID> child of the container's first
// node. Other <svg> children belong to the page and are left alone.
func findRoot(container *dom.Selection, elementID string) *dom.Selection {
	for _, n := range dom.From(container.Node()).Children("svg").Nodes() {
		if id, _ := dom.From(n).AttrValue("id"); id == elementID {
			return dom.From(n)
		}
	}
	return dom.From()
}

// ensureLayers creates whichever of defs and the layer groups are missing,
// keeping them in paint order relative to the ones already present.
func ensureLayers(root *dom.Selection) {
	classes := []string{ClassEdges, ClassVertices, ClassLabels, ClassImages}
	var next *html.Node
	for i := len(classes) - 1; i >= 0; i-- {
		g := layer(root, classes[i])
		if g.Empty() {
			g = root.Insert("g", next).Classed(classes[i], true)
		}
		next = g.Node()
	}
	if root.Child("defs").Empty() {
		root.Insert("defs", next)
	}
}

func layer(root *dom.Selection, class string) *dom.Selection {
	return root.Children("g").FilterClass(class)
}

// reconcile removes the exit set, creates the enter set and returns every
// bound element in data order.
func reconcile[T any](j *dom.Join[T], c *Counts) *dom.Bound[T] {
	c.Updated = j.Update().Len()
	exit := j.Exit()
	c.Exited = exit.Len()
	exit.Remove()
	c.Entered = j.Enter().Append().Len()
	return j.Order().All()
}

func bindVertices(root *dom.Selection, vertices []vertexDatum, s graph.Settings, c *Counts) *dom.Bound[vertexDatum] {
	group := layer(root, ClassVertices).
		Style("fill", s.VertexFill()).
		Style("stroke", s.VertexStroke()).
		Style("stroke-width", px(s.VertexStrokeWidth))

	return reconcile(dom.Data(group, "circle", vertices, vertexKey), c).
		AttrFunc("cx", func(v vertexDatum, _ int) (string, bool) { return num(v.X), true }).
		AttrFunc("cy", func(v vertexDatum, _ int) (string, bool) { return num(v.Y), true }).
		AttrFunc("r", func(v vertexDatum, _ int) (string, bool) { return num(s.Radius(v.Vertex)), true }).
		AttrFunc("class", func(v vertexDatum, _ int) (string, bool) { return v.Class, v.Class != "" })
}

func bindEdges(root *dom.Selection, edges []edgeDatum, g *graph.Graph, s graph.Settings, c *Counts) *dom.Bound[edgeDatum] {
	group := layer(root, ClassEdges).
		Style("stroke-width", px(s.EdgeWidth)).
		Style("stroke", s.EdgeStroke())

	return reconcile(dom.Data(group, "line", edges, edgeKey), c).
		AttrFunc("x1", func(e edgeDatum, _ int) (string, bool) { return num(g.Vertices[e.V1].X), true }).
		AttrFunc("y1", func(e edgeDatum, _ int) (string, bool) { return num(g.Vertices[e.V1].Y), true }).
		AttrFunc("x2", func(e edgeDatum, _ int) (string, bool) { return num(g.Vertices[e.V2].X), true }).
		AttrFunc("y2", func(e edgeDatum, _ int) (string, bool) { return num(g.Vertices[e.V2].Y), true }).
		StyleFunc("stroke-width", func(e edgeDatum, _ int) (string, bool) {
			w, ok := s.EdgeStrokeWidth(e.Edge)
			return px(w), ok
		}).
		AttrFunc("class", func(e edgeDatum, _ int) (string, bool) { return e.Class, e.Class != "" })
}

func bindClipPaths(root *dom.Selection, imaged []vertexDatum, elementID string, s graph.Settings, c *Counts) {
	defs := root.Child("defs")
	reconcile(dom.Data(defs, "clipPath", imaged, vertexKey), c).
		AttrFunc("id", func(v vertexDatum, _ int) (string, bool) { return graph.ClipPathID(elementID, v.Index), true }).
		Clear().
		Append("circle").
		AttrFunc("cx", func(v vertexDatum, _ int) (string, bool) { return num(v.X), true }).
		AttrFunc("cy", func(v vertexDatum, _ int) (string, bool) { return num(v.Y), true }).
		AttrFunc("r", func(v vertexDatum, _ int) (string, bool) { return num(s.Radius(v.Vertex)), true })
}

func bindImages(root *dom.Selection, imaged []vertexDatum, elementID string, s graph.Settings, c *Counts) *dom.Bound[vertexDatum] {
	group := layer(root, ClassImages)
	return reconcile(dom.Data(group, "image", imaged, vertexKey), c).
		AttrFunc("xlink:href", func(v vertexDatum, _ int) (string, bool) { return v.ImageURL, true }).
		AttrFunc("clip-path", func(v vertexDatum, _ int) (string, bool) {
			return "url(#" + graph.ClipPathID(elementID, v.Index) + ")", true
		}).
		AttrFunc("x", func(v vertexDatum, _ int) (string, bool) { return num(v.X - s.Radius(v.Vertex)), true }).
		AttrFunc("y", func(v vertexDatum, _ int) (string, bool) { return num(v.Y - s.Radius(v.Vertex)), true }).
		AttrFunc("width", func(v vertexDatum, _ int) (string, bool) { return num(2*s.Radius(v.Vertex) + 1), true }).
		AttrFunc("height", func(v vertexDatum, _ int) (string, bool) { return num(2*s.Radius(v.Vertex) + 1), true })
}

func bindLabels(root *dom.Selection, labelled []vertexDatum, s graph.Settings, c *Counts) *dom.Bound[vertexDatum] {
	group := layer(root, ClassLabels).
		Style("text-anchor", "middle").
		Style("fill", s.LabelFill()).
		Style("dominant-baseline", "central")

	return reconcile(dom.Data(group, "text", labelled, vertexKey), c).
		AttrFunc("x", func(v vertexDatum, _ int) (string, bool) { return num(v.X), true }).
		AttrFunc("y", func(v vertexDatum, _ int) (string, bool) { return num(v.Y), true }).
		TextFunc(func(v vertexDatum, _ int) string { return v.Label })
}

// vertexKey identifies a vertex by ID, falling back to its position in the
// full vertex list so filtered layers stay aligned with the vertex.
func vertexKey(v vertexDatum, _ int) string {
	if v.ID != "" {
		return "id:" + v.ID
	}
	return "i:" + strconv.Itoa(v.Index)
}

func edgeKey(e edgeDatum, _ int) string {
	if e.ID != "" {
		return "id:" + e.ID
	}
	return "i:" + strconv.Itoa(e.Index)
}

func num(f float64) string { return graph.FormatNumber(f) }

func px(f float64) string { return num(f) + "px" }
