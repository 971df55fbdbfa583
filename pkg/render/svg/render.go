package svg

import (
	"fmt"
	"html"
	"io"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"github.com/matzehuels/graphsvg/pkg/graph"
)

const (
	nsSVG   = "http://www.w3.org/2000/svg"
	nsXLink = "http://www.w3.org/1999/xlink"
)

// Render returns the SVG markup for g.
func Render(elementID string, g *graph.Graph, s graph.Settings) string {
	var buf strings.Builder
	r := renderer{canvas: svgo.New(&buf), id: elementID, g: g, s: s}
	r.render()
	return buf.String()
}

// RenderArrays renders a parallel-array graph. See [graph.ArrayGraph.ToGraph].
func RenderArrays(elementID string, a graph.ArrayGraph, s graph.Settings) string {
	return Render(elementID, a.ToGraph(), s)
}

type renderer struct {
	canvas *svgo.SVG
	id     string
	g      *graph.Graph
	s      graph.Settings
}

func (r *renderer) w() io.Writer { return r.canvas.Writer }

func (r *renderer) render() {
	mode := r.s.Mode.Exclusive(r.g)

	r.renderRoot()
	if mode == graph.ModeImages {
		r.renderClipPaths()
	}

	r.group()
	r.renderEdges()
	r.renderVertices()
	r.canvas.Gend()

	switch mode {
	case graph.ModeImages:
		r.renderImages()
	case graph.ModeLabels:
		r.renderLabels()
	}
	r.canvas.End()
}

func (r *renderer) renderRoot() {
	fmt.Fprintf(r.w(), `<svg id="%s" width="%s" height="%s" version="1.1" xmlns="%s" xmlns:xlink="%s"`,
		esc(r.id), num(r.s.Width), num(r.s.Height), nsSVG, nsXLink)
	if r.s.ViewBox != "" {
		fmt.Fprintf(r.w(), ` viewBox="%s"`, esc(r.s.ViewBox))
	}
	io.WriteString(r.w(), ">\n")
}

// renderClipPaths emits a clip path for every vertex, imaged or not, so
// the ids stay aligned with vertex indices.
func (r *renderer) renderClipPaths() {
	r.canvas.Def()
	for i, v := range r.g.Vertices {
		r.canvas.ClipPath(fmt.Sprintf(`id="%s"`, esc(graph.ClipPathID(r.id, i))))
		fmt.Fprintf(r.w(), `<circle cx="%s" cy="%s" r="%s"></circle>`+"\n", num(v.X), num(v.Y), num(r.s.VertexRadius))
		r.canvas.ClipEnd()
	}
	r.canvas.DefEnd()
}

func (r *renderer) renderEdges() {
	r.canvas.Gstyle(fmt.Sprintf("stroke:%s;stroke-width:%spx;", esc(r.s.EdgeStroke()), num(r.s.EdgeWidth)))
	for _, e := range r.g.Edges {
		a, b := r.g.Vertices[e.V1], r.g.Vertices[e.V2]
		fmt.Fprintf(r.w(), `<line x1="%s" y1="%s" x2="%s" y2="%s"`, num(a.X), num(a.Y), num(b.X), num(b.Y))
		if e.Weight != nil && *e.Weight != 1 {
			fmt.Fprintf(r.w(), ` stroke-width="%spx"`, num(r.s.EdgeWidth**e.Weight))
		}
		writeClass(r.w(), e.Class)
		if e.HoverLabel == "" {
			io.WriteString(r.w(), "/>\n")
			continue
		}
		io.WriteString(r.w(), ">")
		r.canvas.Title(e.HoverLabel)
		io.WriteString(r.w(), "</line>\n")
	}
	r.canvas.Gend()
}

func (r *renderer) renderVertices() {
	r.canvas.Gstyle(fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%spx;",
		esc(r.s.VertexFill()), esc(r.s.VertexStroke()), num(r.s.VertexStrokeWidth)))
	for _, v := range r.g.Vertices {
		fmt.Fprintf(r.w(), `<circle cx="%s" cy="%s" r="%s"`, num(v.X), num(v.Y), num(r.s.VertexRadius))
		writeClass(r.w(), v.Class)
		io.WriteString(r.w(), ">")
		r.title(v.HoverLabel)
		io.WriteString(r.w(), "</circle>\n")
	}
	r.canvas.Gend()
}

func (r *renderer) renderImages() {
	rad := r.s.VertexRadius
	r.group()
	for i, v := range r.g.Vertices {
		if v.ImageURL == "" {
			continue
		}
		fmt.Fprintf(r.w(), `<image xlink:href="%s" clip-path="url(#%s)" x="%s" y="%s" width="%s" height="%s">`,
			esc(v.ImageURL), esc(graph.ClipPathID(r.id, i)),
			num(v.X-rad), num(v.Y-rad), num(2*rad+1), num(2*rad+1))
		r.title(v.HoverLabel)
		io.WriteString(r.w(), "</image>\n")
	}
	r.canvas.Gend()
}

func (r *renderer) renderLabels() {
	r.canvas.Gstyle(fmt.Sprintf("text-anchor: middle; fill: %s", esc(r.s.LabelFill())))
	for _, v := range r.g.Vertices {
		if v.Label == "" {
			continue
		}
		fmt.Fprintf(r.w(), `<text x="%s" y="%s" style="dominant-baseline: central;">%s`, num(v.X), num(v.Y), esc(v.Label))
		r.title(v.HoverLabel)
		io.WriteString(r.w(), "</text>\n")
	}
	r.canvas.Gend()
}

// group opens an attribute-less <g>; svgo's Group leaves a trailing space.
func (r *renderer) group() { io.WriteString(r.w(), "<g>\n") }

func (r *renderer) title(text string) {
	if text != "" {
		r.canvas.Title(text)
	}
}

func writeClass(w io.Writer, class string) {
	if class != "" {
		fmt.Fprintf(w, ` class="%s"`, esc(class))
	}
}

func num(f float64) string { return graph.FormatNumber(f) }

func esc(s string) string { return html.EscapeString(s) }
