package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/graphsvg/pkg/graph"
)

// pointsPerInch converts vertex radii to Graphviz node sizes.
const pointsPerInch = 72

// ToDOT converts g to Graphviz DOT source. Vertex i becomes node "v{i}".
func ToDOT(g *graph.Graph, s graph.Settings) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  inputscale=72;\n")
	buf.WriteString("  notranslate=true;\n")
	buf.WriteString("  outputorder=edgesfirst;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  node [shape=circle, fixedsize=true, style=filled, label=\"\", fillcolor=%s, color=%s, penwidth=%s, fontcolor=%s];\n",
		quote(s.VertexFill()), quote(s.VertexStroke()), num(s.VertexStrokeWidth), quote(s.LabelFill()))
	fmt.Fprintf(&buf, "  edge [color=%s, penwidth=%s];\n", quote(s.EdgeStroke()), num(s.EdgeWidth))
	buf.WriteString("\n")

	labels := s.Mode.Exclusive(g) == graph.ModeLabels
	for i, v := range g.Vertices {
		fmt.Fprintf(&buf, "  %s [%s];\n", quote(nodeID(i)), strings.Join(vertexAttrs(v, s, labels), ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		attrs := edgeAttrs(e, s)
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %s -- %s;\n", quote(nodeID(e.V1)), quote(nodeID(e.V2)))
			continue
		}
		fmt.Fprintf(&buf, "  %s -- %s [%s];\n", quote(nodeID(e.V1)), quote(nodeID(e.V2)), strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(i int) string { return "v" + strconv.Itoa(i) }

func vertexAttrs(v graph.Vertex, s graph.Settings, labels bool) []string {
	size := 2 * s.Radius(v) / pointsPerInch
	attrs := []string{
		fmt.Sprintf("pos=\"%s,%s!\"", num(v.X), num(s.Height-v.Y)),
		fmt.Sprintf("width=%s", num(size)),
		fmt.Sprintf("height=%s", num(size)),
	}
	if labels && v.Label != "" {
		attrs = append(attrs, "label="+quote(v.Label))
	}
	if v.HoverLabel != "" {
		attrs = append(attrs, "tooltip="+quote(v.HoverLabel))
	}
	if v.Class != "" {
		attrs = append(attrs, "class="+quote(v.Class))
	}
	return attrs
}

func edgeAttrs(e graph.Edge, s graph.Settings) []string {
	var attrs []string
	if e.Weight != nil && *e.Weight != 1 {
		attrs = append(attrs, "penwidth="+num(s.EdgeWidth**e.Weight))
	}
	if e.HoverLabel != "" {
		attrs = append(attrs, "tooltip="+quote(e.HoverLabel))
	}
	if e.Class != "" {
		attrs = append(attrs, "class="+quote(e.Class))
	}
	return attrs
}

func num(f float64) string { return graph.FormatNumber(f) }

var quoter = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// quote makes a DOT double-quoted string. Only the quote and backslash are
// escaped; other runes, UTF-8 included, pass through as is.
func quote(s string) string { return `"` + quoter.Replace(s) + `"` }

// RenderSVG lays out DOT source with neato and renders it to SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return stripPointUnits(buf.Bytes()), nil
}

var sizeRe = regexp.MustCompile(`(width|height)="([0-9.]+)pt"`)

// stripPointUnits drops the "pt" suffix Graphviz puts on the root size so
// the output sizes match the static renderer's unitless pixels.
func stripPointUnits(svg []byte) []byte {
	start := bytes.Index(svg, []byte("<svg"))
	if start < 0 {
		return svg
	}
	end := bytes.IndexByte(svg[start:], '>')
	if end < 0 {
		return svg
	}
	end += start
	root := sizeRe.ReplaceAll(svg[start:end], []byte(`$1="$2"`))

	out := make([]byte, 0, len(svg))
	out = append(out, svg[:start]...)
	out = append(out, root...)
	return append(out, svg[end:]...)
}
