// Package svg renders a graph as a self-contained SVG document string.
//
// # Usage
//
//	g := &graph.Graph{
//	    Vertices: []graph.Vertex{{X: 0, Y: 0}, {X: 10, Y: 0}},
//	    Edges:    []graph.Edge{{V1: 0, V2: 1}},
//	}
//	markup := svg.Render("g1", g, graph.Settings{Width: 100, Height: 50, VertexRadius: 5})
//
// Parallel-array input is accepted through [RenderArrays].
//
// # Output Structure
//
// Elements are emitted in paint order:
//
//   - <defs> with one circular <clipPath id="{id}-v{index}"> per vertex, only when images are drawn
//   - a <g> wrapping the edge group (<line>) and the vertex group (<circle>)
//   - either a label group (<text>) or an image group (<image>), never both
//
// Which of labels or images is drawn follows [graph.Mode.Exclusive]. Hover
// text becomes a nested <title> on the circle, label or image.
//
// # Errors
//
// Render does not validate. An edge endpoint outside the vertex range panics
// with an index-out-of-range error; run [graph.Validate] first when the input
// is untrusted.
//
// # Dependencies
//
// Styled groups, definitions, clip paths and titles are written with
// [github.com/ajstarks/svgo]. Shapes are written directly because svgo's
// shape helpers take integer coordinates and cannot nest a <title>. Color
// settings are escaped before they reach a style attribute.
package svg
