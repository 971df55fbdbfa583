// Package dot exports graphs as Graphviz DOT source with pinned positions.
//
// # Overview
//
// [ToDOT] writes an undirected graph where every vertex keeps the position it
// was given: nodes carry pos="x,y!" and the graph sets inputscale=72 so the
// coordinates are read as points. Graphviz uses a y-up coordinate system,
// so y is mirrored against Settings.Height.
//
//	src := dot.ToDOT(g, settings)
//	svg, err := dot.RenderSVG(ctx, src)
//
// [RenderSVG] lays the source out with neato, which honors pinned positions,
// and returns SVG bytes.
//
// # Styling
//
// Colors, vertex radius, stroke widths and edge weights map onto the
// corresponding DOT attributes. Labels are drawn when the render mode
// resolves to labels. Images are not exported; Graphviz only reads local
// image files.
//
// # Dependencies
//
// Rendering uses [github.com/goccy/go-graphviz], which runs Graphviz
// in-process.
package dot
