// Package render holds the graph renderers and output conversion.
//
// # Renderers
//
//   - [svg]: static renderer, graph to SVG markup string
//   - [bind]: incremental renderer, keeps an SVG element in a host document
//     in sync with successive graphs
//   - [dot]: Graphviz DOT export with pinned positions
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG with the external rsvg-convert tool
// (from librsvg):
//
//	out := svg.Render("g1", g, settings)
//	pdf, err := render.ToPDF(ctx, []byte(out))
//	png, err := render.ToPNG(ctx, []byte(out), 2.0) // 2x scale
//
// [svg]: github.com/matzehuels/graphsvg/pkg/render/svg
// [bind]: github.com/matzehuels/graphsvg/pkg/render/bind
// [dot]: github.com/matzehuels/graphsvg/pkg/render/dot
package render
