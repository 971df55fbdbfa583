// Package pkg provides the core libraries for graphsvg.
//
// # Overview
//
// graphsvg draws graphs whose vertices already carry coordinates: circles for
// vertices, straight lines for edges, and optionally a clipped image or a
// text label on each vertex. It does not compute layouts. The pkg directory
// is organized into four areas:
//
//  1. [graph] - The graph model, render settings and validation
//  2. [render] - The static SVG renderer, the incremental renderer and the
//     Graphviz bridge
//  3. [io] - Graph, settings and HTML document files
//  4. [pipeline] - Orchestration (load → validate → render) with caching
//
// # Architecture
//
// The typical data flow:
//
//	graph file (JSON, TOML or URL)
//	         ↓
//	    [io] package (decode)
//	         ↓
//	    [graph] package (validate edge endpoints)
//	         ↓
//	    [render/svg] (one SVG string)    or    [render/bind] (update a DOM)
//	         ↓
//	    SVG/DOT/PDF/PNG output
//
// # Quick Start
//
// Render a graph to an SVG string:
//
//	g := &graph.Graph{
//	    Vertices: []graph.Vertex{{X: 10, Y: 10, Label: "a"}, {X: 90, Y: 40}},
//	    Edges:    []graph.Edge{{V1: 0, V2: 1}},
//	}
//	out := svg.Render("graph", g, pipeline.DefaultSettings())
//
// Update a graph embedded in a page; running it again with changed data
// reconciles the existing elements instead of redrawing them:
//
//	doc, _ := io.LoadDocument("index.html")
//	report, err := bind.Update(doc, "#figure", "graph", g, settings)
//
// # Main Packages
//
// [render/svg] - Static renderer. Writes the whole document in one pass with
// svgo. Draws images or labels, never both.
//
// [render/bind] - Incremental renderer. Keyed data joins over an HTML tree
// keep elements stable across updates.
//
// [render/dot] - Graphviz DOT export, and SVG drawn by Graphviz at the fixed
// vertex positions.
//
// [dom] - The selection and data-join layer [render/bind] is written against.
//
// [render] - Output formats and SVG to PDF/PNG conversion.
//
// ## Infrastructure
//
// [cache] - Artifact cache (file and null) with build-scoped keys.
//
// [httputil] - Remote graph download with retry.
//
// [observability] - Hooks for load, render, update and cache events.
//
// [errors] - Coded errors shared by every package.
//
// [buildinfo] - Version information injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/render/...    # Specific package
//	go test -run Example        # Examples only
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/graphsvg/pkg/graph
// [render]: https://pkg.go.dev/github.com/matzehuels/graphsvg/pkg/render
// [render/svg]: https://pkg.go.dev/github.com/matzehuels/graphsvg/pkg/render/svg
// [render/bind]: https://pkg.go.dev/github.com/matzehuels/graphsvg/pkg/render/bind
// [render/dot]: https://pkg.go.dev/github.com/matzehuels/graphsvg/pkg/render/dot
// [dom]: https://pkg.go.dev/github.com/matzehuels/graphsvg/pkg/dom
// [io]: https://pkg.go.dev/github.com/matzehuels/graphsvg/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/graphsvg/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/graphsvg/pkg/cache
// [httputil]: https://pkg.go.dev/github.com/matzehuels/graphsvg/pkg/httputil
// [observability]: https://pkg.go.dev/github.com/matzehuels/graphsvg/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/graphsvg/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/graphsvg/pkg/buildinfo
package pkg
