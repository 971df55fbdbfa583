// Package bind keeps an SVG element inside a host document in sync with a
// graph, updating it in place on every call.
//
// # Usage
//
//	doc, _ := html.Parse(page)
//	report, err := bind.Update(doc, "#chart", "g1", g, settings)
//	// ... later, with new data:
//	report, err = bind.Update(doc, "#chart", "g1", g2, settings)
//
// # Structure
//
// The first call creates the <svg> element under the container with five
// children in paint order:
//
//	<defs>                     clip paths of imaged vertices
//	<g class="edges">          one <line> per edge
//	<g class="vertices">       one <circle> per vertex
//	<g class="verticesLabels"> one <text> per labelled vertex
//	<g class="verticesImage">  one <image> per imaged vertex
//
// Later calls reuse it. Each layer is reconciled with [dom.Data]: new data
// enter, removed data exit, and every surviving element has all of its
// attributes reassigned. Elements are keyed by the vertex or edge ID when one
// is set and by array position otherwise.
//
// # Tooltips
//
// After the layers are reconciled, circles, images, labels and lines drop
// their <title> children and get a fresh one only where hover text is set.
//
// # Errors
//
// Update fails only when the container selector is invalid or matches
// nothing. Graph data is not validated: an edge endpoint outside the vertex
// range panics, possibly after some layers were already updated.
package bind
