// Package dom is a small data-binding library over an in-memory document
// tree ([golang.org/x/net/html] nodes).
//
// # Overview
//
// It provides the classic selection and data-join primitives:
//
//   - [Select] and [Selection.Query] resolve CSS selectors (via cascadia)
//   - [Selection] setters (Attr, Style, Classed, Text) take constant values
//   - [Data] joins a slice to the child elements of a parent and partitions
//     them into enter, update and exit sets
//   - [Bound] setters (AttrFunc, StyleFunc, TextFunc) take per-datum functions
//
// # Join Semantics
//
//	j := dom.Data(group, "circle", vertices, nil)
//	j.Exit().Remove()
//	j.Enter().Append()
//	j.All().AttrFunc("cx", func(v Vertex, i int) (string, bool) { return fmt.Sprint(v.X), true })
//
// With a nil key function, elements are matched to data by position: the
// first len(data) existing children are updated, missing ones enter, and the
// trailing excess exits. With a key function, elements are matched by key;
// the key is stored in a data-key attribute so that it survives
// serialization and re-parsing. [Join.Order] restores document order to data
// order after a keyed join.
//
// Per-datum functions return (value, ok). ok == false removes the attribute
// or style property, like assigning null.
//
// # Namespaces
//
// Elements appended under an <svg> element are created in the svg namespace,
// and attribute names with an xlink: or xmlns: prefix are stored as
// namespaced attributes, matching what the HTML parser produces for inline SVG.
package dom
