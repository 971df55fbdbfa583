// Package io reads and writes graphs, render settings and host documents.
//
// # Graph Formats
//
// Graphs are read in three shapes. The canonical JSON shape mirrors
// [graph.Graph]:
//
//	{
//	  "vertices": [{"x": 0, "y": 0, "label": "a"}, {"x": 10, "y": 0}],
//	  "edges": [{"v1": 0, "v2": 1, "weight": 2}]
//	}
//
// The parallel-array JSON shape mirrors [graph.ArrayGraph]: edges are index
// pairs and optional attributes live in arrays aligned with the vertices or
// edges:
//
//	{
//	  "vertices": [{"x": 0, "y": 0}, {"x": 10, "y": 0}],
//	  "edges": [[0, 1]],
//	  "verticesLabel": ["a", "b"],
//	  "edgesWeight": [2]
//	}
//
// [ReadJSON] tells the two apart by the presence of the array keys or of an
// index-pair edge. TOML files use the canonical shape with snake_case keys:
//
//	[[vertices]]
//	x = 0.0
//	y = 0.0
//	label = "a"
//
//	[[edges]]
//	v1 = 0
//	v2 = 1
//
// [ImportGraph] picks the decoder from the file extension (.toml or JSON).
// [LoadGraph] also accepts http and https URLs.
// Decoding does not validate edge endpoints; see [graph.Validate].
//
// # Settings
//
// [LoadSettings] decodes a TOML settings file over an existing
// [graph.Settings], so keys missing from the file keep their current value.
// Unknown keys are rejected.
//
// # Documents
//
// [LoadDocument] and [SaveDocument] read and write the HTML documents the
// incremental renderer updates.
package io
