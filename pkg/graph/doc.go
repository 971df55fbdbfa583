// Package graph defines the canonical input model shared by the graphsvg
// renderers.
//
// # Core Types
//
//   - [Graph]: vertices and edges with optional per-entity attributes
//   - [Vertex]: a positioned circle with optional label, hover text, image and weight
//   - [Edge]: a segment between two vertex indices with optional weight
//   - [ArrayGraph]: the parallel-array input shape, converted with [ArrayGraph.ToGraph]
//   - [Settings]: canvas size, stroke widths, colors and [Mode]
//
// Vertex positions are supplied by the caller; this package computes nothing
// beyond the radius and stroke-width formulas:
//
//	r := s.Radius(v)                  // VertexRadius × weight, or VertexRadius
//	w, ok := s.EdgeStrokeWidth(e)     // EdgeWidth × weight, or unset
//
// # Colors
//
// Omitted colors resolve to fixed defaults at the point of use:
//
//	s.EdgeStroke()    // "black" unless EdgeColor is set
//	s.VertexFill()    // "black" unless VertexFillColor is set
//	s.VertexStroke()  // "black" unless VertexStrokeColor is set
//	s.LabelFill()     // "white" unless LabelColor is set
//
// # Validation
//
// Renderers never validate their input. Callers that need robustness run
// [Validate] and [Settings.Validate] first.
package graph
