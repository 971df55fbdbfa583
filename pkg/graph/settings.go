package graph

import (
	"math"
	"strconv"

	"github.com/matzehuels/graphsvg/pkg/errors"
)

// Default colors used when a color setting is omitted.
const (
	DefaultEdgeColor         = "black"
	DefaultVertexFillColor   = "black"
	DefaultVertexStrokeColor = "black"
	DefaultLabelColor        = "white"
)

// Mode selects what is drawn on top of the vertex circles.
type Mode string

// Render modes. The zero value behaves like ModeAuto.
const (
	ModeAuto   Mode = "auto"   // decided by data presence
	ModeImages Mode = "images" // clipped images only
	ModeLabels Mode = "labels" // text labels only
	ModeNone   Mode = "none"   // circles only
)

// ParseMode parses a mode name. The empty string is ModeAuto.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeImages, ModeLabels, ModeNone:
		return m, nil
	}
	return "", errors.New(errors.ErrCodeInvalidMode, "invalid mode: %s (must be 'auto', 'images', 'labels', or 'none')", s)
}

// Exclusive resolves the mode for renderers that draw images or labels but
// never both: auto picks images if any vertex has one, then labels, then none.
func (m Mode) Exclusive(g *Graph) Mode {
	switch m {
	case ModeImages, ModeLabels, ModeNone:
		return m
	}
	switch {
	case g.HasImages():
		return ModeImages
	case g.HasLabels():
		return ModeLabels
	}
	return ModeNone
}

// Images reports whether per-vertex images may be drawn.
func (m Mode) Images() bool { return m == "" || m == ModeAuto || m == ModeImages }

// Labels reports whether per-vertex labels may be drawn.
func (m Mode) Labels() bool { return m == "" || m == ModeAuto || m == ModeLabels }

// Settings controls canvas size, stroke widths and colors.
type Settings struct {
	Width             float64 `json:"width" toml:"width"`
	Height            float64 `json:"height" toml:"height"`
	VertexRadius      float64 `json:"vertexRadius" toml:"vertex_radius"`
	VertexStrokeWidth float64 `json:"vertexStrokeWidth" toml:"vertex_stroke_width"`
	EdgeWidth         float64 `json:"edgeWidth" toml:"edge_width"`
	ViewBox           string  `json:"viewBox,omitempty" toml:"viewbox"`
	EdgeColor         string  `json:"edgeColor,omitempty" toml:"edge_color"`
	VertexFillColor   string  `json:"vertexFillColor,omitempty" toml:"vertex_fill_color"`
	VertexStrokeColor string  `json:"vertexStrokeColor,omitempty" toml:"vertex_stroke_color"`
	LabelColor        string  `json:"labelColor,omitempty" toml:"label_color"`
	Mode              Mode    `json:"mode,omitempty" toml:"mode"`
}

// EdgeStroke returns the edge color or its default.
func (s Settings) EdgeStroke() string { return or(s.EdgeColor, DefaultEdgeColor) }

// VertexFill returns the vertex fill color or its default.
func (s Settings) VertexFill() string { return or(s.VertexFillColor, DefaultVertexFillColor) }

// VertexStroke returns the vertex stroke color or its default.
func (s Settings) VertexStroke() string { return or(s.VertexStrokeColor, DefaultVertexStrokeColor) }

// LabelFill returns the label color or its default.
func (s Settings) LabelFill() string { return or(s.LabelColor, DefaultLabelColor) }

func or(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Radius returns the radius of v: VertexRadius scaled by the vertex weight
// when one is set, VertexRadius otherwise.
func (s Settings) Radius(v Vertex) float64 {
	if v.Weight != nil && *v.Weight != 0 {
		return *v.Weight * s.VertexRadius
	}
	return s.VertexRadius
}

// EdgeStrokeWidth returns EdgeWidth scaled by the edge weight. ok is false
// when the edge has no weight or no edge width is configured, in which case
// the group-level stroke width applies.
func (s Settings) EdgeStrokeWidth(e Edge) (w float64, ok bool) {
	if e.Weight == nil || *e.Weight == 0 || s.EdgeWidth == 0 {
		return 0, false
	}
	return *e.Weight * s.EdgeWidth, true
}

// Validate checks the settings a caller supplies before rendering.
func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidSettings, "width and height must be positive (got %sx%s)",
			FormatNumber(s.Width), FormatNumber(s.Height))
	}
	if s.VertexRadius < 0 || s.VertexStrokeWidth < 0 || s.EdgeWidth < 0 {
		return errors.New(errors.ErrCodeInvalidSettings, "radius and stroke widths cannot be negative")
	}
	if _, err := ParseMode(string(s.Mode)); err != nil {
		return err
	}
	colors := []struct{ name, value string }{
		{"edge", s.EdgeColor},
		{"vertex fill", s.VertexFillColor},
		{"vertex stroke", s.VertexStrokeColor},
		{"label", s.LabelColor},
	}
	for _, c := range colors {
		if err := errors.ValidateColor(c.name, c.value); err != nil {
			return err
		}
	}
	return nil
}

// FormatNumber formats f the shortest way that round-trips, without an
// exponent for ordinary magnitudes ("0", "10", "2.5").
func FormatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	if math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
