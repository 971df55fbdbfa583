// Package pipeline runs the load → validate → render flow shared by every
// graphsvg entry point.
//
// # Architecture
//
// The pipeline has two stages:
//
//  1. Load: read a graph file with [io.LoadGraph] (a path, "-" or a URL) and check it with
//     [graph.Validate], so the renderers never see an out-of-range edge
//  2. Render: produce one artifact per requested format, or update a host
//     document with the incremental renderer
//
// Rendered artifacts are cached by a hash of the graph and every render
// option.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, "graph.json", pipeline.Options{
//	    Settings: pipeline.DefaultSettings(),
//	    Formats:  []render.Format{render.FormatSVG},
//	})
//	svg := result.Artifacts[render.FormatSVG]
//
// [io.LoadGraph]: github.com/matzehuels/graphsvg/pkg/io.LoadGraph
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphsvg/pkg/cache"
	"github.com/matzehuels/graphsvg/pkg/errors"
	"github.com/matzehuels/graphsvg/pkg/graph"
	"github.com/matzehuels/graphsvg/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for the CLI
// =============================================================================

const (
	// DefaultElementID is the id of the root <svg> element.
	DefaultElementID = "graph"

	// DefaultWidth is the default canvas width.
	DefaultWidth = 800.0

	// DefaultHeight is the default canvas height.
	DefaultHeight = 600.0

	// DefaultVertexRadius is the default circle radius.
	DefaultVertexRadius = 5.0

	// DefaultVertexStrokeWidth is the default circle outline width.
	DefaultVertexStrokeWidth = 1.0

	// DefaultEdgeWidth is the default line width.
	DefaultEdgeWidth = 1.0

	// DefaultScale is the PNG resolution multiplier.
	DefaultScale = 2.0
)

// DefaultSettings returns settings with every size at its default and every
// color unset, so the renderers' default colors apply.
func DefaultSettings() graph.Settings {
	return graph.Settings{
		Width:             DefaultWidth,
		Height:            DefaultHeight,
		VertexRadius:      DefaultVertexRadius,
		VertexStrokeWidth: DefaultVertexStrokeWidth,
		EdgeWidth:         DefaultEdgeWidth,
		Mode:              graph.ModeAuto,
	}
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	ElementID string          `json:"element_id,omitempty"`
	Settings  graph.Settings  `json:"settings"`
	Formats   []render.Format `json:"formats,omitempty"`
	Scale     float64         `json:"scale,omitempty"`   // PNG only
	Refresh   bool            `json:"refresh,omitempty"` // Skip cache reads

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the loaded, validated graph.
	Graph *graph.Graph

	// GraphHash is the content hash of the graph.
	GraphHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[render.Format][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	VertexCount int
	EdgeCount   int
	LoadTime    time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and fills in defaults.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.ElementID == "" {
		o.ElementID = DefaultElementID
	}
	if err := errors.ValidateElementID(o.ElementID); err != nil {
		return err
	}
	if len(o.Formats) == 0 {
		o.Formats = []render.Format{render.FormatSVG}
	}
	for _, f := range o.Formats {
		if _, err := render.ParseFormat(string(f)); err != nil {
			return err
		}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive")
	}
	if o.Settings.Width == 0 {
		o.Settings.Width = DefaultWidth
	}
	if o.Settings.Height == 0 {
		o.Settings.Height = DefaultHeight
	}
	if err := o.Settings.Validate(); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = discardLogger()
	}
	o.validated = true
	return nil
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

// FormatNames returns the formats as strings, for hooks and logs.
func (o *Options) FormatNames() []string {
	names := make([]string, len(o.Formats))
	for i, f := range o.Formats {
		names[i] = string(f)
	}
	return names
}

// ArtifactKeyOpts returns cache key options for one format.
func (o *Options) ArtifactKeyOpts(format render.Format) cache.ArtifactKeyOpts {
	key := cache.ArtifactKeyOpts{
		ElementID: o.ElementID,
		Format:    string(format),
		Settings:  o.Settings,
	}
	if format == render.FormatPNG {
		key.Format = string(format) + "@" + graph.FormatNumber(o.Scale)
	}
	return key
}
