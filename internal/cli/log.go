// Package cli implements the graphsvg command-line interface.
//
// This package provides commands for rendering positioned graphs to SVG and
// its derived formats, updating graphs embedded in HTML pages, and managing
// the artifact cache. The CLI is built using cobra and logs via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Generate SVG, DOT, PDF, or PNG output from a graph file
//   - update: Apply graph files to an HTML page with the incremental renderer
//   - validate: Check graph files without rendering
//   - cache: Manage the artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Pipeline and
// cache events reach the logger through observability hooks.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphsvg/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Rendered graph.json (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// logHooks reports pipeline and cache events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnLoadStart(_ context.Context, path string) {
	h.logger.Debug("loading graph", "path", path)
}

func (h *logHooks) OnLoadComplete(_ context.Context, path string, vertices, edges int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("load failed", "path", path, "error", err)
		return
	}
	h.logger.Debug("loaded graph", "path", path, "vertices", vertices, "edges", edges, "duration", d)
}

func (h *logHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("rendering", "formats", formats)
}

func (h *logHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "formats", formats, "error", err)
		return
	}
	h.logger.Debug("rendered", "formats", formats, "duration", d)
}

func (h *logHooks) OnUpdateComplete(_ context.Context, container string, s observability.UpdateStats, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("update failed", "container", container, "error", err)
		return
	}
	h.logger.Debug("updated", "container", container,
		"entered", s.Entered, "updated", s.Updated, "exited", s.Exited, "duration", d)
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

var (
	_ observability.PipelineHooks = (*logHooks)(nil)
	_ observability.CacheHooks    = (*logHooks)(nil)
)
