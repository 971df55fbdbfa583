package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/net/html"

	"github.com/matzehuels/graphsvg/pkg/cache"
	"github.com/matzehuels/graphsvg/pkg/graph"
	"github.com/matzehuels/graphsvg/pkg/io"
	"github.com/matzehuels/graphsvg/pkg/observability"
	"github.com/matzehuels/graphsvg/pkg/render"
	"github.com/matzehuels/graphsvg/pkg/render/bind"
)

const artifactKeyType = "artifact"

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// If logger is nil, logs are discarded.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = discardLogger()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute loads the graph at path and renders every requested format.
func (r *Runner) Execute(ctx context.Context, path string, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	g, err := r.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	result.Graph = g
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.VertexCount = len(g.Vertices)
	result.Stats.EdgeCount = len(g.Edges)
	result.GraphHash = hashGraph(g)

	opts.Logger.Debug("loaded graph",
		"path", path,
		"vertices", len(g.Vertices),
		"edges", len(g.Edges),
		"duration", result.Stats.LoadTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, g, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = hit

	opts.Logger.Debug("rendered outputs",
		"formats", opts.FormatNames(),
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads the graph file or URL at path and validates it.
func (r *Runner) Load(ctx context.Context, path string) (*graph.Graph, error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, path)
	start := time.Now()

	g, err := io.LoadGraph(ctx, path)
	if err == nil {
		err = graph.Validate(g)
	}
	if err != nil {
		hooks.OnLoadComplete(ctx, path, 0, 0, time.Since(start), err)
		return nil, err
	}
	hooks.OnLoadComplete(ctx, path, len(g.Vertices), len(g.Edges), time.Since(start), nil)
	return g, nil
}

// RenderWithCacheInfo renders g with caching and reports whether every
// artifact came from the cache. g must be valid.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, g *graph.Graph, opts Options) (map[render.Format][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	graphHash := hashGraph(g)
	useCache := graphHash != ""

	if useCache && !opts.Refresh {
		if artifacts, ok := r.cached(ctx, graphHash, opts); ok {
			return artifacts, true, nil
		}
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.FormatNames())
	start := time.Now()
	artifacts, err := Render(ctx, g, opts)
	hooks.OnRenderComplete(ctx, opts.FormatNames(), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range artifacts {
		if !useCache {
			break
		}
		key := r.Keyer.ArtifactKey(graphHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			opts.Logger.Debug("cache write failed", "format", format, "error", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, artifactKeyType, len(data))
	}

	return artifacts, false, nil
}

// cached returns every artifact from the cache, or false if any is missing.
func (r *Runner) cached(ctx context.Context, graphHash string, opts Options) (map[render.Format][]byte, bool) {
	artifacts := make(map[render.Format][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(graphHash, opts.ArtifactKeyOpts(format))
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil || !hit {
			observability.Cache().OnCacheMiss(ctx, artifactKeyType)
			return nil, false
		}
		observability.Cache().OnCacheHit(ctx, artifactKeyType)
		artifacts[format] = data
	}
	return artifacts, true
}

// Update applies g to the graph element inside container in doc with the
// incremental renderer. g must be valid. Caching does not apply.
func (r *Runner) Update(ctx context.Context, doc *html.Node, container string, g *graph.Graph, opts Options) (bind.Report, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return bind.Report{}, err
	}

	start := time.Now()
	report, err := bind.Update(doc, container, opts.ElementID, g, opts.Settings)
	observability.Pipeline().OnUpdateComplete(ctx, container, updateStats(report), time.Since(start), err)
	if err != nil {
		return bind.Report{}, err
	}

	opts.Logger.Debug("updated document",
		"container", container,
		"created", report.Created,
		"vertices", report.Vertices,
		"edges", report.Edges)
	return report, nil
}

func updateStats(r bind.Report) observability.UpdateStats {
	var s observability.UpdateStats
	for _, c := range []bind.Counts{r.Vertices, r.Edges, r.ClipPaths, r.Images, r.Labels} {
		s.Entered += c.Entered
		s.Updated += c.Updated
		s.Exited += c.Exited
	}
	return s
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// hashGraph returns "" for graphs JSON cannot encode (non-finite numbers),
// which disables caching for them.
func hashGraph(g *graph.Graph) string {
	data, err := json.Marshal(g)
	if err != nil {
		return ""
	}
	return cache.Hash(data)
}
