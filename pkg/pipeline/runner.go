package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/barchart3d/pkg/cache"
	"github.com/matzehuels/barchart3d/pkg/chart"
	"github.com/matzehuels/barchart3d/pkg/observability"
)

// Cache key types reported to observability hooks.
const (
	keyTypeSeries   = "series"
	keyTypeArtifact = "artifact"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → build → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	series, loadHit, err := r.LoadWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Series = series
	result.Stats.LoadTime = time.Since(loadStart)
	result.CacheInfo.LoadHit = loadHit

	logger.Info("loaded series",
		"x", len(series.X),
		"y", len(series.Y),
		"z", len(series.Z),
		"cached", loadHit,
		"duration", result.Stats.LoadTime)

	// Stage 2: Build
	buildStart := time.Now()
	scene, err := r.Build(ctx, series, opts)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Scene = scene
	result.Stats.Stats = scene.Stats
	result.Stats.Mode = scene.Mode
	result.Stats.Baseline = scene.Baseline
	result.Stats.BuildTime = time.Since(buildStart)

	logger.Info("built scene",
		"mode", scene.Mode,
		"bars", scene.Stats.Bars,
		"placeholders", scene.Stats.Placeholders,
		"duration", result.Stats.BuildTime)
	if scene.Stats.Dropped > 0 {
		logger.Warn("z values do not fit the grid and were dropped", "dropped", scene.Stats.Dropped)
	}

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, hash, renderHit, err := r.render(ctx, scene, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.SceneHash = hash
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LoadWithCacheInfo loads the series with caching and returns cache hit info.
// The cache key covers the file content, so edits to the file invalidate it.
func (r *Runner) LoadWithCacheInfo(ctx context.Context, opts Options) (s *Series, hit bool, err error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, false, err
	}
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, opts.Input)
	start := time.Now()
	defer func() {
		points := 0
		if s != nil {
			points = len(s.Z)
		}
		hooks.OnLoadComplete(ctx, opts.Input, points, time.Since(start), err)
	}()

	data, format, err := readInput(opts)
	if err != nil {
		return nil, false, err
	}
	cacheKey := r.Keyer.SeriesKey(cache.Hash(data), opts.SeriesKeyOpts(format))

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if cached, ok := r.get(ctx, cacheKey, keyTypeSeries); ok {
			var decoded Series
			if err := json.Unmarshal(cached, &decoded); err == nil {
				return &decoded, true, nil
			}
			// Undecodable entry: fall through and overwrite it
		}
	}

	series, err := parseSeries(data, format, opts)
	if err != nil {
		return nil, false, err
	}
	if encoded, err := json.Marshal(series); err == nil {
		r.set(ctx, cacheKey, keyTypeSeries, encoded, cache.TTLSeries)
	}
	return series, false, nil
}

// Load is a convenience wrapper that calls LoadWithCacheInfo and discards the cache hit info.
func (r *Runner) Load(ctx context.Context, opts Options) (*Series, error) {
	s, _, err := r.LoadWithCacheInfo(ctx, opts)
	return s, err
}

// Build classifies the series and lays out the scene.
func (r *Runner) Build(ctx context.Context, s *Series, opts Options) (scene *chart.Scene, err error) {
	hooks := observability.Pipeline()
	hooks.OnBuildStart(ctx, len(s.Z))
	start := time.Now()
	defer func() {
		mode, bars := "", 0
		if scene != nil {
			mode, bars = scene.Mode.String(), len(scene.Bars)
		}
		hooks.OnBuildComplete(ctx, mode, bars, time.Since(start), err)
	}()

	return Build(s, opts)
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, s *chart.Scene, opts Options) (map[string][]byte, bool, error) {
	artifacts, _, hit, err := r.render(ctx, s, opts)
	return artifacts, hit, err
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, s *chart.Scene, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, s, opts)
	return artifacts, err
}

func (r *Runner) render(ctx context.Context, s *chart.Scene, opts Options) (artifacts map[string][]byte, hash string, hit bool, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, "", false, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	defer func() { hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err) }()

	// Compute cache key from scene data
	sceneData, err := json.Marshal(s)
	if err != nil {
		return nil, "", false, fmt.Errorf("serialize scene for cache key: %w", err)
	}
	hash = cache.Hash(sceneData)

	// Try to get all formats from cache
	if !opts.Refresh {
		artifacts = make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			data, ok := r.get(ctx, r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format)), keyTypeArtifact)
			if !ok {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, hash, true, nil // All artifacts from cache
		}
	}

	// Render all formats
	rendered, err := Render(ctx, s, opts)
	if err != nil {
		return nil, "", false, err
	}

	for format, data := range rendered {
		r.set(ctx, r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format)), keyTypeArtifact, data, cache.TTLArtifact)
	}

	return rendered, hash, false, nil // Cache miss
}

// get reads a cache entry, reporting hits and misses. Backend errors are
// logged and treated as misses.
func (r *Runner) get(ctx context.Context, key, keyType string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Debug("cache read failed", "type", keyType, "err", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return data, true
}

// set writes a cache entry. Failures only cost a future cache miss.
func (r *Runner) set(ctx context.Context, key, keyType string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Debug("cache write failed", "type", keyType, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
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
