package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mlindner/patchpack/pkg/cache"
	"github.com/mlindner/patchpack/pkg/observability"
	"github.com/mlindner/patchpack/pkg/pack"
	"github.com/mlindner/patchpack/pkg/patch"
	"github.com/mlindner/patchpack/pkg/render"
)

// Runner encapsulates pipeline execution with caching. Both the CLI and
// the HTTP server use this to avoid duplicating caching logic.
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

// Execute runs the complete layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	stage, err := opts.TargetStage()
	if err != nil {
		return nil, err
	}

	result := &Result{
		Stage:     stage,
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Layout
	layoutStart := time.Now()
	patches, layoutHit, err := r.ComputeLayoutWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Patches = patches
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.PatchCount = len(patches)
	result.CacheInfo.LayoutHit = layoutHit

	if data, err := marshalLayout(patches); err == nil {
		result.LayoutHash = cache.Hash(data)
	}

	r.Logger.Info("computed layout",
		"patches", len(patches),
		"stage", stage.String(),
		"duration", result.Stats.LayoutTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, patches, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ComputeLayoutWithCacheInfo computes the target-stage layout with
// caching and returns cache hit info.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, opts Options) ([]patch.Patch, bool, error) {
	opts.SetLayoutDefaults()
	r.applyLogger(&opts)

	stage, err := opts.TargetStage()
	if err != nil {
		return nil, false, err
	}
	cacheKey := r.Keyer.LayoutKey(opts.LayoutKeyOpts(stage))

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			patches, err := unmarshalLayout(data)
			if err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return patches, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
		}
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	layoutStart := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, stage.String(), opts.Cols*opts.Rows)

	pl, err := pack.NewSeeded(opts.PackConfig(), opts.Seed)
	if err != nil {
		observability.Pipeline().OnLayoutComplete(ctx, stage.String(), time.Since(layoutStart), err)
		return nil, false, err
	}
	for pl.Stage() < stage {
		pl.Advance()
	}
	patches := pl.Patches()
	observability.Pipeline().OnLayoutComplete(ctx, stage.String(), time.Since(layoutStart), nil)

	// Cache the result
	if data, err := marshalLayout(patches); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}

	return patches, false, nil // Cache miss
}

// ComputeLayout is a convenience wrapper that calls
// ComputeLayoutWithCacheInfo and discards the cache hit info.
func (r *Runner) ComputeLayout(ctx context.Context, opts Options) ([]patch.Patch, error) {
	patches, _, err := r.ComputeLayoutWithCacheInfo(ctx, opts)
	return patches, err
}

// RenderWithCacheInfo generates artifacts with caching and returns
// cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, patches []patch.Patch, opts Options) (map[string][]byte, bool, error) {
	opts.SetLayoutDefaults()
	opts.SetRenderDefaults()
	r.applyLogger(&opts)
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, false, err
	}

	layoutData, err := marshalLayout(patches)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	if !opts.Refresh {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return artifacts, true, nil // All artifacts from cache
		}
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	rendered, err := r.renderFormats(patches, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Render(ctx context.Context, patches []patch.Patch, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, patches, opts)
	return artifacts, err
}

// renderFormats produces every requested format. PNG and PDF are
// derived from the SVG rendering.
func (r *Runner) renderFormats(patches []patch.Patch, opts Options) (map[string][]byte, error) {
	cfg := opts.PackConfig()
	stage, err := opts.TargetStage()
	if err != nil {
		return nil, err
	}

	svgOpts := []render.SVGOption{render.WithCaption(stage.String())}
	if opts.Labels {
		svgOpts = append(svgOpts, render.WithLabels())
	}
	svg := render.RenderSVG(patches, cfg, svgOpts...)

	out := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			out[format] = svg
		case FormatPNG:
			png, err := render.ToPNG(svg, 2.0)
			if err != nil {
				return nil, fmt.Errorf("convert png: %w", err)
			}
			out[format] = png
		case FormatPDF:
			pdf, err := render.ToPDF(svg)
			if err != nil {
				return nil, fmt.Errorf("convert pdf: %w", err)
			}
			out[format] = pdf
		case FormatJSON:
			data, err := render.RenderJSON(patches, cfg,
				render.WithJSONStage(stage.String()),
				render.WithJSONSeed(opts.Seed))
			if err != nil {
				return nil, fmt.Errorf("render json: %w", err)
			}
			out[format] = data
		default:
			return nil, fmt.Errorf("invalid format: %q", format)
		}
	}
	return out, nil
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

func marshalLayout(patches []patch.Patch) ([]byte, error) {
	if patches == nil {
		patches = []patch.Patch{}
	}
	return json.Marshal(patches)
}

func unmarshalLayout(data []byte) ([]patch.Patch, error) {
	var patches []patch.Patch
	if err := json.Unmarshal(data, &patches); err != nil {
		return nil, err
	}
	return patches, nil
}
