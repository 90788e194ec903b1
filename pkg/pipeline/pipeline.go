// Package pipeline runs the complete layout → render sequence behind a
// single entry point shared by the CLI, the watch viewer, and the HTTP
// server. Centralizing it keeps caching and defaults consistent across
// all of them.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Cols:    3,
//	    Rows:    6,
//	    Seed:    42,
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mlindner/patchpack/pkg/cache"
	"github.com/mlindner/patchpack/pkg/errors"
	"github.com/mlindner/patchpack/pkg/pack"
	"github.com/mlindner/patchpack/pkg/patch"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run. The struct
// supports JSON serialization for server requests. Zero-valued layout
// fields take the corresponding default, except Padding: zero padding
// is a valid layout, so a negative Padding selects the default instead.
// An unset Stage means run to the terminal stage.
type Options struct {
	// Layout options
	Cols   int     `json:"cols,omitempty"`
	Rows   int     `json:"rows,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// Padding is the spacing between patches and canvas edges. Zero
	// means no spacing; negative means DefaultPadding.
	Padding float64 `json:"padding,omitempty"`

	Seed uint64 `json:"seed,omitempty"`

	// Stage names the stage to stop at ("initial", "uprighted",
	// "sorted", "flowed", "packed", or a display label). Empty means
	// the terminal stage.
	Stage string `json:"stage,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Labels  bool     `json:"labels,omitempty"`

	// Refresh bypasses cached layouts and artifacts.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Patches is the layout at the target stage.
	Patches []patch.Patch

	// Stage is the stage the pipeline stopped at.
	Stage pack.Stage

	// LayoutHash is the content hash of the layout.
	LayoutHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PatchCount int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks all fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times
// has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetLayoutDefaults()
	o.SetRenderDefaults()

	if err := o.PackConfig().Validate(); err != nil {
		return err
	}
	if _, err := o.TargetStage(); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults fills unset layout fields with defaults. Padding
// uses a negative value as its unset marker because zero is valid.
func (o *Options) SetLayoutDefaults() {
	if o.Cols == 0 {
		o.Cols = pack.DefaultCols
	}
	if o.Rows == 0 {
		o.Rows = pack.DefaultRows
	}
	if o.Width == 0 {
		o.Width = pack.DefaultWidth
	}
	if o.Height == 0 {
		o.Height = pack.DefaultHeight
	}
	if o.Padding < 0 {
		o.Padding = pack.DefaultPadding
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults fills zero-valued render fields with defaults.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// PackConfig returns the layout configuration the options describe.
func (o *Options) PackConfig() pack.Config {
	return pack.Config{
		Cols:    o.Cols,
		Rows:    o.Rows,
		Width:   o.Width,
		Height:  o.Height,
		Padding: o.Padding,
	}
}

// TargetStage resolves the stage the pipeline should stop at.
func (o *Options) TargetStage() (pack.Stage, error) {
	if o.Stage == "" {
		return pack.StagePackedUpwards, nil
	}
	s, ok := pack.ParseStage(o.Stage)
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidStage, "invalid stage: %q (must be one of: initial, uprighted, sorted, flowed, packed)", o.Stage)
	}
	return s, nil
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts(stage pack.Stage) cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Cols:    o.Cols,
		Rows:    o.Rows,
		Width:   o.Width,
		Height:  o.Height,
		Padding: o.Padding,
		Seed:    o.Seed,
		Stage:   stage.String(),
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Labels: o.Labels,
	}
}
