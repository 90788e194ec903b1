// Package pack implements the staged rectangle-packing sequence: random
// generation, uprighting, height sorting, row flow, and upward
// compaction. Each stage is a pure transform from one complete patch
// list to the next; the Pipeline type sequences them.
package pack

import (
	"math/rand/v2"

	"github.com/mlindner/patchpack/pkg/errors"
	"github.com/mlindner/patchpack/pkg/patch"
)

// Pipeline steps a patch list through the packing stages. It holds the
// current stage's output plus the previous stage's output, which viewers
// use to animate transitions. Pipelines are not safe for concurrent use.
type Pipeline struct {
	cfg      Config
	stage    Stage
	patches  []patch.Patch
	previous []patch.Patch
}

// New creates a pipeline at the Initial stage, generating one patch per
// grid cell from rng. The config is validated up front.
func New(cfg Config, rng *rand.Rand) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Pipeline{
		cfg:     cfg,
		stage:   StageInitial,
		patches: Generate(cfg, rng),
	}, nil
}

// NewSeeded creates a pipeline whose initial layout is reproducible for
// the given seed.
func NewSeeded(cfg Config, seed uint64) (*Pipeline, error) {
	return New(cfg, rand.New(rand.NewPCG(seed, seed^0xdeadbeef)))
}

// NewWithPatches creates a pipeline at the Initial stage from a fixed
// patch list instead of random generation. Every patch must have a
// strictly positive extent.
func NewWithPatches(cfg Config, patches []patch.Patch) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for _, p := range patches {
		if p.Width() <= 0 || p.Height() <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig,
				"patch %d has non-positive extent %v", p.ID, p.Extent)
		}
	}
	return &Pipeline{
		cfg:     cfg,
		stage:   StageInitial,
		patches: patches,
	}, nil
}

// Config returns the layout configuration the pipeline was built with.
func (pl *Pipeline) Config() Config {
	return pl.cfg
}

// Stage returns the current stage.
func (pl *Pipeline) Stage() Stage {
	return pl.stage
}

// StageName returns the current stage's display label.
func (pl *Pipeline) StageName() string {
	return pl.stage.String()
}

// Done reports whether the pipeline has reached the terminal stage.
func (pl *Pipeline) Done() bool {
	return pl.stage.Terminal()
}

// Patches returns the current stage's placements. The slice is owned by
// the pipeline; callers must not modify it.
func (pl *Pipeline) Patches() []patch.Patch {
	return pl.patches
}

// Previous returns the prior stage's placements, or nil before the first
// advance. Viewers interpolate between Previous and Patches during stage
// transitions.
func (pl *Pipeline) Previous() []patch.Patch {
	return pl.previous
}

// Advance moves the pipeline forward one stage and returns the new
// stage. At the terminal stage it is a no-op returning the terminal
// stage, so repeated advance signals are harmless.
func (pl *Pipeline) Advance() Stage {
	next, ok := pl.stage.Next()
	if !ok {
		return pl.stage
	}

	var out []patch.Patch
	switch next {
	case StageUprighted:
		out = Upright(pl.patches)
	case StageSortedByHeight:
		out = SortByHeight(pl.patches, pl.cfg.Padding)
	case StageFlowed:
		out = Flow(pl.patches, pl.cfg)
	case StagePackedUpwards:
		out = PackUpwards(pl.patches, pl.cfg.Padding)
	}

	pl.previous = pl.patches
	pl.patches = out
	pl.stage = next
	return next
}

// Run advances the pipeline to the terminal stage and returns the packed
// layout.
func (pl *Pipeline) Run() []patch.Patch {
	for !pl.Done() {
		pl.Advance()
	}
	return pl.patches
}
