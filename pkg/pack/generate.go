package pack

import (
	"math/rand/v2"

	"github.com/mlindner/patchpack/pkg/geom"
	"github.com/mlindner/patchpack/pkg/patch"
)

// Patch sizes are drawn uniformly from this fraction range of the grid
// cell, so patches may slightly overhang their cell before packing.
const (
	minSizeFrac = 0.5
	maxSizeFrac = 1.1
)

// Generate produces one randomly sized patch per grid cell, centered in
// its cell. IDs are assigned in row-major scan order: row 0 left to
// right, then row 1, and so on. The caller owns the random source, so
// layouts are reproducible for a fixed seed.
func Generate(cfg Config, rng *rand.Rand) []patch.Patch {
	cellW, cellH := cfg.CellSize()
	patches := make([]patch.Patch, 0, cfg.Cols*cfg.Rows)

	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Cols; col++ {
			width := uniform(rng, cellW*minSizeFrac, cellW*maxSizeFrac)
			height := uniform(rng, cellH*minSizeFrac, cellH*maxSizeFrac)
			patches = append(patches, patch.Patch{
				ID: len(patches),
				Center: geom.Point{
					X: float64(col)*cellW + cellW/2,
					Y: float64(row)*cellH + cellH/2,
				},
				Extent: geom.Size{Width: width, Height: height},
			})
		}
	}
	return patches
}

// uniform draws a value from the half-open interval [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
