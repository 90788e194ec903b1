package pack

import (
	"github.com/mlindner/patchpack/pkg/geom"
	"github.com/mlindner/patchpack/pkg/patch"
)

// probeMargin keeps the probe region strictly above the patch being
// settled so the patch never matches itself or a row sibling sharing its
// top edge.
const probeMargin = 1.0

// PackUpwards pulls each patch straight up until it rests on the highest
// obstruction directly below it, eliminating the vertical slack left by
// row flow while keeping every horizontal position unchanged.
//
// Patches are processed strictly in input order and settle against
// already-placed output patches only, which makes the compaction a
// single linear pass: a patch's resting height never depends on patches
// that come later in the list. Each patch ends up exactly padding below
// the lowest bottom edge among placed patches that overlap its
// horizontal span, or at padding from the canvas top when nothing is
// above it.
func PackUpwards(patches []patch.Patch, padding float64) []patch.Patch {
	placed := make([]patch.Patch, 0, len(patches))
	for _, p := range patches {
		restingY := settle(p, placed)
		placed = append(placed, p.WithLeftTop(p.Left(), restingY+padding))
	}
	return placed
}

// settle returns the bottom edge of the highest obstruction above p, or
// 0 when the column above p is clear.
func settle(p patch.Patch, placed []patch.Patch) float64 {
	probeHeight := p.Top() - probeMargin
	if probeHeight <= 0 {
		// The patch is flush against the canvas top; nothing can
		// obstruct it.
		return 0
	}
	probe := geom.NewRect(p.Left(), 0, p.Width(), probeHeight)

	restingY := 0.0
	for _, q := range placed {
		if probe.Overlaps(q.Bounds()) {
			restingY = max(restingY, q.Bottom())
		}
	}
	return restingY
}
