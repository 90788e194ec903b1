package pack

import (
	"cmp"
	"slices"

	"github.com/mlindner/patchpack/pkg/patch"
)

// SortByHeight arranges patches into a single padded row, tallest first.
// The sort is stable: patches of equal height keep their prior relative
// order. Every patch shares the same top coordinate (padding); each left
// edge sits padding to the right of the previous patch's right edge. The
// row ignores the canvas width; row flow bounds it in the next stage.
//
// The output order follows the sort, not the id order. Consumers that
// need a specific patch after this stage must look it up by id.
func SortByHeight(patches []patch.Patch, padding float64) []patch.Patch {
	sorted := slices.Clone(patches)
	slices.SortStableFunc(sorted, func(a, b patch.Patch) int {
		return cmp.Compare(b.Height(), a.Height())
	})

	out := make([]patch.Patch, 0, len(sorted))
	x := padding
	for _, p := range sorted {
		out = append(out, p.WithLeftTop(x, padding))
		x += p.Width() + padding
	}
	return out
}
