package pack

import "github.com/mlindner/patchpack/pkg/patch"

// Upright rotates every patch that is wider than it is tall so that
// height >= width holds for the whole list. Patches are handled
// independently and order is preserved. Applying Upright twice yields
// the same result as applying it once.
func Upright(patches []patch.Patch) []patch.Patch {
	out := make([]patch.Patch, len(patches))
	for i, p := range patches {
		out[i] = p.Uprighted()
	}
	return out
}
