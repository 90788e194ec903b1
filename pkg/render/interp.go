package render

import (
	"github.com/mlindner/patchpack/pkg/geom"
	"github.com/mlindner/patchpack/pkg/patch"
)

// EaseInOutCubic maps linear progress t in [0,1] onto a cubic
// ease-in-out curve: slow start, fast middle, slow finish.
func EaseInOutCubic(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// Interpolate blends two layouts of the same patch list at eased
// progress t, lerping each patch's center and extent. Patches are
// matched by list position, not identity: across the height sort each
// slot blends into whichever patch lands there, so the reorder reads
// as a crossfade rather than tracked motion. If the lists disagree in
// length, or t has reached 1, the target layout is returned as-is.
func Interpolate(from, to []patch.Patch, t float64) []patch.Patch {
	if len(from) != len(to) || t >= 1 {
		return to
	}
	e := EaseInOutCubic(t)

	out := make([]patch.Patch, len(to))
	for i := range to {
		p := to[i]
		p.Center = lerpPoint(from[i].Center, to[i].Center, e)
		p.Extent = lerpSize(from[i].Extent, to[i].Extent, e)
		out[i] = p
	}
	return out
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func lerpPoint(a, b geom.Point, t float64) geom.Point {
	return geom.Point{X: lerp(a.X, b.X, t), Y: lerp(a.Y, b.Y, t)}
}

func lerpSize(a, b geom.Size, t float64) geom.Size {
	return geom.Size{Width: lerp(a.Width, b.Width, t), Height: lerp(a.Height, b.Height, t)}
}
