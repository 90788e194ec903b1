// Package patch defines the rectangle value that flows through the packing
// stages. A patch carries a stable identity, a center position, an extent,
// and an orientation marker. Stage transforms never mutate a patch in
// place; they derive new values with the identity preserved.
package patch

import (
	"fmt"

	"github.com/mlindner/patchpack/pkg/geom"
)

// RotationUpright marks a patch whose extent was swapped to stand upright.
const RotationUpright = 90.0

// Patch is one axis-aligned rectangle being packed.
type Patch struct {
	// ID is assigned at creation (insertion index into the initial
	// layout) and never changes afterwards.
	ID int `json:"id"`
	// Center is the position of the patch midpoint.
	Center geom.Point `json:"center"`
	// Extent holds the width and height. Both are strictly positive.
	Extent geom.Size `json:"extent"`
	// Rotation is 0 or RotationUpright. It records whether the extent was
	// swapped during uprighting and has no effect on overlap testing.
	Rotation float64 `json:"rotation,omitempty"`
}

func (p Patch) Width() float64  { return p.Extent.Width }
func (p Patch) Height() float64 { return p.Extent.Height }

func (p Patch) Left() float64   { return p.Center.X - p.Extent.Width/2 }
func (p Patch) Right() float64  { return p.Center.X + p.Extent.Width/2 }
func (p Patch) Top() float64    { return p.Center.Y - p.Extent.Height/2 }
func (p Patch) Bottom() float64 { return p.Center.Y + p.Extent.Height/2 }

// Bounds returns the bounding rectangle of the patch.
func (p Patch) Bounds() geom.Rect {
	return geom.FromCenter(p.Center, p.Extent)
}

// Uprighted returns the patch rotated so that height >= width. Patches
// that are already at least as tall as they are wide pass through
// unchanged, including ties.
func (p Patch) Uprighted() Patch {
	if p.Width() <= p.Height() {
		return p
	}
	return Patch{
		ID:       p.ID,
		Center:   p.Center,
		Extent:   p.Extent.Swapped(),
		Rotation: RotationUpright,
	}
}

// WithLeftTop returns the patch repositioned so its top-left corner sits
// at (left, top). Extent, identity, and rotation are preserved.
func (p Patch) WithLeftTop(left, top float64) Patch {
	return Patch{
		ID:       p.ID,
		Center:   geom.Point{X: left + p.Extent.Width/2, Y: top + p.Extent.Height/2},
		Extent:   p.Extent,
		Rotation: p.Rotation,
	}
}

// Overlaps reports whether the bounding boxes of two patches share any
// area. Rotation is ignored; the extent is already post-rotation.
func (p Patch) Overlaps(q Patch) bool {
	return p.Bounds().Overlaps(q.Bounds())
}

// String returns a compact description for logs and test failures.
func (p Patch) String() string {
	return fmt.Sprintf("patch %d at %v size %v", p.ID, p.Center, p.Extent)
}
