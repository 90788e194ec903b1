// Package geom provides the axis-aligned 2D primitives used by the packing
// stages: points, sizes, and rectangles with edge accessors and an
// edge-based overlap test.
package geom

import "fmt"

// Point is a location in 2D space. The Y axis grows downward, matching
// screen coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns the point scaled by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("<%g, %g>", p.X, p.Y)
}

// Size describes the dimensions of an entity in 2D space.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Swapped returns the size with width and height exchanged.
func (s Size) Swapped() Size {
	return Size{Width: s.Height, Height: s.Width}
}

// Area returns the total area (width * height).
func (s Size) Area() float64 {
	return s.Width * s.Height
}

// String returns a string representation of the size.
func (s Size) String() string {
	return fmt.Sprintf("<%g, %g>", s.Width, s.Height)
}

// Rect describes a location (top-left corner) and size in 2D space.
type Rect struct {
	Point
	Size
}

// NewRect initializes a rectangle from its top-left corner and size values.
func NewRect(left, top, width, height float64) Rect {
	return Rect{
		Point: Point{X: left, Y: top},
		Size:  Size{Width: width, Height: height},
	}
}

// FromCenter initializes a rectangle centered on the given point.
func FromCenter(center Point, size Size) Rect {
	return Rect{
		Point: Point{X: center.X - size.Width/2, Y: center.Y - size.Height/2},
		Size:  size,
	}
}

// Left returns the coordinate of the left edge on the x-axis.
func (r Rect) Left() float64 { return r.X }

// Top returns the coordinate of the top edge on the y-axis.
func (r Rect) Top() float64 { return r.Y }

// Right returns the coordinate of the right edge on the x-axis.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the coordinate of the bottom edge on the y-axis.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// IsEmpty reports whether the width or height is not strictly positive.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Overlaps reports whether the receiver and another rectangle share any
// area. The test compares edges on both axes; edges that merely touch
// count as overlapping.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() <= o.Right() && r.Right() >= o.Left() &&
		r.Top() <= o.Bottom() && r.Bottom() >= o.Top()
}

// Intersect returns the overlapping area of two rectangles, or a zero
// rectangle when no overlap is present.
func (r Rect) Intersect(o Rect) Rect {
	x1 := max(r.Left(), o.Left())
	x2 := min(r.Right(), o.Right())
	y1 := max(r.Top(), o.Top())
	y2 := min(r.Bottom(), o.Bottom())
	if x2 < x1 || y2 < y1 {
		return Rect{}
	}
	return NewRect(x1, y1, x2-x1, y2-y1)
}

// Union returns the minimum rectangle containing both the receiver and o.
func (r Rect) Union(o Rect) Rect {
	x1 := min(r.Left(), o.Left())
	x2 := max(r.Right(), o.Right())
	y1 := min(r.Top(), o.Top())
	y2 := max(r.Bottom(), o.Bottom())
	return NewRect(x1, y1, x2-x1, y2-y1)
}

// String returns a string describing the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("<%g, %g, %g, %g>", r.X, r.Y, r.Width, r.Height)
}
