package geom

import "testing"

func TestRectAccessors(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Left() != 10 || r.Top() != 20 {
		t.Errorf("top-left = (%g, %g), want (10, 20)", r.Left(), r.Top())
	}
	if r.Right() != 40 {
		t.Errorf("Right() = %g, want 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %g, want 60", r.Bottom())
	}
	if c := r.Center(); c.X != 25 || c.Y != 40 {
		t.Errorf("Center() = %v, want <25, 40>", c)
	}
}

func TestFromCenter(t *testing.T) {
	r := FromCenter(Point{X: 50, Y: 50}, Size{Width: 20, Height: 10})
	if r.Left() != 40 || r.Top() != 45 {
		t.Errorf("top-left = (%g, %g), want (40, 45)", r.Left(), r.Top())
	}
	if c := r.Center(); c.X != 50 || c.Y != 50 {
		t.Errorf("Center() = %v, want <50, 50>", c)
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"identical", NewRect(0, 0, 10, 10), NewRect(0, 0, 10, 10), true},
		{"partial overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"touching right edge", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), true},
		{"touching corner", NewRect(0, 0, 10, 10), NewRect(10, 10, 10, 10), true},
		{"disjoint horizontal", NewRect(0, 0, 10, 10), NewRect(11, 0, 10, 10), false},
		{"disjoint vertical", NewRect(0, 0, 10, 10), NewRect(0, 11, 10, 10), false},
		{"x overlap only", NewRect(0, 0, 10, 10), NewRect(5, 20, 10, 10), false},
		{"y overlap only", NewRect(0, 0, 10, 10), NewRect(20, 5, 10, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("%v.Overlaps(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Overlap is symmetric.
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("%v.Overlaps(%v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestIntersect(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)

	got := a.Intersect(b)
	want := NewRect(5, 5, 5, 5)
	if got != want {
		t.Errorf("Intersect = %v, want %v", got, want)
	}

	c := NewRect(20, 20, 5, 5)
	if got := a.Intersect(c); !got.IsEmpty() {
		t.Errorf("disjoint Intersect = %v, want empty", got)
	}
}

func TestUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(20, 5, 10, 10)

	got := a.Union(b)
	want := NewRect(0, 0, 30, 15)
	if got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}
}

func TestSizeSwapped(t *testing.T) {
	s := Size{Width: 3, Height: 7}
	if got := s.Swapped(); got.Width != 7 || got.Height != 3 {
		t.Errorf("Swapped = %v, want <7, 3>", got)
	}
}
