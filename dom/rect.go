package dom

// Rect is an axis-aligned rectangle in page coordinates.
type Rect struct {
	Left, Top, Right, Bottom float64
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }
func (r Rect) Area() float64   { return r.Width() * r.Height() }

// Center returns the rectangle's center point.
func (r Rect) Center() Point {
	return Point{
		X: r.Left + r.Width()/2,
		Y: r.Top + r.Height()/2,
	}
}

// ContainsPoint reports whether p lies inside the rectangle. When strict is
// true, points on an edge do not count.
func (r Rect) ContainsPoint(p Point, strict bool) bool {
	if strict {
		return p.X > r.Left && p.X < r.Right && p.Y > r.Top && p.Y < r.Bottom
	}

	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// OverlapArea returns the area of the intersection with other, zero when the
// rectangles are disjoint on either axis.
func (r Rect) OverlapArea(other Rect) float64 {
	w := min(r.Right, other.Right) - max(r.Left, other.Left)
	h := min(r.Bottom, other.Bottom) - max(r.Top, other.Top)

	if w <= 0 || h <= 0 {
		return 0
	}

	return w * h
}
