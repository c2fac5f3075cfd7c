// Package physics provides collision detection and distance utilities.
package physics

// Clamp limits v to the closed range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// PointInCircle checks if a point is within radius of a target position.
func PointInCircle(px, py, cx, cy, radius float64) bool {
	return DistanceSquared(px, py, cx, cy) <= radius*radius
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectAround returns the w x h rectangle centered on (cx, cy).
func RectAround(cx, cy, w, h float64) Rect {
	return Rect{
		Left:   cx - w/2,
		Top:    cy - h/2,
		Right:  cx + w/2,
		Bottom: cy + h/2,
	}
}

// SquareAround returns the square of half-size r centered on (cx, cy).
func SquareAround(cx, cy, r float64) Rect {
	return Rect{Left: cx - r, Top: cy - r, Right: cx + r, Bottom: cy + r}
}

// ClosestPoint returns the point of r nearest to (px, py).
func (r Rect) ClosestPoint(px, py float64) (float64, float64) {
	return Clamp(px, r.Left, r.Right), Clamp(py, r.Top, r.Bottom)
}

// DistanceSquaredTo returns the squared distance from (px, py) to the
// nearest point of r. Zero when the point lies inside.
func (r Rect) DistanceSquaredTo(px, py float64) float64 {
	cx, cy := r.ClosestPoint(px, py)
	return DistanceSquared(px, py, cx, cy)
}

// CircleTouchesRect reports whether the circle at (cx, cy) with the given
// radius overlaps r, using the closest point of r to the circle center.
func CircleTouchesRect(cx, cy, radius float64, r Rect) bool {
	return r.DistanceSquaredTo(cx, cy) <= radius*radius
}
