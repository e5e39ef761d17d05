package geom

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectAt builds a w x h rect whose top-left corner is pos shifted by offset
// on both axes.
func RectAt(pos Vector2, offset, w, h float64) Rect {
	return Rect{X: pos.X + offset, Y: pos.Y + offset, Width: w, Height: h}
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Min returns the top-left corner.
func (r Rect) Min() Vector2 { return Vector2{X: r.X, Y: r.Y} }

// Intersects is the method form of RectsOverlap.
func (r Rect) Intersects(other Rect) bool {
	return RectsOverlap(r, other)
}

// RectsOverlap is the separating-axis test for two boxes. Boxes that only
// share an edge do not overlap.
func RectsOverlap(a, b Rect) bool {
	return a.X < b.X+b.Width &&
		a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height &&
		a.Y+a.Height > b.Y
}

// PointInRect reports whether p lies strictly inside r. Points on any edge
// are outside.
func PointInRect(p Vector2, r Rect) bool {
	return p.X < r.X+r.Width &&
		p.X > r.X &&
		p.Y < r.Y+r.Height &&
		p.Y > r.Y
}
