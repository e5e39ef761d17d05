package motion

import "github.com/milk9111/platformdemo/geom"

// Walls is the fixed, ordered set of static platforms. Order matters: the
// resolver tests walls first to last.
type Walls [WallCount]geom.Rect

// DefaultWalls returns the startup platform layout: a floor and four
// ascending steps.
func DefaultWalls() Walls {
	return Walls{
		{X: 128, Y: 256, Width: 250, Height: 32},
		{X: 300, Y: 232, Width: 32, Height: 16},
		{X: 372, Y: 216, Width: 32, Height: 16},
		{X: 444, Y: 200, Width: 32, Height: 16},
		{X: 516, Y: 184, Width: 32, Height: 16},
	}
}

// Bounds returns the smallest rect covering every wall.
func (w *Walls) Bounds() geom.Rect {
	minX, minY := w[0].X, w[0].Y
	maxX, maxY := w[0].Right(), w[0].Bottom()
	for _, r := range w[1:] {
		minX = min(minX, r.X)
		minY = min(minY, r.Y)
		maxX = max(maxX, r.Right())
		maxY = max(maxY, r.Bottom())
	}
	return geom.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
