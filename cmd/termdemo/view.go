package main

import (
	"math"

	"github.com/milk9111/platformdemo/geom"
	"github.com/milk9111/platformdemo/motion"
)

// viewMargin is the world space kept around the platforms when fitting the
// scene into the terminal.
const viewMargin = 64

// cellRect is an inclusive range of terminal cells.
type cellRect struct {
	x0, y0, x1, y1 int
}

// viewport maps world coordinates onto a cols x rows cell grid.
type viewport struct {
	world      geom.Rect
	cols, rows int
}

// fitView returns the world area worth showing: the walls and the start
// point, padded by viewMargin.
func fitView(walls *motion.Walls, start geom.Vector2) geom.Rect {
	b := walls.Bounds()
	minX := math.Min(b.X, start.X) - viewMargin
	minY := math.Min(b.Y, start.Y) - viewMargin
	maxX := math.Max(b.Right(), start.X) + viewMargin
	maxY := math.Max(b.Bottom(), start.Y) + viewMargin
	return geom.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// scale converts a world coordinate into fractional cell units.
func (v viewport) scale(x, origin, extent float64, cells int) float64 {
	return (x - origin) * float64(cells) / extent
}

// project returns the cells covered by r, and false when r falls entirely
// outside the grid. Right and bottom edges are exclusive, and every visible
// rect covers at least one cell.
func (v viewport) project(r geom.Rect) (cellRect, bool) {
	if v.cols <= 0 || v.rows <= 0 || v.world.Width <= 0 || v.world.Height <= 0 {
		return cellRect{}, false
	}
	w := v.world
	c := cellRect{
		x0: int(math.Floor(v.scale(r.X, w.X, w.Width, v.cols))),
		y0: int(math.Floor(v.scale(r.Y, w.Y, w.Height, v.rows))),
	}
	c.x1 = max(c.x0, int(math.Ceil(v.scale(r.Right(), w.X, w.Width, v.cols)))-1)
	c.y1 = max(c.y0, int(math.Ceil(v.scale(r.Bottom(), w.Y, w.Height, v.rows)))-1)

	if c.x1 < 0 || c.y1 < 0 || c.x0 >= v.cols || c.y0 >= v.rows {
		return cellRect{}, false
	}
	c.x0 = max(c.x0, 0)
	c.y0 = max(c.y0, 0)
	c.x1 = min(c.x1, v.cols-1)
	c.y1 = min(c.y1, v.rows-1)
	return c, true
}
