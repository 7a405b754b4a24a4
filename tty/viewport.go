package tty

import (
	"math"

	"github.com/milk9111/przemekrun/common"
)

// Viewport maps field coordinates onto a grid of terminal cells.
type Viewport struct {
	Cols, Rows     int
	FieldW, FieldH float64
}

func (v Viewport) valid() bool {
	return v.Cols > 0 && v.Rows > 0 && v.FieldW > 0 && v.FieldH > 0
}

// Cell returns the cell containing field point (x, y), clamped to the grid.
func (v Viewport) Cell(x, y float64) (int, int) {
	if !v.valid() {
		return 0, 0
	}
	cx := int(math.Floor(x / v.FieldW * float64(v.Cols)))
	cy := int(math.Floor(y / v.FieldH * float64(v.Rows)))
	return clampInt(cx, 0, v.Cols-1), clampInt(cy, 0, v.Rows-1)
}

// CellRect returns the inclusive cell span covered by r. Rectangles smaller
// than a cell still cover one. ok is false when r is entirely off the grid.
func (v Viewport) CellRect(r common.Rect) (x0, y0, x1, y1 int, ok bool) {
	if !v.valid() || r.Right() <= 0 || r.Bottom() <= 0 || r.X >= v.FieldW || r.Y >= v.FieldH {
		return 0, 0, 0, 0, false
	}
	x0, y0 = v.Cell(r.X, r.Y)
	x1, y1 = v.Cell(math.Nextafter(r.Right(), r.X), math.Nextafter(r.Bottom(), r.Y))
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return x0, y0, x1, y1, true
}

// Field returns the field point at the centre of cell (cx, cy).
func (v Viewport) Field(cx, cy int) (float64, float64) {
	if !v.valid() {
		return 0, 0
	}
	return (float64(cx) + 0.5) * v.FieldW / float64(v.Cols), (float64(cy) + 0.5) * v.FieldH / float64(v.Rows)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
