package termview

import (
	"math"

	"github.com/snakefolio/snakefolio/internal/world"
)

// Viewport maps logical pixels onto terminal cells. Cells are roughly twice
// as tall as they are wide, so the default keeps that ratio.
type Viewport struct {
	Cols, Rows   int
	CellW, CellH float64 // logical pixels per cell
}

// DefaultCellW and DefaultCellH give a 1280x800 canvas on a 160x50 terminal.
const (
	DefaultCellW = 8
	DefaultCellH = 16
)

// NewViewport returns a viewport for a terminal of cols x rows.
func NewViewport(cols, rows int) Viewport {
	return Viewport{Cols: cols, Rows: rows, CellW: DefaultCellW, CellH: DefaultCellH}
}

// Size is the logical canvas the simulation runs on.
func (v Viewport) Size() world.Size {
	return world.Size{W: float64(v.Cols) * v.CellW, H: float64(v.Rows) * v.CellH}
}

// CellOf returns the cell containing p. Points on the far edge land on the
// last column or row.
func (v Viewport) CellOf(p world.Point) (int, int) {
	x := int(math.Floor(p.X / v.CellW))
	y := int(math.Floor(p.Y / v.CellH))
	return min(max(x, 0), v.Cols-1), min(max(y, 0), v.Rows-1)
}

// PointOf returns the logical center of a cell.
func (v Viewport) PointOf(col, row int) world.Point {
	return world.Point{X: (float64(col) + 0.5) * v.CellW, Y: (float64(row) + 0.5) * v.CellH}
}
