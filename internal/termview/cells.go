// Package termview draws the snake scene and the portfolio overlays into a
// terminal through tcell. The simulation still runs in logical pixels; a
// Viewport maps them onto character cells.
package termview

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell represents a single character cell on screen.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// CellBuffer is a 2D grid of character cells.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
	blank Cell
}

// NewCellBuffer creates a buffer filled with spaces in the given style.
func NewCellBuffer(cols, rows int, style tcell.Style) *CellBuffer {
	b := &CellBuffer{blank: Cell{Rune: ' ', Style: style}}
	b.Resize(cols, rows)
	return b
}

// Resize reallocates the grid when the terminal changes size. Contents are cleared.
func (b *CellBuffer) Resize(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	b.Cols, b.Rows = cols, rows
	if cap(b.Cells) >= cols*rows {
		b.Cells = b.Cells[:cols*rows]
	} else {
		b.Cells = make([]Cell, cols*rows)
	}
	b.Clear()
}

// Set writes a single cell at (x, y). Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, r rune, style tcell.Style) {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		b.Cells[y*b.Cols+x] = Cell{Rune: r, Style: style}
	}
}

// Get reads a single cell at (x, y). Out-of-bounds reads return a zero cell.
func (b *CellBuffer) Get(x, y int) Cell {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		return b.Cells[y*b.Cols+x]
	}
	return Cell{}
}

// Clear resets all cells to the blank style.
func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = b.blank
	}
}

// Fill paints every cell of row y from x0 to x1 (exclusive) with a space.
func (b *CellBuffer) Fill(x0, x1, y int, style tcell.Style) {
	for x := x0; x < x1; x++ {
		b.Set(x, y, ' ', style)
	}
}

// WriteString writes s starting at (x, y) and returns the number of columns used.
// Wide runes take two columns; the second is left as a zero rune.
func (b *CellBuffer) WriteString(x, y int, s string, style tcell.Style) int {
	offset := 0
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		b.Set(x+offset, y, ch, style)
		if w == 2 {
			b.Set(x+offset+1, y, 0, style)
		}
		offset += w
	}
	return offset
}

// Flush copies the buffer onto the screen and shows it.
func (b *CellBuffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.Rows; y++ {
		for x := 0; x < b.Cols; x++ {
			c := b.Cells[y*b.Cols+x]
			if c.Rune == 0 {
				continue
			}
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
	screen.Show()
}
