package termview

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/snakefolio/snakefolio/internal/config"
	"github.com/snakefolio/snakefolio/internal/game"
	"github.com/snakefolio/snakefolio/internal/world"
)

const (
	runeSnake = '█'
	runeFood  = '◉'
	runeMenu  = '≡'
	runeClose = '✕'
	runeMark  = '•'
)

// Painter draws frames into a CellBuffer.
type Painter struct {
	Buf  *CellBuffer
	View Viewport

	snake, food, bg, ink, muted color.RGBA
}

// NewPainter creates a painter for a validated palette.
func NewPainter(p config.Palette, cols, rows int) *Painter {
	pt := &Painter{
		View:  NewViewport(cols, rows),
		snake: config.MustHex(p.Snake),
		food:  config.MustHex(p.Food),
		bg:    config.MustHex(p.Background),
		ink:   config.MustHex(p.Ink),
		muted: config.MustHex(p.Muted),
	}
	pt.Buf = NewCellBuffer(cols, rows, pt.style(pt.ink, 1))
	return pt
}

// Resize follows a terminal resize.
func (p *Painter) Resize(cols, rows int) {
	p.View = NewViewport(cols, rows)
	p.Buf.Resize(cols, rows)
}

// style returns c over the background at opacity a.
func (p *Painter) style(c color.RGBA, a float64) tcell.Style {
	return tcell.StyleDefault.Foreground(p.blend(c, a)).Background(p.blend(p.bg, 1))
}

func (p *Painter) blend(c color.RGBA, a float64) tcell.Color {
	a = min(max(a, 0), 1)
	mix := func(fg, bg uint8) int32 {
		return int32(float64(bg) + (float64(fg)-float64(bg))*a)
	}
	return tcell.NewRGBColor(mix(c.R, p.bg.R), mix(c.G, p.bg.G), mix(c.B, p.bg.B))
}

// DrawScene clears the buffer and draws the menu target, snake and food.
func (p *Painter) DrawScene(snap game.Snapshot, hint string) {
	p.Buf.Clear()
	if !snap.Ready {
		return
	}
	mx, my := p.View.CellOf(snap.Menu)
	p.Buf.Set(mx, my, runeMenu, p.style(p.muted, 1))
	if snap.Moving() && hint != "" {
		end, _ := p.View.CellOf(snap.Menu.Add(-25, 0))
		p.Buf.WriteString(end-runewidth.StringWidth(hint), my, hint, p.style(p.muted, 1))
	}

	if len(snap.Snake) >= 2 {
		body := p.style(p.snake, 1)
		for _, pt := range snap.Snake {
			x, y := p.View.CellOf(pt)
			p.Buf.Set(x, y, runeSnake, body)
		}
	}

	fx, fy := p.View.CellOf(snap.Food)
	p.Buf.Set(fx, fy, runeFood, p.style(p.food, 1))
}

// centered writes s centered on row y and returns its first column.
func (p *Painter) centered(y int, s string, style tcell.Style) int {
	x := (p.Buf.Cols - runewidth.StringWidth(s)) / 2
	p.Buf.WriteString(x, y, s, style)
	return x
}

// closeRect is the close control in the top-right corner, in cells.
func (p *Painter) closeRect() world.Rect {
	return world.RectAt(float64(p.Buf.Cols-4), 0, 3, 2)
}

func (p *Painter) drawClose(alpha float64) {
	r := p.closeRect()
	p.Buf.Set(int(r.Min.X)+1, 1, runeClose, p.style(p.food, alpha))
}
