package termview

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/snakefolio/snakefolio/internal/portfolio"
	"github.com/snakefolio/snakefolio/internal/world"
)

const (
	modalMaxCols = 72
	modalMargin  = 2
)

// DrawHero writes the title layer over the scene. Cells under the text are
// replaced; the snake shows through everywhere else.
func (p *Painter) DrawHero(v portfolio.HeroView) {
	if v.Opacity <= 0 {
		return
	}
	mid := p.Buf.Rows / 2
	p.centered(mid-1, v.Title, p.style(p.ink, v.Opacity).Bold(true))
	p.centered(mid+1, v.Subtitle, p.style(p.muted, v.Opacity))
	if a := v.Opacity * v.PromptOpacity; a > 0 {
		p.centered(p.Buf.Rows-2, v.PromptDesktop, p.style(p.muted, a))
	}
}

// MenuTargets lays out the navigation overlay in cell coordinates: close
// control first, then one row per section, then the language switcher.
func (p *Painter) MenuTargets(v portfolio.MenuView) []portfolio.Target {
	targets := []portfolio.Target{{Rect: p.closeRect(), Action: portfolio.Action{Kind: portfolio.ActionCloseMenu}}}

	top := (p.Buf.Rows - (2*len(v.Items) - 1)) / 2
	for i, it := range v.Items {
		w := runewidth.StringWidth(menuLabel(i, it.Label))
		rect := world.RectAt(float64((p.Buf.Cols-w)/2), float64(top+2*i), float64(w), 1)
		targets = append(targets, portfolio.Target{Rect: rect, Action: portfolio.Action{Kind: portfolio.ActionSelect, ID: it.ID}})
	}

	const gap = 4
	total := gap * (len(v.Languages) - 1)
	for _, l := range v.Languages {
		total += runewidth.StringWidth(l.Label)
	}
	x := (p.Buf.Cols - total) / 2
	for _, l := range v.Languages {
		w := runewidth.StringWidth(l.Label)
		rect := world.RectAt(float64(x), float64(p.Buf.Rows-2), float64(w), 1)
		targets = append(targets, portfolio.Target{Rect: rect, Action: portfolio.Action{Kind: portfolio.ActionLanguage, Lang: l.Lang}})
		x += w + gap
	}
	return targets
}

// menuLabel prefixes a section with the number key that opens it.
func menuLabel(i int, label string) string {
	return strconv.Itoa(i+1) + "  " + label
}

// DrawMenu draws the navigation overlay.
func (p *Painter) DrawMenu(v portfolio.MenuView) {
	p.Buf.Clear()
	targets := p.MenuTargets(v)
	p.drawClose(v.Opacity)

	for i, it := range v.Items {
		r := targets[1+i].Rect
		x, y := int(r.Min.X), int(r.Min.Y)
		p.Buf.WriteString(x, y, menuLabel(i, it.Label), p.style(p.ink, v.Opacity))
		if it.Visited {
			p.Buf.Set(x-2, y, runeMark, p.style(p.muted, v.Opacity))
		}
	}
	for i, l := range v.Languages {
		r := targets[1+len(v.Items)+i].Rect
		st := p.style(p.ink, 0.4*v.Opacity)
		if l.Active {
			st = p.style(p.ink, v.Opacity).Underline(true)
		}
		p.Buf.WriteString(int(r.Min.X), int(r.Min.Y), l.Label, st)
	}
}

// ModalTargets returns the section overlay controls in cell coordinates.
func (p *Painter) ModalTargets() []portfolio.Target {
	return []portfolio.Target{{Rect: p.closeRect(), Action: portfolio.Action{Kind: portfolio.ActionCloseModal}}}
}

type termLine struct {
	text  string
	style tcell.Style
}

// DrawModal draws the open section starting scroll lines down and returns the
// scroll offset actually used, clamped to the content.
func (p *Painter) DrawModal(v portfolio.ModalView, scroll int) int {
	p.Buf.Clear()
	p.drawClose(v.Opacity)

	width := min(modalMaxCols, p.Buf.Cols-2*modalMargin)
	if width <= 0 {
		return 0
	}
	x := (p.Buf.Cols - width) / 2
	p.Buf.WriteString(x, 1, v.Title, p.style(p.ink, v.Opacity).Bold(true))
	for c := x; c < x+width; c++ {
		p.Buf.Set(c, 2, '─', p.style(p.muted, 0.4*v.Opacity))
	}

	lines := p.typeset(v, width)
	top := 4
	visible := max(p.Buf.Rows-top-1, 0)
	scroll = min(max(scroll, 0), max(len(lines)-visible, 0))
	for i := 0; i < visible && scroll+i < len(lines); i++ {
		l := lines[scroll+i]
		p.Buf.WriteString(x, top+i, l.text, l.style)
	}
	return scroll
}

func (p *Painter) typeset(v portfolio.ModalView, width int) []termLine {
	var out []termLine
	for i, b := range v.Blocks {
		st, indent := p.blockStyle(b.Style, v.Opacity)
		if b.Style == portfolio.StyleHeading && i > 0 {
			out = append(out, termLine{})
		}
		for _, l := range portfolio.Wrap(b.Text, portfolio.CellWidth(width-indent)) {
			out = append(out, termLine{text: strings.Repeat(" ", indent) + l, style: st})
		}
		if b.Style == portfolio.StyleLead || b.Style == portfolio.StyleBody {
			out = append(out, termLine{})
		}
	}
	return out
}

func (p *Painter) blockStyle(s portfolio.BlockStyle, a float64) (tcell.Style, int) {
	switch s {
	case portfolio.StyleLead:
		return p.style(p.ink, a).Bold(true), 0
	case portfolio.StyleHeading:
		return p.style(p.muted, a).Bold(true), 0
	case portfolio.StyleItem:
		return p.style(p.ink, a), 2
	case portfolio.StyleMeta:
		return p.style(p.muted, a), 2
	case portfolio.StyleLink:
		return p.style(p.food, a).Underline(true), 0
	default:
		return p.style(p.food, a), 0
	}
}
