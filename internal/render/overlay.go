package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/snakefolio/snakefolio/internal/portfolio"
	"github.com/snakefolio/snakefolio/internal/world"
)

const (
	closeSize     = 56
	closeInset    = 24
	menuItemSize  = 40
	menuItemGap   = 32
	languageSize  = 18
	languageGap   = 32
	bottomInset   = 48
	modalMaxWidth = 672
	modalPadding  = 24
	titleSize     = 34
	titleGap      = 48
)

// closeRect is the close control in the top-right corner.
func closeRect(size world.Size) world.Rect {
	return world.RectAt(size.W-closeInset-closeSize, closeInset, closeSize, closeSize)
}

func (r *Renderer) measure(s string, size float64, medium bool) float64 {
	w, _ := text.Measure(s, r.Fonts.Face(size, medium), 0)
	return w
}

// MenuTargets lays out the navigation overlay: section list centered,
// language switcher at the bottom, close control top right.
func (r *Renderer) MenuTargets(v portfolio.MenuView, size world.Size) []portfolio.Target {
	targets := []portfolio.Target{{Rect: closeRect(size), Action: portfolio.Action{Kind: portfolio.ActionCloseMenu}}}

	n := float64(len(v.Items))
	y := (size.H - (n*menuItemSize + (n-1)*menuItemGap)) / 2
	for _, it := range v.Items {
		w := r.measure(it.Label, menuItemSize, false)
		rect := world.RectAt((size.W-w)/2, y, w, menuItemSize)
		targets = append(targets, portfolio.Target{Rect: rect, Action: portfolio.Action{Kind: portfolio.ActionSelect, ID: it.ID}})
		y += menuItemSize + menuItemGap
	}

	total := 0.0
	widths := make([]float64, len(v.Languages))
	for i, l := range v.Languages {
		widths[i] = r.measure(l.Label, languageSize, false)
		total += widths[i]
	}
	total += float64(len(v.Languages)-1) * languageGap
	x := (size.W - total) / 2
	ly := size.H - bottomInset - languageSize
	for i, l := range v.Languages {
		rect := world.RectAt(x, ly, widths[i], languageSize).Grow(8)
		targets = append(targets, portfolio.Target{Rect: rect, Action: portfolio.Action{Kind: portfolio.ActionLanguage, Lang: l.Lang}})
		x += widths[i] + languageGap
	}
	return targets
}

// ModalTargets returns the section overlay controls.
func (r *Renderer) ModalTargets(size world.Size) []portfolio.Target {
	return []portfolio.Target{{Rect: closeRect(size), Action: portfolio.Action{Kind: portfolio.ActionCloseModal}}}
}

// DrawMenu draws the navigation overlay.
func (r *Renderer) DrawMenu(screen *ebiten.Image, v portfolio.MenuView, size world.Size) {
	r.veil(screen, size, 0.95*v.Opacity)
	targets := r.MenuTargets(v, size)
	r.drawClose(screen, targets[0].Rect, v.Opacity)

	items := targets[1 : 1+len(v.Items)]
	for i, it := range v.Items {
		rect := items[i].Rect
		r.text(screen, it.Label, menuItemSize, false, rect.Min, text.AlignStart, r.Palette.Ink, v.Opacity)
		if it.Visited {
			r.dot(screen, world.Point{X: rect.Min.X - 20, Y: rect.Min.Y + menuItemSize/2}, 3, fade(r.Palette.Muted, v.Opacity))
		}
	}

	langs := targets[1+len(v.Items):]
	for i, l := range v.Languages {
		alpha := 0.4
		if l.Active {
			alpha = 1
		}
		r.text(screen, l.Label, languageSize, false, langs[i].Rect.Grow(-8).Min, text.AlignStart, r.Palette.Ink, alpha*v.Opacity)
	}
}

// DrawModal draws the open section.
func (r *Renderer) DrawModal(screen *ebiten.Image, v portfolio.ModalView, size world.Size) {
	r.veil(screen, size, 0.9*v.Opacity)
	r.drawClose(screen, closeRect(size), v.Opacity)

	colW := min(modalMaxWidth, size.W-2*modalPadding)
	lines := r.typeset(v.Blocks, colW)
	contentH := float64(titleSize + titleGap)
	if n := len(lines); n > 0 {
		contentH += lines[n-1].y + lines[n-1].size*1.5
	}

	x := (size.W - colW) / 2
	// slides up 8px while fading in
	y := max(modalPadding, (size.H-contentH)/2) + 8*(1-v.Opacity)

	r.text(screen, v.Title, titleSize, false, world.Point{X: x, Y: y}, text.AlignStart, r.Palette.Ink, v.Opacity)
	rule := y + titleSize + 16
	r.line(screen, world.Point{X: x, Y: rule}, world.Point{X: x + colW, Y: rule}, 1, fade(r.Palette.Muted, 0.4*v.Opacity))

	top := y + titleSize + titleGap
	for _, l := range lines {
		r.text(screen, l.text, l.size, l.medium, world.Point{X: x, Y: top + l.y}, text.AlignStart, l.color, v.Opacity)
	}
}

// DrawHero draws the title layer. mobile picks the touch prompt.
func (r *Renderer) DrawHero(screen *ebiten.Image, v portfolio.HeroView, size world.Size, mobile bool) {
	if v.Opacity <= 0 {
		return
	}
	c := size.Center()
	title := min(72, size.W/10)
	r.text(screen, v.Title, title, false, world.Point{X: c.X, Y: c.Y - title}, text.AlignCenter, r.Palette.Ink, v.Opacity)
	r.text(screen, v.Subtitle, 20, false, world.Point{X: c.X, Y: c.Y + 16}, text.AlignCenter, r.Palette.Muted, v.Opacity)

	prompt := v.PromptDesktop
	if mobile {
		prompt = v.PromptMobile
	}
	if a := v.Opacity * v.PromptOpacity; a > 0 {
		r.text(screen, prompt, 13, false, world.Point{X: c.X, Y: size.H - bottomInset - 13}, text.AlignCenter, r.Palette.Muted, a)
	}
}

type typesetLine struct {
	text   string
	size   float64
	medium bool
	color  color.RGBA
	y      float64 // offset from the top of the body
}

// typeset wraps blocks into lines that fit width.
func (r *Renderer) typeset(blocks []portfolio.Block, width float64) []typesetLine {
	var out []typesetLine
	y := 0.0
	for i, b := range blocks {
		size, medium, clr, gap := r.blockStyle(b.Style)
		if b.Style == portfolio.StyleHeading && i > 0 {
			y += 16
		}
		fits := func(s string) bool { return r.measure(s, size, medium) <= width }
		for _, l := range portfolio.Wrap(b.Text, fits) {
			out = append(out, typesetLine{text: l, size: size, medium: medium, color: clr, y: y})
			y += size * 1.5
		}
		y += gap
	}
	return out
}

func (r *Renderer) blockStyle(s portfolio.BlockStyle) (size float64, medium bool, c color.RGBA, gap float64) {
	p := r.Palette
	switch s {
	case portfolio.StyleLead:
		return 22, false, p.Ink, 16
	case portfolio.StyleHeading:
		return 13, true, p.Muted, 8
	case portfolio.StyleItem:
		return 18, false, p.Ink, 8
	case portfolio.StyleMeta:
		return 13, false, p.Muted, 4
	case portfolio.StyleLink:
		return 18, false, p.Food, 16
	default:
		return 17, false, p.Food, 16
	}
}

// veil covers the scene with the background color.
func (r *Renderer) veil(screen *ebiten.Image, size world.Size, alpha float64) {
	s := float32(r.Scale)
	vector.DrawFilledRect(screen, 0, 0, float32(size.W)*s, float32(size.H)*s, fade(r.Palette.Background, alpha), false)
}

func (r *Renderer) drawClose(screen *ebiten.Image, rect world.Rect, alpha float64) {
	c := world.Point{X: (rect.Min.X + rect.Max.X) / 2, Y: (rect.Min.Y + rect.Max.Y) / 2}
	const arm = 12
	clr := fade(r.Palette.Food, alpha)
	r.line(screen, c.Add(-arm, -arm), c.Add(arm, arm), 1.5, clr)
	r.line(screen, c.Add(-arm, arm), c.Add(arm, -arm), 1.5, clr)
}

// text draws s with its line box top at p (logical pixels).
func (r *Renderer) text(screen *ebiten.Image, s string, size float64, medium bool, p world.Point, align text.Align, c color.RGBA, alpha float64) {
	if alpha <= 0 || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = align
	op.GeoM.Translate(p.X*r.Scale, p.Y*r.Scale)
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, s, r.Fonts.Face(size*r.Scale, medium), op)
}
