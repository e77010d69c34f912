// Package render draws the snake scene and the portfolio overlays with Ebitengine.
// All inputs are in logical pixels; Scale maps them onto device pixels so
// strokes keep their visual weight on high density displays.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/snakefolio/snakefolio/internal/config"
	"github.com/snakefolio/snakefolio/internal/game"
	"github.com/snakefolio/snakefolio/internal/world"
)

const (
	glyphStroke = 2
	foodRing    = 8
	foodStroke  = 1.5
	foodDot     = 3
	hintSize    = 10
)

// Renderer draws frames. It holds no game state; everything comes from the snapshot.
type Renderer struct {
	Palette Palette
	Fonts   *Fonts
	Scale   float64 // device pixels per logical pixel

	segment float64
	seam    float64
}

// NewRenderer creates a renderer for a validated config.
func NewRenderer(cfg config.Config, fonts *Fonts) *Renderer {
	return &Renderer{
		Palette: NewPalette(cfg.Palette),
		Fonts:   fonts,
		Scale:   1,
		segment: cfg.Game.SegmentSize,
		seam:    cfg.Game.SeamThreshold,
	}
}

// DrawScene clears the screen and draws the menu target, snake and food.
// An uninitialised snapshot leaves a blank background.
func (r *Renderer) DrawScene(screen *ebiten.Image, snap game.Snapshot, hint string) {
	screen.Fill(r.Palette.Background)
	if !snap.Ready {
		return
	}
	r.drawMenuTarget(screen, snap.Menu, snap.Moving(), hint)
	r.drawSnake(screen, snap.Snake)
	r.drawFood(screen, snap.Food)
}

func (r *Renderer) drawMenuTarget(screen *ebiten.Image, m world.Point, moving bool, hint string) {
	for _, l := range world.MenuGlyph(m) {
		r.line(screen, l.A, l.B, glyphStroke, r.Palette.Muted)
		// round caps
		r.dot(screen, l.A, glyphStroke/2, r.Palette.Muted)
		r.dot(screen, l.B, glyphStroke/2, r.Palette.Muted)
	}
	if !moving || hint == "" {
		return
	}
	face := r.Fonts.Face(hintSize*r.Scale, false)
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignEnd
	op.GeoM.Translate((m.X-25)*r.Scale, (m.Y+4)*r.Scale-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(r.Palette.Muted)
	text.Draw(screen, hint, face, op)
}

// drawSnake strokes the body as one path per wrap-free run.
func (r *Renderer) drawSnake(screen *ebiten.Image, body []world.Point) {
	if len(body) < 2 {
		return
	}
	half := r.segment / 2
	for _, run := range world.Strokes(body, r.seam) {
		for i, p := range run {
			r.dot(screen, p, half, r.Palette.Snake)
			if i > 0 {
				r.line(screen, run[i-1], p, r.segment, r.Palette.Snake)
			}
		}
	}
}

func (r *Renderer) drawFood(screen *ebiten.Image, f world.Point) {
	s := float32(r.Scale)
	vector.StrokeCircle(screen, float32(f.X)*s, float32(f.Y)*s, foodRing*s, foodStroke*s, r.Palette.Food, true)
	r.dot(screen, f, foodDot, r.Palette.Food)
}

func (r *Renderer) line(screen *ebiten.Image, a, b world.Point, width float64, c color.Color) {
	s := r.Scale
	vector.StrokeLine(screen,
		float32(a.X*s), float32(a.Y*s), float32(b.X*s), float32(b.Y*s),
		float32(width*s), c, true)
}

func (r *Renderer) dot(screen *ebiten.Image, p world.Point, radius float64, c color.Color) {
	s := r.Scale
	vector.DrawFilledCircle(screen, float32(p.X*s), float32(p.Y*s), float32(radius*s), c, true)
}
