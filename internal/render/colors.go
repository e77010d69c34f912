package render

import (
	"image/color"

	"github.com/snakefolio/snakefolio/internal/config"
)

// Palette holds the resolved scene colors.
type Palette struct {
	Snake      color.RGBA
	Food       color.RGBA
	Background color.RGBA
	Ink        color.RGBA
	Muted      color.RGBA
}

// NewPalette resolves the configured hex colors. The config must be validated.
func NewPalette(p config.Palette) Palette {
	return Palette{
		Snake:      config.MustHex(p.Snake),
		Food:       config.MustHex(p.Food),
		Background: config.MustHex(p.Background),
		Ink:        config.MustHex(p.Ink),
		Muted:      config.MustHex(p.Muted),
	}
}

// fade returns c with its alpha scaled by a.
func fade(c color.RGBA, a float64) color.NRGBA {
	a = min(max(a, 0), 1)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * a)}
}
