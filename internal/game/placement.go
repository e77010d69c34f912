package game

import (
	"github.com/snakefolio/snakefolio/internal/config"
	"github.com/snakefolio/snakefolio/internal/world"
)

// Sampler yields uniform values in [0,1). *rand.Rand satisfies it.
type Sampler interface {
	Float64() float64
}

// PlaceFood samples a food position inside the canvas inset by the food margin,
// rejecting candidates closer than the clearance to the menu target. After the
// attempt budget runs out it falls back to (w/2, h/3) and reports false.
func PlaceFood(rng Sampler, size world.Size, menu world.Point, cfg config.Game) (world.Point, bool) {
	spanW := max(size.W-cfg.FoodMargin*2, cfg.MinSpan)
	spanH := max(size.H-cfg.FoodMargin*2, cfg.MinSpan)

	for range cfg.SpawnAttempts {
		p := world.Point{
			X: cfg.FoodMargin + rng.Float64()*spanW,
			Y: cfg.FoodMargin + rng.Float64()*spanH,
		}
		if p.Dist(menu) >= cfg.FoodClearance {
			return p, true
		}
	}
	return world.Point{X: size.W / 2, Y: size.H / 3}, false
}

// MenuPosition returns the menu target, a fixed inset from the top-right corner.
func MenuPosition(width float64, cfg config.Game) world.Point {
	return world.Point{X: width - cfg.MenuOffset, Y: cfg.MenuOffset}
}
