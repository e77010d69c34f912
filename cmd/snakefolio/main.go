package main

import (
	"flag"
	"log"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/snakefolio/snakefolio/internal/app"
	"github.com/snakefolio/snakefolio/internal/config"
	"github.com/snakefolio/snakefolio/internal/game"
	"github.com/snakefolio/snakefolio/internal/portfolio"
	"github.com/snakefolio/snakefolio/internal/render"
	"github.com/snakefolio/snakefolio/internal/world"
)

// Game is the Ebitengine game struct. It owns rendering and input.
// All gameplay state lives in app.
type Game struct {
	app      *app.App
	renderer *render.Renderer
	dt       float64

	logical world.Size // outside size from the last Layout
	touched bool       // last pointer input came from a touch screen

	keys    []ebiten.Key
	touches []ebiten.TouchID
}

func NewGame(a *app.App, r *render.Renderer) *Game {
	return &Game{
		app:      a,
		renderer: r,
		dt:       1 / float64(a.Cfg.Window.TPS),
	}
}

var arrowKeys = map[ebiten.Key]game.Key{
	ebiten.KeyArrowUp:    game.KeyUp,
	ebiten.KeyArrowDown:  game.KeyDown,
	ebiten.KeyArrowLeft:  game.KeyLeft,
	ebiten.KeyArrowRight: game.KeyRight,
	ebiten.KeySpace:      game.KeySpace,
}

func (g *Game) Update() error {
	g.app.Resize(g.logical.W, g.logical.H)

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if k == ebiten.KeyEscape {
			if !g.app.Dismiss() {
				return ebiten.Termination
			}
			continue
		}
		gk, ok := arrowKeys[k]
		if !ok {
			gk = game.KeyOther
		}
		g.app.Push(game.KeyIntent(gk))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.touched = false
		g.pointer(x, y)
	}
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := ebiten.TouchPosition(id)
		g.touched = true
		g.pointer(x, y)
	}

	g.app.Update(g.dt)
	return nil
}

// pointer routes a press in screen pixels: to the open overlay if there is
// one, otherwise to the snake.
func (g *Game) pointer(x, y int) {
	s := g.renderer.Scale
	p := world.Point{X: float64(x) / s, Y: float64(y) / s}

	if !g.app.Shell.Paused() {
		g.app.Push(game.PointerIntent(p.X, p.Y))
		return
	}
	var targets []portfolio.Target
	if v, ok := g.app.Shell.Menu(); ok {
		targets = g.renderer.MenuTargets(v, g.logical)
	} else {
		targets = g.renderer.ModalTargets(g.logical)
	}
	if act, ok := portfolio.HitTest(targets, p); ok {
		g.app.Act(act)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	shell := g.app.Shell
	g.renderer.DrawScene(screen, g.app.Snapshot(), shell.MenuHint())
	g.renderer.DrawHero(screen, shell.Hero(), g.logical, g.touched)
	if v, ok := shell.Modal(); ok {
		g.renderer.DrawModal(screen, v, g.logical)
	}
	if v, ok := shell.Menu(); ok {
		g.renderer.DrawMenu(screen, v, g.logical)
	}
}

// Layout keeps the simulation in logical pixels and renders at device
// resolution so strokes stay crisp on high density displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.logical = world.Size{W: float64(outsideWidth), H: float64(outsideHeight)}
	scale := ebiten.Monitor().DeviceScaleFactor()
	g.renderer.Scale = scale
	return int(math.Ceil(float64(outsideWidth) * scale)), int(math.Ceil(float64(outsideHeight) * scale))
}

func main() {
	configPath := flag.String("config", "", "path to a JSON config overlaid on the defaults")
	lang := flag.String("lang", "", "interface language (en, sk)")
	logPath := flag.String("log", "", "journal file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *lang != "" {
		cfg.Language = *lang
	}
	if *logPath != "" {
		cfg.LogFile = *logPath
	}

	lgr, err := app.NewLogger(cfg.LogFile, false)
	if err != nil {
		log.Fatalf("journal: %v", err)
	}
	a, err := app.New(cfg, lgr, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	if err != nil {
		log.Fatalf("start: %v", err)
	}
	fonts, err := render.LoadFonts()
	if err != nil {
		log.Fatalf("fonts: %v", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.TPS)

	if err := ebiten.RunGame(NewGame(a, render.NewRenderer(cfg, fonts))); err != nil {
		lgr.Log("high", "Error", err)
		log.Fatal(err)
	}
}
