package main

import (
	"context"
	"flag"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/snakefolio/snakefolio/internal/app"
	"github.com/snakefolio/snakefolio/internal/config"
	"github.com/snakefolio/snakefolio/internal/game"
	"github.com/snakefolio/snakefolio/internal/portfolio"
	"github.com/snakefolio/snakefolio/internal/termview"
	"github.com/snakefolio/snakefolio/internal/world"
)

// term drives an App from tcell events on a fixed ticker.
type term struct {
	screen  tcell.Screen
	app     *app.App
	painter *termview.Painter

	scroll  int  // modal scroll offset in lines
	pressed bool // primary button state from the previous mouse event
	quit    bool
}

var arrowKeys = map[tcell.Key]game.Key{
	tcell.KeyUp:    game.KeyUp,
	tcell.KeyDown:  game.KeyDown,
	tcell.KeyLeft:  game.KeyLeft,
	tcell.KeyRight: game.KeyRight,
}

func (t *term) resize() {
	cols, rows := t.screen.Size()
	t.painter.Resize(cols, rows)
	size := t.painter.View.Size()
	t.app.Resize(size.W, size.H)
	t.screen.Sync()
}

func (t *term) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC {
		t.quit = true
		return
	}
	if t.app.Shell.Paused() {
		t.overlayKey(ev)
		return
	}
	if ev.Key() == tcell.KeyEscape || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
		t.quit = true
		return
	}
	if k, ok := arrowKeys[ev.Key()]; ok {
		t.app.Push(game.KeyIntent(k))
		return
	}
	if ev.Key() == tcell.KeyRune && ev.Rune() == ' ' {
		t.app.Push(game.KeyIntent(game.KeySpace))
		return
	}
	t.app.Push(game.KeyIntent(game.KeyOther))
}

// overlayKey handles keys while a section or the menu is open: Esc closes,
// arrows scroll a section, digits pick a menu entry, l cycles the language.
func (t *term) overlayKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyEnter:
		t.app.Dismiss()
		t.scroll = 0
		return
	case tcell.KeyUp:
		t.scroll--
		return
	case tcell.KeyDown:
		t.scroll++
		return
	case tcell.KeyRune:
	default:
		return
	}

	v, menu := t.app.Shell.Menu()
	if !menu {
		return
	}
	r := ev.Rune()
	switch {
	case r >= '1' && r <= '9':
		if i := int(r - '1'); i < len(v.Items) {
			t.scroll = 0
			t.app.Act(portfolio.Action{Kind: portfolio.ActionSelect, ID: v.Items[i].ID})
		}
	case r == 'l':
		for i, l := range v.Languages {
			if l.Active {
				next := v.Languages[(i+1)%len(v.Languages)]
				t.app.Act(portfolio.Action{Kind: portfolio.ActionLanguage, Lang: next.Lang})
				break
			}
		}
	}
}

// handleMouse turns primary button presses into taps. tcell reports button
// state, not transitions, so a tap is the first event with the button down.
func (t *term) handleMouse(ev *tcell.EventMouse) {
	down := ev.Buttons()&tcell.Button1 != 0
	tap := down && !t.pressed
	t.pressed = down
	if !tap {
		return
	}
	col, row := ev.Position()

	if !t.app.Shell.Paused() {
		p := t.painter.View.PointOf(col, row)
		t.app.Push(game.PointerIntent(p.X, p.Y))
		return
	}
	var targets []portfolio.Target
	if v, ok := t.app.Shell.Menu(); ok {
		targets = t.painter.MenuTargets(v)
	} else {
		targets = t.painter.ModalTargets()
	}
	if act, ok := portfolio.HitTest(targets, world.Point{X: float64(col), Y: float64(row)}); ok {
		t.app.Act(act)
		t.scroll = 0
	}
}

func (t *term) draw() {
	shell := t.app.Shell
	t.painter.DrawScene(t.app.Snapshot(), shell.MenuHint())
	t.painter.DrawHero(shell.Hero())
	if v, ok := shell.Modal(); ok {
		t.scroll = t.painter.DrawModal(v, t.scroll)
	}
	if v, ok := shell.Menu(); ok {
		t.painter.DrawMenu(v)
	}
	t.painter.Buf.Flush(t.screen)
}

// pump forwards screen events on a buffered channel until the screen is
// finalised or done is closed. The channel is closed when it stops.
func pump(screen tcell.Screen, done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 32)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

func (t *term) run(ctx context.Context, tps int) {
	done := make(chan struct{})
	defer close(done)
	events := pump(t.screen, done)

	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()
	dt := 1 / float64(tps)

	for !t.quit {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch e := ev.(type) {
			case *tcell.EventResize:
				t.resize()
			case *tcell.EventKey:
				t.handleKey(e)
			case *tcell.EventMouse:
				t.handleMouse(e)
			}
		case <-ticker.C:
			t.app.Update(dt)
			t.draw()
		}
	}
}

func main() {
	configPath := flag.String("config", "", "path to a JSON config overlaid on the defaults")
	lang := flag.String("lang", "", "interface language (en, sk)")
	logPath := flag.String("log", "", "journal file")
	tps := flag.Int("tps", 0, "frames per second, overrides the config")
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
	if *tps > 0 {
		cfg.Window.TPS = *tps
	}

	lgr, err := app.NewLogger(cfg.LogFile, true)
	if err != nil {
		log.Fatalf("journal: %v", err)
	}
	a, err := app.New(cfg, lgr, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	if err != nil {
		log.Fatalf("start: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cols, rows := screen.Size()
	t := &term{
		screen:  screen,
		app:     a,
		painter: termview.NewPainter(cfg.Palette, cols, rows),
	}
	t.resize()
	t.run(ctx, cfg.Window.TPS)

	screen.Fini()
	lgr.Log("medium", "Exit", "frames", a.Sim.Ticks)
}
