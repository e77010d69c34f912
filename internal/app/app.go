// Package app wires the simulation to the portfolio shell and the journal.
// Both frontends drive an App; they only differ in how they read input and draw.
package app

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/HandyGold75/GOLib/logger"
	"github.com/snakefolio/snakefolio/assets"
	"github.com/snakefolio/snakefolio/internal/config"
	"github.com/snakefolio/snakefolio/internal/game"
	"github.com/snakefolio/snakefolio/internal/portfolio"
	"github.com/snakefolio/snakefolio/internal/world"
)

// App owns one session.
type App struct {
	Cfg   config.Config
	Sim   *game.Sim
	Shell *portfolio.Shell
	Lgr   *logger.Logger

	body []world.Point // snapshot buffer
}

// Journal verbosities: every record reaches the file, and quiet keeps the
// console clear for frontends that own the terminal.
const (
	journalToFile = 1 // "low" and up
	consoleQuiet  = 4 // above "high"
)

// NewLogger opens the session journal at path, relative to the working directory.
func NewLogger(path string, quiet bool) (*logger.Logger, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("journal path: %w", err)
	}
	lgr := logger.NewAbs(abs)
	lgr.UseSeperators = false
	lgr.CharCountPerPart = 16
	lgr.VerboseToFile = journalToFile
	if quiet {
		lgr.VerboseToCLI = consoleQuiet
		lgr.MessageCLIHook = func(string) {}
	}
	return lgr, nil
}

// New loads the embedded content and builds a session. cfg must be validated.
func New(cfg config.Config, lgr *logger.Logger, rng game.Sampler) (*App, error) {
	data, err := assets.Content.ReadFile("content/sections.json")
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	catalog, err := portfolio.LoadCatalog(data)
	if err != nil {
		return nil, err
	}
	tr, err := portfolio.LoadTranslator(assets.Locales)
	if err != nil {
		return nil, err
	}
	lang, err := portfolio.ParseLanguage(cfg.Language)
	if err != nil {
		return nil, err
	}

	a := &App{
		Cfg:   cfg,
		Shell: portfolio.NewShell(catalog, tr, lang),
		Lgr:   lgr,
	}
	a.Sim = game.NewSim(cfg.Game, game.Callbacks{
		OnEat:              a.onEat,
		OnMenuHit:          a.onMenuHit,
		OnInteractionStart: a.onInteractionStart,
	}, rng)
	lgr.Log("medium", "Session", lang, len(catalog.Sections), "sections")
	return a, nil
}

func (a *App) onEat() {
	a.Shell.HandleEat()
	sec, _ := a.Shell.Current()
	a.Lgr.Log("low", "Eat", sec.ID, "length", a.Sim.Len())
}

func (a *App) onMenuHit() {
	if !a.Shell.MenuOpen() {
		a.Lgr.Log("low", "Menu", "open")
	}
	a.Shell.HandleMenuHit()
}

func (a *App) onInteractionStart() {
	if !a.Shell.Started() {
		a.Lgr.Log("low", "Start", "epoch", a.Sim.Epoch())
	}
	a.Shell.HandleInteractionStart()
}

// Resize forwards the canvas size in logical pixels.
func (a *App) Resize(w, h float64) {
	if s := a.Sim.Size(); s.W == w && s.H == h {
		return
	}
	a.Sim.Resize(w, h)
	a.Lgr.Log("low", "Resize", strconv.FormatFloat(w, 'f', 0, 64)+"x"+strconv.FormatFloat(h, 'f', 0, 64))
}

// Push queues an input for the next frame.
func (a *App) Push(in game.Intent) { a.Sim.Push(in) }

// Act performs an overlay action and reports whether it changed anything.
func (a *App) Act(act portfolio.Action) bool {
	if !a.Shell.Apply(act) {
		return false
	}
	switch act.Kind {
	case portfolio.ActionSelect:
		a.Lgr.Log("low", "Select", act.ID)
	case portfolio.ActionLanguage:
		a.Lgr.Log("low", "Language", act.Lang)
	case portfolio.ActionCloseMenu:
		a.Lgr.Log("low", "Menu", "close")
	}
	return true
}

// Dismiss closes the topmost overlay: the section first, then the menu.
func (a *App) Dismiss() bool {
	if _, open := a.Shell.Current(); open {
		return a.Act(portfolio.Action{Kind: portfolio.ActionCloseModal})
	}
	return a.Act(portfolio.Action{Kind: portfolio.ActionCloseMenu})
}

// Update runs one frame: restart on a new reset epoch, step the simulation
// unless an overlay is up, then advance the fades by dt seconds.
func (a *App) Update(dt float64) {
	if k := a.Shell.ResetKey(); k != a.Sim.Epoch() {
		a.Sim.Reset(k)
		a.Lgr.Log("medium", "Reset", k)
	}
	a.Sim.Frame(a.Shell.Paused())
	a.Shell.Tick(dt)
}

// Snapshot returns the drawable state, reusing one body buffer across frames.
func (a *App) Snapshot() game.Snapshot {
	snap := a.Sim.Snapshot(a.body)
	a.body = snap.Snake
	return snap
}
