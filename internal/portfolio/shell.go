// Package portfolio owns the state around the snake: which section is open,
// whether the navigation menu is showing, the hero text and the reset epoch.
package portfolio

import (
	"github.com/zyedidia/generic/mapset"
)

// Shell is the state owner the simulation reports to. It decides when the game
// pauses and when it restarts.
type Shell struct {
	catalog *Catalog
	tr      *Translator
	lang    Language

	started  bool
	current  int // open section index, -1 when the modal is closed
	next     int // section shown by the next eat
	menuOpen bool
	resetKey int
	visited  mapset.Set[string]

	hero   Fade
	prompt Fade
	modal  Fade
	menu   Fade
}

// NewShell creates a shell showing the hero text and no overlays.
func NewShell(catalog *Catalog, tr *Translator, lang Language) *Shell {
	return &Shell{
		catalog: catalog,
		tr:      tr,
		lang:    lang,
		current: -1,
		visited: mapset.New[string](),
		hero:    NewFade(1, heroFadeRate),
		prompt:  NewFade(1, promptFadeRate),
		modal:   NewFade(0, modalFadeRate),
		menu:    NewFade(0, menuFadeRate),
	}
}

// Paused reports whether the simulation must hold still: a section or the menu is open.
func (s *Shell) Paused() bool { return s.current >= 0 || s.menuOpen }

// ResetKey is the reset epoch. It only grows.
func (s *Shell) ResetKey() int { return s.resetKey }

// Started reports whether the hero text has faded out.
func (s *Shell) Started() bool { return s.started }

// MenuOpen reports whether the navigation overlay is showing.
func (s *Shell) MenuOpen() bool { return s.menuOpen }

// Language returns the active language.
func (s *Shell) Language() Language { return s.lang }

// Current returns the open section.
func (s *Shell) Current() (Section, bool) {
	if s.current < 0 {
		return Section{}, false
	}
	return s.catalog.Sections[s.current], true
}

// HandleInteractionStart fades the hero text the first time the player moves.
func (s *Shell) HandleInteractionStart() {
	s.started = true
	s.syncFades()
}

// HandleEat opens the next section in catalogue order, wrapping around.
func (s *Shell) HandleEat() {
	s.open(s.next)
	s.next = (s.next + 1) % len(s.catalog.Sections)
}

// HandleMenuHit opens the navigation overlay. Repeated calls are harmless.
func (s *Shell) HandleMenuHit() {
	s.menuOpen = true
	s.syncFades()
}

// CloseModal dismisses the open section and resumes the game.
func (s *Shell) CloseModal() {
	s.current = -1
	s.syncFades()
}

// CloseMenu dismisses the navigation overlay and restarts the experience:
// the hero text returns and the snake is reset.
func (s *Shell) CloseMenu() {
	s.menuOpen = false
	s.started = false
	s.resetKey++
	s.syncFades()
}

// SelectSection opens a section from the menu without resetting the snake.
// It reports false for an unknown id.
func (s *Shell) SelectSection(id string) bool {
	i := s.catalog.Index(id)
	if i < 0 {
		return false
	}
	s.open(i)
	s.started = true
	s.menuOpen = false
	s.syncFades()
	return true
}

// SetLanguage switches the UI language. Unknown languages are ignored.
func (s *Shell) SetLanguage(l Language) {
	if _, err := ParseLanguage(string(l)); err != nil {
		return
	}
	s.lang = l
}

// Visited reports whether a section has been opened this session.
func (s *Shell) Visited(id string) bool { return s.visited.Has(id) }

// T translates a UI key in the active language.
func (s *Shell) T(key string) string { return s.tr.Get(s.lang, key) }

func (s *Shell) open(i int) {
	s.current = i
	s.visited.Put(s.catalog.Sections[i].ID)
	s.modal.Jump(0)
	s.syncFades()
}

func (s *Shell) syncFades() {
	if s.started {
		s.hero.Target = heroDimmed
		s.prompt.Target = 0
	} else {
		s.hero.Target = 1
		s.prompt.Target = 1
	}
	s.modal.Target = 0
	if s.current >= 0 {
		s.modal.Target = 1
	}
	s.menu.Target = 0
	if s.menuOpen {
		s.menu.Target = 1
	}
}

// Tick advances the overlay fades by dt seconds.
func (s *Shell) Tick(dt float64) {
	s.hero.Step(dt)
	s.prompt.Step(dt)
	s.modal.Step(dt)
	s.menu.Step(dt)
}
