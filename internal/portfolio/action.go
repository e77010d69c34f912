package portfolio

import "github.com/snakefolio/snakefolio/internal/world"

// ActionKind is what activating an overlay control does.
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionCloseModal
	ActionCloseMenu
	ActionSelect   // open section ID
	ActionLanguage // switch to Lang
)

// Action is the result of hit-testing an overlay.
type Action struct {
	Kind ActionKind
	ID   string
	Lang Language
}

// Target is a clickable overlay area. Units are up to the host.
type Target struct {
	Rect   world.Rect
	Action Action
}

// HitTest returns the action of the first target containing p.
func HitTest(targets []Target, p world.Point) (Action, bool) {
	for _, t := range targets {
		if t.Rect.Contains(p) {
			return t.Action, true
		}
	}
	return Action{}, false
}

// Apply performs an overlay action. It reports whether anything changed.
func (s *Shell) Apply(a Action) bool {
	switch a.Kind {
	case ActionCloseModal:
		if s.current < 0 {
			return false
		}
		s.CloseModal()
	case ActionCloseMenu:
		if !s.menuOpen {
			return false
		}
		s.CloseMenu()
	case ActionSelect:
		return s.SelectSection(a.ID)
	case ActionLanguage:
		if a.Lang == s.lang {
			return false
		}
		s.SetLanguage(a.Lang)
		return s.lang == a.Lang
	default:
		return false
	}
	return true
}
