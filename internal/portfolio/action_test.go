package portfolio

import (
	"testing"

	"github.com/snakefolio/snakefolio/internal/world"
)

func TestHitTest(t *testing.T) {
	targets := []Target{
		{Rect: world.RectAt(0, 0, 10, 10), Action: Action{Kind: ActionCloseMenu}},
		{Rect: world.RectAt(5, 5, 10, 10), Action: Action{Kind: ActionSelect, ID: "work"}},
	}
	tests := []struct {
		name string
		p    world.Point
		want Action
		ok   bool
	}{
		{"First wins on overlap", world.Point{X: 7, Y: 7}, Action{Kind: ActionCloseMenu}, true},
		{"Second only", world.Point{X: 12, Y: 12}, Action{Kind: ActionSelect, ID: "work"}, true},
		{"Miss", world.Point{X: 50, Y: 50}, Action{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := HitTest(targets, tt.p)
			if ok != tt.ok || got != tt.want {
				t.Errorf("HitTest(%v) = %v, %v; want %v, %v", tt.p, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestApply(t *testing.T) {
	t.Run("Close modal", func(t *testing.T) {
		s := newTestShell(t)
		if s.Apply(Action{Kind: ActionCloseModal}) {
			t.Error("nothing open, nothing to close")
		}
		s.HandleEat()
		if !s.Apply(Action{Kind: ActionCloseModal}) || s.Paused() {
			t.Error("close must dismiss the section")
		}
	})

	t.Run("Close menu resets", func(t *testing.T) {
		s := newTestShell(t)
		s.HandleMenuHit()
		if !s.Apply(Action{Kind: ActionCloseMenu}) {
			t.Fatal("Expected the menu to close")
		}
		if s.ResetKey() != 1 {
			t.Errorf("Expected reset key 1, got %d", s.ResetKey())
		}
		if s.Apply(Action{Kind: ActionCloseMenu}) {
			t.Error("closing a closed menu must be a no-op")
		}
		if s.ResetKey() != 1 {
			t.Errorf("no-op close bumped the reset key to %d", s.ResetKey())
		}
	})

	t.Run("Select", func(t *testing.T) {
		s := newTestShell(t)
		s.HandleMenuHit()
		if !s.Apply(Action{Kind: ActionSelect, ID: "contact"}) {
			t.Fatal("Expected contact to open")
		}
		if sec, _ := s.Current(); sec.ID != "contact" {
			t.Errorf("Expected contact, got %q", sec.ID)
		}
	})

	t.Run("Language", func(t *testing.T) {
		s := newTestShell(t)
		if s.Apply(Action{Kind: ActionLanguage, Lang: LangEN}) {
			t.Error("switching to the active language is a no-op")
		}
		if !s.Apply(Action{Kind: ActionLanguage, Lang: LangSK}) || s.Language() != LangSK {
			t.Error("Expected a switch to sk")
		}
		if s.Apply(Action{Kind: ActionLanguage, Lang: "de"}) {
			t.Error("unknown language must be ignored")
		}
	})

	t.Run("None", func(t *testing.T) {
		if newTestShell(t).Apply(Action{}) {
			t.Error("ActionNone must do nothing")
		}
	})
}
