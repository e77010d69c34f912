package portfolio

import (
	"strings"
	"testing"

	"github.com/snakefolio/snakefolio/assets"
)

func newTestShell(t *testing.T) *Shell {
	t.Helper()
	data, err := assets.Content.ReadFile("content/sections.json")
	if err != nil {
		t.Fatal(err)
	}
	cat, err := LoadCatalog(data)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	tr, err := LoadTranslator(assets.Locales)
	if err != nil {
		t.Fatalf("LoadTranslator: %v", err)
	}
	return NewShell(cat, tr, LangEN)
}

func TestEatCyclesSections(t *testing.T) {
	s := newTestShell(t)
	want := []string{"about", "skills", "work", "experience", "contact", "about"}

	for i, id := range want {
		s.HandleEat()
		sec, ok := s.Current()
		if !ok || sec.ID != id {
			t.Fatalf("eat %d: got %q, want %q", i, sec.ID, id)
		}
		if !s.Paused() {
			t.Fatalf("eat %d: open section must pause", i)
		}
		s.CloseModal()
		if s.Paused() {
			t.Fatalf("eat %d: closing the modal must resume", i)
		}
	}
	if s.ResetKey() != 0 {
		t.Errorf("closing a section must not reset, got key %d", s.ResetKey())
	}
}

func TestMenuLifecycle(t *testing.T) {
	s := newTestShell(t)
	s.HandleInteractionStart()
	s.HandleMenuHit()
	s.HandleMenuHit()
	if !s.MenuOpen() || !s.Paused() {
		t.Fatal("menu hit must open the menu and pause")
	}

	s.CloseMenu()
	if s.MenuOpen() || s.Paused() {
		t.Error("closing the menu must resume")
	}
	if s.Started() {
		t.Error("closing the menu must bring the hero back")
	}
	if s.ResetKey() != 1 {
		t.Errorf("Expected reset key 1, got %d", s.ResetKey())
	}
}

func TestSelectSection(t *testing.T) {
	s := newTestShell(t)
	s.HandleMenuHit()

	if s.SelectSection("nope") {
		t.Error("unknown section must be rejected")
	}
	if !s.MenuOpen() {
		t.Error("rejected selection must keep the menu open")
	}

	if !s.SelectSection("contact") {
		t.Fatal("contact should be selectable")
	}
	sec, _ := s.Current()
	if sec.ID != "contact" || s.MenuOpen() || !s.Started() {
		t.Errorf("unexpected state: section %q menu %v started %v", sec.ID, s.MenuOpen(), s.Started())
	}
	if !s.Visited("contact") || s.Visited("about") {
		t.Error("visited set mismatch")
	}
	if s.ResetKey() != 0 {
		t.Error("selecting a section must not reset")
	}

	// Eating still follows catalogue order.
	s.CloseModal()
	s.HandleEat()
	if sec, _ := s.Current(); sec.ID != "about" {
		t.Errorf("Expected about, got %q", sec.ID)
	}
}

func TestTranslations(t *testing.T) {
	s := newTestShell(t)
	if got := s.Hero().Title; got != "I’m Andrea" {
		t.Errorf("en title = %q", got)
	}
	s.SetLanguage(LangSK)
	if got := s.Hero().Title; got != "Som Andrea" {
		t.Errorf("sk title = %q", got)
	}
	s.SetLanguage("de")
	if s.Language() != LangSK {
		t.Error("unknown language must be ignored")
	}

	s.HandleMenuHit()
	menu, ok := s.Menu()
	if !ok {
		t.Fatal("Expected menu view")
	}
	if menu.Items[0].Label != "O mne" {
		t.Errorf("Expected Slovak label, got %q", menu.Items[0].Label)
	}
	if len(menu.Languages) != 2 || !menu.Languages[1].Active {
		t.Errorf("Expected sk active, got %+v", menu.Languages)
	}
	for _, key := range []string{"MISSING_KEY", "100% done", "%d%s"} {
		if got := s.T(key); got != key {
			t.Errorf("missing key %q should echo unchanged, got %q", key, got)
		}
	}
}

func TestModalView(t *testing.T) {
	s := newTestShell(t)
	if _, ok := s.Modal(); ok {
		t.Fatal("no modal before eating")
	}
	s.HandleEat()
	m, ok := s.Modal()
	if !ok || m.Title != "About" || len(m.Blocks) != 2 {
		t.Fatalf("unexpected modal %+v", m)
	}
	if m.Opacity != 0 {
		t.Errorf("modal must start transparent, got %v", m.Opacity)
	}
	s.Tick(10)
	if m, _ := s.Modal(); m.Opacity != 1 {
		t.Errorf("modal must fade in, got %v", m.Opacity)
	}
}

func TestHeroFade(t *testing.T) {
	s := newTestShell(t)
	s.HandleInteractionStart()
	s.Tick(0.5)
	h := s.Hero()
	if h.Opacity >= 1 || h.Opacity <= heroDimmed {
		t.Errorf("hero should be mid-fade, got %v", h.Opacity)
	}
	s.Tick(5)
	h = s.Hero()
	if h.Opacity != heroDimmed || h.PromptOpacity != 0 {
		t.Errorf("Expected dimmed hero and hidden prompt, got %v/%v", h.Opacity, h.PromptOpacity)
	}
}

func TestLoadCatalogErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"Bad JSON", `{`, "parse catalog"},
		{"Empty", `{"sections": []}`, "no sections"},
		{"Missing id", `{"sections": [{"title": "T"}]}`, "missing id"},
		{"Duplicate", `{"sections": [
			{"id": "a", "title": "T", "blocks": {"en": [{"style": "body", "text": "x"}], "sk": [{"style": "body", "text": "x"}]}},
			{"id": "a", "title": "T"}]}`, "duplicate id"},
		{"Missing language", `{"sections": [{"id": "a", "title": "T", "blocks": {"en": [{"style": "body", "text": "x"}]}}]}`, "no sk text"},
		{"Bad style", `{"sections": [{"id": "a", "title": "T", "blocks": {"en": [{"style": "huge", "text": "x"}], "sk": [{"style": "body", "text": "x"}]}}]}`, "unknown style"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog([]byte(tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	lines := Wrap("the quick brown fox jumps", CellWidth(10))
	want := []string{"the quick", "brown fox", "jumps"}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Errorf("Wrap = %q, want %q", lines, want)
	}
	if got := Wrap("   ", CellWidth(10)); len(got) != 1 || got[0] != "" {
		t.Errorf("blank text should give one empty line, got %q", got)
	}
	if got := Wrap("extraordinarily long", CellWidth(5)); got[0] != "extraordinarily" {
		t.Errorf("long word must stay whole, got %q", got)
	}
}

func TestParseLanguage(t *testing.T) {
	if l, err := ParseLanguage("sk"); err != nil || l != LangSK {
		t.Errorf("ParseLanguage(sk) = %v, %v", l, err)
	}
	if _, err := ParseLanguage("fr"); err == nil {
		t.Error("Expected error for fr")
	}
}
