package portfolio

// HeroView is the centered title layer.
type HeroView struct {
	Title         string
	Subtitle      string
	PromptDesktop string
	PromptMobile  string
	Opacity       float64
	PromptOpacity float64
}

// ModalView is the open section.
type ModalView struct {
	Title   string
	Blocks  []Block
	Close   string
	Opacity float64
}

// MenuItem is one navigation entry.
type MenuItem struct {
	ID      string
	Label   string
	Visited bool
}

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Lang   Language
	Label  string
	Active bool
}

// MenuView is the navigation overlay.
type MenuView struct {
	Items     []MenuItem
	Languages []LanguageOption
	Close     string
	Opacity   float64
}

// Hero returns the hero layer.
func (s *Shell) Hero() HeroView {
	return HeroView{
		Title:         s.T("HERO_TITLE"),
		Subtitle:      s.T("HERO_SUBTITLE"),
		PromptDesktop: s.T("HERO_DESKTOP"),
		PromptMobile:  s.T("HERO_MOBILE"),
		Opacity:       s.hero.Value,
		PromptOpacity: s.prompt.Value,
	}
}

// Modal returns the section overlay while a section is open.
func (s *Shell) Modal() (ModalView, bool) {
	sec, ok := s.Current()
	if !ok {
		return ModalView{}, false
	}
	return ModalView{
		Title:   s.T(sec.Title),
		Blocks:  sec.Blocks[s.lang],
		Close:   s.T("CLOSE"),
		Opacity: s.modal.Value,
	}, true
}

// Menu returns the navigation overlay while it is open.
func (s *Shell) Menu() (MenuView, bool) {
	if !s.menuOpen {
		return MenuView{}, false
	}
	v := MenuView{Close: s.T("CLOSE"), Opacity: s.menu.Value}
	for _, sec := range s.catalog.Sections {
		v.Items = append(v.Items, MenuItem{
			ID:      sec.ID,
			Label:   s.T(sec.Title),
			Visited: s.visited.Has(sec.ID),
		})
	}
	for _, l := range Languages {
		v.Languages = append(v.Languages, LanguageOption{
			Lang:   l,
			Label:  s.tr.Get(l, "LANGUAGE_NAME"),
			Active: l == s.lang,
		})
	}
	return v, true
}

// MenuHint is the text drawn beside the menu target once the snake moves.
func (s *Shell) MenuHint() string { return s.T("MENU_HINT") }
