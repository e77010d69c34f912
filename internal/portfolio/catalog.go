package portfolio

import (
	"encoding/json"
	"fmt"
)

// Language selects the translation catalogue and section text.
type Language string

const (
	LangEN Language = "en"
	LangSK Language = "sk"
)

// Languages lists the supported languages in switcher order.
var Languages = []Language{LangEN, LangSK}

// ParseLanguage validates a language code.
func ParseLanguage(s string) (Language, error) {
	for _, l := range Languages {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown language %q", s)
}

// BlockStyle controls how a paragraph is typeset.
type BlockStyle string

const (
	StyleLead    BlockStyle = "lead"    // large intro line
	StyleBody    BlockStyle = "body"    // regular paragraph
	StyleHeading BlockStyle = "heading" // small caps group title
	StyleItem    BlockStyle = "item"    // list entry
	StyleMeta    BlockStyle = "meta"    // dates, status
	StyleLink    BlockStyle = "link"    // contact address
)

// Block is one paragraph of section text.
type Block struct {
	Style BlockStyle `json:"style"`
	Text  string     `json:"text"`
}

// Section is one portfolio page. Title is a translation key.
type Section struct {
	ID     string               `json:"id"`
	Title  string               `json:"title"`
	Blocks map[Language][]Block `json:"blocks"`
}

// Catalog is the ordered list of sections.
type Catalog struct {
	Sections []Section `json:"sections"`
}

// LoadCatalog parses and validates the section catalogue from JSON bytes.
func LoadCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.Sections) == 0 {
		return nil, fmt.Errorf("catalog has no sections")
	}
	seen := make(map[string]bool, len(c.Sections))
	for i, s := range c.Sections {
		if s.ID == "" {
			return nil, fmt.Errorf("section %d: missing id", i)
		}
		if seen[s.ID] {
			return nil, fmt.Errorf("section %q: duplicate id", s.ID)
		}
		seen[s.ID] = true
		if s.Title == "" {
			return nil, fmt.Errorf("section %q: missing title key", s.ID)
		}
		for _, l := range Languages {
			if len(s.Blocks[l]) == 0 {
				return nil, fmt.Errorf("section %q: no %s text", s.ID, l)
			}
			for j, b := range s.Blocks[l] {
				if !b.Style.valid() {
					return nil, fmt.Errorf("section %q: %s block %d: unknown style %q", s.ID, l, j, b.Style)
				}
			}
		}
	}
	return &c, nil
}

func (s BlockStyle) valid() bool {
	switch s {
	case StyleLead, StyleBody, StyleHeading, StyleItem, StyleMeta, StyleLink:
		return true
	}
	return false
}

// Index returns the position of the section with the given id, or -1.
func (c *Catalog) Index(id string) int {
	for i, s := range c.Sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}
