package portfolio

import (
	"fmt"
	"io/fs"

	"github.com/leonelquinteros/gotext"
)

// Translator resolves UI string keys per language from gettext catalogues.
type Translator struct {
	get map[Language]func(string, ...any) string
}

// LoadTranslator reads locales/<lang>.po for every supported language.
func LoadTranslator(fsys fs.FS) (*Translator, error) {
	t := &Translator{get: make(map[Language]func(string, ...any) string, len(Languages))}
	for _, l := range Languages {
		name := fmt.Sprintf("locales/%s.po", l)
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		po := gotext.NewPo()
		po.Parse(data)
		t.get[l] = po.Get
	}
	return t, nil
}

// Get returns the translation of key, or the key itself when it is missing.
func (t *Translator) Get(l Language, key string) string {
	get, ok := t.get[l]
	if !ok {
		return key
	}
	// keys are plain ids, never format strings
	return get(key)
}
