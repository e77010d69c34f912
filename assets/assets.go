// Package assets embeds the portfolio content and translation catalogues.
package assets

import "embed"

// Content holds content/sections.json.
//
//go:embed content/*.json
var Content embed.FS

// Locales holds one gettext catalogue per language, locales/<lang>.po.
//
//go:embed locales/*.po
var Locales embed.FS
