package portfolio

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Wrap breaks text into lines for which fits reports true. Words longer than a
// line are kept whole on their own line.
func Wrap(text string, fits func(string) bool) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if candidate := line + " " + w; fits(candidate) {
			line = candidate
		} else {
			lines = append(lines, line)
			line = w
		}
	}
	return append(lines, line)
}

// CellWidth is a fits func for terminal cells.
func CellWidth(maxWidth int) func(string) bool {
	return func(s string) bool {
		return runewidth.StringWidth(s) <= maxWidth
	}
}
