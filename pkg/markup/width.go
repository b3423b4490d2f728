package markup

import (
	"github.com/mattn/go-runewidth"
)

// RuneWidth returns the monospace display width of a single rune. Wide
// characters count as 2, control characters as 0.
func RuneWidth(r rune) int {
	if r < 0x20 || r == 0x7f {
		return 0
	}
	return runewidth.RuneWidth(r)
}

// StringWidth returns the display width of a plain string, without any
// markup awareness.
func StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += RuneWidth(r)
	}
	return w
}

// Width returns the display width of a span sequence. Tag spans are
// zero-width.
func Width(spans []Span) int {
	w := 0
	for _, sp := range spans {
		if !sp.Tag {
			w += StringWidth(sp.Text)
		}
	}
	return w
}

// DisplayWidth returns the display width of s, skipping markup tags.
// Fails with a MALFORMED_MARKUP error when tags are unbalanced.
func DisplayWidth(s string) (int, error) {
	spans, err := Parse(s)
	if err != nil {
		return 0, err
	}
	return Width(spans), nil
}
