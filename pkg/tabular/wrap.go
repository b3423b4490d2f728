package tabular

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/outstanding/pkg/markup"
)

// WrapText splits s into lines whose display width never exceeds
// width, breaking on whitespace. Markup tags travel with the word they
// are adjacent to and are never split. An empty input yields a single
// empty line. A single token wider than the line is force-broken at
// the character boundary nearest the limit.
func WrapText(s string, width int) ([]string, error) {
	return WrapTextIndent(s, width, 0)
}

// WrapTextIndent wraps like WrapText, but continuation lines are
// prefixed with indent spaces counted against the line width, so the
// usable text width on continuation lines is width - indent.
func WrapTextIndent(s string, width, indent int) ([]string, error) {
	spans, err := markup.Parse(s)
	if err != nil {
		return nil, err
	}
	if width < 1 {
		width = 1
	}
	usable := width - indent
	if usable < 1 {
		usable = 1
	}

	tokens := tokenize(spans)
	if len(tokens) == 0 {
		return []string{""}, nil
	}

	var lines []string
	var cur []markup.Span
	curWidth := 0
	lineWidth := width
	var open []string // tags open at the start of the current line

	flush := func() {
		var line []markup.Span
		for _, name := range open {
			line = append(line, markup.OpenSpan(name))
		}
		line = append(line, cur...)
		for _, sp := range cur {
			if !sp.Tag {
				continue
			}
			if sp.Close {
				if len(open) > 0 {
					open = open[:len(open)-1]
				}
			} else {
				open = append(open, sp.Name)
			}
		}
		for i := len(open) - 1; i >= 0; i-- {
			line = append(line, markup.CloseSpan(open[i]))
		}
		text := markup.Flatten(markup.Normalize(line))
		if len(lines) > 0 {
			text = strings.Repeat(" ", indent) + text
		}
		lines = append(lines, text)
		cur = nil
		curWidth = 0
		lineWidth = usable
	}

	for _, token := range tokens {
		tw := markup.Width(token)
		join := 0
		if curWidth > 0 {
			join = 1
		}
		if curWidth+join+tw <= lineWidth {
			if join == 1 {
				cur = append(cur, markup.TextSpan(" "))
			}
			cur = append(cur, token...)
			curWidth += join + tw
			continue
		}
		if len(cur) > 0 {
			flush()
		}
		for tw > lineWidth {
			left, rest := markup.SplitAt(token, lineWidth)
			cur = left
			curWidth = markup.Width(left)
			flush()
			token = rest
			tw = markup.Width(token)
		}
		cur = append(cur, token...)
		curWidth = tw
	}
	if len(cur) > 0 || len(lines) == 0 {
		flush()
	}

	return lines, nil
}

// tokenize splits spans into whitespace-separated tokens. A tag with
// no whitespace between it and a word belongs to that word's token;
// a tag boundary is never a valid split point.
func tokenize(spans []markup.Span) [][]markup.Span {
	var tokens [][]markup.Span
	var cur []markup.Span
	sawSpace := true

	flushToken := func() {
		if len(cur) > 0 {
			tokens = append(tokens, cur)
			cur = nil
		}
	}

	for _, sp := range spans {
		if sp.Tag {
			if sawSpace {
				flushToken()
				sawSpace = false
			}
			cur = append(cur, sp)
			continue
		}
		rest := sp.Text
		for rest != "" {
			if unicode.IsSpace(firstRune(rest)) {
				cut := strings.IndexFunc(rest, func(r rune) bool { return !unicode.IsSpace(r) })
				if cut < 0 {
					rest = ""
				} else {
					rest = rest[cut:]
				}
				sawSpace = true
				continue
			}
			cut := strings.IndexFunc(rest, unicode.IsSpace)
			word := rest
			if cut >= 0 {
				word = rest[:cut]
				rest = rest[cut:]
			} else {
				rest = ""
			}
			if sawSpace {
				flushToken()
				sawSpace = false
			}
			cur = append(cur, markup.TextSpan(word))
		}
	}
	flushToken()
	return tokens
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
