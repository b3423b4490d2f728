package markup

import "unicode/utf8"

// Cutting never places a boundary inside a tag marker. Tags open at a
// cut point are closed on the leading side and reopened on the trailing
// side, so every flattened result is balanced on its own.

// takeRunes returns the longest prefix of s whose display width does
// not exceed w.
func takeRunes(s string, w int) string {
	taken := 0
	for i, r := range s {
		rw := RuneWidth(r)
		if taken+rw > w {
			return s[:i]
		}
		taken += rw
	}
	return s
}

// dropRunes removes runes from the front of s until at least w display
// columns have been dropped.
func dropRunes(s string, w int) string {
	dropped := 0
	for i, r := range s {
		if dropped >= w {
			return s[i:]
		}
		dropped += RuneWidth(r)
	}
	return ""
}

// CutEnd keeps the leading part of spans up to the given display width,
// dropping overflow from the end.
func CutEnd(spans []Span, width int) []Span {
	var out []Span
	var stack []string
	remaining := width

	for _, sp := range spans {
		if sp.Tag {
			if sp.Close {
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
			} else {
				stack = append(stack, sp.Name)
			}
			out = append(out, sp)
			continue
		}
		w := StringWidth(sp.Text)
		if w <= remaining {
			out = append(out, sp)
			remaining -= w
			continue
		}
		if kept := takeRunes(sp.Text, remaining); kept != "" {
			out = append(out, TextSpan(kept))
		}
		for i := len(stack) - 1; i >= 0; i-- {
			out = append(out, CloseSpan(stack[i]))
		}
		return dropEmptyTags(out)
	}
	return dropEmptyTags(out)
}

// CutStart keeps the trailing part of spans up to the given display
// width, dropping overflow from the start.
func CutStart(spans []Span, width int) []Span {
	total := Width(spans)
	if total <= width {
		return spans
	}
	skip := total - width

	var stack []string
	for i, sp := range spans {
		if skip <= 0 {
			return reopen(stack, "", spans[i:])
		}
		if sp.Tag {
			if sp.Close {
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
			} else {
				stack = append(stack, sp.Name)
			}
			continue
		}
		w := StringWidth(sp.Text)
		if w <= skip {
			skip -= w
			continue
		}
		rest := dropRunes(sp.Text, skip)
		return reopen(stack, rest, spans[i+1:])
	}
	return nil
}

// SplitAt breaks spans at the character boundary nearest width, for
// force-breaking an oversized token. When nothing fits, at least one
// rune is placed on the left so callers always make progress. The left
// side is closed and the right side reopened with the tags live at the
// break.
func SplitAt(spans []Span, width int) (left, right []Span) {
	var stack []string
	remaining := width
	taken := 0

	for i, sp := range spans {
		if sp.Tag {
			if sp.Close {
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
			} else {
				stack = append(stack, sp.Name)
			}
			left = append(left, sp)
			continue
		}
		w := StringWidth(sp.Text)
		if w <= remaining {
			left = append(left, sp)
			remaining -= w
			taken += w
			continue
		}
		kept := takeRunes(sp.Text, remaining)
		if kept == "" && taken == 0 {
			// force at least one rune onto the line
			_, size := utf8.DecodeRuneInString(sp.Text)
			kept = sp.Text[:size]
		}
		rest := sp.Text[len(kept):]
		if kept != "" {
			left = append(left, TextSpan(kept))
		}
		for j := len(stack) - 1; j >= 0; j-- {
			left = append(left, CloseSpan(stack[j]))
		}
		right = reopen(stack, rest, spans[i+1:])
		return dropEmptyTags(left), right
	}
	return left, nil
}

// reopen builds a span sequence that starts with openers for the given
// tag stack, followed by an optional text fragment and the rest.
func reopen(stack []string, text string, rest []Span) []Span {
	var out []Span
	for _, name := range stack {
		out = append(out, OpenSpan(name))
	}
	if text != "" {
		out = append(out, TextSpan(text))
	}
	out = append(out, rest...)
	return dropEmptyTags(out)
}

// Normalize removes open/close pairs with no content between them,
// which editing operations can leave behind.
func Normalize(spans []Span) []Span {
	return dropEmptyTags(spans)
}

// dropEmptyTags removes open/close pairs with no content between them,
// which cutting can leave behind.
func dropEmptyTags(spans []Span) []Span {
	changed := true
	for changed {
		changed = false
		out := spans[:0:0]
		for i := 0; i < len(spans); i++ {
			sp := spans[i]
			if sp.Tag && !sp.Close && i+1 < len(spans) {
				next := spans[i+1]
				if next.Tag && next.Close && next.Name == sp.Name {
					i++
					changed = true
					continue
				}
			}
			out = append(out, sp)
		}
		spans = out
	}
	return spans
}
