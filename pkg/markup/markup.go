// Package markup implements the engine's lightweight style markup:
// spans of text wrapped in [name]...[/name] tags. Tags are zero-width
// for layout purposes but travel through to the final output, where the
// styling layer resolves or strips them.
//
// During any width-sensitive operation cell content is modelled as a
// sequence of alternating tag and text spans; it is flattened back to a
// string only after all cuts are decided.
package markup

import (
	"strings"

	"github.com/arthur-debert/outstanding/pkg/errors"
)

// Span is one run of a parsed cell value: either a tag marker or
// literal text.
type Span struct {
	Tag   bool
	Close bool
	Name  string // tag name, set when Tag is true
	Text  string // literal text, set when Tag is false
}

// TextSpan builds a literal text span.
func TextSpan(s string) Span {
	return Span{Text: s}
}

// OpenSpan builds an opening tag span.
func OpenSpan(name string) Span {
	return Span{Tag: true, Name: name}
}

// CloseSpan builds a closing tag span.
func CloseSpan(name string) Span {
	return Span{Tag: true, Close: true, Name: name}
}

// ValidTagName reports whether s can be used as a markup tag name.
// Names are restricted so that arbitrary cell text containing brackets
// is not mistaken for markup.
func ValidTagName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-':
		default:
			return false
		}
	}
	return true
}

// Parse splits s into tag and text spans, validating that tags are
// balanced and properly nested. A '[' that does not form a valid tag is
// treated as literal text.
func Parse(s string) ([]Span, error) {
	var spans []Span
	var text strings.Builder
	var stack []string

	flushText := func() {
		if text.Len() > 0 {
			spans = append(spans, TextSpan(text.String()))
			text.Reset()
		}
	}

	i := 0
	for i < len(s) {
		if s[i] != '[' {
			j := strings.IndexByte(s[i:], '[')
			if j < 0 {
				text.WriteString(s[i:])
				i = len(s)
			} else {
				text.WriteString(s[i : i+j])
				i += j
			}
			continue
		}

		end := strings.IndexByte(s[i:], ']')
		if end < 0 {
			text.WriteByte('[')
			i++
			continue
		}
		body := s[i+1 : i+end]
		closing := strings.HasPrefix(body, "/")
		name := strings.TrimPrefix(body, "/")
		if !ValidTagName(name) {
			text.WriteByte('[')
			i++
			continue
		}

		flushText()
		if closing {
			if len(stack) == 0 {
				return nil, errors.Newf(errors.ErrMalformedMarkup,
					"closing tag [/%s] without matching opener", name)
			}
			top := stack[len(stack)-1]
			if top != name {
				return nil, errors.Newf(errors.ErrMalformedMarkup,
					"closing tag [/%s] does not match open tag [%s]", name, top)
			}
			stack = stack[:len(stack)-1]
			spans = append(spans, CloseSpan(name))
		} else {
			stack = append(stack, name)
			spans = append(spans, OpenSpan(name))
		}
		i += end + 1
	}

	if len(stack) > 0 {
		return nil, errors.Newf(errors.ErrMalformedMarkup,
			"tag [%s] is never closed", stack[len(stack)-1])
	}

	flushText()
	return spans, nil
}

// Flatten joins spans back into a single string, reconstructing tag
// markers.
func Flatten(spans []Span) string {
	var b strings.Builder
	for _, sp := range spans {
		switch {
		case !sp.Tag:
			b.WriteString(sp.Text)
		case sp.Close:
			b.WriteString("[/")
			b.WriteString(sp.Name)
			b.WriteByte(']')
		default:
			b.WriteByte('[')
			b.WriteString(sp.Name)
			b.WriteByte(']')
		}
	}
	return b.String()
}

// Strip returns s with all markup tags removed. Fails on unbalanced
// markup.
func Strip(s string) (string, error) {
	spans, err := Parse(s)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, sp := range spans {
		if !sp.Tag {
			b.WriteString(sp.Text)
		}
	}
	return b.String(), nil
}
