package tabular

import (
	"strings"

	"github.com/arthur-debert/outstanding/pkg/markup"
)

// Cell is the formatted result of one value in one column: one or more
// lines, each padded to exactly Width display columns, markup included.
// Cells are render-call-local and never shared across renders.
type Cell struct {
	Width int
	Lines []string
	Multi bool
}

// FormatCell renders one value into one column's box under its
// overflow policy. Padding is applied outside the style tags so
// padding spaces are never colorized.
func FormatCell(value string, col Column, width int) (Cell, error) {
	spans, err := markup.Parse(value)
	if err != nil {
		return Cell{}, err
	}
	contentWidth := markup.Width(spans)

	switch col.Overflow.Kind {
	case OverflowExpand:
		// exactly as wide as its content, independent of total width
		return Cell{
			Width: contentWidth,
			Lines: []string{styleCell(markup.Flatten(spans), value, col.Style)},
		}, nil

	case OverflowWrap:
		rawLines, err := WrapTextIndent(value, width, col.Overflow.Indent)
		if err != nil {
			return Cell{}, err
		}
		lines := make([]string, len(rawLines))
		for i, line := range rawLines {
			lw, err := markup.DisplayWidth(line)
			if err != nil {
				return Cell{}, err
			}
			// continuation indent spaces stay outside the style tags,
			// like padding
			indent := ""
			if i > 0 && col.Overflow.Indent > 0 && col.Overflow.Indent <= len(line) {
				indent = line[:col.Overflow.Indent]
				line = line[col.Overflow.Indent:]
			}
			lines[i] = pad(indent+styleCell(line, value, col.Style), width-lw, col.Anchor)
		}
		return Cell{Width: width, Lines: lines, Multi: len(lines) > 1}, nil

	default: // OverflowTruncate, OverflowClip
		marker := ""
		if col.Overflow.Kind == OverflowTruncate {
			marker = col.Overflow.Marker
			if marker == "" {
				marker = DefaultMarker
			}
		}
		content, cw := truncateSpans(spans, contentWidth, width, col.Overflow.Edge, marker)
		return Cell{
			Width: width,
			Lines: []string{pad(styleCell(content, value, col.Style), width-cw, col.Anchor)},
		}, nil
	}
}

// TruncateToWidth shortens s to at most width display columns,
// appending the default marker when a cut was needed. Values that fit
// come back unchanged.
func TruncateToWidth(s string, width int) (string, error) {
	spans, err := markup.Parse(s)
	if err != nil {
		return "", err
	}
	out, _ := truncateSpans(spans, markup.Width(spans), width, EdgeEnd, DefaultMarker)
	return out, nil
}

// truncateSpans cuts spans to fit width, placing the marker at the cut
// edge. Returns the flattened content and its display width.
func truncateSpans(spans []markup.Span, contentWidth, width int, edge Edge, marker string) (string, int) {
	if contentWidth <= width {
		return markup.Flatten(spans), contentWidth
	}
	markerWidth := markup.StringWidth(marker)
	keep := width - markerWidth
	if keep < 0 {
		// the marker alone would not fit: drop it and hard-cut
		marker = ""
		markerWidth = 0
		keep = width
	}
	if edge == EdgeStart {
		cut := markup.CutStart(spans, keep)
		return marker + markup.Flatten(cut), markerWidth + markup.Width(cut)
	}
	cut := markup.CutEnd(spans, keep)
	return markup.Flatten(cut) + marker, markup.Width(cut) + markerWidth
}

// styleCell wraps content in the column's style tags. FromValue uses
// the raw cell value as the tag name; values that are not valid tag
// names stay unstyled rather than corrupting the markup stream.
func styleCell(content, raw string, ref StyleRef) string {
	if content == "" {
		return content
	}
	name := ref.Name
	if ref.FromValue {
		name = raw
	}
	if name == "" || !markup.ValidTagName(name) {
		return content
	}
	return "[" + name + "]" + content + "[/" + name + "]"
}

// pad appends fill spaces on the side opposite the anchor: left
// anchored cells pad on the right, right anchored cells on the left.
func pad(content string, fill int, anchor Anchor) string {
	if fill <= 0 {
		return content
	}
	spaces := strings.Repeat(" ", fill)
	if anchor == AnchorRight {
		return spaces + content
	}
	return content + spaces
}
