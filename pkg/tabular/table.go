package tabular

import (
	"strings"

	"github.com/arthur-debert/outstanding/pkg/errors"
	"github.com/arthur-debert/outstanding/pkg/markup"
)

// BorderStyle selects the glyph set for decorated tables.
type BorderStyle int

const (
	BorderNone BorderStyle = iota
	BorderAscii
	BorderLight
	BorderHeavy
	BorderDouble
	BorderRounded
)

// ParseBorderStyle maps a configuration string to a BorderStyle.
func ParseBorderStyle(s string) (BorderStyle, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return BorderNone, nil
	case "ascii":
		return BorderAscii, nil
	case "light":
		return BorderLight, nil
	case "heavy":
		return BorderHeavy, nil
	case "double":
		return BorderDouble, nil
	case "rounded":
		return BorderRounded, nil
	}
	return BorderNone, errors.Newf(errors.ErrInvalidInput, "unknown border style %q", s)
}

type borderGlyphs struct {
	h, v                string
	tl, tr, bl, br      string
	leftJoin, rightJoin string
}

var borders = map[BorderStyle]borderGlyphs{
	BorderAscii:   {h: "-", v: "|", tl: "+", tr: "+", bl: "+", br: "+", leftJoin: "+", rightJoin: "+"},
	BorderLight:   {h: "─", v: "│", tl: "┌", tr: "┐", bl: "└", br: "┘", leftJoin: "├", rightJoin: "┤"},
	BorderHeavy:   {h: "━", v: "┃", tl: "┏", tr: "┓", bl: "┗", br: "┛", leftJoin: "┣", rightJoin: "┫"},
	BorderDouble:  {h: "═", v: "║", tl: "╔", tr: "╗", bl: "╚", br: "╝", leftJoin: "╠", rightJoin: "╣"},
	BorderRounded: {h: "─", v: "│", tl: "╭", tr: "╮", bl: "╰", br: "╯", leftJoin: "├", rightJoin: "┤"},
}

// Table decorates a sequence of rows with a header line, separator
// rules and borders. It performs no layout computation of its own
// beyond reserving the border gutters: header, body and footer all go
// through the same row assembly.
type Table struct {
	Spec        *Spec
	Width       int
	Border      BorderStyle
	HeaderStyle string // style tag wrapped around the header line as a unit
	Footer      string
	HideHeader  bool
}

// Render produces the full decorated table for the given rows. Rows
// are positional: one string per column, in spec order.
func (t *Table) Render(rows [][]string) (string, error) {
	inner := t.Width
	g, bordered := borders[t.Border]
	if bordered {
		// one glyph plus one space of gutter on each side
		inner -= 2 * (markup.StringWidth(g.v) + 1)
		if inner < 0 {
			inner = 0
		}
	}

	resolved, err := t.Spec.ResolveWidthsFromData(inner, rows)
	if err != nil {
		return "", err
	}

	var content []string
	if !t.HideHeader {
		header, err := t.headerLines(resolved, inner)
		if err != nil {
			return "", err
		}
		content = append(content, header...)
		if bordered {
			content = append(content, ruleMarker)
		}
	}
	for _, row := range rows {
		lines, err := t.bodyLines(row, resolved, inner)
		if err != nil {
			return "", err
		}
		content = append(content, lines...)
	}
	if t.Footer != "" {
		if bordered {
			content = append(content, ruleMarker)
		}
		content = append(content, t.Footer)
	}

	if !bordered {
		out := make([]string, 0, len(content))
		for _, line := range content {
			if line != ruleMarker {
				out = append(out, line)
			}
		}
		return strings.Join(out, "\n"), nil
	}

	fill := strings.Repeat(g.h, inner+2)
	var b strings.Builder
	b.WriteString(g.tl + fill + g.tr + "\n")
	for _, line := range content {
		if line == ruleMarker {
			b.WriteString(g.leftJoin + fill + g.rightJoin + "\n")
			continue
		}
		lw := lineWidth(line)
		if pad := inner - lw; pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		b.WriteString(g.v + " " + line + " " + g.v + "\n")
	}
	b.WriteString(g.bl + fill + g.br)
	return b.String(), nil
}

// ruleMarker stands in for a horizontal rule until glyphs are chosen.
const ruleMarker = "\x00rule"

func (t *Table) headerLines(resolved *ResolvedWidths, inner int) ([]string, error) {
	cols := t.Spec.Columns()
	cells := make([]Cell, len(cols))
	for i, col := range cols {
		name := col.Name
		if name == "" {
			name = col.Key
		}
		headerCol := Column{
			Width:    col.Width,
			Overflow: Truncate(EdgeEnd, DefaultMarker),
			Anchor:   col.Anchor,
		}
		cell, err := FormatCell(name, headerCol, resolved.Get(i))
		if err != nil {
			return nil, err
		}
		cells[i] = cell
	}
	lines := t.Spec.RowLines(cells, inner)
	if t.HeaderStyle != "" && markup.ValidTagName(t.HeaderStyle) {
		for i, line := range lines {
			lines[i] = "[" + t.HeaderStyle + "]" + line + "[/" + t.HeaderStyle + "]"
		}
	}
	return lines, nil
}

func (t *Table) bodyLines(row []string, resolved *ResolvedWidths, inner int) ([]string, error) {
	cols := t.Spec.Columns()
	cells := make([]Cell, len(cols))
	for i, col := range cols {
		value := ""
		if i < len(row) {
			value = row[i]
		}
		cell, err := FormatCell(value, col, resolved.Get(i))
		if err != nil {
			return nil, err
		}
		cells[i] = cell
	}
	return t.Spec.RowLines(cells, inner), nil
}
