package tabular

import (
	"strings"

	"github.com/arthur-debert/outstanding/pkg/errors"
	"github.com/arthur-debert/outstanding/pkg/markup"
)

// RowLines assembles formatted cells into one or more full-width
// lines. The row's line count is the max across its cells; a cell with
// fewer lines contributes blanks padded to its own width. Left
// anchored cells are laid out from the row's start in spec order,
// right anchored cells from the row's end; on overlap the right group
// wins and the left group is hard-cut.
func (s *Spec) RowLines(cells []Cell, total int) []string {
	if len(cells) == 0 {
		return []string{""}
	}

	height := 1
	for _, c := range cells {
		if len(c.Lines) > height {
			height = len(c.Lines)
		}
	}

	inner := total - markup.StringWidth(s.prefix) - markup.StringWidth(s.suffix)
	if inner < 0 {
		inner = 0
	}
	sepWidth := markup.StringWidth(s.separator)

	lines := make([]string, height)
	for li := 0; li < height; li++ {
		var left, right []string
		for i, c := range cells {
			text := cellLine(c, li)
			if i < len(s.columns) && s.columns[i].Anchor == AnchorRight {
				right = append(right, text)
			} else {
				left = append(left, text)
			}
		}
		leftStr := strings.Join(left, s.separator)
		rightStr := strings.Join(right, s.separator)

		var body string
		switch {
		case len(right) == 0:
			body = leftStr
		case len(left) == 0:
			gap := inner - lineWidth(rightStr)
			if gap < 0 {
				gap = 0
			}
			body = strings.Repeat(" ", gap) + rightStr
		default:
			leftW := lineWidth(leftStr)
			rightW := lineWidth(rightStr)
			if leftW+sepWidth+rightW > inner {
				// right anchored columns take priority; the left
				// group is cut as-is, never re-measured
				cutTo := inner - rightW - sepWidth
				if cutTo < 0 {
					cutTo = 0
				}
				leftStr = hardCut(leftStr, cutTo)
				leftW = lineWidth(leftStr)
			}
			gap := inner - leftW - rightW
			if gap < sepWidth {
				gap = sepWidth
			}
			body = leftStr + strings.Repeat(" ", gap) + rightStr
		}
		lines[li] = s.prefix + body + s.suffix
	}
	return lines
}

// Row assembles cells into a single line. It fails when any cell
// wrapped onto multiple lines; use RowLines for those.
func (s *Spec) Row(cells []Cell, total int) (string, error) {
	for i, c := range cells {
		if c.Multi {
			return "", errors.Newf(errors.ErrMultiLineCell,
				"cell %d wrapped onto %d lines; use RowLines", i, len(c.Lines))
		}
	}
	return s.RowLines(cells, total)[0], nil
}

// cellLine returns line li of a cell, or a blank of the cell's width.
func cellLine(c Cell, li int) string {
	if li < len(c.Lines) {
		return c.Lines[li]
	}
	return strings.Repeat(" ", c.Width)
}

// lineWidth measures assembled content, tolerating the already
// validated markup it carries.
func lineWidth(s string) int {
	w, err := markup.DisplayWidth(s)
	if err != nil {
		return markup.StringWidth(s)
	}
	return w
}

// hardCut trims s to width without a marker, respecting tag
// boundaries.
func hardCut(s string, width int) string {
	spans, err := markup.Parse(s)
	if err != nil {
		return s
	}
	return markup.Flatten(markup.CutEnd(spans, width))
}
