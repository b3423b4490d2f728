package tabular

import (
	"github.com/arthur-debert/outstanding/pkg/errors"
	"github.com/arthur-debert/outstanding/pkg/markup"
)

// ResolvedWidths holds a concrete non-negative width per column,
// computed once per render for a fixed total width and immutable
// afterwards.
type ResolvedWidths struct {
	widths []int
}

// Get returns the width of column i, or 0 when out of range.
func (r *ResolvedWidths) Get(i int) int {
	if i < 0 || i >= len(r.widths) {
		return 0
	}
	return r.widths[i]
}

// Total returns the sum of all column widths, without decorations.
func (r *ResolvedWidths) Total() int {
	total := 0
	for _, w := range r.widths {
		total += w
	}
	return total
}

// Len returns the number of columns.
func (r *ResolvedWidths) Len() int {
	return len(r.widths)
}

// IsEmpty reports whether there are no columns.
func (r *ResolvedWidths) IsEmpty() bool {
	return len(r.widths) == 0
}

// overhead is the display width consumed by decorations: one separator
// between each adjacent column pair plus the row prefix and suffix.
func (s *Spec) overhead() int {
	o := markup.StringWidth(s.prefix) + markup.StringWidth(s.suffix)
	if len(s.columns) > 1 {
		o += markup.StringWidth(s.separator) * (len(s.columns) - 1)
	}
	return o
}

// MeasureNatural scans a row batch once and returns the widest display
// width seen per column. Cells with malformed markup contribute
// nothing; formatting surfaces their error later.
func (s *Spec) MeasureNatural(rows [][]string) []int {
	natural := make([]int, len(s.columns))
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(natural) {
				break
			}
			w, err := markup.DisplayWidth(cell)
			if err != nil {
				continue
			}
			if w > natural[i] {
				natural[i] = w
			}
		}
	}
	return natural
}

// ResolveWidths resolves column widths without examining data. Bounded
// columns fall back to their max (a policy choice suited to streaming
// sources where the batch cannot be pre-scanned); Expand columns
// resolve to zero and size themselves from content at format time.
func (s *Spec) ResolveWidths(total int) (*ResolvedWidths, error) {
	return s.resolve(total, nil)
}

// ResolveWidthsFromData resolves column widths using the row batch to
// determine natural content widths. This is the recommended path for
// bounded and expand columns.
func (s *Spec) ResolveWidthsFromData(total int, rows [][]string) (*ResolvedWidths, error) {
	return s.resolve(total, s.MeasureNatural(rows))
}

func (s *Spec) resolve(total int, natural []int) (*ResolvedWidths, error) {
	if len(s.columns) == 0 {
		return &ResolvedWidths{}, nil
	}

	// A render that cannot honor fixed and bounded minimums fails
	// outright; the resolver never silently drops columns.
	minRequired := 0
	for _, col := range s.columns {
		switch col.Width.Kind {
		case WidthFixed:
			minRequired += col.Width.Fixed
		case WidthBounded:
			minRequired += col.Width.Min
		}
	}
	if total < minRequired {
		return nil, errors.Newf(errors.ErrInsufficientWidth,
			"total width %d is smaller than the %d required by fixed and bounded columns",
			total, minRequired).
			WithDetail("total", total).
			WithDetail("required", minRequired)
	}

	available := total - s.overhead()
	if available < 0 {
		available = 0
	}

	natAt := func(i int, fallback int) int {
		if natural == nil || i >= len(natural) {
			return fallback
		}
		return natural[i]
	}

	widths := make([]int, len(s.columns))
	used := 0
	totalParts := 0
	var fractionIdx []int

	for i, col := range s.columns {
		if col.Overflow.Kind == OverflowExpand {
			// resolved last, excluded from the proportional pool:
			// exactly the natural content width, no clamping
			widths[i] = natAt(i, 0)
			used += widths[i]
			continue
		}
		switch col.Width.Kind {
		case WidthFixed:
			widths[i] = col.Width.Fixed
			used += widths[i]
		case WidthBounded:
			w := natAt(i, col.Width.Max)
			if w < col.Width.Min {
				w = col.Width.Min
			}
			if w > col.Width.Max {
				w = col.Width.Max
			}
			widths[i] = w
			used += w
		case WidthFraction:
			totalParts += col.Width.Parts
			fractionIdx = append(fractionIdx, i)
		}
	}

	remaining := available - used
	if remaining < 0 {
		remaining = 0
	}

	// When there are no fractional columns any remaining width is
	// simply unused.
	if totalParts > 0 {
		unit := remaining / totalParts
		for _, i := range fractionIdx {
			widths[i] = unit * s.columns[i].Width.Parts
		}
		// Hand the integer-division remainder out one display column
		// at a time, in spec order, cycling until exhausted. This
		// exact tie-break is load-bearing for golden-output tests.
		leftover := remaining - unit*totalParts
		for leftover > 0 {
			for _, i := range fractionIdx {
				if leftover == 0 {
					break
				}
				widths[i]++
				leftover--
			}
		}
	}

	return &ResolvedWidths{widths: widths}, nil
}
