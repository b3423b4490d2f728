package tabular

import (
	"strings"

	"github.com/arthur-debert/outstanding/pkg/values"
)

// Formatter binds a spec to a total width for repeated row rendering.
// It is the reusable entry point of the engine: resolve once, then
// format any number of rows. Safe for concurrent use.
type Formatter struct {
	resolver *Resolver
	width    int
}

// NewFormatter builds a formatter for the given spec and total width.
func NewFormatter(spec *Spec, width int) *Formatter {
	return &Formatter{
		resolver: NewResolver(spec),
		width:    width,
	}
}

// Spec returns the bound spec.
func (f *Formatter) Spec() *Spec {
	return f.resolver.Spec()
}

// Width returns the bound total width.
func (f *Formatter) Width() int {
	return f.width
}

// Measure installs natural content widths from a row batch, so bounded
// and expand columns size from data instead of their fallbacks.
func (f *Formatter) Measure(rows [][]string) {
	f.resolver.Measure(rows)
}

// cells formats one positional row into cells. Missing trailing values
// format as empty cells.
func (f *Formatter) cells(vals []string) ([]Cell, error) {
	resolved, err := f.resolver.Resolve(f.width)
	if err != nil {
		return nil, err
	}
	cols := f.Spec().Columns()
	cells := make([]Cell, len(cols))
	for i, col := range cols {
		value := ""
		if i < len(vals) {
			value = vals[i]
		}
		cell, err := FormatCell(value, col, resolved.Get(i))
		if err != nil {
			return nil, err
		}
		cells[i] = cell
	}
	return cells, nil
}

// RowLines formats and assembles one positional row, yielding one line
// per wrap level.
func (f *Formatter) RowLines(vals []string) ([]string, error) {
	cells, err := f.cells(vals)
	if err != nil {
		return nil, err
	}
	return f.Spec().RowLines(cells, f.width), nil
}

// Row formats and assembles one positional row into a single line. It
// fails when a cell wraps; use RowLines for wrap columns.
func (f *Formatter) Row(vals []string) (string, error) {
	cells, err := f.cells(vals)
	if err != nil {
		return "", err
	}
	return f.Spec().Row(cells, f.width)
}

// ExtractRow pulls this spec's column values out of a record. Columns
// without a key render their literal name; missing fields render as
// empty text.
func (f *Formatter) ExtractRow(record values.Value) []string {
	cols := f.Spec().Columns()
	row := make([]string, len(cols))
	for i, col := range cols {
		if col.Key == "" {
			row[i] = col.Name
			continue
		}
		v, ok := values.Extract(record, col.Key)
		if !ok {
			continue
		}
		row[i] = v.Render()
	}
	return row
}

// RecordLines extracts and renders one record.
func (f *Formatter) RecordLines(record values.Value) ([]string, error) {
	return f.RowLines(f.ExtractRow(record))
}

// RenderRecords extracts, measures and renders a record batch into a
// text block.
func (f *Formatter) RenderRecords(records []values.Value) (string, error) {
	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = f.ExtractRow(rec)
	}
	f.Measure(rows)

	var out []string
	for _, row := range rows {
		lines, err := f.RowLines(row)
		if err != nil {
			return "", err
		}
		out = append(out, lines...)
	}
	return strings.Join(out, "\n"), nil
}
