// Package tabular turns typed columns plus row data into aligned,
// possibly multi-line text for fixed-width display. Embedded style
// markup is zero-width for layout but carried through to the output,
// where the style package resolves or strips it.
package tabular

import (
	"sync/atomic"

	"github.com/arthur-debert/outstanding/pkg/errors"
)

// DefaultMarker is the truncation marker used when none is given.
const DefaultMarker = "…"

// WidthKind discriminates column sizing policies.
type WidthKind int

const (
	// WidthFixed consumes exactly N display columns.
	WidthFixed WidthKind = iota
	// WidthBounded clamps the natural content width between min and max.
	WidthBounded
	// WidthFraction takes a proportional share of the remaining space.
	WidthFraction
)

// Width is a column sizing policy.
type Width struct {
	Kind  WidthKind
	Fixed int
	Min   int
	Max   int
	Parts int
}

// Fixed sizes a column at exactly n display columns.
func Fixed(n int) Width {
	return Width{Kind: WidthFixed, Fixed: n}
}

// Bounded sizes a column at its natural content width, clamped to
// [min, max]. Without pre-measured data the column defaults to max.
func Bounded(min, max int) Width {
	return Width{Kind: WidthBounded, Min: min, Max: max}
}

// Fraction gives a column a proportional share of the remaining width.
func Fraction(parts int) Width {
	return Width{Kind: WidthFraction, Parts: parts}
}

// Fill is shorthand for Fraction(1).
func Fill() Width {
	return Fraction(1)
}

// Edge selects which end of the content a truncation cut removes from.
type Edge int

const (
	EdgeEnd Edge = iota
	EdgeStart
)

// OverflowKind discriminates overflow policies.
type OverflowKind int

const (
	// OverflowTruncate cuts overflow and appends a marker.
	OverflowTruncate OverflowKind = iota
	// OverflowWrap breaks the content into multiple lines.
	OverflowWrap
	// OverflowClip cuts overflow silently, with no marker.
	OverflowClip
	// OverflowExpand never cuts; the cell is as wide as its content.
	OverflowExpand
)

// Overflow is a column's overflow policy.
type Overflow struct {
	Kind   OverflowKind
	Edge   Edge
	Marker string
	Indent int
}

// Truncate cuts overflow at the given edge and appends the marker.
func Truncate(edge Edge, marker string) Overflow {
	return Overflow{Kind: OverflowTruncate, Edge: edge, Marker: marker}
}

// Wrap breaks overflow onto continuation lines, visually indented by
// indent spaces counted against the column width.
func Wrap(indent int) Overflow {
	return Overflow{Kind: OverflowWrap, Indent: indent}
}

// Clip cuts overflow silently.
func Clip() Overflow {
	return Overflow{Kind: OverflowClip}
}

// Expand disables overflow handling entirely.
func Expand() Overflow {
	return Overflow{Kind: OverflowExpand}
}

// Anchor determines which edge of the row a column is laid out from.
type Anchor int

const (
	AnchorLeft Anchor = iota
	AnchorRight
)

// StyleRef names the style a cell's content is tagged with. The zero
// value means unstyled. FromValue uses the cell's own string value as
// the tag name, enabling data-driven styling.
type StyleRef struct {
	Name      string
	FromValue bool
}

// Named references a style by name.
func Named(name string) StyleRef {
	return StyleRef{Name: name}
}

// FromValue tags cell content with the cell's own value.
func FromValue() StyleRef {
	return StyleRef{FromValue: true}
}

// Column is one rendering slot of a spec.
type Column struct {
	// Key is a dot-separated path for extracting a value from a
	// record; empty for positional columns.
	Key string
	// Name is the display header.
	Name     string
	Width    Width
	Overflow Overflow
	Anchor   Anchor
	Style    StyleRef
}

// Spec is an ordered sequence of columns plus decorations. Order is
// both the extraction order and, combined with anchors, the layout
// order. Specs are immutable after construction and safe to share
// across renders.
type Spec struct {
	columns   []Column
	separator string
	prefix    string
	suffix    string
	id        uint64
}

var nextSpecID atomic.Uint64

// SpecOption adjusts spec construction.
type SpecOption func(*Spec)

// WithSeparator sets the string joined between adjacent columns.
func WithSeparator(sep string) SpecOption {
	return func(s *Spec) { s.separator = sep }
}

// WithPrefix sets a fixed decoration before each row.
func WithPrefix(prefix string) SpecOption {
	return func(s *Spec) { s.prefix = prefix }
}

// WithSuffix sets a fixed decoration after each row.
func WithSuffix(suffix string) SpecOption {
	return func(s *Spec) { s.suffix = suffix }
}

// NewSpec validates columns and builds a spec. Configuration problems
// are reported here, before any row is processed.
func NewSpec(columns []Column, opts ...SpecOption) (*Spec, error) {
	s := &Spec{
		columns:   make([]Column, len(columns)),
		separator: " ",
		id:        nextSpecID.Add(1),
	}
	copy(s.columns, columns)
	for _, opt := range opts {
		opt(s)
	}

	for i := range s.columns {
		col := &s.columns[i]
		switch col.Width.Kind {
		case WidthFixed:
			if col.Width.Fixed < 0 {
				return nil, errors.Newf(errors.ErrConfiguration,
					"column %d: fixed width must not be negative", i)
			}
		case WidthBounded:
			if col.Width.Min < 0 || col.Width.Max < col.Width.Min {
				return nil, errors.Newf(errors.ErrConfiguration,
					"column %d: bounded width needs 0 <= min <= max", i)
			}
		case WidthFraction:
			if col.Width.Parts <= 0 {
				return nil, errors.Newf(errors.ErrConfiguration,
					"column %d: fraction weight must be positive", i)
			}
			if col.Overflow.Kind == OverflowExpand {
				// expand overrides width resolution entirely and is
				// incompatible with proportional sizing
				return nil, errors.Newf(errors.ErrConfiguration,
					"column %d: expand overflow cannot be combined with proportional width", i)
			}
		}
		if col.Overflow.Kind == OverflowTruncate && col.Overflow.Marker == "" {
			col.Overflow.Marker = DefaultMarker
		}
		if col.Overflow.Kind == OverflowWrap && col.Overflow.Indent < 0 {
			return nil, errors.Newf(errors.ErrConfiguration,
				"column %d: wrap indent must not be negative", i)
		}
	}
	return s, nil
}

// Columns returns the spec's columns in order.
func (s *Spec) Columns() []Column {
	return s.columns
}

// NumColumns returns the number of columns.
func (s *Spec) NumColumns() int {
	return len(s.columns)
}

// Separator returns the inter-column separator.
func (s *Spec) Separator() string {
	return s.separator
}

// ID returns the spec's identity, used as a cache key component.
func (s *Spec) ID() uint64 {
	return s.id
}
