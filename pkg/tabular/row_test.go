package tabular_test

import (
	"testing"

	"github.com/arthur-debert/outstanding/pkg/errors"
	"github.com/arthur-debert/outstanding/pkg/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowLinesLeftAnchored(t *testing.T) {
	spec := mustSpec(t, []tabular.Column{
		{Width: tabular.Fixed(5), Overflow: tabular.Clip()},
		{Width: tabular.Fixed(5), Overflow: tabular.Clip()},
	})
	cells := []tabular.Cell{
		{Width: 5, Lines: []string{"aaa  "}},
		{Width: 5, Lines: []string{"bbb  "}},
	}
	lines := spec.RowLines(cells, 20)
	assert.Equal(t, []string{"aaa   bbb  "}, lines)
}

func TestRowLinesRightAnchored(t *testing.T) {
	spec := mustSpec(t, []tabular.Column{
		{Width: tabular.Fixed(3), Overflow: tabular.Clip(), Anchor: tabular.AnchorRight},
	})
	cells := []tabular.Cell{
		{Width: 3, Lines: []string{"ab "}},
	}
	lines := spec.RowLines(cells, 10)
	assert.Equal(t, []string{"       ab "}, lines)
}

func TestRowLinesMixedAnchors(t *testing.T) {
	spec := mustSpec(t, []tabular.Column{
		{Width: tabular.Fixed(5), Overflow: tabular.Clip()},
		{Width: tabular.Fixed(4), Overflow: tabular.Clip(), Anchor: tabular.AnchorRight},
	})
	cells := []tabular.Cell{
		{Width: 5, Lines: []string{"aaa  "}},
		{Width: 4, Lines: []string{"  bb"}},
	}
	lines := spec.RowLines(cells, 20)
	assert.Equal(t, []string{"aaa  " + "           " + "  bb"}, lines)
	assert.Len(t, lines[0], 20)
}

func TestRowLinesMixedAnchorGapIsBlank(t *testing.T) {
	spec := mustSpec(t, []tabular.Column{
		{Width: tabular.Fixed(3), Overflow: tabular.Clip()},
		{Width: tabular.Fixed(2), Overflow: tabular.Clip(), Anchor: tabular.AnchorRight},
	}, tabular.WithSeparator(" | "))
	cells := []tabular.Cell{
		{Width: 3, Lines: []string{"aaa"}},
		{Width: 2, Lines: []string{"bb"}},
	}
	lines := spec.RowLines(cells, 12)
	assert.Equal(t, []string{"aaa" + "       " + "bb"}, lines,
		"the separator joins columns within a group; the gap between groups is blank")
}

func TestRowLinesRightPriorityOnOverlap(t *testing.T) {
	spec := mustSpec(t, []tabular.Column{
		{Width: tabular.Fixed(8), Overflow: tabular.Clip()},
		{Width: tabular.Fixed(4), Overflow: tabular.Clip(), Anchor: tabular.AnchorRight},
	})
	cells := []tabular.Cell{
		{Width: 8, Lines: []string{"aaaaaaaa"}},
		{Width: 4, Lines: []string{"bbbb"}},
	}
	lines := spec.RowLines(cells, 12)
	assert.Equal(t, []string{"aaaaaaa bbbb"}, lines,
		"the left group is cut so the right group keeps its place")
}

func TestRowLinesMultiLineCells(t *testing.T) {
	spec := mustSpec(t, []tabular.Column{
		{Width: tabular.Fixed(4), Overflow: tabular.Clip()},
		{Width: tabular.Fixed(6), Overflow: tabular.Wrap(0)},
	})
	cells := []tabular.Cell{
		{Width: 4, Lines: []string{"id01"}},
		{Width: 6, Lines: []string{"alpha ", "beta  "}, Multi: true},
	}
	lines := spec.RowLines(cells, 11)
	assert.Equal(t, []string{
		"id01 alpha ",
		"     beta  ",
	}, lines, "short cells contribute blanks on continuation lines")
}

func TestRowLinesPrefixSuffix(t *testing.T) {
	spec := mustSpec(t, []tabular.Column{
		{Width: tabular.Fixed(4), Overflow: tabular.Clip()},
	},
		tabular.WithPrefix("> "),
		tabular.WithSuffix(" <"),
	)
	cells := []tabular.Cell{{Width: 4, Lines: []string{"data"}}}
	lines := spec.RowLines(cells, 8)
	assert.Equal(t, []string{"> data <"}, lines)
}

func TestRowLinesEmpty(t *testing.T) {
	spec := mustSpec(t, nil)
	assert.Equal(t, []string{""}, spec.RowLines(nil, 20))
}

func TestRowRejectsMultiLineCells(t *testing.T) {
	spec := mustSpec(t, []tabular.Column{
		{Width: tabular.Fixed(6), Overflow: tabular.Wrap(0)},
	})
	cells := []tabular.Cell{
		{Width: 6, Lines: []string{"alpha ", "beta  "}, Multi: true},
	}
	_, err := spec.Row(cells, 6)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMultiLineCell))

	cells[0] = tabular.Cell{Width: 6, Lines: []string{"alpha "}}
	line, err := spec.Row(cells, 6)
	require.NoError(t, err)
	assert.Equal(t, "alpha ", line)
}

func TestSpecValidation(t *testing.T) {
	tests := []struct {
		name string
		cols []tabular.Column
	}{
		{"negative_fixed", []tabular.Column{{Width: tabular.Fixed(-1)}}},
		{"min_above_max", []tabular.Column{{Width: tabular.Bounded(10, 5)}}},
		{"zero_fraction", []tabular.Column{{Width: tabular.Fraction(0)}}},
		{"expand_with_fraction", []tabular.Column{{Width: tabular.Fill(), Overflow: tabular.Expand()}}},
		{"negative_wrap_indent", []tabular.Column{{Width: tabular.Fixed(5), Overflow: tabular.Wrap(-1)}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tabular.NewSpec(tc.cols)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfiguration))
		})
	}
}

func TestSpecDefaultsTruncateMarker(t *testing.T) {
	spec := mustSpec(t, []tabular.Column{
		{Width: tabular.Fixed(5), Overflow: tabular.Truncate(tabular.EdgeEnd, "")},
	})
	assert.Equal(t, tabular.DefaultMarker, spec.Columns()[0].Overflow.Marker)
}
