package tabular_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/outstanding/pkg/errors"
	"github.com/arthur-debert/outstanding/pkg/tabular"
)

func TestParseSpecFile(t *testing.T) {
	f, err := tabular.ParseSpecFile([]byte(`
separator: "  "
border: light
header-style: header
columns:
  - key: user.name
    name: NAME
    width: 10
  - key: user.role
    name: ROLE
    width: {min: 4, max: 20}
    overflow: wrap
    indent: 2
  - key: status
    name: STATUS
    width: {fraction: 2}
    style: $value
  - key: visits
    name: VISITS
    width: fill
    anchor: right
    overflow: truncate
    edge: start
    marker: "~"
`))
	require.NoError(t, err)
	assert.Equal(t, tabular.BorderLight, f.Border)
	assert.Equal(t, "header", f.HeaderStyle)
	assert.Equal(t, "  ", f.Spec.Separator())

	cols := f.Spec.Columns()
	require.Len(t, cols, 4)

	assert.Equal(t, tabular.Fixed(10), cols[0].Width)
	assert.Equal(t, tabular.OverflowTruncate, cols[0].Overflow.Kind)
	assert.Equal(t, tabular.DefaultMarker, cols[0].Overflow.Marker)

	assert.Equal(t, tabular.Bounded(4, 20), cols[1].Width)
	assert.Equal(t, tabular.OverflowWrap, cols[1].Overflow.Kind)
	assert.Equal(t, 2, cols[1].Overflow.Indent)

	assert.Equal(t, tabular.Fraction(2), cols[2].Width)
	assert.True(t, cols[2].Style.FromValue)

	assert.Equal(t, tabular.Fill(), cols[3].Width)
	assert.Equal(t, tabular.AnchorRight, cols[3].Anchor)
	assert.Equal(t, tabular.EdgeStart, cols[3].Overflow.Edge)
	assert.Equal(t, "~", cols[3].Overflow.Marker)
}

func TestParseSpecFileDefaults(t *testing.T) {
	f, err := tabular.ParseSpecFile([]byte(`
columns:
  - key: a
    width: 5
`))
	require.NoError(t, err)
	assert.Equal(t, tabular.BorderNone, f.Border)
	assert.Equal(t, " ", f.Spec.Separator())
}

func TestParseSpecFileErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code errors.ErrorCode
	}{
		{
			name: "invalid_yaml",
			src:  "columns: [no",
			code: errors.ErrConfigParse,
		},
		{
			name: "missing_width",
			src:  "columns:\n  - key: a\n",
			code: errors.ErrConfiguration,
		},
		{
			name: "bad_width_form",
			src:  "columns:\n  - key: a\n    width: wide\n",
			code: errors.ErrConfiguration,
		},
		{
			name: "width_mapping_incomplete",
			src:  "columns:\n  - key: a\n    width: {min: 3}\n",
			code: errors.ErrConfiguration,
		},
		{
			name: "unknown_overflow",
			src:  "columns:\n  - key: a\n    width: 5\n    overflow: squeeze\n",
			code: errors.ErrConfiguration,
		},
		{
			name: "unknown_anchor",
			src:  "columns:\n  - key: a\n    width: 5\n    anchor: center\n",
			code: errors.ErrConfiguration,
		},
		{
			name: "unknown_border",
			src:  "border: dotted\ncolumns:\n  - key: a\n    width: 5\n",
			code: errors.ErrInvalidInput,
		},
		{
			name: "expand_with_fill",
			src:  "columns:\n  - key: a\n    width: fill\n    overflow: expand\n",
			code: errors.ErrConfiguration,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tabular.ParseSpecFile([]byte(tc.src))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tc.code),
				"want %s, got %s", tc.code, errors.GetErrorCode(err))
		})
	}
}
