package tabular_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/outstanding/pkg/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTableSpec(t *testing.T) *tabular.Spec {
	t.Helper()
	return mustSpec(t, []tabular.Column{
		{Key: "id", Name: "ID", Width: tabular.Fixed(4)},
		{Key: "name", Name: "NAME", Width: tabular.Fill()},
	})
}

func TestTableRenderPlain(t *testing.T) {
	table := &tabular.Table{Spec: newTableSpec(t), Width: 20}
	out, err := table.Render([][]string{
		{"1", "alpha"},
		{"2", "beta"},
	})
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"ID   NAME           ",
		"1    alpha          ",
		"2    beta           ",
	}, "\n"), out)
}

func TestTableRenderAsciiBorder(t *testing.T) {
	table := &tabular.Table{
		Spec:   newTableSpec(t),
		Width:  20,
		Border: tabular.BorderAscii,
	}
	out, err := table.Render([][]string{{"1", "alpha"}})
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"+------------------+",
		"| ID   NAME        |",
		"+------------------+",
		"| 1    alpha       |",
		"+------------------+",
	}, "\n"), out)
}

func TestTableRenderRoundedBorder(t *testing.T) {
	table := &tabular.Table{
		Spec:   newTableSpec(t),
		Width:  20,
		Border: tabular.BorderRounded,
	}
	out, err := table.Render([][]string{{"1", "alpha"}})
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "╭"))
	assert.True(t, strings.HasSuffix(lines[0], "╮"))
	assert.True(t, strings.HasPrefix(lines[2], "├"))
	assert.True(t, strings.HasSuffix(lines[4], "╯"))
}

func TestTableHideHeader(t *testing.T) {
	table := &tabular.Table{Spec: newTableSpec(t), Width: 20, HideHeader: true}
	out, err := table.Render([][]string{{"1", "alpha"}})
	require.NoError(t, err)
	assert.Equal(t, "1    alpha          ", out)
}

func TestTableFooter(t *testing.T) {
	table := &tabular.Table{
		Spec:       newTableSpec(t),
		Width:      20,
		Border:     tabular.BorderAscii,
		Footer:     "2 rows",
		HideHeader: true,
	}
	out, err := table.Render([][]string{{"1", "alpha"}, {"2", "beta"}})
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "+------------------+", lines[3], "a rule separates body from footer")
	assert.Equal(t, "| 2 rows           |", lines[4])
}

func TestTableHeaderStyle(t *testing.T) {
	table := &tabular.Table{
		Spec:        newTableSpec(t),
		Width:       20,
		HeaderStyle: "header",
	}
	out, err := table.Render(nil)
	require.NoError(t, err)
	assert.Equal(t, "[header]ID   NAME           [/header]", out)
}

func TestTableHeaderFallsBackToKey(t *testing.T) {
	spec := mustSpec(t, []tabular.Column{
		{Key: "status", Width: tabular.Fixed(8)},
	})
	table := &tabular.Table{Spec: spec, Width: 8}
	out, err := table.Render(nil)
	require.NoError(t, err)
	assert.Equal(t, "status  ", out)
}

func TestTableHeaderTruncates(t *testing.T) {
	spec := mustSpec(t, []tabular.Column{
		{Name: "DESCRIPTION", Width: tabular.Fixed(6)},
	})
	table := &tabular.Table{Spec: spec, Width: 6}
	out, err := table.Render(nil)
	require.NoError(t, err)
	assert.Equal(t, "DESCR…", out)
}

func TestParseBorderStyle(t *testing.T) {
	tests := []struct {
		input    string
		expected tabular.BorderStyle
	}{
		{"", tabular.BorderNone},
		{"none", tabular.BorderNone},
		{"ascii", tabular.BorderAscii},
		{"light", tabular.BorderLight},
		{"Heavy", tabular.BorderHeavy},
		{"double", tabular.BorderDouble},
		{"ROUNDED", tabular.BorderRounded},
	}
	for _, tc := range tests {
		got, err := tabular.ParseBorderStyle(tc.input)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, got)
	}

	_, err := tabular.ParseBorderStyle("dotted")
	assert.Error(t, err)
}
