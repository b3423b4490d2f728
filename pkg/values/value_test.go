package values_test

import (
	"testing"

	"github.com/arthur-debert/outstanding/pkg/values"
	"github.com/stretchr/testify/assert"
)

func TestValueRender(t *testing.T) {
	tests := []struct {
		name     string
		value    values.Value
		expected string
	}{
		{"null_is_empty", values.NewNull(), ""},
		{"bool", values.NewBool(true), "true"},
		{"whole_number_no_decimal", values.NewNumber(42), "42"},
		{"negative_whole", values.NewNumber(-7), "-7"},
		{"float", values.NewNumber(3.5), "3.5"},
		{"string", values.NewString("hello"), "hello"},
		{
			"list_joined_with_commas",
			values.NewList(values.NewString("a"), values.NewNumber(2), values.NewBool(false)),
			"a, 2, false",
		},
		{
			"map_as_key_value_pairs",
			values.NewMap(
				values.Entry{Key: "x", Value: values.NewNumber(1)},
				values.Entry{Key: "y", Value: values.NewString("z")},
			),
			"x=1, y=z",
		},
		{"empty_list", values.NewList(), ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.value.Render())
		})
	}
}

func TestValueFieldAndIndex(t *testing.T) {
	m := values.NewMap(
		values.Entry{Key: "a", Value: values.NewNumber(1)},
	)
	v, ok := m.Field("a")
	assert.True(t, ok)
	assert.Equal(t, 1.0, v.NumberVal())

	_, ok = m.Field("missing")
	assert.False(t, ok)

	_, ok = values.NewString("x").Field("a")
	assert.False(t, ok, "field lookup on a non-map fails cleanly")

	l := values.NewList(values.NewString("first"), values.NewString("second"))
	v, ok = l.Index(1)
	assert.True(t, ok)
	assert.Equal(t, "second", v.StringVal())

	_, ok = l.Index(2)
	assert.False(t, ok)
	_, ok = l.Index(-1)
	assert.False(t, ok)
}

func TestValueKinds(t *testing.T) {
	assert.True(t, values.NewNull().IsNull())
	assert.Equal(t, values.Bool, values.NewBool(false).Kind())
	assert.Equal(t, values.Number, values.NewNumber(0).Kind())
	assert.Equal(t, values.String, values.NewString("").Kind())
	assert.Equal(t, values.List, values.NewList().Kind())
	assert.Equal(t, values.Map, values.NewMap().Kind())
}
