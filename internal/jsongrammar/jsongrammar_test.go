package jsongrammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Scalars(t *testing.T) {
	tests := []struct {
		input    string
		expected any
	}{
		{"true", true},
		{"false", false},
		{"null", nil},
		{"42", 42.0},
		{"-3.5", -3.5},
		{`"hi"`, "hi"},
		{`"a\nb"`, "a\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, ok, err := Parse(tt.input)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParse_Array(t *testing.T) {
	result, ok, err := Parse(`[1, 2, "three", null]`)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []any{1.0, 2.0, "three", nil}, result)
}

func TestParse_EmptyArrayAndObject(t *testing.T) {
	result, ok, err := Parse(`[]`)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []any{}, result)

	result, ok, err = Parse(`{}`)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, map[string]any{}, result)
}

func TestParse_NestedObject(t *testing.T) {
	result, ok, err := Parse(`{"a": 1, "b": [true, {"c": "d"}]}`)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, map[string]any{
		"a": 1.0,
		"b": []any{true, map[string]any{"c": "d"}},
	}, result)
}

func TestParse_RejectsInvalid(t *testing.T) {
	_, ok, err := Parse(`{invalid`)
	require.NoError(t, err)
	assert.False(t, ok)
}
