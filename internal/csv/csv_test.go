package csv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_QuotedFieldWithEmbeddedComma(t *testing.T) {
	fields, ok, err := Parse(`Here,are,"some,CSV",data`)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"Here", "are", "some,CSV", "data"}, fields)
}

func TestParse_SingleField(t *testing.T) {
	fields, ok, err := Parse("solo")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"solo"}, fields)
}

func TestParse_AllQuoted(t *testing.T) {
	fields, ok, err := Parse(`"a","b","c"`)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, fields)
}

func TestParse_EmptyQuotedField(t *testing.T) {
	fields, ok, err := Parse(`a,"",c`)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "", "c"}, fields)
}

func TestParse_EmptyUnquotedField(t *testing.T) {
	fields, ok, err := Parse(`a,,c`)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "", "c"}, fields)
}
