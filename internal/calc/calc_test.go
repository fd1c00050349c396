package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval_SpecExample(t *testing.T) {
	result, ok, err := Eval("1+23+4*15")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 84, result)
}

func TestEval_SingleTerm(t *testing.T) {
	result, ok, err := Eval("7")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 7, result)
}

func TestEval_ProductOnly(t *testing.T) {
	result, ok, err := Eval("3*4*5")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 60, result)
}

func TestEval_RejectsGarbage(t *testing.T) {
	_, ok, err := Eval("abc")
	require.NoError(t, err)
	assert.False(t, ok)
}
