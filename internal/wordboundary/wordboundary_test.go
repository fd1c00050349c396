package wordboundary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWords_SpecExample(t *testing.T) {
	words, err := Words("aa bba   bbb")
	require.NoError(t, err)
	assert.Equal(t, []string{"aa", "bba", "bbb"}, words)
}

func TestWords_SingleWord(t *testing.T) {
	words, err := Words("hello")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello"}, words)
}

func TestWords_NoLetters(t *testing.T) {
	words, err := Words("   123   ")
	require.NoError(t, err)
	assert.Empty(t, words)
}
