package pegparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrammar_GetUndefinedRule(t *testing.T) {
	g := NewGrammar()
	_, err := g.Get("nope")
	require.Error(t, err)
	var notFound *RuleNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "nope", notFound.Name)
}

func TestGrammar_DefineAcceptsStringProgram(t *testing.T) {
	g := NewGrammar()
	g.Define("S", "hi", nil)

	p := g.Parser("S", nil)
	require.NoError(t, p.Accept("hi there"))
	require.NoError(t, p.Run())
	assert.Equal(t, StatusSuccess, p.Status())
	assert.Equal(t, 2, p.Cursor())
}

func TestGrammar_DefineAcceptsCodeSlice(t *testing.T) {
	g := NewGrammar()
	g.Define("S", []Code{Literal("a"), Literal("b")}, nil)

	p := g.Parser("S", nil)
	require.NoError(t, p.Accept("ab"))
	require.NoError(t, p.Run())
	assert.Equal(t, StatusSuccess, p.Status())
	assert.Equal(t, 2, p.Cursor())
}

func TestGrammar_ConcurrentParsersAreIndependent(t *testing.T) {
	g := NewGrammar()
	g.Define("S", ZeroOrMore(Charset("a-z")), nil)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func(n int) {
			p := g.Parser("S", nil)
			_ = p.Accept("abcxyz")
			_ = p.Run()
			done <- struct{}{}
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
