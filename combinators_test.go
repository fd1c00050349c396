package pegparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteral_Empty(t *testing.T) {
	assert.Equal(t, Code{}, Literal(""))
}

func TestLiteral_Hello(t *testing.T) {
	code := Literal("Hello")
	require.Len(t, code, 5)
	for i, c := range "Hello" {
		assert.Equal(t, IChar{Char: c}, code[i])
	}
}

func TestChoice_SingleAlternativeIsIdentity(t *testing.T) {
	a := Literal("a")
	assert.Equal(t, a, Choice(a))
}

func TestChoice_RightAssociative(t *testing.T) {
	a, b, c := Literal("a"), Literal("b"), Literal("c")
	assert.Equal(t, Choice(a, Choice(b, c)), Choice(a, b, c))
}

func TestZeroOrMore_Matching(t *testing.T) {
	g := NewGrammar()
	g.Define("S", ZeroOrMore(Literal("a")), nil)

	tests := []struct {
		input  string
		cursor int
	}{
		{"", 0},
		{"a", 1},
		{"aaa", 3},
		{"aaab", 3},
		{"b", 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := g.Parser("S", nil)
			require.NoError(t, p.Accept(tt.input))
			require.NoError(t, p.Run())
			assert.Equal(t, StatusSuccess, p.Status())
			assert.Equal(t, tt.cursor, p.Cursor())
		})
	}
}

func TestGrammarDefine_AppendsRet(t *testing.T) {
	g := NewGrammar()
	g.Define("S", Literal("a"), nil)

	code, err := g.Get("S")
	require.NoError(t, err)
	require.NotEmpty(t, code)
	assert.Equal(t, OpRet, code[len(code)-1].Op())
}

func TestGrammarDefine_CarriesAction(t *testing.T) {
	g := NewGrammar()
	action := func(_ any, values []any) any { return "marker" }
	g.Define("S", Literal("a"), action)

	code, err := g.Get("S")
	require.NoError(t, err)
	ret, ok := code[len(code)-1].(IRet)
	require.True(t, ok)
	assert.Equal(t, "marker", ret.Action(nil, nil))
}
