package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenPayloadMatchesKind(t *testing.T) {
	num := numberToken(12, 0, charLocation{line: 1, col: 1})
	_, ok := num.Char()
	require.False(t, ok)
	_, ok = num.Name()
	require.False(t, ok)

	plus := charToken(TokenTypePlus, '+', 2, charLocation{line: 1, col: 3})
	_, ok = plus.Number()
	require.False(t, ok)

	eof := eofToken(5, charLocation{line: 1, col: 6})
	_, ok = eof.Number()
	require.False(t, ok)
	_, ok = eof.Char()
	require.False(t, ok)
	_, ok = eof.Name()
	require.False(t, ok)
}

func TestTokenString(t *testing.T) {
	tokens, err := Tokenize("x1 = (12)")
	require.NoError(t, err)

	strs := []string{}
	for _, tok := range tokens {
		strs = append(strs, tok.String())
	}
	require.Equal(t, []string{
		"VAR 'x1'",
		"ASSIGN '='",
		"LPAREN '('",
		"NUMBER 12",
		"RPAREN ')'",
		"EOF",
	}, strs)

	require.Equal(t, Location{Line: 1, Col: 7}, tokens[3].Location())
}

func TestTokenTypeString(t *testing.T) {
	require.Equal(t, "MUL", TokenTypeMul.String())
	require.Equal(t, "DIV", TokenTypeDiv.String())
	require.Equal(t, "?", TokenType(99).String())
}
