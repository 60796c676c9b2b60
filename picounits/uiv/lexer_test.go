package uiv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lex(t *testing.T, input string) []Token {
	t.Helper()
	l := NewLexer(input)
	require.NoError(t, l.Lex())

	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens
		}
	}
}

func TestLexEntryLine(t *testing.T) {
	tokens := lex(t, "speed: 12.5 k(m/s^2)\n")

	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	assert.Equal(t, []TokenType{
		TokenAtom, TokenColon, TokenAtom, TokenAtom, TokenUnit,
		TokenNewline, TokenEOF,
	}, types)

	assert.Equal(t, "speed", tokens[0].Value)
	assert.Equal(t, "12.5", tokens[2].Value)
	assert.Equal(t, "k", tokens[3].Value)
	assert.Equal(t, "m/s^2", tokens[4].Value)
}

func TestLexSectionAndComment(t *testing.T) {
	tokens := lex(t, "# header comment\n[coil]\nturns: 120\n")

	assert.Equal(t, TokenNewline, tokens[0].Type)
	assert.Equal(t, TokenLeftBracket, tokens[1].Type)
	assert.Equal(t, TokenAtom, tokens[2].Type)
	assert.Equal(t, "coil", tokens[2].Value)
	assert.Equal(t, TokenRightBracket, tokens[3].Type)
}

func TestLexStrings(t *testing.T) {
	tokens := lex(t, `label: "air gap" material: 'steel'`)
	assert.Equal(t, "air gap", tokens[2].Value)
	assert.Equal(t, "steel", tokens[5].Value)

	l := NewLexer("label: \"unterminated\n")
	assert.Error(t, l.Lex())
}

func TestLexNestedUnit(t *testing.T) {
	tokens := lex(t, "c: 4186 (J/(kg K))\n")
	assert.Equal(t, TokenUnit, tokens[3].Type)
	assert.Equal(t, "J/(kg K)", tokens[3].Value)

	l := NewLexer("c: 1 (J/(kg\n")
	assert.Error(t, l.Lex())
}

func TestLexVector(t *testing.T) {
	tokens := lex(t, "v: [1, -2.5, 3e2] (m/s)\n")

	assert.Equal(t, TokenLeftBracket, tokens[2].Type)
	assert.Equal(t, "1", tokens[3].Value)
	assert.Equal(t, TokenComma, tokens[4].Type)
	assert.Equal(t, "-2.5", tokens[5].Value)
	assert.Equal(t, "3e2", tokens[7].Value)
	assert.Equal(t, TokenRightBracket, tokens[8].Type)
}

func TestTokenPositions(t *testing.T) {
	tokens := lex(t, "a: 1\nb: 2\n")
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[4].Line)
	assert.Equal(t, 1, tokens[4].Col)
}
