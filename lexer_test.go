package minerva

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexer_SimpleCall(t *testing.T) {
	toks, err := newLexer("(+ 1 2)").tokens()
	require.NoError(t, err)

	kinds := make([]TokenKind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []TokenKind{
		TokenLeftParen, TokenSymbol, TokenNumber, TokenNumber, TokenRightParen,
	}, kinds)
	assert.Equal(t, "+", toks[1].Text)
	assert.Equal(t, "1", toks[2].Text)
	assert.Equal(t, "2", toks[3].Text)
}

func TestLexer_Quote(t *testing.T) {
	toks, err := newLexer("'foo").tokens()
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, TokenQuote, toks[0].Kind)
	assert.Equal(t, TokenSymbol, toks[1].Kind)
	assert.Equal(t, "foo", toks[1].Text)
}

func TestLexer_StringEscapes(t *testing.T) {
	toks, err := newLexer(`"a\nb"`).tokens()
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, TokenString, toks[0].Kind)
	assert.Equal(t, "a\nb", toks[0].Text)
}

func TestLexer_DefineWithNilLiteral(t *testing.T) {
	toks, err := newLexer("(define x nil)").tokens()
	require.NoError(t, err)

	kinds := make([]TokenKind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []TokenKind{
		TokenLeftParen, TokenSymbol, TokenSymbol, TokenNil, TokenRightParen,
	}, kinds)
}

func TestLexer_BoolsBackToBackWithParen(t *testing.T) {
	toks, err := newLexer("#t #f(").tokens()
	require.NoError(t, err)

	require.Len(t, toks, 3)
	assert.Equal(t, TokenBool, toks[0].Kind)
	assert.True(t, toks[0].Bool)
	assert.Equal(t, TokenBool, toks[1].Kind)
	assert.False(t, toks[1].Bool)
	assert.Equal(t, TokenLeftParen, toks[2].Kind)
}

func TestLexer_BoolBadTerminatorIsInputError(t *testing.T) {
	_, err := newLexer("#tx").tokens()
	require.Error(t, err)
	var readErr ReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, ErrInput, readErr.Kind)
}

func TestLexer_FloatLiteral(t *testing.T) {
	toks, err := newLexer("3.14").tokens()
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, TokenNumber, toks[0].Kind)
	assert.Equal(t, "3.14", toks[0].Text)
}

func TestLexer_UnterminatedStringIsEOFError(t *testing.T) {
	_, err := newLexer(`"abc`).tokens()
	require.Error(t, err)
	var readErr ReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, ErrEOF, readErr.Kind)
}

func TestLexer_DisallowedCharacterIsInputError(t *testing.T) {
	_, err := newLexer("@").tokens()
	require.Error(t, err)
	var readErr ReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, ErrInput, readErr.Kind)
}
