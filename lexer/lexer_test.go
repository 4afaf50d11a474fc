package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuzurlang/kuzur/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestTokenize_ArithmeticAndKeywords(t *testing.T) {
	toks, err := Tokenize(`x = 1 + 2 * 3 if while for do func return true false break continue`)
	require.NoError(t, err)

	assert.Equal(t, []token.Kind{
		token.IDENT, token.OP, token.NUMBER, token.OP, token.NUMBER, token.OP, token.NUMBER,
		token.IF, token.WHILE, token.FOR, token.DO, token.FUNC, token.RETURN,
		token.TRUE, token.FALSE, token.BREAK, token.CONTINUE, token.EOF,
	}, kinds(toks))
}

func TestTokenize_TwoCharOperators(t *testing.T) {
	toks, err := Tokenize(`a == b != c <= d >= e && f || g`)
	require.NoError(t, err)

	var ops []string
	for _, tk := range toks {
		if tk.Kind == token.OP {
			ops = append(ops, tk.Value)
		}
	}
	assert.Equal(t, []string{"==", "!=", "<=", ">=", "&&", "||"}, ops)
}

func TestTokenize_StringEscapesAndBothQuotes(t *testing.T) {
	toks, err := Tokenize(`"hello\nworld" 'single'`)
	require.NoError(t, err)
	require.Len(t, toks, 3) // two strings + EOF

	assert.Equal(t, "hello\nworld", toks[0].Value)
	assert.Equal(t, "single", toks[1].Value)
}

func TestTokenize_CommentsAndWhitespaceDiscarded(t *testing.T) {
	toks, err := Tokenize("x = 1 // this is a comment\ny = 2\n")
	require.NoError(t, err)

	assert.Equal(t, []token.Kind{
		token.IDENT, token.OP, token.NUMBER,
		token.IDENT, token.OP, token.NUMBER,
		token.EOF,
	}, kinds(toks))
}

func TestTokenize_FloatLiteral(t *testing.T) {
	toks, err := Tokenize(`3.14`)
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, token.NUMBER, toks[0].Kind)
	assert.Equal(t, "3.14", toks[0].Value)
}

func TestTokenize_UnrecognizedCharacterFails(t *testing.T) {
	_, err := Tokenize(`x = 1 @ 2`)
	require.Error(t, err)
}

func TestTokenize_EOFPositionEqualsSourceLength(t *testing.T) {
	src := `x = 1`
	toks, err := Tokenize(src)
	require.NoError(t, err)
	last := toks[len(toks)-1]
	assert.Equal(t, token.EOF, last.Kind)
	assert.Equal(t, len(src), last.Pos)
}
