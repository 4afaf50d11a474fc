package parser

import (
	"strconv"

	"github.com/kuzurlang/kuzur/ast"
	"github.com/kuzurlang/kuzur/kzerr"
	"github.com/kuzurlang/kuzur/token"
)

// parseNumberLiteral converts a NUMBER token's lexeme to its float64
// value. The lexer only ever produces well-formed digit/decimal-point
// sequences, so a failure here indicates an internal inconsistency rather
// than a user-facing syntax mistake.
func parseNumberLiteral(tok token.Token) (ast.Expr, error) {
	f, err := strconv.ParseFloat(tok.Value, 64)
	if err != nil {
		return nil, &kzerr.SyntaxError{Pos: tok.Pos, Msg: "malformed numeric literal " + tok.Value}
	}
	return &ast.Number{Value: f, Pos: tok.Pos}, nil
}
