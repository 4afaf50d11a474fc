// Package parser implements Kuzur's parser: recursive descent over
// statements, precedence climbing over expressions (spec.md §4.2).
//
// The two-token-lookahead cursor (curToken/peekToken) and advance()
// shape are ported from akashmaji946/go-mix's Parser.CurrToken/NextToken.
// go-mix builds a Pratt parser with per-token-kind function tables
// (UnaryFuncs/BinaryFuncs) sized for a much larger grammar (arrays, maps,
// structs, compound assignment...); Kuzur's fixed 7-level table (§4.2) is
// small enough that a direct precedence-climbing loop is clearer than
// building out that machinery, so this parser inlines the climb instead
// of registering per-operator callbacks. go-mix also collects every error
// into an Errors slice for IDE-style reporting; spec.md's CLI treats the
// first parse error as fatal (exit 1), so Kuzur fails fast with a plain
// Go error instead of accumulating a slice.
package parser

import (
	"fmt"

	"github.com/kuzurlang/kuzur/ast"
	"github.com/kuzurlang/kuzur/kzerr"
	"github.com/kuzurlang/kuzur/lexer"
	"github.com/kuzurlang/kuzur/token"
)

// precedence maps each binary operator to its level in spec.md §4.2's
// table; higher binds tighter.
var precedence = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3, "!=": 3,
	"<": 4, "<=": 4, ">": 4, ">=": 4,
	"+": 5, "-": 5,
	"*": 6, "/": 6, "%": 6,
}

// Parser holds a Lexer plus a two-token lookahead window, mirroring
// go-mix's Parser.CurrToken/NextToken pair.
type Parser struct {
	lx        *lexer.Lexer
	curToken  token.Token
	peekToken token.Token
}

// New creates a Parser over src, already positioned at the first token.
func New(src string) (*Parser, error) {
	p := &Parser{lx: lexer.New(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// advance shifts curToken <- peekToken and scans a new peekToken, the
// same two-step lookahead refill go-mix's Parser.advance performs.
func (p *Parser) advance() error {
	p.curToken = p.peekToken
	tok, err := p.lx.NextToken()
	if err != nil {
		return &kzerr.LexError{Pos: p.lx.Pos, Msg: err.Error()}
	}
	p.peekToken = tok
	return nil
}

func (p *Parser) syntaxErrorf(format string, args ...any) error {
	return &kzerr.SyntaxError{
		Pos: p.curToken.Pos,
		Msg: fmt.Sprintf("[%d:%d] %s", p.curToken.Line, p.curToken.Col, fmt.Sprintf(format, args...)),
	}
}

// expectOp consumes the current token if it is an OP token with the given
// literal value, else fails — go-mix's Parser.expect collapsed onto
// Kuzur's single OP token kind.
func (p *Parser) expectOp(op string) error {
	if !p.curToken.Is(op) {
		return p.syntaxErrorf("expected %q, got %q", op, p.curToken.Value)
	}
	return p.advance()
}

func (p *Parser) expectKind(k token.Kind) (token.Token, error) {
	if p.curToken.Kind != k {
		return token.Token{}, p.syntaxErrorf("expected %s, got %s %q", k, p.curToken.Kind, p.curToken.Value)
	}
	tok := p.curToken
	if err := p.advance(); err != nil {
		return token.Token{}, err
	}
	return tok, nil
}

// Parse runs the parser over the whole token stream and returns the
// top-level program Block, the Block whose statements "collectively
// consume all tokens up to EOF" per spec.md §3's invariant.
func Parse(src string) (*ast.Block, error) {
	p, err := New(src)
	if err != nil {
		return nil, err
	}
	var stmts []ast.Stmt
	for p.curToken.Kind != token.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return &ast.Block{Stmts: stmts}, nil
}

// parseStatement parses one statement and consumes an optional ";" that
// follows it, so statements may be written `a = 1; print(a)`.
func (p *Parser) parseStatement() (stmt ast.Stmt, err error) {
	defer func() {
		if err == nil && p.curToken.Is(";") {
			err = p.advance()
		}
	}()
	switch p.curToken.Kind {
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()
	case token.DO:
		return p.parseDoWhile()
	case token.FUNC:
		return p.parseFuncDef()
	case token.RETURN:
		return p.parseReturn()
	case token.BREAK:
		pos := p.curToken.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Break{Pos: pos}, nil
	case token.CONTINUE:
		pos := p.curToken.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Continue{Pos: pos}, nil
	case token.IDENT:
		if p.peekToken.Is("=") {
			return p.parseAssign()
		}
	}
	expr, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Expr: expr}, nil
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	if err := p.expectOp("{"); err != nil {
		return nil, err
	}
	var stmts []ast.Stmt
	for !p.curToken.Is("}") {
		if p.curToken.Kind == token.EOF {
			return nil, p.syntaxErrorf("unterminated block, expected \"}\"")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if err := p.expectOp("}"); err != nil {
		return nil, err
	}
	return &ast.Block{Stmts: stmts}, nil
}

func (p *Parser) parseAssign() (ast.Stmt, error) {
	name := p.curToken.Value
	pos := p.curToken.Pos
	if err := p.advance(); err != nil { // consume IDENT
		return nil, err
	}
	if err := p.expectOp("="); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	return &ast.Assign{Name: name, Expr: expr, Pos: pos}, nil
}

// parseIf handles `if ( expr ) block ( elif ( expr ) block )* ( else block )?`
func (p *Parser) parseIf() (ast.Stmt, error) {
	var branches []ast.Branch
	for {
		if err := p.advance(); err != nil { // consume IF/ELIF
			return nil, err
		}
		if err := p.expectOp("("); err != nil {
			return nil, err
		}
		cond, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		if err := p.expectOp(")"); err != nil {
			return nil, err
		}
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		branches = append(branches, ast.Branch{Cond: cond, Block: block})
		if p.curToken.Kind != token.ELIF {
			break
		}
	}
	var elseBlock *ast.Block
	if p.curToken.Kind == token.ELSE {
		if err := p.advance(); err != nil {
			return nil, err
		}
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		elseBlock = block
	}
	return &ast.If{Branches: branches, Else: elseBlock}, nil
}

func (p *Parser) parseWhile() (ast.Stmt, error) {
	if err := p.advance(); err != nil { // consume WHILE
		return nil, err
	}
	if err := p.expectOp("("); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if err := p.expectOp(")"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{Cond: cond, Body: body}, nil
}

// parseFor handles `for ( IDENT = expr ; expr ) block`.
func (p *Parser) parseFor() (ast.Stmt, error) {
	pos := p.curToken.Pos
	if err := p.advance(); err != nil { // consume FOR
		return nil, err
	}
	if err := p.expectOp("("); err != nil {
		return nil, err
	}
	nameTok, err := p.expectKind(token.IDENT)
	if err != nil {
		return nil, err
	}
	if err := p.expectOp("="); err != nil {
		return nil, err
	}
	start, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if err := p.expectOp(";"); err != nil {
		return nil, err
	}
	end, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if err := p.expectOp(")"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.For{Var: nameTok.Value, Start: start, End: end, Body: body, Pos: pos}, nil
}

func (p *Parser) parseDoWhile() (ast.Stmt, error) {
	if err := p.advance(); err != nil { // consume DO
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if p.curToken.Kind != token.WHILE {
		return nil, p.syntaxErrorf("expected \"while\" after do block, got %q", p.curToken.Value)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expectOp("("); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if err := p.expectOp(")"); err != nil {
		return nil, err
	}
	return &ast.DoWhile{Body: body, Cond: cond}, nil
}

func (p *Parser) parseFuncDef() (ast.Stmt, error) {
	pos := p.curToken.Pos
	if err := p.advance(); err != nil { // consume FUNC
		return nil, err
	}
	nameTok, err := p.expectKind(token.IDENT)
	if err != nil {
		return nil, err
	}
	if err := p.expectOp("("); err != nil {
		return nil, err
	}
	var params []string
	for !p.curToken.Is(")") {
		paramTok, err := p.expectKind(token.IDENT)
		if err != nil {
			return nil, err
		}
		params = append(params, paramTok.Value)
		if p.curToken.Is(",") {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expectOp(")"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FuncDef{Name: nameTok.Value, Params: params, Body: body, Pos: pos}, nil
}

// parseReturn handles an optional expression: absent when the next token
// is "}" or EOF (spec.md §4.2).
func (p *Parser) parseReturn() (ast.Stmt, error) {
	pos := p.curToken.Pos
	if err := p.advance(); err != nil { // consume RETURN
		return nil, err
	}
	if p.curToken.Is("}") || p.curToken.Kind == token.EOF {
		return &ast.Return{Expr: nil, Pos: pos}, nil
	}
	expr, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	return &ast.Return{Expr: expr, Pos: pos}, nil
}

// parseExpression implements precedence climbing: it parses a unary
// (prefix) term, then repeatedly folds in binary operators whose
// precedence is at least minPrec, recursing with that operator's
// precedence + 1 on the right-hand side to enforce left-associativity
// (spec.md §4.2).
func (p *Parser) parseExpression(minPrec int) (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.curToken.Kind == token.OP {
		op := p.curToken.Value
		prec, ok := precedence[op]
		if !ok || prec < minPrec {
			break
		}
		pos := p.curToken.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseExpression(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: op, Right: right, Pos: pos}
	}
	return left, nil
}

// parseUnary handles prefix +, -, ! (precedence level 7), then falls
// through to postfix call parsing over a primary expression.
func (p *Parser) parseUnary() (ast.Expr, error) {
	if p.curToken.Kind == token.OP && (p.curToken.Value == "+" || p.curToken.Value == "-" || p.curToken.Value == "!") {
		op := p.curToken.Value
		pos := p.curToken.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: op, Operand: operand, Pos: pos}, nil
	}
	return p.parsePostfix()
}

// parsePostfix parses a primary expression, then chains zero or more call
// applications left-to-right: f(a)(b) calls f(a)'s result with (b).
func (p *Parser) parsePostfix() (ast.Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.curToken.Is("(") {
		pos := p.curToken.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		var args []ast.Expr
		for !p.curToken.Is(")") {
			arg, err := p.parseExpression(0)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.curToken.Is(",") {
				if err := p.advance(); err != nil {
					return nil, err
				}
				continue
			}
			break
		}
		if err := p.expectOp(")"); err != nil {
			return nil, err
		}
		expr = &ast.Call{Callee: expr, Args: args, Pos: pos}
	}
	return expr, nil
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.curToken
	switch tok.Kind {
	case token.NUMBER:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return parseNumberLiteral(tok)
	case token.STRING:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.String{Value: tok.Value, Pos: tok.Pos}, nil
	case token.TRUE, token.FALSE:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Boolean{Value: tok.Kind == token.TRUE, Pos: tok.Pos}, nil
	case token.IDENT:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Var{Name: tok.Value, Pos: tok.Pos}, nil
	case token.OP:
		if tok.Value == "(" {
			if err := p.advance(); err != nil {
				return nil, err
			}
			expr, err := p.parseExpression(0)
			if err != nil {
				return nil, err
			}
			if err := p.expectOp(")"); err != nil {
				return nil, err
			}
			return expr, nil
		}
	}
	return nil, p.syntaxErrorf("unexpected token %q", tok.Value)
}
