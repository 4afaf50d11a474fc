// Package kzerr defines Kuzur's error-kind taxonomy (spec.md §7): one
// exported type per phase/kind of failure, each carrying a source byte
// offset (Pos) that the CLI appends to its one-line diagnostic, in the
// spirit of go-mix's position-prefixed Evaluator.CreateError messages.
//
// go-mix represents every runtime failure as one dynamic *objects.Error
// value distinguished only by its message text. That shape does not give
// the CLI anything to switch on when picking an exit code (spec.md §6), so
// this package is the one place Kuzur reaches for the standard library's
// plain `error` interface instead of a library: no example repo in the
// pack carries an error-wrapping or error-kind library (pkg/errors,
// multierr, etc.), so distinct Go types checked with a type switch are the
// idiomatic choice here.
package kzerr

import "fmt"

// LexError reports a character the lexer could not classify into any
// token kind.
type LexError struct {
	Pos int
	Msg string
}

func (e *LexError) Error() string { return fmt.Sprintf("LexError: %s", e.Msg) }

// SyntaxError reports a token sequence the parser could not derive from
// the grammar.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string { return fmt.Sprintf("SyntaxError: %s", e.Msg) }

// NameError reports a reference to an identifier with no binding in any
// enclosing scope.
type NameError struct {
	Pos int
	Msg string
}

func (e *NameError) Error() string { return fmt.Sprintf("NameError: %s", e.Msg) }

// TypeError reports an operation applied to a value of the wrong kind, or
// a call with the wrong argument count.
type TypeError struct {
	Pos int
	Msg string
}

func (e *TypeError) Error() string { return fmt.Sprintf("TypeError: %s", e.Msg) }

// ArithmeticError reports an arithmetic failure such as division by zero.
type ArithmeticError struct {
	Pos int
	Msg string
}

func (e *ArithmeticError) Error() string { return fmt.Sprintf("ArithmeticError: %s", e.Msg) }

// RuntimeError is the catch-all kind for failures that don't fit the more
// specific categories above.
type RuntimeError struct {
	Pos int
	Msg string
}

func (e *RuntimeError) Error() string { return fmt.Sprintf("RuntimeError: %s", e.Msg) }
