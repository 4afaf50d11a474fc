// Package object defines Kuzur's runtime Value representation (spec.md §3),
// ported from akashmaji946/go-mix's objects package (GoMixObject ->
// Value, GoMixType -> Kind) and trimmed to the scalar set spec.md names:
// numbers, strings, booleans, functions, builtins, and null.
package object

import (
	"fmt"
	"math"
)

// Kind identifies the runtime type of a Value, the same role go-mix's
// GoMixType string constants play.
type Kind string

const (
	NumberKind   Kind = "number"
	StringKind   Kind = "string"
	BooleanKind  Kind = "bool"
	FunctionKind Kind = "func"
	BuiltinKind  Kind = "builtin"
	NullKind     Kind = "null"

	// BreakKind, ContinueKind, and ReturnKind never surface as ordinary
	// values; they are the non-local signal sentinels interp checks for
	// after executing a statement, the same way go-mix checks
	// result.GetType() == std.BreakType / std.ContinueType and unwraps
	// *std.ReturnValue.
	BreakKind    Kind = "break-signal"
	ContinueKind Kind = "continue-signal"
	ReturnKind   Kind = "return-signal"
)

// Value is implemented by every Kuzur runtime value.
type Value interface {
	Kind() Kind
	String() string
}

// Number is Kuzur's single unified numeric kind: a float64 payload plus a
// flag recording whether it currently has no fractional part. Per spec.md
// §4.6 this flag is recomputed by NewNumber after every arithmetic
// operation, not just at literal-parse time, so "2 + 3" normalizes back to
// an integer print even though addition is done in float64. This is the
// tagged Int|Float variant §9 Design Notes recommends over go-mix's two
// separate Integer/Float object types.
type Number struct {
	Value float64
	IsInt bool
}

// NewNumber normalizes f: a value with no fractional component is tagged
// integer, matching spec.md's "integer-normalization" definition.
func NewNumber(f float64) *Number {
	return &Number{Value: f, IsInt: f == math.Trunc(f)}
}

func (n *Number) Kind() Kind { return NumberKind }
func (n *Number) String() string {
	if n.IsInt {
		return fmt.Sprintf("%d", int64(n.Value))
	}
	return fmt.Sprintf("%g", n.Value)
}

// String is a Kuzur string value.
type String struct{ Value string }

func (s *String) Kind() Kind     { return StringKind }
func (s *String) String() string { return s.Value }

// Boolean is a Kuzur boolean value.
type Boolean struct{ Value bool }

func (b *Boolean) Kind() Kind { return BooleanKind }
func (b *Boolean) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// Null is the single null value, produced by a parameterless return or a
// function falling off the end of its body without returning.
type Null struct{}

func (n *Null) Kind() Kind     { return NullKind }
func (n *Null) String() string { return "null" }

// NullValue is the shared Null instance — null carries no state, so one
// instance suffices, the same singleton convention go-mix uses for
// &objects.Nil{} at each call site (Kuzur just avoids reallocating it).
var NullValue = &Null{}

// BreakSignal and ContinueSignal are the sentinel values a Break/Continue
// statement evaluates to; composites inspect Kind() to react, ported from
// go-mix's std.BreakType/std.ContinueType object-kind checks in
// eval/eval_loops.go.
var BreakSignal Value = &signal{kind: BreakKind}
var ContinueSignal Value = &signal{kind: ContinueKind}

type signal struct{ kind Kind }

func (s *signal) Kind() Kind     { return s.kind }
func (s *signal) String() string { return string(s.kind) }

// ReturnValue wraps the value carried by a return statement so composites
// can tell "a value was produced" apart from "this value was returned from
// here, stop unwinding the call/loop stack" — ported from go-mix's
// std.ReturnValue, unwrapped by interp.callFunction the way go-mix's
// UnwrapReturnValue unwraps it in Evaluator.CallFunction.
type ReturnValue struct{ Value Value }

func (r *ReturnValue) Kind() Kind     { return ReturnKind }
func (r *ReturnValue) String() string { return r.Value.String() }

// Truthy implements spec.md §4.5's truthiness predicate: booleans use
// their value; numbers are false iff zero; strings are false iff empty;
// functions and builtins are truthy; null is falsy.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case *Boolean:
		return val.Value
	case *Number:
		return val.Value != 0
	case *String:
		return val.Value != ""
	case *Null:
		return false
	default:
		return true
	}
}

// Callable is implemented by any Value that Call expressions may invoke
// (user-defined functions and builtins alike), matching spec.md §4.5's
// "callee; it must be a callable Value (user function or built-in)".
type Callable interface {
	Value
	Arity() (min, max int)
}
