// Package builtin implements Kuzur's fixed set of built-in callables:
// print, input, len, int, and str (spec.md §4.7).
//
// The Callback signature and registration-table shape are ported from
// akashmaji946/go-mix's objects.CallbackFunc/Builtin, with go-mix's raw
// io.Writer parameter promoted to the host.IO interface so builtins can
// also read input, and the error return changed from a dynamic
// *objects.Error value to a real Go error so the CLI's kzerr exit-code
// switch (spec.md §6) has something concrete to inspect.
package builtin

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/kuzurlang/kuzur/host"
	"github.com/kuzurlang/kuzur/kzerr"
	"github.com/kuzurlang/kuzur/object"
)

// Callback is the function signature every builtin implements: the active
// host IO for output/input, plus the evaluated call arguments.
type Callback func(h host.IO, args []object.Value) (object.Value, error)

// Builtin wraps a Callback as a callable object.Value, the same pairing
// go-mix's objects.Builtin makes of Name and CallbackFunc.
type Builtin struct {
	Name     string
	Min, Max int // -1 for Max means unbounded, matching print's variadic arity
	Fn       Callback
}

func (b *Builtin) Kind() object.Kind     { return object.BuiltinKind }
func (b *Builtin) String() string        { return fmt.Sprintf("<builtin %s>", b.Name) }
func (b *Builtin) Arity() (min, max int) { return b.Min, b.Max }

// Registry maps every builtin name to its implementation. Ported in
// spirit from go-mix's global Builtins slice plus its
// Evaluator.IsBuiltin/InvokeBuiltin lookup pair, collapsed into a single
// map since Kuzur's builtin surface is fixed and small.
var Registry = map[string]*Builtin{
	"print": {Name: "print", Min: 0, Max: -1, Fn: builtinPrint},
	"input": {Name: "input", Min: 0, Max: 1, Fn: builtinInput},
	"len":   {Name: "len", Min: 1, Max: 1, Fn: builtinLen},
	"int":   {Name: "int", Min: 1, Max: 1, Fn: builtinInt},
	"str":   {Name: "str", Min: 1, Max: 1, Fn: builtinStr},
}

// builtinPrint writes each argument's String() form space-separated,
// followed by a newline, matching go-mix's println builtin behavior
// (go-mix splits print/println; Kuzur's single print always ends the
// line, per spec.md §4.7).
func builtinPrint(h host.IO, args []object.Value) (object.Value, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	h.WriteLine(strings.Join(parts, " "))
	return object.NullValue, nil
}

// builtinInput writes an optional prompt (first argument, if given) with
// no trailing newline, then reads one line from the host, returning it as
// a string. Matches go-mix's input() builtin, which prints its prompt via
// the common print path before calling scanln.
func builtinInput(h host.IO, args []object.Value) (object.Value, error) {
	if len(args) == 1 {
		h.Write(args[0].String())
	}
	line, err := h.ReadLine()
	if err != nil && err != io.EOF {
		return nil, &kzerr.RuntimeError{Msg: fmt.Sprintf("input(): %s", err)}
	}
	return &object.String{Value: line}, nil
}

// builtinLen returns the length of the string form of its argument, for
// any kind — spec.md §4.7 defines len() over "the string form" of the
// value, matching the original's `lambda interp, args: len(str(args[0]))`
// (kuzur-v5.py:429): len(12345) is 5, len(true) is 4. Counted in runes,
// not bytes, so multibyte string() forms measure the same as str()'s own
// reference.
func builtinLen(_ host.IO, args []object.Value) (object.Value, error) {
	return object.NewNumber(float64(utf8.RuneCountInString(args[0].String()))), nil
}

// builtinInt coerces a number or a numeric-looking string to an integer-
// tagged Number, truncating any fractional part (spec.md §4.7).
func builtinInt(_ host.IO, args []object.Value) (object.Value, error) {
	switch v := args[0].(type) {
	case *object.Number:
		return object.NewNumber(float64(int64(v.Value))), nil
	case *object.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Value), 64)
		if err != nil {
			return nil, &kzerr.TypeError{Msg: fmt.Sprintf("int(): cannot convert %q to a number", v.Value)}
		}
		return object.NewNumber(float64(int64(f))), nil
	default:
		return nil, &kzerr.TypeError{Msg: fmt.Sprintf("int() expects a number or string, got %s", args[0].Kind())}
	}
}

// builtinStr converts any value to its textual representation.
func builtinStr(_ host.IO, args []object.Value) (object.Value, error) {
	return &object.String{Value: args[0].String()}, nil
}
