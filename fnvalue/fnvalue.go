// Package fnvalue holds the runtime representation of user-defined Kuzur
// functions, ported from akashmaji946/go-mix's function.Function.
package fnvalue

import (
	"fmt"

	"github.com/kuzurlang/kuzur/ast"
	"github.com/kuzurlang/kuzur/environ"
	"github.com/kuzurlang/kuzur/object"
)

// Function is a callable Value closing over the environment active at the
// point its FuncDef was executed. Closure is stored as a direct pointer to
// that live *environ.Env, never copied — go-mix's own
// Evaluator.RegisterFunction comments this same choice as "reference the
// current scope directly, not a copy", and Kuzur relies on it for the
// make()/inc() counter pattern in spec.md §8 scenario 2: every call must
// see mutations earlier calls made in the shared closure.
type Function struct {
	Name    string
	Params  []string
	Body    *ast.Block
	Closure *environ.Env
}

func (f *Function) Kind() object.Kind { return object.FunctionKind }

func (f *Function) String() string {
	name := f.Name
	if name == "" {
		name = "anonymous"
	}
	return fmt.Sprintf("<function %s>", name)
}

// Arity reports the exact parameter count Kuzur functions require: min
// and max are always equal since Kuzur has no variadic or default
// parameters.
func (f *Function) Arity() (min, max int) {
	return len(f.Params), len(f.Params)
}
