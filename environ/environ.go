// Package environ implements Kuzur's lexical environments: chained scopes
// of name-to-value bindings, ported from akashmaji946/go-mix's scope.Scope
// with one deliberate semantic change documented below.
package environ

import "github.com/kuzurlang/kuzur/object"

// Env is a single lexical scope, linked to its enclosing scope via Parent.
// The global/top-level environment has a nil Parent, matching go-mix's
// root Scope.
type Env struct {
	Parent   *Env
	Bindings map[string]object.Value
}

// New creates a child environment of parent. Passing a nil parent creates
// the top-level (global) environment, the same convention
// scope.NewScope(nil) uses in go-mix.
func New(parent *Env) *Env {
	return &Env{Parent: parent, Bindings: make(map[string]object.Value)}
}

// Get looks up name, walking outward through enclosing scopes, mirroring
// go-mix's Scope.LookUp.
func (e *Env) Get(name string) (object.Value, bool) {
	for s := e; s != nil; s = s.Parent {
		if v, ok := s.Bindings[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Declare binds name in this scope only, shadowing any outer binding of
// the same name — go-mix's Scope.Bind.
func (e *Env) Declare(name string, v object.Value) {
	e.Bindings[name] = v
}

// Assign implements spec.md §4.4's "assignment walks parents" rule: it
// searches outward for an existing binding of name and overwrites it in
// whichever scope holds it. If no scope in the chain already binds name,
// Assign creates the binding in the CURRENT (innermost) scope rather than
// failing.
//
// This is a deliberate divergence from go-mix's Scope.Assign, which
// returns (nil, false) and creates nothing when the walk finds no existing
// binding. spec.md §9 explicitly calls out that go-mix's stricter rule
// must not be carried over: Kuzur's x = 1 is simultaneously "declare if
// new, mutate if it already exists somewhere outer" — confirmed by the
// original Python reference's Environment.set, which falls through to
// self.values[name] = value when the walk finds nothing.
func (e *Env) Assign(name string, v object.Value) {
	for s := e; s != nil; s = s.Parent {
		if _, ok := s.Bindings[name]; ok {
			s.Bindings[name] = v
			return
		}
	}
	e.Bindings[name] = v
}
