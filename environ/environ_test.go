package environ

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kuzurlang/kuzur/object"
)

func TestGet_WalksParentChain(t *testing.T) {
	global := New(nil)
	global.Declare("x", object.NewNumber(1))
	child := New(global)

	v, ok := child.Get("x")
	assert.True(t, ok)
	assert.Equal(t, object.NewNumber(1), v)
}

func TestGet_MissingReturnsFalse(t *testing.T) {
	env := New(nil)
	_, ok := env.Get("missing")
	assert.False(t, ok)
}

func TestDeclare_ShadowsOuterBinding(t *testing.T) {
	global := New(nil)
	global.Declare("x", object.NewNumber(1))
	child := New(global)
	child.Declare("x", object.NewNumber(2))

	childVal, _ := child.Get("x")
	globalVal, _ := global.Get("x")
	assert.Equal(t, object.NewNumber(2), childVal)
	assert.Equal(t, object.NewNumber(1), globalVal)
}

// Assign must overwrite an existing outer binding rather than shadow it —
// the divergence from go-mix's Scope.Assign spec.md §4.4/§9 calls for.
func TestAssign_MutatesExistingOuterBinding(t *testing.T) {
	global := New(nil)
	global.Declare("x", object.NewNumber(1))
	child := New(global)

	child.Assign("x", object.NewNumber(2))

	childVal, _ := child.Get("x")
	globalVal, _ := global.Get("x")
	assert.Equal(t, object.NewNumber(2), childVal)
	assert.Equal(t, object.NewNumber(2), globalVal, "assign must mutate the outer binding, not shadow it")
	_, existsInChild := child.Bindings["x"]
	assert.False(t, existsInChild, "assign must not create a shadow copy in the inner scope")
}

// When no scope in the chain already binds the name, Assign creates it in
// the current (innermost) scope — spec.md §4.4's "declare-or-mutate" rule.
func TestAssign_CreatesInCurrentScopeWhenUnbound(t *testing.T) {
	global := New(nil)
	child := New(global)

	child.Assign("y", object.NewNumber(9))

	_, existsInGlobal := global.Get("y")
	assert.False(t, existsInGlobal)
	_, existsInChild := child.Bindings["y"]
	assert.True(t, existsInChild)
}

func TestAssign_PrefersNearestAncestorBinding(t *testing.T) {
	global := New(nil)
	global.Declare("x", object.NewNumber(1))
	middle := New(global)
	middle.Declare("x", object.NewNumber(2))
	inner := New(middle)

	inner.Assign("x", object.NewNumber(3))

	middleVal, _ := middle.Get("x")
	globalVal, _ := global.Get("x")
	assert.Equal(t, object.NewNumber(3), middleVal)
	assert.Equal(t, object.NewNumber(1), globalVal)
}
