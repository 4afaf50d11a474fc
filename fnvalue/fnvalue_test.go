package fnvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kuzurlang/kuzur/ast"
	"github.com/kuzurlang/kuzur/environ"
	"github.com/kuzurlang/kuzur/object"
)

func TestFunction_ArityMatchesParamCount(t *testing.T) {
	fn := &Function{Name: "add", Params: []string{"a", "b"}, Body: &ast.Block{}, Closure: environ.New(nil)}
	min, max := fn.Arity()
	assert.Equal(t, 2, min)
	assert.Equal(t, 2, max)
}

func TestFunction_ClosureIsLiveNotCopied(t *testing.T) {
	env := environ.New(nil)
	env.Declare("x", object.NewNumber(1))
	fn := &Function{Name: "f", Closure: env}

	env.Assign("x", object.NewNumber(2))

	v, ok := fn.Closure.Get("x")
	assert.True(t, ok)
	assert.Equal(t, object.NewNumber(2), v, "function must observe mutations to its captured scope")
}

func TestFunction_KindAndString(t *testing.T) {
	fn := &Function{Name: "greet"}
	assert.Equal(t, object.FunctionKind, fn.Kind())
	assert.Equal(t, "<function greet>", fn.String())

	anon := &Function{}
	assert.Equal(t, "<function anonymous>", anon.String())
}
