package builtin

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuzurlang/kuzur/host"
	"github.com/kuzurlang/kuzur/object"
)

func TestRegistry_HasAllFiveBuiltins(t *testing.T) {
	for _, name := range []string{"print", "input", "len", "int", "str"} {
		_, ok := Registry[name]
		assert.True(t, ok, "expected builtin %q to be registered", name)
	}
}

func TestPrint_JoinsArgsWithSpaceAndNewline(t *testing.T) {
	var out bytes.Buffer
	h := host.NewBufferedIO(strings.NewReader(""), &out)

	_, err := builtinPrint(h, []object.Value{&object.String{Value: "a"}, object.NewNumber(1)})
	require.NoError(t, err)
	assert.Equal(t, "a 1\n", out.String())
}

func TestInput_WritesPromptThenReadsLine(t *testing.T) {
	var out bytes.Buffer
	h := host.NewBufferedIO(strings.NewReader("typed\n"), &out)

	result, err := builtinInput(h, []object.Value{&object.String{Value: "prompt: "}})
	require.NoError(t, err)
	assert.Equal(t, "prompt: ", out.String())
	assert.Equal(t, &object.String{Value: "typed"}, result)
}

func TestLen_ReturnsStringLength(t *testing.T) {
	result, err := builtinLen(nil, []object.Value{&object.String{Value: "hello"}})
	require.NoError(t, err)
	assert.Equal(t, object.NewNumber(5), result)
}

func TestLen_MeasuresStringFormOfAnyKind(t *testing.T) {
	result, err := builtinLen(nil, []object.Value{object.NewNumber(12345)})
	require.NoError(t, err)
	assert.Equal(t, object.NewNumber(5), result)

	result, err = builtinLen(nil, []object.Value{&object.Boolean{Value: true}})
	require.NoError(t, err)
	assert.Equal(t, object.NewNumber(4), result)
}

func TestInt_TruncatesFloat(t *testing.T) {
	result, err := builtinInt(nil, []object.Value{object.NewNumber(3.9)})
	require.NoError(t, err)
	assert.Equal(t, object.NewNumber(3), result)
}

func TestInt_ParsesNumericString(t *testing.T) {
	result, err := builtinInt(nil, []object.Value{&object.String{Value: "42.7"}})
	require.NoError(t, err)
	assert.Equal(t, object.NewNumber(42), result)
}

func TestStr_RendersCanonicalForm(t *testing.T) {
	result, err := builtinStr(nil, []object.Value{object.NewNumber(5)})
	require.NoError(t, err)
	assert.Equal(t, &object.String{Value: "5"}, result)

	result, err = builtinStr(nil, []object.Value{&object.Boolean{Value: true}})
	require.NoError(t, err)
	assert.Equal(t, &object.String{Value: "true"}, result)
}
