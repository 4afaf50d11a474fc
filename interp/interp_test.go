package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuzurlang/kuzur/ast"
	"github.com/kuzurlang/kuzur/host"
	"github.com/kuzurlang/kuzur/kzerr"
	"github.com/kuzurlang/kuzur/parser"
)

// run parses and executes src against a fresh interpreter, returning the
// lines written to stdout.
func run(t *testing.T, src string) []string {
	t.Helper()
	program, err := parser.Parse(src)
	require.NoError(t, err)

	var out bytes.Buffer
	in := New(host.NewBufferedIO(strings.NewReader(""), &out))
	_, err = in.Run(program)
	require.NoError(t, err)

	text := strings.TrimRight(out.String(), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Scenario 1: arithmetic and precedence.
func TestScenario_ArithmeticAndPrecedence(t *testing.T) {
	lines := run(t, `
print(2 + 3 * 4)
print((2 + 3) * 4)
`)
	assert.Equal(t, []string{"14", "20"}, lines)
}

// Scenario 2: closure captures live bindings.
func TestScenario_ClosureCapturesLiveBindings(t *testing.T) {
	lines := run(t, `
func make() { x = 0; func inc() { x = x + 1; return x }; return inc }
f = make()
print(f()); print(f()); print(f())
`)
	assert.Equal(t, []string{"1", "2", "3"}, lines)
}

// Scenario 3: control flow with break/continue.
func TestScenario_BreakContinue(t *testing.T) {
	lines := run(t, `
for (i = 1; 5) { if (i == 3) { continue }; if (i == 5) { break }; print(i) }
`)
	assert.Equal(t, []string{"1", "2", "4"}, lines)
}

// Scenario 4: string concatenation and coercion.
func TestScenario_StringConcatCoercion(t *testing.T) {
	lines := run(t, `
a = 7; print("answer=" + a)
`)
	assert.Equal(t, []string{"answer=7"}, lines)
}

// Scenario 5: recursion.
func TestScenario_Recursion(t *testing.T) {
	lines := run(t, `
func fact(n) { if (n <= 1) { return 1 }; return n * fact(n - 1) }
print(fact(6))
`)
	assert.Equal(t, []string{"720"}, lines)
}

// Scenario 6: assignment walks parent scopes.
func TestScenario_AssignmentWalksParentScopes(t *testing.T) {
	lines := run(t, `
x = 1
if (true) { x = 2 }
print(x)
`)
	assert.Equal(t, []string{"2"}, lines)
}

func TestBoundary_EmptyProgramProducesNoOutput(t *testing.T) {
	lines := run(t, ``)
	assert.Nil(t, lines)
}

func TestBoundary_BareReturnYieldsNull(t *testing.T) {
	lines := run(t, `
func f() { return }
print(f())
`)
	assert.Equal(t, []string{"null"}, lines)
}

func TestBoundary_ForLoopWithEndLessThanStartSkipsBody(t *testing.T) {
	lines := run(t, `
for (i = 5; 3) { print(i) }
print(i)
`)
	assert.Equal(t, []string{"5"}, lines)
}

func TestBoundary_StringNumberCoercionDropsTrailingZero(t *testing.T) {
	lines := run(t, `print("x" + 5)`)
	assert.Equal(t, []string{"x5"}, lines)
}

func TestBoundary_UnaryNotNegatesTruthiness(t *testing.T) {
	lines := run(t, `
print(!0)
print(!1)
print(!"")
print(!"a")
`)
	assert.Equal(t, []string{"true", "false", "true", "false"}, lines)
}

func TestInvariant_IntegerArithmeticStaysNormalized(t *testing.T) {
	lines := run(t, `print(2 + 3)`)
	assert.Equal(t, []string{"5"}, lines)
}

func TestInvariant_DivisionYieldsFloat(t *testing.T) {
	lines := run(t, `print(1 / 2)`)
	assert.Equal(t, []string{"0.5"}, lines)
}

func TestInvariant_ClosureResolvesAgainstDefiningScope(t *testing.T) {
	lines := run(t, `
func outer() {
	x = "outer"
	func inner() { return x }
	return inner
}
f = outer()
func useElsewhere() {
	x = "caller"
	return f()
}
print(useElsewhere())
`)
	assert.Equal(t, []string{"outer"}, lines)
}

func TestNoShortCircuit_AndEvaluatesBothSides(t *testing.T) {
	lines := run(t, `
func sideEffect() { print("evaluated"); return true }
false && sideEffect()
`)
	assert.Equal(t, []string{"evaluated"}, lines)
}

func TestNoShortCircuit_OrEvaluatesBothSides(t *testing.T) {
	lines := run(t, `
func sideEffect() { print("evaluated"); return false }
true || sideEffect()
`)
	assert.Equal(t, []string{"evaluated"}, lines)
}

func TestError_UndefinedVariableIsNameError(t *testing.T) {
	_, err := New(host.NewBufferedIO(strings.NewReader(""), &bytes.Buffer{})).Run(parseOrFail(t, `print(nope)`))
	require.ErrorAs(t, err, new(*kzerr.NameError))
}

func TestError_DivisionByZeroOnIntegersIsArithmeticError(t *testing.T) {
	_, err := New(host.NewBufferedIO(strings.NewReader(""), &bytes.Buffer{})).Run(parseOrFail(t, `print(1 / 0)`))
	require.ErrorAs(t, err, new(*kzerr.ArithmeticError))
}

func TestError_ModuloByZeroOnIntegersIsArithmeticError(t *testing.T) {
	_, err := New(host.NewBufferedIO(strings.NewReader(""), &bytes.Buffer{})).Run(parseOrFail(t, `print(1 % 0)`))
	require.ErrorAs(t, err, new(*kzerr.ArithmeticError))
}

func TestModuloByZeroOnFloatsYieldsNaN(t *testing.T) {
	lines := run(t, `print(5.5 % 0.0)`)
	require.Len(t, lines, 1)
	assert.Equal(t, "NaN", lines[0])
}

func TestError_CallingNonCallableIsTypeError(t *testing.T) {
	_, err := New(host.NewBufferedIO(strings.NewReader(""), &bytes.Buffer{})).Run(parseOrFail(t, `
x = 5
x()
`))
	require.ErrorAs(t, err, new(*kzerr.TypeError))
}

func TestError_WrongArityIsTypeError(t *testing.T) {
	_, err := New(host.NewBufferedIO(strings.NewReader(""), &bytes.Buffer{})).Run(parseOrFail(t, `
func f(a, b) { return a + b }
f(1)
`))
	require.ErrorAs(t, err, new(*kzerr.TypeError))
}

func TestBuiltins_LenIntStr(t *testing.T) {
	lines := run(t, `
print(len("hello"))
print(int("3.9"))
print(str(42))
`)
	assert.Equal(t, []string{"5", "3", "42"}, lines)
}

func TestInput_ReadsOneLineWithPrompt(t *testing.T) {
	program, err := parser.Parse(`
name = input("name? ")
print("hi " + name)
`)
	require.NoError(t, err)

	var out bytes.Buffer
	in := New(host.NewBufferedIO(strings.NewReader("ada\n"), &out))
	_, err = in.Run(program)
	require.NoError(t, err)

	assert.Equal(t, "name? hi ada\n", out.String())
}

func parseOrFail(t *testing.T, src string) *ast.Block {
	t.Helper()
	program, err := parser.Parse(src)
	require.NoError(t, err)
	return program
}
