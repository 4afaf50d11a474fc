// Package interp is Kuzur's tree-walking evaluator: it executes the
// statements and evaluates the expressions the parser produces, against
// an environ.Env chain (spec.md §4.5).
//
// Control flow follows go-mix's eval package: Break/Continue evaluate to
// sentinel object.Value kinds (object.BreakKind/ContinueKind) that every
// composite statement inspects after running a sub-statement, and Return
// wraps its value in *object.ReturnValue — the same shape
// eval/eval_loops.go's result.GetType() == std.BreakType checks and
// eval/eval_controls.go's *std.ReturnValue unwrapping use. §9 Design
// Notes calls this the "sum type" strategy and recommends it over
// exception-based unwinding; Kuzur follows that recommendation rather
// than the reference Python implementation's exception-based one.
package interp

import (
	"fmt"
	"math"

	"github.com/kuzurlang/kuzur/ast"
	"github.com/kuzurlang/kuzur/builtin"
	"github.com/kuzurlang/kuzur/environ"
	"github.com/kuzurlang/kuzur/fnvalue"
	"github.com/kuzurlang/kuzur/host"
	"github.com/kuzurlang/kuzur/kzerr"
	"github.com/kuzurlang/kuzur/object"
)

// Interpreter walks an AST against a chain of environments, writing
// output and reading input through IO. Ported from go-mix's Evaluator,
// which additionally threads a *parser.Parser and a builtin map through
// the same struct; Kuzur's Interpreter only needs the global environment
// and the host, since parsing is already finished by the time Run is
// called.
type Interpreter struct {
	Globals *environ.Env
	IO      host.IO
}

// New creates an Interpreter with a fresh global environment, pre-
// populated with every builtin.Registry entry — spec.md §4.7 requires
// these "installed in the global environment before user code runs",
// which also makes them ordinary first-class values: reassignable,
// shadowable, and passable like any user-defined function.
func New(io host.IO) *Interpreter {
	globals := environ.New(nil)
	for name, b := range builtin.Registry {
		globals.Declare(name, b)
	}
	return &Interpreter{Globals: globals, IO: io}
}

// Run executes program (the top-level Block) directly in the global
// environment — spec.md §3 calls out that the top-level program block,
// unlike every other Block, does not open its own child scope.
func (in *Interpreter) Run(program *ast.Block) (object.Value, error) {
	var result object.Value = object.NullValue
	for _, stmt := range program.Stmts {
		v, err := in.execStmt(stmt, in.Globals)
		if err != nil {
			return nil, err
		}
		result = v
		switch result.Kind() {
		case object.ReturnKind:
			return nil, &kzerr.RuntimeError{Msg: "return outside of a function"}
		case object.BreakKind:
			return nil, &kzerr.RuntimeError{Msg: "break outside of a loop"}
		case object.ContinueKind:
			return nil, &kzerr.RuntimeError{Msg: "continue outside of a loop"}
		}
	}
	return result, nil
}

// execStmt executes one statement in env and returns the Value it
// produces: an ordinary value for ExprStmt/Assign, or one of the
// Break/Continue/Return sentinel kinds when the statement raises a
// non-local signal that an enclosing loop or function call must catch.
func (in *Interpreter) execStmt(stmt ast.Stmt, env *environ.Env) (object.Value, error) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		return in.evalExpr(s.Expr, env)

	case *ast.Assign:
		v, err := in.evalExpr(s.Expr, env)
		if err != nil {
			return nil, err
		}
		env.Assign(s.Name, v)
		return v, nil

	case *ast.Block:
		return in.execBlock(s, environ.New(env))

	case *ast.If:
		return in.execIf(s, env)

	case *ast.While:
		return in.execWhile(s, env)

	case *ast.For:
		return in.execFor(s, env)

	case *ast.DoWhile:
		return in.execDoWhile(s, env)

	case *ast.FuncDef:
		fn := &fnvalue.Function{Name: s.Name, Params: s.Params, Body: s.Body, Closure: env}
		env.Declare(s.Name, fn)
		return object.NullValue, nil

	case *ast.Return:
		if s.Expr == nil {
			return &object.ReturnValue{Value: object.NullValue}, nil
		}
		v, err := in.evalExpr(s.Expr, env)
		if err != nil {
			return nil, err
		}
		return &object.ReturnValue{Value: v}, nil

	case *ast.Break:
		return object.BreakSignal, nil

	case *ast.Continue:
		return object.ContinueSignal, nil
	}
	return nil, &kzerr.RuntimeError{Msg: fmt.Sprintf("unhandled statement %T", stmt)}
}

// execBlock runs stmts in scope, stopping early and propagating the first
// non-local signal (Return/Break/Continue) a statement produces.
func (in *Interpreter) execBlock(block *ast.Block, scope *environ.Env) (object.Value, error) {
	var result object.Value = object.NullValue
	for _, stmt := range block.Stmts {
		v, err := in.execStmt(stmt, scope)
		if err != nil {
			return nil, err
		}
		result = v
		if isSignal(result) {
			return result, nil
		}
	}
	return result, nil
}

func isSignal(v object.Value) bool {
	switch v.Kind() {
	case object.ReturnKind, object.BreakKind, object.ContinueKind:
		return true
	}
	return false
}

func (in *Interpreter) execIf(s *ast.If, env *environ.Env) (object.Value, error) {
	for _, branch := range s.Branches {
		cond, err := in.evalExpr(branch.Cond, env)
		if err != nil {
			return nil, err
		}
		if object.Truthy(cond) {
			return in.execBlock(branch.Block, environ.New(env))
		}
	}
	if s.Else != nil {
		return in.execBlock(s.Else, environ.New(env))
	}
	return object.NullValue, nil
}

func (in *Interpreter) execWhile(s *ast.While, env *environ.Env) (object.Value, error) {
	for {
		cond, err := in.evalExpr(s.Cond, env)
		if err != nil {
			return nil, err
		}
		if !object.Truthy(cond) {
			return object.NullValue, nil
		}
		result, err := in.execBlock(s.Body, environ.New(env))
		if err != nil {
			return nil, err
		}
		switch result.Kind() {
		case object.ReturnKind:
			return result, nil
		case object.BreakKind:
			return object.NullValue, nil
		case object.ContinueKind:
			continue
		}
	}
}

// execFor implements the inclusive for(var = start; end) loop of spec.md
// §4.5: start and end are evaluated once, var is bound via env.Assign
// (respecting assignment-walks-parents) rather than env.Declare, and the
// loop increments var by 1 each iteration while var <= end.
func (in *Interpreter) execFor(s *ast.For, env *environ.Env) (object.Value, error) {
	startV, err := in.evalExpr(s.Start, env)
	if err != nil {
		return nil, err
	}
	endV, err := in.evalExpr(s.End, env)
	if err != nil {
		return nil, err
	}
	startNum, ok := startV.(*object.Number)
	if !ok {
		return nil, &kzerr.TypeError{Pos: s.Pos, Msg: "for loop start value must be a number"}
	}
	endNum, ok := endV.(*object.Number)
	if !ok {
		return nil, &kzerr.TypeError{Pos: s.Pos, Msg: "for loop end value must be a number"}
	}

	env.Assign(s.Var, startNum)

	for {
		cur, ok := env.Get(s.Var)
		if !ok {
			return nil, &kzerr.NameError{Pos: s.Pos, Msg: "undefined variable " + s.Var}
		}
		curNum, ok := cur.(*object.Number)
		if !ok {
			return nil, &kzerr.TypeError{Pos: s.Pos, Msg: "for loop variable " + s.Var + " is no longer a number"}
		}
		if curNum.Value > endNum.Value {
			return object.NullValue, nil
		}

		result, err := in.execBlock(s.Body, environ.New(env))
		if err != nil {
			return nil, err
		}
		switch result.Kind() {
		case object.ReturnKind:
			return result, nil
		case object.BreakKind:
			return object.NullValue, nil
		}

		cur, _ = env.Get(s.Var)
		curNum, ok = cur.(*object.Number)
		if !ok {
			return nil, &kzerr.TypeError{Pos: s.Pos, Msg: "for loop variable " + s.Var + " is no longer a number"}
		}
		env.Assign(s.Var, object.NewNumber(curNum.Value+1))
	}
}

func (in *Interpreter) execDoWhile(s *ast.DoWhile, env *environ.Env) (object.Value, error) {
	for {
		result, err := in.execBlock(s.Body, environ.New(env))
		if err != nil {
			return nil, err
		}
		switch result.Kind() {
		case object.ReturnKind:
			return result, nil
		case object.BreakKind:
			return object.NullValue, nil
		}

		cond, err := in.evalExpr(s.Cond, env)
		if err != nil {
			return nil, err
		}
		if !object.Truthy(cond) {
			return object.NullValue, nil
		}
	}
}

// evalExpr evaluates an expression against env and returns its Value.
func (in *Interpreter) evalExpr(expr ast.Expr, env *environ.Env) (object.Value, error) {
	switch e := expr.(type) {
	case *ast.Number:
		return object.NewNumber(e.Value), nil

	case *ast.String:
		return &object.String{Value: e.Value}, nil

	case *ast.Boolean:
		return &object.Boolean{Value: e.Value}, nil

	case *ast.Var:
		v, ok := env.Get(e.Name)
		if !ok {
			return nil, &kzerr.NameError{Pos: e.Pos, Msg: "undefined variable " + e.Name}
		}
		return v, nil

	case *ast.Unary:
		return in.evalUnary(e, env)

	case *ast.Binary:
		return in.evalBinary(e, env)

	case *ast.Call:
		return in.evalCall(e, env)
	}
	return nil, &kzerr.RuntimeError{Msg: fmt.Sprintf("unhandled expression %T", expr)}
}

func (in *Interpreter) evalUnary(e *ast.Unary, env *environ.Env) (object.Value, error) {
	operand, err := in.evalExpr(e.Operand, env)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case "!":
		return &object.Boolean{Value: !object.Truthy(operand)}, nil
	case "+", "-":
		num, ok := operand.(*object.Number)
		if !ok {
			return nil, &kzerr.TypeError{Pos: e.Pos, Msg: fmt.Sprintf("unary %s requires a number, got %s", e.Op, operand.Kind())}
		}
		if e.Op == "-" {
			return object.NewNumber(-num.Value), nil
		}
		return object.NewNumber(num.Value), nil
	}
	return nil, &kzerr.RuntimeError{Pos: e.Pos, Msg: "unknown unary operator " + e.Op}
}

func (in *Interpreter) evalBinary(e *ast.Binary, env *environ.Env) (object.Value, error) {
	left, err := in.evalExpr(e.Left, env)
	if err != nil {
		return nil, err
	}
	// Both operands of &&/|| are always evaluated: spec.md §9 preserves
	// the reference implementation's lack of short-circuit evaluation as
	// a deliberate (if debatable) design choice.
	right, err := in.evalExpr(e.Right, env)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case "+":
		return evalAdd(left, right, e.Pos)
	case "-", "*", "/", "%":
		return evalArith(e.Op, left, right, e.Pos)
	case "==":
		return &object.Boolean{Value: valuesEqual(left, right)}, nil
	case "!=":
		return &object.Boolean{Value: !valuesEqual(left, right)}, nil
	case "<", "<=", ">", ">=":
		return evalCompare(e.Op, left, right, e.Pos)
	case "&&":
		return &object.Boolean{Value: object.Truthy(left) && object.Truthy(right)}, nil
	case "||":
		return &object.Boolean{Value: object.Truthy(left) || object.Truthy(right)}, nil
	}
	return nil, &kzerr.RuntimeError{Pos: e.Pos, Msg: "unknown binary operator " + e.Op}
}

// evalAdd implements spec.md §4.5's + rule: if either operand is a
// string, concatenate the string forms of both (using §4.6's
// integer-normalized display so "x" + 5 is "x5", not "x5.0"); otherwise
// numeric addition, which fails with a TypeError for non-number operands.
func evalAdd(left, right object.Value, pos int) (object.Value, error) {
	_, leftIsStr := left.(*object.String)
	_, rightIsStr := right.(*object.String)
	if leftIsStr || rightIsStr {
		return &object.String{Value: left.String() + right.String()}, nil
	}
	l, lok := left.(*object.Number)
	r, rok := right.(*object.Number)
	if !lok || !rok {
		return nil, &kzerr.TypeError{Pos: pos, Msg: fmt.Sprintf("+ requires numbers or a string, got %s and %s", left.Kind(), right.Kind())}
	}
	return object.NewNumber(l.Value + r.Value), nil
}

func evalArith(op string, left, right object.Value, pos int) (object.Value, error) {
	l, ok := left.(*object.Number)
	if !ok {
		return nil, &kzerr.TypeError{Pos: pos, Msg: fmt.Sprintf("%s requires numbers, got %s", op, left.Kind())}
	}
	r, ok := right.(*object.Number)
	if !ok {
		return nil, &kzerr.TypeError{Pos: pos, Msg: fmt.Sprintf("%s requires numbers, got %s", op, right.Kind())}
	}
	switch op {
	case "-":
		return object.NewNumber(l.Value - r.Value), nil
	case "*":
		return object.NewNumber(l.Value * r.Value), nil
	case "/":
		if r.Value == 0 {
			if l.IsInt && r.IsInt {
				return nil, &kzerr.ArithmeticError{Pos: pos, Msg: "division by zero"}
			}
			return object.NewNumber(l.Value / r.Value), nil
		}
		return object.NewNumber(l.Value / r.Value), nil
	case "%":
		if r.Value == 0 {
			if l.IsInt && r.IsInt {
				return nil, &kzerr.ArithmeticError{Pos: pos, Msg: "modulo by zero"}
			}
			return object.NewNumber(math.Mod(l.Value, r.Value)), nil
		}
		return object.NewNumber(math.Mod(l.Value, r.Value)), nil
	}
	return nil, &kzerr.RuntimeError{Pos: pos, Msg: "unknown arithmetic operator " + op}
}

func valuesEqual(left, right object.Value) bool {
	if left.Kind() != right.Kind() {
		return false
	}
	switch l := left.(type) {
	case *object.Number:
		return l.Value == right.(*object.Number).Value
	case *object.String:
		return l.Value == right.(*object.String).Value
	case *object.Boolean:
		return l.Value == right.(*object.Boolean).Value
	case *object.Null:
		return true
	default:
		return left == right
	}
}

func evalCompare(op string, left, right object.Value, pos int) (object.Value, error) {
	switch l := left.(type) {
	case *object.Number:
		r, ok := right.(*object.Number)
		if !ok {
			return nil, &kzerr.TypeError{Pos: pos, Msg: "cannot compare number with " + string(right.Kind())}
		}
		return &object.Boolean{Value: compareOrdered(op, l.Value < r.Value, l.Value == r.Value, l.Value > r.Value)}, nil
	case *object.String:
		r, ok := right.(*object.String)
		if !ok {
			return nil, &kzerr.TypeError{Pos: pos, Msg: "cannot compare string with " + string(right.Kind())}
		}
		return &object.Boolean{Value: compareOrdered(op, l.Value < r.Value, l.Value == r.Value, l.Value > r.Value)}, nil
	}
	return nil, &kzerr.TypeError{Pos: pos, Msg: fmt.Sprintf("ordering comparison undefined for %s", left.Kind())}
}

func compareOrdered(op string, lt, eq, gt bool) bool {
	switch op {
	case "<":
		return lt
	case "<=":
		return lt || eq
	case ">":
		return gt
	case ">=":
		return gt || eq
	}
	return false
}

// evalCall evaluates the callee, checks it is callable, evaluates
// arguments left-to-right, and applies it — builtins dispatch through
// builtin.Callback, user functions through callFunction.
func (in *Interpreter) evalCall(e *ast.Call, env *environ.Env) (object.Value, error) {
	calleeVal, err := in.evalExpr(e.Callee, env)
	if err != nil {
		return nil, err
	}

	args := make([]object.Value, len(e.Args))
	for i, a := range e.Args {
		v, err := in.evalExpr(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch callee := calleeVal.(type) {
	case *builtin.Builtin:
		if err := checkArity(callee.Name, callee.Min, callee.Max, len(args), e.Pos); err != nil {
			return nil, err
		}
		return callee.Fn(in.IO, args)

	case *fnvalue.Function:
		return in.callFunction(callee, args, e.Pos)

	default:
		return nil, &kzerr.TypeError{Pos: e.Pos, Msg: fmt.Sprintf("%s is not callable", calleeVal.Kind())}
	}
}

func checkArity(name string, min, max, got int, pos int) error {
	if got < min || (max >= 0 && got > max) {
		return &kzerr.TypeError{Pos: pos, Msg: fmt.Sprintf("%s takes %s arguments, got %d", name, arityDesc(min, max), got)}
	}
	return nil
}

func arityDesc(min, max int) string {
	if max < 0 {
		return fmt.Sprintf("at least %d", min)
	}
	if min == max {
		return fmt.Sprintf("exactly %d", min)
	}
	return fmt.Sprintf("between %d and %d", min, max)
}

// callFunction applies a user-defined function: a fresh environment is
// created with the function's CAPTURED closure as parent — not the
// caller's environment — so free variables resolve lexically (spec.md
// §4.5, §8 "function closures" invariant). A Return signal inside the
// body yields its value; falling off the end yields null.
func (in *Interpreter) callFunction(fn *fnvalue.Function, args []object.Value, pos int) (object.Value, error) {
	if len(args) != len(fn.Params) {
		return nil, &kzerr.TypeError{Pos: pos, Msg: fmt.Sprintf("%s takes exactly %d arguments, got %d", fn.String(), len(fn.Params), len(args))}
	}

	callScope := environ.New(fn.Closure)
	for i, param := range fn.Params {
		callScope.Declare(param, args[i])
	}

	result, err := in.execBlock(fn.Body, callScope)
	if err != nil {
		return nil, err
	}
	switch result.Kind() {
	case object.ReturnKind:
		return result.(*object.ReturnValue).Value, nil
	case object.BreakKind, object.ContinueKind:
		return nil, &kzerr.RuntimeError{Pos: pos, Msg: "break/continue outside of a loop"}
	}
	return object.NullValue, nil
}
