/*
File    : pylox/eval/interpreter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval is pylox's tree-walking interpreter. Because the AST is a
// closed Expr/Stmt sum type rather than a visitor hierarchy, the whole
// interpreter fits in two type switches, evaluate and execute, and so
// fits in one file the way the resolver and parser each do.
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/pylox/ast"
	"github.com/akashmaji946/pylox/diagnostics"
	"github.com/akashmaji946/pylox/function"
	"github.com/akashmaji946/pylox/objects"
	"github.com/akashmaji946/pylox/scope"
	"github.com/akashmaji946/pylox/std"
	"github.com/akashmaji946/pylox/token"
	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("pylox.eval")

// Interpreter walks a resolved AST and executes it. One Interpreter is
// reused across an entire REPL session so that top-level "var"
// declarations persist from one line to the next.
type Interpreter struct {
	globals     *scope.Scope
	environment *scope.Scope
	// locals maps an expression node (by pointer identity) to the number
	// of scope hops between where it is evaluated and where its name was
	// declared. Populated by the resolver via Resolve before Interpret
	// ever runs; a Variable/Assign node absent from this map is assumed
	// global.
	locals map[ast.Expr]int
	diags  *diagnostics.Sink
	Writer io.Writer
}

// New creates an Interpreter with a fresh global scope seeded with every
// native registered in std.Builtins (currently clock and the math
// library).
func New(diags *diagnostics.Sink) *Interpreter {
	globals := scope.NewScope(nil)
	for name, b := range std.Globals() {
		globals.Define(name, b)
	}
	return &Interpreter{
		globals:     globals,
		environment: globals,
		locals:      make(map[ast.Expr]int),
		diags:       diags,
		Writer:      os.Stdout,
	}
}

// GlobalNames returns the current global scope's bindings by name,
// stringified for display. It exists purely as a REPL debugging aid
// (".env") and is never consulted by evaluate/execute.
func (in *Interpreter) GlobalNames() map[string]string {
	out := make(map[string]string, len(in.globals.Variables))
	for name, val := range in.globals.Variables {
		out[name] = objects.Stringify(val)
	}
	return out
}

// Resolve records that expr's name was found distance scopes up from
// wherever expr ends up being evaluated. Called by the resolver, never
// by the interpreter itself.
func (in *Interpreter) Resolve(expr ast.Expr, distance int) {
	in.locals[expr] = distance
}

// returnSignal is how a Lox "return" unwinds the Go call stack: execute
// returns it as an ordinary error value, and CallFunction (below) is the only
// place that catches and unwraps it. This is an explicit, non-panic
// control-flow strategy for non-local exits.
type returnSignal struct {
	value objects.GoMixObject
}

func (r *returnSignal) Error() string { return "return" }

// Interpret runs statements top to bottom. A runtime error aborts the
// remaining statements and is reported through diags; it does not panic
// and does not prevent a later call to Interpret (the REPL calls this
// once per line).
func (in *Interpreter) Interpret(statements []ast.Stmt) {
	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			in.reportRuntimeError(err)
			return
		}
	}
}

func (in *Interpreter) reportRuntimeError(err error) {
	if rtErr, ok := err.(*diagnostics.RuntimeError); ok {
		logger.Errorf("runtime error: %s", rtErr.Message)
		in.diags.RuntimeError(rtErr)
		return
	}
	// Any other error carries no token, so it is reported at line 0. That
	// covers a native's std.ArgError and a returnSignal escaping Interpret
	// ("return" outside any function, which the resolver rejects before
	// this runs); surface it rather than silently swallowing it.
	in.diags.RuntimeError(diagnostics.NewRuntimeError(token.Token{Line: 0}, "%v", err))
}

func (in *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := in.evaluate(s.Expression)
		return err

	case *ast.PrintStmt:
		val, err := in.evaluate(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.Writer, objects.Stringify(val))
		return nil

	case *ast.VarStmt:
		var val objects.GoMixObject = objects.NilValue
		if s.Initializer != nil {
			v, err := in.evaluate(s.Initializer)
			if err != nil {
				return err
			}
			val = v
		}
		in.environment.Define(s.Name.Lexeme, val)
		return nil

	case *ast.BlockStmt:
		return in.executeBlock(s.Statements, scope.NewScope(in.environment))

	case *ast.IfStmt:
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if objects.IsTruthy(cond) {
			return in.execute(s.ThenBranch)
		} else if s.ElseBranch != nil {
			return in.execute(s.ElseBranch)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := in.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !objects.IsTruthy(cond) {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				return err
			}
		}

	case *ast.FunctionStmt:
		fn := function.New(s, in.environment)
		in.environment.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.ReturnStmt:
		var val objects.GoMixObject = objects.NilValue
		if s.Value != nil {
			v, err := in.evaluate(s.Value)
			if err != nil {
				return err
			}
			val = v
		}
		return &returnSignal{value: val}

	default:
		return fmt.Errorf("eval: unhandled statement type %T", stmt)
	}
}

// executeBlock runs statements in env, always restoring the interpreter's
// previous environment on the way out -- including when a statement
// returns an error or a returnSignal -- so a function's body executing a
// naked "return" doesn't leave the interpreter stuck inside the
// function's local scope.
func (in *Interpreter) executeBlock(statements []ast.Stmt, env *scope.Scope) error {
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()

	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) evaluate(expr ast.Expr) (objects.GoMixObject, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e.Value), nil

	case *ast.Grouping:
		return in.evaluate(e.Expression)

	case *ast.Variable:
		return in.lookUpVariable(e.Name, e)

	case *ast.Assign:
		value, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if distance, ok := in.locals[e]; ok {
			in.environment.AssignAt(distance, e.Name.Lexeme, value)
		} else if !in.globals.Assign(e.Name.Lexeme, value) {
			return nil, diagnostics.NewRuntimeError(e.Name, "Undefined variable '%s'.", e.Name.Lexeme)
		}
		return value, nil

	case *ast.Logical:
		left, err := in.evaluate(e.Left)
		if err != nil {
			return nil, err
		}
		if e.Operator.Type == token.OR {
			if objects.IsTruthy(left) {
				return left, nil
			}
		} else if !objects.IsTruthy(left) {
			return left, nil
		}
		return in.evaluate(e.Right)

	case *ast.Unary:
		right, err := in.evaluate(e.Right)
		if err != nil {
			return nil, err
		}
		switch e.Operator.Type {
		case token.MINUS:
			num, ok := right.(*objects.Number)
			if !ok {
				return nil, diagnostics.NewRuntimeError(e.Operator, "Operand must be a number.")
			}
			return &objects.Number{Value: -num.Value}, nil
		case token.BANG:
			return &objects.Boolean{Value: !objects.IsTruthy(right)}, nil
		}
		return nil, diagnostics.NewRuntimeError(e.Operator, "Unknown unary operator.")

	case *ast.Binary:
		return in.evaluateBinary(e)

	case *ast.Call:
		return in.evaluateCall(e)

	default:
		return nil, fmt.Errorf("eval: unhandled expression type %T", expr)
	}
}

func (in *Interpreter) lookUpVariable(name token.Token, expr ast.Expr) (objects.GoMixObject, error) {
	if distance, ok := in.locals[expr]; ok {
		if val, ok := in.environment.GetAt(distance, name.Lexeme); ok {
			return val, nil
		}
	} else if val, ok := in.globals.Get(name.Lexeme); ok {
		return val, nil
	}
	return nil, diagnostics.NewRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
}

func (in *Interpreter) evaluateBinary(e *ast.Binary) (objects.GoMixObject, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.MINUS, token.SLASH, token.STAR, token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL:
		ln, lok := left.(*objects.Number)
		rn, rok := right.(*objects.Number)
		if !lok || !rok {
			return nil, diagnostics.NewRuntimeError(e.Operator, "Operands must be numbers.")
		}
		switch e.Operator.Type {
		case token.MINUS:
			return &objects.Number{Value: ln.Value - rn.Value}, nil
		case token.SLASH:
			if rn.Value == 0 {
				return nil, diagnostics.NewRuntimeError(e.Operator, "Division by zero is undefined.")
			}
			return &objects.Number{Value: ln.Value / rn.Value}, nil
		case token.STAR:
			return &objects.Number{Value: ln.Value * rn.Value}, nil
		case token.GREATER:
			return &objects.Boolean{Value: ln.Value > rn.Value}, nil
		case token.GREATER_EQUAL:
			return &objects.Boolean{Value: ln.Value >= rn.Value}, nil
		case token.LESS:
			return &objects.Boolean{Value: ln.Value < rn.Value}, nil
		case token.LESS_EQUAL:
			return &objects.Boolean{Value: ln.Value <= rn.Value}, nil
		}

	case token.PLUS:
		if ln, ok := left.(*objects.Number); ok {
			if rn, ok := right.(*objects.Number); ok {
				return &objects.Number{Value: ln.Value + rn.Value}, nil
			}
		}
		if ls, ok := left.(*objects.String); ok {
			if rs, ok := right.(*objects.String); ok {
				return &objects.String{Value: ls.Value + rs.Value}, nil
			}
		}
		return nil, diagnostics.NewRuntimeError(e.Operator, "Operands must be two numbers or two strings.")

	case token.BANG_EQUAL:
		return &objects.Boolean{Value: !objects.Equal(left, right)}, nil
	case token.EQUAL_EQUAL:
		return &objects.Boolean{Value: objects.Equal(left, right)}, nil
	}

	return nil, diagnostics.NewRuntimeError(e.Operator, "Unknown binary operator.")
}

func (in *Interpreter) evaluateCall(e *ast.Call) (objects.GoMixObject, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]objects.GoMixObject, 0, len(e.Arguments))
	for _, argExpr := range e.Arguments {
		arg, err := in.evaluate(argExpr)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	callable, ok := callee.(objects.Callable)
	if !ok {
		return nil, diagnostics.NewRuntimeError(e.Paren, "Can only call functions and classes.")
	}
	if arity := callable.Arity(); arity >= 0 && len(args) != arity {
		return nil, diagnostics.NewRuntimeError(e.Paren, "Expected %d arguments but got %d.", arity, len(args))
	}
	return callable.Call(in, args)
}

// CallFunction implements objects.Runtime, the indirection that lets a
// *function.Function call back into this interpreter to run its body
// without objects importing eval (which would be a cycle).
func (in *Interpreter) CallFunction(fn objects.GoMixObject, args []objects.GoMixObject) (objects.GoMixObject, error) {
	userFn, ok := fn.(*function.Function)
	if !ok {
		return nil, fmt.Errorf("eval: CallFunction given non-function %T", fn)
	}

	callEnv := scope.NewScope(userFn.Closure)
	for i, param := range userFn.Declaration.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	err := in.executeBlock(userFn.Declaration.Body, callEnv)
	if ret, ok := err.(*returnSignal); ok {
		return ret.value, nil
	}
	if err != nil {
		return nil, err
	}
	return objects.NilValue, nil
}

// literalValue converts the bare Go value a Literal expression carries
// (set by the parser straight from a token's scanned literal) into the
// boxed runtime representation the rest of the interpreter operates on.
func literalValue(v interface{}) objects.GoMixObject {
	switch val := v.(type) {
	case nil:
		return objects.NilValue
	case bool:
		return &objects.Boolean{Value: val}
	case float64:
		return &objects.Number{Value: val}
	case string:
		return &objects.String{Value: val}
	default:
		return objects.NilValue
	}
}
