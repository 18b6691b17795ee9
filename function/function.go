/*
File    : pylox/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package function implements objects.Callable for user-defined Lox
// functions: a declaration (name, params, body) plus a captured scope.
// The captured scope is always the live *scope.Scope pointer from
// declaration time -- never a copy -- so the function observes later
// mutations of variables in its closure, which is the whole point of a
// closure.
package function

import (
	"fmt"

	"github.com/akashmaji946/pylox/ast"
	"github.com/akashmaji946/pylox/objects"
	"github.com/akashmaji946/pylox/scope"
)

// Function is a user-defined Lox function value.
type Function struct {
	Declaration *ast.FunctionStmt
	Closure     *scope.Scope
	// IsInitializer is reserved for a future class/init() feature; unused
	// while Lox stays class-free, kept so constructor call sites do not
	// need to change if that feature lands.
	IsInitializer bool
}

// New wraps declaration as a callable closing over closure.
func New(declaration *ast.FunctionStmt, closure *scope.Scope) *Function {
	return &Function{Declaration: declaration, Closure: closure}
}

func (f *Function) GetType() objects.GoMixType { return objects.CallableType }

func (f *Function) ToString() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}

func (f *Function) ToObject() string { return f.ToString() }

// Arity is the number of parameters this function was declared with.
func (f *Function) Arity() int { return len(f.Declaration.Params) }

// Call is implemented by eval.Interpreter, which has the statement
// executor this needs; Function only carries the data a call needs.
// Call satisfies objects.Callable by delegating back into the runtime.
func (f *Function) Call(rt objects.Runtime, args []objects.GoMixObject) (objects.GoMixObject, error) {
	return rt.CallFunction(f, args)
}
