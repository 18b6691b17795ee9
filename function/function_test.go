/*
File    : pylox/function/function_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package function

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/pylox/ast"
	"github.com/akashmaji946/pylox/objects"
	"github.com/akashmaji946/pylox/scope"
	"github.com/akashmaji946/pylox/token"
)

func TestFunction_ArityMatchesParamCount(t *testing.T) {
	decl := &ast.FunctionStmt{
		Name:   token.Token{Lexeme: "add"},
		Params: []token.Token{{Lexeme: "a"}, {Lexeme: "b"}},
	}
	fn := New(decl, scope.NewScope(nil))
	assert.Equal(t, 2, fn.Arity())
}

func TestFunction_ToStringMatchesBookFormat(t *testing.T) {
	decl := &ast.FunctionStmt{Name: token.Token{Lexeme: "add"}}
	fn := New(decl, scope.NewScope(nil))
	assert.Equal(t, "<fn add>", fn.ToString())
}

func TestFunction_GetTypeIsCallable(t *testing.T) {
	decl := &ast.FunctionStmt{Name: token.Token{Lexeme: "f"}}
	fn := New(decl, scope.NewScope(nil))
	assert.Equal(t, objects.CallableType, fn.GetType())
}

// recordingRuntime captures the arguments CallFunction receives, standing
// in for eval.Interpreter so Function.Call can be tested in isolation.
type recordingRuntime struct {
	gotFn   objects.GoMixObject
	gotArgs []objects.GoMixObject
}

func (r *recordingRuntime) CallFunction(fn objects.GoMixObject, args []objects.GoMixObject) (objects.GoMixObject, error) {
	r.gotFn = fn
	r.gotArgs = args
	return &objects.Number{Value: 42}, nil
}

func TestFunction_CallDelegatesToRuntime(t *testing.T) {
	decl := &ast.FunctionStmt{Name: token.Token{Lexeme: "f"}}
	fn := New(decl, scope.NewScope(nil))
	rt := &recordingRuntime{}

	result, err := fn.Call(rt, []objects.GoMixObject{&objects.Number{Value: 1}})
	assert.NoError(t, err)
	assert.Equal(t, &objects.Number{Value: 42}, result)
	assert.Same(t, fn, rt.gotFn)
	assert.Len(t, rt.gotArgs, 1)
}
