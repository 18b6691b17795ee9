/*
File    : pylox/std/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std defines pylox's native ("foreign") functions: the Lox
// callables that are implemented in Go rather than Lox itself, registered
// into the interpreter's global scope at startup via init()-time
// registration into a package-level slice -- clock() from the book, plus
// a small math library so scripts have something to compute with beyond
// arithmetic operators.
package std

import "github.com/akashmaji946/pylox/objects"

// CallbackFunc is the Go function signature every native implements.
type CallbackFunc func(args []objects.GoMixObject) (objects.GoMixObject, error)

// Builtin adapts a CallbackFunc into an objects.Callable so natives can
// sit in the same environment slots as user-defined functions.
type Builtin struct {
	Name     string
	NumArgs  int // -1 means variadic; checked by the caller, not by Call
	Callback CallbackFunc
}

func (b *Builtin) GetType() objects.GoMixType { return objects.CallableType }
func (b *Builtin) ToString() string           { return "<native fn>" }
func (b *Builtin) ToObject() string           { return "<native fn " + b.Name + ">" }
func (b *Builtin) Arity() int                 { return b.NumArgs }

// Call ignores rt: natives never need to re-enter the interpreter to run
// a Lox function body, unlike user-defined Function.Call.
func (b *Builtin) Call(rt objects.Runtime, args []objects.GoMixObject) (objects.GoMixObject, error) {
	return b.Callback(args)
}

// Builtins accumulates every native registered by this package's init()
// functions, in registration order. Globals wires each entry into the
// interpreter's global scope.
var Builtins = make([]*Builtin, 0)

// Globals returns the name -> native mapping to seed a fresh global scope.
func Globals() map[string]*Builtin {
	out := make(map[string]*Builtin, len(Builtins))
	for _, b := range Builtins {
		out[b.Name] = b
	}
	return out
}

// ArgError reports a native called with the wrong argument count or type.
// The interpreter reports it as a runtime error; since it carries no
// token, the reported line is 0.
type ArgError struct {
	Name    string
	Message string
}

func (e *ArgError) Error() string { return e.Name + ": " + e.Message }
