/*
File    : pylox/objects/objects.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package objects defines the runtime value model for pylox: the small,
// closed set of types a Lox program can produce or operate on. Every value
// implements GoMixObject so the interpreter can type-switch, stringify and
// truthiness-test values uniformly: numbers, strings, booleans, nil and
// callables.
package objects

import (
	"fmt"
	"strconv"
	"strings"
)

// GoMixType identifies the runtime type of a GoMixObject.
type GoMixType string

const (
	// NumberType represents a double-precision number. Lox has no separate
	// integer type -- 1 and 1.0 are the same value.
	NumberType GoMixType = "number"
	// StringType represents a string value.
	StringType GoMixType = "string"
	// BooleanType represents true/false.
	BooleanType GoMixType = "bool"
	// NilType represents the absence of a value.
	NilType GoMixType = "nil"
	// CallableType represents a user-defined or native function.
	CallableType GoMixType = "callable"
)

// GoMixObject is the interface every Lox runtime value implements.
type GoMixObject interface {
	GetType() GoMixType
	ToString() string
	ToObject() string
}

// Number wraps a float64. Integer-valued numbers stringify without a
// trailing ".0" (stringify drops it), matching the book's display rules.
type Number struct {
	Value float64
}

func (n *Number) GetType() GoMixType { return NumberType }

func (n *Number) ToString() string {
	if n.Value == float64(int64(n.Value)) {
		return strconv.FormatInt(int64(n.Value), 10)
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (n *Number) ToObject() string { return fmt.Sprintf("<number(%s)>", n.ToString()) }

// String wraps a Go string.
type String struct {
	Value string
}

func (s *String) GetType() GoMixType { return StringType }
func (s *String) ToString() string   { return s.Value }
func (s *String) ToObject() string   { return fmt.Sprintf("<string(%s)>", s.Value) }

// Boolean wraps a Go bool.
type Boolean struct {
	Value bool
}

func (b *Boolean) GetType() GoMixType { return BooleanType }
func (b *Boolean) ToString() string   { return strconv.FormatBool(b.Value) }
func (b *Boolean) ToObject() string   { return fmt.Sprintf("<bool(%t)>", b.Value) }

// Nil is the singleton Lox nil value. Always use NilValue rather than
// constructing one, so equality checks can compare by identity if needed.
type Nil struct{}

func (n *Nil) GetType() GoMixType { return NilType }
func (n *Nil) ToString() string   { return "nil" }
func (n *Nil) ToObject() string   { return "<nil>" }

// NilValue is the single shared Nil instance.
var NilValue = &Nil{}

// Runtime is the callback surface a Callable needs in order to run a
// user-defined function's body -- it lets objects.Callable stay free of an
// import on the eval package, which itself must import objects.
type Runtime interface {
	// CallFunction invokes fn with args, as if by a Lox call expression.
	CallFunction(fn GoMixObject, args []GoMixObject) (GoMixObject, error)
}

// Callable is any GoMixObject that can appear on the left of a call
// expression: user-defined functions and native functions alike.
type Callable interface {
	GoMixObject
	Arity() int
	Call(rt Runtime, args []GoMixObject) (GoMixObject, error)
}

// IsTruthy implements Lox truthiness: nil and false are falsey, everything
// else -- including 0 and the empty string -- is truthy.
func IsTruthy(obj GoMixObject) bool {
	switch v := obj.(type) {
	case *Nil, nil:
		return false
	case *Boolean:
		return v.Value
	default:
		return true
	}
}

// Equal implements Lox's "==": nil only equals nil, numbers and strings
// compare by value, and values of different runtime types are never equal
// (unlike Go, Lox never coerces across types for equality).
func Equal(a, b GoMixObject) bool {
	switch av := a.(type) {
	case *Nil:
		_, ok := b.(*Nil)
		return ok
	case *Number:
		bv, ok := b.(*Number)
		return ok && av.Value == bv.Value
	case *String:
		bv, ok := b.(*String)
		return ok && av.Value == bv.Value
	case *Boolean:
		bv, ok := b.(*Boolean)
		return ok && av.Value == bv.Value
	default:
		return false
	}
}

// Stringify renders obj as a Lox print/concat would display it.
func Stringify(obj GoMixObject) string {
	if obj == nil {
		return "nil"
	}
	return obj.ToString()
}

// TypeName returns a short, user-facing label for obj's runtime type
// ("number", "string", "bool", "nil", "callable").
func TypeName(obj GoMixObject) string {
	if obj == nil {
		return "nil"
	}
	return string(obj.GetType())
}

// JoinTypeNames is a small formatting helper for error messages that list
// more than one offending operand type.
func JoinTypeNames(objs ...GoMixObject) string {
	names := make([]string, len(objs))
	for i, o := range objs {
		names[i] = TypeName(o)
	}
	return strings.Join(names, ", ")
}
