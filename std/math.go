/*
File    : pylox/std/math.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std - math.go
// A small math library: abs, min, max, floor, ceil, round, sqrt, pow and
// the trig family, all operating on objects.Number since Lox has a single
// number type. This is a deliberate expansion beyond the reference Lox
// language, which has no standard library to speak of -- every Lox
// program otherwise has no way to compute a square root.
package std

import (
	"math"

	"github.com/akashmaji946/pylox/objects"
)

var mathMethods = []*Builtin{
	{Name: "abs", NumArgs: 1, Callback: unary(math.Abs)},
	{Name: "sqrt", NumArgs: 1, Callback: unary(math.Sqrt)},
	{Name: "floor", NumArgs: 1, Callback: unary(math.Floor)},
	{Name: "ceil", NumArgs: 1, Callback: unary(math.Ceil)},
	{Name: "round", NumArgs: 1, Callback: unary(math.Round)},
	{Name: "sin", NumArgs: 1, Callback: unary(math.Sin)},
	{Name: "cos", NumArgs: 1, Callback: unary(math.Cos)},
	{Name: "tan", NumArgs: 1, Callback: unary(math.Tan)},
	{Name: "log", NumArgs: 1, Callback: unary(math.Log)},
	{Name: "exp", NumArgs: 1, Callback: unary(math.Exp)},
	{Name: "pow", NumArgs: 2, Callback: pow},
	{Name: "min", NumArgs: 2, Callback: binary(math.Min)},
	{Name: "max", NumArgs: 2, Callback: binary(math.Max)},
}

func init() {
	Builtins = append(Builtins, mathMethods...)
}

func asNumber(name string, obj objects.GoMixObject) (float64, error) {
	n, ok := obj.(*objects.Number)
	if !ok {
		return 0, &ArgError{Name: name, Message: "expects a number argument"}
	}
	return n.Value, nil
}

// unary adapts a single-argument math.XxxFunc into a Builtin callback.
func unary(fn func(float64) float64) CallbackFunc {
	return func(args []objects.GoMixObject) (objects.GoMixObject, error) {
		if len(args) != 1 {
			return nil, &ArgError{Name: "math fn", Message: "expects 1 argument"}
		}
		x, err := asNumber("math fn", args[0])
		if err != nil {
			return nil, err
		}
		return &objects.Number{Value: fn(x)}, nil
	}
}

// binary adapts a two-argument math.XxxFunc into a Builtin callback.
func binary(fn func(float64, float64) float64) CallbackFunc {
	return func(args []objects.GoMixObject) (objects.GoMixObject, error) {
		if len(args) != 2 {
			return nil, &ArgError{Name: "math fn", Message: "expects 2 arguments"}
		}
		x, err := asNumber("math fn", args[0])
		if err != nil {
			return nil, err
		}
		y, err := asNumber("math fn", args[1])
		if err != nil {
			return nil, err
		}
		return &objects.Number{Value: fn(x, y)}, nil
	}
}

func pow(args []objects.GoMixObject) (objects.GoMixObject, error) {
	return binary(math.Pow)(args)
}
