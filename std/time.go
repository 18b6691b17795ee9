/*
File    : pylox/std/time.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std - time.go
// clock() is the one native the book's Lox ships, used to benchmark
// recursive Lox programs (fib and friends) from inside the language
// itself -- a wall-clock reading in whole seconds, nothing more.
package std

import (
	"math"
	"time"

	"github.com/akashmaji946/pylox/objects"
)

var timeMethods = []*Builtin{
	{Name: "clock", NumArgs: 0, Callback: clock},
}

func init() {
	Builtins = append(Builtins, timeMethods...)
}

// clock returns the number of seconds since the Unix epoch, rounded to
// a whole second, as a Lox number -- matching the reference
// implementation's clock() native exactly, for test compatibility.
func clock(args []objects.GoMixObject) (objects.GoMixObject, error) {
	if len(args) != 0 {
		return nil, &ArgError{Name: "clock", Message: "expects 0 arguments"}
	}
	return &objects.Number{Value: math.Round(float64(time.Now().UnixNano()) / 1e9)}, nil
}
