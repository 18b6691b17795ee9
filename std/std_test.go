/*
File    : pylox/std/std_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/pylox/objects"
)

func TestGlobals_RegistersClockAndMath(t *testing.T) {
	g := Globals()
	for _, name := range []string{"clock", "abs", "sqrt", "pow", "min", "max"} {
		_, ok := g[name]
		assert.True(t, ok, "expected native %q to be registered", name)
	}
}

func TestClock_ReturnsPositiveNumber(t *testing.T) {
	result, err := clock(nil)
	require.NoError(t, err)
	num, ok := result.(*objects.Number)
	require.True(t, ok)
	assert.Greater(t, num.Value, 0.0)
}

func TestClock_RejectsArguments(t *testing.T) {
	_, err := clock([]objects.GoMixObject{&objects.Number{Value: 1}})
	assert.Error(t, err)
}

func TestSqrt_ComputesRoot(t *testing.T) {
	g := Globals()
	result, err := g["sqrt"].Callback([]objects.GoMixObject{&objects.Number{Value: 16}})
	require.NoError(t, err)
	assert.Equal(t, &objects.Number{Value: 4}, result)
}

func TestPow_ComputesPower(t *testing.T) {
	g := Globals()
	result, err := g["pow"].Callback([]objects.GoMixObject{
		&objects.Number{Value: 2},
		&objects.Number{Value: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, &objects.Number{Value: 1024}, result)
}

func TestMathFn_RejectsNonNumberArgument(t *testing.T) {
	g := Globals()
	_, err := g["sqrt"].Callback([]objects.GoMixObject{&objects.String{Value: "nope"}})
	assert.Error(t, err)
}

func TestBuiltin_ToStringMatchesBookFormat(t *testing.T) {
	g := Globals()
	assert.Equal(t, "<native fn>", g["clock"].ToString())
}
