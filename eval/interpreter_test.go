/*
File    : pylox/eval/interpreter_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/pylox/diagnostics"
	"github.com/akashmaji946/pylox/lexer"
	"github.com/akashmaji946/pylox/parser"
	"github.com/akashmaji946/pylox/resolver"
)

// run lexes, parses, resolves and interprets src, returning everything
// written via print and the diagnostics sink so tests can assert on
// both output and error state.
func run(t *testing.T, src string) (string, *diagnostics.Sink) {
	t.Helper()
	var out strings.Builder
	diags := diagnostics.New()
	diags.Out = &out
	toks := lexer.New(src, diags).ScanTokens()
	stmts := parser.New(toks, diags).Parse()
	require.False(t, diags.HadError, "unexpected parse error")

	interp := New(diags)
	res := resolver.New(interp, diags)
	res.Resolve(stmts)
	require.False(t, diags.HadError, "unexpected resolution error")

	interp.Writer = &out
	interp.Interpret(stmts)
	return out.String(), diags
}

func TestInterpret_Arithmetic(t *testing.T) {
	out, diags := run(t, `print 1 + 2 * 3;`)
	assert.False(t, diags.HadRuntimeError)
	assert.Equal(t, "7\n", out)
}

func TestInterpret_StringConcat(t *testing.T) {
	out, _ := run(t, `print "foo" + "bar";`)
	assert.Equal(t, "foobar\n", out)
}

func TestInterpret_IntegerValuedNumberHasNoTrailingZero(t *testing.T) {
	out, _ := run(t, `print 6 / 2;`)
	assert.Equal(t, "3\n", out)
}

func TestInterpret_DivisionByZeroIsRuntimeError(t *testing.T) {
	out, diags := run(t, `print 1 / 0;`)
	assert.True(t, diags.HadRuntimeError)
	assert.Contains(t, out, "Division by zero is undefined.")
}

func TestInterpret_VarAndAssignment(t *testing.T) {
	out, _ := run(t, `var x = 1; x = x + 1; print x;`)
	assert.Equal(t, "2\n", out)
}

func TestInterpret_BlockScopingShadowsOuter(t *testing.T) {
	out, _ := run(t, `
		var x = "outer";
		{
			var x = "inner";
			print x;
		}
		print x;
	`)
	assert.Equal(t, "inner\nouter\n", out)
}

func TestInterpret_IfElse(t *testing.T) {
	out, _ := run(t, `if (1 < 2) print "yes"; else print "no";`)
	assert.Equal(t, "yes\n", out)
}

func TestInterpret_WhileLoop(t *testing.T) {
	out, _ := run(t, `var i = 0; while (i < 3) { print i; i = i + 1; }`)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterpret_ForDesugaredLoop(t *testing.T) {
	out, _ := run(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterpret_FunctionCallAndReturn(t *testing.T) {
	out, _ := run(t, `
		fun add(a, b) { return a + b; }
		print add(2, 3);
	`)
	assert.Equal(t, "5\n", out)
}

func TestInterpret_ClosureCapturesByReferenceNotSnapshot(t *testing.T) {
	out, _ := run(t, `
		fun makeCounter() {
			var count = 0;
			fun increment() {
				count = count + 1;
				return count;
			}
			return increment;
		}
		var counter = makeCounter();
		print counter();
		print counter();
		print counter();
	`)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestInterpret_Recursion(t *testing.T) {
	out, _ := run(t, `
		fun fib(n) {
			if (n < 2) return n;
			return fib(n - 1) + fib(n - 2);
		}
		print fib(10);
	`)
	assert.Equal(t, "55\n", out)
}

func TestInterpret_UndefinedVariableIsRuntimeError(t *testing.T) {
	_, diags := run(t, `print undefinedThing;`)
	assert.True(t, diags.HadRuntimeError)
}

func TestInterpret_CallingNonCallableIsRuntimeError(t *testing.T) {
	_, diags := run(t, `var x = 1; x();`)
	assert.True(t, diags.HadRuntimeError)
}

func TestInterpret_WrongArityIsRuntimeError(t *testing.T) {
	_, diags := run(t, `fun f(a) { return a; } f(1, 2);`)
	assert.True(t, diags.HadRuntimeError)
}

func TestInterpret_NativeClockReturnsNumber(t *testing.T) {
	out, diags := run(t, `print clock() > 0;`)
	assert.False(t, diags.HadRuntimeError)
	assert.Equal(t, "true\n", out)
}

func TestInterpret_NativeMathSqrt(t *testing.T) {
	out, _ := run(t, `print sqrt(16);`)
	assert.Equal(t, "4\n", out)
}

func TestInterpret_LogicalOperatorsShortCircuit(t *testing.T) {
	out, _ := run(t, `print false and (1 / 0 == 0);`)
	assert.Equal(t, "false\n", out)
}
