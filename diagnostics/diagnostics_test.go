/*
File    : pylox/diagnostics/diagnostics_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package diagnostics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/pylox/token"
)

func sinkWithBuffer() (*Sink, *strings.Builder) {
	var buf strings.Builder
	return &Sink{Out: &buf}, &buf
}

func TestError_SetsHadErrorAndFormatsLine(t *testing.T) {
	s, buf := sinkWithBuffer()
	s.Error(3, "Unexpected character.")
	assert.True(t, s.HadError)
	assert.Equal(t, "[line 3] Error : Unexpected character.\n", buf.String())
}

func TestTokenError_AtEnd(t *testing.T) {
	s, buf := sinkWithBuffer()
	s.TokenError(token.Token{Type: token.EOF, Line: 5}, "Expect expression.")
	assert.Equal(t, "[line 5] Error  at end: Expect expression.\n", buf.String())
}

func TestTokenError_AtLexeme(t *testing.T) {
	s, buf := sinkWithBuffer()
	s.TokenError(token.Token{Type: token.IDENTIFIER, Lexeme: "x", Line: 2}, "Expect ';'.")
	assert.Equal(t, "[line 2] Error  at 'x': Expect ';'.\n", buf.String())
}

func TestRuntimeError_SetsFlagAndFormats(t *testing.T) {
	s, buf := sinkWithBuffer()
	s.RuntimeError(NewRuntimeError(token.Token{Line: 7}, "Operand must be a number."))
	assert.True(t, s.HadRuntimeError)
	assert.Equal(t, "Operand must be a number.\n[line 7]\n", buf.String())
}

func TestReset_OnlyClearsHadError(t *testing.T) {
	s := New()
	s.HadError = true
	s.HadRuntimeError = true
	s.Reset()
	assert.False(t, s.HadError)
	assert.True(t, s.HadRuntimeError)
}

func TestResetRuntimeError_OnlyClearsRuntimeFlag(t *testing.T) {
	s := New()
	s.HadError = true
	s.HadRuntimeError = true
	s.ResetRuntimeError()
	assert.True(t, s.HadError)
	assert.False(t, s.HadRuntimeError)
}
