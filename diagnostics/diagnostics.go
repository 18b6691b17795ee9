/*
File    : pylox/diagnostics/diagnostics.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package diagnostics is the process-scoped error sink shared by every
// pipeline stage. It tracks the two sticky flags the driver inspects
// between stages (HadError, HadRuntimeError) and renders the exact
// diagnostic text the lexer, parser, resolver and interpreter produce.
package diagnostics

import (
	"fmt"
	"io"
	"os"

	"github.com/juju/loggo"

	"github.com/akashmaji946/pylox/token"
)

var logger = loggo.GetLogger("pylox.diagnostics")

// Sink accumulates the had_error / had_runtime_error state threaded
// through lexing, parsing, resolution and interpretation. A Sink is not
// safe for concurrent use; the interpreter is single-threaded by design.
type Sink struct {
	// HadError is set by any lexical, parse or resolution error. A later
	// pipeline stage must not run while it is set.
	HadError bool
	// HadRuntimeError is set when a RuntimeError escapes interpretation.
	// Unlike HadError it is not cleared automatically between REPL lines;
	// the driver inspects it once to decide the file-mode exit code.
	HadRuntimeError bool

	// Out is where diagnostic text is written. Defaults to os.Stderr.
	Out io.Writer
}

// New returns a Sink that writes to os.Stderr.
func New() *Sink {
	return &Sink{Out: os.Stderr}
}

// Reset clears HadError, preparing the sink for the next REPL line. It
// deliberately leaves HadRuntimeError untouched; callers that also want to
// forgive a prior runtime error call ResetRuntimeError explicitly.
func (s *Sink) Reset() {
	s.HadError = false
}

// ResetRuntimeError clears HadRuntimeError. The REPL calls this after each
// line so that one runtime error does not wedge the session; file-mode
// execution never calls it, since the driver reads the flag exactly once.
func (s *Sink) ResetRuntimeError() {
	s.HadRuntimeError = false
}

// Error reports a lexical error tied to a source line.
func (s *Sink) Error(line int, message string) {
	s.report(line, "", message)
}

// TokenError reports a parse or resolution error anchored to a token,
// formatting the "at end" / "at '<lexeme>'" location the way the rest of
// the pipeline expects.
func (s *Sink) TokenError(tok token.Token, message string) {
	if tok.Type == token.EOF {
		s.report(tok.Line, " at end", message)
	} else {
		s.report(tok.Line, " at '"+tok.Lexeme+"'", message)
	}
}

func (s *Sink) report(line int, where, message string) {
	fmt.Fprintf(s.out(), "[line %d] Error %s: %s\n", line, where, message)
	s.HadError = true
	logger.Debugf("reported diagnostic at line %d: %s", line, message)
}

// RuntimeError reports a runtime error using the "<message>\n[line L]"
// format and sets HadRuntimeError.
func (s *Sink) RuntimeError(err *RuntimeError) {
	fmt.Fprintf(s.out(), "%s\n[line %d]\n", err.Message, err.Token.Line)
	s.HadRuntimeError = true
	logger.Errorf("runtime error at line %d: %s", err.Token.Line, err.Message)
}

func (s *Sink) out() io.Writer {
	if s.Out != nil {
		return s.Out
	}
	return os.Stderr
}

// RuntimeError is the typed error every expression evaluation may raise.
// It carries the offending token so the sink can report the source line.
type RuntimeError struct {
	Token   token.Token
	Message string
}

// NewRuntimeError builds a RuntimeError with a formatted message.
func NewRuntimeError(tok token.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface so RuntimeError can travel through
// ordinary Go error-returning signatures.
func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}
