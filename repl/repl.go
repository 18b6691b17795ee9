/*
File    : pylox/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements pylox's interactive Read-Eval-Print Loop: a
readline-backed line editor, a colored banner/prompt, and a ".exit"
sentinel. Each line runs through lexer, parser, resolver and interpreter
in turn, and HadError is reset between lines per pylox's forgiving-REPL
contract so one bad line never ends the session.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"

	"github.com/akashmaji946/pylox/diagnostics"
	"github.com/akashmaji946/pylox/eval"
	"github.com/akashmaji946/pylox/lexer"
	"github.com/akashmaji946/pylox/parser"
	"github.com/akashmaji946/pylox/resolver"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is one interactive session's configuration: banner text, version
// info and the prompt readline displays.
type Repl struct {
	Banner      string
	Version     string
	Author      string
	Line        string
	License     string
	Prompt      string
	ShowBanner  bool
	HistoryFile string
}

// NewRepl builds a Repl from its display fields. The banner prints by
// default and history is not persisted to disk; use NewReplWithConfig
// to override either.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt, ShowBanner: true}
}

// NewReplWithConfig builds a Repl honoring the driver's config.Config
// settings for whether to print the startup banner and where to persist
// readline history between sessions.
func NewReplWithConfig(banner, version, author, line, license, prompt string, showBanner bool, historyFile string) *Repl {
	r := NewRepl(banner, version, author, line, license, prompt)
	r.ShowBanner = showBanner
	r.HistoryFile = historyFile
	return r
}

// PrintBannerInfo writes the startup banner, version/author/license line
// and basic usage instructions to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to pylox!")
	cyanColor.Fprintf(writer, "%s\n", "Type a Lox statement and press enter.")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit, '.env' to dump the current global scope.")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop, reading lines via readline and writing
// results and diagnostics to writer. It returns when the user exits
// (".exit" or EOF/Ctrl-D).
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	if r.ShowBanner {
		r.PrintBannerInfo(writer)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      r.Prompt,
		HistoryFile: r.HistoryFile,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	diags := diagnostics.New()
	diags.Out = writer
	interp := eval.New(diags)
	interp.Writer = writer

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			return
		}
		if line == ".env" {
			r.dumpGlobals(writer, interp)
			continue
		}

		rl.SaveHistory(line)
		r.runLine(line, diags, interp)
	}
}

// runLine executes one line of input against the session's shared
// interpreter, resetting the sticky error flags afterward so a mistake
// on one line never wedges the rest of the session -- the behavior P6
// requires of a REPL, unlike file-mode execution which reads
// HadError/HadRuntimeError exactly once.
func (r *Repl) runLine(line string, diags *diagnostics.Sink, interp *eval.Interpreter) {
	defer diags.Reset()
	defer diags.ResetRuntimeError()

	toks := lexer.New(line, diags).ScanTokens()
	if diags.HadError {
		return
	}

	stmts := parser.New(toks, diags).Parse()
	if diags.HadError {
		return
	}

	resolver.New(interp, diags).Resolve(stmts)
	if diags.HadError {
		return
	}

	interp.Interpret(stmts)
}

// dumpGlobals is a debugging aid: it renders the interpreter's global
// scope with go-spew, exposed as a REPL command rather than a
// language-level builtin.
func (r *Repl) dumpGlobals(writer io.Writer, interp *eval.Interpreter) {
	scfg := spew.ConfigState{Indent: "  ", DisableMethods: true}
	scfg.Fdump(writer, interp.GlobalNames())
}
