/*
File    : pylox/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is pylox's command-line entry point: a banner, colored
output, --help/--version flags, a "server" mode that exposes the REPL
over a TCP listener, all wired to the lexer -> parser -> resolver ->
interpreter pipeline. Exit codes follow the sysexits.h convention: 64
for a CLI usage error, 65 for a had_error file, 70 for an unrecovered
runtime error.
*/
package main

import (
	"net"
	"os"

	"github.com/fatih/color"
	"github.com/juju/errors"
	"github.com/juju/loggo"

	"github.com/akashmaji946/pylox/config"
	"github.com/akashmaji946/pylox/diagnostics"
	"github.com/akashmaji946/pylox/eval"
	"github.com/akashmaji946/pylox/lexer"
	"github.com/akashmaji946/pylox/parser"
	"github.com/akashmaji946/pylox/repl"
	"github.com/akashmaji946/pylox/resolver"
)

const (
	exitOK           = 0
	exitUsage        = 64
	exitHadError     = 65
	exitRuntimeError = 70
)

var VERSION = "v1.0.0"
var AUTHOR = "akashmaji(@iisc.ac.in)"
var LICENCE = "MIT"
var LINE = "----------------------------------------------------------------"

var BANNER = `
  ██████╗ ██╗   ██╗██╗      ██████╗ ██╗  ██╗
  ██╔══██╗╚██╗ ██╔╝██║     ██╔═══██╗╚██╗██╔╝
  ██████╔╝ ╚████╔╝ ██║     ██║   ██║ ╚███╔╝
  ██╔═══╝   ╚██╔╝  ██║     ██║   ██║ ██╔██╗
  ██║        ██║   ███████╗╚██████╔╝██╔╝ ██╗
  ╚═╝        ╚═╝   ╚══════╝ ╚═════╝ ╚═╝  ╚═╝
`

var logger = loggo.GetLogger("pylox.main")

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run implements the dispatch table and returns the process exit code,
// kept separate from main so tests can exercise it without calling
// os.Exit.
func run(args []string) int {
	if len(args) > 0 {
		switch args[0] {
		case "--help", "-h":
			showHelp()
			return exitOK
		case "--version", "-v":
			showVersion()
			return exitOK
		case "server":
			if len(args) < 2 {
				redColor.Fprintf(os.Stderr, "Usage: pylox server <port>\n")
				return exitUsage
			}
			startServer(args[1])
			return exitOK
		}
	}

	switch len(args) {
	case 0:
		runRepl()
		return exitOK
	case 1:
		return runFile(args[0])
	default:
		redColor.Fprintf(os.Stderr, "Usage: pylox [script]\n")
		return exitUsage
	}
}

func showHelp() {
	cyanColor.Println("pylox - a tree-walking Lox interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	cyanColor.Println("  pylox                 Start the interactive REPL")
	cyanColor.Println("  pylox <script.lox>     Run a Lox script")
	cyanColor.Println("  pylox server <port>    Serve the REPL over TCP")
	cyanColor.Println("  pylox --help           Show this help text")
	cyanColor.Println("  pylox --version        Show version information")
}

func showVersion() {
	cyanColor.Printf("pylox %s (%s) -- %s\n", VERSION, LICENCE, AUTHOR)
}

func runRepl() {
	cfg, err := config.Load(os.Getenv("PYLOX_CONFIG"))
	if err != nil {
		redColor.Fprintf(os.Stderr, "config: %v\n", err)
		cfg = config.Default()
	}
	loggo.GetLogger("pylox").SetLogLevel(loggo.UNSPECIFIED)
	if lvl, ok := loggo.ParseLevel(cfg.LogLevel); ok {
		loggo.GetLogger("pylox").SetLogLevel(lvl)
	}

	repler := repl.NewReplWithConfig(BANNER, VERSION, AUTHOR, LINE, LICENCE, cfg.Prompt, cfg.ShowBanner, cfg.HistoryFile)
	repler.Start(os.Stdin, os.Stdout)
}

// startServer exposes the REPL over a bare TCP listener, one Repl per
// connection, useful for driving a running interpreter from a remote
// shell during manual testing.
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "server: %v\n", errors.Annotate(err, "listen"))
		return
	}
	cyanColor.Printf("pylox REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			logger.Warningf("accept failed: %v", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	logger.Infof("client connected from %s", conn.RemoteAddr())
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, "pylox> ")
	repler.Start(conn, conn)
	logger.Infof("client disconnected from %s", conn.RemoteAddr())
}

// runFile reads and executes a single Lox script: exitUsage if the file
// cannot be read, exitHadError if lexing/parsing/resolution reported any
// error, exitRuntimeError if the program ran but raised an unrecovered
// runtime error, exitOK otherwise.
func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", errors.Annotatef(err, "reading script %q", path))
		return exitUsage
	}

	diags := diagnostics.New()
	toks := lexer.New(string(source), diags).ScanTokens()
	stmts := parser.New(toks, diags).Parse()
	if diags.HadError {
		return exitHadError
	}

	interp := eval.New(diags)
	resolver.New(interp, diags).Resolve(stmts)
	if diags.HadError {
		return exitHadError
	}

	interp.Interpret(stmts)
	if diags.HadRuntimeError {
		return exitRuntimeError
	}
	return exitOK
}
