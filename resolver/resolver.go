/*
File    : pylox/resolver/resolver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package resolver implements the static binding-depth analysis that
// runs between parsing and interpretation: a single pass over the AST
// that computes, for every variable reference, how many enclosing
// scopes separate it from its declaration, so the interpreter can look
// it up by exact distance instead of walking the scope chain outward.
package resolver

import (
	"github.com/akashmaji946/pylox/ast"
	"github.com/akashmaji946/pylox/diagnostics"
	"github.com/akashmaji946/pylox/token"
)

// scopeTable maps a locally declared name to whether its initializer has
// finished running. A name present but false means "declared but not
// yet ready to read" -- the state that catches "var a = a;".
type scopeTable map[string]bool

// functionKind tracks what kind of function body is being resolved, so
// resolving a bare "return" at the top level can be rejected.
type functionKind int

const (
	noFunction functionKind = iota
	inFunction
)

// binder is the minimal surface the interpreter exposes back to the
// resolver: recording how many scope hops a Variable/Assign reference is
// from its declaration. eval.Interpreter implements this.
type binder interface {
	Resolve(expr ast.Expr, distance int)
}

// Resolver performs a single pass over the parsed statement list,
// computing a binding distance for every variable reference and
// reporting scope-level errors the parser couldn't catch by itself
// ("a variable can't refer to itself in its own initializer", "can't
// return from top-level code", duplicate declarations in one block).
type Resolver struct {
	interp  binder
	diags   *diagnostics.Sink
	scopes  []scopeTable
	current functionKind
}

// New creates a Resolver that reports bindings to interp and errors to
// diags.
func New(interp binder, diags *diagnostics.Sink) *Resolver {
	return &Resolver{interp: interp, diags: diags}
}

// Resolve walks every top-level statement. Call it once, after parsing
// and before interpreting, on the full statement list for a file or REPL
// line.
func (r *Resolver) Resolve(statements []ast.Stmt) {
	for _, stmt := range statements {
		r.resolveStmt(stmt)
	}
}

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, scopeTable{}) }
func (r *Resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

// declare adds name to the innermost scope as "not yet ready", and flags
// a redeclaration within the same block as an error -- shadowing across
// blocks is fine, but "var a = 1; var a = 2;" in the same block is not.
func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	innermost := r.scopes[len(r.scopes)-1]
	if _, ok := innermost[name.Lexeme]; ok {
		r.diags.TokenError(name, "Already a variable with this name in this scope.")
	}
	innermost[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal walks outward from the innermost scope looking for name,
// reporting the hop count to the interpreter the moment it is found. A
// name never found in any scope is left unresolved, which the
// interpreter treats as a global lookup.
func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.interp.Resolve(expr, len(r.scopes)-1-i)
			return
		}
	}
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, kind functionKind) {
	enclosing := r.current
	r.current = kind
	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	for _, stmt := range fn.Body {
		r.resolveStmt(stmt)
	}
	r.endScope()
	r.current = enclosing
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		r.beginScope()
		for _, inner := range s.Statements {
			r.resolveStmt(inner)
		}
		r.endScope()

	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *ast.FunctionStmt:
		// Declared and defined before the body is resolved so the
		// function can call itself recursively by name.
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, inFunction)

	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expression)

	case *ast.PrintStmt:
		r.resolveExpr(s.Expression)

	case *ast.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.ThenBranch)
		if s.ElseBranch != nil {
			r.resolveStmt(s.ElseBranch)
		}

	case *ast.WhileStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)

	case *ast.ReturnStmt:
		if r.current == noFunction {
			r.diags.TokenError(s.Keyword, "Can't return from top-level code.")
		}
		if s.Value != nil {
			r.resolveExpr(s.Value)
		}
	}
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if ready, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !ready {
				r.diags.TokenError(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name)

	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)

	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Arguments {
			r.resolveExpr(arg)
		}

	case *ast.Grouping:
		r.resolveExpr(e.Expression)

	case *ast.Unary:
		r.resolveExpr(e.Right)

	case *ast.Literal:
		// No sub-expressions and no name to bind.
	}
}
