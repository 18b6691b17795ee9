/*
File    : pylox/ast/stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import "github.com/akashmaji946/pylox/token"

// Stmt is the marker interface every statement node implements.
type Stmt interface {
	stmtNode()
}

// ExpressionStmt evaluates Expr for its side effects and discards the
// result.
type ExpressionStmt struct {
	Expression Expr
}

// PrintStmt evaluates Expr and writes its stringified form followed by a
// newline.
type PrintStmt struct {
	Expression Expr
}

// VarStmt declares Name in the current environment, bound to Initializer's
// value or nil if Initializer is absent.
type VarStmt struct {
	Name        token.Token
	Initializer Expr // nil if omitted
}

// BlockStmt is a brace-delimited sequence of statements executed in a
// fresh child environment.
type BlockStmt struct {
	Statements []Stmt
}

// IfStmt executes ThenBranch when Condition is truthy, else ElseBranch if
// present.
type IfStmt struct {
	Condition  Expr
	ThenBranch Stmt
	ElseBranch Stmt // nil if omitted
}

// WhileStmt executes Body while Condition remains truthy. The parser
// desugars "for" into this node plus a wrapping BlockStmt.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

// FunctionStmt declares a named function; its Body executes in a fresh
// environment chained from the closure environment captured at the point
// this statement runs.
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

// ReturnStmt unwinds to the nearest enclosing function invocation, which
// receives Value's result (nil if Value is absent).
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr // nil if omitted
}

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
func (*FunctionStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode()     {}
