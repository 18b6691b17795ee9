/*
File    : pylox/ast/printer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"fmt"
	"strings"
)

// Printer renders an Expr tree as a fully-parenthesized Lisp-style
// string, a debugging aid dispatched by type switch since Expr is a
// closed sum type.
type Printer struct{}

// Print renders a single expression.
func (p Printer) Print(e Expr) string {
	switch n := e.(type) {
	case *Literal:
		if n.Value == nil {
			return "nil"
		}
		return fmt.Sprintf("%v", n.Value)
	case *Grouping:
		return p.parenthesize("group", n.Expression)
	case *Unary:
		return p.parenthesize(n.Operator.Lexeme, n.Right)
	case *Binary:
		return p.parenthesize(n.Operator.Lexeme, n.Left, n.Right)
	case *Logical:
		return p.parenthesize(n.Operator.Lexeme, n.Left, n.Right)
	case *Variable:
		return n.Name.Lexeme
	case *Assign:
		return p.parenthesize("= "+n.Name.Lexeme, n.Value)
	case *Call:
		args := make([]Expr, 0, len(n.Arguments)+1)
		args = append(args, n.Callee)
		args = append(args, n.Arguments...)
		return p.parenthesize("call", args...)
	default:
		return "<?>"
	}
}

func (p Printer) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(p.Print(e))
	}
	b.WriteByte(')')
	return b.String()
}
