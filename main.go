/*
File    : pylox/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

This root-level main package is a small demo binary for ast.Printer. It
is not the pylox CLI -- that lives in main/main.go -- it just prints the
parenthesized form of a few sample expressions, useful for eyeballing
precedence and associativity while working on the parser.
*/
package main

import (
	"fmt"

	"github.com/akashmaji946/pylox/ast"
	"github.com/akashmaji946/pylox/diagnostics"
	"github.com/akashmaji946/pylox/lexer"
	"github.com/akashmaji946/pylox/parser"
)

var samples = []string{
	`1 + 2 * 3`,
	`!!true`,
	`4 - (1 + 2) + 2 + 3 * 4 / 2`,
	`"a" + "b" == "ab"`,
}

func main() {
	printer := ast.Printer{}
	for _, src := range samples {
		diags := diagnostics.New()
		toks := lexer.New(src, diags).ScanTokens()
		stmts := parser.New(toks, diags).Parse()
		if diags.HadError || len(stmts) != 1 {
			fmt.Printf("%-40s => <parse error>\n", src)
			continue
		}
		exprStmt, ok := stmts[0].(*ast.ExpressionStmt)
		if !ok {
			fmt.Printf("%-40s => <not a single expression>\n", src)
			continue
		}
		fmt.Printf("%-40s => %s\n", src, printer.Print(exprStmt.Expression))
	}
}
