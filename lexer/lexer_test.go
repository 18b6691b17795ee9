/*
File    : pylox/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/pylox/diagnostics"
	"github.com/akashmaji946/pylox/token"
)

func scan(src string) ([]token.Token, *diagnostics.Sink) {
	diags := diagnostics.New()
	toks := New(src, diags).ScanTokens()
	return toks, diags
}

func types(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func TestScanTokens_Operators(t *testing.T) {
	toks, diags := scan("(){},.-+;*!= == <= >= < >")
	assert.False(t, diags.HadError)
	assert.Equal(t, []token.Type{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.BANG_EQUAL, token.EQUAL_EQUAL, token.LESS_EQUAL, token.GREATER_EQUAL,
		token.LESS, token.GREATER, token.EOF,
	}, types(toks))
}

func TestScanTokens_NumberLiteral(t *testing.T) {
	toks, diags := scan("123 45.67")
	assert.False(t, diags.HadError)
	assert.Equal(t, 123.0, toks[0].Literal)
	assert.Equal(t, 45.67, toks[1].Literal)
}

func TestScanTokens_StringLiteral(t *testing.T) {
	toks, diags := scan(`"hello there"`)
	assert.False(t, diags.HadError)
	assert.Equal(t, "hello there", toks[0].Literal)
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	_, diags := scan(`"unterminated`)
	assert.True(t, diags.HadError)
}

func TestScanTokens_Keywords(t *testing.T) {
	toks, _ := scan("and class else false for fun if nil or print return super this true var while")
	assert.Equal(t, []token.Type{
		token.AND, token.CLASS, token.ELSE, token.FALSE, token.FOR, token.FUN,
		token.IF, token.NIL, token.OR, token.PRINT, token.RETURN, token.SUPER,
		token.THIS, token.TRUE, token.VAR, token.WHILE, token.EOF,
	}, types(toks))
}

func TestScanTokens_IdentifierNotKeyword(t *testing.T) {
	toks, _ := scan("orange andiron")
	assert.Equal(t, token.IDENTIFIER, toks[0].Type)
	assert.Equal(t, token.IDENTIFIER, toks[1].Type)
}

func TestScanTokens_CommentIsIgnored(t *testing.T) {
	toks, _ := scan("1 // a comment\n2")
	assert.Equal(t, []token.Type{token.NUMBER, token.NUMBER, token.EOF}, types(toks))
}

func TestScanTokens_UnexpectedCharacterReportsButContinues(t *testing.T) {
	toks, diags := scan("1 @ 2")
	assert.True(t, diags.HadError)
	assert.Equal(t, []token.Type{token.NUMBER, token.NUMBER, token.EOF}, types(toks))
}

func TestScanTokens_LineTracking(t *testing.T) {
	toks, _ := scan("1\n2\n\n3")
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[1].Line)
	assert.Equal(t, 4, toks[2].Line)
	assert.Equal(t, 4, toks[3].Line) // EOF on final line
}
