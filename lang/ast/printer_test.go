package ast_test

import (
	"strings"
	"testing"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
	"github.com/stretchr/testify/require"
)

func TestPrintExpressionStatement(t *testing.T) {
	// (1 + 2) * 3
	expr := &ast.Binary{
		Left: &ast.Grouping{
			Expression: &ast.Binary{
				Left:     &ast.Literal{Value: 1.0},
				Operator: token.Token{Kind: token.PLUS, Lexeme: "+"},
				Right:    &ast.Literal{Value: 2.0},
			},
		},
		Operator: token.Token{Kind: token.STAR, Lexeme: "*"},
		Right:    &ast.Literal{Value: 3.0},
	}

	var sb strings.Builder
	p := &ast.Printer{Output: &sb}
	require.NoError(t, p.Print([]ast.Stmt{&ast.Expression{Expression: expr}}))
	require.Equal(t, "(; (* (group (+ 1 2)) 3))\n", sb.String())
}

func TestPrintVarAndBlock(t *testing.T) {
	block := &ast.Block{Statements: []ast.Stmt{
		&ast.Var{Name: token.Token{Lexeme: "x"}, Initializer: &ast.Literal{Value: 1.0}},
		&ast.Print{Expression: &ast.Variable{Name: token.Token{Lexeme: "x"}}},
	}}

	var sb strings.Builder
	p := &ast.Printer{Output: &sb}
	require.NoError(t, p.Print([]ast.Stmt{block}))
	require.Equal(t, "(block (var x 1) (print x))\n", sb.String())
}
