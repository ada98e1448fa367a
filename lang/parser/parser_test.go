package parser_test

import (
	"testing"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/parser"
	"github.com/stretchr/testify/require"
)

func TestParseExpressionStatement(t *testing.T) {
	stmts, err := parser.Parse([]byte(`1 + 2 * 3;`))
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	exprStmt, ok := stmts[0].(*ast.Expression)
	require.True(t, ok)

	bin, ok := exprStmt.Expression.(*ast.Binary)
	require.True(t, ok)
	require.Equal(t, "+", bin.Operator.Lexeme)

	right, ok := bin.Right.(*ast.Binary)
	require.True(t, ok)
	require.Equal(t, "*", right.Operator.Lexeme)
}

func TestParseVarDeclaration(t *testing.T) {
	stmts, err := parser.Parse([]byte(`var x = 1;`))
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	v, ok := stmts[0].(*ast.Var)
	require.True(t, ok)
	require.Equal(t, "x", v.Name.Lexeme)
	require.NotNil(t, v.Initializer)
}

func TestParseForDesugarsToWhile(t *testing.T) {
	stmts, err := parser.Parse([]byte(`for (var i = 0; i < 3; i = i + 1) print i;`))
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	outer, ok := stmts[0].(*ast.Block)
	require.True(t, ok)
	require.Len(t, outer.Statements, 2)
	require.IsType(t, &ast.Var{}, outer.Statements[0])

	while, ok := outer.Statements[1].(*ast.While)
	require.True(t, ok)

	body, ok := while.Body.(*ast.Block)
	require.True(t, ok)
	require.Len(t, body.Statements, 2)
	require.IsType(t, &ast.Print{}, body.Statements[0])
	require.IsType(t, &ast.Expression{}, body.Statements[1])
}

func TestParseAssignmentTarget(t *testing.T) {
	stmts, err := parser.Parse([]byte(`x = 1;`))
	require.NoError(t, err)

	exprStmt := stmts[0].(*ast.Expression)
	assign, ok := exprStmt.Expression.(*ast.Assign)
	require.True(t, ok)
	require.Equal(t, "x", assign.Name.Lexeme)
}

func TestParseInvalidAssignmentTarget(t *testing.T) {
	_, err := parser.Parse([]byte(`1 + 2 = 3;`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Invalid assignment target")
}

func TestParseClassWithSuperclassAndMethods(t *testing.T) {
	stmts, err := parser.Parse([]byte(`
		class Animal {
			speak() { print "..."; }
		}
		class Dog < Animal {
			speak() { print "woof"; }
		}
	`))
	require.NoError(t, err)
	require.Len(t, stmts, 2)

	dog, ok := stmts[1].(*ast.Class)
	require.True(t, ok)
	require.Equal(t, "Dog", dog.Name.Lexeme)
	require.NotNil(t, dog.Superclass)
	require.Equal(t, "Animal", dog.Superclass.Name.Lexeme)
	require.Len(t, dog.Methods, 1)
}

func TestParseMissingSemicolonIsError(t *testing.T) {
	_, err := parser.Parse([]byte(`
		var a = 1
		var b = 2;
	`))
	require.Error(t, err)
}

func TestParseCallAndPropertyChain(t *testing.T) {
	stmts, err := parser.Parse([]byte(`a.b(1, 2).c;`))
	require.NoError(t, err)

	exprStmt := stmts[0].(*ast.Expression)
	get, ok := exprStmt.Expression.(*ast.Get)
	require.True(t, ok)
	require.Equal(t, "c", get.Name.Lexeme)

	call, ok := get.Object.(*ast.Call)
	require.True(t, ok)
	require.Len(t, call.Arguments, 2)
}
