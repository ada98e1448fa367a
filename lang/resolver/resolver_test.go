package resolver_test

import (
	"testing"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	stmts, err := parser.Parse([]byte(src))
	require.NoError(t, err)
	return stmts
}

func TestResolveLocalDepth(t *testing.T) {
	stmts := mustParse(t, `
		var a = 1;
		{
			var b = 2;
			print a + b;
		}
	`)
	locals, err := resolver.Resolve(stmts)
	require.NoError(t, err)

	block := stmts[1].(*ast.Block)
	printStmt := block.Statements[1].(*ast.Print)
	bin := printStmt.Expression.(*ast.Binary)

	// "a" is declared in the global scope, so it is not in locals.
	_, ok := locals[bin.Left]
	require.False(t, ok)

	// "b" is declared one block in, so depth 0 from the print's own scope.
	depth, ok := locals[bin.Right]
	require.True(t, ok)
	require.Equal(t, 0, depth)
}

func TestResolveOwnInitializerIsError(t *testing.T) {
	stmts := mustParse(t, `{ var a = a; }`)
	_, err := resolver.Resolve(stmts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "own initializer")
}

func TestResolveRedeclarationInSameScope(t *testing.T) {
	stmts := mustParse(t, `{ var a = 1; var a = 2; }`)
	_, err := resolver.Resolve(stmts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Already a variable")
}

func TestResolveReturnOutsideFunction(t *testing.T) {
	stmts := mustParse(t, `return 1;`)
	_, err := resolver.Resolve(stmts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Can't return from top-level code")
}

func TestResolveReturnValueFromInitializer(t *testing.T) {
	stmts := mustParse(t, `
		class Foo {
			init() { return 1; }
		}
	`)
	_, err := resolver.Resolve(stmts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "return a value from an initializer")
}

func TestResolveThisOutsideClass(t *testing.T) {
	stmts := mustParse(t, `print this;`)
	_, err := resolver.Resolve(stmts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "'this' outside of a class")
}

func TestResolveSuperWithoutSuperclass(t *testing.T) {
	stmts := mustParse(t, `
		class Foo {
			bar() { super.bar(); }
		}
	`)
	_, err := resolver.Resolve(stmts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "class with no superclass")
}

func TestResolveClassInheritsFromItself(t *testing.T) {
	stmts := mustParse(t, `class Foo < Foo {}`)
	_, err := resolver.Resolve(stmts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "inherit from itself")
}

func TestResolveValidSuperclassMethodLookup(t *testing.T) {
	stmts := mustParse(t, `
		class A { greet() { print "hi"; } }
		class B < A {
			greet() { super.greet(); }
		}
	`)
	_, err := resolver.Resolve(stmts)
	require.NoError(t, err)
}
