// Package ast defines the Lox abstract syntax tree: one Go interface per
// tagged-sum family (Expr, Stmt) and one pointer-receiver struct per
// variant, dispatched by the parser, resolver and evaluator via type
// switches.
package ast

import "github.com/mna/lox/lang/token"

// Expr is any Lox expression node. Each concrete type's pointer identity is
// stable for the lifetime of a run and is used directly as the resolver's
// locals side-table key (see lang/resolver).
type Expr interface {
	exprNode()
}

type (
	// Literal is a literal value: a number, string, true, false or nil.
	Literal struct {
		Value any // nil | float64 | string | bool
	}

	// Grouping is a parenthesized expression, e.g. (1 + 2).
	Grouping struct {
		Expression Expr
	}

	// Unary is a prefix unary expression, e.g. -x or !x.
	Unary struct {
		Operator token.Token // MINUS or BANG
		Right    Expr
	}

	// Binary is an arithmetic, comparison or equality expression, e.g. x + y.
	Binary struct {
		Left     Expr
		Operator token.Token
		Right    Expr
	}

	// Logical is a short-circuiting "and"/"or" expression.
	Logical struct {
		Left     Expr
		Operator token.Token // AND or OR
		Right    Expr
	}

	// Variable is a reference to a named variable, e.g. x.
	Variable struct {
		Name token.Token
	}

	// Assign is an assignment expression, e.g. x = 1.
	Assign struct {
		Name  token.Token
		Value Expr
	}

	// Call is a function or method call, e.g. f(1, 2).
	Call struct {
		Callee    Expr
		Paren     token.Token // closing ')', used for runtime error locations
		Arguments []Expr
	}

	// Get is a property access, e.g. obj.field.
	Get struct {
		Object Expr
		Name   token.Token
	}

	// Set is a property assignment, e.g. obj.field = 1.
	Set struct {
		Object Expr
		Name   token.Token
		Value  Expr
	}

	// This is a reference to the current instance inside a method body.
	This struct {
		Keyword token.Token
	}

	// Super is a "super.method" reference inside a subclass method body.
	Super struct {
		Keyword token.Token
		Method  token.Token
	}
)

func (*Literal) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Logical) exprNode()  {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}
func (*Call) exprNode()     {}
func (*Get) exprNode()      {}
func (*Set) exprNode()      {}
func (*This) exprNode()     {}
func (*Super) exprNode()    {}
