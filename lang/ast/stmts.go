package ast

import "github.com/mna/lox/lang/token"

// Stmt is any Lox statement node.
type Stmt interface {
	stmtNode()
}

type (
	// Expression is an expression-statement, e.g. a call used for its side
	// effect: f();
	Expression struct {
		Expression Expr
	}

	// Print is the "print expr;" statement.
	Print struct {
		Expression Expr
	}

	// Var is a "var name = initializer;" declaration. Initializer is nil if
	// the declaration has no initializer, in which case the variable is bound
	// to nil.
	Var struct {
		Name        token.Token
		Initializer Expr // nil if absent
	}

	// Block is a "{ ... }" statement list, introducing a new lexical scope.
	Block struct {
		Statements []Stmt
	}

	// If is an "if (cond) then [else else]" statement. Else is nil if absent.
	If struct {
		Condition Expr
		Then      Stmt
		Else      Stmt // nil if absent
	}

	// While is a "while (cond) body" statement. For-loops are desugared into
	// this by the parser (spec.md §4.2).
	While struct {
		Condition Expr
		Body      Stmt
	}

	// Function is a "fun name(params) { body }" declaration, or a method
	// inside a Class declaration's Methods list (which has no leading "fun").
	Function struct {
		Name   token.Token
		Params []token.Token
		Body   []Stmt
	}

	// Return is a "return [expr];" statement. Value is nil if absent, in
	// which case the function returns nil.
	Return struct {
		Keyword token.Token
		Value   Expr // nil if absent
	}

	// Class is a "class Name [< Superclass] { methods }" declaration.
	Class struct {
		Name       token.Token
		Superclass *Variable // nil if no superclass
		Methods    []*Function
	}
)

func (*Expression) stmtNode() {}
func (*Print) stmtNode()      {}
func (*Var) stmtNode()        {}
func (*Block) stmtNode()      {}
func (*If) stmtNode()         {}
func (*While) stmtNode()      {}
func (*Function) stmtNode()   {}
func (*Return) stmtNode()     {}
func (*Class) stmtNode()      {}
