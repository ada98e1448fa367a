// Package resolver performs the static analysis pass between parsing and
// evaluation: it binds every variable reference to a lexical scope depth,
// stored in a side-table shared with the evaluator, and reports the static
// errors spec.md §4.3 enumerates.
package resolver

import (
	"go/scanner"
	gotoken "go/token"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
)

// Locals maps an expression node (by pointer identity, per the Design Notes'
// resolved Open Question) to the number of environments to walk up from the
// current one to find its binding. An expression absent from Locals is
// resolved against globals at evaluation time.
type Locals map[ast.Expr]int

// Resolve walks stmts, populating and returning the locals side-table. The
// returned error, if non-nil, is guaranteed to be a scanner.ErrorList;
// execution must be suppressed if any static error was reported (spec.md
// §4.3, §7).
func Resolve(stmts []ast.Stmt) (Locals, error) {
	r := &resolver{locals: make(Locals)}
	r.resolveStmts(stmts)
	r.errors.Sort()
	return r.locals, r.errors.Err()
}

type functionKind int

const (
	noFunction functionKind = iota
	inFunction
	inInitializer
	inMethod
)

type classKind int

const (
	noClass classKind = iota
	inClass
	inSubclass
)

type resolver struct {
	scopes []map[string]bool // stack of block scopes; empty stack means global scope
	locals Locals

	currentFunction functionKind
	currentClass    classKind

	errors scanner.ErrorList
}

// errorf records a static error in the spec.md §6 wire format: the
// offending token's "at '<lexeme>'"/"at end" clause, followed by the
// message.
func (r *resolver) errorf(tok token.Token, msg string) {
	r.errors.Add(gotoken.Position{Line: tok.Line}, tok.ErrorContext()+" : "+msg)
}

func (r *resolver) beginScope() { r.scopes = append(r.scopes, map[string]bool{}) }
func (r *resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.errorf(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal searches scopes top-down for name, recording depth =
// top_index - hit_index into locals for expr when found (spec.md §4.3).
func (r *resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
	// not found: treated as global at runtime.
}

func (r *resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveStmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.Expression:
		r.resolveExpr(s.Expression)

	case *ast.Print:
		r.resolveExpr(s.Expression)

	case *ast.Var:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *ast.Block:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()

	case *ast.If:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.While:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)

	case *ast.Function:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, inFunction)

	case *ast.Return:
		if r.currentFunction == noFunction {
			r.errorf(s.Keyword, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFunction == inInitializer {
				r.errorf(s.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}

	case *ast.Class:
		r.resolveClass(s)

	default:
		panic("resolver: unhandled statement type")
	}
}

func (r *resolver) resolveFunction(fn *ast.Function, kind functionKind) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind
	defer func() { r.currentFunction = enclosingFunction }()

	r.beginScope()
	for _, p := range fn.Params {
		r.declare(p)
		r.define(p)
	}
	r.resolveStmts(fn.Body)
	r.endScope()
}

func (r *resolver) resolveClass(c *ast.Class) {
	enclosingClass := r.currentClass
	r.currentClass = inClass
	defer func() { r.currentClass = enclosingClass }()

	r.declare(c.Name)
	r.define(c.Name)

	if c.Superclass != nil {
		if c.Superclass.Name.Lexeme == c.Name.Lexeme {
			r.errorf(c.Superclass.Name, "A class can't inherit from itself.")
		}
		r.currentClass = inSubclass
		r.resolveExpr(c.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, m := range c.Methods {
		kind := inMethod
		if m.Name.Lexeme == "init" {
			kind = inInitializer
		}
		r.resolveFunction(m, kind)
	}

	r.endScope() // "this"
	if c.Superclass != nil {
		r.endScope() // "super"
	}
}

func (r *resolver) resolveExpr(e ast.Expr) {
	switch e := e.(type) {
	case *ast.Literal:
		// no sub-expressions, nothing to resolve

	case *ast.Grouping:
		r.resolveExpr(e.Expression)

	case *ast.Unary:
		r.resolveExpr(e.Right)

	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
				r.errorf(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name)

	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)

	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, a := range e.Arguments {
			r.resolveExpr(a)
		}

	case *ast.Get:
		r.resolveExpr(e.Object)

	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.This:
		if r.currentClass == noClass {
			r.errorf(e.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e, e.Keyword)

	case *ast.Super:
		switch r.currentClass {
		case noClass:
			r.errorf(e.Keyword, "Can't use 'super' outside of a class.")
		case inClass:
			r.errorf(e.Keyword, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e, e.Keyword)

	default:
		panic("resolver: unhandled expression type")
	}
}
