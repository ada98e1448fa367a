package interp

import (
	"fmt"
	"io"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/resolver"
	"github.com/mna/lox/lang/token"
)

// Interpreter executes a resolved AST. A single Interpreter is meant to be
// reused across an entire run — a file's statements, or every line the REPL
// reads — so that globals persist for the process's lifetime (the resolved
// REPL Open Question in SPEC_FULL.md).
type Interpreter struct {
	globals *Environment
	env     *Environment
	locals  resolver.Locals

	// Stdout receives "print" output, per spec.md §6.
	Stdout io.Writer
}

// NewInterpreter creates an Interpreter whose globals are pre-populated
// with clock() (spec.md §4.4).
func NewInterpreter(stdout io.Writer) *Interpreter {
	globals := NewEnvironment(nil)
	globals.Define("clock", clockFn)
	return &Interpreter{globals: globals, env: globals, locals: make(resolver.Locals), Stdout: stdout}
}

// Interpret executes stmts using the locals side-table the resolver
// produced for them. Entries are merged into the Interpreter's own
// persistent locals table rather than replacing it, so that a REPL reusing
// one Interpreter across lines (SPEC_FULL.md's REPL semantics) keeps the
// depths resolved for closures defined on earlier lines when those
// closures are later called. The returned error, if non-nil, is either a
// *RuntimeError (spec.md §7) or an error from Stdout's Write.
func (it *Interpreter) Interpret(stmts []ast.Stmt, locals resolver.Locals) error {
	for e, d := range locals {
		it.locals[e] = d
	}
	for _, s := range stmts {
		if err := it.execStmt(s); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) execStmt(s ast.Stmt) error {
	switch s := s.(type) {
	case *ast.Expression:
		_, err := it.evalExpr(s.Expression)
		return err

	case *ast.Print:
		v, err := it.evalExpr(s.Expression)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(it.Stdout, stringify(v))
		return err

	case *ast.Var:
		var v Value
		if s.Initializer != nil {
			var err error
			v, err = it.evalExpr(s.Initializer)
			if err != nil {
				return err
			}
		}
		it.env.Define(s.Name.Lexeme, v)
		return nil

	case *ast.Block:
		return it.execBlock(s.Statements, NewEnvironment(it.env))

	case *ast.If:
		cond, err := it.evalExpr(s.Condition)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return it.execStmt(s.Then)
		} else if s.Else != nil {
			return it.execStmt(s.Else)
		}
		return nil

	case *ast.While:
		for {
			cond, err := it.evalExpr(s.Condition)
			if err != nil {
				return err
			}
			if !isTruthy(cond) {
				return nil
			}
			if err := it.execStmt(s.Body); err != nil {
				return err
			}
		}

	case *ast.Function:
		fn := &LoxFunction{declaration: s, closure: it.env}
		it.env.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.Return:
		var v Value
		if s.Value != nil {
			var err error
			v, err = it.evalExpr(s.Value)
			if err != nil {
				return err
			}
		}
		return &controlReturn{Value: v}

	case *ast.Class:
		return it.execClass(s)

	default:
		panic("interp: unhandled statement type")
	}
}

// execBlock runs stmts in env, always restoring the interpreter's previous
// environment on exit — including exceptional exits via return or a runtime
// error (spec.md §4.4's "Blocks", and the scope-restoration invariant in §8).
func (it *Interpreter) execBlock(stmts []ast.Stmt, env *Environment) error {
	previous := it.env
	it.env = env
	defer func() { it.env = previous }()

	for _, s := range stmts {
		if err := it.execStmt(s); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) execClass(c *ast.Class) error {
	var superclass *LoxClass
	if c.Superclass != nil {
		v, err := it.evalExpr(c.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*LoxClass)
		if !ok {
			return newRuntimeError(c.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	it.env.Define(c.Name.Lexeme, nil)

	methodEnv := it.env
	if superclass != nil {
		methodEnv = NewEnvironment(it.env)
		methodEnv.Define("super", superclass)
	}

	methods := newMethodTable(len(c.Methods))
	for _, m := range c.Methods {
		fn := &LoxFunction{declaration: m, closure: methodEnv, isInitializer: m.Name.Lexeme == "init"}
		methods.Put(m.Name.Lexeme, fn)
	}

	class := &LoxClass{name: c.Name.Lexeme, superclass: superclass, methods: methods}
	return it.env.Assign(c.Name.Lexeme, class)
}

func (it *Interpreter) evalExpr(e ast.Expr) (Value, error) {
	switch e := e.(type) {
	case *ast.Literal:
		return e.Value, nil

	case *ast.Grouping:
		return it.evalExpr(e.Expression)

	case *ast.Unary:
		right, err := it.evalExpr(e.Right)
		if err != nil {
			return nil, err
		}
		switch e.Operator.Kind {
		case token.MINUS:
			n, ok := right.(float64)
			if !ok {
				return nil, newRuntimeError(e.Operator, "Operand must be a number.")
			}
			return -n, nil
		case token.BANG:
			return !isTruthy(right), nil
		}
		panic("interp: unhandled unary operator")

	case *ast.Binary:
		return it.evalBinary(e)

	case *ast.Logical:
		left, err := it.evalExpr(e.Left)
		if err != nil {
			return nil, err
		}
		if e.Operator.Kind == token.OR {
			if isTruthy(left) {
				return left, nil
			}
		} else if !isTruthy(left) {
			return left, nil
		}
		return it.evalExpr(e.Right)

	case *ast.Variable:
		return it.lookupVariable(e.Name, e)

	case *ast.Assign:
		v, err := it.evalExpr(e.Value)
		if err != nil {
			return nil, err
		}
		if dist, ok := it.locals[e]; ok {
			it.env.AssignAt(dist, e.Name.Lexeme, v)
		} else if err := it.globals.Assign(e.Name.Lexeme, v); err != nil {
			return nil, newRuntimeError(e.Name, err.Error())
		}
		return v, nil

	case *ast.Call:
		return it.evalCall(e)

	case *ast.Get:
		obj, err := it.evalExpr(e.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*LoxInstance)
		if !ok {
			return nil, newRuntimeError(e.Name, "Only instances have properties.")
		}
		v, err := inst.Get(e.Name.Lexeme)
		if err != nil {
			return nil, newRuntimeError(e.Name, err.Error())
		}
		return v, nil

	case *ast.Set:
		obj, err := it.evalExpr(e.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*LoxInstance)
		if !ok {
			return nil, newRuntimeError(e.Name, "Only instances have fields.")
		}
		v, err := it.evalExpr(e.Value)
		if err != nil {
			return nil, err
		}
		inst.Set(e.Name.Lexeme, v)
		return v, nil

	case *ast.This:
		return it.lookupVariable(e.Keyword, e)

	case *ast.Super:
		return it.evalSuper(e)

	default:
		panic("interp: unhandled expression type")
	}
}

func (it *Interpreter) lookupVariable(name token.Token, expr ast.Expr) (Value, error) {
	if dist, ok := it.locals[expr]; ok {
		return it.env.GetAt(dist, name.Lexeme)
	}
	v, err := it.globals.Get(name.Lexeme)
	if err != nil {
		return nil, newRuntimeError(name, err.Error())
	}
	return v, nil
}

func (it *Interpreter) evalBinary(e *ast.Binary) (Value, error) {
	left, err := it.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case token.MINUS, token.SLASH, token.STAR, token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL:
		ln, lok := left.(float64)
		rn, rok := right.(float64)
		if !lok || !rok {
			return nil, newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		switch e.Operator.Kind {
		case token.MINUS:
			return ln - rn, nil
		case token.SLASH:
			return ln / rn, nil
		case token.STAR:
			return ln * rn, nil
		case token.GREATER:
			return ln > rn, nil
		case token.GREATER_EQUAL:
			return ln >= rn, nil
		case token.LESS:
			return ln < rn, nil
		case token.LESS_EQUAL:
			return ln <= rn, nil
		}

	case token.PLUS:
		if ln, ok := left.(float64); ok {
			if rn, ok := right.(float64); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
		}
		return nil, newRuntimeError(e.Operator, "Operands must be two numbers or two strings.")

	case token.BANG_EQUAL:
		return !isEqual(left, right), nil
	case token.EQUAL_EQUAL:
		return isEqual(left, right), nil
	}

	panic("interp: unhandled binary operator")
}

func (it *Interpreter) evalCall(e *ast.Call) (Value, error) {
	callee, err := it.evalExpr(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Arguments))
	for i, a := range e.Arguments {
		v, err := it.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, newRuntimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, newRuntimeError(e.Paren, fmt.Sprintf("Expected %d arguments but got %d.", callable.Arity(), len(args)))
	}
	return callable.Call(it, args)
}

// evalSuper implements spec.md §4.4's "super.method": with resolver-recorded
// depth d, the superclass is bound to "super" at ancestor d, and "this" is
// at ancestor d-1.
func (it *Interpreter) evalSuper(e *ast.Super) (Value, error) {
	dist := it.locals[e]
	superVal, err := it.env.GetAt(dist, "super")
	if err != nil {
		return nil, err
	}
	superclass := superVal.(*LoxClass)

	thisVal, err := it.env.GetAt(dist-1, "this")
	if err != nil {
		return nil, err
	}
	instance := thisVal.(*LoxInstance)

	method, ok := superclass.findMethod(e.Method.Lexeme)
	if !ok {
		return nil, newRuntimeError(e.Method, fmt.Sprintf("Undefined property '%s'.", e.Method.Lexeme))
	}
	return method.bind(instance), nil
}
