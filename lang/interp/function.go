package interp

import (
	"fmt"

	"github.com/mna/lox/lang/ast"
)

// LoxFunction is a user-defined function or method: the declaration plus
// the environment captured as its closure at declaration time (spec.md
// §4.4's "Functions").
type LoxFunction struct {
	declaration   *ast.Function
	closure       *Environment
	isInitializer bool
}

var _ Callable = (*LoxFunction)(nil)

func (f *LoxFunction) Name() string   { return f.declaration.Name.Lexeme }
func (f *LoxFunction) Arity() int     { return len(f.declaration.Params) }
func (f *LoxFunction) String() string { return fmt.Sprintf("<fn %s>", f.declaration.Name.Lexeme) }

// bind returns a new LoxFunction whose closure is a fresh environment,
// child of f's own closure, binding "this" to instance — the method
// binding protocol of spec.md §4.4's "Property access".
func (f *LoxFunction) bind(instance *LoxInstance) *LoxFunction {
	env := NewEnvironment(f.closure)
	env.Define("this", instance)
	return &LoxFunction{declaration: f.declaration, closure: env, isInitializer: f.isInitializer}
}

// Call implements spec.md §4.4: bind each parameter by name in a fresh
// child of the closure, execute the body as a block, and unwrap a
// controlReturn signal into its value (nil if the body falls off the end).
// An Initializer's return value is always the instance captured at ancestor
// 0 of its closure, regardless of any bare "return".
func (f *LoxFunction) Call(it *Interpreter, args []Value) (Value, error) {
	env := NewEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := it.execBlock(f.declaration.Body, env)
	if ret, ok := err.(*controlReturn); ok {
		if f.isInitializer {
			return f.closure.GetAt(0, "this")
		}
		return ret.Value, nil
	}
	if err != nil {
		return nil, err
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this")
	}
	return nil, nil
}
