package interp

import (
	"fmt"
	"time"
)

// Callable is implemented by any Value that can be the target of a call
// expression: LoxFunction, LoxClass (construction) and native functions.
// Modeled on the teacher's own Callable interface
// (lang/machine/value.go), adapted from its register-machine calling
// convention (CallInternal(thread, args *Tuple)) to the direct recursive
// calling convention a tree-walking evaluator uses.
type Callable interface {
	fmt.Stringer
	Name() string
	Arity() int
	Call(it *Interpreter, args []Value) (Value, error)
}

// nativeFunction wraps a Go function as a Callable, used for the built-ins
// spec.md §4.4/§6 requires (currently just clock()).
type nativeFunction struct {
	name  string
	arity int
	fn    func(it *Interpreter, args []Value) (Value, error)
}

func (n *nativeFunction) Name() string  { return n.name }
func (n *nativeFunction) Arity() int    { return n.arity }
func (n *nativeFunction) String() string { return "<native fn " + n.name + ">" }
func (n *nativeFunction) Call(it *Interpreter, args []Value) (Value, error) {
	return n.fn(it, args)
}

// clockFn implements the native clock() builtin: the number of seconds
// since epoch (spec.md §4.4, §6).
var clockFn = &nativeFunction{
	name:  "clock",
	arity: 0,
	fn: func(_ *Interpreter, _ []Value) (Value, error) {
		return float64(time.Now().UnixNano()) / 1e9, nil
	},
}
