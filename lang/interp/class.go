package interp

import (
	"fmt"

	"github.com/dolthub/swiss"
)

// LoxClass is a class value: its name, optional superclass and method
// table (spec.md §4.4's "Classes").
type LoxClass struct {
	name       string
	superclass *LoxClass
	methods    *swiss.Map[string, *LoxFunction]
}

var _ Callable = (*LoxClass)(nil)

// newMethodTable returns an empty method table sized for size entries.
func newMethodTable(size int) *swiss.Map[string, *LoxFunction] {
	return swiss.NewMap[string, *LoxFunction](uint32(size))
}

func (c *LoxClass) Name() string   { return c.name }
func (c *LoxClass) String() string { return c.name }

// findMethod searches the class and then its superclass chain for name
// (spec.md §4.4's "Property access").
func (c *LoxClass) findMethod(name string) (*LoxFunction, bool) {
	if fn, ok := c.methods.Get(name); ok {
		return fn, true
	}
	if c.superclass != nil {
		return c.superclass.findMethod(name)
	}
	return nil, false
}

// Arity is that of "init" if the class (or an ancestor) defines one, else 0
// (spec.md §4.4's "Instantiation").
func (c *LoxClass) Arity() int {
	if init, ok := c.findMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call instantiates the class: a fresh LoxInstance, with "init" (if any)
// bound and invoked with the call arguments.
func (c *LoxClass) Call(it *Interpreter, args []Value) (Value, error) {
	instance := &LoxInstance{class: c, fields: swiss.NewMap[string, Value](4)}
	if init, ok := c.findMethod("init"); ok {
		if _, err := init.bind(instance).Call(it, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// LoxInstance is an instance of a LoxClass: a mutable field map, falling
// back to the class's method table (spec.md §3's "Value").
type LoxInstance struct {
	class  *LoxClass
	fields *swiss.Map[string, Value]
}

func (i *LoxInstance) String() string { return i.class.name + " instance" }

// Get implements spec.md §4.4's "Property access": fields shadow methods; a
// found method is bound to this instance before being returned.
func (i *LoxInstance) Get(name string) (Value, error) {
	if v, ok := i.fields.Get(name); ok {
		return v, nil
	}
	if method, ok := i.class.findMethod(name); ok {
		return method.bind(i), nil
	}
	return nil, fmt.Errorf("Undefined property '%s'.", name)
}

// Set implements spec.md §4.4's "Property assignment".
func (i *LoxInstance) Set(name string, value Value) {
	i.fields.Put(name, value)
}
