package interp

import (
	"fmt"

	"github.com/dolthub/swiss"
)

// Environment is a chain of lexical scopes backed by the teacher's own hash
// map choice (github.com/dolthub/swiss, used by the teacher for its Lua-like
// Map value type in lang/machine/map.go) instead of a plain Go map, wiring
// that dependency into this evaluator's variable bindings, instance field
// maps and class method tables.
type Environment struct {
	enclosing *Environment
	values    *swiss.Map[string, Value]
}

// NewEnvironment creates a child environment of enclosing, or a root
// environment if enclosing is nil.
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{
		enclosing: enclosing,
		values:    swiss.NewMap[string, Value](8),
	}
}

// Define binds name to value in this environment, shadowing any binding of
// the same name in an enclosing environment.
func (e *Environment) Define(name string, value Value) {
	e.values.Put(name, value)
}

// Get returns the value bound to name in this environment or an ancestor,
// or a runtime error "Undefined variable 'name'." if name is bound nowhere
// in the chain (spec.md §4.4).
func (e *Environment) Get(name string) (Value, error) {
	if v, ok := e.values.Get(name); ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, fmt.Errorf("Undefined variable '%s'.", name)
}

// Assign stores value into the nearest environment in the chain that
// already has a binding for name, or returns a runtime error if none does
// (spec.md §4.4).
func (e *Environment) Assign(name string, value Value) error {
	if _, ok := e.values.Get(name); ok {
		e.values.Put(name, value)
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return fmt.Errorf("Undefined variable '%s'.", name)
}

// ancestor walks up distance environments from e.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt reads name directly from the environment distance levels up the
// chain, used when the resolver has recorded a local depth for the
// reference (spec.md §4.4).
func (e *Environment) GetAt(distance int, name string) (Value, error) {
	v, _ := e.ancestor(distance).values.Get(name)
	return v, nil
}

// AssignAt writes value directly into the environment distance levels up
// the chain.
func (e *Environment) AssignAt(distance int, name string, value Value) {
	e.ancestor(distance).values.Put(name, value)
}
