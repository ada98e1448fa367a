// Package interp is the tree-walking evaluator: it executes the AST
// directly using the resolver's locals side-table, maintaining the runtime
// value model described in spec.md §3-§4.4.
package interp

import (
	"fmt"
	"strconv"
)

// Value is any runtime Lox value: nil, a bool, a float64 number, a string,
// a Callable (*LoxFunction, *LoxClass or a native function) or a
// *LoxInstance. It is a plain alias of any, with no methods of its own;
// truthiness, equality and printing are the free functions below.
type Value = any

// isTruthy implements spec.md §4.4: nil and false are falsey, everything
// else (including 0 and "") is truthy.
func isTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// isEqual implements spec.md §4.4's value equality: nil only equals nil;
// otherwise structural equality per tagged type (numbers, strings, bools by
// value, callables/instances by identity).
func isEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

// stringify renders v the way "print" does (spec.md §4.4): nil -> "nil",
// booleans -> "true"/"false", integral numbers with no trailing ".0",
// strings without quotes.
func stringify(v Value) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		s := strconv.FormatFloat(v, 'f', -1, 64)
		return s
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return "?"
	}
}
