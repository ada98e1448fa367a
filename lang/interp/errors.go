package interp

import "github.com/mna/lox/lang/token"

// RuntimeError is raised during evaluation and carries the token at the
// error site, per spec.md §7's RuntimeError taxon. It unwinds the
// evaluator's call stack as an ordinary Go error value, with no panic/
// recover involved — the Design Notes' explicit choice over native
// exceptions. The top-level driver type-asserts this to format the
// "<message>\n[line N]" diagnostic spec.md §6 specifies.
type RuntimeError struct {
	Token token.Token
	Msg   string
}

func (e *RuntimeError) Error() string { return e.Msg }

func newRuntimeError(tok token.Token, msg string) error {
	return &RuntimeError{Token: tok, Msg: msg}
}

// controlReturn is the non-error control signal spec.md §7 describes for
// "return": it unwinds exactly to the nearest enclosing function call,
// which converts it into that call's result value. It is modeled as a Go
// error purely so it threads back up through the same execStmt/execBlock
// return channel as RuntimeError; it must never reach, or be reported to,
// Lox code as an error.
type controlReturn struct {
	Value Value
}

func (c *controlReturn) Error() string { return "return outside of a function call (internal)" }
