package maincmd

import (
	"context"
	"fmt"
	"go/scanner"
	"os"

	"github.com/mna/lox/lang/interp"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/mna/mainer"
)

// Run is the default action described in spec.md §6: with a path argument,
// read and execute that file; with none, start the interactive REPL.
func (c *Cmd) Run(ctx context.Context, stdio mainer.Stdio, args []string) error {
	if len(args) == 0 {
		return REPL(ctx, stdio)
	}

	b, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}
	return RunSource(stdio, b)
}

// RunSource parses, resolves and executes src against a fresh Interpreter,
// printing diagnostics to stdio.Stderr in the wire formats spec.md §6
// describes. The returned error is non-nil if any static or runtime error
// occurred (spec.md §7).
func RunSource(stdio mainer.Stdio, src []byte) error {
	stmts, err := parser.Parse(src)
	if err != nil {
		printStaticErrors(stdio, err)
		return err
	}

	locals, err := resolver.Resolve(stmts)
	if err != nil {
		printStaticErrors(stdio, err)
		return err
	}

	it := interp.NewInterpreter(stdio.Stdout)
	if err := it.Interpret(stmts, locals); err != nil {
		printRuntimeError(stdio, err)
		return err
	}
	return nil
}

// printStaticErrors renders each parse/resolve diagnostic as
// "Error: [line: N] at '<lexeme>' : <message>" (spec.md §6); the "at"
// clause is already folded into the message by the parser and resolver.
// Lexical errors from the scanner carry no "at" clause and render as
// "Error: [line: N] <message>".
func printStaticErrors(stdio mainer.Stdio, err error) {
	list, ok := err.(scanner.ErrorList)
	if !ok {
		fmt.Fprintln(stdio.Stderr, err)
		return
	}
	for _, e := range list {
		fmt.Fprintf(stdio.Stderr, "Error: [line: %d] %s\n", e.Pos.Line, e.Msg)
	}
}

// printRuntimeError renders a runtime error as "<message>\n[line N]" per
// spec.md §6.
func printRuntimeError(stdio mainer.Stdio, err error) {
	if rerr, ok := err.(*interp.RuntimeError); ok {
		fmt.Fprintf(stdio.Stderr, "%s\n[line %d]\n", rerr.Msg, rerr.Token.Line)
		return
	}
	fmt.Fprintln(stdio.Stderr, err)
}
