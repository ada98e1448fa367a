package maincmd

import (
	"context"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/mna/lox/lang/interp"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/mna/mainer"
)

var (
	replPrompt = "lox> "
	errColor   = color.New(color.FgRed)
)

// REPL implements spec.md §6's interactive prompt: read a line at a time,
// execute it against one Interpreter that persists for the life of the
// session (globals stay visible to later lines, per the resolved REPL Open
// Question), and print a goodbye line on end-of-stream or interrupt. Line
// editing and history are grounded on the readline+color REPL pattern from
// the retrieved corpus (akashmaji946/go-mix's repl package), since the
// teacher repository's own REPL is an unimplemented TODO.
func REPL(ctx context.Context, stdio mainer.Stdio) error {
	rl, err := readline.New(replPrompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	it := interp.NewInterpreter(stdio.Stdout)

	for {
		select {
		case <-ctx.Done():
			io.WriteString(stdio.Stdout, "\nGoodbye.\n")
			return nil
		default:
		}

		line, err := rl.Readline()
		if err != nil { // io.EOF (Ctrl-D) or readline.ErrInterrupt (Ctrl-C)
			io.WriteString(stdio.Stdout, "Goodbye.\n")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.SaveHistory(line)

		evalREPLLine(stdio, it, line)
	}
}

// evalREPLLine runs one line of input. A runtime error is reported and the
// prompt resumes; per spec.md §7, failed lines' prior side effects (global
// definitions executed before the failure point) remain visible.
func evalREPLLine(stdio mainer.Stdio, it *interp.Interpreter, line string) {
	stmts, err := parser.Parse([]byte(line))
	if err != nil {
		printStaticErrorsColored(stdio, err)
		return
	}

	locals, err := resolver.Resolve(stmts)
	if err != nil {
		printStaticErrorsColored(stdio, err)
		return
	}

	if err := it.Interpret(stmts, locals); err != nil {
		if rerr, ok := err.(*interp.RuntimeError); ok {
			errColor.Fprintf(stdio.Stderr, "%s\n[line %d]\n", rerr.Msg, rerr.Token.Line)
		} else {
			errColor.Fprintln(stdio.Stderr, err)
		}
	}
}

func printStaticErrorsColored(stdio mainer.Stdio, err error) {
	var ebuf strings.Builder
	printStaticErrors(mainer.Stdio{Stderr: &ebuf}, err)
	errColor.Fprint(stdio.Stderr, ebuf.String())
}
