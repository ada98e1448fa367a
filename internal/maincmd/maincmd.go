// Package maincmd wires command-line argument parsing to the interpreter
// pipeline, in the shape the teacher repository's own internal/maincmd
// package uses: a Cmd struct with struct-tag-driven flags parsed by
// github.com/mna/mainer, dispatching by reflection to one
// (context.Context, mainer.Stdio, []string) error method per subcommand.
package maincmd

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mna/mainer"
)

const binName = "lox"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] [<path>]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] [<path>]
       %[1]s tokenize <path>...
       %[1]s parse <path>...
       %[1]s resolve <path>...
       %[1]s -h|--help
       %[1]s -v|--version

Tree-walking interpreter for the Lox programming language.

With a <path> argument, reads and executes that source file. With no
arguments, starts an interactive prompt that reads, executes and echoes one
line at a time until end-of-stream or interrupt.

The debug subcommands run a single stage of the pipeline and print its
output, without executing the program:
       tokenize                 Run the scanner and print the resulting
                                 tokens.
       parse                    Run the scanner and parser and print the
                                 resulting syntax tree.
       resolve                  Run the scanner, parser and resolver and
                                 print the syntax tree alongside any
                                 static errors found.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
`, binName)
)

var debugCommands = map[string]bool{"tokenize": true, "parse": true, "resolve": true}

// Cmd holds the parsed command-line flags and arguments, and the build-time
// version metadata cmd/lox/main.go injects.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	args  []string
	cmdFn func(context.Context, mainer.Stdio, []string) error
}

func (c *Cmd) SetArgs(args []string) { c.args = args }
func (c *Cmd) SetFlags(map[string]bool) {}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}

	if len(c.args) > 0 && debugCommands[c.args[0]] {
		commands := buildCmds(c)
		c.cmdFn = commands[c.args[0]]
		if len(c.args[1:]) == 0 {
			return fmt.Errorf("%s: at least one file must be provided", c.args[0])
		}
		return nil
	}

	if len(c.args) > 1 {
		return fmt.Errorf("too many arguments: %s", strings.Join(c.args[1:], " "))
	}

	c.cmdFn = c.Run
	return nil
}

func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   false,
		EnvPrefix: strings.ToUpper(binName) + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success

	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	cmdArgs := c.args
	if len(cmdArgs) > 0 && debugCommands[cmdArgs[0]] {
		cmdArgs = cmdArgs[1:]
	}
	if err := c.cmdFn(ctx, stdio, cmdArgs); err != nil {
		// each command takes care of printing its own diagnostics; the exit
		// code is what distinguishes static/runtime failure from success
		// (spec.md §6).
		return mainer.Failure
	}
	return mainer.Success
}

// buildCmds collects the methods of v whose shape matches
// func(context.Context, mainer.Stdio, []string) error, keyed by lower-cased
// method name — the teacher's own reflection-based subcommand dispatch.
func buildCmds(v interface{}) map[string]func(context.Context, mainer.Stdio, []string) error {
	cmds := make(map[string]func(context.Context, mainer.Stdio, []string) error)

	vv := reflect.ValueOf(v)
	vt := vv.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		mt := m.Type

		if mt.NumIn() != 4 || mt.NumOut() != 1 {
			continue
		}
		if rt := mt.Out(0); rt.Kind() != reflect.Interface || rt.Name() != "error" {
			continue
		}
		if p0 := mt.In(0); p0.Kind() != reflect.Ptr || p0.Elem().Name() != "Cmd" {
			continue
		}
		if p1 := mt.In(1); p1.Kind() != reflect.Interface || p1.Name() != "Context" {
			continue
		}
		if p2 := mt.In(2); p2.Kind() != reflect.Struct || p2.Name() != "Stdio" {
			continue
		}
		if p3 := mt.In(3); p3.Kind() != reflect.Slice || p3.Elem().Name() != "string" {
			continue
		}
		cmds[strings.ToLower(m.Name)] = vv.Method(i).Interface().(func(context.Context, mainer.Stdio, []string) error)
	}
	return cmds
}
