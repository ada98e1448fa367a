package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/mna/lox/lang/scanner"
	"github.com/mna/mainer"
)

// Resolve is the "resolve" debug subcommand: run the scanner, parser and
// resolver over each file, print the syntax tree, then report any static
// errors the resolver found.
func (c *Cmd) Resolve(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return ResolveFiles(stdio, args...)
}

// ResolveFiles parses and resolves each of files, writing the syntax tree
// to stdio.Stdout and any static errors to stdio.Stderr. As spec.md §4.3
// requires, resolution is skipped entirely if parsing failed.
func ResolveFiles(stdio mainer.Stdio, files ...string) error {
	printer := ast.Printer{Output: stdio.Stdout}

	var lastErr error
	for _, file := range files {
		b, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			lastErr = err
			continue
		}

		stmts, perr := parser.Parse(b)
		if perr != nil {
			scanner.PrintError(stdio.Stderr, perr)
			lastErr = perr
			continue
		}

		if _, rerr := resolver.Resolve(stmts); rerr != nil {
			if err := printer.Print(stmts); err != nil {
				fmt.Fprintln(stdio.Stderr, err)
				return err
			}
			scanner.PrintError(stdio.Stderr, rerr)
			lastErr = rerr
			continue
		}

		if err := printer.Print(stmts); err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			return err
		}
	}
	return lastErr
}
