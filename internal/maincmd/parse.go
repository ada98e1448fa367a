package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/scanner"
	"github.com/mna/mainer"
)

// Parse is the "parse" debug subcommand: run the scanner and parser over
// each file and print the resulting syntax tree.
func (c *Cmd) Parse(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return ParseFiles(stdio, args...)
}

// ParseFiles parses each of files and writes its syntax tree to
// stdio.Stdout.
func ParseFiles(stdio mainer.Stdio, files ...string) error {
	printer := ast.Printer{Output: stdio.Stdout}

	var lastErr error
	for _, file := range files {
		b, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			lastErr = err
			continue
		}

		stmts, err := parser.Parse(b)
		if perr := printer.Print(stmts); perr != nil {
			fmt.Fprintln(stdio.Stderr, perr)
			return perr
		}
		if err != nil {
			scanner.PrintError(stdio.Stderr, err)
			lastErr = err
		}
	}
	return lastErr
}
