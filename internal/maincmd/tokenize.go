package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/lox/lang/scanner"
	"github.com/mna/mainer"
)

// Tokenize is the "tokenize" debug subcommand: run the scanner over each
// file and print its tokens, one per line.
func (c *Cmd) Tokenize(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return TokenizeFiles(stdio, args...)
}

// TokenizeFiles scans each of files and writes its tokens to stdio.Stdout.
func TokenizeFiles(stdio mainer.Stdio, files ...string) error {
	var lastErr error
	for _, file := range files {
		b, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			lastErr = err
			continue
		}

		toks, err := scanner.Scan(b)
		for _, tok := range toks {
			fmt.Fprintf(stdio.Stdout, "%s %q", tok.Kind, tok.Lexeme)
			if tok.Literal != nil {
				fmt.Fprintf(stdio.Stdout, " %v", tok.Literal)
			}
			fmt.Fprintln(stdio.Stdout)
		}
		if err != nil {
			scanner.PrintError(stdio.Stderr, err)
			lastErr = err
		}
	}
	return lastErr
}
