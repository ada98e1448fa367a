package scanner_test

import (
	"testing"

	"github.com/mna/lox/lang/scanner"
	"github.com/mna/lox/lang/token"
	"github.com/stretchr/testify/require"
)

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestScanPunctuationAndOperators(t *testing.T) {
	toks, err := scanner.Scan([]byte("(){},.-+;*!!====<=>=<>/"))
	require.NoError(t, err)
	require.Equal(t, []token.Kind{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.COMMA,
		token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.BANG, token.BANG_EQUAL, token.EQUAL_EQUAL, token.EQUAL,
		token.LESS_EQUAL, token.GREATER_EQUAL, token.LESS, token.GREATER,
		token.SLASH, token.EOF,
	}, kinds(toks))
}

func TestScanStringLiteral(t *testing.T) {
	toks, err := scanner.Scan([]byte(`"hello, world"`))
	require.NoError(t, err)
	require.Len(t, toks, 2)
	require.Equal(t, token.STRING, toks[0].Kind)
	require.Equal(t, "hello, world", toks[0].Literal)
	require.Equal(t, `"hello, world"`, toks[0].Lexeme)
}

func TestScanMultilineString(t *testing.T) {
	toks, err := scanner.Scan([]byte("\"line one\nline two\"\nprint 1;"))
	require.NoError(t, err)
	require.Equal(t, token.STRING, toks[0].Kind)
	require.Equal(t, 1, toks[0].Line)
	// the PRINT keyword is on the third source line, after the embedded newline.
	require.Equal(t, token.PRINT, toks[1].Kind)
	require.Equal(t, 3, toks[1].Line)
}

func TestScanUnterminatedString(t *testing.T) {
	_, err := scanner.Scan([]byte(`"oops`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unterminated string")
}

func TestScanNumbers(t *testing.T) {
	toks, err := scanner.Scan([]byte("123 45.67 0.5 10."))
	require.NoError(t, err)

	require.Equal(t, token.NUMBER, toks[0].Kind)
	require.InDelta(t, 123.0, toks[0].Literal.(float64), 0)

	require.Equal(t, token.NUMBER, toks[1].Kind)
	require.InDelta(t, 45.67, toks[1].Literal.(float64), 0)

	require.Equal(t, token.NUMBER, toks[2].Kind)
	require.InDelta(t, 0.5, toks[2].Literal.(float64), 0)

	// a trailing dot with no following digit is NOT consumed as part of the
	// number literal (spec.md §4.1): "10." scans as NUMBER(10) then DOT.
	require.Equal(t, token.NUMBER, toks[3].Kind)
	require.InDelta(t, 10.0, toks[3].Literal.(float64), 0)
	require.Equal(t, token.DOT, toks[4].Kind)
}

func TestScanIdentifiersAndKeywords(t *testing.T) {
	toks, err := scanner.Scan([]byte("orchid and class classify"))
	require.NoError(t, err)
	require.Equal(t, []token.Kind{
		token.IDENTIFIER, token.AND, token.CLASS, token.IDENTIFIER, token.EOF,
	}, kinds(toks))
}

func TestScanLineComment(t *testing.T) {
	toks, err := scanner.Scan([]byte("1 // this is ignored\n2"))
	require.NoError(t, err)
	require.Equal(t, []token.Kind{token.NUMBER, token.NUMBER, token.EOF}, kinds(toks))
	require.Equal(t, 1, toks[0].Line)
	require.Equal(t, 2, toks[1].Line)
}

func TestScanIllegalCharacter(t *testing.T) {
	_, err := scanner.Scan([]byte("@"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected character")
}

func TestScanTracksLineNumbers(t *testing.T) {
	toks, err := scanner.Scan([]byte("var a = 1;\nvar b = 2;\n"))
	require.NoError(t, err)
	require.Equal(t, 1, toks[0].Line) // var
	require.Equal(t, 2, toks[5].Line) // second var
}

func TestScanEmptySourceYieldsOnlyEOF(t *testing.T) {
	toks, err := scanner.Scan(nil)
	require.NoError(t, err)
	require.Equal(t, []token.Kind{token.EOF}, kinds(toks))
}
