// Package scanner turns Lox source text into a sequence of tokens for the
// parser to consume.
package scanner

import (
	"go/scanner"
	"go/token"
	"strconv"
	"unicode/utf8"

	loxtoken "github.com/mna/lox/lang/token"
)

// Error and ErrorList are the standard library's own diagnostic-collection
// types, reused here (and by the parser and resolver) exactly as the teacher
// repository reuses them for its own scanner.
type (
	Error     = scanner.Error
	ErrorList = scanner.ErrorList
)

// PrintError prints each error in err (a single error or an ErrorList) to w,
// one per line.
var PrintError = scanner.PrintError

// Scan tokenizes src in full and returns the resulting tokens, always ending
// with an EOF token. The returned error, if non-nil, is guaranteed to be an
// ErrorList; the scanner does not stop at the first lexical error, but the
// overall run must still be aborted if any error was reported (spec.md
// §4.1).
func Scan(src []byte) ([]loxtoken.Token, error) {
	var s Scanner
	var errs ErrorList
	s.Init(src, errs.Add)

	var toks []loxtoken.Token
	for {
		tok := s.Scan()
		toks = append(toks, tok)
		if tok.Kind == loxtoken.EOF {
			break
		}
	}
	errs.Sort()
	return toks, errs.Err()
}

// Scanner tokenizes a single Lox source buffer, one token at a time.
type Scanner struct {
	// immutable after Init
	src []byte
	err func(token.Position, string)

	// mutable scanning state
	cur  rune // current character, -1 at end of file
	off  int  // byte offset of cur
	roff int  // byte offset following cur
	line int  // 1-based line of cur
}

// Init (re)initializes the scanner to tokenize src, reporting lexical errors
// to errHandler.
func (s *Scanner) Init(src []byte, errHandler func(token.Position, string)) {
	s.src = src
	s.err = errHandler
	s.cur = ' '
	s.off = 0
	s.roff = 0
	s.line = 1
	s.advance()
}

// peek returns the byte following the current character without advancing
// the scanner, or 0 at end of file. Lox's grammar never needs more than this
// single byte of extra lookahead (spec.md §4.1).
func (s *Scanner) peek() byte {
	if s.roff < len(s.src) {
		return s.src[s.roff]
	}
	return 0
}

func (s *Scanner) advance() {
	if s.cur == '\n' {
		s.line++
	}
	if s.roff >= len(s.src) {
		s.off = len(s.src)
		s.cur = -1
		return
	}

	s.off = s.roff
	r, w := rune(s.src[s.roff]), 1
	if r >= utf8.RuneSelf {
		r, w = utf8.DecodeRune(s.src[s.roff:])
	}
	s.roff += w
	s.cur = r
}

// advanceIf advances and returns true if the current character equals want.
func (s *Scanner) advanceIf(want byte) bool {
	if s.cur == rune(want) {
		s.advance()
		return true
	}
	return false
}

func (s *Scanner) error(line int, msg string) {
	if s.err != nil {
		s.err(token.Position{Line: line}, msg)
	}
}

// Scan returns the next token. Once EOF has been returned, further calls
// keep returning EOF.
func (s *Scanner) Scan() loxtoken.Token {
	s.skipWhitespaceAndComments()

	line := s.line
	start := s.off

	switch cur := s.cur; {
	case cur == -1:
		return loxtoken.Token{Kind: loxtoken.EOF, Line: line}

	case isDigit(cur):
		return s.number(start, line)

	case isAlpha(cur):
		return s.identifier(start, line)

	case cur == '"':
		return s.string(start, line)
	}

	cur := s.cur
	s.advance()
	lexeme := func() string { return string(s.src[start:s.off]) }

	switch cur {
	case '(':
		return loxtoken.Token{Kind: loxtoken.LPAREN, Lexeme: lexeme(), Line: line}
	case ')':
		return loxtoken.Token{Kind: loxtoken.RPAREN, Lexeme: lexeme(), Line: line}
	case '{':
		return loxtoken.Token{Kind: loxtoken.LBRACE, Lexeme: lexeme(), Line: line}
	case '}':
		return loxtoken.Token{Kind: loxtoken.RBRACE, Lexeme: lexeme(), Line: line}
	case ',':
		return loxtoken.Token{Kind: loxtoken.COMMA, Lexeme: lexeme(), Line: line}
	case '.':
		return loxtoken.Token{Kind: loxtoken.DOT, Lexeme: lexeme(), Line: line}
	case '-':
		return loxtoken.Token{Kind: loxtoken.MINUS, Lexeme: lexeme(), Line: line}
	case '+':
		return loxtoken.Token{Kind: loxtoken.PLUS, Lexeme: lexeme(), Line: line}
	case ';':
		return loxtoken.Token{Kind: loxtoken.SEMICOLON, Lexeme: lexeme(), Line: line}
	case '*':
		return loxtoken.Token{Kind: loxtoken.STAR, Lexeme: lexeme(), Line: line}
	case '/':
		// a comment ("//...") is consumed by skipWhitespaceAndComments; reaching
		// here means a bare division operator.
		return loxtoken.Token{Kind: loxtoken.SLASH, Lexeme: lexeme(), Line: line}

	case '!':
		if s.advanceIf('=') {
			return loxtoken.Token{Kind: loxtoken.BANG_EQUAL, Lexeme: lexeme(), Line: line}
		}
		return loxtoken.Token{Kind: loxtoken.BANG, Lexeme: lexeme(), Line: line}
	case '=':
		if s.advanceIf('=') {
			return loxtoken.Token{Kind: loxtoken.EQUAL_EQUAL, Lexeme: lexeme(), Line: line}
		}
		return loxtoken.Token{Kind: loxtoken.EQUAL, Lexeme: lexeme(), Line: line}
	case '<':
		if s.advanceIf('=') {
			return loxtoken.Token{Kind: loxtoken.LESS_EQUAL, Lexeme: lexeme(), Line: line}
		}
		return loxtoken.Token{Kind: loxtoken.LESS, Lexeme: lexeme(), Line: line}
	case '>':
		if s.advanceIf('=') {
			return loxtoken.Token{Kind: loxtoken.GREATER_EQUAL, Lexeme: lexeme(), Line: line}
		}
		return loxtoken.Token{Kind: loxtoken.GREATER, Lexeme: lexeme(), Line: line}

	default:
		s.error(line, "unexpected character.")
		return loxtoken.Token{Kind: loxtoken.ILLEGAL, Lexeme: lexeme(), Line: line}
	}
}

func (s *Scanner) skipWhitespaceAndComments() {
	for {
		switch s.cur {
		case ' ', '\t', '\r', '\n':
			s.advance()
		case '/':
			if s.peek() != '/' {
				return
			}
			for s.cur != '\n' && s.cur != -1 {
				s.advance()
			}
		default:
			return
		}
	}
}

func (s *Scanner) string(start, line int) loxtoken.Token {
	s.advance() // opening quote
	for s.cur != '"' && s.cur != -1 {
		s.advance() // embedded '\n' is counted by advance
	}
	if s.cur == -1 {
		s.error(line, "unterminated string.")
		return loxtoken.Token{Kind: loxtoken.ILLEGAL, Lexeme: string(s.src[start:s.off]), Line: line}
	}
	s.advance() // closing quote

	lexeme := string(s.src[start:s.off])
	value := lexeme[1 : len(lexeme)-1] // no escape interpretation, spec.md §4.1
	return loxtoken.Token{Kind: loxtoken.STRING, Lexeme: lexeme, Literal: value, Line: line}
}

func (s *Scanner) number(start, line int) loxtoken.Token {
	for isDigit(s.cur) {
		s.advance()
	}
	if s.cur == '.' && isDigit(rune(s.peek())) {
		s.advance() // the '.'
		for isDigit(s.cur) {
			s.advance()
		}
	}

	lexeme := string(s.src[start:s.off])
	v, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		s.error(line, "invalid number literal.")
	}
	return loxtoken.Token{Kind: loxtoken.NUMBER, Lexeme: lexeme, Literal: v, Line: line}
}

func (s *Scanner) identifier(start, line int) loxtoken.Token {
	for isAlpha(s.cur) || isDigit(s.cur) {
		s.advance()
	}
	lexeme := string(s.src[start:s.off])
	return loxtoken.Token{Kind: loxtoken.LookupIdent(lexeme), Lexeme: lexeme, Line: line}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isAlpha(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
