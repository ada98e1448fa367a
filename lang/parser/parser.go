// Package parser implements the recursive-descent parser that turns a Lox
// token stream into an AST of declarations and statements.
package parser

import (
	"errors"
	gotoken "go/token"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/scanner"
	"github.com/mna/lox/lang/token"
)

const maxArgs = 255

// Parse tokenizes and parses src in full, returning the top-level
// declarations. The returned error, if non-nil, is guaranteed to be a
// scanner.ErrorList; on any lexical or parse error the whole run must be
// aborted before resolution/execution (spec.md §4.2, §7).
func Parse(src []byte) ([]ast.Stmt, error) {
	toks, err := scanner.Scan(src)

	var p parser
	p.toks = toks
	p.advance()

	var stmts []ast.Stmt
	for !p.check(token.EOF) {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}

	p.errors.Sort()
	if err != nil {
		var list scanner.ErrorList
		if le, ok := err.(scanner.ErrorList); ok {
			list = le
		}
		list = append(list, p.errors...)
		list.Sort()
		return stmts, list.Err()
	}
	return stmts, p.errors.Err()
}

// errPanicMode is panicked by p.expect on a missing token and recovered at
// the declaration level, where the parser resynchronizes and resumes — the
// same panic/recover idiom the teacher repository uses for its own
// panic-mode error recovery.
var errPanicMode = errors.New("panic")

type parser struct {
	toks []token.Token
	pos  int // index into toks of the current token
	cur  token.Token

	errors scanner.ErrorList
}

func (p *parser) advance() token.Token {
	prev := p.cur
	if p.pos < len(p.toks) {
		p.cur = p.toks[p.pos]
		p.pos++
	}
	return prev
}

func (p *parser) check(k token.Kind) bool { return p.cur.Kind == k }

func (p *parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes and returns the current token if it has kind k, otherwise
// records a diagnostic and panics with errPanicMode.
func (p *parser) expect(k token.Kind, msg string) token.Token {
	if p.check(k) {
		return p.advance()
	}
	p.errorAtCurrent(msg)
	panic(errPanicMode)
}

func (p *parser) errorAtCurrent(msg string) {
	p.errorAt(p.cur, msg)
}

// errorAt records a diagnostic in the spec.md §6 wire format: the offending
// token's "at '<lexeme>'"/"at end" clause, followed by the message.
func (p *parser) errorAt(tok token.Token, msg string) {
	p.errors.Add(tokenPosition(tok), tok.ErrorContext()+" : "+msg)
}

func tokenPosition(tok token.Token) gotoken.Position {
	return gotoken.Position{Line: tok.Line}
}

// syncAfterError implements the panic-mode recovery described in spec.md
// §4.2: advance past the offending token, then keep advancing until just
// past a ';' or until the next token starts a new statement.
func (p *parser) syncAfterError() {
	p.advance()
	for !p.check(token.EOF) {
		if p.toks[p.pos-2].Kind == token.SEMICOLON {
			return
		}
		switch p.cur.Kind {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}

func (p *parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if r != errPanicMode {
				panic(r)
			}
			p.syncAfterError()
			stmt = nil
		}
	}()

	switch {
	case p.match(token.CLASS):
		return p.classDeclaration()
	case p.match(token.FUN):
		return p.function("function")
	case p.match(token.VAR):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

func (p *parser) classDeclaration() ast.Stmt {
	name := p.expect(token.IDENTIFIER, "expect class name.")

	var superclass *ast.Variable
	if p.match(token.LESS) {
		sc := p.expect(token.IDENTIFIER, "expect superclass name.")
		superclass = &ast.Variable{Name: sc}
	}

	p.expect(token.LBRACE, "expect '{' before class body.")
	var methods []*ast.Function
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		methods = append(methods, p.function("method").(*ast.Function))
	}
	p.expect(token.RBRACE, "expect '}' after class body.")

	return &ast.Class{Name: name, Superclass: superclass, Methods: methods}
}

func (p *parser) function(kind string) ast.Stmt {
	name := p.expect(token.IDENTIFIER, "expect "+kind+" name.")
	p.expect(token.LPAREN, "expect '(' after "+kind+" name.")

	var params []token.Token
	if !p.check(token.RPAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorAtCurrent("can't have more than 255 parameters.")
			}
			params = append(params, p.expect(token.IDENTIFIER, "expect parameter name."))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RPAREN, "expect ')' after parameters.")

	p.expect(token.LBRACE, "expect '{' before "+kind+" body.")
	body := p.block()
	return &ast.Function{Name: name, Params: params, Body: body}
}

func (p *parser) varDeclaration() ast.Stmt {
	name := p.expect(token.IDENTIFIER, "expect variable name.")

	var init ast.Expr
	if p.match(token.EQUAL) {
		init = p.expression()
	}
	p.expect(token.SEMICOLON, "expect ';' after variable declaration.")
	return &ast.Var{Name: name, Initializer: init}
}

func (p *parser) statement() ast.Stmt {
	switch {
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.LBRACE):
		return &ast.Block{Statements: p.block()}
	default:
		return p.expressionStatement()
	}
}

// forStatement desugars "for (init; cond; incr) body" into a Block containing
// the (optional) initializer followed by a While whose body is a Block of
// [body, increment], exactly as spec.md §4.2 describes.
func (p *parser) forStatement() ast.Stmt {
	p.expect(token.LPAREN, "expect '(' after 'for'.")

	var init ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		// no initializer
	case p.match(token.VAR):
		init = p.varDeclaration()
	default:
		init = p.expressionStatement()
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond = p.expression()
	}
	p.expect(token.SEMICOLON, "expect ';' after loop condition.")

	var incr ast.Expr
	if !p.check(token.RPAREN) {
		incr = p.expression()
	}
	p.expect(token.RPAREN, "expect ')' after for clauses.")

	body := p.statement()

	if incr != nil {
		body = &ast.Block{Statements: []ast.Stmt{body, &ast.Expression{Expression: incr}}}
	}
	if cond == nil {
		cond = &ast.Literal{Value: true}
	}
	body = &ast.While{Condition: cond, Body: body}

	if init != nil {
		body = &ast.Block{Statements: []ast.Stmt{init, body}}
	}
	return body
}

func (p *parser) ifStatement() ast.Stmt {
	p.expect(token.LPAREN, "expect '(' after 'if'.")
	cond := p.expression()
	p.expect(token.RPAREN, "expect ')' after if condition.")

	then := p.statement()
	var els ast.Stmt
	if p.match(token.ELSE) {
		els = p.statement()
	}
	return &ast.If{Condition: cond, Then: then, Else: els}
}

func (p *parser) printStatement() ast.Stmt {
	val := p.expression()
	p.expect(token.SEMICOLON, "expect ';' after value.")
	return &ast.Print{Expression: val}
}

func (p *parser) returnStatement() ast.Stmt {
	keyword := p.toks[p.pos-2]
	var val ast.Expr
	if !p.check(token.SEMICOLON) {
		val = p.expression()
	}
	p.expect(token.SEMICOLON, "expect ';' after return value.")
	return &ast.Return{Keyword: keyword, Value: val}
}

func (p *parser) whileStatement() ast.Stmt {
	p.expect(token.LPAREN, "expect '(' after 'while'.")
	cond := p.expression()
	p.expect(token.RPAREN, "expect ')' after condition.")
	body := p.statement()
	return &ast.While{Condition: cond, Body: body}
}

func (p *parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		stmts = append(stmts, p.declaration())
	}
	p.expect(token.RBRACE, "expect '}' after block.")
	return stmts
}

func (p *parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.expect(token.SEMICOLON, "expect ';' after expression.")
	return &ast.Expression{Expression: expr}
}

func (p *parser) expression() ast.Expr { return p.assignment() }

// assignment parses a logic_or, then, if an '=' follows, re-interprets the
// left-hand side as an assignment target (spec.md §4.2): Variable → Assign,
// Get → Set, anything else is the static error "Invalid assignment target.".
func (p *parser) assignment() ast.Expr {
	expr := p.logicOr()

	if p.match(token.EQUAL) {
		equals := p.toks[p.pos-2]
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Name: target.Name, Value: value}
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}
		default:
			p.errorAt(equals, "Invalid assignment target.")
		}
	}
	return expr
}

func (p *parser) logicOr() ast.Expr {
	expr := p.logicAnd()
	for p.match(token.OR) {
		op := p.toks[p.pos-2]
		right := p.logicAnd()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *parser) logicAnd() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.toks[p.pos-2]
		right := p.equality()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.toks[p.pos-2]
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.toks[p.pos-2]
		right := p.term()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		op := p.toks[p.pos-2]
		right := p.factor()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR) {
		op := p.toks[p.pos-2]
		right := p.unary()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.toks[p.pos-2]
		right := p.unary()
		return &ast.Unary{Operator: op, Right: right}
	}
	return p.call()
}

func (p *parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(token.LPAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			name := p.expect(token.IDENTIFIER, "expect property name after '.'.")
			expr = &ast.Get{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAtCurrent("can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.expect(token.RPAREN, "expect ')' after arguments.")
	return &ast.Call{Callee: callee, Paren: paren, Arguments: args}
}

func (p *parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return &ast.Literal{Value: false}
	case p.match(token.TRUE):
		return &ast.Literal{Value: true}
	case p.match(token.NIL):
		return &ast.Literal{Value: nil}
	case p.match(token.NUMBER, token.STRING):
		return &ast.Literal{Value: p.toks[p.pos-2].Literal}
	case p.match(token.SUPER):
		keyword := p.toks[p.pos-2]
		p.expect(token.DOT, "expect '.' after 'super'.")
		method := p.expect(token.IDENTIFIER, "expect superclass method name.")
		return &ast.Super{Keyword: keyword, Method: method}
	case p.match(token.THIS):
		return &ast.This{Keyword: p.toks[p.pos-2]}
	case p.match(token.IDENTIFIER):
		return &ast.Variable{Name: p.toks[p.pos-2]}
	case p.match(token.LPAREN):
		expr := p.expression()
		p.expect(token.RPAREN, "expect ')' after expression.")
		return &ast.Grouping{Expression: expr}
	default:
		p.errorAtCurrent("expect expression.")
		panic(errPanicMode)
	}
}

