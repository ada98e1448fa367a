package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Printer pretty-prints expressions and statements as parenthesized
// s-expressions, used by the "parse" debug subcommand to inspect the
// parser's output independently of the resolver and evaluator stages.
type Printer struct {
	// Output is the io.Writer to print to.
	Output io.Writer
}

// Print writes one parenthesized line per top-level statement in stmts.
func (p *Printer) Print(stmts []Stmt) error {
	for _, stmt := range stmts {
		if _, err := fmt.Fprintln(p.Output, printStmt(stmt)); err != nil {
			return err
		}
	}
	return nil
}

func printStmt(s Stmt) string {
	switch s := s.(type) {
	case *Expression:
		return parenthesize(";", s.Expression)
	case *Print:
		return parenthesize("print", s.Expression)
	case *Var:
		if s.Initializer == nil {
			return parenthesize("var " + s.Name.Lexeme)
		}
		return parenthesize("var "+s.Name.Lexeme, s.Initializer)
	case *Block:
		var sb strings.Builder
		sb.WriteString("(block")
		for _, inner := range s.Statements {
			sb.WriteString(" ")
			sb.WriteString(printStmt(inner))
		}
		sb.WriteString(")")
		return sb.String()
	case *If:
		if s.Else == nil {
			return fmt.Sprintf("(if %s %s)", printExpr(s.Condition), printStmt(s.Then))
		}
		return fmt.Sprintf("(if %s %s %s)", printExpr(s.Condition), printStmt(s.Then), printStmt(s.Else))
	case *While:
		return fmt.Sprintf("(while %s %s)", printExpr(s.Condition), printStmt(s.Body))
	case *Function:
		return fmt.Sprintf("(fun %s)", s.Name.Lexeme)
	case *Return:
		if s.Value == nil {
			return "(return)"
		}
		return parenthesize("return", s.Value)
	case *Class:
		return fmt.Sprintf("(class %s)", s.Name.Lexeme)
	default:
		return fmt.Sprintf("(unknown-stmt %T)", s)
	}
}

func printExpr(e Expr) string {
	switch e := e.(type) {
	case *Literal:
		return literalString(e.Value)
	case *Grouping:
		return parenthesize("group", e.Expression)
	case *Unary:
		return parenthesize(e.Operator.Lexeme, e.Right)
	case *Binary:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *Logical:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *Variable:
		return e.Name.Lexeme
	case *Assign:
		return parenthesize("= "+e.Name.Lexeme, e.Value)
	case *Call:
		return parenthesize("call", append([]Expr{e.Callee}, e.Arguments...)...)
	case *Get:
		return parenthesize("."+e.Name.Lexeme, e.Object)
	case *Set:
		return parenthesize("."+e.Name.Lexeme+"=", e.Object, e.Value)
	case *This:
		return "this"
	case *Super:
		return "super." + e.Method.Lexeme
	default:
		return fmt.Sprintf("(unknown-expr %T)", e)
	}
}

func literalString(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func parenthesize(name string, exprs ...Expr) string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(name)
	for _, e := range exprs {
		sb.WriteString(" ")
		sb.WriteString(printExpr(e))
	}
	sb.WriteString(")")
	return sb.String()
}
