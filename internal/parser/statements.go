package parser

import (
	"fmt"

	"graphparse/internal/diag"
	"graphparse/internal/lexer"
)

// parseStatements parses a sequence of statements terminated by `}` (when
// isTop is false) or end of input (when isTop is true). It is used both
// for the whole program and for the body of a table/folder.
func (p *Parser) parseStatements(isTop bool) []Statement {
	var out []Statement
	for {
		for p.s.peek().Kind == lexer.KindSemi {
			p.s.advance()
		}
		nt := p.s.peek()
		if nt.Lexeme == "}" {
			if isTop {
				p.s.pushError("Unexpected '}'", spanOf(nt))
				p.s.advance()
				continue
			}
			return out
		}
		if nt.Kind == lexer.KindEOF {
			return out
		}
		if stmt := p.parseOneStatement(); stmt != nil {
			out = append(out, stmt)
		}
		p.requireStatementTerminator()
	}
}

// parseOneStatement parses and finalizes a single statement, recovering
// from a fatal parse error by resynchronizing at the next statement
// boundary. This is the program's unique recovery frame: diag.Abort is
// caught here and nowhere else.
func (p *Parser) parseOneStatement() (result Statement) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(diag.Abort); ok {
				p.s.scanToNextStatement()
				result = nil
				return
			}
			panic(r)
		}
	}()
	node := p.parseExpr(bpTop, true)
	return p.finalizeStatement(node)
}

func (p *Parser) requireStatementTerminator() {
	term := p.s.peek()
	switch {
	case term.Kind == lexer.KindSemi:
		p.s.advance()
	case term.Lexeme == "}" || term.Kind == lexer.KindEOF:
		// Left for the caller/next loop iteration; not consumed here.
	default:
		p.s.pushError(fmt.Sprintf("Expected ';' but got %s. Skipping it.", describeToken(term)), spanOf(term))
		p.s.scanToNextStatement()
	}
}

// finalizeStatement turns a parsed Node into the Statement it represents:
// a Statement passes through unchanged, a StyleMapping or Program is a
// fatal error, a bare String becomes Text, `name = lhs ~ rhs` becomes an
// ExprStatement on the `~` expression with ResidualVariable set, and any
// other expression is wrapped in an ExprStatement.
func (p *Parser) finalizeStatement(n Node) Statement {
	if st, ok := n.(Statement); ok {
		return st
	}
	switch n.(type) {
	case *StyleMapping, *Program:
		p.s.fatal("Unexpected top-level expression.", *safeSpan(n))
		return nil
	}
	expr, ok := n.(Expr)
	if !ok {
		p.s.fatal("Unexpected top-level expression.", *safeSpan(n))
		return nil
	}
	if str, ok := expr.(*String); ok {
		return &Text{NodeBase: NodeBase{NodeType: "Text", Pos: str.Span()}, Text: str.Value}
	}
	// residualVariable = (LHS ~ RHS) rewrite: the outer "=" disappears, the
	// ExprStatement wraps the `~` expression directly and records the
	// identifier that named it.
	if outer, ok := expr.(*BinaryExpression); ok && outer.Op == "=" {
		if ident, ok2 := outer.Left.(*Identifier); ok2 {
			if inner, ok3 := outer.Right.(*BinaryExpression); ok3 && inner.Op == "~" {
				return &ExprStatement{
					NodeBase:         NodeBase{NodeType: "ExprStatement", Pos: expr.Span()},
					Expr:             inner,
					ResidualVariable: ident,
				}
			}
		}
	}
	return &ExprStatement{NodeBase: NodeBase{NodeType: "ExprStatement", Pos: expr.Span()}, Expr: expr}
}
