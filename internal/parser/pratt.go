package parser

import (
	"fmt"

	"graphparse/internal/diag"
	"graphparse/internal/lexer"
	"graphparse/internal/names"
)

// Parser is the Pratt dispatcher at the core of the front end. It owns no
// state of its own beyond the shared parser state and the frozen
// non-subscripting set; a Parser is used for exactly one parse.
type Parser struct {
	s     *state
	names names.Set
}

func newParser(src string, bag *diag.Bag, set names.Set) *Parser {
	return &Parser{s: newState(src, bag), names: set}
}

// Parse is the package's sole entry point: a pure function of (source,
// non-subscripting set) returning an ordered diagnostics list and a
// best-effort Program.
func Parse(source string, set names.Set) ([]diag.Diagnostic, *Program) {
	bag := diag.NewBag()
	p := newParser(source, bag, set)
	children := p.parseStatements(true)
	prog := &Program{
		NodeBase: NodeBase{NodeType: "Program", Pos: envelopeOfStatements(children)},
		Children: children,
	}
	if len(children) == 0 && bag.Len() == 0 {
		bag.Warning("Program is empty. Try typing: y=x", &diag.Span{From: 0, To: 0})
	}
	if last := p.s.peek(); last.Kind != lexer.KindEOF {
		bag.Warning("Didn't reach end", tokSpanPtr(last))
	}
	return bag.Entries(), prog
}

// parseExpr consumes one token via an initial parselet, then keeps
// delegating to consequent parselets as long as the next token's binding
// power exceeds lastBp. It returns Node rather than Expr because a
// handful of keyword initial parselets (table, folder, image, settings,
// ticker) produce Statement nodes directly.
func (p *Parser) parseExpr(lastBp int, isStatementTop bool) Node {
	tok := p.s.peek()
	p.s.advance()
	left := p.parseInitial(tok, isStatementTop)
	for {
		nt := p.s.peek()
		bp, ok := p.consequentBp(nt)
		if !ok || bp <= lastBp {
			return left
		}
		topLevelEq := isStatementTop && nt.Kind == lexer.KindPunct && nt.Lexeme == "="
		p.s.advance()
		left = p.parseConsequent(left, nt, topLevelEq)
	}
}

// parseExprOnly is parseExpr narrowed to the common case: the grammar
// position requires a plain expression, never a bare statement node.
func (p *Parser) parseExprOnly(lastBp int, isStatementTop bool) Expr {
	return p.expectExpr(p.parseExpr(lastBp, isStatementTop), "an expression")
}

func (p *Parser) expectExpr(n Node, what string) Expr {
	if n == nil {
		return nil
	}
	if e, ok := n.(Expr); ok {
		return e
	}
	sp := n.Span()
	if sp == nil {
		sp = &diag.Span{}
	}
	p.s.fatal(fmt.Sprintf("Expected %s.", what), *sp)
	return nil
}

// consequentBp looks up a token's consequent binding power. Tokens with
// no registered consequent (closing delimiters, `...`, `d/d`, eof) report
// ok=false and terminate parseExpr's loop.
func (p *Parser) consequentBp(t lexer.Token) (int, bool) {
	switch t.Kind {
	case lexer.KindPunct:
		switch t.Lexeme {
		case "+", "-":
			return bpAdd, true
		case "*", "/":
			return bpMul, true
		case "^":
			return bpPow, true
		case "(":
			return bpCall, true
		case "!":
			return bpPostfix, true
		case ".":
			return bpMember, true
		case "[":
			return bpAccess, true
		case "<", "<=", "=", ">=", ">":
			return bpRel, true
		case "->":
			return bpUpdateRule, true
		case ",":
			return bpSeq, true
		case "@{":
			return bpMeta, true
		case "~":
			return bpSim, true
		case "#{":
			return bpMeta, true
		default:
			return 0, false
		}
	case lexer.KindPrime:
		return bpCall, true
	case lexer.KindKeyword:
		if t.Lexeme == "with" {
			return bpSubstitution, true
		}
		return 0, false
	default:
		return 0, false
	}
}

// parseConsequent dispatches a consumed operator token to its production
// rule. left has already been narrowed to Node by parseExpr; every
// production here other than `@{`/`#{` (which finalize left to a
// Statement themselves) requires left to be an Expr.
func (p *Parser) parseConsequent(left Node, tok lexer.Token, topLevelEq bool) Node {
	switch tok.Kind {
	case lexer.KindPrime:
		return p.parsePrimeExpression(p.expectExpr(left, "an expression before \"'\""), tok)
	case lexer.KindKeyword:
		if tok.Lexeme == "with" {
			return p.parseSubstitution(p.expectExpr(left, "an expression before 'with'"), tok)
		}
	case lexer.KindPunct:
		switch tok.Lexeme {
		case "+", "-", "*", "/":
			l := p.expectExpr(left, "an expression")
			right := p.parseExprOnly(p.leftAssocBp(tok.Lexeme), false)
			return p.binary(tok.Lexeme, l, right)
		case "^":
			l := p.expectExpr(left, "an expression")
			right := p.parseExprOnly(bpPow-1, false)
			return p.binary("^", l, right)
		case "(":
			return p.parseCallExpression(p.expectExpr(left, "an expression before '('"), tok)
		case "!":
			l := p.expectExpr(left, "an expression before '!'")
			return &PostfixExpression{
				NodeBase: NodeBase{NodeType: "PostfixExpression", Pos: spanUnion(l.Span(), tokSpanPtr(tok))},
				Op:       "factorial",
				Expr:     l,
			}
		case ".":
			return p.parseMemberExpression(p.expectExpr(left, "an expression before '.'"), tok)
		case "[":
			return p.parseListAccessExpression(p.expectExpr(left, "an expression before '['"), tok)
		case "<", "<=", "=", ">=", ">":
			return p.parseComparison(p.expectExpr(left, "an expression"), tok, topLevelEq)
		case "->":
			return p.parseUpdateRule(left, tok)
		case ",":
			return p.parseSequence(p.expectExpr(left, "an expression before ','"), tok)
		case "@{":
			return p.parseStyleAttachment(left, tok)
		case "~":
			l := p.expectExpr(left, "an expression before '~'")
			right := p.parseExprOnly(bpSim, false)
			return p.binary("~", l, right)
		case "#{":
			return p.parseRegressionParameters(left, tok)
		}
	}
	p.s.fatal(fmt.Sprintf("Unexpected text: '%s'.", tok.Lexeme), spanOf(tok))
	return left
}

func (p *Parser) leftAssocBp(op string) int {
	switch op {
	case "+", "-":
		return bpAdd
	case "*", "/":
		return bpMul
	default:
		return bpAdd
	}
}

func (p *Parser) binary(op string, left, right Expr) *BinaryExpression {
	return &BinaryExpression{
		NodeBase: NodeBase{NodeType: "BinaryExpression", Pos: spanUnion(left.Span(), right.Span())},
		Op:       op,
		Left:     left,
		Right:    right,
	}
}

func tokSpanPtr(t lexer.Token) *diag.Span {
	s := spanOf(t)
	return &s
}

func spanUnion(a, b *diag.Span) *diag.Span {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	u := a.Union(*b)
	return &u
}

func envelopeOfStatements(stmts []Statement) *diag.Span {
	var out *diag.Span
	for _, st := range stmts {
		out = spanUnion(out, st.Span())
	}
	return out
}

func envelopeOfExprs(exprs []Expr) *diag.Span {
	var out *diag.Span
	for _, e := range exprs {
		out = spanUnion(out, e.Span())
	}
	return out
}
