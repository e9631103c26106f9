package parser

import (
	"graphparse/internal/diag"
	"graphparse/internal/lexer"
)

// atLexeme reports whether the upcoming token's lexeme is one of the given
// options, without consuming it.
func (p *Parser) atLexeme(lexemes ...string) bool {
	t := p.s.peek()
	for _, l := range lexemes {
		if t.Lexeme == l {
			return true
		}
	}
	return false
}

// parseBareSequence parses a "bare sequence": a comma-separated list
// of expressions parsed without ever building a SequenceExpression,
// terminated by whatever closing token the caller checks for. Each item is
// parsed at binding power seq, so the Pratt `,` consequent never fires
// inside it; the comma separators are consumed explicitly by this loop.
func (p *Parser) parseBareSequence() []Expr {
	items := []Expr{p.parseExprOnly(bpSeq, false)}
	for p.s.peek().Lexeme == "," {
		p.s.advance()
		items = append(items, p.parseExprOnly(bpSeq, false))
	}
	return items
}

// parseAssignmentSequence parses a bare sequence where every item must be
// `id = expr`, used by list comprehensions, regression parameters, and
// `with` substitutions.
func (p *Parser) parseAssignmentSequence() []*AssignmentExpression {
	items := []*AssignmentExpression{p.parseAssignmentItem()}
	for p.s.peek().Lexeme == "," {
		p.s.advance()
		items = append(items, p.parseAssignmentItem())
	}
	return items
}

func (p *Parser) parseAssignmentItem() *AssignmentExpression {
	expr := p.parseExprOnly(bpSeq, false)
	bin, ok := expr.(*BinaryExpression)
	if !ok || bin.Op != "=" {
		p.s.fatal("Expected 'name = expr'.", *safeSpan(expr))
		return nil
	}
	ident, ok := bin.Left.(*Identifier)
	if !ok {
		p.s.fatal("Expected an identifier before '='.", *safeSpan(bin.Left))
		return nil
	}
	return &AssignmentExpression{NodeBase: NodeBase{NodeType: "AssignmentExpression", Pos: bin.Span()}, Variable: ident, Expr: bin.Right}
}

func safeSpan(n Node) *diag.Span {
	if n == nil {
		return &diag.Span{}
	}
	if sp := n.Span(); sp != nil {
		return sp
	}
	return &diag.Span{}
}

// parseListOrRangeOrComprehension is the `[` initial parselet: list
// literals, ranges, and list comprehensions all open on `[`.
func (p *Parser) parseListOrRangeOrComprehension(open lexer.Token) Expr {
	var startValues []Expr
	if !p.atLexeme("]", "...") {
		startValues = p.parseBareSequence()
	}
	nt := p.s.peek()
	switch {
	case nt.Lexeme == "...":
		p.s.advance()
		if p.s.peek().Lexeme == "," {
			p.s.advance()
		}
		var endValues []Expr
		if !p.atLexeme("]") {
			endValues = p.parseBareSequence()
		}
		closeTok := p.s.consume("]")
		span := spanUnion(tokSpanPtr(open), tokSpanPtr(closeTok))
		return &RangeExpression{
			NodeBase:    NodeBase{NodeType: "RangeExpression", Pos: span},
			StartValues: startValues,
			EndValues:   endValues,
		}
	case nt.Lexeme == "]":
		closeTok := p.s.consume("]")
		span := spanUnion(tokSpanPtr(open), tokSpanPtr(closeTok))
		return &ListExpression{NodeBase: NodeBase{NodeType: "ListExpression", Pos: span}, Values: startValues}
	case nt.Kind == lexer.KindKeyword && nt.Lexeme == "for":
		p.s.advance()
		if len(startValues) != 1 {
			p.s.fatal("Expected exactly one expression before 'for'.", spanOf(nt))
		}
		assignments := p.parseAssignmentSequence()
		closeTok := p.s.consume("]")
		span := spanUnion(tokSpanPtr(open), tokSpanPtr(closeTok))
		return &ListComprehension{
			NodeBase:    NodeBase{NodeType: "ListComprehension", Pos: span},
			Expr:        startValues[0],
			Assignments: assignments,
		}
	default:
		p.s.fatal("Expected ']'", spanOf(nt))
		return nil
	}
}

// parseListAccessExpression is the `[` consequent parselet (access bp). A
// single-element list literal used as the index unwraps to its one
// element, so `f[x]` and `f[[x]]` index identically.
func (p *Parser) parseListAccessExpression(left Expr, open lexer.Token) Expr {
	index := p.parseExprOnly(bpTop, false)
	closeTok := p.s.consume("]")
	span := spanUnion(left.Span(), tokSpanPtr(closeTok))
	if lst, ok := index.(*ListExpression); ok && len(lst.Values) == 1 {
		index = lst.Values[0]
	}
	return &ListAccessExpression{NodeBase: NodeBase{NodeType: "ListAccessExpression", Pos: span}, Expr: left, Index: index}
}
