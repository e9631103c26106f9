package parser

import (
	"graphparse/internal/lexer"
)

// parseCallExpression is the `(` consequent parselet at binding power
// call.
func (p *Parser) parseCallExpression(left Expr, open lexer.Token) Expr {
	switch left.(type) {
	case *Identifier, *MemberExpression:
	default:
		p.s.fatal("Function calls require an identifier or member callee.", *safeSpan(left))
	}
	var args []Expr
	if p.s.peek().Lexeme != ")" {
		args = p.parseBareSequence()
	}
	closeTok := p.s.consume(")")
	span := spanUnion(left.Span(), tokSpanPtr(closeTok))
	return &CallExpression{NodeBase: NodeBase{NodeType: "CallExpression", Pos: span}, Callee: left, Arguments: args}
}

// parsePrimeExpression is the prime-token consequent parselet at binding
// power call: a run of `'` after an identifier, terminated by a function
// call. The lexer already merges a contiguous run of `'` characters into
// one Prime token, so order is the sum of lexeme lengths seen, not a count
// of tokens.
func (p *Parser) parsePrimeExpression(left Expr, firstPrime lexer.Token) Expr {
	if _, ok := left.(*Identifier); !ok {
		p.s.fatal("Prime notation requires an identifier.", *safeSpan(left))
	}
	order := uint32(len(firstPrime.Lexeme))
	for p.s.peek().Kind == lexer.KindPrime {
		order += uint32(len(p.s.peek().Lexeme))
		p.s.advance()
	}
	openTok := p.s.consume("(")
	call := p.parseCallExpression(left, openTok)
	ce, ok := call.(*CallExpression)
	if !ok {
		return call
	}
	span := spanUnion(tokSpanPtr(firstPrime), ce.Span())
	return &PrimeExpression{NodeBase: NodeBase{NodeType: "PrimeExpression", Pos: span}, Expr: ce, Order: order}
}

// parseMemberExpression is the `.` consequent parselet at binding power
// member: the right-hand side must be an Identifier.
func (p *Parser) parseMemberExpression(left Expr, dot lexer.Token) Expr {
	idTok := p.s.consumeType(lexer.KindID)
	idSpan := spanOf(idTok)
	prop := &Identifier{NodeBase: NodeBase{NodeType: "Identifier", Pos: &idSpan}, Name: p.normalizeIdentifier(idTok.Lexeme, idSpan)}
	span := spanUnion(left.Span(), &idSpan)
	return &MemberExpression{NodeBase: NodeBase{NodeType: "MemberExpression", Pos: span}, Object: left, Property: prop}
}
