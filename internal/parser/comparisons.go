package parser

import (
	"fmt"

	"graphparse/internal/lexer"
)

// parseComparison is the rel consequent parselet shared by all five
// comparison operators, including the double-inequality chaining rule.
// topLevelEq lowers the right operand's binding power for the "="
// operator only, so a top-level assignment's RHS can itself be a
// comma-separated SequenceExpression.
func (p *Parser) parseComparison(left Expr, tok lexer.Token, topLevelEq bool) Expr {
	op1 := tok.Lexeme
	rightBp := bpRel
	if topLevelEq && op1 == "=" {
		rightBp = bpSeq - 1
	}
	right1 := p.parseExprOnly(rightBp, false)
	if op1 != "=" {
		nt := p.s.peek()
		if nt.Kind == lexer.KindPunct && chainOps[nt.Lexeme] {
			p.s.advance()
			right2 := p.parseExprOnly(bpRel, false)
			if direction(op1) != direction(nt.Lexeme) {
				p.s.fatal(fmt.Sprintf("Cannot chain %s with %s", nt.Lexeme, op1), spanOf(nt))
			}
			span := spanUnion(left.Span(), right2.Span())
			return &DoubleInequality{
				NodeBase: NodeBase{NodeType: "DoubleInequality", Pos: span},
				Left:     left,
				LeftOp:   op1,
				Middle:   right1,
				RightOp:  nt.Lexeme,
				Right:    right2,
			}
		}
	}
	return p.binary(op1, left, right1)
}

// parseUpdateRule is the `->` consequent parselet: left must be an
// Identifier, and right is parsed at binding power updateRule.
func (p *Parser) parseUpdateRule(left Node, tok lexer.Token) Expr {
	ident, ok := left.(*Identifier)
	if !ok {
		p.s.fatal("Expected an identifier before '->'.", *safeSpan(left))
	}
	right := p.parseExprOnly(bpUpdateRule, false)
	span := spanUnion(left.Span(), right.Span())
	return &UpdateRule{NodeBase: NodeBase{NodeType: "UpdateRule", Pos: span}, Variable: ident, Expr: right}
}

// parseSequence is the `,` consequent parselet: right associative via
// bp-1, with the ellipsis short-circuit that lets a trailing comma before
// `...` inside a parenthesized sequence be silently absorbed rather than
// forcing a parse of `...` as an operand.
func (p *Parser) parseSequence(left Expr, comma lexer.Token) Expr {
	if p.s.peek().Lexeme == "..." {
		return left
	}
	right := p.parseExprOnly(bpSeq-1, false)
	span := spanUnion(left.Span(), right.Span())
	return &SequenceExpression{NodeBase: NodeBase{NodeType: "SequenceExpression", Pos: span}, Left: left, Right: right, ParenWrapped: false}
}
