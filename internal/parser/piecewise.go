package parser

import "graphparse/internal/lexer"

// parsePiecewise is the `{` initial parselet, including the
// "first-branch-else" rule and the subsequent-branch-else rewrite: a
// branch condition that isn't a comparison is only valid as an else arm,
// and only once at least one prior branch exists.
func (p *Parser) parsePiecewise(open lexer.Token) Expr {
	var branches []PiecewiseBranch
	first := true
	for {
		cond := p.parseExprOnly(bpSeq, false)
		nt := p.s.peek()
		switch {
		case nt.Lexeme == "}":
			closeTok := p.s.consume("}")
			if isComparisonExpr(cond) {
				branches = append(branches, PiecewiseBranch{Condition: cond, Consequent: unitNumber()})
			} else if first {
				p.s.fatal("Expected a comparison before '}'.", *safeSpan(cond))
			} else {
				elseIdent := &Identifier{NodeBase: NodeBase{NodeType: "Identifier", Pos: cond.Span()}, Name: "else"}
				branches = append(branches, PiecewiseBranch{Condition: elseIdent, Consequent: cond})
			}
			span := spanUnion(tokSpanPtr(open), tokSpanPtr(closeTok))
			return &PiecewiseExpression{NodeBase: NodeBase{NodeType: "PiecewiseExpression", Pos: span}, Branches: branches}
		case nt.Lexeme == ":":
			p.s.advance()
			consequent := p.parseExprOnly(bpSeq, false)
			if !isComparisonExpr(cond) {
				p.s.fatal("Expected a comparison before ':'.", *safeSpan(cond))
			}
			branches = append(branches, PiecewiseBranch{Condition: cond, Consequent: consequent})
			if p.s.peek().Lexeme == "}" {
				closeTok := p.s.consume("}")
				span := spanUnion(tokSpanPtr(open), tokSpanPtr(closeTok))
				return &PiecewiseExpression{NodeBase: NodeBase{NodeType: "PiecewiseExpression", Pos: span}, Branches: branches}
			}
			p.s.consume(",")
			first = false
		case nt.Lexeme == ",":
			p.s.advance()
			if !isComparisonExpr(cond) {
				p.s.fatal("Expected a comparison before ','.", *safeSpan(cond))
			}
			branches = append(branches, PiecewiseBranch{Condition: cond, Consequent: unitNumber()})
			first = false
		default:
			p.s.fatal("Unexpected character in Piecewise", spanOf(nt))
			return nil
		}
	}
}

// unitNumber synthesizes the implicit "1" consequent for a condition-only
// piecewise branch. It carries no span: it corresponds to no source text.
func unitNumber() Expr {
	return &Number{NodeBase: NodeBase{NodeType: "Number"}, Value: 1}
}
