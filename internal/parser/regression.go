package parser

import "graphparse/internal/lexer"

// parseRegressionParameters is the `#{` consequent parselet: finalize left
// to a Statement, require it be a `~` equation, then attach the parsed
// parameter list.
func (p *Parser) parseRegressionParameters(left Node, open lexer.Token) Statement {
	stmt := p.finalizeStatement(left)
	exprStmt, ok := stmt.(*ExprStatement)
	validTilde := false
	if ok {
		if bin, ok2 := exprStmt.Expr.(*BinaryExpression); ok2 && bin.Op == "~" {
			validTilde = true
		}
	}
	if !validTilde {
		p.s.fatal("Regression parameters require a preceding '~' equation.", *safeSpan(stmt))
	}
	var entries []RegressionEntry
	if p.s.peek().Lexeme != "}" {
		for _, a := range p.parseAssignmentSequence() {
			if a == nil {
				continue
			}
			entries = append(entries, RegressionEntry{Variable: a.Variable, Value: a.Expr})
		}
	}
	closeTok := p.s.consume("}")
	span := spanUnion(tokSpanPtr(open), tokSpanPtr(closeTok))
	if exprStmt != nil {
		exprStmt.Parameters = &RegressionParameters{NodeBase: NodeBase{NodeType: "RegressionParameters", Pos: span}, Entries: entries}
	}
	return stmt
}
