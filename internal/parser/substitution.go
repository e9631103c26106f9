package parser

import "graphparse/internal/lexer"

// parseSubstitution is the `with` consequent parselet.
func (p *Parser) parseSubstitution(left Expr, withTok lexer.Token) Expr {
	assignments := p.parseAssignmentSequence()
	var tail Node
	if len(assignments) > 0 && assignments[len(assignments)-1] != nil {
		tail = assignments[len(assignments)-1]
	}
	span := spanUnion(left.Span(), safeSpan(tail))
	return &Substitution{NodeBase: NodeBase{NodeType: "Substitution", Pos: span}, Body: left, Assignments: assignments}
}
