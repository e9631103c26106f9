package parser

import (
	"graphparse/internal/lexer"
)

// parseStyleMappingLiteral is the `@{` initial parselet: a style mapping
// used as a plain value (e.g. nested inside another mapping).
func (p *Parser) parseStyleMappingLiteral(open lexer.Token) Expr {
	entries, closeTok := p.parseStyleEntries()
	span := spanUnion(tokSpanPtr(open), tokSpanPtr(closeTok))
	return &StyleMapping{NodeBase: NodeBase{NodeType: "StyleMapping", Pos: span}, Entries: entries}
}

// parseStyleAttachment is the `@{` consequent parselet at binding power
// meta: finalize left to a Statement first, then attach the parsed mapping
// to it as style, never to a bare expression.
func (p *Parser) parseStyleAttachment(left Node, open lexer.Token) Statement {
	stmt := p.finalizeStatement(left)
	entries, closeTok := p.parseStyleEntries()
	span := spanUnion(tokSpanPtr(open), tokSpanPtr(closeTok))
	style := &StyleMapping{NodeBase: NodeBase{NodeType: "StyleMapping", Pos: span}, Entries: entries}
	attachStyle(stmt, style)
	return stmt
}

func (p *Parser) parseStyleEntries() ([]MappingEntry, lexer.Token) {
	var entries []MappingEntry
	for {
		if p.s.peek().Lexeme == "}" {
			return entries, p.s.consume("}")
		}
		keyTok := p.s.consumeType(lexer.KindID)
		keySpan := spanOf(keyTok)
		key := &String{NodeBase: NodeBase{NodeType: "String", Pos: &keySpan}, Value: keyTok.Lexeme}
		p.s.consume(":")
		value := p.parseExprOnly(bpSeq, false)
		entries = append(entries, MappingEntry{Property: key, Expr: value})
		switch p.s.peek().Lexeme {
		case ",":
			p.s.advance()
		case "}":
			return entries, p.s.consume("}")
		default:
			p.s.fatal("Expected ',' or '}'.", spanOf(p.s.peek()))
			return entries, p.s.peek()
		}
	}
}

// attachStyle sets stmt's style field, dispatching on its concrete
// statement type since Statement carries no common Style accessor.
func attachStyle(stmt Statement, style *StyleMapping) {
	switch st := stmt.(type) {
	case *ExprStatement:
		st.Style = style
	case *Text:
		st.Style = style
	case *Table:
		st.Style = style
	case *Image:
		st.Style = style
	case *Folder:
		st.Style = style
	case *Settings:
		st.Style = style
	case *Ticker:
		st.Style = style
	}
}
