package parser

import (
	"encoding/json"
	"fmt"
	"strconv"

	"graphparse/internal/diag"
	"graphparse/internal/lexer"
)

// parseInitial dispatches a just-consumed token to its initial parselet:
// the token that opens an expression. Most productions return an Expr;
// the keyword productions table/folder/image/settings/ticker return a
// Statement directly, which is why the return type is the common Node
// interface.
func (p *Parser) parseInitial(tok lexer.Token, isStatementTop bool) Node {
	switch tok.Kind {
	case lexer.KindNumber:
		return p.parseNumber(tok)
	case lexer.KindString:
		return p.parseString(tok)
	case lexer.KindID:
		return p.parseIdentifier(tok)
	case lexer.KindKeyword:
		return p.parseKeywordInitial(tok)
	case lexer.KindPunct:
		switch tok.Lexeme {
		case "(":
			return p.parseParenOrDerivative(tok)
		case "-":
			return p.parsePrefixMinus(tok)
		case "[":
			return p.parseListOrRangeOrComprehension(tok)
		case "{":
			return p.parsePiecewise(tok)
		case "@{":
			return p.parseStyleMappingLiteral(tok)
		}
	}
	p.s.fatal(fmt.Sprintf("Unexpected text: '%s'.", tok.Lexeme), spanOf(tok))
	return nil
}

func (p *Parser) parseNumber(tok lexer.Token) Expr {
	v, err := strconv.ParseFloat(tok.Lexeme, 64)
	if err != nil {
		p.s.fatal(fmt.Sprintf("Invalid number literal '%s'.", tok.Lexeme), spanOf(tok))
	}
	span := spanOf(tok)
	return &Number{NodeBase: NodeBase{NodeType: "Number", Pos: &span}, Value: v}
}

// decodeStringLiteral decodes a quoted lexeme using JSON string semantics
// (RFC 8259), which differs from Go's strconv.Unquote: JSON permits `\/`
// as an escape for `/` and rejects Go-only escapes such as `\x41`.
func (p *Parser) decodeStringLiteral(lexeme string, span diag.Span) string {
	var v string
	if err := json.Unmarshal([]byte(lexeme), &v); err != nil {
		p.s.fatal(fmt.Sprintf("Invalid string literal %s.", lexeme), span)
	}
	return v
}

func (p *Parser) parseString(tok lexer.Token) Expr {
	span := spanOf(tok)
	v := p.decodeStringLiteral(tok.Lexeme, span)
	return &String{NodeBase: NodeBase{NodeType: "String", Pos: &span}, Value: v}
}

func (p *Parser) parseIdentifier(tok lexer.Token) Expr {
	span := spanOf(tok)
	name := p.normalizeIdentifier(tok.Lexeme, span)
	return &Identifier{NodeBase: NodeBase{NodeType: "Identifier", Pos: &span}, Name: name}
}

// parseParenOrDerivative handles both productions registered under
// `punct "("`: a d/d derivative form, and a generic grouped/sequence
// expression.
func (p *Parser) parseParenOrDerivative(open lexer.Token) Expr {
	if p.isDerivativeLead() {
		return p.parseDerivativeExpression(open)
	}
	inner := p.parseExprOnly(bpTop, false)
	closeTok := p.s.consume(")")
	span := spanUnion(tokSpanPtr(open), tokSpanPtr(closeTok))
	if seq, ok := inner.(*SequenceExpression); ok {
		seq.ParenWrapped = true
		seq.Pos = span
		return seq
	}
	inner.SetSpan(span)
	return inner
}

func (p *Parser) isDerivativeLead() bool {
	nt := p.s.peek()
	return nt.Kind == lexer.KindPunct && nt.Lexeme == "d/d"
}

func (p *Parser) parseDerivativeExpression(open lexer.Token) Expr {
	p.s.advance() // d/d
	idTok := p.s.consumeType(lexer.KindID)
	varSpan := spanOf(idTok)
	variable := &Identifier{NodeBase: NodeBase{NodeType: "Identifier", Pos: &varSpan}, Name: p.normalizeIdentifier(idTok.Lexeme, varSpan)}
	p.s.consume(")")
	expr := p.parseExprOnly(bpDerivative, false)
	span := spanUnion(tokSpanPtr(open), expr.Span())
	return &DerivativeExpression{NodeBase: NodeBase{NodeType: "DerivativeExpression", Pos: span}, Expr: expr, Variable: variable}
}

func (p *Parser) parsePrefixMinus(tok lexer.Token) Expr {
	expr := p.parseExprOnly(bpPrefix, false)
	span := spanUnion(tokSpanPtr(tok), expr.Span())
	return &PrefixExpression{NodeBase: NodeBase{NodeType: "PrefixExpression", Pos: span}, Op: "-", Expr: expr}
}

// parseKeywordInitial covers every keyword-led initial parselet:
// sum/product/integral, table, folder, image, settings, ticker.
func (p *Parser) parseKeywordInitial(tok lexer.Token) Node {
	switch tok.Lexeme {
	case "sum", "product", "integral":
		return p.parseRepeatedExpression(tok)
	case "table":
		return p.parseTableStatement(tok)
	case "folder":
		return p.parseFolderStatement(tok)
	case "image":
		return p.parseImageStatement(tok)
	case "settings":
		span := spanOf(tok)
		return &Settings{NodeBase: NodeBase{NodeType: "Settings", Pos: &span}}
	case "ticker":
		return p.parseTickerStatement(tok)
	}
	p.s.fatal(fmt.Sprintf("Unexpected text: '%s'.", tok.Lexeme), spanOf(tok))
	return nil
}

func (p *Parser) parseRepeatedExpression(tok lexer.Token) Expr {
	idTok := p.s.consumeType(lexer.KindID)
	idxSpan := spanOf(idTok)
	index := &Identifier{NodeBase: NodeBase{NodeType: "Identifier", Pos: &idxSpan}, Name: p.normalizeIdentifier(idTok.Lexeme, idxSpan)}
	p.s.consume("=")
	p.s.consume("(")
	start := p.parseExprOnly(bpTop, false)
	p.s.consume("...")
	end := p.parseExprOnly(bpTop, false)
	p.s.consume(")")
	term := p.parseExprOnly(bpAdd, false)
	span := spanUnion(tokSpanPtr(tok), term.Span())
	return &RepeatedExpression{
		NodeBase: NodeBase{NodeType: "RepeatedExpression", Pos: span},
		Name:     tok.Lexeme,
		Index:    index,
		Start:    start,
		End:      end,
		Expr:     term,
	}
}

func (p *Parser) parseTableStatement(tok lexer.Token) Statement {
	p.s.consume("{")
	stmts := p.parseStatements(false)
	closeTok := p.s.consume("}")
	cols := make([]*ExprStatement, 0, len(stmts))
	for _, st := range stmts {
		if col, ok := st.(*ExprStatement); ok {
			cols = append(cols, col)
			continue
		}
		sp := st.Span()
		if sp == nil {
			sp = &diag.Span{}
		}
		p.s.pushError("Table columns must be expressions.", *sp)
	}
	span := spanUnion(tokSpanPtr(tok), tokSpanPtr(closeTok))
	return &Table{NodeBase: NodeBase{NodeType: "Table", Pos: span}, Columns: cols}
}

func (p *Parser) parseFolderStatement(tok lexer.Token) Statement {
	titleTok := p.s.consumeType(lexer.KindString)
	title := p.decodeStringLiteral(titleTok.Lexeme, spanOf(titleTok))
	p.s.consume("{")
	children := p.parseStatements(false)
	closeTok := p.s.consume("}")
	span := spanUnion(tokSpanPtr(tok), tokSpanPtr(closeTok))
	return &Folder{NodeBase: NodeBase{NodeType: "Folder", Pos: span}, Title: title, Children: children}
}

func (p *Parser) parseImageStatement(tok lexer.Token) Statement {
	nameTok := p.s.consumeType(lexer.KindString)
	name := p.decodeStringLiteral(nameTok.Lexeme, spanOf(nameTok))
	span := spanUnion(tokSpanPtr(tok), tokSpanPtr(nameTok))
	return &Image{NodeBase: NodeBase{NodeType: "Image", Pos: span}, Name: name}
}

func (p *Parser) parseTickerStatement(tok lexer.Token) Statement {
	handler := p.parseExprOnly(bpMeta, false)
	span := spanUnion(tokSpanPtr(tok), handler.Span())
	return &Ticker{NodeBase: NodeBase{NodeType: "Ticker", Pos: span}, Handler: handler}
}
