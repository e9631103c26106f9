package parser

import (
	"fmt"

	"graphparse/internal/diag"
	"graphparse/internal/lexer"
)

// state owns the lexer, a one-token lookahead slot, and the diagnostics
// buffer for a single parse call. It is never shared across parses.
type state struct {
	lex     *lexer.Lexer
	lookhd  *lexer.Token
	bag     *diag.Bag
	prevEnd int
}

func newState(src string, bag *diag.Bag) *state {
	return &state{lex: lexer.New(src), bag: bag}
}

// next pulls the next token directly from the lexer, transparently
// skipping space/comment/invalid tokens, recording one diagnostic per
// invalid character.
func (s *state) next() lexer.Token {
	for {
		t := s.lex.Next()
		switch t.Kind {
		case lexer.KindSpace, lexer.KindComment:
			continue
		case lexer.KindInvalid:
			span := spanOf(t)
			s.bag.Error(fmt.Sprintf("Invalid character %s", t.Lexeme), &span)
			continue
		default:
			if t.Kind != lexer.KindEOF {
				s.prevEnd = t.Offset + len(t.Lexeme)
			}
			return t
		}
	}
}

// peek returns the next non-skipped token without consuming it.
func (s *state) peek() lexer.Token {
	if s.lookhd == nil {
		t := s.next()
		s.lookhd = &t
	}
	return *s.lookhd
}

// consume returns the buffered token, advancing the lookahead by one. If
// expected is non-empty and the lexeme differs, it emits a recoverable
// error and keeps consuming until a match or eof.
func (s *state) consume(expected string) lexer.Token {
	for {
		t := s.peek()
		if expected == "" || t.Lexeme == expected {
			s.advance()
			return t
		}
		span := spanOf(t)
		s.bag.Error(fmt.Sprintf("Expected %s but got %s. Skipping it.", expected, describeToken(t)), &span)
		if t.Kind == lexer.KindEOF {
			s.fatal(fmt.Sprintf("Unexpected end of input, expected %s.", expected), span)
		}
		s.advance()
	}
}

// consumeType is consume's counterpart matching on token kind instead of
// lexeme.
func (s *state) consumeType(kind lexer.Kind) lexer.Token {
	for {
		t := s.peek()
		if t.Kind == kind {
			s.advance()
			return t
		}
		span := spanOf(t)
		s.bag.Error(fmt.Sprintf("Expected %s but got %s. Skipping it.", kind, describeToken(t)), &span)
		if t.Kind == lexer.KindEOF {
			s.fatal(fmt.Sprintf("Unexpected end of input, expected %s.", kind), span)
		}
		s.advance()
	}
}

func (s *state) advance() {
	t := s.peek()
	if t.Kind != lexer.KindEOF {
		s.prevEnd = t.Offset + len(t.Lexeme)
	}
	s.lookhd = nil
}

// scanToNextStatement discards tokens up to and including the next semi
// token (or eof), restoring the lexer to a safe resynchronization point.
// This is used only by the statement loop's recovery path.
func (s *state) scanToNextStatement() {
	for {
		t := s.peek()
		if t.Kind == lexer.KindEOF {
			return
		}
		s.advance()
		if t.Kind == lexer.KindSemi {
			return
		}
	}
}

func (s *state) pushError(message string, span diag.Span) {
	s.bag.Error(message, &span)
}

func (s *state) pushWarning(message string, span diag.Span) {
	s.bag.Warning(message, &span)
}

// fatal records an error diagnostic and raises the statement-abort signal,
// which only the statement loop's recover catches.
func (s *state) fatal(message string, span diag.Span) {
	s.bag.Fatal(message, &span)
}

func spanOf(t lexer.Token) diag.Span {
	return diag.Span{From: t.Offset, To: t.Offset + len(t.Lexeme)}
}

func describeToken(t lexer.Token) string {
	if t.Kind == lexer.KindEOF {
		return "end of input"
	}
	return fmt.Sprintf("'%s'", t.Lexeme)
}
