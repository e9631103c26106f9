package lexer

import "testing"

func collect(src string) []Token {
	l := New(src)
	var toks []Token
	for {
		t := l.Next()
		toks = append(toks, t)
		if t.Kind == KindEOF {
			return toks
		}
	}
}

func TestNumbers(t *testing.T) {
	cases := []string{"3", "3.14", ".5", "1e10", "1.5e-3", "2E+4"}
	for _, src := range cases {
		toks := collect(src)
		if toks[0].Kind != KindNumber || toks[0].Lexeme != src {
			t.Fatalf("%q: got %+v", src, toks[0])
		}
	}
}

func TestIdentifierAndKeyword(t *testing.T) {
	toks := collect("xyz table")
	if toks[0].Kind != KindID || toks[0].Lexeme != "xyz" {
		t.Fatalf("got %+v", toks[0])
	}
	if toks[1].Kind != KindSpace {
		t.Fatalf("expected space token, got %+v", toks[1])
	}
	if toks[2].Kind != KindKeyword || toks[2].Lexeme != "table" {
		t.Fatalf("got %+v", toks[2])
	}
}

func TestMultiCharPunctLongestMatch(t *testing.T) {
	toks := collect("a->b<=c...d")
	want := []struct {
		kind Kind
		lex  string
	}{
		{KindID, "a"}, {KindPunct, "->"}, {KindID, "b"}, {KindPunct, "<="},
		{KindID, "c"}, {KindPunct, "..."}, {KindID, "d"}, {KindEOF, ""},
	}
	for i, w := range want {
		if toks[i].Kind != w.kind || toks[i].Lexeme != w.lex {
			t.Fatalf("token %d: got %+v want %+v", i, toks[i], w)
		}
	}
}

func TestDerivativePunct(t *testing.T) {
	toks := collect("d/dx")
	if toks[0].Kind != KindPunct || toks[0].Lexeme != "d/d" {
		t.Fatalf("got %+v", toks[0])
	}
	if toks[1].Kind != KindID || toks[1].Lexeme != "x" {
		t.Fatalf("got %+v", toks[1])
	}
}

func TestStyleAndRegressionBraces(t *testing.T) {
	toks := collect("@{ #{")
	if toks[0].Kind != KindPunct || toks[0].Lexeme != "@{" {
		t.Fatalf("got %+v", toks[0])
	}
	if toks[2].Kind != KindPunct || toks[2].Lexeme != "#{" {
		t.Fatalf("got %+v", toks[2])
	}
}

func TestStringEscape(t *testing.T) {
	toks := collect(`"a\"b"`)
	if toks[0].Kind != KindString || toks[0].Lexeme != `"a\"b"` {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestPrimeRun(t *testing.T) {
	toks := collect("f''(x)")
	if toks[0].Kind != KindID {
		t.Fatalf("got %+v", toks[0])
	}
	if toks[1].Kind != KindPrime || toks[1].Lexeme != "''" {
		t.Fatalf("got %+v", toks[1])
	}
}

func TestSemiFromBlankLine(t *testing.T) {
	toks := collect("a\n\n\nb")
	if toks[1].Kind != KindSemi {
		t.Fatalf("expected semi from blank line run, got %+v", toks[1])
	}
	toks2 := collect("a\nb")
	if toks2[1].Kind != KindSpace {
		t.Fatalf("single newline should stay space, got %+v", toks2[1])
	}
}

func TestInvalidCharacter(t *testing.T) {
	toks := collect("a$b")
	if toks[1].Kind != KindInvalid || toks[1].Lexeme != "$" {
		t.Fatalf("got %+v", toks[1])
	}
}

func TestLeadingUnderscoreIsNotAnIdentifierStart(t *testing.T) {
	toks := collect("_foo")
	if toks[0].Kind != KindInvalid || toks[0].Lexeme != "_" {
		t.Fatalf("expected a leading '_' to be invalid, got %+v", toks[0])
	}
	if toks[1].Kind != KindID || toks[1].Lexeme != "foo" {
		t.Fatalf("expected 'foo' to still lex as an identifier, got %+v", toks[1])
	}
}

func TestUnderscoreIsAValidIdentifierContinuation(t *testing.T) {
	toks := collect("f_oo")
	if toks[0].Kind != KindID || toks[0].Lexeme != "f_oo" {
		t.Fatalf("expected '_' inside an identifier to continue it, got %+v", toks[0])
	}
}

func TestCommentStopsAtNewline(t *testing.T) {
	toks := collect("// hi\nx")
	if toks[0].Kind != KindComment || toks[0].Lexeme != "// hi" {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestEOFRepeatable(t *testing.T) {
	l := New("")
	a := l.Next()
	b := l.Next()
	if a.Kind != KindEOF || b.Kind != KindEOF || a.Offset != 0 || b.Offset != 0 {
		t.Fatalf("got %+v %+v", a, b)
	}
}
