package cli

import (
	"strings"
	"testing"

	"graphparse/internal/diag"
)

func TestLineColFirstLine(t *testing.T) {
	line, col := lineCol("abc\ndef", 1)
	if line != 1 || col != 2 {
		t.Fatalf("got line=%d col=%d, want 1,2", line, col)
	}
}

func TestLineColAfterNewline(t *testing.T) {
	line, col := lineCol("abc\ndef", 4)
	if line != 2 || col != 1 {
		t.Fatalf("got line=%d col=%d, want 2,1", line, col)
	}
}

func TestLineColCountsRunesNotBytes(t *testing.T) {
	// "café" has a 2-byte 'é'; the 'x' that follows it starts at byte
	// offset 6 but is the 6th rune on the line, so column 6 - not 7, which
	// byte-counting would report by charging 'é' two columns.
	source := "café x"
	line, col := lineCol(source, 6)
	if line != 1 || col != 6 {
		t.Fatalf("got line=%d col=%d, want 1,6", line, col)
	}
}

func TestLineColClampsOutOfRangeOffset(t *testing.T) {
	line, col := lineCol("abc", 100)
	if line != 1 || col != 4 {
		t.Fatalf("got line=%d col=%d, want 1,4", line, col)
	}
}

func TestRenderUncolorizedContainsMessageAndCaret(t *testing.T) {
	source := "y=1<x>y"
	diags := []diag.Diagnostic{
		{Severity: diag.SeverityError, Message: "Cannot chain > with <", Span: &diag.Span{From: 4, To: 5}},
	}
	var b strings.Builder
	Render(&b, source, diags, false)
	out := b.String()
	if !strings.Contains(out, "ERROR") {
		t.Fatalf("expected an ERROR label, got %q", out)
	}
	if !strings.Contains(out, "Cannot chain > with <") {
		t.Fatalf("expected the diagnostic message, got %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Fatalf("expected a caret in the snippet, got %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no ANSI escapes when colorize is false, got %q", out)
	}
}

func TestRenderColorizedEmitsANSI(t *testing.T) {
	source := "y=1"
	diags := []diag.Diagnostic{
		{Severity: diag.SeverityWarning, Message: "test", Span: &diag.Span{From: 0, To: 1}},
	}
	var b strings.Builder
	Render(&b, source, diags, true)
	if !strings.Contains(b.String(), "\x1b[") {
		t.Fatalf("expected ANSI escapes when colorize is true, got %q", b.String())
	}
}

func TestRenderSpanlessDiagnosticSkipsSnippet(t *testing.T) {
	diags := []diag.Diagnostic{
		{Severity: diag.SeverityWarning, Message: "Program is empty. Try typing: y=x", Span: nil},
	}
	var b strings.Builder
	Render(&b, "", diags, false)
	out := b.String()
	if !strings.Contains(out, "Program is empty. Try typing: y=x") {
		t.Fatalf("expected the message, got %q", out)
	}
	if strings.Contains(out, "|") {
		t.Fatalf("expected no snippet block for a spanless diagnostic, got %q", out)
	}
}
