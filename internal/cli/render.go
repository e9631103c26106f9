// Package cli is the command-line front end: a small Cobra application
// that lexes, parses, and renders diagnostics for a source file.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"graphparse/internal/diag"
)

var (
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
	warningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B"))
	locationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	caretStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
)

// Render writes one entry per diagnostic to w, in the order given: a
// header line, followed by a caret-annotated snippet when the diagnostic
// has a span. When colorize is false (check passes false when NO_COLOR is
// set) no ANSI escapes are written.
func Render(w io.Writer, source string, diagnostics []diag.Diagnostic, colorize bool) {
	for _, d := range diagnostics {
		fmt.Fprint(w, renderOne(source, d, colorize))
	}
}

func renderOne(source string, d diag.Diagnostic, colorize bool) string {
	header := severityLabel(d.Severity, colorize)
	if d.Span == nil {
		return fmt.Sprintf("%s: %s\n", header, d.Message)
	}
	line, col := lineCol(source, d.Span.From)
	loc := fmt.Sprintf("%d:%d", line, col)
	if colorize {
		loc = locationStyle.Render(loc)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s at %s: %s\n\n", header, loc, d.Message)
	writeSnippet(&b, source, line, col, colorize)
	b.WriteString("\n")
	return b.String()
}

func severityLabel(sev diag.Severity, colorize bool) string {
	label := strings.ToUpper(string(sev))
	if !colorize {
		return label
	}
	if sev == diag.SeverityError {
		return errorStyle.Render(label)
	}
	return warningStyle.Render(label)
}

// lineCol converts a 0-based byte offset into a 1-based (line, column)
// pair, scanning source once rune by rune so multi-byte UTF-8 characters
// count as a single column. Out-of-range offsets clamp to the last valid
// position rather than panicking.
func lineCol(source string, offset int) (line, col int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(source) {
		offset = len(source)
	}
	line, col = 1, 1
	for _, r := range source[:offset] {
		if r == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}

func writeSnippet(b *strings.Builder, source string, line, col int, colorize bool) {
	lines := strings.Split(source, "\n")
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	if line > 1 {
		fmt.Fprintf(b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(b, "%4d | %s\n", line, lines[line-1])
	pad := col - 1
	if pad < 0 {
		pad = 0
	}
	caret := "^"
	if colorize {
		caret = caretStyle.Render(caret)
	}
	fmt.Fprintf(b, "     | %s%s\n", strings.Repeat(" ", pad), caret)
	if line < len(lines) {
		fmt.Fprintf(b, "%4d | %s\n", line+1, lines[line])
	}
}
