package obslog

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewWritesJSONLines(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelInfo)
	l.Info("hello", "n", 1)

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("not valid JSON: %v (%s)", err, buf.String())
	}
	if line["msg"] != "hello" || line["n"] != float64(1) {
		t.Fatalf("got %+v", line)
	}
}

func TestWithFieldPersistsAcrossCalls(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelInfo).WithField("component", "parser")
	l.Info("one")
	l.Info("two")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	for _, raw := range lines {
		var line map[string]any
		if err := json.Unmarshal([]byte(raw), &line); err != nil {
			t.Fatalf("not valid JSON: %v", err)
		}
		if line["component"] != "parser" {
			t.Fatalf("missing persistent field in %q", raw)
		}
	}
}

func TestWithFieldIsImmutable(t *testing.T) {
	var buf bytes.Buffer
	base := New(&buf, slog.LevelInfo)
	tagged := base.WithRequestID("abc-123")

	buf.Reset()
	base.Info("untagged")
	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("not valid JSON: %v", err)
	}
	if _, ok := line["request_id"]; ok {
		t.Fatalf("base logger picked up a field from its derived clone: %+v", line)
	}

	buf.Reset()
	tagged.Info("tagged")
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("not valid JSON: %v", err)
	}
	if line["request_id"] != "abc-123" {
		t.Fatalf("derived logger missing request_id: %+v", line)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelWarn)
	l.Debug("should not appear")
	l.Info("should not appear either")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below the minimum level, got %q", buf.String())
	}
	l.Warn("this should appear")
	if buf.Len() == 0 {
		t.Fatalf("expected output at or above the minimum level")
	}
}

func TestZeroValueLoggerIsSafe(t *testing.T) {
	var l Logger
	l.Info("no panic please")
}
