// Package obslog is a thin structured-logging wrapper: an immutable
// logger value that accumulates contextual fields via With* calls and
// writes JSON lines through log/slog, in a "clone, don't mutate" style.
package obslog

import (
	"context"
	"io"
	"log/slog"
)

// Logger is an immutable structured logger. Each With* call returns a new
// Logger carrying one additional persistent field. The zero value's
// Debug/Info/Warn/Error calls write nothing; its With* methods panic.
type Logger struct {
	slog *slog.Logger
}

// New builds a Logger writing JSON lines to w at the given minimum level.
func New(w io.Writer, level slog.Level) Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return Logger{slog: slog.New(handler)}
}

// WithField returns a Logger with one additional persistent field.
func (l Logger) WithField(key string, value any) Logger {
	return Logger{slog: l.slog.With(key, value)}
}

// WithRequestID tags every subsequent entry with a correlation id.
func (l Logger) WithRequestID(requestID string) Logger {
	return l.WithField("request_id", requestID)
}

func (l Logger) Debug(msg string, fields ...any) { l.log(slog.LevelDebug, msg, fields) }
func (l Logger) Info(msg string, fields ...any)  { l.log(slog.LevelInfo, msg, fields) }
func (l Logger) Warn(msg string, fields ...any)  { l.log(slog.LevelWarn, msg, fields) }
func (l Logger) Error(msg string, fields ...any) { l.log(slog.LevelError, msg, fields) }

func (l Logger) log(level slog.Level, msg string, fields []any) {
	if l.slog == nil {
		return
	}
	l.slog.Log(context.Background(), level, msg, fields...)
}
