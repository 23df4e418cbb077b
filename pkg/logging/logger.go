// Package logging provides structured logging for the matchers
// module, backed by zerolog. Only the declarative assertion
// layer logs; the matching core itself performs no I/O.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// Field is a key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value any
}

// Logger writes structured log entries. The zero value is not
// usable; construct one with New or Discard.
type Logger struct {
	z zerolog.Logger
}

// New creates a Logger writing JSON entries to w at the given
// level.
func New(w io.Writer, level Level) *Logger {
	z := zerolog.New(w).
		Level(makeZerologLevel(level)).
		With().Timestamp().Logger()
	return &Logger{z: z}
}

// Discard creates a Logger that drops every entry.
func Discard() *Logger {
	return &Logger{z: zerolog.Nop()}
}

// WithFields returns a Logger with additional fields attached
// to every subsequent entry.
func (l *Logger) WithFields(fields ...Field) *Logger {
	ctx := l.z.With()
	for _, f := range fields {
		ctx = ctx.Interface(f.Key, f.Value)
	}
	return &Logger{z: ctx.Logger()}
}

// Debug logs a debug-level message.
func (l *Logger) Debug(msg string, fields ...Field) {
	emit(l.z.Debug(), msg, fields)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, fields ...Field) {
	emit(l.z.Info(), msg, fields)
}

// Error logs a failure message.
func (l *Logger) Error(msg string, fields ...Field) {
	emit(l.z.Error(), msg, fields)
}

func emit(ev *zerolog.Event, msg string, fields []Field) {
	for _, f := range fields {
		ev = ev.Interface(f.Key, f.Value)
	}
	ev.Msg(msg)
}
