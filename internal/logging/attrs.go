package logging

import (
	"context"
	"log/slog"
)

// Attr aliases slog.Attr so callers avoid importing log/slog directly.
type Attr = slog.Attr

// Value aliases slog.Value.
type Value = slog.Value

// Attribute constructors shared across the project.
var (
	String   = slog.String
	Int      = slog.Int
	Int64    = slog.Int64
	Uint64   = slog.Uint64
	Float64  = slog.Float64
	Bool     = slog.Bool
	Duration = slog.Duration
	Time     = slog.Time
	Any      = slog.Any
	Group    = slog.Group
)

// Error builds a standard error attribute. Nil errors produce an empty string
// so log lines keep a stable shape.
func Error(err error) Attr {
	if err == nil {
		return slog.String(FieldError, "")
	}
	return slog.String(FieldError, err.Error())
}

// Args converts attrs to the variadic any slice expected by slog methods.
func Args(attrs ...Attr) []any {
	args := make([]any, 0, len(attrs))
	for _, attr := range attrs {
		args = append(args, attr)
	}
	return args
}

// Common attribute keys. Keeping them here means every package logs the same
// field names and downstream filtering stays predictable.
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldRunID     = "run_id"
	FieldSection   = "section"
	FieldSentence  = "sentence"
	FieldCue       = "cue"
	FieldCueCount  = "cue_count"
	FieldDuration  = "duration_seconds"
	FieldFile      = "file"
	FieldGlyphs    = "glyphs"
	FieldReason    = "reason"
)

// NewComponentLogger returns a child logger tagged with a component name.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		return NewNop()
	}
	return logger.With(String(FieldComponent, component))
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(NoopHandler{})
}

// NoopHandler drops all records.
type NoopHandler struct{}

func (NoopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (NoopHandler) Handle(context.Context, slog.Record) error { return nil }

func (NoopHandler) WithAttrs([]slog.Attr) slog.Handler { return NoopHandler{} }

func (NoopHandler) WithGroup(string) slog.Handler { return NoopHandler{} }
