package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level represents the severity level of a log message.
type Level int

// Log levels
const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name ("debug", "info", ...) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "fatal":
		return FatalLevel, nil
	default:
		return InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// Field is a single structured attribute attached to a log message.
type Field struct {
	Key   string
	Value any
}

// String builds a string field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int builds an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Err builds the conventional "error" field.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Any builds a field with an arbitrary value.
func Any(key string, value any) Field { return Field{Key: key, Value: value} }

// Logger is the concrete logger handed to components. Copies made with
// With/WithComponent share the parent's level.
type Logger struct {
	s     *slog.Logger
	level *slog.LevelVar
}

type options struct {
	level  Level
	format string
	out    io.Writer
}

// Option configures NewLogger.
type Option func(*options)

// WithLevel sets the minimum log level.
func WithLevel(level Level) Option {
	return func(o *options) { o.level = level }
}

// WithFormat selects "text" or "json" output.
func WithFormat(format string) Option {
	return func(o *options) { o.format = format }
}

// WithOutput sets the destination writer. Defaults to stderr.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// NewLogger creates a new logger with the given options.
func NewLogger(opts ...Option) *Logger {
	o := options{level: InfoLevel, format: "text", out: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	lv := new(slog.LevelVar)
	lv.Set(toSlogLevel(o.level))

	var h slog.Handler
	if o.format == "json" {
		h = slog.NewJSONHandler(o.out, &slog.HandlerOptions{Level: lv})
	} else {
		h = slog.NewTextHandler(o.out, &slog.HandlerOptions{Level: lv})
	}
	return &Logger{s: slog.New(h), level: lv}
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, fields ...Field) { l.s.Debug(msg, args(fields)...) }

// Info logs at info level.
func (l *Logger) Info(msg string, fields ...Field) { l.s.Info(msg, args(fields)...) }

// Warn logs at warn level.
func (l *Logger) Warn(msg string, fields ...Field) { l.s.Warn(msg, args(fields)...) }

// Error logs at error level.
func (l *Logger) Error(msg string, fields ...Field) { l.s.Error(msg, args(fields)...) }

// Fatal logs at error level and exits the process.
func (l *Logger) Fatal(msg string, fields ...Field) {
	l.s.Error(msg, args(fields)...)
	os.Exit(1)
}

// With returns a copy of the logger carrying the extra fields on every
// message.
func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{s: l.s.With(args(fields)...), level: l.level}
}

// WithComponent tags logs with a component name.
func (l *Logger) WithComponent(component string) *Logger {
	return l.With(String("component", component))
}

// SetLevel adjusts the minimum level for this logger and every copy that
// shares it.
func (l *Logger) SetLevel(level Level) {
	l.level.Set(toSlogLevel(level))
}

func toSlogLevel(level Level) slog.Level {
	switch level {
	case DebugLevel:
		return slog.LevelDebug
	case InfoLevel:
		return slog.LevelInfo
	case WarnLevel:
		return slog.LevelWarn
	case ErrorLevel, FatalLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func args(fields []Field) []any {
	if len(fields) == 0 {
		return nil
	}
	out := make([]any, 0, len(fields))
	for _, f := range fields {
		out = append(out, slog.Any(f.Key, f.Value))
	}
	return out
}
