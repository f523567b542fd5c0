package observability

import "log/slog"

// Logger is the structured logging contract used across the service.
// Components hold a Logger rather than a concrete backend so tests can run
// silent and the binary can pick its handler.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

type Field struct {
	Key   string
	Value any
}

func String(key, value string) Field    { return Field{Key: key, Value: value} }
func Int(key string, value int) Field   { return Field{Key: key, Value: value} }
func Error(key string, err error) Field { return Field{Key: key, Value: err} }

type NopLogger struct{}

func (NopLogger) Debug(string, ...Field) {}
func (NopLogger) Info(string, ...Field)  {}
func (NopLogger) Warn(string, ...Field)  {}
func (NopLogger) Error(string, ...Field) {}
func (NopLogger) With(...Field) Logger   { return NopLogger{} }

type slogLogger struct {
	l *slog.Logger
}

// NewSlog wraps a slog.Logger in the Logger contract. The service logs to
// stderr; stdout belongs to the tool-invocation framing.
func NewSlog(l *slog.Logger) Logger { return slogLogger{l: l} }

func (s slogLogger) Debug(msg string, fields ...Field) { s.l.Debug(msg, args(fields)...) }
func (s slogLogger) Info(msg string, fields ...Field)  { s.l.Info(msg, args(fields)...) }
func (s slogLogger) Warn(msg string, fields ...Field)  { s.l.Warn(msg, args(fields)...) }
func (s slogLogger) Error(msg string, fields ...Field) { s.l.Error(msg, args(fields)...) }

func (s slogLogger) With(fields ...Field) Logger {
	return slogLogger{l: s.l.With(args(fields)...)}
}

func args(fields []Field) []any {
	out := make([]any, 0, len(fields)*2)
	for _, f := range fields {
		out = append(out, f.Key, f.Value)
	}
	return out
}
