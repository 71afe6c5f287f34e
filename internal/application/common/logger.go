package common

import "context"

// ContainerLogger is the logging port used by application code.
// Levels are upper-case strings: DEBUG, INFO, WARN, ERROR.
type ContainerLogger interface {
	Log(level, message string, metadata map[string]interface{})
}

// Context keys for passing logger through context
type contextKey int

const (
	loggerKey contextKey = iota
)

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger ContainerLogger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext extracts the logger from context, or returns a no-op logger if not found
func LoggerFromContext(ctx context.Context) ContainerLogger {
	if logger, ok := ctx.Value(loggerKey).(ContainerLogger); ok {
		return logger
	}
	return &noOpLogger{}
}

// WithFields returns a logger that adds fields to every entry.
// Per-call metadata wins over fields with the same key.
func WithFields(logger ContainerLogger, fields map[string]interface{}) ContainerLogger {
	return &fieldLogger{next: logger, fields: fields}
}

type fieldLogger struct {
	next   ContainerLogger
	fields map[string]interface{}
}

func (l *fieldLogger) Log(level, message string, metadata map[string]interface{}) {
	merged := make(map[string]interface{}, len(l.fields)+len(metadata))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range metadata {
		merged[k] = v
	}
	l.next.Log(level, message, merged)
}

// noOpLogger is a logger that does nothing (fallback when no logger in context)
type noOpLogger struct{}

func (l *noOpLogger) Log(level, message string, metadata map[string]interface{}) {
	// Do nothing
}
