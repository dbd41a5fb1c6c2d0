// Package obslog provides gdcf's structured logging: JSON lines tagged with
// a correlation id, adapted from the teacher's request-logging middleware
// (pkg/middleware/logging.go) but detached from net/http — gdcf has no HTTP
// surface of its own.
package obslog

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
)

type contextKey string

const correlationIDKey contextKey = "gdcf-correlation-id"

// WithCorrelationID attaches a correlation id to ctx, generating one if none
// is given.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = uuid.New().String()
	}
	return context.WithValue(ctx, correlationIDKey, id)
}

// CorrelationID retrieves the correlation id from ctx, or "" if none was
// attached.
func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey).(string)
	return id
}

// Logger writes structured JSON log lines via the standard log package,
// matching the teacher's choice not to reach for a third-party logging
// library — every GDCF log line still carries a correlation id the same
// way the teacher's HTTP middleware does, just sourced from context instead
// of a request header.
type Logger struct {
	prefix string
}

// New creates a Logger; prefix identifies the component emitting lines
// (e.g. "gdcf.process", "gdcf.upgrade").
func New(prefix string) *Logger {
	return &Logger{prefix: prefix}
}

// Info logs a structured line at info level.
func (l *Logger) Info(ctx context.Context, msg string, fields map[string]any) {
	l.write(ctx, "INFO", msg, fields)
}

// Warn logs a structured line at warn level.
func (l *Logger) Warn(ctx context.Context, msg string, fields map[string]any) {
	l.write(ctx, "WARN", msg, fields)
}

// Error logs a structured line at error level.
func (l *Logger) Error(ctx context.Context, msg string, fields map[string]any) {
	l.write(ctx, "ERROR", msg, fields)
}

func (l *Logger) write(ctx context.Context, level, msg string, fields map[string]any) {
	entry := map[string]any{
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
		"correlation_id": CorrelationID(ctx),
		"component":      l.prefix,
		"message":        msg,
	}
	for k, v := range fields {
		entry[k] = v
	}

	data, err := json.Marshal(entry)
	if err != nil {
		log.Printf("[%s] failed to marshal log entry: %v", level, err)
		return
	}
	log.Printf("[%s] %s", level, string(data))
}
