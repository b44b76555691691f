// Package logging provides structured logging functionality using log/slog
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with additional application-specific functionality
type Logger struct {
	*slog.Logger
	service string
	version string
}

// NewStructuredLogger creates a new structured logger. Format "json" selects
// the JSON handler; any other format falls back to text output. slog has no
// trace level, so "trace" maps to debug.
func NewStructuredLogger(level, format, service, version string) *Logger {
	return newLogger(os.Stdout, level, format, service, version)
}

// NewLoggerTo creates a logger writing to w; used by tests.
func NewLoggerTo(w io.Writer, level, format, service, version string) *Logger {
	return newLogger(w, level, format, service, version)
}

func newLogger(w io.Writer, level, format, service, version string) *Logger {
	var logLevel slog.Level
	switch level {
	case "trace", "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &Logger{
		Logger:  slog.New(handler),
		service: service,
		version: version,
	}
}

// WithConnID adds a connection ID to the logger
func (l *Logger) WithConnID(connID string) *Logger {
	return &Logger{
		Logger:  l.Logger.With(slog.String(FieldConnID, connID)),
		service: l.service,
		version: l.version,
	}
}

// WithError adds error context to the logger
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l
	}
	return &Logger{
		Logger:  l.Logger.With(slog.String(FieldError, err.Error())),
		service: l.service,
		version: l.version,
	}
}

// WithServiceContext adds service context to the logger
func (l *Logger) WithServiceContext() *Logger {
	return &Logger{
		Logger: l.Logger.With(
			slog.String(FieldService, l.service),
			slog.String(FieldVersion, l.version),
		),
		service: l.service,
		version: l.version,
	}
}

// LogAt logs a message at an arbitrary level, used to log taxonomy errors at
// the level their severity implies.
func (l *Logger) LogAt(level slog.Level, msg string, args ...any) {
	l.Logger.Log(context.Background(), level, msg, args...)
}

// Startup logs application startup information
func (l *Logger) Startup(msg string, args ...any) {
	l.WithServiceContext().Info(msg, args...)
}

// Request logs a completed request exchange
func (l *Logger) Request(method, path string, statusCode int, latencyMs int64) {
	l.Info("request completed",
		slog.String(FieldMethod, method),
		slog.String(FieldPath, path),
		slog.Int(FieldStatus, statusCode),
		slog.Int64(FieldLatencyMs, latencyMs),
	)
}

// HealthCheck logs health check operations
func (l *Logger) HealthCheck(msg string, args ...any) {
	l.Logger.Info("healthcheck: "+msg, args...)
}

// Database logs database-related operations
func (l *Logger) Database(msg string, args ...any) {
	l.Logger.Info("database: "+msg, args...)
}
