package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a structured logger keyed by action. It is safe for concurrent use.
//
// Every entry carries the service name and hostname so that diagnostics from
// several test runs can be told apart.
type Logger struct {
	z *zap.SugaredLogger
}

// NewLogger creates a zap-backed Logger for the named service.
// Non-verbose loggers only write DPANIC and above, so a failed run leaves the
// single console error line; verbose loggers use zap's development encoder at
// DEBUG level on stderr.
func NewLogger(serviceName string, verbose bool) (*Logger, error) {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DPanicLevel)
		cfg.DisableStacktrace = true
	}
	cfg.OutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return New(l, serviceName), nil
}

// New wraps an existing zap logger.
func New(l *zap.Logger, serviceName string) *Logger {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	return &Logger{
		z: l.Sugar().With("service", serviceName, "hostname", hostname),
	}
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{z: zap.NewNop().Sugar()}
}

func (l *Logger) with(action, requestID string) *zap.SugaredLogger {
	z := l.z.With("action", action)
	if requestID != "" {
		z = z.With("request_id", requestID)
	}
	return z
}

// Info logs a message at the INFO level.
// requestID is an optional correlation ID for tracing.
func (l *Logger) Info(action, message string, requestID ...string) {
	l.with(action, first(requestID)).Info(message)
}

// Debug logs a message at the DEBUG level.
// requestID is an optional correlation ID for tracing.
func (l *Logger) Debug(action, message string, requestID ...string) {
	l.with(action, first(requestID)).Debug(message)
}

// Error logs err at the ERROR level.
// requestID is an optional correlation ID for tracing.
func (l *Logger) Error(err error, action, message string, requestID ...string) {
	l.with(action, first(requestID)).Errorw(message, "error", err)
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.z.Sync()
}

func first(ids []string) string {
	if len(ids) > 0 {
		return ids[0]
	}
	return ""
}
