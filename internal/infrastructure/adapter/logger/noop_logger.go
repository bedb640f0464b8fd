package logger

import (
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
)

// NoopLogger implements the Logger interface but discards every entry.
// Integration tests and the load script use it.
type NoopLogger struct {
	level core.LogLevel
}

// NewNoopLogger creates a new no-op logger
func NewNoopLogger() core.Logger {
	return &NoopLogger{
		level: core.LogLevelInfo,
	}
}

// SetLevel sets the minimum log level to output
func (l *NoopLogger) SetLevel(level core.LogLevel) {
	l.level = level
}

// GetLevel gets the current log level
func (l *NoopLogger) GetLevel() core.LogLevel {
	return l.level
}

func (l *NoopLogger) Debug(string, map[string]any) {}
func (l *NoopLogger) Info(string, map[string]any)  {}
func (l *NoopLogger) Warn(string, map[string]any)  {}
func (l *NoopLogger) Error(string, map[string]any) {}

// Flush is a no-op
func (l *NoopLogger) Flush() error {
	return nil
}
