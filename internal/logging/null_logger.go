package logging

import "github.com/vvka-141/bmecat/pkg/bmecat"

// NullLogger is a no-op logger that discards all log messages.
// Safe for concurrent use by multiple goroutines.
// Useful for testing and when logging is not desired.
type NullLogger struct{}

// NewNullLogger creates a new NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

// Log is a no-op.
func (l *NullLogger) Log(severity bmecat.Severity, message string) {}
