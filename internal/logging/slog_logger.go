package logging

import (
	"context"
	"log/slog"

	"github.com/vvka-141/bmecat/pkg/bmecat"
)

// SlogLogger forwards messages to a *slog.Logger, mapping severities onto
// slog levels.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger wraps logger; nil wraps slog.Default().
func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogLogger{logger: logger}
}

// Log implements bmecat.Logger.
func (l *SlogLogger) Log(severity bmecat.Severity, message string) {
	l.logger.Log(context.Background(), slogLevel(severity), message, "component", "bmecat")
}

func slogLevel(severity bmecat.Severity) slog.Level {
	switch severity {
	case bmecat.SeverityDebug:
		return slog.LevelDebug
	case bmecat.SeverityWarning:
		return slog.LevelWarn
	case bmecat.SeverityError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
