package logging

import (
	"fmt"
	"os"
	"sync"

	"github.com/vvka-141/bmecat/pkg/bmecat"
)

// ConsoleLogger writes log messages to stderr.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	verbose bool
	mu      sync.Mutex
}

// NewConsoleLogger creates a new ConsoleLogger.
// If verbose is true, debug messages are written with a [VERBOSE] prefix.
// If verbose is false, they are dropped.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return &ConsoleLogger{
		verbose: verbose,
	}
}

// Log implements bmecat.Logger.
func (l *ConsoleLogger) Log(severity bmecat.Severity, message string) {
	switch severity {
	case bmecat.SeverityDebug:
		if !l.verbose {
			return
		}
		l.write("[VERBOSE] ", message)
	case bmecat.SeverityWarning:
		l.write("[WARN] ", message)
	case bmecat.SeverityError:
		l.write("[ERROR] ", message)
	default:
		l.write("", message)
	}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	l.Log(bmecat.SeverityDebug, sprintf(format, args))
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.Log(bmecat.SeverityInfo, sprintf(format, args))
}

// Warn logs recoverable problems.
func (l *ConsoleLogger) Warn(format string, args ...interface{}) {
	l.Log(bmecat.SeverityWarning, sprintf(format, args))
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.Log(bmecat.SeverityError, sprintf(format, args))
}

func (l *ConsoleLogger) write(prefix, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(os.Stderr, prefix+message+"\n")
}

func sprintf(format string, args []interface{}) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
