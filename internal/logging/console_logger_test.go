package logging

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/vvka-141/bmecat/pkg/bmecat"
)

// captureStderr runs fn with os.Stderr redirected and returns what it wrote.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	os.Stderr = w

	outputCh := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		outputCh <- buf.String()
	}()

	fn()

	w.Close()
	os.Stderr = old
	return <-outputCh
}

func TestConsoleLogger_Log(t *testing.T) {
	tests := []struct {
		name     string
		verbose  bool
		severity bmecat.Severity
		expected string
	}{
		{"debug when verbose", true, bmecat.SeverityDebug, "[VERBOSE] spooled 10 bytes\n"},
		{"debug when quiet", false, bmecat.SeverityDebug, ""},
		{"info", false, bmecat.SeverityInfo, "spooled 10 bytes\n"},
		{"warning", false, bmecat.SeverityWarning, "[WARN] spooled 10 bytes\n"},
		{"error", false, bmecat.SeverityError, "[ERROR] spooled 10 bytes\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewConsoleLogger(tt.verbose)
			output := captureStderr(t, func() {
				logger.Log(tt.severity, "spooled 10 bytes")
			})
			if output != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, output)
			}
		})
	}
}

func TestConsoleLogger_Verbose_WhenEnabled(t *testing.T) {
	logger := NewConsoleLogger(true)
	output := captureStderr(t, func() {
		logger.Verbose("test message: %s", "value")
	})

	expected := "[VERBOSE] test message: value\n"
	if output != expected {
		t.Errorf("Expected %q, got %q", expected, output)
	}
}

func TestConsoleLogger_Verbose_WhenDisabled(t *testing.T) {
	logger := NewConsoleLogger(false)
	output := captureStderr(t, func() {
		logger.Verbose("test message: %s", "value")
	})

	if output != "" {
		t.Errorf("Expected no output, got %q", output)
	}
}

func TestConsoleLogger_FormattedHelpers(t *testing.T) {
	logger := NewConsoleLogger(false)
	output := captureStderr(t, func() {
		logger.Info("info message: %s", "value")
		logger.Warn("unknown currency %q", "DOLLARS")
		logger.Error("error message: %s", "value")
		logger.Info("plain message")
	})

	expected := "info message: value\n" +
		"[WARN] unknown currency \"DOLLARS\"\n" +
		"[ERROR] error message: value\n" +
		"plain message\n"
	if output != expected {
		t.Errorf("Expected %q, got %q", expected, output)
	}
}

func TestConsoleLogger_ConcurrentSafety(t *testing.T) {
	logger := NewConsoleLogger(true)

	output := captureStderr(t, func() {
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(id int) {
				defer wg.Done()
				logger.Info("message %d", id)
				logger.Verbose("verbose %d", id)
				logger.Log(bmecat.SeverityError, fmt.Sprintf("error %d", id))
			}(i)
		}
		wg.Wait()
	})

	// Verify we got all messages (10 * 3 = 30 lines)
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 30 {
		t.Errorf("Expected 30 lines, got %d", len(lines))
	}

	// Verify no interleaved output (each line should be complete)
	for i, line := range lines {
		if !strings.Contains(line, "message") && !strings.Contains(line, "verbose") && !strings.Contains(line, "error") {
			t.Errorf("Line %d appears corrupted: %q", i, line)
		}
	}
}

func TestNullLogger_DiscardsAllMessages(t *testing.T) {
	logger := NewNullLogger()
	output := captureStderr(t, func() {
		logger.Log(bmecat.SeverityDebug, "verbose")
		logger.Log(bmecat.SeverityInfo, "info")
		logger.Log(bmecat.SeverityError, "error")
	})

	if output != "" {
		t.Errorf("NullLogger should discard all messages, got: %q", output)
	}
}

func TestSlogLogger_MapsSeverities(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlogLogger(slog.New(handler))

	logger.Log(bmecat.SeverityDebug, "d")
	logger.Log(bmecat.SeverityInfo, "i")
	logger.Log(bmecat.SeverityWarning, "w")
	logger.Log(bmecat.SeverityError, "e")

	output := buf.String()
	for _, want := range []string{"level=DEBUG msg=d", "level=INFO msg=i", "level=WARN msg=w", "level=ERROR msg=e", "component=bmecat"} {
		if !strings.Contains(output, want) {
			t.Errorf("slog output missing %q:\n%s", want, output)
		}
	}
}

func TestSlogLogger_NilUsesDefault(t *testing.T) {
	if NewSlogLogger(nil).logger == nil {
		t.Error("NewSlogLogger(nil) should fall back to slog.Default()")
	}
}

// BenchmarkConsoleLogger_VerboseDisabled measures performance when verbose is disabled
func BenchmarkConsoleLogger_VerboseDisabled(b *testing.B) {
	logger := NewConsoleLogger(false)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Log(bmecat.SeverityDebug, "benchmark message")
	}
}

// Example demonstrates NullLogger usage
func ExampleNullLogger() {
	var logger bmecat.Logger = NewNullLogger()
	logger.Log(bmecat.SeverityWarning, "This message is discarded")
	fmt.Println("Done")
	// Output:
	// Done
}
