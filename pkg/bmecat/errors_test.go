package bmecat_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vvka-141/bmecat/pkg/bmecat"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, bmecat.ExitSuccess},
		{"general error", errors.New("something went wrong"), bmecat.ExitGeneralError},
		{"unknown flag", errors.New("unknown flag --foo"), bmecat.ExitUsageError},
		{"accepts args", errors.New("accepts 1 arg(s), received 0"), bmecat.ExitUsageError},
		{"missing argument", errors.New("missing required argument: <catalog_path>"), bmecat.ExitUsageError},
		{"invalid config", fmt.Errorf("workers: %w", bmecat.ErrInvalidConfig), bmecat.ExitConfigError},
		{"invalid stream", bmecat.ErrInvalidStream, bmecat.ExitInvalidStream},
		{"file not found", fmt.Errorf("open: %w", bmecat.ErrFileNotFound), bmecat.ExitFileNotFound},
		{"unsupported version", bmecat.ErrUnsupportedVersion, bmecat.ExitUnsupportedVersion},
		{"document error", &bmecat.DocumentError{Line: 3, Err: errors.New("bad")}, bmecat.ExitInvalidDocument},
		{"element error", &bmecat.ElementError{Kind: "product", Err: errors.New("boom")}, bmecat.ExitInvalidDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bmecat.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestElementError_Message(t *testing.T) {
	cause := errors.New("boom")
	err := &bmecat.ElementError{Kind: "product", Index: 4, ID: "Q20-P09", Err: cause}

	if got, want := err.Error(), "product #5 (Q20-P09): boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, cause) || !errors.Is(err, bmecat.ErrInvalidDocument) {
		t.Error("expected ElementError to unwrap to cause and ErrInvalidDocument")
	}
}

func TestDocumentError_Message(t *testing.T) {
	err := &bmecat.DocumentError{Line: 12, Err: errors.New("unexpected EOF")}
	if got, want := err.Error(), "invalid document at line 12: unexpected EOF"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
