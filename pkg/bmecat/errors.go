package bmecat

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for load and save failures.
// Callers distinguish them with errors.Is().
//
// Example usage:
//
//	catalog, err := catalogio.LoadFile("catalog.xml")
//	if errors.Is(err, bmecat.ErrFileNotFound) {
//	    // Handle missing input
//	}
var (
	// ErrInvalidStream indicates the input is not readable or the output is not writable.
	ErrInvalidStream = errors.New("invalid stream")

	// ErrFileNotFound indicates the supplied catalog path does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrUnsupportedVersion indicates a schema version other than 1.2 or 2005 was requested.
	ErrUnsupportedVersion = errors.New("unsupported BMECat version")

	// ErrInvalidDocument indicates the XML is not well-formed or could not be mapped.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrInvalidConfig indicates invalid options or configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// DocumentError describes a syntax failure in the underlying XML.
type DocumentError struct {
	Line int
	Err  error
}

func (e *DocumentError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid document at line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("invalid document: %v", e.Err)
}

func (e *DocumentError) Unwrap() []error {
	return []error{ErrInvalidDocument, e.Err}
}

// ElementError reports a failure while mapping one repeating element
// (a product, a catalog group or a group mapping). A single ElementError
// aborts the whole load.
type ElementError struct {
	Kind  string
	Index int
	ID    string
	Err   error
}

func (e *ElementError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s #%d", e.Kind, e.Index+1)
	if e.ID != "" {
		fmt.Fprintf(&b, " (%s)", e.ID)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *ElementError) Unwrap() []error {
	return []error{ErrInvalidDocument, e.Err}
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrInvalidStream):
		return ExitInvalidStream
	case errors.Is(err, ErrFileNotFound):
		return ExitFileNotFound
	case errors.Is(err, ErrUnsupportedVersion):
		return ExitUnsupportedVersion
	case errors.Is(err, ErrInvalidDocument):
		return ExitInvalidDocument
	}

	// Cobra does not export typed errors for argument and flag misuse
	errStr := err.Error()
	if strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown shorthand flag") ||
		strings.Contains(errStr, "unknown command") ||
		strings.Contains(errStr, "arg(s)") ||
		strings.Contains(errStr, "missing required argument") ||
		strings.Contains(errStr, "invalid argument") {
		return ExitUsageError
	}

	return ExitGeneralError
}
