package bmecat

import (
	"errors"
	"fmt"
	"strings"
)

// Output encodings supported when saving.
const (
	EncodingUTF8      = "utf-8"
	EncodingISO8859_1 = "iso-8859-1"
)

// Options control loading and saving. The zero value is usable.
type Options struct {
	// Logger receives soft failures. Nil discards them.
	Logger Logger

	// QuantityConverter is consulted before the built-in unit table.
	QuantityConverter QuantityCodeConverter

	// Workers bounds the parallel per-element parsing. Zero means GOMAXPROCS.
	Workers int

	// SpoolThreshold is the input size above which input is spooled through
	// a temporary file. Zero means DefaultSpoolThreshold.
	SpoolThreshold int64

	// SpoolDir is where temporary files are created. Empty means os.TempDir().
	SpoolDir string

	// SizeHint overrides the input length when the reader cannot report it.
	// Zero or negative means unknown.
	SizeHint int64

	// Version forces a dialect instead of detecting it; empty detects.
	Version string

	// Encoding selects the output character set. Empty means UTF-8.
	Encoding string

	// Indent is the number of spaces per nesting level in saved XML.
	// Zero means two spaces; negative disables indentation.
	Indent int

	// GeneratorInfo is written as GENERATOR_INFO when the catalog has none.
	GeneratorInfo string
}

// Validate checks the options for consistency.
func (o *Options) Validate() error {
	var errs []error

	if o.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers cannot be negative: %w", ErrInvalidConfig))
	}

	if o.SpoolThreshold < 0 {
		errs = append(errs, fmt.Errorf("spool threshold cannot be negative: %w", ErrInvalidConfig))
	}

	if o.Version != "" {
		if _, err := ParseVersion(o.Version); err != nil {
			errs = append(errs, err)
		}
	}

	switch strings.ToLower(o.Encoding) {
	case "", EncodingUTF8, EncodingISO8859_1:
	default:
		errs = append(errs, fmt.Errorf("unsupported output encoding %q: %w", o.Encoding, ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// Threshold returns the effective spool threshold.
func (o *Options) Threshold() int64 {
	if o.SpoolThreshold == 0 {
		return DefaultSpoolThreshold
	}
	return o.SpoolThreshold
}

// IndentWidth returns the effective indentation, or -1 for none.
func (o *Options) IndentWidth() int {
	switch {
	case o.Indent == 0:
		return 2
	case o.Indent < 0:
		return -1
	}
	return o.Indent
}
