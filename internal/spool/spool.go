// Package spool bounds the memory used to hold a catalog before parsing.
// Small inputs are buffered in memory; inputs above a threshold are copied
// to a temporary file that is removed again on Close.
package spool

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/vvka-141/bmecat/internal/retry"
	"github.com/vvka-141/bmecat/pkg/bmecat"
)

// Unknown is the size reported for inputs whose length cannot be determined.
const Unknown int64 = -1

// removal retries deleting a spool file that another process still holds.
var removal = retry.NewExecutor(
	retry.NewFileErrorClassifier(),
	retry.NewExponentialBackoff(3,
		retry.WithInitialDelay(10*time.Millisecond),
		retry.WithMaxDelay(100*time.Millisecond),
	),
)

// Options configure a Spool.
type Options struct {
	// Threshold above which input goes to disk. Zero or negative selects
	// bmecat.DefaultSpoolThreshold.
	Threshold int64
	// Dir for temporary files; empty uses os.TempDir().
	Dir string
	// Logger receives cleanup failures. May be nil.
	Logger bmecat.Logger
}

// Spool is a readable, fully materialized copy of an input.
type Spool struct {
	io.Reader

	size   int64
	file   *os.File
	path   string
	logger bmecat.Logger
	remove func(string) error
}

// ReportedSize returns the length an input reports about itself, or
// Unknown. It must be called before anything is read from r.
func ReportedSize(r io.Reader) int64 {
	switch v := r.(type) {
	case interface{ Len() int }:
		return int64(v.Len())
	case interface{ Size() int64 }:
		return v.Size()
	case interface{ Stat() (os.FileInfo, error) }:
		info, err := v.Stat()
		if err == nil && info.Mode().IsRegular() {
			return info.Size()
		}
	}
	return Unknown
}

// Open materializes r. size is the input's reported length or Unknown;
// inputs of unknown length are buffered up to the threshold and overflow
// into a temporary file.
func Open(r io.Reader, size int64, opts Options) (*Spool, error) {
	threshold := opts.Threshold
	if threshold <= 0 {
		threshold = bmecat.DefaultSpoolThreshold
	}

	if size > threshold {
		return toFile(r, opts)
	}

	if size >= 0 {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %v: %w", err, bmecat.ErrInvalidStream)
		}
		return inMemory(data), nil
	}

	var buf bytes.Buffer
	n, err := io.CopyN(&buf, r, threshold+1)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read input: %v: %w", err, bmecat.ErrInvalidStream)
	}
	if n <= threshold {
		return inMemory(buf.Bytes()), nil
	}
	return toFile(io.MultiReader(&buf, r), opts)
}

func inMemory(data []byte) *Spool {
	return &Spool{Reader: bytes.NewReader(data), size: int64(len(data))}
}

func toFile(r io.Reader, opts Options) (*Spool, error) {
	dir := opts.Dir
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, "bmecat-"+uuid.NewString()+".xml")

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to create spool file: %w", err)
	}

	s := &Spool{file: f, path: path, logger: opts.Logger, remove: os.Remove}

	n, err := io.Copy(f, r)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to spool input: %v: %w", err, bmecat.ErrInvalidStream)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to rewind spool file: %w", err)
	}

	s.Reader = f
	s.size = n
	return s, nil
}

// OnDisk reports whether the input was spooled to a temporary file.
func (s *Spool) OnDisk() bool { return s.path != "" }

// Path returns the temporary file path, or "" for in-memory spools.
func (s *Spool) Path() string { return s.path }

// Size returns the number of spooled bytes.
func (s *Spool) Size() int64 { return s.size }

// Close releases the temporary file. Removal failures are logged, never
// returned. Close is idempotent.
func (s *Spool) Close() error {
	if s.file == nil {
		return nil
	}
	s.file.Close()
	s.file = nil

	err := removal.Execute(context.Background(), func(context.Context) error {
		return s.remove(s.path)
	})
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		if s.logger != nil {
			s.logger.Log(bmecat.SeverityWarning, fmt.Sprintf("failed to remove spool file %s: %v", s.path, err))
		}
	}
	return nil
}
