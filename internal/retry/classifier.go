package retry

import (
	"errors"
	"io/fs"
	"syscall"
	"time"
)

// ErrorClassifier determines whether an error is transient (retryable) or fatal.
type ErrorClassifier interface {
	// IsTransient returns true if the error is temporary and the operation should be retried.
	IsTransient(err error) bool
}

// BackoffStrategy calculates the delay before the next retry attempt.
type BackoffStrategy interface {
	// NextDelay returns the duration to wait before the next attempt.
	// attempt is zero-indexed (0 = first retry, 1 = second retry, etc.)
	NextDelay(attempt int) time.Duration

	// MaxAttempts returns the maximum number of retry attempts (0 = no retries, -1 = unlimited)
	MaxAttempts() int
}

// FileErrorClassifier treats lock and permission errors as transient.
// Missing files, invalid paths and everything else are fatal.
type FileErrorClassifier struct{}

// NewFileErrorClassifier creates a new file error classifier.
func NewFileErrorClassifier() *FileErrorClassifier {
	return &FileErrorClassifier{}
}

// IsTransient implements ErrorClassifier.
func (c *FileErrorClassifier) IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) || errors.Is(err, fs.ErrClosed) {
		return false
	}
	// Windows reports sharing violations as access denied, which maps to
	// fs.ErrPermission.
	if errors.Is(err, fs.ErrPermission) {
		return true
	}
	return errors.Is(err, syscall.EBUSY) || errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EINTR)
}
