package filesystem

import (
	"io"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// WritableFile is an output file. Seek is required so a catalog can be
// written at the current position and the position restored afterwards.
type WritableFile interface {
	io.Writer
	io.Seeker
	io.Closer
}

// FileSystemProvider gives access to catalog files.
type FileSystemProvider interface {
	// Open opens a file for reading.
	Open(path string) (io.ReadCloser, error)

	// Create creates or truncates a file for writing.
	Create(path string) (WritableFile, error)

	// ReadFile reads a whole file.
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path.
	Stat(path string) (FileInfo, error)
}
