package filesystem

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryFile struct {
	content []byte
	modTime time.Time
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// It is safe for concurrent use.
type MemoryFileSystem struct {
	mu    sync.RWMutex
	files map[string]*memoryFile // map of absolute path -> file
	root  string                 // root directory path
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))
	return &MemoryFileSystem{
		files: make(map[string]*memoryFile),
		root:  root,
	}
}

// resolve maps a path onto the virtual filesystem; relative paths are
// taken relative to the root.
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if !strings.HasPrefix(p, "/") && !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(path string, content string) {
	mfs.AddFileWithTime(path, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	mfs.store(mfs.resolve(filePath), []byte(content), modTime)
}

func (mfs *MemoryFileSystem) store(absPath string, content []byte, modTime time.Time) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.files[absPath] = &memoryFile{content: content, modTime: modTime}
}

func (mfs *MemoryFileSystem) lookup(p string) (*memoryFile, string, error) {
	absPath := mfs.resolve(p)
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	file, exists := mfs.files[absPath]
	if !exists {
		return nil, absPath, fmt.Errorf("file not found: %s: %w", p, fs.ErrNotExist)
	}
	return file, absPath, nil
}

// Open implements FileSystemProvider.Open. The returned reader exposes
// Len and Size like a bytes.Reader.
func (mfs *MemoryFileSystem) Open(filePath string) (io.ReadCloser, error) {
	file, _, err := mfs.lookup(filePath)
	if err != nil {
		return nil, err
	}
	return &memoryReader{Reader: bytes.NewReader(file.content)}, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	file, _, err := mfs.lookup(filePath)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), file.content...), nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	file, absPath, err := mfs.lookup(statPath)
	if err != nil {
		return nil, err
	}
	return &memoryFileInfo{
		name:    path.Base(absPath),
		size:    int64(len(file.content)),
		mode:    0644,
		modTime: file.modTime,
	}, nil
}

// Create implements FileSystemProvider.Create. Content becomes visible
// when the file is closed.
func (mfs *MemoryFileSystem) Create(filePath string) (WritableFile, error) {
	return &memoryWriter{fs: mfs, absPath: mfs.resolve(filePath)}, nil
}

type memoryReader struct {
	*bytes.Reader
}

func (r *memoryReader) Close() error { return nil }

// memoryWriter is a seekable in-memory output file.
type memoryWriter struct {
	fs      *MemoryFileSystem
	absPath string
	data    []byte
	pos     int64
	closed  bool
}

func (w *memoryWriter) Write(p []byte) (int, error) {
	if w.closed {
		return 0, fs.ErrClosed
	}
	end := w.pos + int64(len(p))
	if end > int64(len(w.data)) {
		w.data = append(w.data, make([]byte, end-int64(len(w.data)))...)
	}
	copy(w.data[w.pos:], p)
	w.pos = end
	return len(p), nil
}

func (w *memoryWriter) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = w.pos + offset
	case io.SeekEnd:
		next = int64(len(w.data)) + offset
	default:
		return 0, errors.New("invalid whence")
	}
	if next < 0 {
		return 0, errors.New("negative position")
	}
	w.pos = next
	return next, nil
}

func (w *memoryWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	w.fs.store(w.absPath, w.data, time.Now())
	return nil
}
