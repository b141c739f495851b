// Package filesystem abstracts the file access behind LoadFile and SaveFile.
//
// Key interfaces:
//   - FileSystemProvider: opens catalog files for reading and creates them for writing
//   - WritableFile: a seekable output file
//   - FileInfo: file metadata, an alias of fs.FileInfo
//
// Implementations:
//   - OSFileSystem: production implementation using the OS filesystem
//   - MemoryFileSystem: in-memory implementation for testing
//
// Every implementation reports missing files with an error matching
// fs.ErrNotExist.
package filesystem
