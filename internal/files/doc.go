// Package files groups the catalog file handling into sub-packages:
//   - filesystem: file access behind LoadFile and SaveFile (OS and in-memory)
//   - scanner: discovery of catalogs in a directory tree
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/bmecat/internal/files/filesystem"
//	    "github.com/vvka-141/bmecat/internal/files/scanner"
//	)
//
//	svc := services.NewCatalogService(filesystem.NewOSFileSystem(), logger)
//
//	result, err := scanner.NewScanner(checksum.New(), 4).ScanDirectory(ctx, os.DirFS("./catalogs"))
package files
