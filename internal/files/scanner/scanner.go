package scanner

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"path"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vvka-141/bmecat/internal/checksum"
	"github.com/vvka-141/bmecat/internal/dialect"
	"github.com/vvka-141/bmecat/pkg/bmecat"
)

// CatalogFile describes one catalog found during a scan.
type CatalogFile struct {
	Path       string         `json:"path"`
	Name       string         `json:"name"`
	Directory  string         `json:"directory"`
	Depth      int            `json:"depth"`
	SizeBytes  int64          `json:"size_bytes"`
	ModifiedAt time.Time      `json:"modified_at"`
	Dialect    bmecat.Version `json:"-"`
	Declared   string         `json:"declared_version"`
	Checksum   string         `json:"checksum"`
}

// Result holds the catalogs of a scan, sorted by path, and the XML files
// that turned out not to be catalogs.
type Result struct {
	Catalogs []CatalogFile `json:"catalogs"`
	Skipped  []string      `json:"skipped"`
}

// Scanner finds catalogs. It is safe for concurrent use as long as the
// calculator is.
type Scanner struct {
	calculator checksum.Calculator
	workers    int
}

// NewScanner creates a scanner probing up to workers files at a time.
// Zero or negative workers means GOMAXPROCS. Panics if calculator is nil.
func NewScanner(calculator checksum.Calculator, workers int) *Scanner {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Scanner{calculator: calculator, workers: workers}
}

// ScanDirectory walks fsys and sniffs every file with an .xml extension.
// Paths in the result use forward slashes and a ./ prefix.
func (s *Scanner) ScanDirectory(ctx context.Context, fsys fs.FS) (Result, error) {
	var paths []string
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(path.Ext(p), ".xml") {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	found := make([]*CatalogFile, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, p := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			file, err := s.sniff(fsys, p)
			if err != nil {
				return fmt.Errorf("failed to process file %s: %w", p, err)
			}
			found[i] = file
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	var result Result
	for i, f := range found {
		if f == nil {
			result.Skipped = append(result.Skipped, "./"+paths[i])
			continue
		}
		result.Catalogs = append(result.Catalogs, *f)
	}
	sort.Slice(result.Catalogs, func(i, j int) bool { return result.Catalogs[i].Path < result.Catalogs[j].Path })
	sort.Strings(result.Skipped)
	return result, nil
}

// sniff returns nil for XML files without a versioned BMECAT root.
func (s *Scanner) sniff(fsys fs.FS, p string) (*CatalogFile, error) {
	content, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	info, err := fs.Stat(fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	d, err := dialect.Detect(bytes.NewReader(content), "")
	if err != nil {
		return nil, err
	}
	if d.Declared == "" {
		return nil, nil
	}

	unixPath := "./" + p
	directory := unixPath[:strings.LastIndex(unixPath, "/")+1]

	return &CatalogFile{
		Path:       unixPath,
		Name:       path.Base(p),
		Directory:  directory,
		Depth:      strings.Count(directory, "/") - 1,
		SizeBytes:  info.Size(),
		ModifiedAt: info.ModTime(),
		Dialect:    d.Version,
		Declared:   d.Declared,
		Checksum:   s.calculator.CalculateRaw(content),
	}, nil
}
