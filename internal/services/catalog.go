// Package services orchestrates catalog loading and saving: dialect
// detection, input spooling, parsing and serialization.
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/google/uuid"

	"github.com/vvka-141/bmecat/internal/codec"
	"github.com/vvka-141/bmecat/internal/dialect"
	"github.com/vvka-141/bmecat/internal/files/filesystem"
	"github.com/vvka-141/bmecat/internal/reader"
	"github.com/vvka-141/bmecat/internal/spool"
	"github.com/vvka-141/bmecat/internal/writer"
	"github.com/vvka-141/bmecat/pkg/bmecat"
)

// LoadResult is delivered by LoadAsync.
type LoadResult struct {
	Catalog *bmecat.Catalog
	Err     error
}

// CatalogService loads and saves catalogs through a file system provider.
// It holds no per-call state and is safe for concurrent use.
type CatalogService struct {
	fsys   filesystem.FileSystemProvider
	logger bmecat.Logger
}

// NewCatalogService creates a CatalogService.
// Panics on nil dependencies; these are wiring mistakes, not runtime
// conditions.
func NewCatalogService(fsys filesystem.FileSystemProvider, logger bmecat.Logger) *CatalogService {
	if fsys == nil {
		panic("fsys cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &CatalogService{fsys: fsys, logger: logger}
}

// loggerFor returns the per-call logger, falling back to the service logger.
func (s *CatalogService) loggerFor(opts bmecat.Options) bmecat.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return s.logger
}

// Load reads a catalog of either dialect from r.
func (s *CatalogService) Load(ctx context.Context, r io.Reader, opts bmecat.Options) (*bmecat.Catalog, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("input is nil: %w", bmecat.ErrInvalidStream)
	}

	logger := s.loggerFor(opts)
	loadID := uuid.NewString()

	size := opts.SizeHint
	if size <= 0 {
		size = spool.ReportedSize(r)
	}

	det, err := dialect.Detect(r, opts.Version)
	if err != nil {
		return nil, err
	}
	logf(logger, bmecat.SeverityDebug, "load %s: BMECat %s (declared %q, namespace %q, rewritten %t)",
		loadID, det.Version, det.Declared, det.Namespace, det.Rewritten)

	sp, err := spool.Open(det.Reader(), size, spool.Options{
		Threshold: opts.Threshold(),
		Dir:       opts.SpoolDir,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}
	defer sp.Close()
	if sp.OnDisk() {
		logf(logger, bmecat.SeverityDebug, "load %s: spooled %d bytes to %s", loadID, sp.Size(), sp.Path())
	}

	parser := reader.New(reader.Options{
		Workers: opts.Workers,
		Decoder: codec.New(nil, opts.QuantityConverter, logger),
		Logger:  logger,
	})
	catalog, err := parser.Parse(ctx, sp, det.Version, det.Namespace)
	if err != nil {
		return nil, err
	}

	logf(logger, bmecat.SeverityDebug, "load %s: done, catalog %q with %d products",
		loadID, catalog.CatalogID, len(catalog.Products))
	return catalog, nil
}

// LoadFile reads the catalog stored at path.
func (s *CatalogService) LoadFile(ctx context.Context, path string, opts bmecat.Options) (*bmecat.Catalog, error) {
	info, err := s.fsys.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, bmecat.ErrFileNotFound)
		}
		return nil, fmt.Errorf("%s: %v: %w", path, err, bmecat.ErrInvalidStream)
	}

	f, err := s.fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, bmecat.ErrFileNotFound)
		}
		return nil, fmt.Errorf("%s: %v: %w", path, err, bmecat.ErrInvalidStream)
	}
	defer f.Close()

	if opts.SizeHint <= 0 {
		opts.SizeHint = info.Size()
	}
	return s.Load(ctx, f, opts)
}

// LoadAsync runs Load in the background. The channel yields exactly one
// result: the load outcome or, if ctx ends first, ctx.Err().
func (s *CatalogService) LoadAsync(ctx context.Context, r io.Reader, opts bmecat.Options) <-chan LoadResult {
	return async(ctx, func() LoadResult {
		c, err := s.Load(ctx, r, opts)
		return LoadResult{Catalog: c, Err: err}
	}, func(err error) LoadResult { return LoadResult{Err: err} })
}

// LoadFileAsync is the background form of LoadFile.
func (s *CatalogService) LoadFileAsync(ctx context.Context, path string, opts bmecat.Options) <-chan LoadResult {
	return async(ctx, func() LoadResult {
		c, err := s.LoadFile(ctx, path, opts)
		return LoadResult{Catalog: c, Err: err}
	}, func(err error) LoadResult { return LoadResult{Err: err} })
}

// Save writes c as a BMECat 2005 document at the current position of ws
// and restores that position afterwards.
func (s *CatalogService) Save(ws io.WriteSeeker, c *bmecat.Catalog, opts bmecat.Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	return s.writer(opts).Save(ws, c)
}

// SaveFile creates or truncates path and writes c into it.
func (s *CatalogService) SaveFile(path string, c *bmecat.Catalog, opts bmecat.Options) (err error) {
	if err := opts.Validate(); err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("catalog is nil: %w", bmecat.ErrInvalidDocument)
	}

	f, err := s.fsys.Create(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", path, bmecat.ErrFileNotFound)
		}
		return fmt.Errorf("%s: %v: %w", path, err, bmecat.ErrInvalidStream)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%s: %v: %w", path, cerr, bmecat.ErrInvalidStream)
		}
	}()

	return s.writer(opts).Write(f, c)
}

// SaveAsync runs Save in the background. The channel yields exactly one
// error value, nil on success.
func (s *CatalogService) SaveAsync(ctx context.Context, ws io.WriteSeeker, c *bmecat.Catalog, opts bmecat.Options) <-chan error {
	return async(ctx, func() error { return s.Save(ws, c, opts) }, func(err error) error { return err })
}

// SaveFileAsync is the background form of SaveFile.
func (s *CatalogService) SaveFileAsync(ctx context.Context, path string, c *bmecat.Catalog, opts bmecat.Options) <-chan error {
	return async(ctx, func() error { return s.SaveFile(path, c, opts) }, func(err error) error { return err })
}

func (s *CatalogService) writer(opts bmecat.Options) *writer.Writer {
	return writer.New(writer.Options{
		Encoding:      opts.Encoding,
		Indent:        opts.IndentWidth(),
		GeneratorInfo: opts.GeneratorInfo,
		Logger:        s.loggerFor(opts),
	})
}

// async runs fn on its own goroutine and delivers its result, or the
// cancellation cause if ctx is done first. The returned channel is closed
// after the single value.
func async[T any](ctx context.Context, fn func() T, cancelled func(error) T) <-chan T {
	out := make(chan T, 1)
	go func() {
		defer close(out)

		done := make(chan T, 1)
		go func() { done <- fn() }()

		select {
		case res := <-done:
			out <- res
		case <-ctx.Done():
			out <- cancelled(ctx.Err())
		}
	}()
	return out
}

func logf(logger bmecat.Logger, severity bmecat.Severity, format string, args ...any) {
	logger.Log(severity, fmt.Sprintf(format, args...))
}
