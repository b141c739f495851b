// Package catalogio loads and saves BMECat catalogs.
//
// Load accepts documents in the 1.2 and 2005 dialects, with or without the
// default namespace declared. Save always writes the 2005 dialect.
//
// Basic usage:
//
//	c, err := catalogio.LoadFile(ctx, "catalog.xml", bmecat.Options{})
//	if err != nil {
//	    return err
//	}
//	return catalogio.SaveFile("catalog-2005.xml", c, bmecat.Options{})
//
// Every function returns errors that match the sentinels in package bmecat
// under errors.Is.
package catalogio

import (
	"context"
	"io"

	"github.com/vvka-141/bmecat/internal/files/filesystem"
	"github.com/vvka-141/bmecat/internal/logging"
	"github.com/vvka-141/bmecat/internal/services"
	"github.com/vvka-141/bmecat/pkg/bmecat"
)

// LoadResult is the single value delivered by LoadAsync and LoadFileAsync.
type LoadResult = services.LoadResult

var defaultService = services.NewCatalogService(filesystem.NewOSFileSystem(), logging.NewNullLogger())

// Load reads a catalog from r. Messages go to opts.Logger, if set.
func Load(ctx context.Context, r io.Reader, opts bmecat.Options) (*bmecat.Catalog, error) {
	return defaultService.Load(ctx, r, opts)
}

// LoadFile reads the catalog stored at path. A missing file yields
// bmecat.ErrFileNotFound.
func LoadFile(ctx context.Context, path string, opts bmecat.Options) (*bmecat.Catalog, error) {
	return defaultService.LoadFile(ctx, path, opts)
}

// LoadAsync loads in the background and returns on completion or when ctx
// is done, whichever comes first.
func LoadAsync(ctx context.Context, r io.Reader, opts bmecat.Options) <-chan LoadResult {
	return defaultService.LoadAsync(ctx, r, opts)
}

// LoadFileAsync is the background form of LoadFile.
func LoadFileAsync(ctx context.Context, path string, opts bmecat.Options) <-chan LoadResult {
	return defaultService.LoadFileAsync(ctx, path, opts)
}

// Save writes c at the current position of ws and seeks back there
// afterwards. ws is not closed.
func Save(ws io.WriteSeeker, c *bmecat.Catalog, opts bmecat.Options) error {
	return defaultService.Save(ws, c, opts)
}

// SaveFile creates or truncates path and writes c into it.
func SaveFile(path string, c *bmecat.Catalog, opts bmecat.Options) error {
	return defaultService.SaveFile(path, c, opts)
}

// SaveAsync is the background form of Save.
func SaveAsync(ctx context.Context, ws io.WriteSeeker, c *bmecat.Catalog, opts bmecat.Options) <-chan error {
	return defaultService.SaveAsync(ctx, ws, c, opts)
}

// SaveFileAsync is the background form of SaveFile.
func SaveFileAsync(ctx context.Context, path string, c *bmecat.Catalog, opts bmecat.Options) <-chan error {
	return defaultService.SaveFileAsync(ctx, path, c, opts)
}
