// Package reader maps BMECat 1.2 and 2005 documents onto bmecat.Catalog.
//
// Both dialects share one traversal; the element names that differ are taken
// from dialect.Mapping. Products, catalog groups and group mappings are
// mapped in parallel with a bounded number of workers. Each worker writes to
// its own result slot, so results keep document order. Group mappings are
// attached to products only after every phase has finished.
//
// The first element that fails to map aborts the load with a
// *bmecat.ElementError; partially mapped catalogs are never returned.
package reader

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/antchfx/xmlquery"
	"golang.org/x/sync/errgroup"

	"github.com/vvka-141/bmecat/internal/codec"
	"github.com/vvka-141/bmecat/internal/dialect"
	"github.com/vvka-141/bmecat/internal/xmlpath"
	"github.com/vvka-141/bmecat/pkg/bmecat"
)

// Options configure a Parser.
type Options struct {
	// Workers bounds parallel element mapping; zero means GOMAXPROCS.
	Workers int
	// Decoder decodes code tokens; nil uses a decoder over the default table.
	Decoder *codec.Decoder
	// Logger receives progress at debug severity. May be nil.
	Logger bmecat.Logger
}

// Parser is safe for concurrent use.
type Parser struct {
	workers   int
	decoder   *codec.Decoder
	logger    bmecat.Logger
	accessors sync.Map
}

// New creates a Parser.
func New(opts Options) *Parser {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	decoder := opts.Decoder
	if decoder == nil {
		decoder = codec.New(nil, nil, opts.Logger)
	}
	return &Parser{workers: workers, decoder: decoder, logger: opts.Logger}
}

// accessor returns a cached accessor for the namespace so compiled
// expressions are reused across documents.
func (p *Parser) accessor(namespace string) *xmlpath.Accessor {
	if a, ok := p.accessors.Load(namespace); ok {
		return a.(*xmlpath.Accessor)
	}
	a, _ := p.accessors.LoadOrStore(namespace, xmlpath.New(map[string]string{dialect.Prefix: namespace}))
	return a.(*xmlpath.Accessor)
}

func (p *Parser) debugf(format string, args ...any) {
	if p.logger != nil {
		p.logger.Log(bmecat.SeverityDebug, fmt.Sprintf(format, args...))
	}
}

// document holds the per-load state shared read-only by all workers.
type document struct {
	*Parser
	acc   *xmlpath.Accessor
	m     *dialect.Mapping
	paths *productPaths
}

// Parse reads a complete document in dialect v whose default namespace is
// namespace.
func (p *Parser) Parse(ctx context.Context, r io.Reader, v bmecat.Version, namespace string) (*bmecat.Catalog, error) {
	tree, err := xmlquery.Parse(r)
	if err != nil {
		return nil, wrapXMLError(err)
	}

	d := &document{
		Parser: p,
		acc:    p.accessor(namespace),
		m:      dialect.For(v),
		paths:  pathsFor(v),
	}

	root := d.acc.Node(tree, "/"+dialect.Path("BMECAT"))
	if root == nil {
		return nil, &bmecat.DocumentError{Err: fmt.Errorf("no BMECAT root element in namespace %q", namespace)}
	}

	catalog := bmecat.NewCatalog()
	catalog.SourceVersion = v
	d.readHeader(root, catalog)

	newCatalog := d.acc.Node(root, dialect.Path("T_NEW_CATALOG"))

	products, err := mapParallel(ctx, p.workers, "product",
		d.acc.Nodes(newCatalog, dialect.Path(d.m.Product)),
		func(n *xmlquery.Node) string { return d.acc.Text(n, d.paths.supplierPID, "") },
		d.readProduct)
	if err != nil {
		return nil, err
	}

	structures, err := mapParallel(ctx, p.workers, "catalog group",
		d.acc.Nodes(newCatalog, pathStructures),
		func(n *xmlquery.Node) string { return d.acc.Text(n, pathGroupID, "") },
		d.readStructure)
	if err != nil {
		return nil, err
	}

	entries, err := mapParallel(ctx, p.workers, "group mapping",
		d.acc.Nodes(newCatalog, dialect.Path(d.m.GroupMap)),
		func(n *xmlquery.Node) string { return d.acc.Text(n, d.paths.groupMapProduct, "") },
		d.readGroupMapEntry)
	if err != nil {
		return nil, err
	}

	attachGroupMappings(products, entries)

	catalog.Products = products
	catalog.Structures = structures

	p.debugf("mapped %d products, %d catalog groups and %d group mappings (BMECat %s)",
		len(products), len(structures), len(entries), v)
	return catalog, nil
}

// mapParallel maps nodes with at most workers goroutines. Results keep the
// order of nodes. A failing or panicking element cancels the remaining work.
func mapParallel[T any](ctx context.Context, workers int, kind string, nodes []*xmlquery.Node,
	id func(*xmlquery.Node) string, fn func(*xmlquery.Node) (T, error)) ([]T, error) {

	results := make([]T, len(nodes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, n := range nodes {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &bmecat.ElementError{Kind: kind, Index: i, ID: safeID(id, n), Err: fmt.Errorf("panic: %v", r)}
				}
			}()
			v, err := fn(n)
			if err != nil {
				return &bmecat.ElementError{Kind: kind, Index: i, ID: safeID(id, n), Err: err}
			}
			results[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func safeID(id func(*xmlquery.Node) string, n *xmlquery.Node) (s string) {
	defer func() {
		if recover() != nil {
			s = ""
		}
	}()
	return id(n)
}

// wrapXMLError converts parser failures into DocumentErrors carrying the
// line number when the XML decoder reports one.
func wrapXMLError(err error) error {
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &bmecat.DocumentError{Line: syntaxErr.Line, Err: errors.New(syntaxErr.Msg)}
	}
	return &bmecat.DocumentError{Err: err}
}
