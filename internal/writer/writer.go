// Package writer serializes a bmecat.Catalog as a BMECat 2005 document.
package writer

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/vvka-141/bmecat/pkg/bmecat"
)

// dateTimeLayout is the xsd:dateTime form used for every timestamp.
// Fractional seconds are written only when non-zero.
const dateTimeLayout = "2006-01-02T15:04:05.999999999-07:00"

// Options configure a Writer.
type Options struct {
	// Encoding is bmecat.EncodingUTF8 (default) or bmecat.EncodingISO8859_1.
	Encoding string
	// Indent is the number of spaces per level; negative disables indenting.
	Indent int
	// GeneratorInfo is written when the catalog carries none.
	GeneratorInfo string
	// Logger receives a debug line per document. May be nil.
	Logger bmecat.Logger
}

// Writer emits the 2005 dialect regardless of the catalog's source version.
type Writer struct {
	opts Options
}

// New creates a Writer.
func New(opts Options) *Writer {
	return &Writer{opts: opts}
}

func (w *Writer) iso() bool {
	return strings.EqualFold(w.opts.Encoding, bmecat.EncodingISO8859_1)
}

// Write serializes c to out.
func (w *Writer) Write(out io.Writer, c *bmecat.Catalog) error {
	if out == nil {
		return fmt.Errorf("output is nil: %w", bmecat.ErrInvalidStream)
	}
	if c == nil {
		return fmt.Errorf("catalog is nil: %w", bmecat.ErrInvalidDocument)
	}

	doc := w.build(c)

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return fmt.Errorf("failed to serialize catalog: %w", err)
	}

	if w.iso() {
		if err := writeLatin1(out, buf.Bytes()); err != nil {
			return fmt.Errorf("failed to write catalog: %v: %w", err, bmecat.ErrInvalidStream)
		}
	} else if _, err := out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write catalog: %v: %w", err, bmecat.ErrInvalidStream)
	}

	if w.opts.Logger != nil {
		w.opts.Logger.Log(bmecat.SeverityDebug, fmt.Sprintf("wrote %d products and %d catalog groups (%d bytes)",
			len(c.Products), len(c.Structures), buf.Len()))
	}
	return nil
}

// Save writes c at the current position of ws and seeks back to that
// position afterwards. The stream is not closed.
func (w *Writer) Save(ws io.WriteSeeker, c *bmecat.Catalog) error {
	if ws == nil {
		return fmt.Errorf("output is nil: %w", bmecat.ErrInvalidStream)
	}
	start, err := ws.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("output is not seekable: %v: %w", err, bmecat.ErrInvalidStream)
	}
	if err := w.Write(ws, c); err != nil {
		return err
	}
	if _, err := ws.Seek(start, io.SeekStart); err != nil {
		return fmt.Errorf("failed to restore output position: %v: %w", err, bmecat.ErrInvalidStream)
	}
	return nil
}

func (w *Writer) build(c *bmecat.Catalog) *etree.Document {
	doc := etree.NewDocument()
	encoding := "UTF-8"
	if w.iso() {
		encoding = "ISO-8859-1"
	}
	doc.CreateProcInst("xml", `version="1.0" encoding="`+encoding+`"`)

	root := doc.CreateElement("BMECAT")
	root.CreateAttr("version", bmecat.Version2005.String())
	root.CreateAttr("xmlns", bmecat.Namespace2005)

	w.writeHeader(root.CreateElement("HEADER"), c)

	newCatalog := root.CreateElement("T_NEW_CATALOG")
	if len(c.Structures) > 0 {
		groups := newCatalog.CreateElement("CATALOG_GROUP_SYSTEM")
		for _, s := range c.Structures {
			writeStructure(groups, s)
		}
	}
	for _, p := range c.Products {
		writeProduct(newCatalog, p)
	}
	for _, p := range c.Products {
		for _, m := range p.GroupMappings {
			gm := newCatalog.CreateElement("PRODUCT_TO_CATALOGGROUP_MAP")
			required(gm, "PROD_ID", p.No)
			required(gm, "CATALOG_GROUP_ID", m.GroupID)
			optionalInt(gm, "PRODUCT_TO_CATALOGGROUP_MAP_ORDER", m.Order)
		}
	}

	switch {
	case w.opts.Indent < 0:
		doc.Indent(etree.NoIndent)
	case w.opts.Indent == 0:
		doc.Indent(2)
	default:
		doc.Indent(w.opts.Indent)
	}
	return doc
}

// writeLatin1 encodes UTF-8 XML as ISO-8859-1. Characters outside Latin-1
// become numeric character references; all markup is ASCII so this is
// valid in both text and attribute values.
func writeLatin1(out io.Writer, data []byte) error {
	tw := transform.NewWriter(out, charmap.ISO8859_1.NewEncoder())
	bw := bufio.NewWriter(tw)
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		data = data[size:]
		if _, ok := charmap.ISO8859_1.EncodeRune(r); ok {
			bw.WriteRune(r)
			continue
		}
		fmt.Fprintf(bw, "&#%d;", r)
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return tw.Close()
}

func required(parent *etree.Element, tag, value string) *etree.Element {
	el := parent.CreateElement(tag)
	el.SetText(value)
	return el
}

func optional(parent *etree.Element, tag, value string) {
	if value != "" {
		required(parent, tag, value)
	}
}

func optionalAll(parent *etree.Element, tag string, values []string) {
	for _, v := range values {
		optional(parent, tag, v)
	}
}

func hasText(values []string) bool {
	for _, v := range values {
		if v != "" {
			return true
		}
	}
	return false
}

func optionalInt(parent *etree.Element, tag string, v *int) {
	if v != nil {
		required(parent, tag, fmt.Sprint(*v))
	}
}

func optionalDecimal(parent *etree.Element, tag string, v *decimal.Decimal) {
	if v != nil {
		required(parent, tag, v.String())
	}
}

func optionalTime(parent *etree.Element, tag string, t *time.Time) {
	if t != nil {
		required(parent, tag, t.Format(dateTimeLayout))
	}
}

// typed writes an element with a type attribute, omitting the attribute
// for unknown codes. Empty values write nothing.
func typed(parent *etree.Element, tag, typ, value string) {
	if value == "" {
		return
	}
	el := required(parent, tag, value)
	if typ != "" {
		el.CreateAttr("type", typ)
	}
}

// amount formats money and tax values with two fixed decimals.
func amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
