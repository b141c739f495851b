// Package dialect sniffs the BMECat schema version of an input stream and
// repairs root elements that lack a default namespace declaration.
package dialect

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/vvka-141/bmecat/pkg/bmecat"
)

var (
	// Attribute values may be quoted with either " or '.
	versionPattern = regexp.MustCompile(`<BMECAT(?:\s[^>]*)?\sversion\s*=\s*(?:"([^"]+)"|'([^']+)')`)
	rootTagPattern = regexp.MustCompile(`<BMECAT(\s[^>]*?)?(/?)>`)
	xmlnsPattern   = regexp.MustCompile(`\sxmlns\s*=\s*(?:"([^"]*)"|'([^']*)')`)
	versionAttr    = regexp.MustCompile(`\sversion\s*=`)
)

// Detection is the outcome of probing an input stream.
type Detection struct {
	// Version is the dialect used for parsing.
	Version bmecat.Version
	// Declared is the raw version attribute, empty when absent.
	Declared string
	// Namespace is the default namespace in effect after any rewrite.
	Namespace string
	// Rewritten reports whether the root tag was replaced.
	Rewritten bool

	prefix []byte
	rest   io.Reader
}

// Reader returns the possibly rewritten head followed by the untouched
// remainder of the input. It may be consumed once.
func (d *Detection) Reader() io.Reader {
	return io.MultiReader(bytes.NewReader(d.prefix), d.rest)
}

// Detect sniffs the first bmecat.SniffSize bytes of r. A non-empty forced
// version overrides the version attribute and must be "1.2" or "2005".
// When the root tag cannot be found the input passes through unchanged and
// fails later in the XML parser.
func Detect(r io.Reader, forced string) (*Detection, error) {
	if r == nil {
		return nil, fmt.Errorf("input is nil: %w", bmecat.ErrInvalidStream)
	}

	buf := make([]byte, bmecat.SniffSize)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("failed to read input: %v: %w", err, bmecat.ErrInvalidStream)
	}
	prefix := buf[:n]

	d := &Detection{rest: r}
	if m := versionPattern.FindSubmatch(prefix); m != nil {
		d.Declared = string(m[1]) + string(m[2])
	}
	d.Version = bmecat.ClassifyVersion(d.Declared)

	if forced != "" {
		v, err := bmecat.ParseVersion(forced)
		if err != nil {
			return nil, err
		}
		d.Version = v
	}

	loc := rootTagPattern.FindSubmatchIndex(prefix)
	if loc == nil {
		d.Namespace = d.Version.Namespace()
		d.prefix = prefix
		return d, nil
	}

	tag := prefix[loc[0]:loc[1]]
	if m := xmlnsPattern.FindSubmatch(tag); m != nil {
		d.Namespace = string(m[1]) + string(m[2])
		d.prefix = prefix
		return d, nil
	}

	d.Namespace = d.Version.Namespace()
	d.Rewritten = true
	d.prefix = splice(prefix, loc, d.Namespace, d.Version)
	return d, nil
}

// splice replaces the root open tag at loc with one declaring namespace.
// Existing attributes are kept; a version attribute is added when missing.
func splice(prefix []byte, loc []int, namespace string, v bmecat.Version) []byte {
	var attrs, closing []byte
	if loc[2] >= 0 {
		attrs = prefix[loc[2]:loc[3]]
	}
	closing = prefix[loc[4]:loc[5]]

	var b bytes.Buffer
	b.Grow(len(prefix) + len(namespace) + 32)
	b.Write(prefix[:loc[0]])
	fmt.Fprintf(&b, `<BMECAT xmlns="%s"`, namespace)
	if !versionAttr.Match(attrs) {
		fmt.Fprintf(&b, ` version="%s"`, v)
	}
	b.Write(attrs)
	b.Write(closing)
	b.WriteByte('>')
	b.Write(prefix[loc[1]:])
	return b.Bytes()
}
