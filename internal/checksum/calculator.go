package checksum

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/vvka-141/bmecat/internal/writer"
	"github.com/vvka-141/bmecat/pkg/bmecat"
)

// Calculator is an interface for computing document checksums.
type Calculator interface {
	// CalculateRaw computes a checksum of the raw, unmodified content.
	CalculateRaw(content []byte) string

	// CalculateNormalized computes a checksum of normalized content.
	// Normalization makes checksums resilient to formatting changes.
	CalculateNormalized(content []byte) string

	// CalculateCatalog computes the normalized checksum of a catalog's
	// 2005 serialization.
	CalculateCatalog(c *bmecat.Catalog) (string, error)
}

// SHA256 implements checksum calculation using SHA-256.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateNormalized computes SHA-256 of normalized content.
func (c SHA256) CalculateNormalized(content []byte) string {
	normalized := c.normalize(string(content))
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:])
}

// CalculateCatalog computes the normalized checksum of catalog.
func (c SHA256) CalculateCatalog(catalog *bmecat.Catalog) (string, error) {
	if catalog == nil {
		return "", fmt.Errorf("catalog is nil: %w", bmecat.ErrInvalidDocument)
	}
	stripped := *catalog
	stripped.GeneratorInfo = ""

	var buf bytes.Buffer
	if err := writer.New(writer.Options{Indent: -1}).Write(&buf, &stripped); err != nil {
		return "", err
	}
	return c.CalculateNormalized(buf.Bytes()), nil
}

type scanState int

const (
	ssText scanState = iota
	ssTag
	ssAttrValue
	ssComment
	ssCDATA
	ssProcInst
)

// normalize applies the normalization rules to content in a single pass.
func (c SHA256) normalize(content string) string {
	var b strings.Builder
	b.Grow(len(content))

	state := ssText
	var quote byte
	pendingSpace := false
	var last byte

	write := func(s string) {
		b.WriteString(s)
		last = s[len(s)-1]
	}
	writeByte := func(ch byte) {
		b.WriteByte(ch)
		last = ch
	}
	// flush emits a pending space unless it would follow a tag.
	flush := func() {
		if pendingSpace && last != 0 && (state == ssTag || last != '>') {
			b.WriteByte(' ')
		}
		pendingSpace = false
	}

	i := 0
	for i < len(content) {
		ch := content[i]
		rest := content[i:]

		switch state {
		case ssText:
			switch {
			case strings.HasPrefix(rest, "<!--"):
				state = ssComment
				i += 4
			case strings.HasPrefix(rest, "<![CDATA["):
				flush()
				write("<![CDATA[")
				state = ssCDATA
				i += len("<![CDATA[")
			case strings.HasPrefix(rest, "<?"):
				state = ssProcInst
				i += 2
			case ch == '<':
				pendingSpace = false
				write("<")
				state = ssTag
				i++
			case isSpace(ch):
				pendingSpace = true
				i++
			default:
				flush()
				writeByte(ch)
				i++
			}

		case ssTag:
			switch {
			case ch == '"' || ch == '\'':
				flush()
				writeByte(ch)
				quote = ch
				state = ssAttrValue
				i++
			case ch == '>':
				pendingSpace = false
				write(">")
				state = ssText
				i++
			case strings.HasPrefix(rest, "/>"):
				pendingSpace = false
				write("/>")
				state = ssText
				i += 2
			case isSpace(ch):
				pendingSpace = true
				i++
			default:
				flush()
				writeByte(ch)
				i++
			}

		case ssAttrValue:
			writeByte(ch)
			if ch == quote {
				state = ssTag
			}
			i++

		case ssComment:
			if strings.HasPrefix(rest, "-->") {
				state = ssText
				i += 3
			} else {
				i++
			}

		case ssCDATA:
			if strings.HasPrefix(rest, "]]>") {
				write("]]>")
				state = ssText
				i += 3
			} else {
				writeByte(ch)
				i++
			}

		case ssProcInst:
			if strings.HasPrefix(rest, "?>") {
				state = ssText
				i += 2
			} else {
				i++
			}
		}
	}

	return b.String()
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}
