// Package xmlpath resolves namespace-qualified XPath expressions against an
// xmlquery tree and converts the matched text into typed values.
//
// Every accessor method tolerates a nil node and returns the supplied default
// without evaluating anything. Malformed numbers and dates never fail; they
// also yield the default.
package xmlpath

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/shopspring/decimal"
)

// Accessor evaluates expressions with a fixed prefix-to-URI binding.
// It caches compiled expressions and is safe for concurrent use.
type Accessor struct {
	namespaces map[string]string
	cache      sync.Map
}

// New creates an Accessor. The map is copied.
func New(namespaces map[string]string) *Accessor {
	ns := make(map[string]string, len(namespaces))
	for prefix, uri := range namespaces {
		ns[prefix] = uri
	}
	return &Accessor{namespaces: ns}
}

// Namespace returns the URI bound to prefix.
func (a *Accessor) Namespace(prefix string) string {
	return a.namespaces[prefix]
}

// compile panics on an invalid expression; expressions are program constants.
func (a *Accessor) compile(expr string) *xpath.Expr {
	if cached, ok := a.cache.Load(expr); ok {
		return cached.(*xpath.Expr)
	}
	compiled, err := xpath.CompileWithNS(expr, a.namespaces)
	if err != nil {
		panic(fmt.Sprintf("xmlpath: invalid expression %q: %v", expr, err))
	}
	actual, _ := a.cache.LoadOrStore(expr, compiled)
	return actual.(*xpath.Expr)
}

// Node returns the first node matching path, or nil.
func (a *Accessor) Node(node *xmlquery.Node, path string) *xmlquery.Node {
	if node == nil {
		return nil
	}
	return xmlquery.QuerySelector(node, a.compile(path))
}

// Nodes returns every node matching path in document order.
func (a *Accessor) Nodes(node *xmlquery.Node, path string) []*xmlquery.Node {
	if node == nil {
		return nil
	}
	return xmlquery.QuerySelectorAll(node, a.compile(path))
}

// Exists reports whether path matches anything.
func (a *Accessor) Exists(node *xmlquery.Node, path string) bool {
	return a.Node(node, path) != nil
}

// Text returns the text content of the first match, or def.
func (a *Accessor) Text(node *xmlquery.Node, path, def string) string {
	n := a.Node(node, path)
	if n == nil {
		return def
	}
	return n.InnerText()
}

// Texts returns the text content of every match.
func (a *Accessor) Texts(node *xmlquery.Node, path string) []string {
	nodes := a.Nodes(node, path)
	if len(nodes) == 0 {
		return nil
	}
	values := make([]string, 0, len(nodes))
	for _, n := range nodes {
		values = append(values, n.InnerText())
	}
	return values
}

// Attr returns the value of the named attribute of node, or def.
func Attr(node *xmlquery.Node, name, def string) string {
	if node == nil {
		return def
	}
	for _, attr := range node.Attr {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return def
}

// Attr returns the named attribute of the first node matching path, or def.
func (a *Accessor) Attr(node *xmlquery.Node, path, name, def string) string {
	return Attr(a.Node(node, path), name, def)
}

// Int parses the first match as an integer.
func (a *Accessor) Int(node *xmlquery.Node, path string, def int) int {
	if v := a.IntPtr(node, path); v != nil {
		return *v
	}
	return def
}

// IntPtr parses the first match as an integer, or returns nil.
func (a *Accessor) IntPtr(node *xmlquery.Node, path string) *int {
	n := a.Node(node, path)
	if n == nil {
		return nil
	}
	v, ok := ParseInt(n.InnerText())
	if !ok {
		return nil
	}
	return &v
}

// Decimal parses the first match as a decimal number.
func (a *Accessor) Decimal(node *xmlquery.Node, path string, def decimal.Decimal) decimal.Decimal {
	if v := a.DecimalPtr(node, path); v != nil {
		return *v
	}
	return def
}

// DecimalPtr parses the first match as a decimal number, or returns nil.
func (a *Accessor) DecimalPtr(node *xmlquery.Node, path string) *decimal.Decimal {
	n := a.Node(node, path)
	if n == nil {
		return nil
	}
	v, ok := ParseDecimal(n.InnerText())
	if !ok {
		return nil
	}
	return &v
}

// Time parses the first match as a timestamp.
func (a *Accessor) Time(node *xmlquery.Node, path string, def *time.Time) *time.Time {
	n := a.Node(node, path)
	if n == nil {
		return def
	}
	t, ok := ParseTime(n.InnerText())
	if !ok {
		return def
	}
	return &t
}

// ParseInt parses invariant integer text. Integral decimals such as "12.0"
// are accepted.
func ParseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v, true
	}
	d, ok := ParseDecimal(s)
	if !ok || !d.IsInteger() {
		return 0, false
	}
	return int(d.IntPart()), true
}

// ParseDecimal parses invariant decimal text; "." is the only separator.
func ParseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// timeLayouts are tried in order; the first successful parse wins.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05-07:00",
	"2006-01-02",
	"20060102",
}

// ParseTime parses the timestamp formats found in BMECat documents.
// Values without a zone are interpreted as UTC.
func ParseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
