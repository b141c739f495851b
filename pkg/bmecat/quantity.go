package bmecat

import (
	"strings"
	"sync"
)

// QuantityCode is a UN/ECE Recommendation 20 unit code such as "C62" or "MTR".
// The empty value is the unknown unit.
type QuantityCode string

const QuantityUnknown QuantityCode = ""

func (q QuantityCode) String() string { return string(q) }

// QuantityTable is an immutable lookup from upper-cased unit tokens to codes.
type QuantityTable struct {
	codes map[string]QuantityCode
}

// NewQuantityTable builds a table over the given codes.
func NewQuantityTable(codes []string) *QuantityTable {
	t := &QuantityTable{codes: make(map[string]QuantityCode, len(codes))}
	for _, c := range codes {
		t.codes[strings.ToUpper(c)] = QuantityCode(c)
	}
	return t
}

var defaultQuantityTable = sync.OnceValue(func() *QuantityTable {
	return NewQuantityTable(unece20Codes[:])
})

// DefaultQuantityTable returns the shared UN/ECE Recommendation 20 table.
// It is built on first use.
func DefaultQuantityTable() *QuantityTable {
	return defaultQuantityTable()
}

// Lookup returns the code for token, or QuantityUnknown.
func (t *QuantityTable) Lookup(token string) QuantityCode {
	token = strings.ToUpper(strings.TrimSpace(token))
	// enum-style spelling of numeric codes, e.g. "Code_04"
	if strings.HasPrefix(token, "CODE_") {
		token = token[len("CODE_"):]
	}
	return t.codes[token]
}

// Len returns the number of known codes.
func (t *QuantityTable) Len() int { return len(t.codes) }

// ParseQuantityCode looks token up in the default table.
func ParseQuantityCode(token string) QuantityCode {
	return DefaultQuantityTable().Lookup(token)
}
