package config

import (
	"strings"

	"github.com/vvka-141/bmecat/pkg/bmecat"
)

// UnitAliases is a bmecat.QuantityCodeConverter backed by the units section
// of the config file. Aliases match case-insensitively.
type UnitAliases map[string]bmecat.QuantityCode

// NewUnitAliases normalizes alias keys and resolves code spellings through
// the default table.
func NewUnitAliases(units map[string]string) UnitAliases {
	table := bmecat.DefaultQuantityTable()
	aliases := make(UnitAliases, len(units))
	for alias, code := range units {
		q := table.Lookup(code)
		if q == bmecat.QuantityUnknown {
			continue
		}
		aliases[normalizeUnit(alias)] = q
	}
	return aliases
}

// Convert implements bmecat.QuantityCodeConverter.
func (u UnitAliases) Convert(token string) (bmecat.QuantityCode, bool) {
	q, ok := u[normalizeUnit(token)]
	return q, ok
}

func normalizeUnit(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
