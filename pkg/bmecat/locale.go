package bmecat

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// CurrencyCode is an ISO 4217 alphabetic currency code such as "EUR".
// The empty value is the unknown currency.
type CurrencyCode string

const CurrencyUnknown CurrencyCode = ""

// ParseCurrency recognizes ISO 4217 codes case-insensitively.
func ParseCurrency(s string) CurrencyCode {
	s = strings.TrimSpace(s)
	if len(s) != 3 {
		return CurrencyUnknown
	}
	unit, err := currency.ParseISO(strings.ToUpper(s))
	if err != nil {
		return CurrencyUnknown
	}
	return CurrencyCode(unit.String())
}

func (c CurrencyCode) String() string { return string(c) }

// LanguageCode is an ISO 639-2/T three-letter language code such as "deu".
// The empty value is the unknown language.
type LanguageCode string

const LanguageUnknown LanguageCode = ""

// bibliographic ISO 639-2/B codes that real catalogs use in place of the
// terminology codes.
var bibliographicLanguages = map[string]string{
	"alb": "sqi",
	"arm": "hye",
	"baq": "eus",
	"bur": "mya",
	"chi": "zho",
	"cze": "ces",
	"dut": "nld",
	"fre": "fra",
	"geo": "kat",
	"ger": "deu",
	"gre": "ell",
	"ice": "isl",
	"mac": "mkd",
	"mao": "mri",
	"may": "msa",
	"per": "fas",
	"rum": "ron",
	"slo": "slk",
	"tib": "bod",
	"wel": "cym",
}

// ParseLanguage accepts two- and three-letter language codes and
// normalizes them to the three-letter terminology form.
func ParseLanguage(s string) LanguageCode {
	s = strings.ToLower(strings.TrimSpace(s))
	if t, ok := bibliographicLanguages[s]; ok {
		return LanguageCode(t)
	}
	if len(s) != 2 && len(s) != 3 {
		return LanguageUnknown
	}
	base, err := language.ParseBase(s)
	if err != nil || base.String() == "und" {
		return LanguageUnknown
	}
	return LanguageCode(base.ISO3())
}

func (l LanguageCode) String() string { return string(l) }

// CountryCode is an ISO 3166-1 alpha-2 country code such as "DE".
// The empty value is the unknown country.
type CountryCode string

const CountryUnknown CountryCode = ""

// ParseCountry accepts alpha-2 and alpha-3 country codes.
func ParseCountry(s string) CountryCode {
	s = strings.TrimSpace(s)
	if len(s) != 2 && len(s) != 3 {
		return CountryUnknown
	}
	region, err := language.ParseRegion(s)
	if err != nil || !region.IsCountry() {
		return CountryUnknown
	}
	return CountryCode(region.String())
}

func (c CountryCode) String() string { return string(c) }
