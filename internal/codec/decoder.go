// Package codec decodes code tokens found in catalog documents. Unknown
// tokens decode to the Unknown member of their domain and are reported to
// the logger once per domain and token.
package codec

import (
	"fmt"
	"strings"
	"sync"

	"github.com/vvka-141/bmecat/pkg/bmecat"
)

// Decoder is safe for concurrent use.
type Decoder struct {
	table     *bmecat.QuantityTable
	converter bmecat.QuantityCodeConverter
	logger    bmecat.Logger
	reported  sync.Map
}

// New creates a Decoder. A nil table selects bmecat.DefaultQuantityTable;
// converter and logger may be nil.
func New(table *bmecat.QuantityTable, converter bmecat.QuantityCodeConverter, logger bmecat.Logger) *Decoder {
	if table == nil {
		table = bmecat.DefaultQuantityTable()
	}
	return &Decoder{table: table, converter: converter, logger: logger}
}

func (d *Decoder) unknown(domain, token string) {
	if d.logger == nil {
		return
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return
	}
	if _, seen := d.reported.LoadOrStore(domain+"\x00"+token, struct{}{}); seen {
		return
	}
	d.logger.Log(bmecat.SeverityWarning, fmt.Sprintf("unknown %s %q", domain, token))
}

// Quantity consults the converter first and then the unit table.
func (d *Decoder) Quantity(token string) bmecat.QuantityCode {
	if d.converter != nil {
		if q, ok := d.converter.Convert(token); ok {
			return q
		}
	}
	q := d.table.Lookup(token)
	if q == bmecat.QuantityUnknown {
		d.unknown("quantity code", token)
	}
	return q
}

// Currency decodes an ISO 4217 currency code such as "EUR".
func (d *Decoder) Currency(token string) bmecat.CurrencyCode {
	c := bmecat.ParseCurrency(token)
	if c == bmecat.CurrencyUnknown {
		d.unknown("currency", token)
	}
	return c
}

// Language decodes an ISO 639 language code. Both the two-letter and the
// three-letter forms are accepted.
func (d *Decoder) Language(token string) bmecat.LanguageCode {
	l := bmecat.ParseLanguage(token)
	if l == bmecat.LanguageUnknown {
		d.unknown("language", token)
	}
	return l
}

// Country decodes an ISO 3166 country code.
func (d *Decoder) Country(token string) bmecat.CountryCode {
	c := bmecat.ParseCountry(token)
	if c == bmecat.CountryUnknown {
		d.unknown("country", token)
	}
	return c
}

// MimeType decodes the MIME_TYPE of a media reference.
func (d *Decoder) MimeType(token string) bmecat.MimeType {
	m := bmecat.ParseMimeType(token)
	if m == bmecat.MimeTypeUnknown {
		d.unknown("mime type", token)
	}
	return m
}

// PriceType decodes the price_type attribute of a product price.
func (d *Decoder) PriceType(token string) bmecat.PriceType {
	p := bmecat.ParsePriceType(token)
	if p == bmecat.PriceTypeUnknown {
		d.unknown("price type", token)
	}
	return p
}

// ReferenceType decodes the type attribute of a PRODUCT_REFERENCE.
func (d *Decoder) ReferenceType(token string) bmecat.ReferenceType {
	r := bmecat.ParseReferenceType(token)
	if r == bmecat.ReferenceTypeUnknown {
		d.unknown("reference type", token)
	}
	return r
}

// StructureType decodes the type attribute of a CATALOG_STRUCTURE node.
func (d *Decoder) StructureType(token string) bmecat.StructureType {
	s := bmecat.ParseStructureType(token)
	if s == bmecat.StructureTypeUnknown {
		d.unknown("catalog structure type", token)
	}
	return s
}

// PartyIDType decodes the type attribute of a party identifier.
func (d *Decoder) PartyIDType(token string) bmecat.PartyIDType {
	p := bmecat.ParsePartyIDType(token)
	if p == bmecat.PartyIDTypeUnknown {
		d.unknown("party id type", token)
	}
	return p
}

// ProductIDType decodes the type attribute of an INTERNATIONAL_PID.
func (d *Decoder) ProductIDType(token string) bmecat.ProductIDType {
	p := bmecat.ParseProductIDType(token)
	if p == bmecat.ProductIDTypeUnknown {
		d.unknown("product id type", token)
	}
	return p
}

// Incoterm decodes a delivery term code.
func (d *Decoder) Incoterm(token string) bmecat.Incoterm {
	i := bmecat.ParseIncoterm(token)
	if i == bmecat.IncotermUnknown {
		d.unknown("incoterm", token)
	}
	return i
}
