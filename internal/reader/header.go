package reader

import (
	"time"

	"github.com/antchfx/xmlquery"

	"github.com/vvka-141/bmecat/internal/dialect"
	"github.com/vvka-141/bmecat/internal/xmlpath"
	"github.com/vvka-141/bmecat/pkg/bmecat"
)

var (
	pathHeader        = dialect.Path("HEADER")
	pathCatalog       = dialect.Path("CATALOG")
	pathGeneratorInfo = dialect.Path("GENERATOR_INFO")
	pathLanguage      = dialect.Path("LANGUAGE")
	pathCatalogID     = dialect.Path("CATALOG_ID")
	pathCatalogVer    = dialect.Path("CATALOG_VERSION")
	pathCatalogName   = dialect.Path("CATALOG_NAME")
	pathGenDate       = dialect.Path("GENERATION_DATE")
	pathCurrency      = dialect.Path("CURRENCY")
	pathTransport     = dialect.Path("TRANSPORT")
	pathAgreement     = dialect.Path("AGREEMENT")
)

func (d *document) readHeader(root *xmlquery.Node, c *bmecat.Catalog) {
	header := d.acc.Node(root, pathHeader)
	c.GeneratorInfo = d.acc.Text(header, pathGeneratorInfo, "")

	catalog := d.acc.Node(header, pathCatalog)
	for _, lang := range d.acc.Texts(catalog, pathLanguage) {
		c.Languages = append(c.Languages, d.decoder.Language(lang))
	}
	c.CatalogID = d.acc.Text(catalog, pathCatalogID, "")
	c.CatalogVersion = d.acc.Text(catalog, pathCatalogVer, "")
	c.CatalogName = d.acc.Text(catalog, pathCatalogName, "")
	c.GenerationDate = d.acc.Time(catalog, pathGenDate, nil)
	if c.GenerationDate == nil {
		c.GenerationDate = d.typedDateTime(catalog, "generation_date")
	}
	c.Currency = d.decoder.Currency(d.acc.Text(catalog, pathCurrency, ""))

	if transport := d.acc.Node(catalog, pathTransport); transport != nil {
		c.Transport = &bmecat.TransportConditions{
			Incoterm: d.decoder.Incoterm(d.acc.Text(transport, dialect.Path("INCOTERM"), "")),
			Location: d.acc.Text(transport, dialect.Path("LOCATION"), ""),
			Remark:   d.acc.Text(transport, dialect.Path("TRANSPORT_REMARK"), ""),
		}
	}

	if agreement := d.acc.Node(header, pathAgreement); agreement != nil {
		a := &bmecat.Agreement{
			ID:        d.acc.Text(agreement, dialect.Path("AGREEMENT_ID"), ""),
			StartDate: d.acc.Time(agreement, dialect.Path("AGREEMENT_START_DATE"), nil),
			EndDate:   d.acc.Time(agreement, dialect.Path("AGREEMENT_END_DATE"), nil),
		}
		if a.StartDate == nil {
			a.StartDate = d.typedDateTime(agreement, "agreement_start_date")
		}
		if a.EndDate == nil {
			a.EndDate = d.typedDateTime(agreement, "agreement_end_date")
		}
		c.Agreement = a
	}

	d.readParties(header, c)
}

// typedDateTime reads the 1.2 style DATETIME element with the given type
// attribute, combining its DATE, TIME and TIMEZONE children.
func (d *document) typedDateTime(parent *xmlquery.Node, typ string) *time.Time {
	dt := d.acc.Node(parent, dialect.Path("DATETIME")+"[@type='"+typ+"']")
	if dt == nil {
		return nil
	}
	date := d.acc.Text(dt, dialect.Path("DATE"), "")
	if date == "" {
		return nil
	}
	value := date
	if clock := d.acc.Text(dt, dialect.Path("TIME"), ""); clock != "" {
		value += "T" + clock + d.acc.Text(dt, dialect.Path("TIMEZONE"), "")
	}
	if t, ok := xmlpath.ParseTime(value); ok {
		return &t
	}
	if t, ok := xmlpath.ParseTime(date); ok {
		return &t
	}
	return nil
}
