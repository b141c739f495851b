package reader

import (
	"github.com/antchfx/xmlquery"
	"github.com/shopspring/decimal"

	"github.com/vvka-141/bmecat/internal/dialect"
	"github.com/vvka-141/bmecat/internal/xmlpath"
	"github.com/vvka-141/bmecat/pkg/bmecat"
)

// productPaths are the dialect-dependent paths below a product element.
type productPaths struct {
	supplierPID     string
	details         string
	descShort       string
	descLong        string
	stock           string
	keyword         string
	supplierAltPID  string
	manufacturerPID string
	manufacturer    string
	manufacturerTyp string
	erpGroupSupp    string
	erpGroupBuyer   string
	features        string
	orderDetails    string
	prices          string
	references      string
	referenceTarget string
	groupMapProduct string
	groupMapOrder   string
}

func newProductPaths(m *dialect.Mapping) *productPaths {
	return &productPaths{
		supplierPID:     dialect.Path(m.SupplierPID),
		details:         dialect.Path(m.Details),
		descShort:       dialect.Path(m.Details, "DESCRIPTION_SHORT"),
		descLong:        dialect.Path(m.Details, "DESCRIPTION_LONG"),
		stock:           dialect.Path(m.Details, "STOCK"),
		keyword:         dialect.Path(m.Details, "KEYWORD"),
		supplierAltPID:  dialect.Path(m.Details, m.SupplierAltPID),
		manufacturerPID: dialect.Path(m.Details, m.ManufacturerPID),
		manufacturer:    dialect.Path(m.Details, "MANUFACTURER_NAME"),
		manufacturerTyp: dialect.Path(m.Details, "MANUFACTURER_TYPE_DESCR"),
		erpGroupSupp:    dialect.Path(m.Details, "ERP_GROUP_SUPPLIER"),
		erpGroupBuyer:   dialect.Path(m.Details, "ERP_GROUP_BUYER"),
		features:        dialect.Path(m.Features),
		orderDetails:    dialect.Path(m.OrderDetails),
		prices:          dialect.Path(m.PriceDetails, m.Price),
		references:      dialect.Path(m.Reference),
		referenceTarget: dialect.Path(m.ReferenceTarget),
		groupMapProduct: dialect.Path(m.GroupMapProduct),
		groupMapOrder:   dialect.Path(m.GroupMapOrder),
	}
}

var productPathsByVersion = map[bmecat.Version]*productPaths{
	bmecat.Version12:   newProductPaths(dialect.For(bmecat.Version12)),
	bmecat.Version2005: newProductPaths(dialect.For(bmecat.Version2005)),
}

func pathsFor(v bmecat.Version) *productPaths {
	return productPathsByVersion[v]
}

var (
	pathFeature         = dialect.Path("FEATURE")
	pathFeatureSystem   = dialect.Path("REFERENCE_FEATURE_SYSTEM_NAME")
	pathFeatureGroup    = dialect.Path("REFERENCE_FEATURE_GROUP_NAME")
	pathFeatureGroupID  = dialect.Path("REFERENCE_FEATURE_GROUP_ID")
	pathMime            = dialect.Path("MIME_INFO", "MIME")
	pathLogistics       = dialect.Path("PRODUCT_LOGISTIC_DETAILS")
	pathDimensions      = dialect.Path("PRODUCT_DIMENSIONS")
	pathUserExtensions  = dialect.Path("USER_DEFINED_EXTENSIONS")
	pathPriceAmount     = dialect.Path("PRICE_AMOUNT")
	pathPriceCurrency   = dialect.Path("PRICE_CURRENCY")
	pathPriceTax        = dialect.Path("TAX")
	pathPriceLowerBound = dialect.Path("LOWER_BOUND")
)

func (d *document) readProduct(n *xmlquery.Node) (*bmecat.Product, error) {
	ps := d.paths
	p := &bmecat.Product{
		No:                          d.acc.Text(n, ps.supplierPID, ""),
		DescriptionShort:            d.acc.Text(n, ps.descShort, ""),
		DescriptionLong:             d.acc.Text(n, ps.descLong, ""),
		Stock:                       d.acc.IntPtr(n, ps.stock),
		Keywords:                    d.acc.Texts(n, ps.keyword),
		SupplierAltPID:              d.acc.Text(n, ps.supplierAltPID, ""),
		ManufacturerPID:             d.acc.Text(n, ps.manufacturerPID, ""),
		ManufacturerName:            d.acc.Text(n, ps.manufacturer, ""),
		ManufacturerTypeDescription: d.acc.Text(n, ps.manufacturerTyp, ""),
		ERPGroupSupplier:            d.acc.Text(n, ps.erpGroupSupp, ""),
		ERPGroupBuyer:               d.acc.Text(n, ps.erpGroupBuyer, ""),
	}

	for _, sp := range d.acc.Nodes(n, ps.supplierPID) {
		if typ := xmlpath.Attr(sp, "type", ""); typ != "" {
			p.SupplierPIDs = append(p.SupplierPIDs, bmecat.ProductID{
				Type: d.decoder.ProductIDType(typ),
				ID:   sp.InnerText(),
			})
		}
	}

	p.PIDs = d.readProductIDs(d.acc.Node(n, ps.details))

	for _, fs := range d.acc.Nodes(n, ps.features) {
		p.FeatureSets = append(p.FeatureSets, d.readFeatureSet(fs))
	}

	if od := d.acc.Node(n, ps.orderDetails); od != nil {
		p.OrderDetails = &bmecat.OrderDetails{
			OrderUnit:               d.decoder.Quantity(d.acc.Text(od, dialect.Path("ORDER_UNIT"), "")),
			ContentUnit:             d.decoder.Quantity(d.acc.Text(od, dialect.Path("CONTENT_UNIT"), "")),
			ContentUnitPerOrderUnit: d.acc.DecimalPtr(od, dialect.Path("NO_CU_PER_OU")),
			PriceQuantity:           d.acc.DecimalPtr(od, dialect.Path("PRICE_QUANTITY")),
			QuantityMin:             d.acc.DecimalPtr(od, dialect.Path("QUANTITY_MIN")),
			QuantityInterval:        d.acc.DecimalPtr(od, dialect.Path("QUANTITY_INTERVAL")),
		}
	}

	for _, price := range d.acc.Nodes(n, ps.prices) {
		p.Prices = append(p.Prices, &bmecat.Price{
			Type:       d.decoder.PriceType(xmlpath.Attr(price, "price_type", "")),
			Amount:     d.acc.Decimal(price, pathPriceAmount, decimal.Zero),
			Currency:   d.decoder.Currency(d.acc.Text(price, pathPriceCurrency, "")),
			Tax:        d.acc.Decimal(price, pathPriceTax, decimal.Zero),
			LowerBound: d.acc.DecimalPtr(price, pathPriceLowerBound),
		})
	}

	p.Mimes = d.readMimes(n)

	if ld := d.acc.Node(n, pathLogistics); ld != nil {
		dims := d.acc.Node(ld, pathDimensions)
		p.Logistics = &bmecat.LogisticsDetails{
			CountryOfOrigin:      d.decoder.Country(d.acc.Text(ld, dialect.Path("COUNTRY_OF_ORIGIN"), "")),
			CustomsTariffNumbers: d.acc.Texts(ld, dialect.Path("CUSTOMS_TARIFF_NUMBER")),
			Volume:               d.acc.DecimalPtr(dims, dialect.Path("VOLUME")),
			Weight:               d.acc.DecimalPtr(dims, dialect.Path("WEIGHT")),
			Length:               d.acc.DecimalPtr(dims, dialect.Path("LENGTH")),
			Width:                d.acc.DecimalPtr(dims, dialect.Path("WIDTH")),
			Depth:                d.acc.DecimalPtr(dims, dialect.Path("DEPTH")),
		}
	}

	for _, ref := range d.acc.Nodes(n, ps.references) {
		p.References = append(p.References, &bmecat.Reference{
			Type: d.decoder.ReferenceType(xmlpath.Attr(ref, "type", "")),
			To:   d.acc.Text(ref, ps.referenceTarget, ""),
		})
	}

	if udx := d.acc.Node(n, pathUserExtensions); udx != nil {
		p.EDXF = d.readEDXF(udx)
		p.Extensions = readExtensions(udx)
	}

	return p, nil
}

// readProductIDs walks the details children in document order. Every
// INTERNATIONAL_PID is kept as is. A legacy EAN element is kept at its
// position unless an EAN or GTIN entry carries the same number.
func (d *document) readProductIDs(details *xmlquery.Node) []bmecat.ProductID {
	if details == nil {
		return nil
	}

	type candidate struct {
		pid    bmecat.ProductID
		legacy bool
	}
	var candidates []candidate
	international := make(map[string]bool)

	for c := details.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}
		switch c.Data {
		case "INTERNATIONAL_PID":
			pid := bmecat.ProductID{
				Type: d.decoder.ProductIDType(xmlpath.Attr(c, "type", "")),
				ID:   c.InnerText(),
			}
			if pid.Type == bmecat.ProductIDTypeEAN || pid.Type == bmecat.ProductIDTypeGTIN {
				international[pid.ID] = true
			}
			candidates = append(candidates, candidate{pid: pid})
		case "EAN":
			if id := c.InnerText(); id != "" {
				candidates = append(candidates, candidate{
					pid:    bmecat.ProductID{Type: bmecat.ProductIDTypeEAN, ID: id},
					legacy: true,
				})
			}
		}
	}

	var ids []bmecat.ProductID
	for _, c := range candidates {
		if c.legacy && international[c.pid.ID] {
			continue
		}
		ids = append(ids, c.pid)
	}
	return ids
}

func (d *document) readFeatureSet(n *xmlquery.Node) *bmecat.FeatureSet {
	fs := &bmecat.FeatureSet{}

	system := d.acc.Text(n, pathFeatureSystem, "")
	group := d.acc.Text(n, pathFeatureGroup, "")
	groupIDs := d.acc.Texts(n, pathFeatureGroupID)
	if system != "" || group != "" || len(groupIDs) > 0 {
		fs.Classification = &bmecat.ClassificationSystem{
			SystemName: system,
			GroupName:  group,
			GroupIDs:   groupIDs,
		}
	}

	for _, f := range d.acc.Nodes(n, pathFeature) {
		feature := &bmecat.Feature{
			Name:   d.acc.Text(f, dialect.Path("FNAME"), ""),
			Values: d.acc.Texts(f, dialect.Path("FVALUE")),
			Order:  d.acc.IntPtr(f, dialect.Path("FORDER")),
		}
		if unit := d.acc.Text(f, dialect.Path("FUNIT"), ""); unit != "" {
			feature.Unit = d.decoder.Quantity(unit)
		}
		fs.Features = append(fs.Features, feature)
	}
	return fs
}

func (d *document) readMimes(parent *xmlquery.Node) []*bmecat.Mime {
	var mimes []*bmecat.Mime
	for _, m := range d.acc.Nodes(parent, pathMime) {
		mimes = append(mimes, &bmecat.Mime{
			Type:        d.decoder.MimeType(d.acc.Text(m, dialect.Path("MIME_TYPE"), "")),
			Source:      d.acc.Text(m, dialect.Path("MIME_SOURCE"), ""),
			Description: d.acc.Text(m, dialect.Path("MIME_DESCR"), ""),
			Alt:         d.acc.Text(m, dialect.Path("MIME_ALT"), ""),
			Purpose:     d.acc.Text(m, dialect.Path("MIME_PURPOSE"), ""),
			Order:       d.acc.IntPtr(m, dialect.Path("MIME_ORDER")),
		})
	}
	return mimes
}
