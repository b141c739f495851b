package reader

import (
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/vvka-141/bmecat/internal/dialect"
	"github.com/vvka-141/bmecat/pkg/bmecat"
)

const edxfMarker = ".EDXF."

func edxf(names ...string) string {
	prefixed := make([]string, len(names))
	for i, n := range names {
		prefixed[i] = "UDX.EDXF." + n
	}
	return dialect.Path(prefixed...)
}

var (
	pathEDXFAcronym          = edxf("MANUFACTURER_ACRONYM")
	pathEDXFDiscountMfr      = edxf("DISCOUNT_GROUP", "DISCOUNT_GROUP_MANUFACTURER")
	pathEDXFDiscountSupplier = edxf("DISCOUNT_GROUP", "DISCOUNT_GROUP_SUPPLIER")
	pathEDXFSeries           = edxf("PRODUCT_SERIES")
	pathEDXFValidFrom        = edxf("VALID_FROM")
	pathEDXFPackingUnit      = edxf("PACKING_UNITS", "PACKING_UNIT")
	pathEDXFLogistics        = edxf("PRODUCT_LOGISTIC_DETAILS")
	pathEDXFMime             = edxf("MIME_INFO", "MIME")
	pathEDXFReach            = edxf("REACH")
)

// readEDXF maps the ETIM EDXF block of a USER_DEFINED_EXTENSIONS element.
// It returns nil when the block carries no EDXF element.
func (d *document) readEDXF(udx *xmlquery.Node) *bmecat.EDXF {
	if !strings.Contains(udx.OutputXML(false), edxfMarker) {
		return nil
	}

	e := &bmecat.EDXF{
		ManufacturerAcronym:       d.acc.Text(udx, pathEDXFAcronym, ""),
		ManufacturerDiscountGroup: d.acc.Texts(udx, pathEDXFDiscountMfr),
		SupplierDiscountGroup:     d.acc.Texts(udx, pathEDXFDiscountSupplier),
		ProductSeries:             d.acc.Texts(udx, pathEDXFSeries),
		ValidFrom:                 d.acc.Time(udx, pathEDXFValidFrom, nil),
	}

	for _, pu := range d.acc.Nodes(udx, pathEDXFPackingUnit) {
		e.PackagingUnits = append(e.PackagingUnits, &bmecat.PackagingUnit{
			QuantityMin: d.acc.DecimalPtr(pu, edxf("QUANTITY_MIN")),
			QuantityMax: d.acc.DecimalPtr(pu, edxf("QUANTITY_MAX")),
			Code:        d.acc.Text(pu, edxf("PACKING_UNIT_CODE"), ""),
			Weight:      d.acc.DecimalPtr(pu, edxf("WEIGHT")),
			Length:      d.acc.DecimalPtr(pu, edxf("LENGTH")),
			Width:       d.acc.DecimalPtr(pu, edxf("WIDTH")),
			Depth:       d.acc.DecimalPtr(pu, edxf("DEPTH")),
			GTIN:        d.acc.Text(pu, edxf("GTIN"), ""),
		})
	}

	if ld := d.acc.Node(udx, pathEDXFLogistics); ld != nil {
		e.Logistics = &bmecat.EDXFLogistics{
			NetWeight:      d.acc.DecimalPtr(ld, edxf("NETWEIGHT")),
			NetLength:      d.acc.DecimalPtr(ld, edxf("NETLENGTH")),
			NetWidth:       d.acc.DecimalPtr(ld, edxf("NETWIDTH")),
			NetDepth:       d.acc.DecimalPtr(ld, edxf("NETDEPTH")),
			NetDiameter:    d.acc.DecimalPtr(ld, edxf("NETDIAMETER")),
			RegionOfOrigin: d.acc.Text(ld, dialect.Path("REGION_OF_ORIGIN"), ""),
		}
	}

	for _, m := range d.acc.Nodes(udx, pathEDXFMime) {
		e.Mimes = append(e.Mimes, &bmecat.EDXFMime{
			Source:      d.acc.Text(m, edxf("MIME_SOURCE"), ""),
			Code:        d.acc.Text(m, edxf("MIME_CODE"), ""),
			Filename:    d.acc.Text(m, edxf("MIME_FILENAME"), ""),
			Designation: d.acc.Text(m, edxf("MIME_DESIGNATION"), ""),
			Alt:         d.acc.Text(m, edxf("MIME_ALT"), ""),
		})
	}

	if reach := d.acc.Node(udx, pathEDXFReach); reach != nil {
		e.Reach = &bmecat.Reach{
			Info:     d.acc.Text(reach, edxf("REACH.INFO"), ""),
			ListDate: d.acc.Time(reach, edxf("REACH.LISTDATE"), nil),
		}
	}
	return e
}

// readExtensions returns the non-EDXF children of USER_DEFINED_EXTENSIONS
// as key/value pairs, with the UDX. prefix removed from the key.
func readExtensions(udx *xmlquery.Node) []bmecat.KeyValue {
	var kvs []bmecat.KeyValue
	for c := udx.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode || strings.Contains(c.Data, ".EDXF") {
			continue
		}
		kvs = append(kvs, bmecat.KeyValue{
			Key:   strings.TrimPrefix(c.Data, "UDX."),
			Value: c.InnerText(),
		})
	}
	return kvs
}
