package dialect

import (
	"strings"

	"github.com/vvka-141/bmecat/pkg/bmecat"
)

// Prefix is the namespace prefix bound to the document namespace in every
// path handed to the accessor.
const Prefix = "bmecat"

// Mapping lists the element names that differ between the two dialects.
// Everything not listed here is spelled the same in 1.2 and 2005.
type Mapping struct {
	Version bmecat.Version

	Product         string
	SupplierPID     string
	Details         string
	SupplierAltPID  string
	ManufacturerPID string
	Features        string
	OrderDetails    string
	PriceDetails    string
	Price           string
	Reference       string
	ReferenceTarget string
	GroupMap        string
	GroupMapProduct string
	GroupMapOrder   string
}

var mapping12 = Mapping{
	Version:         bmecat.Version12,
	Product:         "ARTICLE",
	SupplierPID:     "SUPPLIER_AID",
	Details:         "ARTICLE_DETAILS",
	SupplierAltPID:  "SUPPLIER_ALT_AID",
	ManufacturerPID: "MANUFACTURER_AID",
	Features:        "ARTICLE_FEATURES",
	OrderDetails:    "ARTICLE_ORDER_DETAILS",
	PriceDetails:    "ARTICLE_PRICE_DETAILS",
	Price:           "ARTICLE_PRICE",
	Reference:       "ARTICLE_REFERENCE",
	ReferenceTarget: "ART_ID_TO",
	GroupMap:        "ARTICLE_TO_CATALOGGROUP_MAP",
	GroupMapProduct: "ART_ID",
	GroupMapOrder:   "ARTICLE_TO_CATALOGGROUP_MAP_ORDER",
}

var mapping2005 = Mapping{
	Version:         bmecat.Version2005,
	Product:         "PRODUCT",
	SupplierPID:     "SUPPLIER_PID",
	Details:         "PRODUCT_DETAILS",
	SupplierAltPID:  "SUPPLIER_ALT_PID",
	ManufacturerPID: "MANUFACTURER_PID",
	Features:        "PRODUCT_FEATURES",
	OrderDetails:    "PRODUCT_ORDER_DETAILS",
	PriceDetails:    "PRODUCT_PRICE_DETAILS",
	Price:           "PRODUCT_PRICE",
	Reference:       "PRODUCT_REFERENCE",
	ReferenceTarget: "PROD_ID_TO",
	GroupMap:        "PRODUCT_TO_CATALOGGROUP_MAP",
	GroupMapProduct: "PROD_ID",
	GroupMapOrder:   "PRODUCT_TO_CATALOGGROUP_MAP_ORDER",
}

// For returns the mapping of a dialect.
func For(v bmecat.Version) *Mapping {
	if v == bmecat.Version2005 {
		return &mapping2005
	}
	return &mapping12
}

// Path joins element names into a relative, prefixed location path:
// Path("HEADER", "CATALOG") is "bmecat:HEADER/bmecat:CATALOG".
func Path(elements ...string) string {
	var b strings.Builder
	for i, e := range elements {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(Prefix)
		b.WriteByte(':')
		b.WriteString(e)
	}
	return b.String()
}

// Root joins element names into an absolute path below the BMECAT element.
func Root(elements ...string) string {
	return "/" + Path(append([]string{"BMECAT"}, elements...)...)
}
