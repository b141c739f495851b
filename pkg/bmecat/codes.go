package bmecat

import "strings"

// tokenTable maps canonical XML tokens to small enumerations. The zero value
// of every enumeration is its Unknown member, which formats to "".
type tokenTable[T ~int] struct {
	names  map[T]string
	lookup map[string]T
}

func newTokenTable[T ~int](names map[T]string, aliases map[string]T) tokenTable[T] {
	lookup := make(map[string]T, len(names)+len(aliases))
	for v, name := range names {
		lookup[strings.ToLower(name)] = v
	}
	for alias, v := range aliases {
		lookup[strings.ToLower(alias)] = v
	}
	return tokenTable[T]{names: names, lookup: lookup}
}

func (t tokenTable[T]) parse(s string) T {
	return t.lookup[strings.ToLower(strings.TrimSpace(s))]
}

func (t tokenTable[T]) format(v T) string {
	return t.names[v]
}

// PriceType is the price_type attribute of a product price.
type PriceType int

const (
	PriceTypeUnknown PriceType = iota
	PriceTypeNetList
	PriceTypeNetCustomer
	PriceTypeNRP
	PriceTypeGrossList
	PriceTypeNetCustomerExport
)

var priceTypes = newTokenTable(map[PriceType]string{
	PriceTypeNetList:           "net_list",
	PriceTypeNetCustomer:       "net_customer",
	PriceTypeNRP:               "nrp",
	PriceTypeGrossList:         "gros_list",
	PriceTypeNetCustomerExport: "net_customer_exp",
}, nil)

func ParsePriceType(s string) PriceType { return priceTypes.parse(s) }
func (p PriceType) String() string     { return priceTypes.format(p) }

// ReferenceType is the type attribute of a product reference.
type ReferenceType int

const (
	ReferenceTypeUnknown ReferenceType = iota
	ReferenceTypeSparePart
	ReferenceTypeAccessories
	ReferenceTypeConsistsOf
	ReferenceTypeSimilar
	ReferenceTypeSelect
	ReferenceTypeMandatory
	ReferenceTypeFollowup
	ReferenceTypeBaseProduct
	ReferenceTypeOthers
)

var referenceTypes = newTokenTable(map[ReferenceType]string{
	ReferenceTypeSparePart:   "sparepart",
	ReferenceTypeAccessories: "accessories",
	ReferenceTypeConsistsOf:  "consists_of",
	ReferenceTypeSimilar:     "similar",
	ReferenceTypeSelect:      "select",
	ReferenceTypeMandatory:   "mandatory",
	ReferenceTypeFollowup:    "followup",
	ReferenceTypeBaseProduct: "base_product",
	ReferenceTypeOthers:      "others",
}, nil)

func ParseReferenceType(s string) ReferenceType { return referenceTypes.parse(s) }
func (r ReferenceType) String() string         { return referenceTypes.format(r) }

// StructureType distinguishes inner and leaf catalog groups.
type StructureType int

const (
	StructureTypeUnknown StructureType = iota
	StructureTypeLeaf
	StructureTypeNode
)

var structureTypes = newTokenTable(map[StructureType]string{
	StructureTypeLeaf: "leaf",
	StructureTypeNode: "node",
}, nil)

func ParseStructureType(s string) StructureType { return structureTypes.parse(s) }
func (s StructureType) String() string         { return structureTypes.format(s) }

// PartyIDType is the type attribute of a party identifier.
type PartyIDType int

const (
	PartyIDTypeUnknown PartyIDType = iota
	PartyIDTypeBuyerSpecific
	PartyIDTypeSupplierSpecific
	PartyIDTypeDUNS
	PartyIDTypeGLN
	PartyIDTypeILN
)

var partyIDTypes = newTokenTable(map[PartyIDType]string{
	PartyIDTypeBuyerSpecific:    "buyer_specific",
	PartyIDTypeSupplierSpecific: "supplier_specific",
	PartyIDTypeDUNS:             "duns",
	PartyIDTypeGLN:              "gln",
	PartyIDTypeILN:              "iln",
}, nil)

func ParsePartyIDType(s string) PartyIDType { return partyIDTypes.parse(s) }
func (p PartyIDType) String() string       { return partyIDTypes.format(p) }

// ProductIDType is the type attribute of INTERNATIONAL_PID and SUPPLIER_PID.
type ProductIDType int

const (
	ProductIDTypeUnknown ProductIDType = iota
	ProductIDTypeEAN
	ProductIDTypeGTIN
	ProductIDTypeUPC
	ProductIDTypeISBN
	ProductIDTypeSupplierSpecific
	ProductIDTypeBuyerSpecific
	ProductIDTypeManufacturerSpecific
)

var productIDTypes = newTokenTable(map[ProductIDType]string{
	ProductIDTypeEAN:                  "ean",
	ProductIDTypeGTIN:                 "gtin",
	ProductIDTypeUPC:                  "upc",
	ProductIDTypeISBN:                 "isbn",
	ProductIDTypeSupplierSpecific:     "supplier_specific",
	ProductIDTypeBuyerSpecific:        "buyer_specific",
	ProductIDTypeManufacturerSpecific: "manufacturer_specific",
}, map[string]ProductIDType{
	"supplierspecific": ProductIDTypeSupplierSpecific,
	"buyerspecific":    ProductIDTypeBuyerSpecific,
})

func ParseProductIDType(s string) ProductIDType { return productIDTypes.parse(s) }
func (p ProductIDType) String() string         { return productIDTypes.format(p) }

// MimeType is the MIME_TYPE of an attached asset.
type MimeType int

const (
	MimeTypeUnknown MimeType = iota
	MimeTypeImageJPEG
	MimeTypeImageGIF
	MimeTypeImageTIFF
	MimeTypeImagePNG
	MimeTypePDF
	MimeTypeHTML
	MimeTypeVideoURL
	MimeTypeURL
)

var mimeTypes = newTokenTable(map[MimeType]string{
	MimeTypeImageJPEG: "image/jpeg",
	MimeTypeImageGIF:  "image/gif",
	MimeTypeImageTIFF: "image/tiff",
	MimeTypeImagePNG:  "image/png",
	MimeTypePDF:       "application/pdf",
	MimeTypeHTML:      "text/html",
	MimeTypeVideoURL:  "video/url",
	MimeTypeURL:       "url",
}, map[string]MimeType{
	"image/jpg":  MimeTypeImageJPEG,
	"images/jpg": MimeTypeImageJPEG,
	"image/tif":  MimeTypeImageTIFF,
	"video/ulr":  MimeTypeVideoURL,
})

func ParseMimeType(s string) MimeType { return mimeTypes.parse(s) }
func (m MimeType) String() string    { return mimeTypes.format(m) }

// Incoterm is an INCOTERM code of the transport conditions.
type Incoterm int

const (
	IncotermUnknown Incoterm = iota
	IncotermEXW
	IncotermFCA
	IncotermFAS
	IncotermFOB
	IncotermCFR
	IncotermCIF
	IncotermCPT
	IncotermCIP
	IncotermDAT
	IncotermDAP
	IncotermDDP
)

var incoterms = newTokenTable(map[Incoterm]string{
	IncotermEXW: "EXW",
	IncotermFCA: "FCA",
	IncotermFAS: "FAS",
	IncotermFOB: "FOB",
	IncotermCFR: "CFR",
	IncotermCIF: "CIF",
	IncotermCPT: "CPT",
	IncotermCIP: "CIP",
	IncotermDAT: "DAT",
	IncotermDAP: "DAP",
	IncotermDDP: "DDP",
}, nil)

func ParseIncoterm(s string) Incoterm { return incoterms.parse(s) }
func (i Incoterm) String() string    { return incoterms.format(i) }
