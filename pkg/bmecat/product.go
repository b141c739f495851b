package bmecat

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is one ARTICLE (1.2) or PRODUCT (2005) entry.
type Product struct {
	// No is the supplier-assigned product number.
	No string

	// PIDs keeps international identifiers in document order.
	PIDs []ProductID
	// SupplierPIDs are SUPPLIER_PID elements carrying a type attribute.
	SupplierPIDs   []ProductID
	SupplierAltPID string

	DescriptionShort string
	DescriptionLong  string
	Stock            *int
	Keywords         []string

	ManufacturerPID             string
	ManufacturerName            string
	ManufacturerTypeDescription string
	ERPGroupSupplier            string
	ERPGroupBuyer               string

	FeatureSets  []*FeatureSet
	OrderDetails *OrderDetails
	Prices       []*Price
	Mimes        []*Mime
	Logistics    *LogisticsDetails
	References   []*Reference

	EDXF       *EDXF
	Extensions []KeyValue

	// GroupMappings is filled from the catalog-group map section after
	// all products are parsed.
	GroupMappings []GroupMapping
}

// ProductID is a typed product identifier.
type ProductID struct {
	Type ProductIDType
	ID   string
}

// HasPID reports whether the product carries an identifier of the given type and value.
func (p *Product) HasPID(t ProductIDType, id string) bool {
	for _, pid := range p.PIDs {
		if pid.Type == t && pid.ID == id {
			return true
		}
	}
	return false
}

// FeatureSet groups features under an optional reference classification.
type FeatureSet struct {
	Classification *ClassificationSystem
	Features       []*Feature
}

// Feature returns the first feature with the given name, or nil.
func (fs *FeatureSet) Feature(name string) *Feature {
	for _, f := range fs.Features {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// ClassificationSystem references an external feature system such as ETIM.
type ClassificationSystem struct {
	SystemName string
	GroupName  string
	GroupIDs   []string
}

// Feature is a named product attribute with one or more values.
type Feature struct {
	Name   string
	Values []string
	Unit   QuantityCode
	Order  *int
}

// OrderDetails describe ordering units and quantities.
type OrderDetails struct {
	OrderUnit               QuantityCode
	ContentUnit             QuantityCode
	ContentUnitPerOrderUnit *decimal.Decimal
	PriceQuantity           *decimal.Decimal
	QuantityMin             *decimal.Decimal
	QuantityInterval        *decimal.Decimal
}

// Price is one PRODUCT_PRICE entry. Amount and Tax default to zero.
type Price struct {
	Type       PriceType
	Amount     decimal.Decimal
	Currency   CurrencyCode
	Tax        decimal.Decimal
	LowerBound *decimal.Decimal
}

// Mime is an attached media asset.
type Mime struct {
	Type        MimeType
	Source      string
	Description string
	Alt         string
	Purpose     string
	Order       *int
}

// LogisticsDetails carry origin and physical dimensions.
type LogisticsDetails struct {
	CountryOfOrigin      CountryCode
	CustomsTariffNumbers []string
	Volume               *decimal.Decimal
	Weight               *decimal.Decimal
	Length               *decimal.Decimal
	Width                *decimal.Decimal
	Depth                *decimal.Decimal
}

// Reference links a product to another product by its supplier number.
type Reference struct {
	Type ReferenceType
	To   string
}

// GroupMapping assigns a product to a catalog group.
type GroupMapping struct {
	GroupID string
	Order   *int
}

// KeyValue is an unrecognized user-defined extension element.
type KeyValue struct {
	Key   string
	Value string
}

// EDXF is the ETIM/ELDANORM vendor extension block.
type EDXF struct {
	ManufacturerAcronym       string
	ManufacturerDiscountGroup []string
	SupplierDiscountGroup     []string
	ProductSeries             []string
	ValidFrom                 *time.Time
	PackagingUnits            []*PackagingUnit
	Logistics                 *EDXFLogistics
	Mimes                     []*EDXFMime
	Reach                     *Reach
}

// PackagingUnit is one EDXF packing unit.
type PackagingUnit struct {
	QuantityMin *decimal.Decimal
	QuantityMax *decimal.Decimal
	Code        string
	Weight      *decimal.Decimal
	Length      *decimal.Decimal
	Width       *decimal.Decimal
	Depth       *decimal.Decimal
	GTIN        string
}

// EDXFLogistics carries net dimensions of the unpacked product.
type EDXFLogistics struct {
	NetWeight      *decimal.Decimal
	NetLength      *decimal.Decimal
	NetWidth       *decimal.Decimal
	NetDepth       *decimal.Decimal
	NetDiameter    *decimal.Decimal
	RegionOfOrigin string
}

// EDXFMime is an EDXF media asset.
type EDXFMime struct {
	Source      string
	Code        string
	Filename    string
	Designation string
	Alt         string
}

// Reach is the REACH compliance information of a product.
type Reach struct {
	Info     string
	ListDate *time.Time
}
