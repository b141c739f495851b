package writer

import (
	"github.com/beevik/etree"

	"github.com/vvka-141/bmecat/pkg/bmecat"
)

func writeProduct(parent *etree.Element, p *bmecat.Product) {
	product := parent.CreateElement("PRODUCT")
	product.CreateAttr("mode", "new")

	required(product, "SUPPLIER_PID", p.No)
	for _, sp := range p.SupplierPIDs {
		if t := sp.Type.String(); t != "" {
			typed(product, "SUPPLIER_PID", t, sp.ID)
		}
	}

	details := product.CreateElement("PRODUCT_DETAILS")
	optional(details, "DESCRIPTION_SHORT", p.DescriptionShort)
	optional(details, "DESCRIPTION_LONG", p.DescriptionLong)
	for _, id := range p.PIDs {
		typed(details, "INTERNATIONAL_PID", id.Type.String(), id.ID)
	}
	optional(details, "SUPPLIER_ALT_PID", p.SupplierAltPID)
	optional(details, "MANUFACTURER_PID", p.ManufacturerPID)
	optional(details, "MANUFACTURER_NAME", p.ManufacturerName)
	optional(details, "MANUFACTURER_TYPE_DESCR", p.ManufacturerTypeDescription)
	optional(details, "ERP_GROUP_BUYER", p.ERPGroupBuyer)
	optional(details, "ERP_GROUP_SUPPLIER", p.ERPGroupSupplier)
	optionalAll(details, "KEYWORD", p.Keywords)
	optionalInt(details, "STOCK", p.Stock)

	for _, fs := range p.FeatureSets {
		writeFeatureSet(product, fs)
	}

	if od := p.OrderDetails; od != nil {
		order := product.CreateElement("PRODUCT_ORDER_DETAILS")
		optional(order, "ORDER_UNIT", od.OrderUnit.String())
		optional(order, "CONTENT_UNIT", od.ContentUnit.String())
		optionalDecimal(order, "NO_CU_PER_OU", od.ContentUnitPerOrderUnit)
		optionalDecimal(order, "PRICE_QUANTITY", od.PriceQuantity)
		optionalDecimal(order, "QUANTITY_MIN", od.QuantityMin)
		optionalDecimal(order, "QUANTITY_INTERVAL", od.QuantityInterval)
	}

	if len(p.Prices) > 0 {
		prices := product.CreateElement("PRODUCT_PRICE_DETAILS")
		for _, pr := range p.Prices {
			price := prices.CreateElement("PRODUCT_PRICE")
			if t := pr.Type.String(); t != "" {
				price.CreateAttr("price_type", t)
			}
			required(price, "PRICE_AMOUNT", amount(pr.Amount))
			optional(price, "PRICE_CURRENCY", pr.Currency.String())
			required(price, "TAX", amount(pr.Tax))
			optionalDecimal(price, "LOWER_BOUND", pr.LowerBound)
		}
	}

	writeMimes(product, p.Mimes)

	if p.EDXF != nil || len(p.Extensions) > 0 {
		udx := product.CreateElement("USER_DEFINED_EXTENSIONS")
		if p.EDXF != nil {
			writeEDXF(udx, p.EDXF)
		}
		for _, kv := range p.Extensions {
			required(udx, "UDX."+kv.Key, kv.Value)
		}
		if len(udx.ChildElements()) == 0 {
			product.RemoveChild(udx)
		}
	}

	for _, ref := range p.References {
		reference := product.CreateElement("PRODUCT_REFERENCE")
		if t := ref.Type.String(); t != "" {
			reference.CreateAttr("type", t)
		}
		required(reference, "PROD_ID_TO", ref.To)
	}

	if ld := p.Logistics; ld != nil {
		logistics := product.CreateElement("PRODUCT_LOGISTIC_DETAILS")
		optionalAll(logistics, "CUSTOMS_TARIFF_NUMBER", ld.CustomsTariffNumbers)
		optional(logistics, "COUNTRY_OF_ORIGIN", ld.CountryOfOrigin.String())
		if ld.Volume != nil || ld.Weight != nil || ld.Length != nil || ld.Width != nil || ld.Depth != nil {
			dims := logistics.CreateElement("PRODUCT_DIMENSIONS")
			optionalDecimal(dims, "VOLUME", ld.Volume)
			optionalDecimal(dims, "WEIGHT", ld.Weight)
			optionalDecimal(dims, "LENGTH", ld.Length)
			optionalDecimal(dims, "WIDTH", ld.Width)
			optionalDecimal(dims, "DEPTH", ld.Depth)
		}
	}
}

func writeFeatureSet(product *etree.Element, fs *bmecat.FeatureSet) {
	features := product.CreateElement("PRODUCT_FEATURES")
	if cs := fs.Classification; cs != nil {
		optional(features, "REFERENCE_FEATURE_SYSTEM_NAME", cs.SystemName)
		optionalAll(features, "REFERENCE_FEATURE_GROUP_ID", cs.GroupIDs)
		optional(features, "REFERENCE_FEATURE_GROUP_NAME", cs.GroupName)
	}
	for _, f := range fs.Features {
		feature := features.CreateElement("FEATURE")
		required(feature, "FNAME", f.Name)
		optionalAll(feature, "FVALUE", f.Values)
		optional(feature, "FUNIT", f.Unit.String())
		optionalInt(feature, "FORDER", f.Order)
	}
}

func writeMimes(parent *etree.Element, mimes []*bmecat.Mime) {
	if len(mimes) == 0 {
		return
	}
	info := parent.CreateElement("MIME_INFO")
	for _, m := range mimes {
		mime := info.CreateElement("MIME")
		optional(mime, "MIME_TYPE", m.Type.String())
		optional(mime, "MIME_SOURCE", m.Source)
		optional(mime, "MIME_DESCR", m.Description)
		optional(mime, "MIME_ALT", m.Alt)
		optional(mime, "MIME_PURPOSE", m.Purpose)
		optionalInt(mime, "MIME_ORDER", m.Order)
	}
}

func writeEDXF(udx *etree.Element, e *bmecat.EDXF) {
	optional(udx, "UDX.EDXF.MANUFACTURER_ACRONYM", e.ManufacturerAcronym)
	if hasText(e.ManufacturerDiscountGroup) || hasText(e.SupplierDiscountGroup) {
		dg := udx.CreateElement("UDX.EDXF.DISCOUNT_GROUP")
		optionalAll(dg, "UDX.EDXF.DISCOUNT_GROUP_MANUFACTURER", e.ManufacturerDiscountGroup)
		optionalAll(dg, "UDX.EDXF.DISCOUNT_GROUP_SUPPLIER", e.SupplierDiscountGroup)
	}
	optionalAll(udx, "UDX.EDXF.PRODUCT_SERIES", e.ProductSeries)
	optionalTime(udx, "UDX.EDXF.VALID_FROM", e.ValidFrom)

	if len(e.PackagingUnits) > 0 {
		units := udx.CreateElement("UDX.EDXF.PACKING_UNITS")
		for _, pu := range e.PackagingUnits {
			unit := units.CreateElement("UDX.EDXF.PACKING_UNIT")
			optionalDecimal(unit, "UDX.EDXF.QUANTITY_MIN", pu.QuantityMin)
			optionalDecimal(unit, "UDX.EDXF.QUANTITY_MAX", pu.QuantityMax)
			optional(unit, "UDX.EDXF.PACKING_UNIT_CODE", pu.Code)
			optionalDecimal(unit, "UDX.EDXF.WEIGHT", pu.Weight)
			optionalDecimal(unit, "UDX.EDXF.LENGTH", pu.Length)
			optionalDecimal(unit, "UDX.EDXF.WIDTH", pu.Width)
			optionalDecimal(unit, "UDX.EDXF.DEPTH", pu.Depth)
			optional(unit, "UDX.EDXF.GTIN", pu.GTIN)
		}
	}

	if l := e.Logistics; l != nil {
		logistics := udx.CreateElement("UDX.EDXF.PRODUCT_LOGISTIC_DETAILS")
		optionalDecimal(logistics, "UDX.EDXF.NETWEIGHT", l.NetWeight)
		optionalDecimal(logistics, "UDX.EDXF.NETLENGTH", l.NetLength)
		optionalDecimal(logistics, "UDX.EDXF.NETWIDTH", l.NetWidth)
		optionalDecimal(logistics, "UDX.EDXF.NETDEPTH", l.NetDepth)
		optionalDecimal(logistics, "UDX.EDXF.NETDIAMETER", l.NetDiameter)
		optional(logistics, "REGION_OF_ORIGIN", l.RegionOfOrigin)
	}

	if len(e.Mimes) > 0 {
		info := udx.CreateElement("UDX.EDXF.MIME_INFO")
		for _, m := range e.Mimes {
			mime := info.CreateElement("UDX.EDXF.MIME")
			optional(mime, "UDX.EDXF.MIME_SOURCE", m.Source)
			optional(mime, "UDX.EDXF.MIME_CODE", m.Code)
			optional(mime, "UDX.EDXF.MIME_FILENAME", m.Filename)
			optional(mime, "UDX.EDXF.MIME_DESIGNATION", m.Designation)
			optional(mime, "UDX.EDXF.MIME_ALT", m.Alt)
		}
	}

	if r := e.Reach; r != nil {
		reach := udx.CreateElement("UDX.EDXF.REACH")
		optionalTime(reach, "UDX.EDXF.REACH.LISTDATE", r.ListDate)
		optional(reach, "UDX.EDXF.REACH.INFO", r.Info)
	}
}

func writeStructure(groups *etree.Element, s *bmecat.CatalogStructure) {
	structure := groups.CreateElement("CATALOG_STRUCTURE")
	if t := s.Type.String(); t != "" {
		structure.CreateAttr("type", t)
	}
	required(structure, "GROUP_ID", s.GroupID)
	optional(structure, "GROUP_NAME", s.GroupName)
	optional(structure, "GROUP_DESCRIPTION", s.GroupDescription)
	optional(structure, "PARENT_ID", s.ParentID)
	optionalInt(structure, "GROUP_ORDER", s.Order)
	writeMimes(structure, s.Mimes)
}
