package reader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/antchfx/xmlquery"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/bmecat/internal/dialect"
	"github.com/vvka-141/bmecat/pkg/bmecat"
)

func parseFile(t *testing.T, name string, v bmecat.Version) *bmecat.Catalog {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", name))
	require.NoError(t, err)
	defer f.Close()

	c, err := New(Options{Workers: 4}).Parse(context.Background(), f, v, v.Namespace())
	require.NoError(t, err)
	return c
}

func parseString(t *testing.T, doc string, v bmecat.Version) (*bmecat.Catalog, error) {
	t.Helper()
	return New(Options{}).Parse(context.Background(), strings.NewReader(doc), v, v.Namespace())
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestParse2005_Header(t *testing.T) {
	c := parseFile(t, "catalog_2005.xml", bmecat.Version2005)

	assert.Equal(t, bmecat.Version2005, c.SourceVersion)
	assert.Equal(t, "Catalog Export 4.2", c.GeneratorInfo)
	assert.Equal(t, []bmecat.LanguageCode{"deu", "eng"}, c.Languages)
	assert.Equal(t, "CAT-2024", c.CatalogID)
	assert.Equal(t, "7.1", c.CatalogVersion)
	assert.Equal(t, "Elektro Sortiment", c.CatalogName)
	require.NotNil(t, c.GenerationDate)
	assert.True(t, c.GenerationDate.Equal(time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)))
	assert.Equal(t, bmecat.CurrencyCode("EUR"), c.Currency)

	require.NotNil(t, c.Transport)
	assert.Equal(t, bmecat.IncotermDAP, c.Transport.Incoterm)
	assert.Equal(t, "Hamburg", c.Transport.Location)
	assert.Equal(t, "frei Haus", c.Transport.Remark)

	require.NotNil(t, c.Agreement)
	assert.Equal(t, "RV-77", c.Agreement.ID)
	require.NotNil(t, c.Agreement.StartDate)
	require.NotNil(t, c.Agreement.EndDate)
	assert.Equal(t, 2024, c.Agreement.EndDate.Year())
}

func TestParse2005_Parties(t *testing.T) {
	c := parseFile(t, "catalog_2005.xml", bmecat.Version2005)

	require.NotNil(t, c.Buyer)
	assert.Equal(t, "4000001000005", c.Buyer.ID)
	assert.Equal(t, bmecat.PartyIDTypeILN, c.Buyer.IDType)
	assert.Equal(t, "Grosshandel Nord", c.Buyer.Name)
	assert.Equal(t, "Hafenstrasse 1", c.Buyer.Street)
	assert.Equal(t, "DE", c.Buyer.Country)
	require.Len(t, c.Buyer.Contacts, 1)
	assert.Equal(t, "Meyer", c.Buyer.Contacts[0].Surname)
	assert.Equal(t, []string{"j.meyer@example.com", "einkauf@example.com"}, c.Buyer.Contacts[0].Emails)

	require.NotNil(t, c.Supplier)
	assert.Equal(t, "SUP-9", c.Supplier.ID)
	assert.Equal(t, bmecat.PartyIDTypeSupplierSpecific, c.Supplier.IDType)
	assert.Equal(t, "Kabelwerk Sued GmbH", c.Supplier.Name)
	assert.Equal(t, "DE123456789", c.Supplier.VATID)
}

func TestParse2005_Product(t *testing.T) {
	c := parseFile(t, "catalog_2005.xml", bmecat.Version2005)
	require.Len(t, c.Products, 2)

	p := c.Products[0]
	assert.Equal(t, "NYM-3x1.5", p.No)
	assert.Equal(t, []bmecat.ProductID{{Type: bmecat.ProductIDTypeBuyerSpecific, ID: "B-4711"}}, p.SupplierPIDs)
	assert.Equal(t, []bmecat.ProductID{
		{Type: bmecat.ProductIDTypeGTIN, ID: "4012345000017"},
		{Type: bmecat.ProductIDTypeSupplierSpecific, ID: "KW-17"},
	}, p.PIDs)
	assert.Equal(t, "NYM-J 3x1,5 mm2", p.DescriptionShort)
	assert.Equal(t, "ALT-17", p.SupplierAltPID)
	assert.Equal(t, "M-NYM315", p.ManufacturerPID)
	assert.Equal(t, "Kabelwerk Sued", p.ManufacturerName)
	assert.Equal(t, "NYM-J", p.ManufacturerTypeDescription)
	assert.Equal(t, "E-10", p.ERPGroupSupplier)
	assert.Equal(t, []string{"kabel", "mantelleitung"}, p.Keywords)
	require.NotNil(t, p.Stock)
	assert.Equal(t, 250, *p.Stock)

	require.Len(t, p.FeatureSets, 1)
	fs := p.FeatureSets[0]
	require.NotNil(t, fs.Classification)
	assert.Equal(t, "ETIM-8.0", fs.Classification.SystemName)
	assert.Equal(t, []string{"EC000057"}, fs.Classification.GroupIDs)
	require.Len(t, fs.Features, 2)
	assert.Equal(t, bmecat.QuantityCode("MMK"), fs.Features[0].Unit)
	require.NotNil(t, fs.Features[0].Order)
	assert.Equal(t, 1, *fs.Features[0].Order)
	assert.Equal(t, []string{"grau", "grey"}, fs.Feature("Farbe").Values)
	assert.Nil(t, fs.Features[1].Order)

	require.NotNil(t, p.OrderDetails)
	assert.Equal(t, bmecat.QuantityCode("MTR"), p.OrderDetails.OrderUnit)
	assert.Equal(t, bmecat.QuantityCode("C62"), p.OrderDetails.ContentUnit)
	assert.True(t, p.OrderDetails.ContentUnitPerOrderUnit.Equal(dec("100")))
	assert.True(t, p.OrderDetails.QuantityInterval.Equal(dec("100")))

	require.Len(t, p.Prices, 2)
	assert.Equal(t, bmecat.PriceTypeNetList, p.Prices[0].Type)
	assert.True(t, p.Prices[0].Amount.Equal(dec("0.89")))
	assert.True(t, p.Prices[0].Tax.Equal(dec("0.19")))
	assert.Nil(t, p.Prices[0].LowerBound)
	assert.Equal(t, bmecat.PriceTypeNetCustomer, p.Prices[1].Type)
	assert.True(t, p.Prices[1].Tax.IsZero())
	assert.Equal(t, bmecat.CurrencyUnknown, p.Prices[1].Currency)
	require.NotNil(t, p.Prices[1].LowerBound)
	assert.True(t, p.Prices[1].LowerBound.Equal(dec("1000")))

	require.Len(t, p.Mimes, 1)
	assert.Equal(t, bmecat.MimeTypeImageJPEG, p.Mimes[0].Type)
	assert.Equal(t, "nym315.jpg", p.Mimes[0].Source)
	assert.Equal(t, "Produktbild", p.Mimes[0].Description)
	assert.Equal(t, "normal", p.Mimes[0].Purpose)

	require.NotNil(t, p.Logistics)
	assert.Equal(t, bmecat.CountryCode("DE"), p.Logistics.CountryOfOrigin)
	assert.Equal(t, []string{"85444920"}, p.Logistics.CustomsTariffNumbers)
	assert.True(t, p.Logistics.Weight.Equal(dec("9.5")))
	assert.Nil(t, p.Logistics.Volume)

	require.Len(t, p.References, 1)
	assert.Equal(t, bmecat.ReferenceTypeAccessories, p.References[0].Type)
	assert.Equal(t, "WAGO-221", p.References[0].To)
}

func TestParse2005_AmountDefaultsToZero(t *testing.T) {
	c := parseFile(t, "catalog_2005.xml", bmecat.Version2005)
	p := c.FindProduct("WAGO-221")
	require.NotNil(t, p)
	require.Len(t, p.Prices, 1)
	assert.True(t, p.Prices[0].Amount.IsZero())
	assert.True(t, p.Prices[0].Tax.IsZero())
	assert.Nil(t, p.EDXF)
	assert.Empty(t, p.Extensions)
}

func TestParse2005_EDXF(t *testing.T) {
	c := parseFile(t, "catalog_2005.xml", bmecat.Version2005)
	e := c.Products[0].EDXF
	require.NotNil(t, e)

	assert.Equal(t, "KWS", e.ManufacturerAcronym)
	assert.Equal(t, []string{"R1"}, e.ManufacturerDiscountGroup)
	assert.Equal(t, []string{"S4"}, e.SupplierDiscountGroup)
	assert.Equal(t, []string{"Basic"}, e.ProductSeries)
	require.NotNil(t, e.ValidFrom)
	assert.Equal(t, time.February, e.ValidFrom.Month())

	require.Len(t, e.PackagingUnits, 1)
	pu := e.PackagingUnits[0]
	assert.Equal(t, "RG", pu.Code)
	assert.Equal(t, "4012345000024", pu.GTIN)
	assert.True(t, pu.Weight.Equal(dec("9.6")))
	assert.Nil(t, pu.Length)

	require.NotNil(t, e.Logistics)
	assert.True(t, e.Logistics.NetDiameter.Equal(dec("0.3")))
	assert.Equal(t, "DE-BY", e.Logistics.RegionOfOrigin)

	require.Len(t, e.Mimes, 1)
	assert.Equal(t, "MD01", e.Mimes[0].Code)
	assert.Equal(t, "nym315.pdf", e.Mimes[0].Filename)
	assert.Equal(t, "Datenblatt", e.Mimes[0].Designation)

	require.NotNil(t, e.Reach)
	assert.Equal(t, "no data", e.Reach.Info)
	require.NotNil(t, e.Reach.ListDate)

	assert.Equal(t, []bmecat.KeyValue{
		{Key: "SHOP_CATEGORY", Value: "Elektro"},
		{Key: "COLOR_CODE", Value: "7035"},
	}, c.Products[0].Extensions)
}

func TestParse2005_Structures(t *testing.T) {
	c := parseFile(t, "catalog_2005.xml", bmecat.Version2005)
	require.Len(t, c.Structures, 3)

	assert.Equal(t, bmecat.StructureTypeUnknown, c.Structures[0].Type)
	assert.Equal(t, bmecat.StructureTypeNode, c.Structures[1].Type)
	assert.Equal(t, "Kabel und Leitungen", c.Structures[1].GroupDescription)
	require.NotNil(t, c.Structures[1].Order)
	assert.Equal(t, 2, *c.Structures[1].Order)

	leaf := c.Structures[2]
	assert.Equal(t, bmecat.StructureTypeLeaf, leaf.Type)
	assert.Equal(t, "10", leaf.ParentID)
	require.Len(t, leaf.Mimes, 1)
	assert.Equal(t, "groups/101.jpg", leaf.Mimes[0].Source)

	idx := bmecat.NewStructureIndex(c.Structures)
	assert.Equal(t, []string{"1", "10", "101"}, groupIDs(idx.Path("101")))
}

func groupIDs(nodes []*bmecat.CatalogStructure) []string {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.GroupID
	}
	return ids
}

func TestParse2005_GroupMappings(t *testing.T) {
	c := parseFile(t, "catalog_2005.xml", bmecat.Version2005)

	p := c.FindProduct("NYM-3x1.5")
	require.NotNil(t, p)
	require.Len(t, p.GroupMappings, 2)
	assert.Equal(t, "101", p.GroupMappings[0].GroupID)
	require.NotNil(t, p.GroupMappings[0].Order)
	assert.Equal(t, 3, *p.GroupMappings[0].Order)
	assert.Equal(t, "10", p.GroupMappings[1].GroupID)
	assert.Nil(t, p.GroupMappings[1].Order)

	assert.Empty(t, c.FindProduct("WAGO-221").GroupMappings)
}

func TestParse12_Catalog(t *testing.T) {
	c := parseFile(t, "catalog_12.xml", bmecat.Version12)

	assert.Equal(t, bmecat.Version12, c.SourceVersion)
	assert.Equal(t, []bmecat.LanguageCode{"deu"}, c.Languages)
	assert.Equal(t, bmecat.CurrencyCode("CHF"), c.Currency)
	require.NotNil(t, c.GenerationDate)
	assert.True(t, c.GenerationDate.Equal(time.Date(2009, 5, 4, 6, 15, 0, 0, time.UTC)))
	require.NotNil(t, c.Agreement)
	require.NotNil(t, c.Agreement.StartDate)
	assert.Equal(t, 2009, c.Agreement.StartDate.Year())
	assert.Nil(t, c.Agreement.EndDate)

	require.NotNil(t, c.Buyer)
	assert.Equal(t, "K-100", c.Buyer.ID)
	assert.Equal(t, bmecat.PartyIDTypeBuyerSpecific, c.Buyer.IDType)
	assert.Equal(t, "Baumarkt West", c.Buyer.Name)
	assert.Equal(t, "Basel", c.Buyer.City)
	require.NotNil(t, c.Supplier)
	assert.Equal(t, bmecat.PartyIDTypeDUNS, c.Supplier.IDType)
	assert.Equal(t, "Schrauben Direkt", c.Supplier.Name)

	require.Len(t, c.Products, 2)
	p := c.Products[0]
	assert.Equal(t, "SCR-4x40", p.No)
	assert.Equal(t, "ALT-4x40", p.SupplierAltPID)
	assert.Equal(t, "MS-440", p.ManufacturerPID)
	require.NotNil(t, p.FeatureSets[0].Classification)
	assert.Equal(t, "Holzschrauben", p.FeatureSets[0].Classification.GroupName)
	assert.Equal(t, bmecat.QuantityCode("BX"), p.OrderDetails.OrderUnit)
	assert.True(t, p.Prices[0].Amount.Equal(dec("12.5")))
	assert.Equal(t, bmecat.ReferenceTypeSimilar, p.References[0].Type)
	assert.Equal(t, "SCR-4x50", p.References[0].To)

	second := c.Products[1]
	require.Len(t, second.GroupMappings, 1)
	assert.Equal(t, "S1", second.GroupMappings[0].GroupID)
	assert.Equal(t, 5, *second.GroupMappings[0].Order)
}

func TestParse_ProductIDReconciliation(t *testing.T) {
	c := parseFile(t, "catalog_12.xml", bmecat.Version12)

	// legacy EAN duplicates the typed entry and is dropped
	assert.Equal(t, []bmecat.ProductID{
		{Type: bmecat.ProductIDTypeEAN, ID: "4000000000017"},
	}, c.Products[0].PIDs)

	// a distinct legacy EAN keeps its document position
	assert.Equal(t, []bmecat.ProductID{
		{Type: bmecat.ProductIDTypeEAN, ID: "4000000000024"},
		{Type: bmecat.ProductIDTypeGTIN, ID: "04000000000031"},
	}, c.Products[1].PIDs)

	c2005 := parseFile(t, "catalog_2005.xml", bmecat.Version2005)
	assert.Equal(t, []bmecat.ProductID{
		{Type: bmecat.ProductIDTypeEAN, ID: "4055143000017"},
	}, c2005.FindProduct("WAGO-221").PIDs)
}

func TestParse_ProductIDKeepsRepeatedTypes(t *testing.T) {
	doc := `<BMECAT version="2005" xmlns="http://www.bmecat.org/bmecat/2005"><T_NEW_CATALOG>
<PRODUCT><SUPPLIER_PID>X</SUPPLIER_PID><PRODUCT_DETAILS>
<INTERNATIONAL_PID type="supplier_specific">S-2</INTERNATIONAL_PID>
<INTERNATIONAL_PID type="ean">111</INTERNATIONAL_PID>
<INTERNATIONAL_PID type="supplier_specific">S-1</INTERNATIONAL_PID>
<EAN>111</EAN>
</PRODUCT_DETAILS></PRODUCT></T_NEW_CATALOG></BMECAT>`

	c, err := parseString(t, doc, bmecat.Version2005)
	require.NoError(t, err)
	assert.Equal(t, []bmecat.ProductID{
		{Type: bmecat.ProductIDTypeSupplierSpecific, ID: "S-2"},
		{Type: bmecat.ProductIDTypeEAN, ID: "111"},
		{Type: bmecat.ProductIDTypeSupplierSpecific, ID: "S-1"},
	}, c.Products[0].PIDs)
}

func TestParse_FlattenedPartyFallback(t *testing.T) {
	doc := `<BMECAT version="2005" xmlns="http://www.bmecat.org/bmecat/2005"><HEADER>
<PARTIES>
<PARTY><SUPPLIER_ID type="gln">4099999000001</SUPPLIER_ID><SUPPLIER_NAME>Flat Supplier</SUPPLIER_NAME><SUPPLIER_CITY>Koeln</SUPPLIER_CITY></PARTY>
<PARTY><PARTY_ID>B1</PARTY_ID><PARTY_ROLE>buyer</PARTY_ROLE><ADDRESS><NAME>Modern Buyer</NAME></ADDRESS></PARTY>
</PARTIES>
<BUYER><BUYER_ID>IGNORED</BUYER_ID></BUYER>
</HEADER><T_NEW_CATALOG/></BMECAT>`

	c, err := parseString(t, doc, bmecat.Version2005)
	require.NoError(t, err)

	require.NotNil(t, c.Buyer)
	assert.Equal(t, "B1", c.Buyer.ID)
	assert.Equal(t, "Modern Buyer", c.Buyer.Name)

	require.NotNil(t, c.Supplier)
	assert.Equal(t, "4099999000001", c.Supplier.ID)
	assert.Equal(t, bmecat.PartyIDTypeGLN, c.Supplier.IDType)
	assert.Equal(t, "Flat Supplier", c.Supplier.Name)
	assert.Equal(t, "Koeln", c.Supplier.City)
}

func TestParse_MissingPartiesStayNil(t *testing.T) {
	c, err := parseString(t, `<BMECAT version="2005" xmlns="http://www.bmecat.org/bmecat/2005"><HEADER/></BMECAT>`, bmecat.Version2005)
	require.NoError(t, err)
	assert.Nil(t, c.Buyer)
	assert.Nil(t, c.Supplier)
	assert.Nil(t, c.Agreement)
	assert.Nil(t, c.Transport)
	assert.Empty(t, c.Products)
}

func TestParse_UndeclaredNamespaceAfterDetect(t *testing.T) {
	doc := `<?xml version="1.0"?>
<BMECAT version="1.2"><HEADER><CATALOG><CATALOG_ID>NS-LESS</CATALOG_ID></CATALOG></HEADER>
<T_NEW_CATALOG><ARTICLE><SUPPLIER_AID>A1</SUPPLIER_AID></ARTICLE></T_NEW_CATALOG></BMECAT>`

	det, err := dialect.Detect(strings.NewReader(doc), "")
	require.NoError(t, err)
	require.True(t, det.Rewritten)

	c, err := New(Options{}).Parse(context.Background(), det.Reader(), det.Version, det.Namespace)
	require.NoError(t, err)
	assert.Equal(t, "NS-LESS", c.CatalogID)
	require.Len(t, c.Products, 1)
	assert.Equal(t, "A1", c.Products[0].No)
}

func TestParse_WrongNamespaceHasNoRoot(t *testing.T) {
	_, err := parseString(t, `<BMECAT xmlns="urn:other"/>`, bmecat.Version2005)
	require.Error(t, err)
	assert.True(t, errors.Is(err, bmecat.ErrInvalidDocument))
}

func TestParse_MalformedXML(t *testing.T) {
	doc := "<BMECAT version=\"2005\" xmlns=\"http://www.bmecat.org/bmecat/2005\">\n<HEADER>\n<<CATALOG>"
	_, err := parseString(t, doc, bmecat.Version2005)
	require.Error(t, err)
	assert.True(t, errors.Is(err, bmecat.ErrInvalidDocument))

	var docErr *bmecat.DocumentError
	require.True(t, errors.As(err, &docErr))
	assert.Greater(t, docErr.Line, 0)
}

func TestParse_PreservesProductOrderUnderConcurrency(t *testing.T) {
	var b strings.Builder
	b.WriteString(`<BMECAT version="2005" xmlns="http://www.bmecat.org/bmecat/2005"><T_NEW_CATALOG>`)
	for i := 0; i < 500; i++ {
		fmt.Fprintf(&b, `<PRODUCT><SUPPLIER_PID>P%03d</SUPPLIER_PID></PRODUCT>`, i)
		fmt.Fprintf(&b, `<PRODUCT_TO_CATALOGGROUP_MAP><PROD_ID>P%03d</PROD_ID><CATALOG_GROUP_ID>G%d</CATALOG_GROUP_ID></PRODUCT_TO_CATALOGGROUP_MAP>`, i, i%7)
	}
	b.WriteString(`</T_NEW_CATALOG></BMECAT>`)

	c, err := New(Options{Workers: 16}).Parse(context.Background(), strings.NewReader(b.String()), bmecat.Version2005, bmecat.Namespace2005)
	require.NoError(t, err)
	require.Len(t, c.Products, 500)
	for i, p := range c.Products {
		assert.Equal(t, fmt.Sprintf("P%03d", i), p.No)
		require.Len(t, p.GroupMappings, 1)
		assert.Equal(t, fmt.Sprintf("G%d", i%7), p.GroupMappings[0].GroupID)
	}
}

func TestParse_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f, err := os.Open(filepath.Join("testdata", "catalog_2005.xml"))
	require.NoError(t, err)
	defer f.Close()

	_, err = New(Options{}).Parse(ctx, f, bmecat.Version2005, bmecat.Namespace2005)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMapParallel_PanicBecomesElementError(t *testing.T) {
	tree, err := xmlquery.Parse(strings.NewReader(`<r><a>1</a><a>2</a><a>3</a></r>`))
	require.NoError(t, err)
	nodes := xmlquery.Find(tree, "//a")

	_, err = mapParallel(context.Background(), 2, "product", nodes,
		func(n *xmlquery.Node) string { return n.InnerText() },
		func(n *xmlquery.Node) (int, error) {
			if n.InnerText() == "2" {
				panic("boom")
			}
			return 1, nil
		})
	require.Error(t, err)

	var elemErr *bmecat.ElementError
	require.True(t, errors.As(err, &elemErr))
	assert.Equal(t, "product", elemErr.Kind)
	assert.Equal(t, 1, elemErr.Index)
	assert.Equal(t, "2", elemErr.ID)
	assert.True(t, errors.Is(err, bmecat.ErrInvalidDocument))
	assert.Contains(t, err.Error(), "boom")
}

func TestMapParallel_ErrorAbortsWithoutPartialResult(t *testing.T) {
	tree, err := xmlquery.Parse(strings.NewReader(`<r><a>1</a><a>x</a></r>`))
	require.NoError(t, err)

	results, err := mapParallel(context.Background(), 1, "catalog group", xmlquery.Find(tree, "//a"),
		func(n *xmlquery.Node) string { return n.InnerText() },
		func(n *xmlquery.Node) (string, error) {
			if n.InnerText() == "x" {
				return "", errors.New("bad group")
			}
			return n.InnerText(), nil
		})
	assert.Nil(t, results)
	assert.ErrorContains(t, err, "bad group")
}

func TestAttachGroupMappings_IgnoresUnknownProducts(t *testing.T) {
	products := []*bmecat.Product{{No: "A"}, {No: "B"}}
	attachGroupMappings(products, []groupMapEntry{
		{productID: "B", mapping: bmecat.GroupMapping{GroupID: "1"}},
		{productID: "Z", mapping: bmecat.GroupMapping{GroupID: "2"}},
		{productID: "B", mapping: bmecat.GroupMapping{GroupID: "3"}},
	})

	assert.Empty(t, products[0].GroupMappings)
	assert.Equal(t, []bmecat.GroupMapping{{GroupID: "1"}, {GroupID: "3"}}, products[1].GroupMappings)
}
