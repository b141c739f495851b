// Package bmecat defines the in-memory model of a BMECat product catalog,
// the code domains used by its fields and the errors returned when loading
// or saving catalogs.
package bmecat

import "time"

// Catalog is the root of a loaded or programmatically built catalog.
type Catalog struct {
	// SourceVersion is the dialect the catalog was loaded from.
	// It is informational; catalogs are always saved as 2005.
	SourceVersion Version

	GeneratorInfo  string
	Languages      []LanguageCode
	CatalogID      string
	CatalogVersion string
	CatalogName    string
	GenerationDate *time.Time
	Currency       CurrencyCode

	Buyer     *Party
	Supplier  *Party
	Transport *TransportConditions
	Agreement *Agreement

	Products   []*Product
	Structures []*CatalogStructure
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// FindProduct returns the first product with the given supplier number.
func (c *Catalog) FindProduct(no string) *Product {
	for _, p := range c.Products {
		if p.No == no {
			return p
		}
	}
	return nil
}

// Agreement is a framework agreement the catalog prices are based on.
type Agreement struct {
	ID        string
	StartDate *time.Time
	EndDate   *time.Time
}

// TransportConditions describe delivery terms of the catalog.
type TransportConditions struct {
	Incoterm Incoterm
	Location string
	Remark   string
}

// Party is a buyer or supplier with its postal address and contacts.
type Party struct {
	ID     string
	IDType PartyIDType
	Name   string

	Name2      string
	Name3      string
	Department string
	Contact    string
	Street     string
	Zip        string
	BoxNo      string
	ZipBox     string
	City       string
	State      string
	Country    string
	VATID      string
	Phone      string
	Fax        string
	Email      string
	URL        string

	Contacts []*Contact
}

// HasAddress reports whether any address field is set.
func (p *Party) HasAddress() bool {
	return p.Name2 != "" || p.Name3 != "" || p.Department != "" || p.Contact != "" ||
		p.Street != "" || p.Zip != "" || p.BoxNo != "" || p.ZipBox != "" ||
		p.City != "" || p.State != "" || p.Country != "" || p.VATID != "" ||
		p.Phone != "" || p.Fax != "" || p.Email != "" || p.URL != "" ||
		len(p.Contacts) > 0
}

// Contact is one CONTACT_DETAILS entry of a party address.
type Contact struct {
	ID            string
	Surname       string
	FirstName     string
	Title         string
	AcademicTitle string
	Role          string
	Description   string
	Phones        []string
	Faxes         []string
	URL           string
	Emails        []string
}
