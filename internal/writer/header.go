package writer

import (
	"github.com/beevik/etree"

	"github.com/vvka-141/bmecat/pkg/bmecat"
)

func (w *Writer) writeHeader(header *etree.Element, c *bmecat.Catalog) {
	generator := c.GeneratorInfo
	if generator == "" {
		generator = w.opts.GeneratorInfo
	}
	optional(header, "GENERATOR_INFO", generator)

	catalog := header.CreateElement("CATALOG")
	for _, lang := range c.Languages {
		optional(catalog, "LANGUAGE", lang.String())
	}
	required(catalog, "CATALOG_ID", c.CatalogID)
	required(catalog, "CATALOG_VERSION", c.CatalogVersion)
	optional(catalog, "CATALOG_NAME", c.CatalogName)
	optionalTime(catalog, "GENERATION_DATE", c.GenerationDate)
	optional(catalog, "CURRENCY", c.Currency.String())

	if t := c.Transport; t != nil {
		transport := catalog.CreateElement("TRANSPORT")
		optional(transport, "INCOTERM", t.Incoterm.String())
		optional(transport, "LOCATION", t.Location)
		optional(transport, "TRANSPORT_REMARK", t.Remark)
	}

	if c.Buyer != nil {
		writeParty(header, "BUYER", "buyer", c.Buyer)
	}

	if a := c.Agreement; a != nil {
		agreement := header.CreateElement("AGREEMENT")
		optional(agreement, "AGREEMENT_ID", a.ID)
		optionalTime(agreement, "AGREEMENT_START_DATE", a.StartDate)
		optionalTime(agreement, "AGREEMENT_END_DATE", a.EndDate)
	}

	if c.Supplier != nil {
		writeParty(header, "SUPPLIER", "supplier", c.Supplier)
	}
}

// writeParty emits the HEADER/BUYER or HEADER/SUPPLIER shape.
func writeParty(header *etree.Element, role, addressType string, p *bmecat.Party) {
	party := header.CreateElement(role)
	if p.ID != "" {
		typed(party, role+"_ID", p.IDType.String(), p.ID)
	}
	optional(party, role+"_NAME", p.Name)

	if !p.HasAddress() {
		return
	}
	address := party.CreateElement("ADDRESS")
	address.CreateAttr("type", addressType)
	optional(address, "NAME", p.Name)
	optional(address, "NAME2", p.Name2)
	optional(address, "NAME3", p.Name3)
	optional(address, "DEPARTMENT", p.Department)
	for _, c := range p.Contacts {
		writeContact(address, c)
	}
	optional(address, "CONTACT", p.Contact)
	optional(address, "STREET", p.Street)
	optional(address, "ZIP", p.Zip)
	optional(address, "BOXNO", p.BoxNo)
	optional(address, "ZIPBOX", p.ZipBox)
	optional(address, "CITY", p.City)
	optional(address, "STATE", p.State)
	optional(address, "COUNTRY", p.Country)
	optional(address, "VAT_ID", p.VATID)
	optional(address, "PHONE", p.Phone)
	optional(address, "FAX", p.Fax)
	optional(address, "EMAIL", p.Email)
	optional(address, "URL", p.URL)
}

func writeContact(address *etree.Element, c *bmecat.Contact) {
	contact := address.CreateElement("CONTACT_DETAILS")
	optional(contact, "CONTACT_ID", c.ID)
	optional(contact, "SURNAME", c.Surname)
	optional(contact, "FIRST_NAME", c.FirstName)
	optional(contact, "TITLE", c.Title)
	optional(contact, "ACADEMIC_TITLE", c.AcademicTitle)
	optional(contact, "CONTACT_ROLE", c.Role)
	optional(contact, "CONTACT_DESCR", c.Description)
	optionalAll(contact, "PHONE", c.Phones)
	optionalAll(contact, "FAX", c.Faxes)
	optional(contact, "URL", c.URL)
	if hasText(c.Emails) {
		emails := contact.CreateElement("EMAILS")
		optionalAll(emails, "EMAIL", c.Emails)
	}
}
