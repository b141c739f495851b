package reader

import (
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/vvka-141/bmecat/internal/dialect"
	"github.com/vvka-141/bmecat/internal/xmlpath"
	"github.com/vvka-141/bmecat/pkg/bmecat"
)

var (
	pathParties       = dialect.Path("PARTIES", "PARTY")
	pathPartyID       = dialect.Path("PARTY_ID")
	pathPartyRole     = dialect.Path("PARTY_ROLE")
	pathAddress       = dialect.Path("ADDRESS")
	pathAddressName   = dialect.Path("NAME")
	pathContact       = dialect.Path("CONTACT_DETAILS")
	pathClassicBuyer  = dialect.Path("BUYER")
	pathClassicSupply = dialect.Path("SUPPLIER")
)

// readParties resolves buyer and supplier. For each role the modern
// PARTIES/PARTY shape wins; flattened BUYER_*/SUPPLIER_* fields inside a
// PARTY and the classic HEADER/BUYER and HEADER/SUPPLIER blocks are only
// consulted while the role is still unresolved.
func (d *document) readParties(header *xmlquery.Node, c *bmecat.Catalog) {
	for _, party := range d.acc.Nodes(header, pathParties) {
		roles := d.acc.Texts(party, pathPartyRole)
		if len(roles) == 0 {
			continue
		}
		p := d.readModernParty(party)
		for _, role := range roles {
			switch strings.ToLower(strings.TrimSpace(role)) {
			case "buyer":
				if c.Buyer == nil {
					c.Buyer = p
				}
			case "supplier":
				if c.Supplier == nil {
					c.Supplier = p
				}
			}
		}
	}

	if c.Buyer == nil {
		c.Buyer = d.readFlattenedParty(header, "BUYER")
	}
	if c.Supplier == nil {
		c.Supplier = d.readFlattenedParty(header, "SUPPLIER")
	}

	if c.Buyer == nil {
		c.Buyer = d.readClassicParty(d.acc.Node(header, pathClassicBuyer), "BUYER")
	}
	if c.Supplier == nil {
		c.Supplier = d.readClassicParty(d.acc.Node(header, pathClassicSupply), "SUPPLIER")
	}
}

func (d *document) readModernParty(party *xmlquery.Node) *bmecat.Party {
	address := d.acc.Node(party, pathAddress)
	p := d.readAddress(address)
	idNode := d.acc.Node(party, pathPartyID)
	p.ID = d.acc.Text(party, pathPartyID, "")
	p.IDType = d.decoder.PartyIDType(xmlpath.Attr(idNode, "type", ""))
	p.Name = d.acc.Text(address, pathAddressName, "")
	return p
}

// readFlattenedParty reads PARTY elements carrying BUYER_ID, BUYER_NAME and
// similar siblings instead of a PARTY_ROLE.
func (d *document) readFlattenedParty(header *xmlquery.Node, role string) *bmecat.Party {
	var party *xmlquery.Node
	for _, candidate := range d.acc.Nodes(header, pathParties) {
		if d.acc.Exists(candidate, dialect.Path(role+"_ID")) {
			party = candidate
			break
		}
	}
	if party == nil {
		return nil
	}

	field := func(name string) string {
		return d.acc.Text(party, dialect.Path(role+"_"+name), "")
	}
	return &bmecat.Party{
		ID:      field("ID"),
		IDType:  d.decoder.PartyIDType(d.acc.Attr(party, dialect.Path(role+"_ID"), "type", "")),
		Name:    field("NAME"),
		Contact: field("CONTACT"),
		Street:  field("STREET"),
		Zip:     field("ZIP"),
		City:    field("CITY"),
		Country: field("COUNTRY"),
		Phone:   field("PHONE"),
		Email:   field("EMAIL"),
		URL:     field("URL"),
	}
}

// readClassicParty reads a HEADER/BUYER or HEADER/SUPPLIER block.
func (d *document) readClassicParty(node *xmlquery.Node, role string) *bmecat.Party {
	if node == nil {
		return nil
	}
	address := d.acc.Node(node, pathAddress)
	p := d.readAddress(address)
	idPath := dialect.Path(role + "_ID")
	p.ID = d.acc.Text(node, idPath, "")
	p.IDType = d.decoder.PartyIDType(d.acc.Attr(node, idPath, "type", ""))
	p.Name = d.acc.Text(node, dialect.Path(role+"_NAME"), "")
	if p.Name == "" {
		p.Name = d.acc.Text(address, pathAddressName, "")
	}
	return p
}

// readAddress maps an ADDRESS block; a nil node yields an empty party.
func (d *document) readAddress(address *xmlquery.Node) *bmecat.Party {
	p := &bmecat.Party{}
	if address == nil {
		return p
	}
	text := func(name string) string {
		return d.acc.Text(address, dialect.Path(name), "")
	}
	p.Name2 = text("NAME2")
	p.Name3 = text("NAME3")
	p.Department = text("DEPARTMENT")
	p.Contact = text("CONTACT")
	p.Street = text("STREET")
	p.Zip = text("ZIP")
	p.BoxNo = text("BOXNO")
	p.ZipBox = text("ZIPBOX")
	p.City = text("CITY")
	p.State = text("STATE")
	p.Country = text("COUNTRY")
	p.VATID = text("VAT_ID")
	p.Phone = text("PHONE")
	p.Fax = text("FAX")
	p.Email = text("EMAIL")
	p.URL = text("URL")

	for _, cd := range d.acc.Nodes(address, pathContact) {
		p.Contacts = append(p.Contacts, d.readContact(cd))
	}
	return p
}

func (d *document) readContact(node *xmlquery.Node) *bmecat.Contact {
	text := func(name string) string {
		return d.acc.Text(node, dialect.Path(name), "")
	}
	c := &bmecat.Contact{
		ID:            text("CONTACT_ID"),
		Surname:       text("SURNAME"),
		FirstName:     text("FIRST_NAME"),
		Title:         text("TITLE"),
		AcademicTitle: text("ACADEMIC_TITLE"),
		Role:          text("CONTACT_ROLE"),
		Description:   text("CONTACT_DESCR"),
		Phones:        d.acc.Texts(node, dialect.Path("PHONE")),
		Faxes:         d.acc.Texts(node, dialect.Path("FAX")),
		URL:           text("URL"),
		Emails:        d.acc.Texts(node, dialect.Path("EMAILS", "EMAIL")),
	}
	if c.Surname == "" {
		c.Surname = text("CONTACT_NAME")
	}
	if len(c.Emails) == 0 {
		if emails := strings.TrimSpace(text("EMAILS")); emails != "" {
			c.Emails = []string{emails}
		}
	}
	return c
}
