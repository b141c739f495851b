package reader

import (
	"github.com/antchfx/xmlquery"

	"github.com/vvka-141/bmecat/internal/dialect"
	"github.com/vvka-141/bmecat/internal/xmlpath"
	"github.com/vvka-141/bmecat/pkg/bmecat"
)

var (
	pathStructures       = dialect.Path("CATALOG_GROUP_SYSTEM", "CATALOG_STRUCTURE")
	pathGroupID          = dialect.Path("GROUP_ID")
	pathGroupName        = dialect.Path("GROUP_NAME")
	pathGroupDescription = dialect.Path("GROUP_DESCRIPTION")
	pathParentID         = dialect.Path("PARENT_ID")
	pathGroupOrder       = dialect.Path("GROUP_ORDER")
	pathCatalogGroupID   = dialect.Path("CATALOG_GROUP_ID")
)

func (d *document) readStructure(n *xmlquery.Node) (*bmecat.CatalogStructure, error) {
	return &bmecat.CatalogStructure{
		Type:             d.decoder.StructureType(xmlpath.Attr(n, "type", "")),
		GroupID:          d.acc.Text(n, pathGroupID, ""),
		GroupName:        d.acc.Text(n, pathGroupName, ""),
		GroupDescription: d.acc.Text(n, pathGroupDescription, ""),
		ParentID:         d.acc.Text(n, pathParentID, ""),
		Order:            d.acc.IntPtr(n, pathGroupOrder),
		Mimes:            d.readMimes(n),
	}, nil
}

// groupMapEntry is one product-to-catalog-group assignment.
type groupMapEntry struct {
	productID string
	mapping   bmecat.GroupMapping
}

func (d *document) readGroupMapEntry(n *xmlquery.Node) (groupMapEntry, error) {
	return groupMapEntry{
		productID: d.acc.Text(n, d.paths.groupMapProduct, ""),
		mapping: bmecat.GroupMapping{
			GroupID: d.acc.Text(n, pathCatalogGroupID, ""),
			Order:   d.acc.IntPtr(n, d.paths.groupMapOrder),
		},
	}, nil
}

// attachGroupMappings indexes entries by product id and hands every
// product the entries naming its No, in document order. Entries for
// unknown products are ignored.
func attachGroupMappings(products []*bmecat.Product, entries []groupMapEntry) {
	if len(entries) == 0 {
		return
	}
	byProduct := make(map[string][]bmecat.GroupMapping)
	for _, e := range entries {
		byProduct[e.productID] = append(byProduct[e.productID], e.mapping)
	}
	for _, p := range products {
		if mappings, ok := byProduct[p.No]; ok {
			p.GroupMappings = append([]bmecat.GroupMapping(nil), mappings...)
		}
	}
}
