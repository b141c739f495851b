package bmecat

// CatalogStructure is one node of the catalog group tree. The tree is
// expressed through ParentID references only; see StructureIndex.
type CatalogStructure struct {
	Type             StructureType
	GroupID          string
	GroupName        string
	GroupDescription string
	ParentID         string
	Order            *int
	Mimes            []*Mime
}

// StructureIndex resolves group id references of a parsed catalog.
// Dangling parent ids are tolerated; such nodes are reported as roots.
type StructureIndex struct {
	byID     map[string]*CatalogStructure
	children map[string][]*CatalogStructure
	roots    []*CatalogStructure
}

// NewStructureIndex indexes structures by group id. When a group id occurs
// more than once the first node wins.
func NewStructureIndex(structures []*CatalogStructure) *StructureIndex {
	idx := &StructureIndex{
		byID:     make(map[string]*CatalogStructure, len(structures)),
		children: make(map[string][]*CatalogStructure),
	}
	for _, s := range structures {
		if _, exists := idx.byID[s.GroupID]; !exists {
			idx.byID[s.GroupID] = s
		}
	}
	for _, s := range structures {
		if _, ok := idx.byID[s.ParentID]; ok && s.ParentID != s.GroupID {
			idx.children[s.ParentID] = append(idx.children[s.ParentID], s)
			continue
		}
		idx.roots = append(idx.roots, s)
	}
	return idx
}

// Get returns the node with the given group id, or nil.
func (idx *StructureIndex) Get(groupID string) *CatalogStructure {
	return idx.byID[groupID]
}

// Children returns the direct children of a group in document order.
func (idx *StructureIndex) Children(groupID string) []*CatalogStructure {
	return idx.children[groupID]
}

// Roots returns nodes without a resolvable parent.
func (idx *StructureIndex) Roots() []*CatalogStructure {
	return idx.roots
}

// Parent returns the resolved parent of a node, or nil.
func (idx *StructureIndex) Parent(s *CatalogStructure) *CatalogStructure {
	if s == nil || s.ParentID == s.GroupID {
		return nil
	}
	return idx.byID[s.ParentID]
}

// Path returns the chain of nodes from the root down to groupID.
// Cyclic parent references end the walk.
func (idx *StructureIndex) Path(groupID string) []*CatalogStructure {
	var path []*CatalogStructure
	seen := make(map[string]bool)
	for s := idx.byID[groupID]; s != nil && !seen[s.GroupID]; s = idx.Parent(s) {
		seen[s.GroupID] = true
		path = append(path, s)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
