package bom

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/bom/pkg/domain/entities"
	"github.com/vsinha/bom/pkg/domain/repositories"
)

// Child is one resolved BOM row: the declared link plus either a
// terminal catalog part or a nested assembly node, never both.
type Child struct {
	Link entities.ItemLink
	Part *entities.Item
	Node *Node
}

// IsPart reports whether the child resolved as a terminal part.
func (c Child) IsPart() bool {
	return c.Part != nil
}

// Node is one assembly in a resolved BOM tree: its part number, the
// declared rows, and the resolved children in declared order. Nodes are
// write-once at construction; the only later mutation is the memoized
// aggregate, which is idempotent to recompute.
type Node struct {
	PartNumber entities.PartNumber
	Item       *entities.Item // catalog entry, nil for unlisted assemblies
	Links      []entities.ItemLink
	Children   []Child

	parent  *Node
	catalog repositories.CatalogRepository

	aggregate map[entities.PartNumber]decimal.Decimal
}

// Parent returns the node that references this one, or nil at the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Catalog returns the shared catalog the tree was resolved against.
func (n *Node) Catalog() repositories.CatalogRepository {
	return n.catalog
}

// Parts returns the direct children that are terminal parts, in declared
// order. Each carries its link, so callers get the quantity alongside.
func (n *Node) Parts() []Child {
	var parts []Child
	for _, child := range n.Children {
		if child.IsPart() {
			parts = append(parts, child)
		}
	}
	return parts
}

// Assemblies returns the direct children that are nested assemblies, in
// declared order.
func (n *Node) Assemblies() []*Node {
	var assemblies []*Node
	for _, child := range n.Children {
		if !child.IsPart() {
			assemblies = append(assemblies, child.Node)
		}
	}
	return assemblies
}

// QTY returns the directly declared quantity of a part number among this
// node's immediate children only. A part number declared on several rows
// sums; a part number on no row fails with NotDirectChildError. Callers
// wanting totals across all depths use Aggregate.
func (n *Node) QTY(partNumber entities.PartNumber) (decimal.Decimal, error) {
	total := decimal.Zero
	found := false
	for _, link := range n.Links {
		if link.PartNumber == partNumber {
			total = total.Add(link.Quantity)
			found = true
		}
	}
	if !found {
		return decimal.Zero, entities.NotDirectChildError{AssemblyPN: n.PartNumber, ChildPN: partNumber}
	}
	return total, nil
}
