package bom

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/bom/pkg/domain/entities"
)

// Flat returns every terminal part reachable from this node, depth first
// in declared order, one element per physical occurrence. A part used in
// two sub-assemblies appears twice, unmerged. Each call returns a fresh
// slice.
func (n *Node) Flat() []*entities.Item {
	var parts []*entities.Item
	for _, child := range n.Children {
		if child.IsPart() {
			parts = append(parts, child.Part)
		} else {
			parts = append(parts, child.Node.Flat()...)
		}
	}
	return parts
}

// Aggregate returns the total required quantity of every terminal part
// under this node: direct parts contribute their link quantity, and each
// sub-assembly's aggregate is multiplied by the link quantity that
// references it, then merged by key-wise summation. The result is
// memoized on the node; callers receive a copy.
func (n *Node) Aggregate() map[entities.PartNumber]decimal.Decimal {
	if n.aggregate == nil {
		agg := make(map[entities.PartNumber]decimal.Decimal)
		for _, child := range n.Children {
			if child.IsPart() {
				agg[child.Link.PartNumber] = agg[child.Link.PartNumber].Add(child.Link.Quantity)
			} else {
				for pn, qty := range child.Node.Aggregate() {
					agg[pn] = agg[pn].Add(qty.Mul(child.Link.Quantity))
				}
			}
		}
		n.aggregate = agg
	}

	out := make(map[entities.PartNumber]decimal.Decimal, len(n.aggregate))
	for pn, qty := range n.aggregate {
		out[pn] = qty
	}
	return out
}
