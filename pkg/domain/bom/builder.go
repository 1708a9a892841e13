package bom

import (
	"fmt"

	"github.com/vsinha/bom/pkg/domain/entities"
	"github.com/vsinha/bom/pkg/domain/repositories"
)

// Builder resolves assembly tables against the catalog into BOM trees.
// Construction is two-phase: the repositories hold all raw rows keyed by
// part number before Build runs, so references resolve by name and cycle
// detection can carry the ancestor path instead of chasing pointers.
type Builder struct {
	catalog    repositories.CatalogRepository
	assemblies repositories.AssemblyRepository
}

// NewBuilder creates a Builder over loaded repositories
func NewBuilder(catalog repositories.CatalogRepository, assemblies repositories.AssemblyRepository) *Builder {
	return &Builder{
		catalog:    catalog,
		assemblies: assemblies,
	}
}

// Build resolves the tree rooted at the given assembly part number. The
// root needs assembly rows but no catalog entry; intermediate assemblies
// may likewise be absent from the catalog.
func (b *Builder) Build(rootPN entities.PartNumber) (*Node, error) {
	if !b.assemblies.HasAssembly(rootPN) {
		return nil, fmt.Errorf("no assembly rows for root %s", rootPN)
	}
	return b.build(rootPN, nil, nil)
}

// BuildRoot discovers the root assembly and builds its tree.
func (b *Builder) BuildRoot() (*Node, error) {
	rootPN, err := FindRoot(b.assemblies)
	if err != nil {
		return nil, err
	}
	return b.Build(rootPN)
}

// build resolves one assembly into a node. path holds the part numbers
// currently being resolved, root first, for cycle detection.
func (b *Builder) build(pn entities.PartNumber, parent *Node, path []entities.PartNumber) (*Node, error) {
	for _, ancestor := range path {
		if ancestor == pn {
			cycle := make([]entities.PartNumber, 0, len(path)+1)
			cycle = append(cycle, path...)
			cycle = append(cycle, pn) // Close the cycle
			return nil, entities.CyclicBOMError{Path: cycle}
		}
	}
	path = append(path, pn)

	asm, err := b.assemblies.GetAssembly(pn)
	if err != nil {
		return nil, err
	}

	node := &Node{
		PartNumber: pn,
		Links:      asm.Links,
		parent:     parent,
		catalog:    b.catalog,
	}
	if b.catalog.HasItem(pn) {
		item, err := b.catalog.GetItem(pn)
		if err != nil {
			return nil, err
		}
		node.Item = item
	}

	for _, link := range asm.Links {
		child, err := b.resolve(node, link, path)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}

	return node, nil
}

// resolve maps one declared row onto a terminal part or a nested node.
// A catalog entry of kind part wins over an assembly table with the same
// part number; a catalog assembly without a table is unresolved; a part
// number known to neither side could only have been a leaf, so it fails
// as an unknown part.
func (b *Builder) resolve(parent *Node, link entities.ItemLink, path []entities.PartNumber) (Child, error) {
	if b.catalog.HasItem(link.PartNumber) {
		kind, err := b.catalog.KindOf(link.PartNumber)
		if err != nil {
			return Child{}, err
		}
		if kind == entities.KindPart {
			item, err := b.catalog.GetItem(link.PartNumber)
			if err != nil {
				return Child{}, err
			}
			return Child{Link: link, Part: item}, nil
		}
		if !b.assemblies.HasAssembly(link.PartNumber) {
			return Child{}, entities.UnresolvedReferenceError{ParentPN: parent.PartNumber, ChildPN: link.PartNumber}
		}
	}

	if b.assemblies.HasAssembly(link.PartNumber) {
		node, err := b.build(link.PartNumber, parent, path)
		if err != nil {
			return Child{}, err
		}
		return Child{Link: link, Node: node}, nil
	}

	return Child{}, entities.UnknownPartError{PartNumber: link.PartNumber}
}

// FindRoot returns the one assembly that no other assembly references.
// Zero candidates means the tables are mutually referencing; several
// candidates means the source holds more than one product.
func FindRoot(assemblies repositories.AssemblyRepository) (entities.PartNumber, error) {
	all, err := assemblies.GetAllAssemblies()
	if err != nil {
		return "", err
	}
	if len(all) == 0 {
		return "", fmt.Errorf("no assemblies loaded")
	}

	var roots []entities.PartNumber
	for _, candidate := range all {
		referenced := false
		for _, other := range all {
			if other.PartNumber == candidate.PartNumber {
				continue
			}
			if other.References(candidate.PartNumber) {
				referenced = true
				break
			}
		}
		if !referenced {
			roots = append(roots, candidate.PartNumber)
		}
	}

	switch len(roots) {
	case 1:
		return roots[0], nil
	case 0:
		return "", fmt.Errorf("no root assembly found: every assembly is referenced by another")
	default:
		return "", fmt.Errorf("multiple root assemblies found: %v", roots)
	}
}
