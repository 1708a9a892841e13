package entities

import "fmt"

// Assembly holds the parsed child rows declared by one assembly part
// number, in source order. It is the raw table shape handed over by the
// loaders; resolution into a tree happens in the bom package.
type Assembly struct {
	PartNumber PartNumber
	Links      []ItemLink
}

// NewAssembly creates a validated Assembly
func NewAssembly(partNumber PartNumber, links []ItemLink) (*Assembly, error) {
	if string(partNumber) == "" {
		return nil, fmt.Errorf("assembly part number cannot be empty")
	}
	for i, link := range links {
		if link.PartNumber == partNumber {
			return nil, fmt.Errorf("assembly %s row %d references itself", partNumber, i+1)
		}
	}

	return &Assembly{
		PartNumber: partNumber,
		Links:      links,
	}, nil
}

// References reports whether any of the assembly's rows name the given
// part number.
func (a *Assembly) References(partNumber PartNumber) bool {
	for _, link := range a.Links {
		if link.PartNumber == partNumber {
			return true
		}
	}
	return false
}
