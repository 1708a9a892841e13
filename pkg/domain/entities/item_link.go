package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ItemLink represents a single BOM row: this many of that part number,
// required directly by the assembly that declares the row. Each link is
// owned by exactly one assembly.
type ItemLink struct {
	PartNumber PartNumber
	Quantity   decimal.Decimal
}

// NewItemLink creates a validated ItemLink
func NewItemLink(partNumber PartNumber, quantity decimal.Decimal) (*ItemLink, error) {
	if string(partNumber) == "" {
		return nil, fmt.Errorf("part number cannot be empty")
	}
	if !quantity.IsPositive() {
		return nil, fmt.Errorf("quantity must be positive, got %s", quantity)
	}

	return &ItemLink{
		PartNumber: partNumber,
		Quantity:   quantity,
	}, nil
}
