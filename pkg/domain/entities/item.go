package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PartNumber represents a unique part identifier
type PartNumber string

// ItemKind distinguishes purchasable parts from assemblies composed of them
type ItemKind int

const (
	KindPart ItemKind = iota
	KindAssembly
)

// String method for ItemKind enum
func (k ItemKind) String() string {
	switch k {
	case KindPart:
		return "part"
	case KindAssembly:
		return "assembly"
	default:
		return "unknown"
	}
}

// ParseItemKind parses a source-table kind cell. A blank cell means part.
func ParseItemKind(s string) (ItemKind, error) {
	switch s {
	case "", "part":
		return KindPart, nil
	case "assembly":
		return KindAssembly, nil
	default:
		return KindPart, fmt.Errorf("unknown item kind: %q", s)
	}
}

// Item represents one catalog entry with its purchasing attributes
type Item struct {
	PartNumber  PartNumber
	Name        string
	Description string
	Supplier    string
	SupplierPN  string
	PkgQty      int64
	PkgPrice    decimal.Decimal
	Kind        ItemKind
}

// NewItem creates a validated Item
func NewItem(partNumber PartNumber, name, description, supplier, supplierPN string, pkgQty int64, pkgPrice decimal.Decimal, kind ItemKind) (*Item, error) {
	if string(partNumber) == "" {
		return nil, fmt.Errorf("part number cannot be empty")
	}
	if pkgQty < 1 {
		return nil, fmt.Errorf("package quantity must be at least 1, got %d", pkgQty)
	}
	if pkgPrice.IsNegative() {
		return nil, fmt.Errorf("package price cannot be negative, got %s", pkgPrice)
	}

	return &Item{
		PartNumber:  partNumber,
		Name:        name,
		Description: description,
		Supplier:    supplier,
		SupplierPN:  supplierPN,
		PkgQty:      pkgQty,
		PkgPrice:    pkgPrice,
		Kind:        kind,
	}, nil
}
