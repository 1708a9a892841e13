package dto

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/bom/pkg/domain/entities"
)

// SummaryRow is one purchasable part in a flattened BOM: the catalog's
// descriptive attributes joined with the aggregated totals and the
// package-rounded purchase figures.
type SummaryRow struct {
	PartNumber   entities.PartNumber
	Name         string
	Description  string
	Supplier     string
	SupplierPN   string
	PkgQty       int64
	PkgPrice     decimal.Decimal
	TotalQty     decimal.Decimal
	PurchaseQty  decimal.Decimal
	ExtendedCost decimal.Decimal
}

// Summary is the purchase report for one BOM tree
type Summary struct {
	RootPN    entities.PartNumber
	Rows      []SummaryRow
	TotalCost decimal.Decimal
}
