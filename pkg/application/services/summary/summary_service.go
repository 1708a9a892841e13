package summary

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/bom/pkg/application/dto"
	"github.com/vsinha/bom/pkg/domain/bom"
	"github.com/vsinha/bom/pkg/domain/entities"
	"github.com/vsinha/bom/pkg/domain/repositories"
)

// SummaryService builds purchase summaries by joining a tree's aggregate
// with the catalog's purchasing attributes
type SummaryService struct {
	catalog repositories.CatalogRepository
}

// NewSummaryService creates a summary service over a catalog
func NewSummaryService(catalog repositories.CatalogRepository) *SummaryService {
	return &SummaryService{catalog: catalog}
}

// BuildSummary produces one row per purchasable part appearing in the
// node's aggregate, in catalog declaration order. Catalog entries of
// kind assembly are never purchased as line items and are skipped, as
// are parts the aggregate does not require.
func (s *SummaryService) BuildSummary(node *bom.Node) (*dto.Summary, error) {
	aggregate := node.Aggregate()

	items, err := s.catalog.GetAllItems()
	if err != nil {
		return nil, err
	}

	result := &dto.Summary{
		RootPN:    node.PartNumber,
		TotalCost: decimal.Zero,
	}

	for _, item := range items {
		if item.Kind == entities.KindAssembly {
			continue
		}
		total, ok := aggregate[item.PartNumber]
		if !ok {
			continue
		}

		purchase := PurchaseQty(total, item.PkgQty)
		extended := purchase.Mul(item.PkgPrice)

		result.Rows = append(result.Rows, dto.SummaryRow{
			PartNumber:   item.PartNumber,
			Name:         item.Name,
			Description:  item.Description,
			Supplier:     item.Supplier,
			SupplierPN:   item.SupplierPN,
			PkgQty:       item.PkgQty,
			PkgPrice:     item.PkgPrice,
			TotalQty:     total,
			PurchaseQty:  purchase,
			ExtendedCost: extended,
		})
		result.TotalCost = result.TotalCost.Add(extended)
	}

	return result, nil
}

// PurchaseQty returns how many supplier units to buy: whole packages
// rounded up when a package holds more than one unit, otherwise exactly
// the required total.
func PurchaseQty(total decimal.Decimal, pkgQty int64) decimal.Decimal {
	if pkgQty > 1 {
		return total.Div(decimal.NewFromInt(pkgQty)).Ceil()
	}
	return total
}
