package summary

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vsinha/bom/pkg/domain/bom"
	"github.com/vsinha/bom/pkg/domain/entities"
	"github.com/vsinha/bom/pkg/infrastructure/repositories/memory"
)

func qty(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// skateboardTree builds the skateboard fixture: two truck assemblies per
// board, four wheel assemblies per truck, two bearings per wheel. The
// catalog carries one extra part, SK1008-01, that no assembly uses.
func skateboardTree(t *testing.T) (*memory.CatalogRepository, *bom.Node) {
	t.Helper()

	catalog := memory.NewCatalogRepository(11)
	items := []*entities.Item{
		{PartNumber: "SK1001-01", Name: "Deck", Supplier: "Alpha Boards", PkgQty: 1, PkgPrice: price("42.00"), Kind: entities.KindPart},
		{PartNumber: "SK1002-01", Name: "Truck", Supplier: "Indy", PkgQty: 1, PkgPrice: price("19.50"), Kind: entities.KindPart},
		{PartNumber: "SK1003-01", Name: "Bearing", Supplier: "Bones", PkgQty: 8, PkgPrice: price("15.99"), Kind: entities.KindPart},
		{PartNumber: "SK1004-01", Name: "Wheel", Supplier: "Spitfire", PkgQty: 4, PkgPrice: price("29.99"), Kind: entities.KindPart},
		{PartNumber: "SK1005-01", Name: "Screw", Supplier: "McMaster", PkgQty: 25, PkgPrice: price("8.95"), Kind: entities.KindPart},
		{PartNumber: "SK1006-01", Name: "Nut", Supplier: "McMaster", PkgQty: 25, PkgPrice: price("6.50"), Kind: entities.KindPart},
		{PartNumber: "SK1007-01", Name: "Grip Tape", Supplier: "Jessup", PkgQty: 1, PkgPrice: price("11.00"), Kind: entities.KindPart},
		{PartNumber: "SK1008-01", Name: "Riser", Supplier: "Alpha Boards", PkgQty: 2, PkgPrice: price("4.00"), Kind: entities.KindPart},
		{PartNumber: "SKA-100", Name: "Skateboard", PkgQty: 1, Kind: entities.KindAssembly},
		{PartNumber: "TR-01", Name: "Truck Assembly", PkgQty: 1, Kind: entities.KindAssembly},
		{PartNumber: "WH-01", Name: "Wheel Assembly", PkgQty: 1, Kind: entities.KindAssembly},
	}
	if err := catalog.LoadItems(items); err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}

	assemblies := memory.NewAssemblyRepository(3)
	tables := []*entities.Assembly{
		{PartNumber: "SKA-100", Links: []entities.ItemLink{
			{PartNumber: "SK1001-01", Quantity: qty(1)},
			{PartNumber: "TR-01", Quantity: qty(2)},
			{PartNumber: "SK1005-01", Quantity: qty(8)},
			{PartNumber: "SK1006-01", Quantity: qty(8)},
			{PartNumber: "SK1007-01", Quantity: qty(1)},
		}},
		{PartNumber: "TR-01", Links: []entities.ItemLink{
			{PartNumber: "SK1002-01", Quantity: qty(1)},
			{PartNumber: "WH-01", Quantity: qty(4)},
		}},
		{PartNumber: "WH-01", Links: []entities.ItemLink{
			{PartNumber: "SK1004-01", Quantity: qty(1)},
			{PartNumber: "SK1003-01", Quantity: qty(2)},
		}},
	}
	if err := assemblies.LoadAssemblies(tables); err != nil {
		t.Fatalf("Failed to load assemblies: %v", err)
	}

	root, err := bom.NewBuilder(catalog, assemblies).Build("SKA-100")
	if err != nil {
		t.Fatalf("Failed to build tree: %v", err)
	}
	return catalog, root
}

func TestPurchaseQty(t *testing.T) {
	testCases := []struct {
		name   string
		total  decimal.Decimal
		pkgQty int64
		want   decimal.Decimal
	}{
		{"exact packages", qty(8), 4, qty(2)},
		{"one oversized package", qty(8), 25, qty(1)},
		{"unit packages pass through", qty(8), 1, qty(8)},
		{"partial package rounds up", qty(9), 4, qty(3)},
		{"fractional total in unit packages", price("8.5"), 1, price("8.5")},
		{"fractional total rounds up to one package", price("0.2"), 3, qty(1)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := PurchaseQty(tc.total, tc.pkgQty)
			if !got.Equal(tc.want) {
				t.Errorf("Expected purchase quantity %s, got %s", tc.want, got)
			}
		})
	}
}

func TestBuildSummary_Skateboard(t *testing.T) {
	catalog, root := skateboardTree(t)

	result, err := NewSummaryService(catalog).BuildSummary(root)
	if err != nil {
		t.Fatalf("Failed to build summary: %v", err)
	}

	if result.RootPN != "SKA-100" {
		t.Errorf("Expected root SKA-100, got %s", result.RootPN)
	}

	// Rows follow catalog declaration order. SK1008-01 is unused and
	// the three assemblies never become purchase rows.
	wantRows := []struct {
		pn       entities.PartNumber
		total    decimal.Decimal
		purchase decimal.Decimal
		extended decimal.Decimal
	}{
		{"SK1001-01", qty(1), qty(1), price("42.00")},
		{"SK1002-01", qty(2), qty(2), price("39.00")},
		{"SK1003-01", qty(16), qty(2), price("31.98")},
		{"SK1004-01", qty(8), qty(2), price("59.98")},
		{"SK1005-01", qty(8), qty(1), price("8.95")},
		{"SK1006-01", qty(8), qty(1), price("6.50")},
		{"SK1007-01", qty(1), qty(1), price("11.00")},
	}

	if len(result.Rows) != len(wantRows) {
		t.Fatalf("Expected %d rows, got %d", len(wantRows), len(result.Rows))
	}
	for i, want := range wantRows {
		row := result.Rows[i]
		if row.PartNumber != want.pn {
			t.Errorf("Expected row %d to be %s, got %s", i, want.pn, row.PartNumber)
			continue
		}
		if !row.TotalQty.Equal(want.total) {
			t.Errorf("Expected %s total %s, got %s", want.pn, want.total, row.TotalQty)
		}
		if !row.PurchaseQty.Equal(want.purchase) {
			t.Errorf("Expected %s purchase %s, got %s", want.pn, want.purchase, row.PurchaseQty)
		}
		if !row.ExtendedCost.Equal(want.extended) {
			t.Errorf("Expected %s extended cost %s, got %s", want.pn, want.extended, row.ExtendedCost)
		}
	}

	if !result.TotalCost.Equal(price("199.41")) {
		t.Errorf("Expected total cost 199.41, got %s", result.TotalCost)
	}
}

func TestBuildSummary_CarriesCatalogAttributes(t *testing.T) {
	catalog, root := skateboardTree(t)

	result, err := NewSummaryService(catalog).BuildSummary(root)
	if err != nil {
		t.Fatalf("Failed to build summary: %v", err)
	}

	bearing := result.Rows[2]
	if bearing.Name != "Bearing" || bearing.Supplier != "Bones" {
		t.Errorf("Expected bearing attributes from catalog, got %s/%s", bearing.Name, bearing.Supplier)
	}
	if bearing.PkgQty != 8 {
		t.Errorf("Expected bearing package quantity 8, got %d", bearing.PkgQty)
	}
}

func TestBuildSummary_SubAssemblyScope(t *testing.T) {
	catalog, root := skateboardTree(t)

	// Summarizing the truck assembly only covers its own subtree.
	truck := root.Assemblies()[0]
	result, err := NewSummaryService(catalog).BuildSummary(truck)
	if err != nil {
		t.Fatalf("Failed to build summary: %v", err)
	}

	if result.RootPN != "TR-01" {
		t.Errorf("Expected root TR-01, got %s", result.RootPN)
	}

	wantParts := map[entities.PartNumber]decimal.Decimal{
		"SK1002-01": qty(1),
		"SK1003-01": qty(8),
		"SK1004-01": qty(4),
	}
	if len(result.Rows) != len(wantParts) {
		t.Fatalf("Expected %d rows, got %d", len(wantParts), len(result.Rows))
	}
	for _, row := range result.Rows {
		want, ok := wantParts[row.PartNumber]
		if !ok {
			t.Errorf("Unexpected row %s", row.PartNumber)
			continue
		}
		if !row.TotalQty.Equal(want) {
			t.Errorf("Expected %s total %s, got %s", row.PartNumber, want, row.TotalQty)
		}
	}
}
