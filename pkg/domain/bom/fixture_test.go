package bom

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vsinha/bom/pkg/domain/entities"
	"github.com/vsinha/bom/pkg/infrastructure/repositories/memory"
)

func qty(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

// skateboardRepos builds the catalog and assembly tables for the
// skateboard product used across these tests: two truck assemblies per
// board, four wheel assemblies per truck, two bearings per wheel.
func skateboardRepos(t *testing.T) (*memory.CatalogRepository, *memory.AssemblyRepository) {
	t.Helper()

	catalog := memory.NewCatalogRepository(10)
	items := []*entities.Item{
		{PartNumber: "SK1001-01", Name: "Deck", Supplier: "Alpha Boards", PkgQty: 1, PkgPrice: decimal.RequireFromString("42.00"), Kind: entities.KindPart},
		{PartNumber: "SK1002-01", Name: "Truck", Supplier: "Indy", PkgQty: 1, PkgPrice: decimal.RequireFromString("19.50"), Kind: entities.KindPart},
		{PartNumber: "SK1003-01", Name: "Bearing", Supplier: "Bones", PkgQty: 8, PkgPrice: decimal.RequireFromString("15.99"), Kind: entities.KindPart},
		{PartNumber: "SK1004-01", Name: "Wheel", Supplier: "Spitfire", PkgQty: 4, PkgPrice: decimal.RequireFromString("29.99"), Kind: entities.KindPart},
		{PartNumber: "SK1005-01", Name: "Screw", Supplier: "McMaster", PkgQty: 25, PkgPrice: decimal.RequireFromString("8.95"), Kind: entities.KindPart},
		{PartNumber: "SK1006-01", Name: "Nut", Supplier: "McMaster", PkgQty: 25, PkgPrice: decimal.RequireFromString("6.50"), Kind: entities.KindPart},
		{PartNumber: "SK1007-01", Name: "Grip Tape", Supplier: "Jessup", PkgQty: 1, PkgPrice: decimal.RequireFromString("11.00"), Kind: entities.KindPart},
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

	return catalog, assemblies
}

func buildSkateboard(t *testing.T) *Node {
	t.Helper()
	catalog, assemblies := skateboardRepos(t)
	root, err := NewBuilder(catalog, assemblies).Build("SKA-100")
	if err != nil {
		t.Fatalf("Failed to build skateboard tree: %v", err)
	}
	return root
}
