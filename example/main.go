package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/vsinha/bom/pkg/application/services/summary"
	"github.com/vsinha/bom/pkg/domain/bom"
	"github.com/vsinha/bom/pkg/domain/entities"
	"github.com/vsinha/bom/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/bom/pkg/interfaces/cli/output"
)

func main() {
	// Build the catalog and assembly tables in code
	catalog := memory.NewCatalogRepository(9)
	assemblies := memory.NewAssemblyRepository(3)
	if err := setupSkateboardBOM(catalog, assemblies); err != nil {
		fmt.Printf("❌ Failed to load skateboard BOM: %v\n", err)
		os.Exit(1)
	}

	tree, err := bom.NewBuilder(catalog, assemblies).Build("SKA-100")
	if err != nil {
		fmt.Printf("❌ Failed to build tree: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("🛹 Skateboard BOM")
	fmt.Println()
	fmt.Print(tree.Tree())
	fmt.Println()

	// Total quantity of every part across all nesting levels
	fmt.Println("📊 Aggregated Quantities:")
	if err := output.Aggregate(os.Stdout, tree, "text"); err != nil {
		fmt.Printf("❌ Failed to aggregate: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()

	// Package-rounded purchase quantities and extended costs
	service := summary.NewSummaryService(catalog)
	result, err := service.BuildSummary(tree)
	if err != nil {
		fmt.Printf("❌ Failed to build summary: %v\n", err)
		os.Exit(1)
	}
	if err := output.Summary(os.Stdout, result, "text"); err != nil {
		fmt.Printf("❌ Failed to render summary: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("✅ BOM analysis complete!")
}

// setupSkateboardBOM loads a complete skateboard: two truck assemblies,
// each carrying four wheel assemblies of one wheel and two bearings.
func setupSkateboardBOM(catalog *memory.CatalogRepository, assemblies *memory.AssemblyRepository) error {
	price := decimal.RequireFromString
	qty := decimal.NewFromInt

	items := []*entities.Item{
		{PartNumber: "SK1001-01", Name: "Deck", Supplier: "Alpha Boards", PkgQty: 1, PkgPrice: price("42.00"), Kind: entities.KindPart},
		{PartNumber: "SK1002-01", Name: "Truck", Supplier: "Indy", PkgQty: 1, PkgPrice: price("19.50"), Kind: entities.KindPart},
		{PartNumber: "SK1003-01", Name: "Bearing", Supplier: "Bones", PkgQty: 8, PkgPrice: price("15.99"), Kind: entities.KindPart},
		{PartNumber: "SK1004-01", Name: "Wheel", Supplier: "Spitfire", PkgQty: 4, PkgPrice: price("29.99"), Kind: entities.KindPart},
		{PartNumber: "SK1005-01", Name: "Screw", Supplier: "McMaster", PkgQty: 25, PkgPrice: price("8.95"), Kind: entities.KindPart},
		{PartNumber: "SK1006-01", Name: "Nut", Supplier: "McMaster", PkgQty: 25, PkgPrice: price("6.50"), Kind: entities.KindPart},
		{PartNumber: "SK1007-01", Name: "Grip Tape", Supplier: "Jessup", PkgQty: 1, PkgPrice: price("11.00"), Kind: entities.KindPart},
		{PartNumber: "SKA-100", Name: "Skateboard", PkgQty: 1, Kind: entities.KindAssembly},
	}
	if err := catalog.LoadItems(items); err != nil {
		return err
	}

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
	return assemblies.LoadAssemblies(tables)
}
