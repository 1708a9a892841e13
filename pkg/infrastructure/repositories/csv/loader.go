package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vsinha/bom/pkg/domain/entities"
)

// DefaultPartsListName is the base file name of the master parts list
// inside a BOM folder.
const DefaultPartsListName = "Parts list"

// Column names matched case-insensitively against the header row.
// Only PN is required for the parts list; PN and QTY for assemblies.
const (
	colPN          = "pn"
	colName        = "name"
	colDescription = "description"
	colSupplier    = "supplier"
	colSupplierPN  = "supplier pn"
	colPkgQty      = "pkg qty"
	colPkgPrice    = "pkg price"
	colKind        = "kind"
	colQty         = "qty"
)

// Loader handles loading BOM data from CSV files
type Loader struct {
	logger *zap.Logger
}

// NewLoader creates a new CSV loader
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger}
}

// LoadCatalog loads the master parts list from a CSV file
func (l *Loader) LoadCatalog(filename string) ([]*entities.Item, error) {
	records, err := readRecords(filename)
	if err != nil {
		return nil, err
	}

	items, err := ParseCatalogRecords(records)
	if err != nil {
		return nil, fmt.Errorf("parts CSV %s: %w", filename, err)
	}

	l.logger.Debug("loaded parts list",
		zap.String("file", filename),
		zap.Int("parts", len(items)))

	return items, nil
}

// LoadAssemblyFile loads one assembly table from a CSV file. The
// assembly part number is the file name without its extension.
func (l *Loader) LoadAssemblyFile(filename string) (*entities.Assembly, error) {
	records, err := readRecords(filename)
	if err != nil {
		return nil, err
	}

	partNumber := entities.PartNumber(fileBase(filename))
	assembly, err := ParseAssemblyRecords(partNumber, records)
	if err != nil {
		return nil, fmt.Errorf("assembly CSV %s: %w", filename, err)
	}

	l.logger.Debug("loaded assembly table",
		zap.String("file", filename),
		zap.String("assembly", string(partNumber)),
		zap.Int("rows", len(assembly.Links)))

	return assembly, nil
}

// LoadFolder loads a BOM from a directory of CSV files: one parts list
// named partsListName plus one file per assembly, named by its part
// number. Files starting with an underscore or a tilde are skipped.
func (l *Loader) LoadFolder(dir string, partsListName string) ([]*entities.Item, []*entities.Assembly, error) {
	if partsListName == "" {
		partsListName = DefaultPartsListName
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read BOM directory %s: %w", dir, err)
	}

	var items []*entities.Item
	var assemblies []*entities.Assembly
	partsSeen := false

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasPrefix(name, "_") || strings.HasPrefix(name, "~") {
			continue
		}
		if !strings.EqualFold(filepath.Ext(name), ".csv") {
			continue
		}

		path := filepath.Join(dir, name)
		if strings.EqualFold(fileBase(name), partsListName) {
			items, err = l.LoadCatalog(path)
			if err != nil {
				return nil, nil, err
			}
			partsSeen = true
			continue
		}

		assembly, err := l.LoadAssemblyFile(path)
		if err != nil {
			return nil, nil, err
		}
		assemblies = append(assemblies, assembly)
	}

	if !partsSeen {
		return nil, nil, fmt.Errorf("no parts list %q found in %s", partsListName, dir)
	}
	if len(assemblies) == 0 {
		return nil, nil, fmt.Errorf("no assembly files found in %s", dir)
	}

	l.logger.Info("loaded BOM folder",
		zap.String("dir", dir),
		zap.Int("parts", len(items)),
		zap.Int("assemblies", len(assemblies)))

	return items, assemblies, nil
}

// ParseCatalogRecords converts raw table records, header row first,
// into catalog items. The xlsx loader feeds sheet rows through the
// same grammar.
func ParseCatalogRecords(records [][]string) ([]*entities.Item, error) {
	if len(records) < 2 {
		return nil, fmt.Errorf("must have a header and at least one data row")
	}

	cols, err := mapCatalogColumns(records[0])
	if err != nil {
		return nil, err
	}

	var items []*entities.Item
	for i, record := range records[1:] {
		if blankRecord(record) {
			continue
		}

		item, err := parseItemRecord(record, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}

		items = append(items, item)
	}

	return items, nil
}

// ParseAssemblyRecords converts raw table records, header row first,
// into one assembly's child rows.
func ParseAssemblyRecords(partNumber entities.PartNumber, records [][]string) (*entities.Assembly, error) {
	if len(records) < 2 {
		return nil, fmt.Errorf("must have a header and at least one data row")
	}

	cols, err := mapAssemblyColumns(records[0])
	if err != nil {
		return nil, err
	}

	var links []entities.ItemLink
	for i, record := range records[1:] {
		if blankRecord(record) {
			continue
		}

		link, err := parseLinkRecord(record, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}

		links = append(links, *link)
	}

	return entities.NewAssembly(partNumber, links)
}

// Helper functions for reading and parsing CSV records

func readRecords(filename string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Spreadsheet exports trim trailing empty cells unevenly.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file %s: %w", filename, err)
	}

	return records, nil
}

// fileBase returns the file name without its directory or extension.
func fileBase(filename string) string {
	name := filepath.Base(filename)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func blankRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

type catalogColumns struct {
	pn          int
	name        int
	description int
	supplier    int
	supplierPN  int
	pkgQty      int
	pkgPrice    int
	kind        int
}

func mapCatalogColumns(header []string) (catalogColumns, error) {
	cols := catalogColumns{
		pn:          -1,
		name:        -1,
		description: -1,
		supplier:    -1,
		supplierPN:  -1,
		pkgQty:      -1,
		pkgPrice:    -1,
		kind:        -1,
	}

	for i, raw := range header {
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case colPN:
			cols.pn = i
		case colName:
			cols.name = i
		case colDescription:
			cols.description = i
		case colSupplier:
			cols.supplier = i
		case colSupplierPN:
			cols.supplierPN = i
		case colPkgQty:
			cols.pkgQty = i
		case colPkgPrice:
			cols.pkgPrice = i
		case colKind:
			cols.kind = i
		}
	}

	if cols.pn < 0 {
		return cols, fmt.Errorf("missing required column %q", "PN")
	}

	return cols, nil
}

type assemblyColumns struct {
	pn  int
	qty int
}

func mapAssemblyColumns(header []string) (assemblyColumns, error) {
	cols := assemblyColumns{pn: -1, qty: -1}

	for i, raw := range header {
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case colPN:
			cols.pn = i
		case colQty:
			cols.qty = i
		}
	}

	if cols.pn < 0 {
		return cols, fmt.Errorf("missing required column %q", "PN")
	}
	if cols.qty < 0 {
		return cols, fmt.Errorf("missing required column %q", "QTY")
	}

	return cols, nil
}

func parseItemRecord(record []string, cols catalogColumns) (*entities.Item, error) {
	partNumber := entities.PartNumber(field(record, cols.pn))

	pkgQty := int64(1)
	if raw := field(record, cols.pkgQty); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid Pkg QTY: %s", raw)
		}
		pkgQty = parsed
	}

	pkgPrice := decimal.Zero
	if raw := field(record, cols.pkgPrice); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid Pkg Price: %s", raw)
		}
		pkgPrice = parsed
	}

	kind, err := entities.ParseItemKind(strings.ToLower(field(record, cols.kind)))
	if err != nil {
		return nil, err
	}

	return entities.NewItem(
		partNumber,
		field(record, cols.name),
		field(record, cols.description),
		field(record, cols.supplier),
		field(record, cols.supplierPN),
		pkgQty,
		pkgPrice,
		kind,
	)
}

func parseLinkRecord(record []string, cols assemblyColumns) (*entities.ItemLink, error) {
	partNumber := entities.PartNumber(field(record, cols.pn))

	raw := field(record, cols.qty)
	if raw == "" {
		return nil, fmt.Errorf("missing QTY")
	}
	quantity, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid QTY: %s", raw)
	}

	return entities.NewItemLink(partNumber, quantity)
}
