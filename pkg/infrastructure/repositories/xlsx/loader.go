package xlsx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/vsinha/bom/pkg/domain/entities"
	"github.com/vsinha/bom/pkg/infrastructure/repositories/csv"
)

// Loader handles loading BOM data from Excel workbooks. Sheet rows go
// through the same record grammar as the CSV loader.
type Loader struct {
	logger *zap.Logger
}

// NewLoader creates a new xlsx loader
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger}
}

// LoadWorkbook loads a complete BOM from a single workbook. The first
// sheet is the master parts list and every other sheet is one assembly
// table named by its sheet.
func (l *Loader) LoadWorkbook(filename string) ([]*entities.Item, []*entities.Assembly, error) {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook %s: %w", filename, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) < 2 {
		return nil, nil, fmt.Errorf("workbook %s must contain a parts sheet and at least one assembly sheet", filename)
	}

	items, err := loadCatalogSheet(f, sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("workbook %s: %w", filename, err)
	}

	var assemblies []*entities.Assembly
	for _, sheet := range sheets[1:] {
		assembly, err := loadAssemblySheet(f, sheet)
		if err != nil {
			return nil, nil, fmt.Errorf("workbook %s: %w", filename, err)
		}
		assemblies = append(assemblies, assembly)
	}

	l.logger.Info("loaded BOM workbook",
		zap.String("file", filename),
		zap.Int("parts", len(items)),
		zap.Int("assemblies", len(assemblies)))

	return items, assemblies, nil
}

// LoadCatalog loads the master parts list from the first sheet of a
// workbook
func (l *Loader) LoadCatalog(filename string) ([]*entities.Item, error) {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", filename, err)
	}
	defer f.Close()

	items, err := loadCatalogSheet(f, f.GetSheetList()[0])
	if err != nil {
		return nil, fmt.Errorf("workbook %s: %w", filename, err)
	}

	l.logger.Debug("loaded parts list",
		zap.String("file", filename),
		zap.Int("parts", len(items)))

	return items, nil
}

// LoadAssemblyFile loads one assembly table from the first sheet of a
// workbook. The assembly part number is the file name without its
// extension.
func (l *Loader) LoadAssemblyFile(filename string) (*entities.Assembly, error) {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", filename, err)
	}
	defer f.Close()

	partNumber := entities.PartNumber(fileBase(filename))
	rows, err := f.GetRows(f.GetSheetList()[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook %s: %w", filename, err)
	}

	assembly, err := csv.ParseAssemblyRecords(partNumber, rows)
	if err != nil {
		return nil, fmt.Errorf("workbook %s: %w", filename, err)
	}

	l.logger.Debug("loaded assembly table",
		zap.String("file", filename),
		zap.String("assembly", string(partNumber)),
		zap.Int("rows", len(assembly.Links)))

	return assembly, nil
}

// LoadFolder loads a BOM from a directory of xlsx files: one parts
// list named partsListName plus one file per assembly, named by its
// part number. Files starting with an underscore or a tilde are
// skipped.
func (l *Loader) LoadFolder(dir string, partsListName string) ([]*entities.Item, []*entities.Assembly, error) {
	if partsListName == "" {
		partsListName = csv.DefaultPartsListName
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
		if !strings.EqualFold(filepath.Ext(name), ".xlsx") {
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

func loadCatalogSheet(f *excelize.File, sheet string) ([]*entities.Item, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	items, err := csv.ParseCatalogRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("parts sheet %q: %w", sheet, err)
	}

	return items, nil
}

func loadAssemblySheet(f *excelize.File, sheet string) (*entities.Assembly, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	assembly, err := csv.ParseAssemblyRecords(entities.PartNumber(sheet), rows)
	if err != nil {
		return nil, fmt.Errorf("assembly sheet %q: %w", sheet, err)
	}

	return assembly, nil
}

func fileBase(filename string) string {
	name := filepath.Base(filename)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
