package memory

import (
	"github.com/vsinha/bom/pkg/domain/entities"
	"github.com/vsinha/bom/pkg/domain/repositories"
)

// CatalogRepository provides in-memory catalog storage, keeping items in
// declaration order for summary rendering
type CatalogRepository struct {
	items    []entities.Item
	itemsMap map[entities.PartNumber]int
}

// NewCatalogRepository creates a new in-memory catalog repository
func NewCatalogRepository(expectedItems int) *CatalogRepository {
	return &CatalogRepository{
		items:    make([]entities.Item, 0, expectedItems),
		itemsMap: make(map[entities.PartNumber]int, expectedItems),
	}
}

// Verify interface compliance
var _ repositories.CatalogRepository = (*CatalogRepository)(nil)

// LoadItems loads catalog items, rejecting duplicate part numbers
func (r *CatalogRepository) LoadItems(items []*entities.Item) error {
	for _, item := range items {
		if err := r.AddItem(*item); err != nil {
			return err
		}
	}
	return nil
}

// AddItem adds a single catalog item
func (r *CatalogRepository) AddItem(item entities.Item) error {
	if _, exists := r.itemsMap[item.PartNumber]; exists {
		return entities.DuplicatePartError{PartNumber: item.PartNumber}
	}
	r.itemsMap[item.PartNumber] = len(r.items)
	r.items = append(r.items, item)
	return nil
}

// GetItem returns the catalog entry for a part number
func (r *CatalogRepository) GetItem(partNumber entities.PartNumber) (*entities.Item, error) {
	index, exists := r.itemsMap[partNumber]
	if !exists {
		return nil, entities.UnknownPartError{PartNumber: partNumber}
	}
	return &r.items[index], nil
}

// KindOf returns the declared kind for a part number
func (r *CatalogRepository) KindOf(partNumber entities.PartNumber) (entities.ItemKind, error) {
	item, err := r.GetItem(partNumber)
	if err != nil {
		return entities.KindPart, err
	}
	return item.Kind, nil
}

// HasItem reports whether a part number has a catalog entry
func (r *CatalogRepository) HasItem(partNumber entities.PartNumber) bool {
	_, exists := r.itemsMap[partNumber]
	return exists
}

// GetAllItems returns all catalog items in declaration order
func (r *CatalogRepository) GetAllItems() ([]*entities.Item, error) {
	var items []*entities.Item
	for i := range r.items {
		items = append(items, &r.items[i])
	}
	return items, nil
}
