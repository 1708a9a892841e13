package repositories

import "github.com/vsinha/bom/pkg/domain/entities"

// CatalogRepository provides read access to the master parts catalog.
// Implementations are immutable after LoadItems. GetItem and KindOf fail
// with entities.UnknownPartError for part numbers that were never loaded;
// LoadItems fails with entities.DuplicatePartError on a collision.
type CatalogRepository interface {
	GetItem(partNumber entities.PartNumber) (*entities.Item, error)
	KindOf(partNumber entities.PartNumber) (entities.ItemKind, error)
	HasItem(partNumber entities.PartNumber) bool
	GetAllItems() ([]*entities.Item, error)
	LoadItems(items []*entities.Item) error
}
