package repositories

import "github.com/vsinha/bom/pkg/domain/entities"

// AssemblyRepository provides access to parsed assembly tables keyed by
// assembly part number. Load order is preserved so traversals and root
// discovery stay deterministic.
type AssemblyRepository interface {
	GetAssembly(partNumber entities.PartNumber) (*entities.Assembly, error)
	HasAssembly(partNumber entities.PartNumber) bool
	GetAllAssemblies() ([]*entities.Assembly, error)
	LoadAssemblies(assemblies []*entities.Assembly) error
}
