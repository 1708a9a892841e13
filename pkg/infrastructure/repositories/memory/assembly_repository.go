package memory

import (
	"fmt"

	"github.com/vsinha/bom/pkg/domain/entities"
	"github.com/vsinha/bom/pkg/domain/repositories"
)

// AssemblyRepository provides in-memory storage of parsed assembly
// tables, keeping them in load order
type AssemblyRepository struct {
	assemblies    []entities.Assembly
	assembliesMap map[entities.PartNumber]int
}

// NewAssemblyRepository creates a new in-memory assembly repository
func NewAssemblyRepository(expectedAssemblies int) *AssemblyRepository {
	return &AssemblyRepository{
		assemblies:    make([]entities.Assembly, 0, expectedAssemblies),
		assembliesMap: make(map[entities.PartNumber]int, expectedAssemblies),
	}
}

// Verify interface compliance
var _ repositories.AssemblyRepository = (*AssemblyRepository)(nil)

// LoadAssemblies loads assembly tables, rejecting duplicate part numbers
func (r *AssemblyRepository) LoadAssemblies(assemblies []*entities.Assembly) error {
	for _, asm := range assemblies {
		if err := r.AddAssembly(*asm); err != nil {
			return err
		}
	}
	return nil
}

// AddAssembly adds a single assembly table
func (r *AssemblyRepository) AddAssembly(asm entities.Assembly) error {
	if _, exists := r.assembliesMap[asm.PartNumber]; exists {
		return fmt.Errorf("duplicate assembly table: %s", asm.PartNumber)
	}
	r.assembliesMap[asm.PartNumber] = len(r.assemblies)
	r.assemblies = append(r.assemblies, asm)
	return nil
}

// GetAssembly returns the parsed table for an assembly part number
func (r *AssemblyRepository) GetAssembly(partNumber entities.PartNumber) (*entities.Assembly, error) {
	index, exists := r.assembliesMap[partNumber]
	if !exists {
		return nil, fmt.Errorf("no assembly rows for: %s", partNumber)
	}
	return &r.assemblies[index], nil
}

// HasAssembly reports whether assembly rows were loaded for a part number
func (r *AssemblyRepository) HasAssembly(partNumber entities.PartNumber) bool {
	_, exists := r.assembliesMap[partNumber]
	return exists
}

// GetAllAssemblies returns all assembly tables in load order
func (r *AssemblyRepository) GetAllAssemblies() ([]*entities.Assembly, error) {
	var assemblies []*entities.Assembly
	for i := range r.assemblies {
		assemblies = append(assemblies, &r.assemblies[i])
	}
	return assemblies, nil
}
