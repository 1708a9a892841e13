package entities

import (
	"fmt"
	"strings"
)

// Structural errors raised while building a catalog or resolving a BOM
// tree, plus the query-time direct-child lookup failure. All carry the
// part numbers involved so callers can match with errors.As.

// UnknownPartError reports a part number with no catalog entry.
type UnknownPartError struct {
	PartNumber PartNumber
}

func (err UnknownPartError) Error() string {
	return fmt.Sprintf("unknown part number: %s", err.PartNumber)
}

// DuplicatePartError reports a part number declared more than once in
// the catalog source table.
type DuplicatePartError struct {
	PartNumber PartNumber
}

func (err DuplicatePartError) Error() string {
	return fmt.Sprintf("duplicate part number in catalog: %s", err.PartNumber)
}

// UnresolvedReferenceError reports a child reference that names a
// catalog assembly for which no assembly rows were loaded.
type UnresolvedReferenceError struct {
	ParentPN PartNumber
	ChildPN  PartNumber
}

func (err UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("assembly %s references %s, which is not a catalog part and has no assembly rows", err.ParentPN, err.ChildPN)
}

// CyclicBOMError reports an assembly reference cycle as the part number
// path that closed it.
type CyclicBOMError struct {
	Path []PartNumber
}

func (err CyclicBOMError) Error() string {
	path := make([]string, len(err.Path))
	for i, pn := range err.Path {
		path[i] = string(pn)
	}
	return "cyclic BOM reference: " + strings.Join(path, " -> ")
}

// NotDirectChildError reports a direct quantity lookup for a part number
// that is not among the assembly's immediate children.
type NotDirectChildError struct {
	AssemblyPN PartNumber
	ChildPN    PartNumber
}

func (err NotDirectChildError) Error() string {
	return fmt.Sprintf("%s is not a direct child of %s", err.ChildPN, err.AssemblyPN)
}
