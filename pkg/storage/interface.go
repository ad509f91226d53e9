// Package storage defines the persistence abstraction for flat tables.
// Implementations write whole tables at once; no table is mutated in place.
package storage

import "prospector/pkg/domain"

// Storage persists and retrieves tables as named artifacts inside a folder.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
type Storage interface {
	// WriteTable persists the table under folder/name, creating the folder
	// when absent. An existing artifact with the same name is replaced.
	WriteTable(folder, name string, table domain.Table) error
	// ReadTable loads the table stored under folder/name. It fails when the
	// stored columns do not match the fixed schema.
	ReadTable(folder, name string) (domain.Table, error)
	// ListTables returns the names of artifacts in folder whose name starts
	// with prefix, in directory-listing order.
	ListTables(folder, prefix string) ([]string, error)
}
