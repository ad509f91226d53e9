// Package csvstore provides a storage.Storage implementation that persists
// tables as CSV files with the fixed column header.
package csvstore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"prospector/pkg/domain"
	"prospector/pkg/serrors"
	"prospector/pkg/storage"

	"github.com/google/uuid"
)

// Store reads and writes tables as CSV files. The zero value is usable; New
// exists for symmetry with other constructors.
type Store struct{}

// New returns a ready-to-use Store.
func New() *Store { return &Store{} }

// Encode writes the table to w as CSV: the fixed column header first, then
// one row per record, with standard quoting for values containing the
// delimiter.
func Encode(w io.Writer, table domain.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(domain.Columns()); err != nil {
		return fmt.Errorf("could not write header: %w", err)
	}
	for i, rec := range table {
		if err := cw.Write(rec.Row()); err != nil {
			return fmt.Errorf("could not write row %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// Decode parses CSV from r into a table. The first row must equal the fixed
// column header exactly; anything else is a schema violation.
func Decode(r io.Reader) (domain.Table, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, serrors.With(serrors.ErrSchemaViolation, "table has no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("could not read header: %w", err)
	}
	if !slices.Equal(header, domain.Columns()) {
		return nil, serrors.With(serrors.ErrSchemaViolation, "unexpected columns %q", header)
	}

	var table domain.Table
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrSchemaViolation, err, "malformed row")
		}

		rec, err := domain.RecordFromRow(row)
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrSchemaViolation, err, "malformed row")
		}
		table = append(table, rec)
	}

	return table, nil
}

// WriteTable persists the table as folder/name, creating folder when absent.
// The file is written to a unique temp name first and renamed into place so a
// failed write never leaves a truncated artifact behind.
func (s *Store) WriteTable(folder, name string, table domain.Table) error {
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return fmt.Errorf("could not create folder: %w", err)
	}

	tmp := filepath.Join(folder, name+"."+uuid.NewString()+".tmp")
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}

	if err := Encode(f, table); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)

		return fmt.Errorf("could not encode table: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)

		return fmt.Errorf("could not close file: %w", err)
	}

	if err := os.Rename(tmp, filepath.Join(folder, name)); err != nil {
		_ = os.Remove(tmp)

		return fmt.Errorf("could not move table into place: %w", err)
	}

	return nil
}

// ReadTable loads the table stored as folder/name.
func (s *Store) ReadTable(folder, name string) (domain.Table, error) {
	f, err := os.Open(filepath.Join(folder, name))
	if err != nil {
		return nil, fmt.Errorf("could not open table: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	table, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not read table %s: %w", name, err)
	}

	return table, nil
}

// ListTables returns the file names in folder starting with prefix, in
// directory-listing order.
func (s *Store) ListTables(folder, prefix string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("could not list folder: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), prefix) {
			names = append(names, entry.Name())
		}
	}

	return names, nil
}

// Ensure Store conforms to the storage.Storage interface at compile time.
var _ storage.Storage = (*Store)(nil)
