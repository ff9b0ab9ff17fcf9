// Package memory is an in-process record source, seeded from a CSV file or
// a literal grid. It backs local development when no Sheets credentials are
// around, and the tests.
package memory

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"

	"extras/internal/core"
	"extras/internal/records"
)

type Store struct {
	mu    sync.Mutex
	items []core.Record
}

var _ records.Source = (*Store)(nil)

// New builds a store over an already-normalized record slice.
func New(items []core.Record) *Store {
	return &Store{items: append([]core.Record(nil), items...)}
}

// NewFromGrid normalizes a raw grid into the store.
func NewFromGrid(g core.Grid) *Store {
	return &Store{items: core.Normalize(g)}
}

// NewFromFiles seeds the store from <base>/sample.csv when present. A
// missing or malformed file just yields an empty store; sample data is a
// convenience, never a requirement.
func NewFromFiles(base string) *Store {
	grid, ok := readCSV(filepath.Join(base, "sample.csv"))
	if !ok {
		return &Store{}
	}
	return NewFromGrid(grid)
}

// Records implements records.Source.
func (s *Store) Records(_ context.Context) ([]core.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Record, len(s.items))
	copy(out, s.items)
	return out, nil
}

// Replace swaps the whole dataset, mirroring the atomic-fetch contract.
func (s *Store) Replace(items []core.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]core.Record(nil), items...)
}

func readCSV(path string) (core.Grid, bool) {
	f, err := os.Open(path)
	if err != nil {
		return core.Grid{}, false
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are fine, Normalize pads them
	rows, err := r.ReadAll()
	if err != nil || len(rows) == 0 {
		return core.Grid{}, false
	}
	return core.Grid{Headers: rows[0], Rows: rows[1:]}, true
}
