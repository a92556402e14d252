// Package memstore provides an in-memory table store used by tests and
// offline runs. Rows are copied on the way in and out so callers never
// share state with the store.
package memstore

import (
	"context"
	"sync"

	"github.com/fleetlab/rentgen/core/store"
)

// Store keeps tables in memory with serial per-table identifiers.
type Store struct {
	mu     sync.Mutex
	tables map[string][]store.Row
	nextID map[string]int64
}

// New returns an empty store.
func New() *Store {
	return &Store{
		tables: make(map[string][]store.Row),
		nextID: make(map[string]int64),
	}
}

// Select returns the rows of table matching filter, in insertion order.
func (s *Store) Select(_ context.Context, table string, columns []string, filter store.Filter) ([]store.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []store.Row
	for _, row := range s.tables[table] {
		if !matches(row, filter) {
			continue
		}
		out = append(out, project(row, columns))
	}
	return out, nil
}

// Insert appends rows to the table, assigning ids to rows without one.
func (s *Store) Insert(_ context.Context, table string, rows []store.Row) ([]store.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inserted := make([]store.Row, 0, len(rows))
	for _, row := range rows {
		stored := row.Clone()
		if stored.IsNull("id") {
			s.nextID[table]++
			stored["id"] = s.nextID[table]
		}
		s.tables[table] = append(s.tables[table], stored)
		inserted = append(inserted, stored.Clone())
	}
	return inserted, nil
}

// Update applies patch to every row matching filter.
func (s *Store) Update(_ context.Context, table string, patch store.Row, filter store.Filter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range s.tables[table] {
		if !matches(row, filter) {
			continue
		}
		for k, v := range patch {
			row[k] = v
		}
	}
	return nil
}

// Close is a no-op.
func (s *Store) Close() error { return nil }

// matches applies equality filters, comparing numbers by value so that an
// int filter matches an int64 cell.
func matches(row store.Row, filter store.Filter) bool {
	for col, want := range filter {
		got, ok := row[col]
		if !ok {
			return false
		}
		if got == want {
			continue
		}
		wi, wok := store.Row{col: want}.Int64(col)
		gi, gok := row.Int64(col)
		if wok && gok && wi == gi {
			continue
		}
		return false
	}
	return true
}

func project(row store.Row, columns []string) store.Row {
	if len(columns) == 0 {
		return row.Clone()
	}
	out := make(store.Row, len(columns))
	for _, col := range columns {
		if v, ok := row[col]; ok {
			out[col] = v
		}
	}
	return out
}
