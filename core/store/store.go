// Package store defines the table-oriented persistence contract the
// generator and auditor run against. Adapters live under infra/store.
package store

import (
	"context"
	"strconv"
)

// Row is a single table row keyed by column name.
type Row map[string]any

// Filter restricts an operation to rows whose columns equal the given values.
type Filter map[string]any

// Store is a minimal CRUD surface over a table-oriented backend. A failed
// operation is fatal to the calling batch; no adapter retries writes.
type Store interface {
	// Select returns the rows of table matching filter. A nil or empty
	// columns slice selects every column; a nil filter selects every row.
	Select(ctx context.Context, table string, columns []string, filter Filter) ([]Row, error)
	// Insert persists rows and returns them with generated identifiers.
	Insert(ctx context.Context, table string, rows []Row) ([]Row, error)
	// Update applies patch to every row matching filter.
	Update(ctx context.Context, table string, patch Row, filter Filter) error
	Close() error
}

// Has reports whether the column is present, regardless of its value.
func (r Row) Has(col string) bool {
	_, ok := r[col]
	return ok
}

// IsNull reports whether the column is absent or holds a nil value.
func (r Row) IsNull(col string) bool {
	v, ok := r[col]
	return !ok || v == nil
}

// String returns the column as a string.
func (r Row) String(col string) (string, bool) {
	switch v := r[col].(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	default:
		return "", false
	}
}

// Int64 returns the column as an int64, coercing the numeric types store
// adapters produce.
func (r Row) Int64(col string) (int64, bool) {
	switch v := r[col].(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case float64:
		return int64(v), true
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// Float64 returns the column as a float64, coercing the numeric types store
// adapters produce.
func (r Row) Float64(col string) (float64, bool) {
	switch v := r[col].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	case []byte:
		f, err := strconv.ParseFloat(string(v), 64)
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Clone returns a shallow copy of the row.
func (r Row) Clone() Row {
	c := make(Row, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}
