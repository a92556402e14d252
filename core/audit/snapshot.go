package audit

import (
	"context"

	"github.com/fleetlab/rentgen/core/logger"
	"github.com/fleetlab/rentgen/core/model"
	"github.com/fleetlab/rentgen/core/store"
)

// Snapshot is a point-in-time read of every table. Tables that failed to
// load are recorded so their checks can report a skip instead of failing
// the audit.
type Snapshot struct {
	Tables map[string][]store.Row
	Errors map[string]error
}

// LoadSnapshot reads every known table. Load failures are collected, not
// returned; the audit runs on whatever loaded.
func LoadSnapshot(ctx context.Context, st store.Store, log logger.Logger) *Snapshot {
	snap := &Snapshot{
		Tables: make(map[string][]store.Row, len(model.AllTables)),
		Errors: make(map[string]error),
	}
	for _, table := range model.AllTables {
		rows, err := st.Select(ctx, table, nil, nil)
		if err != nil {
			log.Warnf("snapshot: table %s not loaded: %v", table, err)
			snap.Errors[table] = err
			continue
		}
		snap.Tables[table] = rows
	}
	return snap
}

// Has reports whether the table loaded.
func (s *Snapshot) Has(table string) bool {
	_, ok := s.Tables[table]
	return ok
}

// Rows returns the loaded rows of a table.
func (s *Snapshot) Rows(table string) []store.Row {
	return s.Tables[table]
}

// hasColumns reports whether every listed column appears in at least one row.
// An empty table vacuously has all columns.
func hasColumns(rows []store.Row, cols ...string) bool {
	if len(rows) == 0 {
		return true
	}
	for _, col := range cols {
		found := false
		for _, row := range rows {
			if row.Has(col) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
