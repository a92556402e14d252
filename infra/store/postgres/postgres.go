// Package postgres implements the store contract against PostgreSQL using
// hand-written SQL. Table and column names come from the core data model,
// never from user input.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/fleetlab/rentgen/core/store"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	db *sql.DB
}

// Open connects to the endpoint URL, authenticating with key. The key
// overrides any password embedded in the URL.
func Open(endpoint, key string) (*Store, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse store url: %w", err)
	}
	if key != "" {
		user := ""
		if u.User != nil {
			user = u.User.Username()
		}
		u.User = url.UserPassword(user, key)
	}
	db, err := sql.Open("postgres", u.String())
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping store: %w", err)
	}
	return &Store{db: db}, nil
}

// Select returns the rows of table matching filter.
func (s *Store) Select(ctx context.Context, table string, columns []string, filter store.Filter) ([]store.Row, error) {
	cols := "*"
	if len(columns) > 0 {
		quoted := make([]string, len(columns))
		for i, c := range columns {
			quoted[i] = pq.QuoteIdentifier(c)
		}
		cols = strings.Join(quoted, ", ")
	}
	query := fmt.Sprintf("SELECT %s FROM %s", cols, pq.QuoteIdentifier(table))
	where, args := whereClause(filter, 1)
	query += where

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}

	var out []store.Row
	for rows.Next() {
		values := make([]any, len(names))
		ptrs := make([]any, len(names))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		row := make(store.Row, len(names))
		for i, name := range names {
			row[name] = normalize(values[i])
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}
	return out, nil
}

// Insert persists rows one by one, returning each with its generated id.
// Inserts are not retried; a failure leaves earlier rows committed.
func (s *Store) Insert(ctx context.Context, table string, rows []store.Row) ([]store.Row, error) {
	inserted := make([]store.Row, 0, len(rows))
	for _, row := range rows {
		cols := sortedColumns(row)
		quoted := make([]string, len(cols))
		marks := make([]string, len(cols))
		args := make([]any, len(cols))
		for i, c := range cols {
			quoted[i] = pq.QuoteIdentifier(c)
			marks[i] = fmt.Sprintf("$%d", i+1)
			args[i] = row[c]
		}
		query := fmt.Sprintf(
			"INSERT INTO %s (%s) VALUES (%s) RETURNING id",
			pq.QuoteIdentifier(table), strings.Join(quoted, ", "), strings.Join(marks, ", "),
		)
		var id int64
		if err := s.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			return inserted, fmt.Errorf("insert %s: %w", table, err)
		}
		stored := row.Clone()
		stored["id"] = id
		inserted = append(inserted, stored)
	}
	return inserted, nil
}

// Update applies patch to every row matching filter.
func (s *Store) Update(ctx context.Context, table string, patch store.Row, filter store.Filter) error {
	cols := sortedColumns(patch)
	sets := make([]string, len(cols))
	args := make([]any, 0, len(cols)+len(filter))
	for i, c := range cols {
		sets[i] = fmt.Sprintf("%s = $%d", pq.QuoteIdentifier(c), i+1)
		args = append(args, patch[c])
	}
	where, whereArgs := whereClause(filter, len(cols)+1)
	args = append(args, whereArgs...)

	query := fmt.Sprintf("UPDATE %s SET %s%s", pq.QuoteIdentifier(table), strings.Join(sets, ", "), where)
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}
	return nil
}

// Close releases the connection pool.
func (s *Store) Close() error { return s.db.Close() }

func whereClause(filter store.Filter, firstArg int) (string, []any) {
	if len(filter) == 0 {
		return "", nil
	}
	cols := make([]string, 0, len(filter))
	for c := range filter {
		cols = append(cols, c)
	}
	sort.Strings(cols)

	conds := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, c := range cols {
		conds[i] = fmt.Sprintf("%s = $%d", pq.QuoteIdentifier(c), firstArg+i)
		args[i] = filter[c]
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func sortedColumns(row store.Row) []string {
	cols := make([]string, 0, len(row))
	for c := range row {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}

// normalize converts driver values into the types the core expects.
func normalize(v any) any {
	switch x := v.(type) {
	case []byte:
		return string(x)
	case time.Time:
		return x
	default:
		return v
	}
}
