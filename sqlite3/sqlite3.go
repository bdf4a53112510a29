// Package sqlite3 contains an implementation of igdb.Mirror for a local
// SQLite copy of the data dumps, with one table per endpoint.
// It uses the mattn/go-sqlite3 driver.
package sqlite3

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/playonbsd/igdb"
	"github.com/playonbsd/igdb/operations"
)

// Db implements igdb.Mirror over a SQLite database.
type Db struct {
	pool *sql.DB
}

// NewDb creates a [Db] on an existing connection pool.
func NewDb(pool *sql.DB) *Db {
	return &Db{pool: pool}
}

// Open opens a dump database at the given path.
func Open(path string) (*Db, error) {
	pool, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	return NewDb(pool), nil
}

// Find translates a query to a SELECT statement and runs it against the
// collection's table. Rows come back as column-keyed records with BLOB
// and TEXT cells decoded to strings.
func (db *Db) Find(ctx context.Context, collection string, q igdb.Query) ([]map[string]any, error) {
	builder := NewSql("SELECT ")
	if q.SelectsAll() || len(q.Fields) == 0 {
		builder.Add("*")
	} else {
		builder.Join(", ", q.Fields...)
	}
	builder.Add(" FROM ", collection)

	if len(q.Filters) > 0 || q.Search != "" {
		builder.Add(" WHERE ")
		for _, f := range q.Filters {
			if err := applyFilter(builder, f); err != nil {
				return nil, err
			}
			builder.Add(" AND ")
		}
		if q.Search != "" {
			builder.Add("name LIKE ").Param("%" + q.Search + "%").Add(" AND ")
		}
		builder.RemoveLast()
	}

	if q.Sort.Field != "" {
		builder.Add(" ORDER BY ", q.Sort.Field)
		if q.Sort.Order == igdb.Desc {
			builder.Add(" DESC")
		} else {
			builder.Add(" ASC")
		}
	}

	if q.Limit > 0 {
		builder.Add(fmt.Sprintf(" LIMIT %d", q.Limit))
	}

	query, params := builder.Build()
	rows, err := db.pool.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("cannot execute query `%s`: %w", query, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := []map[string]any{}
	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		record := make(map[string]any, len(columns))
		for i, col := range columns {
			v := values[i]
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			record[col] = v
		}
		result = append(result, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// SQL cannot select zero columns, so the degenerate empty field
	// list projects here instead.
	if len(q.Fields) == 0 && !q.SelectsAll() {
		for i := range result {
			result[i] = map[string]any{}
		}
	}

	return result, nil
}

func applyFilter(s *Sql, f igdb.Filter) error {
	if f.Symbol == "" {
		values, ok := f.In()
		if !ok {
			return fmt.Errorf("malformed membership filter on %s: %q", f.Key, f.Value)
		}
		if len(values) == 0 {
			// An empty membership list matches nothing.
			s.Add("1 = 0")
			return nil
		}
		if params, ok := canonicalUUIDs(values); ok {
			s.Add("lower(", f.Key, ") IN (").JoinParams(", ", params...).Add(")")
			return nil
		}
		params := make([]any, 0, len(values))
		for _, v := range values {
			params = append(params, bindValue(v))
		}
		s.Add(f.Key, " IN (").JoinParams(", ", params...).Add(")")
		return nil
	}
	switch operations.Operation(f.Symbol) {
	case operations.Eq:
		// UUID values (the checksum field) compare by parsed value,
		// like the mem mirror; SQLite's BINARY collation would make
		// a plain = case-sensitive.
		if u, err := uuid.Parse(f.Value); err == nil {
			s.Add("lower(", f.Key, ") = ").Param(u.String())
			return nil
		}
		s.Add(f.Key, " = ").Param(bindValue(f.Value))
	case operations.Gt:
		s.Add(f.Key, " > ").Param(bindValue(f.Value))
	case operations.Lt:
		s.Add(f.Key, " < ").Param(bindValue(f.Value))
	default:
		return fmt.Errorf("operation %s is not supported", f.Symbol)
	}
	return nil
}

// canonicalUUIDs lowercases a membership list to the canonical UUID
// form. The second result is false unless every value is a UUID.
func canonicalUUIDs(values []string) ([]any, bool) {
	result := make([]any, 0, len(values))
	for _, v := range values {
		u, err := uuid.Parse(v)
		if err != nil {
			return nil, false
		}
		result = append(result, u.String())
	}
	return result, true
}

// bindValue converts a textual filter value so SQLite compares numbers
// numerically instead of lexically.
func bindValue(v string) any {
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return n
	}
	if x, err := strconv.ParseFloat(v, 64); err == nil {
		return x
	}
	return v
}
