// Package mem contains an in-memory implementation of igdb.Mirror.
// It evaluates queries against JSON records loaded from the API's data
// dump exports and is mostly useful in tests and offline tooling.
package mem

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/playonbsd/igdb"
	"github.com/playonbsd/igdb/operations"
	"github.com/shopspring/decimal"
)

// Db stores collections of raw JSON records keyed by endpoint name.
type Db struct {
	data map[string][][]byte
}

// NewDb creates an empty Db.
func NewDb() *Db {
	return &Db{data: make(map[string][][]byte)}
}

// Add stores one record in a collection.
func (db *Db) Add(collection string, record map[string]any) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return err
	}
	db.data[collection] = append(db.data[collection], raw)
	return nil
}

// Load stores every record of a JSON array, the format the data dump
// exports use.
func (db *Db) Load(collection string, data []byte) error {
	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("cannot load collection %s: %w", collection, err)
	}
	for _, record := range records {
		if err := db.Add(collection, record); err != nil {
			return err
		}
	}
	return nil
}

// Find evaluates a query against a collection. Filters combine with AND,
// search matches the name field case-insensitively, and a positive limit
// truncates the result.
func (db *Db) Find(ctx context.Context, collection string, q igdb.Query) ([]map[string]any, error) {
	result := []map[string]any{}
	for _, raw := range db.data[collection] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var record map[string]any
		if err := json.Unmarshal(raw, &record); err != nil {
			return nil, err
		}
		found, err := matchesQuery(record, q)
		if err != nil {
			return nil, err
		}
		if found {
			result = append(result, record)
		}
	}

	sortRecords(result, q.Sort)

	if q.Limit > 0 && len(result) > q.Limit {
		result = result[:q.Limit]
	}

	return project(result, q), nil
}

func matchesQuery(record map[string]any, q igdb.Query) (bool, error) {
	if q.Search != "" {
		name, _ := record["name"].(string)
		if !strings.Contains(strings.ToLower(name), strings.ToLower(q.Search)) {
			return false, nil
		}
	}
	for _, f := range q.Filters {
		found, err := matchesFilter(record, f)
		if err != nil {
			return false, err
		}
		if !found {
			return false, nil
		}
	}
	return true, nil
}

func matchesFilter(record map[string]any, f igdb.Filter) (bool, error) {
	field := record[f.Key]
	if f.Symbol == "" {
		values, ok := f.In()
		if !ok {
			return false, fmt.Errorf("malformed membership filter on %s: %q", f.Key, f.Value)
		}
		for _, v := range values {
			found, err := compare(field, operations.Eq, v)
			if err != nil {
				return false, err
			}
			if found {
				return true, nil
			}
		}
		return false, nil
	}
	return compare(field, operations.Operation(f.Symbol), f.Value)
}

// compare matches one decoded JSON value against the textual value of a
// filter. Numbers compare as decimals to avoid float artifacts, strings
// holding UUIDs (the checksum field) compare by parsed value.
func compare(field any, op operations.Operation, value string) (bool, error) {
	switch v := field.(type) {
	case float64:
		want, err := decimal.NewFromString(value)
		if err != nil {
			return false, fmt.Errorf("cannot compare numeric field with %q", value)
		}
		cmp := decimal.NewFromFloat(v).Cmp(want)
		switch op {
		case operations.Eq:
			return cmp == 0, nil
		case operations.Gt:
			return cmp > 0, nil
		case operations.Lt:
			return cmp < 0, nil
		}
		return false, fmt.Errorf("unknown operation %s", op)
	case string:
		if op != operations.Eq {
			return false, fmt.Errorf("operation %s is not supported for %T", op, field)
		}
		if id, err := uuid.Parse(v); err == nil {
			if want, err := uuid.Parse(value); err == nil {
				return id == want, nil
			}
		}
		return v == value, nil
	case bool:
		if op != operations.Eq {
			return false, fmt.Errorf("operation %s is not supported for %T", op, field)
		}
		return strconv.FormatBool(v) == value, nil
	case nil:
		return false, nil
	default:
		return false, fmt.Errorf("operation %s is not supported for %T", op, field)
	}
}

func sortRecords(records []map[string]any, s igdb.Sort) {
	if s.Field == "" {
		return
	}
	sort.SliceStable(records, func(i, j int) bool {
		a, aok := sortKey(records[i], s.Field)
		b, bok := sortKey(records[j], s.Field)
		if !aok || !bok {
			// Records without the sort field go last, in input order.
			return aok && !bok
		}
		if s.Order == igdb.Desc {
			a, b = b, a
		}
		return lessValues(a, b)
	})
}

func sortKey(record map[string]any, field string) (any, bool) {
	v, ok := record[field]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// lessValues orders values of the same JSON kind; anything else keeps
// its relative position.
func lessValues(a, b any) bool {
	switch x := a.(type) {
	case float64:
		y, ok := b.(float64)
		return ok && x < y
	case string:
		y, ok := b.(string)
		return ok && x < y
	case bool:
		y, ok := b.(bool)
		return ok && !x && y
	}
	return false
}

func project(records []map[string]any, q igdb.Query) []map[string]any {
	if q.SelectsAll() {
		return records
	}
	result := make([]map[string]any, 0, len(records))
	for _, record := range records {
		projected := make(map[string]any, len(q.Fields))
		for _, f := range q.Fields {
			if v, ok := record[f]; ok {
				projected[f] = v
			}
		}
		result = append(result, projected)
	}
	return result
}
