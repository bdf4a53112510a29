package igdb

import (
	"strings"

	"github.com/playonbsd/igdb/operations"
	"github.com/rs/zerolog"
)

const allFields = "*"

const defaultLimit = 50

// Builder accumulates the parts of an Apicalypse query (field selection,
// where filters, sort, search, limit) and renders them with
// [Builder.BuildBody] or [Builder.Build]. Mutators return the same Builder
// so calls can be chained. A Builder is not safe for concurrent use.
type Builder struct {
	fields  []string
	filters []Filter
	sort    Sort
	limit   int
	search  string
	log     zerolog.Logger
}

// NewBuilder creates a Builder with no fields, no filters and the
// default limit of 50.
func NewBuilder() *Builder {
	return &Builder{limit: defaultLimit, log: zerolog.Nop()}
}

// AllFields replaces the whole field list with the "*" sentinel.
func (b *Builder) AllFields() *Builder {
	b.fields = []string{allFields}
	return b
}

// AddField appends one field name to the field list.
func (b *Builder) AddField(field string) *Builder {
	b.fields = append(b.fields, field)
	return b
}

// AddFields appends field names in the given order.
func (b *Builder) AddFields(fields ...string) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// AddWhere appends a filter comparing a field to a value.
func (b *Builder) AddWhere(field string, op operations.Operation, value string) *Builder {
	b.filters = append(b.filters, Filter{Key: field, Symbol: string(op), Value: value})
	return b
}

// AddWhereIn appends a membership filter. The values render as
// "= (v1,v2,...)"; an empty list renders as "= ()".
func (b *Builder) AddWhereIn(field string, values ...string) *Builder {
	b.filters = append(b.filters, Filter{
		Key:   field,
		Value: "= (" + strings.Join(values, ",") + ")",
	})
	return b
}

// Limit overwrites the result-count limit.
func (b *Builder) Limit(limit int) *Builder {
	b.limit = limit
	return b
}

// Search overwrites the free-text search.
func (b *Builder) Search(search string) *Builder {
	b.search = search
	return b
}

// SortBy overwrites the sort clause. There is at most one.
func (b *Builder) SortBy(field string, order Order) *Builder {
	b.sort = Sort{Field: field, Order: order}
	return b
}

// Logger sets a logger that receives every rendered body at debug level.
func (b *Builder) Logger(log zerolog.Logger) *Builder {
	b.log = log
	return b
}
