package igdb

// Sort describes the single sort clause of a query. A zero Sort means
// no sorting.
type Sort struct {
	Field string
	Order Order
}

// Query is a read-only snapshot of a [Builder]'s accumulated state.
// Mirrors evaluate it against local data instead of parsing the
// rendered body.
type Query struct {
	Fields  []string
	Filters []Filter
	Sort    Sort
	Limit   int
	Search  string
}

// Query returns a snapshot of the builder's state. The snapshot owns
// its slices, so later builder calls do not affect it.
func (b *Builder) Query() Query {
	q := Query{
		Fields:  make([]string, len(b.fields)),
		Filters: make([]Filter, len(b.filters)),
		Sort:    b.sort,
		Limit:   b.limit,
		Search:  b.search,
	}
	copy(q.Fields, b.fields)
	copy(q.Filters, b.filters)
	return q
}

// SelectsAll reports whether the field list keeps whole records.
func (q Query) SelectsAll() bool {
	for _, f := range q.Fields {
		if f == allFields {
			return true
		}
	}
	return false
}
