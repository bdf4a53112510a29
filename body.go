package igdb

import (
	"fmt"
	"strings"
)

// BuildBody renders the accumulated state to the textual query body.
// The output must match the remote API's syntax byte for byte, so each
// clause takes care of its own separators:
//
//	fields f1,f2;[ search "text";][ where k1 = v1 & k2 < v2;][ sort f asc] limit n;
//
// An empty field list still renders "fields ;". An AddWhereIn filter has
// an empty symbol, which leaves a double space in its clause. Filters
// render in reverse insertion order. The limit clause is always present
// and closes the query.
func (b *Builder) BuildBody() []byte {
	var body strings.Builder

	body.WriteString("fields ")
	body.WriteString(strings.Join(b.fields, ","))
	body.WriteString(";")

	if b.search != "" {
		fmt.Fprintf(&body, " search \"%s\";", b.search)
	}

	if len(b.filters) > 0 {
		body.WriteString(" where ")
		for i := len(b.filters) - 1; i >= 0; i-- {
			f := b.filters[i]
			fmt.Fprintf(&body, "%s %s %s", f.Key, f.Symbol, f.Value)
			if i > 0 {
				body.WriteString(" & ")
			}
		}
		body.WriteString(";")
	}

	if b.sort.Field != "" {
		fmt.Fprintf(&body, " sort %s %s", b.sort.Field, b.sort.Order)
	}

	fmt.Fprintf(&body, " limit %d;", b.limit)

	s := body.String()
	b.log.Debug().Str("body", s).Msg("built query body")
	return []byte(s)
}
