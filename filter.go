package igdb

import "strings"

// Filter is one predicate clause of a where expression.
// Symbol is empty for filters produced by [Builder.AddWhereIn]:
// their Value already carries the full operator and list text.
type Filter struct {
	Key    string
	Symbol string
	Value  string
}

// In unpacks the value list of a membership filter. The second result is
// false for plain comparisons and for values not of the "= (v1,...)"
// shape.
func (f Filter) In() ([]string, bool) {
	if f.Symbol != "" {
		return nil, false
	}
	inner, ok := strings.CutPrefix(f.Value, "= (")
	if !ok {
		return nil, false
	}
	inner, ok = strings.CutSuffix(inner, ")")
	if !ok {
		return nil, false
	}
	if inner == "" {
		return nil, true
	}
	return strings.Split(inner, ","), true
}
