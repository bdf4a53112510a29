package igdb

import "context"

// Mirror evaluates queries against a local copy of API data, such as the
// published data dumps. A collection is an endpoint name; records come
// back as decoded JSON objects. Mirrors interpret a [Query] snapshot the
// way the remote API would, without any network access.
type Mirror interface {
	Find(ctx context.Context, collection string, q Query) ([]map[string]any, error)
}
