package igdb

import (
	"bytes"
	"net/http"
)

const (
	apiKeyHeader = "user-key"
	contentType  = "application/text"
)

// Build renders the query body and wraps it in a GET request for the
// given URL. The request is inert: executing it against a transport is
// up to the caller. A malformed URL is the only error.
func (b *Builder) Build(apiKey, url string) (*http.Request, error) {
	req, err := http.NewRequest(http.MethodGet, url, bytes.NewReader(b.BuildBody()))
	if err != nil {
		return nil, err
	}
	req.Header.Set(apiKeyHeader, apiKey)
	req.Header.Set("content-type", contentType)
	return req, nil
}
