// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"
)

// DefaultLimit is the page size used when the client does not supply
// a valid limit parameter.
const DefaultLimit = 10

// MaxLimit caps the page size a client may request.
const MaxLimit = 100

// Params holds validated offset-pagination parameters.
type Params struct {
	Page  int64 // 0-based page index
	Limit int64 // page size, 1..MaxLimit
}

// Skip returns the number of documents to skip before the requested
// page: page index times page size.
func (p Params) Skip() int64 { return p.Page * p.Limit }

// Parse extracts "page" and "limit" query parameters with explicit
// defaults and clamping. A missing, non-numeric, or negative page
// falls back to 0; a missing or invalid limit falls back to
// DefaultLimit; limits above MaxLimit are clamped down.
func Parse(r *http.Request) Params {
	p := Params{Page: 0, Limit: DefaultLimit}

	if s := r.URL.Query().Get("page"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil && n >= 0 {
			p.Page = n
		}
	}
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
			p.Limit = n
		}
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}
