// Package store implements MongoDB persistence for the matchmaking
// collections. Handlers depend on narrow interfaces they declare themselves;
// the repositories here satisfy them and report misses and duplicates via
// the sentinel errors below.
package store

import "errors"

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// BiodataFilter is the conjunctive listing filter. Zero-value fields are
// omitted from the query; nil age bounds leave that side of the range open.
type BiodataFilter struct {
	Type     string
	Division string
	MinAge   *int
	MaxAge   *int
}
