// internal/app/system/paging/paging.go
package paging

import (
	"math"
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// DefaultPageSize is the number of rows returned when the caller does not
// ask for a limit.
const DefaultPageSize = 50

// MaxLimit is the largest page a caller may request.
const MaxLimit = 500

// Limits holds the configured page-size bounds. The zero value is not
// useful; use DefaultLimits or NewLimits.
type Limits struct {
	Default int
	Max     int
}

// DefaultLimits returns the built-in bounds (50 / 500).
func DefaultLimits() Limits {
	return Limits{Default: DefaultPageSize, Max: MaxLimit}
}

// NewLimits builds Limits from configuration, falling back to the built-in
// values for non-positive inputs and keeping Default <= Max.
func NewLimits(def, max int) Limits {
	l := DefaultLimits()
	if max > 0 {
		l.Max = max
	}
	if def > 0 {
		l.Default = def
	}
	if l.Default > l.Max {
		l.Default = l.Max
	}
	return l
}

// Normalize clamps page to >= 1 and limit to [1, Max], using Default when
// limit is unset (<= 0). Page is capped so Skip(page, limit) fits in an
// int64; such a page is past any real collection and comes back empty.
func (l Limits) Normalize(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = l.Default
	}
	if limit > l.Max {
		limit = l.Max
	}
	if limit < 1 {
		limit = 1
	}
	if maxPrev := math.MaxInt64 / int64(limit); int64(page-1) > maxPrev {
		page = int(maxPrev) + 1
	}
	return page, limit
}

// Skip returns the number of documents to skip for a normalized page/limit.
func Skip(page, limit int) int64 {
	return int64(page-1) * int64(limit)
}

// TotalPages returns ceil(total/limit).
func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	l := int64(limit)
	return int((total + l - 1) / l)
}

// Envelope is the list response shape shared by all collections.
type Envelope[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
	Total      int64 `json:"total"`
}

// NewEnvelope builds an Envelope. Data is never nil so it encodes as [].
func NewEnvelope[T any](data []T, page, limit int, total int64) Envelope[T] {
	if data == nil {
		data = []T{}
	}
	return Envelope[T]{
		Data:       data,
		Page:       page,
		TotalPages: TotalPages(total, limit),
		Total:      total,
	}
}

// ParsePage extracts the 1-based "page" query parameter.
// Returns 1 if not present or invalid.
func ParsePage(r *http.Request) int {
	n, ok := parseInt(r, "page")
	if !ok || n < 1 {
		return 1
	}
	return n
}

// ParseLimit extracts the "limit" query parameter. Returns 0 (meaning
// "use the default") if not present or not a number; clamping is left to
// Limits.Normalize.
func ParseLimit(r *http.Request) int {
	n, ok := parseInt(r, "limit")
	if !ok {
		return 0
	}
	return n
}

func parseInt(r *http.Request, key string) (int, bool) {
	s := query.Get(r, key)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
