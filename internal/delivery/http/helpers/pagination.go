package helpers

import (
	"net/http"
	"strconv"

	"evently/internal/domain"
)

// Pagination query parameter defaults and limits.
const (
	DefaultLimit = 10
	MaxLimit     = 50
)

// ParseLimitOffset reads limit and offset from the request query string and clamps
// them to valid ranges. Invalid or missing values fall back to defaults.
func ParseLimitOffset(r *http.Request) domain.PaginationParams {
	limit := DefaultLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			limit = min(v, MaxLimit)
		}
	}
	offset := 0
	if s := r.URL.Query().Get("offset"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			offset = v
		}
	}
	return domain.PaginationParams{Limit: limit, Offset: offset}
}

// PaginationMeta is the pagination metadata included in paginated list responses.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Total      int  `json:"total"`
	Limit      int  `json:"limit"`
	Offset     int  `json:"offset"`
	HasMore    bool `json:"hasMore"`
	NextOffset *int `json:"nextOffset"`
}

// NewPaginationMeta builds PaginationMeta for page given the total number of matches.
func NewPaginationMeta(page domain.PaginationParams, total int) PaginationMeta {
	return PaginationMeta{
		Total:      total,
		Limit:      page.Limit,
		Offset:     page.Offset,
		HasMore:    page.HasMore(total),
		NextOffset: page.NextOffset(total),
	}
}
