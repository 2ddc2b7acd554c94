package utils

import (
	"math"
	"net/http"
	"strconv"
)

// Pagination is the block returned by the property search family.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasMore    bool  `json:"hasMore"`
}

// ProjectPagination is the block returned by the projects family. The naming
// differs from Pagination; both shapes are consumed by their respective
// callers and must not be unified.
type ProjectPagination struct {
	CurrentPage     int   `json:"currentPage"`
	TotalPages      int   `json:"totalPages"`
	TotalCount      int64 `json:"totalCount"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// NewPagination computes the search-family block for a page/limit/total triple.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := TotalPages(total, limit)
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	}
}

// NewProjectPagination computes the projects-family block.
func NewProjectPagination(page, limit int, total int64) ProjectPagination {
	totalPages := TotalPages(total, limit)
	return ProjectPagination{
		CurrentPage:     page,
		TotalPages:      totalPages,
		TotalCount:      total,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}

// TotalPages is ceil(total/limit), 0 when total is 0.
func TotalPages(total int64, limit int) int {
	if total == 0 || limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

// ParsePageQuery reads page/limit query params. Page and limit clamp to a
// minimum of 1. When maxLimit > 0, limit additionally clamps to maxLimit;
// the projects family passes 0 and accepts any limit as-is.
func ParsePageQuery(r *http.Request, maxLimit int) (page, limit, offset int) {
	page = intQuery(r, "page", 1)
	limit = intQuery(r, "limit", 10)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	offset = (page - 1) * limit
	return page, limit, offset
}

func intQuery(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// FloatQuery parses a numeric query parameter. Absent or empty parameters
// return ok=false. Present but unparseable values return NaN with ok=true:
// the NaN flows into the downstream filter unchanged, matching the behavior
// callers already depend on.
func FloatQuery(r *http.Request, name string) (float64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN(), true
	}
	return f, true
}
