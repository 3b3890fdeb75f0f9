package helpers

import (
	"net/http"
	"net/url"
	"strconv"

	"tagtheme/internal/domain"
)

// Pagination query parameter defaults and limits.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ParsePagination reads page and page_size from the request query string,
// clamps them to valid ranges, and returns domain.PaginationParams.
// Invalid or missing values fall back to DefaultPage and defaultPageSize
// (DefaultPageSize when defaultPageSize is not positive).
func ParsePagination(r *http.Request, defaultPageSize int) domain.PaginationParams {
	page := DefaultPage
	if s := r.URL.Query().Get("page"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			page = v
		}
	}
	pageSize := defaultPageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if s := r.URL.Query().Get("page_size"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			pageSize = v
		}
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return domain.PaginationParams{Page: page, PageSize: pageSize}
}

// PaginationMeta is the pagination metadata included in paginated list responses.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPaginationMeta builds PaginationMeta from the current page, page size, and total count.
// TotalPages is computed as ceiling(total / pageSize); if pageSize is 0, TotalPages is 0.
func NewPaginationMeta(page, pageSize, total int) PaginationMeta {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return PaginationMeta{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

// PageLinks returns the URLs of the previous (newer) and next (older) pages
// relative to base, or empty strings where no such page exists.
// Page 1 is linked as base itself.
func PageLinks(base string, meta PaginationMeta) (prev, next string) {
	link := func(page int) string {
		if page <= 1 {
			return base
		}
		return base + "?" + url.Values{"page": {strconv.Itoa(page)}}.Encode()
	}
	if meta.Page > 1 && meta.Page <= meta.TotalPages {
		prev = link(meta.Page - 1)
	}
	if meta.Page < meta.TotalPages {
		next = link(meta.Page + 1)
	}
	return prev, next
}
