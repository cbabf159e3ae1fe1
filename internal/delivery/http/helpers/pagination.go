package helpers

import (
	"fmt"
	"net/http"
	"strconv"

	"interviewscheduler/internal/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ParsePagination reads page and page_size from the query string. Missing
// values fall back to the defaults, page_size=0 returns every row on a single
// page and sizes above MaxPageSize are clamped. Malformed values are an error.
func ParsePagination(r *http.Request) (domain.PaginationParams, error) {
	q := r.URL.Query()
	params := domain.PaginationParams{Page: DefaultPage, PageSize: DefaultPageSize}

	if s := q.Get("page"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return params, fmt.Errorf("page must be a positive integer")
		}
		params.Page = v
	}
	if s := q.Get("page_size"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return params, fmt.Errorf("page_size must be zero or a positive integer")
		}
		params.PageSize = min(v, MaxPageSize)
	}
	if params.PageSize == 0 {
		params.Page = DefaultPage
	}
	return params, nil
}

// PaginationMeta describes where a page sits in the full result.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPaginationMeta computes TotalPages as ceil(total/pageSize). A pageSize of
// 0 means the page holds every row.
func NewPaginationMeta(page, pageSize, total int) PaginationMeta {
	totalPages := min(total, 1)
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

// Page is the data of a paginated list response. Items is never null.
type Page[T any] struct {
	Items      []T            `json:"items"`
	Pagination PaginationMeta `json:"pagination"`
}

func NewPage[T any](items []T, params domain.PaginationParams, total int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Pagination: NewPaginationMeta(params.Page, params.PageSize, total)}
}
