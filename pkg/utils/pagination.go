package utils

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	// MaxPage keeps (page-1)*limit well inside int range.
	MaxPage      = 1_000_000
)

// PaginationParams holds validated page/limit values.
type PaginationParams struct {
	Page  int
	Limit int
}

// PaginationMeta is the pagination block of a paginated response.
type PaginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// Page is a slice of items plus its pagination metadata.
type Page[T any] struct {
	Data       []T            `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

// GetPaginationParams clamps page and limit into their valid ranges.
func GetPaginationParams(page, limit int) PaginationParams {
	if page < 1 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return PaginationParams{Page: page, Limit: limit}
}

// CalculateOffset returns the SQL offset
func (p PaginationParams) CalculateOffset() int {
	if p.Page < 1 {
		return 0
	}
	page := min(p.Page, MaxPage)
	return (page - 1) * min(p.Limit, MaxLimit)
}

// CalculateMeta computes totalPages as ceil(total/limit).
func CalculateMeta(total int64, page, limit int) PaginationMeta {
	if limit <= 0 {
		return PaginationMeta{Page: page, Limit: limit, Total: total}
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	return PaginationMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// NewPage bundles items with metadata; a nil slice becomes an empty one so
// it encodes as [].
func NewPage[T any](items []T, total int64, p PaginationParams) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Data:       items,
		Pagination: CalculateMeta(total, p.Page, p.Limit),
	}
}
