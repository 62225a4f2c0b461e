// Package paging holds the pagination arithmetic shared by every list endpoint.
package paging

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Page is a normalized (page, limit) pair. Page numbers are 1-based.
type Page struct {
	Number int
	Limit  int
}

// New clamps raw query values: page < 1 becomes 1, a missing or non-positive
// limit becomes DefaultLimit and anything above MaxLimit is capped.
func New(page, limit int) Page {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Number: page, Limit: limit}
}

// Offset is the zero-based row offset of the first row on the page.
func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Limit
}

// Meta mirrors the paginationMeta object of list responses.
type Meta struct {
	CurrentPage     int `json:"currentPage"`
	CurrentPageSize int `json:"currentPageSize"`
	TotalPages      int `json:"totalPages"`
	TotalRecords    int `json:"totalRecords"`
}

// Result is a page of rows plus its metadata.
type Result[T any] struct {
	PaginationMeta Meta `json:"paginationMeta"`
	Rows           []T  `json:"rows"`
}

// NewResult builds the response for rows fetched with p out of total records.
func NewResult[T any](p Page, rows []T, total int) Result[T] {
	if rows == nil {
		rows = []T{}
	}
	pages := 0
	if p.Limit > 0 {
		pages = (total + p.Limit - 1) / p.Limit
	}
	return Result[T]{
		PaginationMeta: Meta{
			CurrentPage:     p.Number,
			CurrentPageSize: len(rows),
			TotalPages:      pages,
			TotalRecords:    total,
		},
		Rows: rows,
	}
}
