// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Query handlers read through the database directly and return read models
// shaped for the HTTP layer, bypassing the domain aggregates.
package queries

import (
	"math"

	"rental/internal/pkg/errs"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

// Pagination carries the page window for list queries. Zero values fall back
// to the first page of ten records.
type Pagination struct {
	page int
	size int
}

// NewPagination creates a page window. Zero page or size select the defaults;
// negative values and sizes above 100 are rejected.
func NewPagination(page, size int) (Pagination, error) {
	if page < 0 {
		return Pagination{}, errs.NewValueIsOutOfRangeError("page", page, 1, nil)
	}
	if size < 0 || size > maxPageSize {
		return Pagination{}, errs.NewValueIsOutOfRangeError("size", size, 1, maxPageSize)
	}

	if page == 0 {
		page = defaultPage
	}
	if size == 0 {
		size = defaultPageSize
	}

	return Pagination{page: page, size: size}, nil
}

// Page returns the 1-based page number.
func (p Pagination) Page() int {
	if p.page == 0 {
		return defaultPage
	}
	return p.page
}

// Size returns the page size.
func (p Pagination) Size() int {
	if p.size == 0 {
		return defaultPageSize
	}
	return p.size
}

// Offset returns the number of records to skip.
func (p Pagination) Offset() int {
	return (p.Page() - 1) * p.Size()
}

// Pages returns how many pages the given record count spans.
func (p Pagination) Pages(total int64) int {
	return int(math.Ceil(float64(total) / float64(p.Size())))
}
