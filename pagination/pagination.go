// Package pagination slices ordered collections into pages and builds the
// page-link targets of a listing view.
package pagination

import (
	"strconv"
	"strings"
)

// Param is the query parameter carrying the requested page number.
const Param = "page"

// Page is one slice of a paginated collection.
type Page[T any] struct {
	Items      []T
	Page       int // 1-indexed
	PageSize   int
	TotalPages int
	TotalItems int
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a following page exists.
func (p Page[T]) HasNext() bool { return p.Page < p.TotalPages }

// ParsePage reads a page number from a query value. Absent, non-numeric, zero
// and negative values all mean page 1.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// TotalPages is ceil(count/size); zero when there is nothing to show.
func TotalPages(count, size int) int {
	if count <= 0 || size <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// Slice returns items[size*(page-1) : size*page], clamped to the collection.
// Pages past the end yield an empty slice. page values below 1 are treated as 1.
func Slice[T any](items []T, size, page int) []T {
	if size <= 0 {
		return []T{}
	}
	if page < 1 {
		page = 1
	}
	// Compare page numbers first; size*(page-1) overflows for huge pages.
	if page-1 >= TotalPages(len(items), size) {
		return []T{}
	}
	start := size * (page - 1)
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end:end]
}

// Paginate cuts items into the requested page.
func Paginate[T any](items []T, size, page int) Page[T] {
	if page < 1 {
		page = 1
	}
	return Page[T]{
		Items:      Slice(items, size, page),
		Page:       page,
		PageSize:   size,
		TotalPages: TotalPages(len(items), size),
		TotalItems: len(items),
	}
}
