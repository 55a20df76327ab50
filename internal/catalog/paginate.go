package catalog

import (
	"slices"

	"github.com/nikolayk812/bookverse/internal/domain"
)

type Result struct {
	Items      []domain.Book
	TotalCount int
	TotalPages int
	Page       int
}

// Empty reports whether no book matched; it is not a paging condition.
func (r Result) Empty() bool {
	return r.TotalCount == 0
}

// TotalPages is ceil(count/pageSize), but never less than 1.
func TotalPages(count, pageSize int) int {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return max(1, (count+pageSize-1)/pageSize)
}

// Paginate returns the books in [(page-1)*pageSize, page*pageSize). Pages
// outside the result yield no items.
func Paginate(books []domain.Book, page, pageSize int) Result {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	result := Result{
		Items:      []domain.Book{},
		TotalCount: len(books),
		TotalPages: TotalPages(len(books), pageSize),
		Page:       page,
	}
	if page < 1 || page > result.TotalPages {
		return result
	}

	start := (page - 1) * pageSize
	if start >= len(books) {
		return result
	}
	end := min(start+pageSize, len(books))

	result.Items = slices.Clone(books[start:end])
	return result
}
