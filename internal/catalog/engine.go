// Package catalog filters, sorts and paginates the read-only book catalog.
package catalog

import (
	"slices"

	"github.com/nikolayk812/bookverse/internal/domain"
	"golang.org/x/text/language"
)

// DefaultPageSize is the number of books on one shop page.
const DefaultPageSize = 9

// DefaultLanguage drives title collation unless WithLanguage says otherwise.
var DefaultLanguage = language.English

type Engine struct {
	books    []domain.Book
	pageSize int
	lang     language.Tag
}

type Option func(*Engine)

// WithPageSize sets the page size. Values below 1 are ignored.
func WithPageSize(n int) Option {
	return func(e *Engine) {
		if n >= 1 {
			e.pageSize = n
		}
	}
}

// WithLanguage sets the collation used to sort by title.
func WithLanguage(tag language.Tag) Option {
	return func(e *Engine) {
		e.lang = tag
	}
}

// NewEngine copies books; the engine never changes its catalog.
func NewEngine(books []domain.Book, opts ...Option) *Engine {
	e := &Engine{
		books:    slices.Clone(books),
		pageSize: DefaultPageSize,
		lang:     DefaultLanguage,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) PageSize() int {
	return e.pageSize
}

// Query returns the books matching criteria in criteria.Sort order, as a
// fresh slice.
func (e *Engine) Query(criteria domain.FilterCriteria) []domain.Book {
	books := Filter(e.books, criteria)
	SortBooks(books, criteria.Sort, e.lang)
	return books
}

// Evaluate filters, sorts and returns one page of the result.
func (e *Engine) Evaluate(criteria domain.FilterCriteria, page int) Result {
	return Paginate(e.Query(criteria), page, e.pageSize)
}
