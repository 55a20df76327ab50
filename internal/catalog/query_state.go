package catalog

import (
	"errors"
	"fmt"

	"github.com/nikolayk812/bookverse/internal/domain"
)

var ErrPageOutOfRange = errors.New("page out of range")

// QueryState is one shopper's position in the catalog: the criteria last
// applied, the current page, and the matching books. The zero value is the
// unfiltered catalog on page 1. A QueryState belongs to its caller and is not
// safe for concurrent use.
type QueryState struct {
	Criteria domain.FilterCriteria
	Page     int

	results []domain.Book
	applied bool
}

// Apply replaces the criteria and returns to page 1, since the previous
// position means nothing in the new result.
func (e *Engine) Apply(state *QueryState, criteria domain.FilterCriteria) Result {
	state.Criteria = criteria
	state.results = e.Query(criteria)
	state.applied = true
	state.Page = 1

	return Paginate(state.results, state.Page, e.pageSize)
}

// GoToPage moves to page. Pages outside [1, TotalPages] are rejected and the
// state is left as it was.
func (e *Engine) GoToPage(state *QueryState, page int) (Result, error) {
	e.ensure(state)

	total := TotalPages(len(state.results), e.pageSize)
	if page < 1 || page > total {
		return Result{}, fmt.Errorf("page[%d] of %d: %w", page, total, ErrPageOutOfRange)
	}

	state.Page = page
	return Paginate(state.results, state.Page, e.pageSize), nil
}

// Current returns the page the state points at.
func (e *Engine) Current(state *QueryState) Result {
	e.ensure(state)
	return Paginate(state.results, state.Page, e.pageSize)
}

func (e *Engine) ensure(state *QueryState) {
	if state.applied {
		return
	}
	state.results = e.Query(state.Criteria)
	state.applied = true
	if state.Page < 1 {
		state.Page = 1
	}
}
