package catalog_test

import (
	"math"
	"testing"

	"github.com/nikolayk812/bookverse/internal/catalog"
	"github.com/nikolayk812/bookverse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryState(t *testing.T) {
	engine := catalog.NewEngine(sampleBooks(t))
	var state catalog.QueryState

	current := engine.Current(&state)
	assert.Equal(t, 1, current.Page)
	assert.Equal(t, 12, current.TotalCount)

	res, err := engine.GoToPage(&state, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, state.Page)
	assert.Equal(t, []int{10, 11, 12}, ids(res.Items))

	_, err = engine.GoToPage(&state, 3)
	require.ErrorIs(t, err, catalog.ErrPageOutOfRange)
	assert.Equal(t, 2, state.Page)

	_, err = engine.GoToPage(&state, 0)
	require.ErrorIs(t, err, catalog.ErrPageOutOfRange)

	res = engine.Apply(&state, domain.FilterCriteria{Sort: domain.SortPriceLow})
	assert.Equal(t, 1, state.Page, "changing criteria resets the page")
	assert.Equal(t, 2, res.Items[0].ID)
	assert.Equal(t, domain.SortPriceLow, state.Criteria.Sort)

	res = engine.Apply(&state, domain.FilterCriteria{SearchText: "no such book"})
	assert.True(t, res.Empty())
	assert.Equal(t, 1, res.TotalPages)

	res, err = engine.GoToPage(&state, 1)
	require.NoError(t, err)
	assert.Empty(t, res.Items)
}

func TestQueryStatesAreIndependent(t *testing.T) {
	engine := catalog.NewEngine(sampleBooks(t))

	var fiction, science catalog.QueryState
	engine.Apply(&fiction, domain.FilterCriteria{Genres: []domain.Genre{domain.GenreFiction}})
	engine.Apply(&science, domain.FilterCriteria{Genres: []domain.Genre{domain.GenreScience}})

	assert.Equal(t, []int{1, 2, 5, 6, 7}, ids(engine.Current(&fiction).Items))
	assert.Equal(t, []int{3, 12}, ids(engine.Current(&science).Items))
}

func TestPaginate(t *testing.T) {
	books := sampleBooks(t)

	tests := []struct {
		name      string
		books     int
		page      int
		pageSize  int
		wantIDs   []int
		wantPages int
	}{
		{name: "first page", books: 12, page: 1, pageSize: 9, wantIDs: []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, wantPages: 2},
		{name: "last partial page", books: 12, page: 2, pageSize: 9, wantIDs: []int{10, 11, 12}, wantPages: 2},
		{name: "past the end", books: 12, page: 5, pageSize: 9, wantIDs: []int{}, wantPages: 2},
		{name: "page far past the end", books: 12, page: math.MaxInt/9 + 2, pageSize: 9, wantIDs: []int{}, wantPages: 2},
		{name: "page zero", books: 12, page: 0, pageSize: 9, wantIDs: []int{}, wantPages: 2},
		{name: "exact fit", books: 9, page: 1, pageSize: 9, wantIDs: []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, wantPages: 1},
		{name: "empty result still has one page", books: 0, page: 1, pageSize: 9, wantIDs: []int{}, wantPages: 1},
		{name: "bad page size falls back to default", books: 12, page: 2, pageSize: 0, wantIDs: []int{10, 11, 12}, wantPages: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := catalog.Paginate(books[:tt.books], tt.page, tt.pageSize)
			assert.Equal(t, tt.wantIDs, ids(res.Items))
			assert.Equal(t, tt.wantPages, res.TotalPages)
			assert.Equal(t, tt.books, res.TotalCount)
		})
	}
}
