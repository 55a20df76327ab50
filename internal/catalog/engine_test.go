package catalog_test

import (
	"math"
	"testing"

	"github.com/nikolayk812/bookverse/internal/catalog"
	"github.com/nikolayk812/bookverse/internal/domain"
	"github.com/nikolayk812/bookverse/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBooks(t *testing.T) []domain.Book {
	t.Helper()

	books, err := repository.SampleCatalog()
	require.NoError(t, err)
	require.Len(t, books, 12)
	return books
}

func ids(books []domain.Book) []int {
	out := make([]int, 0, len(books))
	for _, b := range books {
		out = append(out, b.ID)
	}
	return out
}

func priceRanges(t *testing.T, tokens ...string) []domain.PriceRange {
	t.Helper()

	var ranges []domain.PriceRange
	for _, token := range tokens {
		r, err := domain.ParsePriceRange(token)
		require.NoError(t, err)
		ranges = append(ranges, r)
	}
	return ranges
}

func book(id int, title, author, price string, genre domain.Genre, rating float64) domain.Book {
	return domain.Book{
		ID:     id,
		Title:  title,
		Author: author,
		Price:  domain.USD(decimal.RequireFromString(price)),
		Genre:  genre,
		Rating: rating,
	}
}

func TestFilter(t *testing.T) {
	books := sampleBooks(t)

	tests := []struct {
		name     string
		criteria domain.FilterCriteria
		wantIDs  []int
	}{
		{
			name:     "no criteria: whole catalog",
			criteria: domain.FilterCriteria{},
			wantIDs:  []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
		},
		{
			name:     "fiction keeps catalog order",
			criteria: domain.FilterCriteria{Genres: []domain.Genre{domain.GenreFiction}},
			wantIDs:  []int{1, 2, 5, 6, 7},
		},
		{
			name:     "several genres",
			criteria: domain.FilterCriteria{Genres: []domain.Genre{domain.GenreScience, domain.GenreArts}},
			wantIDs:  []int{3, 10, 12},
		},
		{
			name:     "price bracket is half-open",
			criteria: domain.FilterCriteria{PriceRanges: priceRanges(t, "20-30")},
			wantIDs:  []int{1, 4, 6, 7, 8, 10, 11},
		},
		{
			name:     "price brackets are disjunctive",
			criteria: domain.FilterCriteria{PriceRanges: priceRanges(t, "0-20", "30-40")},
			wantIDs:  []int{2, 3, 5, 9, 12},
		},
		{
			name:     "open bracket with no match",
			criteria: domain.FilterCriteria{PriceRanges: priceRanges(t, "60+")},
			wantIDs:  []int{},
		},
		{
			name:     "rating thresholds are disjunctive",
			criteria: domain.FilterCriteria{MinRatings: []int{4, 5}},
			wantIDs:  []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
		},
		{
			name:     "rating threshold five",
			criteria: domain.FilterCriteria{MinRatings: []int{5}},
			wantIDs:  []int{},
		},
		{
			name:     "search matches title case-insensitively",
			criteria: domain.FilterCriteria{SearchText: "ADVENTURE"},
			wantIDs:  []int{1, 5},
		},
		{
			name:     "search matches author",
			criteria: domain.FilterCriteria{SearchText: "dr. "},
			wantIDs:  []int{3, 12},
		},
		{
			name: "groups are conjunctive",
			criteria: domain.FilterCriteria{
				Genres:      []domain.Genre{domain.GenreFiction},
				PriceRanges: priceRanges(t, "20-30"),
				SearchText:  "e",
			},
			wantIDs: []int{1, 6, 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Filter(books, tt.criteria)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

func TestFilterPriceBoundaries(t *testing.T) {
	books := []domain.Book{
		book(1, "Low", "A", "20.00", domain.GenreArts, 3),
		book(2, "High", "A", "30.00", domain.GenreArts, 3),
		book(3, "Inside", "A", "29.99", domain.GenreArts, 3),
	}

	got := catalog.Filter(books, domain.FilterCriteria{PriceRanges: priceRanges(t, "20-30")})
	assert.Equal(t, []int{1, 3}, ids(got))
}

func TestFilterRatingDisjunction(t *testing.T) {
	books := []domain.Book{book(1, "T", "A", "10", domain.GenreArts, 4.2)}

	got := catalog.Filter(books, domain.FilterCriteria{MinRatings: []int{4, 5}})
	assert.Equal(t, []int{1}, ids(got))

	got = catalog.Filter(books, domain.FilterCriteria{MinRatings: []int{5}})
	assert.Empty(t, got)
}

func TestFilterDoesNotModifyCatalog(t *testing.T) {
	books := sampleBooks(t)
	before := ids(books)

	got := catalog.Filter(books, domain.FilterCriteria{})
	catalog.SortBooks(got, domain.SortPriceHigh, catalog.DefaultLanguage)

	assert.Equal(t, before, ids(books))
}

func TestSortBooks(t *testing.T) {
	tests := []struct {
		name    string
		key     domain.SortKey
		wantIDs []int
	}{
		{
			name:    "default keeps catalog order",
			key:     domain.SortDefault,
			wantIDs: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
		},
		{
			name:    "price ascending is stable",
			key:     domain.SortPriceLow,
			wantIDs: []int{2, 5, 11, 4, 7, 1, 10, 6, 8, 9, 3, 12},
		},
		{
			name:    "price descending is stable",
			key:     domain.SortPriceHigh,
			wantIDs: []int{12, 3, 9, 8, 6, 10, 1, 4, 7, 11, 2, 5},
		},
		{
			name:    "rating descending is stable",
			key:     domain.SortRating,
			wantIDs: []int{3, 8, 12, 1, 10, 6, 9, 4, 7, 2, 5, 11},
		},
		{
			name:    "title alphabetical",
			key:     domain.SortName,
			wantIDs: []int{5, 10, 9, 7, 6, 4, 2, 11, 3, 12, 8, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			books := sampleBooks(t)
			catalog.SortBooks(books, tt.key, catalog.DefaultLanguage)
			assert.Equal(t, tt.wantIDs, ids(books))
		})
	}
}

func TestSortByNameIsLocaleAware(t *testing.T) {
	books := []domain.Book{
		book(1, "zebra", "A", "1", domain.GenreArts, 1),
		book(2, "Émile", "A", "1", domain.GenreArts, 1),
		book(3, "apple", "A", "1", domain.GenreArts, 1),
		book(4, "Banana", "A", "1", domain.GenreArts, 1),
	}

	catalog.SortBooks(books, domain.SortName, catalog.DefaultLanguage)
	assert.Equal(t, []int{3, 4, 2, 1}, ids(books))
}

func TestEvaluate(t *testing.T) {
	engine := catalog.NewEngine(sampleBooks(t))

	page1 := engine.Evaluate(domain.FilterCriteria{}, 1)
	assert.Equal(t, 12, page1.TotalCount)
	assert.Equal(t, 2, page1.TotalPages)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, ids(page1.Items))

	page2 := engine.Evaluate(domain.FilterCriteria{}, 2)
	assert.Equal(t, []int{10, 11, 12}, ids(page2.Items))

	page3 := engine.Evaluate(domain.FilterCriteria{}, 3)
	assert.Empty(t, page3.Items)
	assert.Equal(t, 2, page3.TotalPages)

	far := engine.Evaluate(domain.FilterCriteria{}, math.MaxInt/9+2)
	assert.Empty(t, far.Items)

	fiction := engine.Evaluate(domain.FilterCriteria{
		Genres: []domain.Genre{domain.GenreFiction},
		Sort:   domain.SortDefault,
	}, 1)
	assert.Equal(t, []int{1, 2, 5, 6, 7}, ids(fiction.Items))
	assert.Equal(t, 1, fiction.TotalPages)
}

func TestEngineOptions(t *testing.T) {
	engine := catalog.NewEngine(sampleBooks(t), catalog.WithPageSize(5), catalog.WithPageSize(0))
	assert.Equal(t, 5, engine.PageSize())

	res := engine.Evaluate(domain.FilterCriteria{}, 3)
	assert.Equal(t, 3, res.TotalPages)
	assert.Equal(t, []int{11, 12}, ids(res.Items))
}
