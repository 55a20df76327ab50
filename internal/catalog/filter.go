package catalog

import (
	"slices"
	"strings"

	"github.com/nikolayk812/bookverse/internal/domain"
	"golang.org/x/text/cases"
)

// Filter returns the books that satisfy every group of criteria, in catalog
// order. books is not modified.
func Filter(books []domain.Book, criteria domain.FilterCriteria) []domain.Book {
	m := newMatcher(criteria)

	result := make([]domain.Book, 0, len(books))
	for _, b := range books {
		if m.match(b) {
			result = append(result, b)
		}
	}
	return result
}

type matcher struct {
	criteria domain.FilterCriteria
	folder   cases.Caser
	needle   string
}

func newMatcher(criteria domain.FilterCriteria) *matcher {
	folder := cases.Fold()
	return &matcher{
		criteria: criteria,
		folder:   folder,
		needle:   folder.String(criteria.SearchText),
	}
}

func (m *matcher) match(b domain.Book) bool {
	return m.matchGenre(b) && m.matchPrice(b) && m.matchRating(b) && m.matchSearch(b)
}

func (m *matcher) matchGenre(b domain.Book) bool {
	return len(m.criteria.Genres) == 0 || slices.Contains(m.criteria.Genres, b.Genre)
}

func (m *matcher) matchPrice(b domain.Book) bool {
	if len(m.criteria.PriceRanges) == 0 {
		return true
	}
	for _, r := range m.criteria.PriceRanges {
		if r.Contains(b.Price.Amount) {
			return true
		}
	}
	return false
}

// matchRating passes when the rating meets any one of the thresholds.
func (m *matcher) matchRating(b domain.Book) bool {
	if len(m.criteria.MinRatings) == 0 {
		return true
	}
	for _, threshold := range m.criteria.MinRatings {
		if b.Rating >= float64(threshold) {
			return true
		}
	}
	return false
}

func (m *matcher) matchSearch(b domain.Book) bool {
	if m.needle == "" {
		return true
	}
	return strings.Contains(m.folder.String(b.Title), m.needle) ||
		strings.Contains(m.folder.String(b.Author), m.needle)
}
