package catalog

import (
	"cmp"
	"slices"

	"github.com/nikolayk812/bookverse/internal/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortBooks orders books in place by key. The sort is stable, so books with
// equal keys keep their relative order. SortDefault leaves books unchanged.
func SortBooks(books []domain.Book, key domain.SortKey, lang language.Tag) {
	switch key {
	case domain.SortPriceLow:
		slices.SortStableFunc(books, func(a, b domain.Book) int {
			return a.Price.Amount.Cmp(b.Price.Amount)
		})
	case domain.SortPriceHigh:
		slices.SortStableFunc(books, func(a, b domain.Book) int {
			return b.Price.Amount.Cmp(a.Price.Amount)
		})
	case domain.SortRating:
		slices.SortStableFunc(books, func(a, b domain.Book) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	case domain.SortName:
		collator := collate.New(lang)
		slices.SortStableFunc(books, func(a, b domain.Book) int {
			return collator.CompareString(a.Title, b.Title)
		})
	}
}
