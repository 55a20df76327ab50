package domain

import (
	"fmt"
	"strings"
)

type Genre string

const (
	GenreFiction  Genre = "fiction"
	GenreScience  Genre = "science"
	GenreRomance  Genre = "romance"
	GenreHistory  Genre = "history"
	GenreBusiness Genre = "business"
	GenreArts     Genre = "arts"
)

// Genres lists the category tags in the order the shop shows them.
var Genres = []Genre{GenreFiction, GenreScience, GenreRomance, GenreHistory, GenreBusiness, GenreArts}

func ParseGenre(s string) (Genre, error) {
	g := Genre(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Genres {
		if g == known {
			return g, nil
		}
	}
	return "", fmt.Errorf("genre[%s]: %w", s, ErrUnknownGenre)
}

// Book is read-only reference data from the catalog.
type Book struct {
	ID     int
	Title  string
	Author string
	Price  Money
	Genre  Genre
	Rating float64
	Image  string
}

const MaxRating = 5

func (b Book) Validate() error {
	if b.ID <= 0 {
		return fmt.Errorf("book id must be positive, got %d", b.ID)
	}
	if strings.TrimSpace(b.Title) == "" {
		return fmt.Errorf("book[%d]: title is empty", b.ID)
	}
	if strings.TrimSpace(b.Author) == "" {
		return fmt.Errorf("book[%d]: author is empty", b.ID)
	}
	if b.Price.Amount.IsNegative() {
		return fmt.Errorf("book[%d]: price is negative", b.ID)
	}
	if b.Rating < 0 || b.Rating > MaxRating {
		return fmt.Errorf("book[%d]: rating %v is out of range [0, %d]", b.ID, b.Rating, MaxRating)
	}
	if _, err := ParseGenre(string(b.Genre)); err != nil {
		return fmt.Errorf("book[%d]: %w", b.ID, err)
	}
	return nil
}
