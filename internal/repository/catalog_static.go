package repository

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"

	"github.com/nikolayk812/bookverse/internal/domain"
	"github.com/shopspring/decimal"
)

//go:embed catalogdata/sample_books.json
var sampleBooks []byte

type bookJSON struct {
	ID     int         `json:"id"`
	Title  string      `json:"title"`
	Author string      `json:"author"`
	Price  json.Number `json:"price"`
	Genre  string      `json:"genre"`
	Rating float64     `json:"rating"`
	Image  string      `json:"image"`
}

// StaticCatalog serves a fixed list of books from memory.
type StaticCatalog struct {
	books []domain.Book
	byID  map[int]int
}

// NewStaticCatalog validates books and indexes them by id. The input slice is
// copied; catalog order is kept.
func NewStaticCatalog(books []domain.Book) (*StaticCatalog, error) {
	c := &StaticCatalog{
		books: make([]domain.Book, len(books)),
		byID:  make(map[int]int, len(books)),
	}
	copy(c.books, books)

	for i, b := range c.books {
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("b.Validate: %w", err)
		}
		if _, dup := c.byID[b.ID]; dup {
			return nil, fmt.Errorf("book[%d] appears more than once", b.ID)
		}
		c.byID[b.ID] = i
	}

	return c, nil
}

func (c *StaticCatalog) ListBooks(ctx context.Context) ([]domain.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	books := make([]domain.Book, len(c.books))
	copy(books, c.books)
	return books, nil
}

func (c *StaticCatalog) GetBook(ctx context.Context, id int) (domain.Book, error) {
	if err := ctx.Err(); err != nil {
		return domain.Book{}, err
	}

	i, ok := c.byID[id]
	if !ok {
		return domain.Book{}, fmt.Errorf("book[%d]: %w", id, domain.ErrBookNotFound)
	}

	return c.books[i], nil
}

// SampleCatalog returns the twelve books the shop page ships with.
func SampleCatalog() ([]domain.Book, error) {
	return LoadCatalogJSON(bytes.NewReader(sampleBooks))
}

// LoadCatalogJSON reads a JSON array of books with numeric prices in USD.
func LoadCatalogJSON(r io.Reader) ([]domain.Book, error) {
	var raws []bookJSON
	if err := json.NewDecoder(r).Decode(&raws); err != nil {
		return nil, fmt.Errorf("json.Decode: %w", err)
	}

	books := make([]domain.Book, 0, len(raws))
	for _, raw := range raws {
		b, err := mapJSONToBook(raw)
		if err != nil {
			return nil, fmt.Errorf("mapJSONToBook: %w", err)
		}
		books = append(books, b)
	}

	return books, nil
}

func mapJSONToBook(raw bookJSON) (domain.Book, error) {
	price, err := decimal.NewFromString(raw.Price.String())
	if err != nil {
		return domain.Book{}, fmt.Errorf("book[%d]: price[%s] is not valid: %w", raw.ID, raw.Price, err)
	}

	genre, err := domain.ParseGenre(raw.Genre)
	if err != nil {
		return domain.Book{}, fmt.Errorf("book[%d]: %w", raw.ID, err)
	}

	b := domain.Book{
		ID:     raw.ID,
		Title:  raw.Title,
		Author: raw.Author,
		Price:  domain.USD(price),
		Genre:  genre,
		Rating: raw.Rating,
		Image:  raw.Image,
	}
	if err := b.Validate(); err != nil {
		return domain.Book{}, fmt.Errorf("b.Validate: %w", err)
	}

	return b, nil
}
