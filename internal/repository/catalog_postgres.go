package repository

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/bookverse/internal/db"
	"github.com/nikolayk812/bookverse/internal/domain"
	"golang.org/x/text/currency"
)

// PostgresCatalog reads books from the books table.
type PostgresCatalog struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewPostgresCatalog(pool *pgxpool.Pool) *PostgresCatalog {
	return &PostgresCatalog{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewPostgresCatalogWithTx(tx pgx.Tx) *PostgresCatalog {
	return &PostgresCatalog{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (c *PostgresCatalog) ListBooks(ctx context.Context) ([]domain.Book, error) {
	rows, err := c.q.ListBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListBooks: %w", err)
	}

	books, err := mapBookRowsToDomain(rows)
	if err != nil {
		return nil, fmt.Errorf("mapBookRowsToDomain: %w", err)
	}

	return books, nil
}

func (c *PostgresCatalog) GetBook(ctx context.Context, id int) (domain.Book, error) {
	if id <= 0 || id > math.MaxInt32 {
		return domain.Book{}, fmt.Errorf("book[%d]: %w", id, domain.ErrBookNotFound)
	}

	row, err := c.q.GetBook(ctx, int32(id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Book{}, fmt.Errorf("book[%d]: %w", id, domain.ErrBookNotFound)
	}
	if err != nil {
		return domain.Book{}, fmt.Errorf("q.GetBook: %w", err)
	}

	book, err := mapBookRowToDomain(row)
	if err != nil {
		return domain.Book{}, fmt.Errorf("mapBookRowToDomain: %w", err)
	}

	return book, nil
}

// UpsertBooks writes all books in one transaction, replacing rows with the same id.
func (c *PostgresCatalog) UpsertBooks(ctx context.Context, books []domain.Book) (int, error) {
	for _, b := range books {
		if err := b.Validate(); err != nil {
			return 0, fmt.Errorf("b.Validate: %w", err)
		}
		if b.ID > math.MaxInt32 {
			return 0, fmt.Errorf("book[%d]: id does not fit the books table", b.ID)
		}
	}

	return withTx(ctx, c.pool, c.q, func(q *db.Queries) (int, error) {
		for _, b := range books {
			err := q.UpsertBook(ctx, db.UpsertBookParams{
				ID:            int32(b.ID),
				Title:         b.Title,
				Author:        b.Author,
				PriceAmount:   b.Price.Amount,
				PriceCurrency: b.Price.Currency.String(),
				Genre:         string(b.Genre),
				Rating:        b.Rating,
				Image:         b.Image,
			})
			if err != nil {
				return 0, fmt.Errorf("q.UpsertBook[%d]: %w", b.ID, err)
			}
		}
		return len(books), nil
	})
}

func mapBookRowToDomain(row db.Book) (domain.Book, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.Book{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	genre, err := domain.ParseGenre(row.Genre)
	if err != nil {
		return domain.Book{}, fmt.Errorf("domain.ParseGenre: %w", err)
	}

	return domain.Book{
		ID:     int(row.ID),
		Title:  row.Title,
		Author: row.Author,
		Price:  domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
		Genre:  genre,
		Rating: row.Rating,
		Image:  row.Image,
	}, nil
}

func mapBookRowsToDomain(rows []db.Book) ([]domain.Book, error) {
	var books []domain.Book

	for _, row := range rows {
		book, err := mapBookRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapBookRowToDomain: %w", err)
		}

		books = append(books, book)
	}

	return books, nil
}
