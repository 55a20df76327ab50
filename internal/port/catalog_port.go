package port

import (
	"context"

	"github.com/nikolayk812/bookverse/internal/domain"
)

type CatalogRepository interface {
	ListBooks(ctx context.Context) ([]domain.Book, error)
	GetBook(ctx context.Context, id int) (domain.Book, error)
}
