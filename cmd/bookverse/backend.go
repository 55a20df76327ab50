package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/bookverse/internal/config"
	"github.com/nikolayk812/bookverse/internal/domain"
	"github.com/nikolayk812/bookverse/internal/port"
	"github.com/nikolayk812/bookverse/internal/repository"
)

// backend holds the opened cart slot and catalog for one invocation.
type backend struct {
	slot    port.StateSlot
	catalog port.CatalogRepository
	pool    *pgxpool.Pool

	closers []func()
}

func (b *backend) Close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

func openBackend(ctx context.Context, cfg config.Config, logger *slog.Logger) (_ *backend, err error) {
	b := &backend{}
	defer func() {
		if err != nil {
			b.Close()
		}
	}()

	if cfg.PostgresDSN != "" && (cfg.Store == config.StorePostgres || cfg.Catalog == config.CatalogPostgres) {
		if b.pool, err = openPostgres(ctx, cfg.PostgresDSN); err != nil {
			return nil, err
		}
		b.closers = append(b.closers, b.pool.Close)
	}

	switch cfg.Store {
	case config.StoreMemory:
		b.slot = repository.NewMemorySlot()
	case config.StorePostgres:
		b.slot = repository.NewPostgresSlot(b.pool)
	case config.StoreRedis:
		client, err := repository.OpenRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("repository.OpenRedis: %w", err)
		}
		b.closers = append(b.closers, func() { _ = client.Close() })
		b.slot = repository.NewRedisSlot(client, cfg.RedisTTL)
	case config.StoreSQLite:
		slot, err := repository.OpenSQLiteSlot(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("repository.OpenSQLiteSlot: %w", err)
		}
		b.closers = append(b.closers, func() { _ = slot.Close() })
		b.slot = slot
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}

	switch cfg.Catalog {
	case config.CatalogPostgres:
		b.catalog = repository.NewPostgresCatalog(b.pool)
	case config.CatalogStatic:
		books, err := loadBooks(cfg.CatalogFile)
		if err != nil {
			return nil, err
		}
		if b.catalog, err = repository.NewStaticCatalog(books); err != nil {
			return nil, fmt.Errorf("repository.NewStaticCatalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown catalog %q", cfg.Catalog)
	}

	logger.DebugContext(ctx, "backend opened", "store", cfg.Store, "catalog", cfg.Catalog)

	return b, nil
}

func openPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, errors.New("BOOKVERSE_POSTGRES_DSN is empty")
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pool.Ping: %w", err)
	}

	return pool, nil
}

// loadBooks reads the catalog file, or the built-in sample when path is empty.
func loadBooks(path string) ([]domain.Book, error) {
	if path == "" {
		books, err := repository.SampleCatalog()
		if err != nil {
			return nil, fmt.Errorf("repository.SampleCatalog: %w", err)
		}
		return books, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open: %w", err)
	}
	defer f.Close()

	books, err := repository.LoadCatalogJSON(f)
	if err != nil {
		return nil, fmt.Errorf("repository.LoadCatalogJSON(%s): %w", path, err)
	}
	return books, nil
}
