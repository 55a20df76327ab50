package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitedb "github.com/nikolayk812/bookverse/internal/db/sqlite"
	"github.com/nikolayk812/bookverse/internal/domain"
	"github.com/nikolayk812/bookverse/internal/migrations"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLiteSlot keeps cart values in a local SQLite file.
type SQLiteSlot struct {
	sqlDB *sql.DB
	q     *sqlitedb.Queries
}

// OpenSQLiteSlot opens the database at path and applies the embedded migrations.
func OpenSQLiteSlot(ctx context.Context, path string) (*SQLiteSlot, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("sqlDB.Ping: %w", err)
	}

	if err := runMigrations(ctx, goose.DialectSQLite3, sqlDB, migrations.SQLite()); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("runMigrations: %w", err)
	}

	return &SQLiteSlot{
		sqlDB: sqlDB,
		q:     sqlitedb.New(sqlDB),
	}, nil
}

func (s *SQLiteSlot) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *SQLiteSlot) Load(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, fmt.Errorf("key is empty")
	}

	value, err := s.q.GetCartState(ctx, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("q.GetCartState: %w", err)
	}

	return value, nil
}

func (s *SQLiteSlot) Save(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	err := s.q.UpsertCartState(ctx, sqlitedb.UpsertCartStateParams{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC().UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("q.UpsertCartState: %w", err)
	}

	return nil
}
