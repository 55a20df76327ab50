// Package config reads the runtime settings from the environment and optional
// .env files.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/nikolayk812/bookverse/internal/cart"
	"github.com/nikolayk812/bookverse/internal/domain"
	"github.com/nikolayk812/bookverse/internal/repository"
	"github.com/shopspring/decimal"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
	StoreSQLite   = "sqlite"

	CatalogStatic   = "static"
	CatalogPostgres = "postgres"
)

var (
	stores   = []string{StoreMemory, StorePostgres, StoreRedis, StoreSQLite}
	catalogs = []string{CatalogStatic, CatalogPostgres}
)

type Config struct {
	Store       string        `env:"BOOKVERSE_STORE" envDefault:"sqlite"`
	CartKey     string        `env:"BOOKVERSE_CART_KEY" envDefault:"bookverse_cart"`
	SessionID   uuid.UUID     `env:"BOOKVERSE_SESSION_ID"`
	PostgresDSN string        `env:"BOOKVERSE_POSTGRES_DSN"`
	RedisURL    string        `env:"BOOKVERSE_REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RedisTTL    time.Duration `env:"BOOKVERSE_REDIS_TTL" envDefault:"720h"`
	SQLitePath  string        `env:"BOOKVERSE_SQLITE_PATH" envDefault:"bookverse.db"`

	Catalog     string `env:"BOOKVERSE_CATALOG" envDefault:"static"`
	CatalogFile string `env:"BOOKVERSE_CATALOG_FILE"`
	PageSize    int    `env:"BOOKVERSE_PAGE_SIZE" envDefault:"9"`

	TaxRate     decimal.Decimal `env:"BOOKVERSE_TAX_RATE" envDefault:"0.08"`
	ShippingFee decimal.Decimal `env:"BOOKVERSE_SHIPPING_FEE" envDefault:"5.99"`

	LogLevel slog.Level `env:"BOOKVERSE_LOG_LEVEL" envDefault:"info"`
}

// Load reads .env and .env.local when present, then parses the environment.
// Variables already set in the environment win over the files.
func Load() (Config, error) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	return Parse()
}

// Parse reads the configuration from environment variables only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("cfg.Validate: %w", err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if !slices.Contains(stores, c.Store) {
		return fmt.Errorf("unknown store %q, want one of %v", c.Store, stores)
	}
	if !slices.Contains(catalogs, c.Catalog) {
		return fmt.Errorf("unknown catalog %q, want one of %v", c.Catalog, catalogs)
	}
	if c.CartKey == "" {
		return fmt.Errorf("cart key is empty")
	}
	if c.PageSize < 1 {
		return fmt.Errorf("page size must be positive, got %d", c.PageSize)
	}
	if c.TaxRate.IsNegative() {
		return fmt.Errorf("tax rate is negative")
	}
	if c.ShippingFee.IsNegative() {
		return fmt.Errorf("shipping fee is negative")
	}
	if c.Store == StorePostgres && c.PostgresDSN == "" {
		return fmt.Errorf("postgres store needs BOOKVERSE_POSTGRES_DSN")
	}
	if c.Catalog == CatalogPostgres && c.PostgresDSN == "" {
		return fmt.Errorf("postgres catalog needs BOOKVERSE_POSTGRES_DSN")
	}
	if c.Store == StoreRedis && c.RedisURL == "" {
		return fmt.Errorf("redis store needs BOOKVERSE_REDIS_URL")
	}
	if c.Store == StoreSQLite && c.SQLitePath == "" {
		return fmt.Errorf("sqlite store needs BOOKVERSE_SQLITE_PATH")
	}
	return nil
}

// SlotKey is the key the cart is stored under, scoped to the session when one is set.
func (c Config) SlotKey() string {
	return repository.SessionKey(c.CartKey, c.SessionID)
}

func (c Config) Pricing() cart.Pricing {
	return cart.Pricing{
		TaxRate:     c.TaxRate,
		ShippingFee: domain.USD(c.ShippingFee),
	}
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
