package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/nikolayk812/bookverse/internal/cart"
	"github.com/nikolayk812/bookverse/internal/catalog"
	"github.com/nikolayk812/bookverse/internal/config"
	"github.com/nikolayk812/bookverse/internal/domain"
	"github.com/nikolayk812/bookverse/internal/port"
	"github.com/nikolayk812/bookverse/internal/repository"
)

const usage = `usage: bookverse <command> [arguments]

commands:
  books [-genre g] [-price p] [-rating r] [-q text] [-sort key] [-page n]
  cart
  add ID
  remove ID
  qty ID N
  clear
  checkout
  migrate
  seed`

var errUsage = errors.New(usage)

func run(ctx context.Context, cfg config.Config, logger *slog.Logger, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, args := args[0], args[1:]

	switch cmd {
	case "migrate":
		return runMigrate(ctx, cfg, logger)
	case "seed":
		return runSeed(ctx, cfg, logger, out)
	}

	b, err := openBackend(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("openBackend: %w", err)
	}
	defer b.Close()

	if cmd == "books" {
		return runBooks(ctx, cfg, b.catalog, args, out)
	}

	store := cart.NewStore(
		repository.NewCart(b.slot, logger),
		b.catalog,
		cart.WithKey(cfg.SlotKey()),
		cart.WithPricing(cfg.Pricing()),
		cart.WithLogger(logger),
		cart.WithObserver(badgeObserver(out)),
	)

	switch cmd {
	case "cart":
		return printCart(out, store, store.Cart(ctx))
	case "add":
		id, err := intArg(args, 0, "ID")
		if err != nil {
			return err
		}
		if err := store.AddItem(ctx, id); err != nil {
			return fmt.Errorf("store.AddItem: %w", err)
		}
		fmt.Fprintln(out, "Book added to cart!")
		return nil
	case "remove":
		id, err := intArg(args, 0, "ID")
		if err != nil {
			return err
		}
		if err := store.RemoveItem(ctx, id); err != nil {
			return fmt.Errorf("store.RemoveItem: %w", err)
		}
		return nil
	case "qty":
		id, err := intArg(args, 0, "ID")
		if err != nil {
			return err
		}
		if len(args) < 2 {
			return fmt.Errorf("qty needs ID and N")
		}
		if err := store.SetQuantityInput(ctx, id, args[1]); err != nil {
			return fmt.Errorf("store.SetQuantityInput: %w", err)
		}
		return nil
	case "clear":
		if err := store.Clear(ctx); err != nil {
			return fmt.Errorf("store.Clear: %w", err)
		}
		return nil
	case "checkout":
		return checkout(ctx, out, store)
	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}
}

func runBooks(ctx context.Context, cfg config.Config, source port.CatalogRepository, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("books", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var genres, prices, ratings listFlag
	fs.Var(&genres, "genre", "genre, repeatable or comma separated")
	fs.Var(&prices, "price", "price bracket such as 20-30 or 60+")
	fs.Var(&ratings, "rating", "minimum rating")
	search := fs.String("q", "", "title or author search")
	sortKey := fs.String("sort", "", "default, price-low, price-high, rating or name")
	page := fs.Int("page", 1, "page number")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("books: %w", err)
	}

	criteria, err := parseCriteria(genres, prices, ratings, *search, *sortKey)
	if err != nil {
		return err
	}

	books, err := source.ListBooks(ctx)
	if err != nil {
		return fmt.Errorf("catalog.ListBooks: %w", err)
	}

	engine := catalog.NewEngine(books, catalog.WithPageSize(cfg.PageSize))

	var state catalog.QueryState
	result := engine.Apply(&state, criteria)
	if *page != 1 {
		if result, err = engine.GoToPage(&state, *page); err != nil {
			return fmt.Errorf("engine.GoToPage: %w", err)
		}
	}

	return printBooks(out, result)
}

func parseCriteria(genres, prices, ratings []string, search, sortKey string) (domain.FilterCriteria, error) {
	criteria := domain.FilterCriteria{SearchText: search}

	for _, g := range genres {
		genre, err := domain.ParseGenre(g)
		if err != nil {
			return domain.FilterCriteria{}, fmt.Errorf("domain.ParseGenre: %w", err)
		}
		criteria.Genres = append(criteria.Genres, genre)
	}

	for _, p := range prices {
		r, err := domain.ParsePriceRange(p)
		if err != nil {
			return domain.FilterCriteria{}, fmt.Errorf("domain.ParsePriceRange: %w", err)
		}
		criteria.PriceRanges = append(criteria.PriceRanges, r)
	}

	for _, r := range ratings {
		n, err := strconv.Atoi(r)
		if err != nil || n < 0 || n > domain.MaxRating {
			return domain.FilterCriteria{}, fmt.Errorf("rating %q must be a whole number from 0 to %d", r, domain.MaxRating)
		}
		criteria.MinRatings = append(criteria.MinRatings, n)
	}

	key, err := domain.ParseSortKey(sortKey)
	if err != nil {
		return domain.FilterCriteria{}, fmt.Errorf("domain.ParseSortKey: %w", err)
	}
	criteria.Sort = key

	return criteria, nil
}

func checkout(ctx context.Context, out io.Writer, store *cart.Store) error {
	err := store.Checkout(ctx)
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		fmt.Fprintln(out, "Your cart is empty!")
		return nil
	case errors.Is(err, domain.ErrCheckoutUnavailable):
		fmt.Fprintln(out, "Checkout is not available yet.")
		return nil
	default:
		return err
	}
}

func runMigrate(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	pool, err := openPostgres(ctx, cfg.PostgresDSN)
	if err != nil {
		return fmt.Errorf("openPostgres: %w", err)
	}
	defer pool.Close()

	if err := repository.MigratePostgres(ctx, pool); err != nil {
		return fmt.Errorf("repository.MigratePostgres: %w", err)
	}

	logger.InfoContext(ctx, "postgres migrations applied")
	return nil
}

func runSeed(ctx context.Context, cfg config.Config, logger *slog.Logger, out io.Writer) error {
	books, err := loadBooks(cfg.CatalogFile)
	if err != nil {
		return err
	}

	pool, err := openPostgres(ctx, cfg.PostgresDSN)
	if err != nil {
		return fmt.Errorf("openPostgres: %w", err)
	}
	defer pool.Close()

	n, err := repository.NewPostgresCatalog(pool).UpsertBooks(ctx, books)
	if err != nil {
		return fmt.Errorf("catalog.UpsertBooks: %w", err)
	}

	logger.InfoContext(ctx, "catalog seeded", "books", n)
	fmt.Fprintf(out, "Seeded %d books.\n", n)
	return nil
}

func intArg(args []string, i int, name string) (int, error) {
	if len(args) <= i {
		return 0, fmt.Errorf("missing %s", name)
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("%s %q is not a number", name, args[i])
	}
	return n, nil
}

// listFlag collects a flag given several times or as a comma separated list.
type listFlag []string

func (l *listFlag) String() string {
	return strings.Join(*l, ",")
}

func (l *listFlag) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*l = append(*l, part)
		}
	}
	return nil
}
