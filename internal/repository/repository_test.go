package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/nikolayk812/bookverse/internal/domain"
	"github.com/nikolayk812/bookverse/internal/port"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/text/currency"
)

func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	postgresContainer, err := postgres.Run(ctx, "postgres:17.6-alpine3.22",
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", fmt.Errorf("pc.ConnectionString: %w", err)
	}

	return postgresContainer, connStr, nil
}

func startRedis(ctx context.Context) (testcontainers.Container, string, error) {
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7.4-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	if err != nil {
		return nil, "", fmt.Errorf("testcontainers.GenericContainer: %w", err)
	}

	endpoint, err := redisContainer.Endpoint(ctx, "")
	if err != nil {
		return nil, "", fmt.Errorf("rc.Endpoint: %w", err)
	}

	return redisContainer, "redis://" + endpoint + "/0", nil
}

// assertSlotContract checks the behaviour every StateSlot backend shares.
func assertSlotContract(t *testing.T, slot port.StateSlot) {
	t.Helper()
	ctx := t.Context()
	key := "test:" + gofakeit.UUID()

	_, err := slot.Load(ctx, key)
	require.ErrorIs(t, err, domain.ErrStateNotFound)

	require.NoError(t, slot.Save(ctx, key, []byte(`[{"id":1}]`)))
	got, err := slot.Load(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1}]`, string(got))

	require.NoError(t, slot.Save(ctx, key, []byte(`[]`)))
	got, err = slot.Load(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(got))

	_, err = slot.Load(ctx, "test:"+gofakeit.UUID())
	require.ErrorIs(t, err, domain.ErrStateNotFound)

	assert.EqualError(t, slot.Save(ctx, "", []byte(`[]`)), "key is empty")
}

func randomBook() domain.Book {
	return domain.Book{
		ID:     gofakeit.Number(1, 1_000_000),
		Title:  gofakeit.BookTitle(),
		Author: gofakeit.BookAuthor(),
		Price:  randomMoney(),
		Genre:  domain.Genres[gofakeit.Number(0, len(domain.Genres)-1)],
		Rating: float64(gofakeit.Number(0, 50)) / 10,
		Image:  gofakeit.URL(),
	}
}

func randomCart(n int) domain.Cart {
	var cart domain.Cart
	seen := make(map[int]struct{}, n)

	for len(cart.Items) < n {
		b := randomBook()
		if _, dup := seen[b.ID]; dup {
			continue
		}
		seen[b.ID] = struct{}{}

		item := domain.NewCartItem(b)
		item.Quantity = gofakeit.Number(1, 20)
		cart.Items = append(cart.Items, item)
	}

	return cart
}

func randomMoney() domain.Money {
	return domain.USD(decimal.NewFromFloat(gofakeit.Price(1, 100)).Round(2))
}

var cartCmpOpts = cmp.Options{
	cmp.Comparer(func(x, y currency.Unit) bool {
		return x.String() == y.String()
	}),
	cmpopts.EquateEmpty(),
}

func assertCart(t *testing.T, expected, actual domain.Cart) {
	t.Helper()

	diff := cmp.Diff(expected, actual, cartCmpOpts)
	assert.Empty(t, diff)
}
