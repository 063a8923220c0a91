package repository_test

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	postgresContainer, err := postgres.Run(ctx, "postgres:17.6-alpine3.22",
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(
			"../migrations/01_medicines.up.sql",
			"../migrations/02_cart_items.up.sql"),
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

// insertMedicine seeds one catalog row directly. The catalog is read-only
// from the cart's perspective, so tests write it with plain SQL.
func insertMedicine(ctx context.Context, pool *pgxpool.Pool, name string, price decimal.Decimal, inStock bool) (uuid.UUID, error) {
	id := uuid.New()

	_, err := pool.Exec(ctx,
		`INSERT INTO medicines (id, name, category, price_amount, price_currency, in_stock)
         VALUES ($1, $2, 'pain_relief', $3, 'USD', $4)`,
		id, name, price, inStock)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert medicine: %w", err)
	}

	return id, nil
}
