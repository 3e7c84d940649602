package integration

import (
	"context"
	"testing"
	"time"

	"product-catalog/internal/config"
	"product-catalog/internal/database"
	"product-catalog/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool with
// the products schema in place.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	// The mapped port is random, so connect through the URL the container reports.
	dbConfig := config.DatabaseConfig{
		URL:             connStr,
		MaxConnections:  10,
		MinConnections:  2,
		MaxConnLifetime: 300,
	}

	logger := zerolog.Nop()
	pool, err := database.NewPool(ctx, dbConfig, logger)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := repository.EnsureSchema(ctx, pool, logger); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// seedBase is the creation time of the oldest seeded product.
var seedBase = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

// SeedProducts inserts five products created an hour apart, oldest first.
func SeedProducts(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	products := []struct {
		name        string
		price       decimal.Decimal
		description string
		imageURL    *string
	}{
		{"Office Chair", decimal.RequireFromString("149.99"), "Ergonomic mesh chair for work", nil},
		{"Oak Bookcase", decimal.RequireFromString("89.50"), "Five shelves of solid oak", nil},
		{"Desk Lamp", decimal.RequireFromString("19.99"), "LED light with 100% brightness dial", nil},
		{"Three Seater Sofa", decimal.RequireFromString("499.00"), "Navy fabric, seats the family", nil},
		{"Bar Stool", decimal.RequireFromString("45.00"), "Brushed steel frame", nil},
	}

	for i, p := range products {
		_, err := pool.Exec(ctx,
			"INSERT INTO products (name, price, description, image_url, created_at) VALUES ($1, $2, $3, $4, $5)",
			p.name, p.price, p.description, p.imageURL, seedBase.Add(time.Duration(i)*time.Hour),
		)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.name, err)
		}
	}
}

// CleanupDB removes every product and resets the id sequence.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), "TRUNCATE products RESTART IDENTITY"); err != nil {
		t.Fatalf("failed to clean products: %v", err)
	}
}

// CountProducts returns the number of stored products.
func CountProducts(t *testing.T, pool *pgxpool.Pool) int {
	t.Helper()

	var n int
	if err := pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM products").Scan(&n); err != nil {
		t.Fatalf("failed to count products: %v", err)
	}
	return n
}
