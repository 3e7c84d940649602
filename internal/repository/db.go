package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// Executor is the subset of pgxpool.Pool needed to run DDL.
type Executor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Schema is the DDL for the products table. It is safe to run repeatedly.
const Schema = `
	CREATE TABLE IF NOT EXISTS products (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		price DECIMAL(10, 2) NOT NULL,
		description TEXT NOT NULL,
		image_url TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC);
`

// EnsureSchema creates the products table if it does not already exist.
// It does not migrate or alter an existing table.
func EnsureSchema(ctx context.Context, db Executor, logger zerolog.Logger) error {
	if _, err := db.Exec(ctx, Schema); err != nil {
		logger.Error().Err(err).Str("operation", "ensure_schema").Msg("failed to initialise database schema")
		return fmt.Errorf("failed to initialise database schema: %w", err)
	}

	logger.Info().Msg("database schema initialised")
	return nil
}
