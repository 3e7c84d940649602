package repository

import (
	"context"
	"fmt"
	"strings"

	"product-catalog/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const productColumns = `id, name, price, description, image_url, created_at`

// likeEscaper escapes LIKE metacharacters so a search term matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// ListAll retrieves every product ordered by creation time, newest first.
func (r *productRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Str("operation", "list_all").Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	return r.collect(rows, "list_all")
}

// Insert stores a new product and returns the persisted row.
func (r *productRepository) Insert(ctx context.Context, name string, price decimal.Decimal, description string, imageURL *string) (*model.Product, error) {
	query := `
		INSERT INTO products (name, price, description, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + productColumns

	var p model.Product
	err := r.pool.QueryRow(ctx, query, name, price, description, imageURL).
		Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.ImageURL, &p.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).
			Str("operation", "insert").
			Str("name", name).
			Msg("failed to insert product")
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	r.logger.Debug().Int64("product_id", p.ID).Msg("product inserted")

	return &p, nil
}

// SearchByTerm retrieves products whose name or description contains term
// as a case-insensitive substring, newest first.
func (r *productRepository) SearchByTerm(ctx context.Context, term string) ([]model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE name ILIKE $1 OR description ILIKE $1
		ORDER BY created_at DESC, id DESC
	`

	pattern := "%" + likeEscaper.Replace(term) + "%"

	rows, err := r.pool.Query(ctx, query, pattern)
	if err != nil {
		r.logger.Error().Err(err).
			Str("operation", "search_by_term").
			Str("term", term).
			Msg("failed to search products")
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	return r.collect(rows, "search_by_term")
}

// collect scans product rows and closes them. The result is never nil.
func (r *productRepository) collect(rows pgx.Rows, operation string) ([]model.Product, error) {
	defer rows.Close()

	products := make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.ImageURL, &p.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Str("operation", operation).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Str("operation", operation).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
