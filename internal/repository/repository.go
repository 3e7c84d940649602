package repository

import (
	"context"

	"product-catalog/internal/model"

	"github.com/shopspring/decimal"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// ListAll retrieves every product, newest first.
	ListAll(ctx context.Context) ([]model.Product, error)

	// Insert stores a new product and returns the persisted row,
	// including the generated ID and creation timestamp.
	Insert(ctx context.Context, name string, price decimal.Decimal, description string, imageURL *string) (*model.Product, error)

	// SearchByTerm retrieves products whose name or description contains term,
	// ignoring case, newest first.
	SearchByTerm(ctx context.Context, term string) ([]model.Product, error)
}
