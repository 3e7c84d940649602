package service

import (
	"context"

	"product-catalog/internal/model"
)

// ProductService defines operations for product management.
type ProductService interface {
	// List retrieves every product, newest first.
	List(ctx context.Context) ([]model.Product, error)

	// Create validates the request and stores a new product.
	// Validation failures are returned as *model.DomainError before storage is touched.
	Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error)

	// Search retrieves products whose name or description contains term.
	Search(ctx context.Context, term string) ([]model.Product, error)
}
