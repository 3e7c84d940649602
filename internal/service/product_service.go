package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"product-catalog/internal/model"
	"product-catalog/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// priceScale is the number of fractional digits stored for a price.
const priceScale = 2

// maxPrice is the exclusive upper bound that fits a DECIMAL(10,2) column.
var maxPrice = decimal.New(1, 8)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	validate    *validator.Validate
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		validate:    validator.New(),
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves every product, newest first.
func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("operation", "list").Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("listed products")

	return products, nil
}

// Create validates the request and stores a new product.
func (s *productService) Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {
	if err := s.validateCreate(req); err != nil {
		return nil, err
	}

	price := req.Price.Round(priceScale)
	if price.GreaterThanOrEqual(maxPrice) {
		s.logger.Debug().Str("price", req.Price.String()).Msg("price exceeds storage precision")
		return nil, model.ErrPriceTooLarge
	}

	var imageURL *string
	if req.ImageURL != nil && strings.TrimSpace(*req.ImageURL) != "" {
		imageURL = req.ImageURL
	}

	product, err := s.productRepo.Insert(ctx, req.Name, price, req.Description, imageURL)
	if err != nil {
		s.logger.Error().Err(err).Str("operation", "create").Str("name", req.Name).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Int64("product_id", product.ID).
		Str("name", product.Name).
		Msg("product created")

	return product, nil
}

// Search retrieves products whose name or description contains term.
// The term is passed to storage as-is.
func (s *productService) Search(ctx context.Context, term string) ([]model.Product, error) {
	if strings.TrimSpace(term) == "" {
		s.logger.Debug().Msg("search term is empty")
		return nil, model.ErrMissingTerm
	}

	products, err := s.productRepo.SearchByTerm(ctx, term)
	if err != nil {
		s.logger.Error().Err(err).Str("operation", "search").Str("term", term).Msg("failed to search products")
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	s.logger.Debug().
		Str("term", term).
		Int("count", len(products)).
		Msg("searched products")

	return products, nil
}

// validateCreate checks required fields and the price range.
func (s *productService) validateCreate(req *model.CreateProductRequest) error {
	if req == nil {
		return model.ErrMissingFields
	}

	if err := s.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			fields := make([]string, 0, len(validationErrs))
			for _, fe := range validationErrs {
				fields = append(fields, strings.ToLower(fe.Field()))
			}
			s.logger.Debug().Strs("fields", fields).Msg("create request missing required fields")
			return model.ErrMissingFields
		}
		return fmt.Errorf("failed to validate request: %w", err)
	}

	if req.Price.IsNegative() {
		s.logger.Debug().Str("price", req.Price.String()).Msg("negative price rejected")
		return model.ErrInvalidPrice
	}

	return nil
}
