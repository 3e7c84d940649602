package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"product-catalog/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) Insert(ctx context.Context, name string, price decimal.Decimal, description string, imageURL *string) (*model.Product, error) {
	args := m.Called(ctx, name, price, description, imageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) SearchByTerm(ctx context.Context, term string) ([]model.Product, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strPtr(s string) *string { return &s }

// priceEq matches a decimal argument numerically.
func priceEq(s string) interface{} {
	want := decimal.RequireFromString(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

func TestProductService_List(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	testProducts := []model.Product{
		{ID: 2, Name: "Sofa", Price: decimal.NewFromInt(300), Description: "plush", CreatedAt: time.Now()},
		{ID: 1, Name: "Lamp", Price: decimal.NewFromInt(20), Description: "desk", CreatedAt: time.Now()},
	}

	tests := []struct {
		name        string
		mockReturn  []model.Product
		mockError   error
		expectError bool
	}{
		{
			name:        "Success",
			mockReturn:  testProducts,
			expectError: false,
		},
		{
			name:        "Empty catalogue",
			mockReturn:  []model.Product{},
			expectError: false,
		},
		{
			name:        "Repository error",
			mockReturn:  nil,
			mockError:   errors.New("database error"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			service := NewProductService(mockRepo, logger)

			mockRepo.On("ListAll", ctx).Return(tt.mockReturn, tt.mockError)

			products, err := service.List(ctx)

			if tt.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.mockError)
				assert.Nil(t, products)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn, products)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProductService_Create(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	created := &model.Product{
		ID:          7,
		Name:        "Office Chair",
		Price:       decimal.RequireFromString("149.99"),
		Description: "ergonomic",
		CreatedAt:   time.Now(),
	}

	tests := []struct {
		name          string
		req           *model.CreateProductRequest
		expectRepo    bool
		expectedPrice string
		expectedImage *string
		mockError     error
		expectedErr   error
		expectError   bool
	}{
		{
			name: "Success with image",
			req: &model.CreateProductRequest{
				Name:        "Office Chair",
				Price:       decPtr("149.99"),
				Description: "ergonomic",
				ImageURL:    strPtr("https://img.example.com/c.png"),
			},
			expectRepo:    true,
			expectedPrice: "149.99",
			expectedImage: strPtr("https://img.example.com/c.png"),
		},
		{
			name: "Success without image",
			req: &model.CreateProductRequest{
				Name:        "Office Chair",
				Price:       decPtr("149.99"),
				Description: "ergonomic",
			},
			expectRepo:    true,
			expectedPrice: "149.99",
		},
		{
			name: "Empty image is stored as null",
			req: &model.CreateProductRequest{
				Name:        "Office Chair",
				Price:       decPtr("149.99"),
				Description: "ergonomic",
				ImageURL:    strPtr("  "),
			},
			expectRepo:    true,
			expectedPrice: "149.99",
		},
		{
			name: "Zero price is accepted",
			req: &model.CreateProductRequest{
				Name:        "Freebie",
				Price:       decPtr("0"),
				Description: "sample",
			},
			expectRepo:    true,
			expectedPrice: "0",
		},
		{
			name: "Price is rounded to two places",
			req: &model.CreateProductRequest{
				Name:        "Office Chair",
				Price:       decPtr("10.005"),
				Description: "ergonomic",
			},
			expectRepo:    true,
			expectedPrice: "10.01",
		},
		{
			name: "Missing name",
			req: &model.CreateProductRequest{
				Price:       decPtr("10"),
				Description: "ergonomic",
			},
			expectError: true,
			expectedErr: model.ErrMissingFields,
		},
		{
			name: "Missing price",
			req: &model.CreateProductRequest{
				Name:        "Office Chair",
				Description: "ergonomic",
			},
			expectError: true,
			expectedErr: model.ErrMissingFields,
		},
		{
			name: "Missing description",
			req: &model.CreateProductRequest{
				Name:  "Office Chair",
				Price: decPtr("10"),
			},
			expectError: true,
			expectedErr: model.ErrMissingFields,
		},
		{
			name:        "Nil request",
			req:         nil,
			expectError: true,
			expectedErr: model.ErrMissingFields,
		},
		{
			name: "Negative price",
			req: &model.CreateProductRequest{
				Name:        "Office Chair",
				Price:       decPtr("-1"),
				Description: "ergonomic",
			},
			expectError: true,
			expectedErr: model.ErrInvalidPrice,
		},
		{
			name: "Price overflows storage",
			req: &model.CreateProductRequest{
				Name:        "Yacht",
				Price:       decPtr("99999999.995"),
				Description: "big",
			},
			expectError: true,
			expectedErr: model.ErrPriceTooLarge,
		},
		{
			name: "Repository error",
			req: &model.CreateProductRequest{
				Name:        "Office Chair",
				Price:       decPtr("149.99"),
				Description: "ergonomic",
			},
			expectRepo:    true,
			expectedPrice: "149.99",
			mockError:     errors.New("database error"),
			expectError:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			service := NewProductService(mockRepo, logger)

			if tt.expectRepo {
				var ret interface{}
				if tt.mockError == nil {
					ret = created
				}
				mockRepo.On("Insert", ctx, tt.req.Name, priceEq(tt.expectedPrice), tt.req.Description, tt.expectedImage).
					Return(ret, tt.mockError)
			}

			product, err := service.Create(ctx, tt.req)

			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, product)
				if tt.expectedErr != nil {
					assert.Equal(t, tt.expectedErr, err)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, created, product)
			}

			if tt.expectRepo {
				mockRepo.AssertExpectations(t)
			} else {
				mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestProductService_Search(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	matches := []model.Product{
		{ID: 1, Name: "Office Chair", Price: decimal.NewFromInt(120), Description: "mesh"},
	}

	tests := []struct {
		name        string
		term        string
		expectRepo  bool
		mockReturn  []model.Product
		mockError   error
		expectError bool
		expectedErr error
	}{
		{
			name:       "Success",
			term:       "chair",
			expectRepo: true,
			mockReturn: matches,
		},
		{
			name:       "Term is passed literally",
			term:       " office chair ",
			expectRepo: true,
			mockReturn: []model.Product{},
		},
		{
			name:        "Empty term",
			term:        "",
			expectError: true,
			expectedErr: model.ErrMissingTerm,
		},
		{
			name:        "Whitespace term",
			term:        "   ",
			expectError: true,
			expectedErr: model.ErrMissingTerm,
		},
		{
			name:        "Repository error",
			term:        "chair",
			expectRepo:  true,
			mockError:   errors.New("database error"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			service := NewProductService(mockRepo, logger)

			if tt.expectRepo {
				mockRepo.On("SearchByTerm", ctx, tt.term).Return(tt.mockReturn, tt.mockError)
			}

			products, err := service.Search(ctx, tt.term)

			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, products)
				if tt.expectedErr != nil {
					assert.Equal(t, tt.expectedErr, err)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn, products)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
