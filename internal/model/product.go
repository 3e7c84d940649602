package model

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a product in the catalogue.
type Product struct {
	ID          int64           `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Description string          `json:"description" db:"description"`
	ImageURL    *string         `json:"image_url" db:"image_url"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

// CreateProductRequest represents the request payload for creating a product.
type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Description string           `json:"description" validate:"required"`
	ImageURL    *string          `json:"imageUrl,omitempty"`
}

// UnmarshalJSON decodes the request, treating a blank price string as absent
// so that it fails the required check rather than decoding.
func (r *CreateProductRequest) UnmarshalJSON(data []byte) error {
	type plain CreateProductRequest
	aux := struct {
		*plain
		Price json.RawMessage `json:"price"`
	}{plain: (*plain)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	r.Price = nil
	raw := bytes.TrimSpace(aux.Price)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	var s string
	if json.Unmarshal(raw, &s) == nil && strings.TrimSpace(s) == "" {
		return nil
	}

	var price decimal.Decimal
	if err := price.UnmarshalJSON(raw); err != nil {
		return err
	}
	r.Price = &price
	return nil
}
