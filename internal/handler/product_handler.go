package handler

import (
	"encoding/json"
	"net/http"

	"product-catalog/internal/model"
	"product-catalog/internal/service"

	"github.com/rs/zerolog"
)

// maxBodyBytes bounds the size of a create request body.
const maxBodyBytes = 1 << 20

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// Collection dispatches /products by method.
func (h *ProductHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.List(w, r)
	case http.MethodPost:
		h.Create(w, r)
	default:
		methodNotAllowed(w, r, "GET, POST", h.logger)
	}
}

// List handles GET /products requests.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet, h.logger)
		return
	}

	products, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "list_products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, nonNil(products))
}

// Create handles POST /products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost, h.logger)
		return
	}

	var req model.CreateProductRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		h.logger.Debug().Err(err).Msg("failed to decode create request")
		writeError(w, r, http.StatusBadRequest, model.ErrInvalidJSON.Code, model.ErrInvalidJSON.Message, h.logger)
		return
	}

	product, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err, "create_product", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// Search handles GET /products/search?term= requests.
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet, h.logger)
		return
	}

	products, err := h.service.Search(r.Context(), r.URL.Query().Get("term"))
	if err != nil {
		writeServiceError(w, r, err, "search_products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, nonNil(products))
}

// nonNil makes an empty result encode as [] rather than null.
func nonNil(products []model.Product) []model.Product {
	if products == nil {
		return []model.Product{}
	}
	return products
}
