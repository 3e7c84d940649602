package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"product-catalog/internal/model"

	"github.com/rs/zerolog"
)

// Errors returned to callers. The underlying cause is wrapped for logging
// but the message is what a user should see.
var (
	ErrListFailed   = errors.New("Failed to fetch products. Please try again later.")
	ErrSearchFailed = errors.New("Failed to search products. Please try again later.")
	ErrCreateFailed = errors.New("Error adding product. Please try again.")
)

// DefaultBaseURL is the API address used during local development.
const DefaultBaseURL = "http://localhost:5000"

const maxResponseBytes = 8 << 20

// Client talks to the product API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithAPIKey sends key in X-API-Key on write requests.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a client for the API at baseURL.
func New(baseURL string, logger zerolog.Logger, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger.With().Str("component", "api-client").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// requestError carries the user-facing sentinel and the real cause.
type requestError struct {
	kind  error
	cause error
}

func (e *requestError) Error() string { return e.kind.Error() }

func (e *requestError) Unwrap() []error { return []error{e.kind, e.cause} }

// Cause returns the underlying failure behind a client error, or err itself.
func Cause(err error) error {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		return reqErr.cause
	}
	return err
}

// List fetches every product.
func (c *Client) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, http.StatusOK, &products); err != nil {
		c.logger.Error().Err(err).Msg("failed to fetch products")
		return nil, &requestError{kind: ErrListFailed, cause: err}
	}
	return nonNil(products), nil
}

// Search asks the server for products whose name or description contains term.
func (c *Client) Search(ctx context.Context, term string) ([]model.Product, error) {
	path := "/products/search?" + url.Values{"term": {term}}.Encode()

	var products []model.Product
	if err := c.do(ctx, http.MethodGet, path, nil, http.StatusOK, &products); err != nil {
		c.logger.Error().Err(err).Str("term", term).Msg("failed to search products")
		return nil, &requestError{kind: ErrSearchFailed, cause: err}
	}
	return nonNil(products), nil
}

// Create submits a new product and returns the stored record.
func (c *Client) Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, &requestError{kind: ErrCreateFailed, cause: err}
	}

	var product model.Product
	if err := c.do(ctx, http.MethodPost, "/products", body, http.StatusCreated, &product); err != nil {
		c.logger.Error().Err(err).Msg("failed to create product")
		return nil, &requestError{kind: ErrCreateFailed, cause: err}
	}
	return &product, nil
}

// StatusError reports a non-success response from the API.
type StatusError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, want int, out interface{}) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		if c.apiKey != "" {
			req.Header.Set("X-API-Key", c.apiKey)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	limited := io.LimitReader(resp.Body, maxResponseBytes)
	if resp.StatusCode != want {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		var errBody model.ErrorResponse
		if json.NewDecoder(limited).Decode(&errBody) == nil {
			statusErr.Message = errBody.Error
			statusErr.Code = errBody.Code
		}
		return statusErr
	}

	if err := json.NewDecoder(limited).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func nonNil(products []model.Product) []model.Product {
	if products == nil {
		return []model.Product{}
	}
	return products
}
