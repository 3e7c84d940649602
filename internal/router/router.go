package router

import (
	"net/http"

	"product-catalog/internal/handler"
	"product-catalog/internal/middleware"

	"github.com/rs/zerolog"
)

// Options carries the request-policy settings the router applies.
type Options struct {
	APIKey        string
	AllowedOrigin string
}

// New creates a new HTTP router with all routes and middleware configured.
func New(productHandler *handler.ProductHandler, opts Options, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()
	notFound := handler.NotFound(logger)

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", handler.Health)

	// /products serves both the listing and creation; the trailing slash
	// variant is accepted so proxies that append one keep working.
	productsRoute := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products" && r.URL.Path != "/products/" {
			notFound(w, r)
			return
		}
		productHandler.Collection(w, r)
	}
	mux.HandleFunc("/products", productsRoute)
	mux.HandleFunc("/products/", productsRoute)
	mux.HandleFunc("/products/search", productHandler.Search)

	// "/" is the mux catch-all, so only the exact root is acknowledged.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			notFound(w, r)
			return
		}
		handler.Root(w, r)
	})

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS -> APIKeyAuth
	var h http.Handler = mux
	h = middleware.APIKeyAuth(opts.APIKey, logger)(h)
	h = middleware.CORS(opts.AllowedOrigin)(h)
	h = middleware.Logging(logger)(h)
	h = middleware.RequestID(h)
	h = middleware.Recovery(logger)(h)

	return h
}
