// Package router wires the HTTP endpoints to their handlers and applies the
// middleware chain.
package router

import (
	"net/http"

	"order-desk/internal/handler"
	"order-desk/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	promotionHandler *handler.PromotionHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Catalogue
	mux.HandleFunc("GET /api/products", productHandler.GetAll)
	mux.HandleFunc("GET /api/products/{id}", productHandler.GetByID)
	mux.HandleFunc("GET /api/promotions", promotionHandler.GetAll)

	// Cart sessions
	mux.HandleFunc("POST /api/carts", cartHandler.Create)
	mux.HandleFunc("GET /api/carts/{id}", cartHandler.Get)
	mux.HandleFunc("POST /api/carts/{id}/items", cartHandler.AddItem)
	mux.HandleFunc("PUT /api/carts/{id}/items/{productID}", cartHandler.UpdateItem)
	mux.HandleFunc("DELETE /api/carts/{id}/items/{productID}", cartHandler.RemoveItem)

	// Orders
	mux.HandleFunc("POST /api/carts/{id}/checkout", orderHandler.Checkout)
	mux.HandleFunc("GET /api/orders/{id}", orderHandler.GetByID)

	// Apply middleware in order: Recovery -> Logging -> CORS -> APIKeyAuth
	var h http.Handler = mux
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
