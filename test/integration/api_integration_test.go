package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"order-desk/internal/cart"
	"order-desk/internal/catalog"
	"order-desk/internal/handler"
	"order-desk/internal/model"
	"order-desk/internal/repository"
	"order-desk/internal/router"
	"order-desk/internal/service"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-api-key"

// setupTestServer assembles the full HTTP stack against the test database,
// building the catalogue snapshot from the seeded tables.
func setupTestServer(t *testing.T, testDB *TestDB) http.Handler {
	t.Helper()

	logger := zerolog.Nop()
	ctx := context.Background()

	productRepo := repository.NewProductRepository(testDB.Pool, logger)
	promotionRepo := repository.NewPromotionRepository(testDB.Pool, logger)
	orderRepo := repository.NewOrderRepository(testDB.Pool, logger)

	products, err := productRepo.GetAll(ctx, 100, 0)
	require.NoError(t, err)
	promotions, err := promotionRepo.GetAll(ctx)
	require.NoError(t, err)

	cat, err := catalog.New(products, promotions)
	require.NoError(t, err)

	cartStore := cart.NewStore(logger)

	productService := service.NewProductService(cat, logger)
	promotionService := service.NewPromotionService(cat, logger)
	cartService := service.NewCartService(cartStore, cat, logger)
	orderService := service.NewOrderService(orderRepo, cartStore, logger)

	productHandler := handler.NewProductHandler(productService, logger)
	promotionHandler := handler.NewPromotionHandler(promotionService, logger)
	cartHandler := handler.NewCartHandler(cartService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)

	return router.New(productHandler, promotionHandler, cartHandler, orderHandler, testAPIKey, logger)
}

func doJSON(t *testing.T, server http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("X-API-Key", testAPIKey)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	server.ServeHTTP(w, req)
	return w
}

func TestCatalogAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	SeedCatalog(t, testDB.Pool)
	server := setupTestServer(t, testDB)

	t.Run("GET /api/products returns seeded products", func(t *testing.T) {
		w := doJSON(t, server, http.MethodGet, "/api/products", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var products []model.Product
		require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
		assert.Len(t, products, 5)
	})

	t.Run("GET /api/products/{id} returns a single product", func(t *testing.T) {
		w := doJSON(t, server, http.MethodGet, "/api/products/prod-laptop", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var product model.Product
		require.NoError(t, json.NewDecoder(w.Body).Decode(&product))
		assert.Equal(t, "Laptop", product.Name)
		assert.True(t, product.Price.Equal(decimal.NewFromInt(1200)))
	})

	t.Run("GET /api/promotions returns seeded promotions", func(t *testing.T) {
		w := doJSON(t, server, http.MethodGet, "/api/promotions", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var promotions []model.Promotion
		require.NoError(t, json.NewDecoder(w.Body).Decode(&promotions))
		assert.Len(t, promotions, 5)
	})

	t.Run("Requests without API key are rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Health check needs no API key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCheckoutFlow_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	SeedCatalog(t, testDB.Pool)
	server := setupTestServer(t, testDB)

	// Create a cart session.
	w := doJSON(t, server, http.MethodPost, "/api/carts", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var created service.CartView
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	cartPath := "/api/carts/" + created.ID.String()

	// Add a laptop and a smartphone; re-add the smartphone to bump quantity.
	w = doJSON(t, server, http.MethodPost, cartPath+"/items", map[string]string{"productId": "prod-laptop"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, server, http.MethodPost, cartPath+"/items", map[string]string{"productId": "prod-smartphone"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, server, http.MethodPost, cartPath+"/items", map[string]string{"productId": "prod-smartphone"})
	require.Equal(t, http.StatusOK, w.Code)

	var view service.CartView
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	require.Len(t, view.Items, 2)
	assert.Equal(t, 3, view.ItemCount)
	// 1200 + 2 x 800 at full price.
	assert.True(t, view.TotalAmount.Equal(decimal.RequireFromString("2800.00")),
		"total = %s", view.TotalAmount)

	// Apply SAVE10 to the laptop.
	w = doJSON(t, server, http.MethodPut, cartPath+"/items/prod-laptop",
		map[string]string{"promotionId": "promo-save10"})
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	assert.True(t, view.TotalAmount.Equal(decimal.RequireFromString("2680.00")),
		"total = %s", view.TotalAmount)

	// Insufficient cash blocks submission with 422.
	checkout := map[string]interface{}{
		"customerName":  "Jane Citizen",
		"customerEmail": "jane@example.com",
		"customerPhone": "0412345678",
		"paymentMethod": "cash",
		"cashAmount":    "2000",
	}
	w = doJSON(t, server, http.MethodPost, cartPath+"/checkout", checkout)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var errResp model.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&errResp))
	assert.Equal(t, model.ErrCodeInsufficientCash, errResp.Error)

	// Enough cash settles the order and returns the change.
	checkout["cashAmount"] = "2700"
	w = doJSON(t, server, http.MethodPost, cartPath+"/checkout", checkout)
	require.Equal(t, http.StatusCreated, w.Code)

	var order model.OrderDetails
	require.NoError(t, json.NewDecoder(w.Body).Decode(&order))
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("2680.00")))
	assert.True(t, order.ChangeAmount.Equal(decimal.RequireFromString("20.00")),
		"change = %s", order.ChangeAmount)
	require.Len(t, order.Items, 2)

	// The cart is reset after the order is created.
	w = doJSON(t, server, http.MethodGet, cartPath, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	assert.Empty(t, view.Items)

	// Checking out the now-empty cart fails the submission gate.
	w = doJSON(t, server, http.MethodPost, cartPath+"/checkout", checkout)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&errResp))
	assert.Equal(t, model.ErrCodeEmptyCart, errResp.Error)

	// The persisted order is readable back with identical amounts.
	w = doJSON(t, server, http.MethodGet, "/api/orders/"+order.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched model.OrderDetails
	require.NoError(t, json.NewDecoder(w.Body).Decode(&fetched))
	assert.Equal(t, order.ID, fetched.ID)
	assert.True(t, fetched.TotalAmount.Equal(order.TotalAmount))
	assert.True(t, fetched.ChangeAmount.Equal(order.ChangeAmount))
}
