package integration

import (
	"context"
	"testing"
	"time"

	"order-desk/internal/model"
	"order-desk/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewProductRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("GetAll returns seeded products", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalog(t, testDB.Pool)

		products, err := repo.GetAll(ctx, 10, 0)
		require.NoError(t, err)
		assert.Len(t, products, 5)
		assert.Equal(t, "Headphones", products[0].Name)
	})

	t.Run("GetAll with pagination", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalog(t, testDB.Pool)

		products, err := repo.GetAll(ctx, 2, 0)
		require.NoError(t, err)
		assert.Len(t, products, 2)

		products, err = repo.GetAll(ctx, 2, 4)
		require.NoError(t, err)
		assert.Len(t, products, 1)
	})

	t.Run("GetByID scans the price as a decimal", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalog(t, testDB.Pool)

		product, err := repo.GetByID(ctx, "prod-laptop")
		require.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, "Laptop", product.Name)
		assert.True(t, product.Price.Equal(decimal.NewFromInt(1200)),
			"price = %s", product.Price)
	})

	t.Run("GetByID returns nil for non-existent product", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		product, err := repo.GetByID(ctx, "prod-999")
		require.NoError(t, err)
		assert.Nil(t, product)
	})

	t.Run("GetByIDs returns multiple products", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalog(t, testDB.Pool)

		products, err := repo.GetByIDs(ctx, []string{"prod-laptop", "prod-monitor", "prod-keyboard"})
		require.NoError(t, err)
		assert.Len(t, products, 3)
	})
}

func TestPromotionRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewPromotionRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("GetAll returns seeded promotions", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalog(t, testDB.Pool)

		promotions, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, promotions, 5)
	})

	t.Run("GetByCode returns the promotion with its decimal value", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalog(t, testDB.Pool)

		promo, err := repo.GetByCode(ctx, "SAVE10")
		require.NoError(t, err)
		require.NotNil(t, promo)
		assert.Equal(t, model.PromotionPercentage, promo.Kind)
		assert.True(t, promo.Value.Equal(decimal.NewFromInt(10)))
	})

	t.Run("GetByCode returns nil for unknown code", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalog(t, testDB.Pool)

		promo, err := repo.GetByCode(ctx, "NOSUCHCODE")
		require.NoError(t, err)
		assert.Nil(t, promo)
	})
}

func TestOrderRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewOrderRepository(testDB.Pool, logger)

	ctx := context.Background()

	newOrder := func() *model.OrderDetails {
		orderID := uuid.New()
		order := &model.OrderDetails{
			ID:            orderID,
			CustomerName:  "Jane Citizen",
			CustomerEmail: "jane@example.com",
			CustomerPhone: "0412345678",
			PaymentMethod: model.PaymentCash,
			CashAmount:    decimal.NewFromInt(1900),
			TotalAmount:   decimal.RequireFromString("1880.00"),
			ChangeAmount:  decimal.RequireFromString("20.00"),
			CreatedAt:     time.Now(),
		}
		order.Items = []model.OrderItem{
			{
				ID:            uuid.New(),
				OrderID:       orderID,
				ProductID:     "prod-laptop",
				Name:          "Laptop",
				UnitPrice:     decimal.NewFromInt(1200),
				Quantity:      1,
				PromotionCode: "SAVE10",
				LinePrice:     decimal.RequireFromString("1080.00"),
			},
			{
				ID:            uuid.New(),
				OrderID:       orderID,
				ProductID:     "prod-smartphone",
				Name:          "Smartphone",
				UnitPrice:     decimal.NewFromInt(800),
				Quantity:      1,
				PromotionCode: model.NoPromotionCode,
				LinePrice:     decimal.RequireFromString("800.00"),
			},
		}
		return order
	}

	t.Run("CreateOrder and GetByID round-trip", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalog(t, testDB.Pool)

		order := newOrder()

		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		require.NoError(t, repo.CreateOrder(ctx, tx, order))
		require.NoError(t, repo.CreateOrderItems(ctx, tx, order.Items))
		require.NoError(t, tx.Commit(ctx))

		got, err := repo.GetByID(ctx, order.ID)
		require.NoError(t, err)
		require.NotNil(t, got)

		assert.Equal(t, order.ID, got.ID)
		assert.Equal(t, "Jane Citizen", got.CustomerName)
		assert.Equal(t, model.PaymentCash, got.PaymentMethod)
		assert.True(t, got.TotalAmount.Equal(order.TotalAmount), "total = %s", got.TotalAmount)
		assert.True(t, got.ChangeAmount.Equal(order.ChangeAmount), "change = %s", got.ChangeAmount)

		require.Len(t, got.Items, 2)
		// Items come back ordered by name.
		assert.Equal(t, "Laptop", got.Items[0].Name)
		assert.True(t, got.Items[0].LinePrice.Equal(decimal.RequireFromString("1080.00")))
		assert.Equal(t, "SAVE10", got.Items[0].PromotionCode)
		assert.Equal(t, "Smartphone", got.Items[1].Name)
	})

	t.Run("GetByID returns nil for unknown order", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		got, err := repo.GetByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Rollback leaves no rows behind", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalog(t, testDB.Pool)

		order := newOrder()

		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		require.NoError(t, repo.CreateOrder(ctx, tx, order))
		require.NoError(t, tx.Rollback(ctx))

		got, err := repo.GetByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
