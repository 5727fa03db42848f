package repository

import (
	"context"

	"order-desk/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProductRepository defines the interface for product catalogue data access.
type ProductRepository interface {
	// GetAll retrieves all products with pagination support.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by its ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// GetByIDs retrieves multiple products by their IDs.
	GetByIDs(ctx context.Context, ids []string) ([]model.Product, error)
}

// PromotionRepository defines the interface for promotion catalogue data access.
type PromotionRepository interface {
	// GetAll retrieves all promotions.
	GetAll(ctx context.Context) ([]model.Promotion, error)

	// GetByCode retrieves a single promotion by its code.
	GetByCode(ctx context.Context, code string) (*model.Promotion, error)
}

// OrderRepository defines the interface for order snapshot persistence.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order snapshot within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.OrderDetails) error

	// CreateOrderItems inserts the order's priced line items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order snapshot by its ID along with its items.
	GetByID(ctx context.Context, id uuid.UUID) (*model.OrderDetails, error)
}
