package service

import (
	"context"

	"order-desk/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductService defines read operations over the product catalogue.
type ProductService interface {
	// GetAll retrieves catalogue products with pagination.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)
}

// PromotionService defines read operations over the promotion catalogue.
type PromotionService interface {
	// GetAll retrieves all promotions.
	GetAll(ctx context.Context) ([]model.Promotion, error)
}

// CartLineView is a cart line item together with its discounted price.
type CartLineView struct {
	model.CartItem
	LinePrice decimal.Decimal `json:"linePrice"`
}

// CartView is a cart snapshot with derived pricing, recomputed on every
// read so displayed totals are never stale.
type CartView struct {
	ID          uuid.UUID       `json:"id"`
	Items       []CartLineView  `json:"items"`
	ItemCount   int             `json:"itemCount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// ItemUpdate carries the optional mutations for a cart line item. Nil fields
// are left unchanged.
type ItemUpdate struct {
	Quantity    *int             `json:"quantity,omitempty"`
	UnitPrice   *decimal.Decimal `json:"unitPrice,omitempty"`
	PromotionID *string          `json:"promotionId,omitempty"`
}

// CartService defines operations for cart session management.
type CartService interface {
	// Create starts a new empty cart session.
	Create(ctx context.Context) (*CartView, error)

	// Get retrieves a cart with derived pricing.
	Get(ctx context.Context, cartID uuid.UUID) (*CartView, error)

	// AddItem adds a catalogue product to the cart, incrementing the
	// quantity when the product is already present.
	AddItem(ctx context.Context, cartID uuid.UUID, productID string) (*CartView, error)

	// UpdateItem applies quantity/price/promotion changes to a line item.
	UpdateItem(ctx context.Context, cartID uuid.UUID, productID string, upd ItemUpdate) (*CartView, error)

	// RemoveItem removes a line item from the cart.
	RemoveItem(ctx context.Context, cartID uuid.UUID, productID string) (*CartView, error)
}

// OrderService defines operations for order submission.
type OrderService interface {
	// Checkout validates the request, gates submission, settles payment,
	// persists the order snapshot and resets the cart.
	Checkout(ctx context.Context, cartID uuid.UUID, req *model.CheckoutRequest) (*model.OrderDetails, error)

	// GetByID retrieves a persisted order snapshot.
	GetByID(ctx context.Context, id uuid.UUID) (*model.OrderDetails, error)
}
