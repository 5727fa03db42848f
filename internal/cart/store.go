// Package cart holds the in-memory cart sessions mutated by the order form.
// Each cart is owned by a single session; the store lock only guards the
// session map and per-cart slices against concurrent HTTP requests.
package cart

import (
	"sync"

	"order-desk/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Store manages cart sessions keyed by session ID.
type Store struct {
	mu     sync.RWMutex
	carts  map[uuid.UUID]*model.Cart
	logger zerolog.Logger
}

// NewStore creates an empty cart session store.
func NewStore(logger zerolog.Logger) *Store {
	return &Store{
		carts:  make(map[uuid.UUID]*model.Cart),
		logger: logger.With().Str("component", "cart-store").Logger(),
	}
}

// Create starts a new empty cart session and returns its snapshot.
func (s *Store) Create() model.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &model.Cart{ID: uuid.New()}
	s.carts[c.ID] = c

	s.logger.Debug().Str("cart_id", c.ID.String()).Msg("cart session created")

	return snapshot(c)
}

// Get returns a snapshot of the cart with the given session ID.
func (s *Store) Get(id uuid.UUID) (model.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.carts[id]
	if !ok {
		return model.Cart{}, model.ErrCartNotFound
	}

	return snapshot(c), nil
}

// AddItem adds a product to the cart. The first add snapshots the catalogue
// product with quantity 1 and the given default promotion; re-adding the same
// product increments the existing line's quantity instead of duplicating it.
func (s *Store) AddItem(id uuid.UUID, product model.Product, defaultPromo *model.Promotion) (model.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[id]
	if !ok {
		return model.CartItem{}, model.ErrCartNotFound
	}

	if i := c.Find(product.ID); i >= 0 {
		c.Items[i].Quantity++
		s.logger.Debug().
			Str("cart_id", id.String()).
			Str("product_id", product.ID).
			Int("quantity", c.Items[i].Quantity).
			Msg("incremented cart item quantity")
		return c.Items[i], nil
	}

	item := model.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Quantity:  1,
		Promotion: defaultPromo,
	}
	c.Items = append(c.Items, item)

	s.logger.Debug().
		Str("cart_id", id.String()).
		Str("product_id", product.ID).
		Msg("added item to cart")

	return item, nil
}

// RemoveItem deletes the line item for the given product from the cart.
func (s *Store) RemoveItem(id uuid.UUID, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[id]
	if !ok {
		return model.ErrCartNotFound
	}

	i := c.Find(productID)
	if i < 0 {
		return model.ErrItemNotFound
	}

	c.Items = append(c.Items[:i], c.Items[i+1:]...)

	s.logger.Debug().
		Str("cart_id", id.String()).
		Str("product_id", productID).
		Msg("removed item from cart")

	return nil
}

// UpdateQuantity sets the quantity of an existing line item. Quantities
// below 1 are rejected, never clamped.
func (s *Store) UpdateQuantity(id uuid.UUID, productID string, quantity int) error {
	if quantity <= 0 {
		return model.ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[id]
	if !ok {
		return model.ErrCartNotFound
	}

	i := c.Find(productID)
	if i < 0 {
		return model.ErrItemNotFound
	}

	c.Items[i].Quantity = quantity
	return nil
}

// UpdatePrice overrides the unit price of an existing line item, allowing it
// to diverge from the catalogue price. Non-positive prices are rejected.
func (s *Store) UpdatePrice(id uuid.UUID, productID string, price decimal.Decimal) error {
	if !price.IsPositive() {
		return model.ErrInvalidPrice
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[id]
	if !ok {
		return model.ErrCartNotFound
	}

	i := c.Find(productID)
	if i < 0 {
		return model.ErrItemNotFound
	}

	c.Items[i].UnitPrice = price
	return nil
}

// SetPromotion applies a promotion to an existing line item.
func (s *Store) SetPromotion(id uuid.UUID, productID string, promo *model.Promotion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[id]
	if !ok {
		return model.ErrCartNotFound
	}

	i := c.Find(productID)
	if i < 0 {
		return model.ErrItemNotFound
	}

	c.Items[i].Promotion = promo
	return nil
}

// Reset empties the cart after a completed order, keeping the session alive.
func (s *Store) Reset(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[id]
	if !ok {
		return model.ErrCartNotFound
	}

	c.Items = nil

	s.logger.Debug().Str("cart_id", id.String()).Msg("cart reset")

	return nil
}

// snapshot copies a cart so callers never share the store's backing slice.
func snapshot(c *model.Cart) model.Cart {
	out := model.Cart{ID: c.ID}
	if len(c.Items) > 0 {
		out.Items = make([]model.CartItem, len(c.Items))
		copy(out.Items, c.Items)
	}
	return out
}
