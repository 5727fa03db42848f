package service

import (
	"context"
	"fmt"

	"order-desk/internal/cart"
	"order-desk/internal/catalog"
	"order-desk/internal/model"
	"order-desk/internal/pricing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// cartService implements CartService on top of the session store and the
// catalogue snapshot.
type cartService struct {
	store   *cart.Store
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(store *cart.Store, cat *catalog.Catalog, logger zerolog.Logger) CartService {
	return &cartService{
		store:   store,
		catalog: cat,
		logger:  logger.With().Str("service", "cart").Logger(),
	}
}

// Create starts a new empty cart session.
func (s *cartService) Create(ctx context.Context) (*CartView, error) {
	c := s.store.Create()

	s.logger.Info().Str("cart_id", c.ID.String()).Msg("cart session created")

	return s.view(c)
}

// Get retrieves a cart with derived pricing.
func (s *cartService) Get(ctx context.Context, cartID uuid.UUID) (*CartView, error) {
	c, err := s.store.Get(cartID)
	if err != nil {
		return nil, err
	}

	return s.view(c)
}

// AddItem adds a catalogue product to the cart. Re-adding an existing
// product increments its quantity rather than duplicating the line.
func (s *cartService) AddItem(ctx context.Context, cartID uuid.UUID, productID string) (*CartView, error) {
	product, err := s.catalog.Product(productID)
	if err != nil {
		s.logger.Warn().Str("product_id", productID).Msg("product not in catalogue")
		return nil, err
	}

	item, err := s.store.AddItem(cartID, *product, s.catalog.NonePromotion())
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("cart_id", cartID.String()).
		Str("product_id", productID).
		Int("quantity", item.Quantity).
		Msg("item added to cart")

	return s.Get(ctx, cartID)
}

// UpdateItem applies quantity, unit price and promotion changes to a line item.
func (s *cartService) UpdateItem(ctx context.Context, cartID uuid.UUID, productID string, upd ItemUpdate) (*CartView, error) {
	if upd.Quantity != nil {
		if err := s.store.UpdateQuantity(cartID, productID, *upd.Quantity); err != nil {
			return nil, err
		}
	}

	if upd.UnitPrice != nil {
		if err := s.store.UpdatePrice(cartID, productID, *upd.UnitPrice); err != nil {
			return nil, err
		}
	}

	if upd.PromotionID != nil {
		promo, err := s.catalog.Promotion(*upd.PromotionID)
		if err != nil {
			s.logger.Warn().Str("promotion_id", *upd.PromotionID).Msg("promotion not in catalogue")
			return nil, err
		}
		if err := s.store.SetPromotion(cartID, productID, promo); err != nil {
			return nil, err
		}
	}

	return s.Get(ctx, cartID)
}

// RemoveItem removes a line item from the cart.
func (s *cartService) RemoveItem(ctx context.Context, cartID uuid.UUID, productID string) (*CartView, error) {
	if err := s.store.RemoveItem(cartID, productID); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("cart_id", cartID.String()).
		Str("product_id", productID).
		Msg("item removed from cart")

	return s.Get(ctx, cartID)
}

// view derives line prices, item count and the order total for a cart
// snapshot. Totals are recomputed on every call, never cached.
func (s *cartService) view(c model.Cart) (*CartView, error) {
	view := &CartView{
		ID:        c.ID,
		Items:     make([]CartLineView, len(c.Items)),
		ItemCount: pricing.ItemCount(c.Items),
	}

	for i, item := range c.Items {
		price, err := pricing.ItemPrice(item)
		if err != nil {
			s.logger.Error().
				Err(err).
				Str("cart_id", c.ID.String()).
				Str("product_id", item.ProductID).
				Msg("failed to price cart item")
			return nil, fmt.Errorf("failed to price cart item %s: %w", item.ProductID, err)
		}
		view.Items[i] = CartLineView{CartItem: item, LinePrice: price}
	}

	total, err := pricing.OrderTotal(c.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to total cart: %w", err)
	}
	view.TotalAmount = total

	return view, nil
}
