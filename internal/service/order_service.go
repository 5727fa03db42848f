package service

import (
	"context"
	"fmt"
	"time"

	"order-desk/internal/cart"
	"order-desk/internal/model"
	"order-desk/internal/pricing"
	"order-desk/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	store     *cart.Store
	validate  *validator.Validate
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	store *cart.Store,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		store:     store,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// Checkout finalises a cart into an immutable order snapshot. The submission
// gate distinguishes an empty cart from insufficient cash so the caller can
// surface specific feedback; on success the snapshot is persisted in a single
// transaction and the cart is reset.
func (s *orderService) Checkout(ctx context.Context, cartID uuid.UUID, req *model.CheckoutRequest) (*model.OrderDetails, error) {
	if err := s.validateCheckoutRequest(req); err != nil {
		return nil, err
	}

	c, err := s.store.Get(cartID)
	if err != nil {
		s.logger.Warn().Str("cart_id", cartID.String()).Msg("checkout for unknown cart")
		return nil, err
	}

	total, err := pricing.OrderTotal(c.Items)
	if err != nil {
		// Unknown promotion kind: a catalogue-consistency bug, never user input.
		s.logger.Error().
			Err(err).
			Str("cart_id", cartID.String()).
			Msg("failed to total cart at checkout")
		return nil, err
	}

	if err := pricing.CheckSubmittable(c.Items, req.PaymentMethod, total, req.CashAmount); err != nil {
		s.logger.Warn().
			Str("cart_id", cartID.String()).
			Str("payment_method", string(req.PaymentMethod)).
			Str("total", total.String()).
			Str("tendered", req.CashAmount.String()).
			Err(err).
			Msg("submission blocked")
		return nil, err
	}

	settlement := pricing.Settle(req.PaymentMethod, total, req.CashAmount)

	// Freeze the cart into the order snapshot.
	now := time.Now()
	order := &model.OrderDetails{
		ID:            uuid.New(),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		PaymentMethod: req.PaymentMethod,
		CashAmount:    req.CashAmount,
		TotalAmount:   total,
		ChangeAmount:  settlement.ChangeDue,
		CreatedAt:     now,
	}

	order.Items = make([]model.OrderItem, len(c.Items))
	for i, item := range c.Items {
		linePrice, err := pricing.ItemPrice(item)
		if err != nil {
			return nil, err
		}

		promoCode := model.NoPromotionCode
		if item.Promotion != nil {
			promoCode = item.Promotion.Code
		}

		order.Items[i] = model.OrderItem{
			ID:            uuid.New(),
			OrderID:       order.ID,
			ProductID:     item.ProductID,
			Name:          item.Name,
			UnitPrice:     item.UnitPrice,
			Quantity:      item.Quantity,
			PromotionCode: promoCode,
			LinePrice:     linePrice,
		}
	}

	// Start transaction
	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, order.Items); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("item_count", len(order.Items)).
			Msg("failed to create order items")
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// The order is durable; the completed cart starts fresh.
	if resetErr := s.store.Reset(cartID); resetErr != nil {
		s.logger.Warn().Err(resetErr).Str("cart_id", cartID.String()).Msg("failed to reset cart after checkout")
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("cart_id", cartID.String()).
		Int("item_count", len(order.Items)).
		Str("total", total.String()).
		Str("change", settlement.ChangeDue.String()).
		Msg("order created successfully")

	return order, nil
}

// GetByID retrieves a persisted order snapshot.
func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*model.OrderDetails, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		s.logger.Debug().Str("order_id", id.String()).Msg("order not found")
		return nil, nil
	}

	return order, nil
}

// validateCheckoutRequest validates the customer and payment fields.
func (s *orderService) validateCheckoutRequest(req *model.CheckoutRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeValidation, "checkout request is nil")
	}

	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn().Err(err).Msg("checkout request validation failed")
		return model.NewDomainError(model.ErrCodeValidation, err.Error())
	}

	// The validator has no rule for decimal amounts; check the sign by hand.
	if req.PaymentMethod == model.PaymentCash && req.CashAmount.IsNegative() {
		return model.NewDomainError(model.ErrCodeValidation, "cash amount must not be negative")
	}

	return nil
}
