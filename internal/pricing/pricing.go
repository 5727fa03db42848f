// Package pricing implements the order pricing engine: per-line discount
// calculation, order aggregation and cash settlement. All functions are pure
// and operate on decimal amounts so that totals are exact and independent of
// summation order.
package pricing

import (
	"order-desk/internal/model"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	zero    = decimal.Zero
)

// ItemPrice computes the discounted price of a single cart line item.
// A missing promotion, the reserved NONE code and the none kind all yield the
// undiscounted subtotal. Percentage and fixed discounts are clamped so the
// result is never negative. An unrecognised promotion kind returns
// model.ErrUnknownPromotionKind: it indicates a corrupted catalogue record
// and must not silently fall through to full price.
func ItemPrice(item model.CartItem) (decimal.Decimal, error) {
	base := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))

	promo := item.Promotion
	if promo.IsNone() {
		return base.Round(2), nil
	}

	switch promo.Kind {
	case model.PromotionPercentage:
		discounted := base.Mul(hundred.Sub(promo.Value)).Div(hundred)
		return floorAtZero(discounted).Round(2), nil
	case model.PromotionFixed:
		return floorAtZero(base.Sub(promo.Value)).Round(2), nil
	default:
		return zero, model.ErrUnknownPromotionKind
	}
}

// OrderTotal sums the discounted price of every line item in the cart.
// Decimal addition is exact, so the result does not depend on item order.
func OrderTotal(items []model.CartItem) (decimal.Decimal, error) {
	total := zero
	for _, item := range items {
		price, err := ItemPrice(item)
		if err != nil {
			return zero, err
		}
		total = total.Add(price)
	}
	return total, nil
}

// ItemCount returns the sum of quantities across all line items.
// Used for display only, never for pricing.
func ItemCount(items []model.CartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

// floorAtZero clamps negative amounts to zero.
func floorAtZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return zero
	}
	return d
}
