package pricing

import (
	"order-desk/internal/model"

	"github.com/shopspring/decimal"
)

// Settlement is the outcome of comparing a tendered amount against an order
// total. For non-cash payments Sufficient is always true and both amounts are
// zero. For cash, exactly one of ChangeDue and Shortfall is meaningful:
// ChangeDue when the payment covers the total, Shortfall when it does not.
type Settlement struct {
	Sufficient bool            `json:"sufficient"`
	ChangeDue  decimal.Decimal `json:"changeDue"`
	Shortfall  decimal.Decimal `json:"shortfall"`
}

// Settle determines payment sufficiency and change due. A zero or negative
// tendered amount against a nonzero total is an ordinary insufficiency case,
// not an error.
func Settle(method model.PaymentMethod, total, tendered decimal.Decimal) Settlement {
	if method != model.PaymentCash {
		return Settlement{Sufficient: true, ChangeDue: zero, Shortfall: zero}
	}

	if tendered.GreaterThanOrEqual(total) {
		return Settlement{
			Sufficient: true,
			ChangeDue:  tendered.Sub(total),
			Shortfall:  zero,
		}
	}

	return Settlement{
		Sufficient: false,
		ChangeDue:  zero,
		Shortfall:  total.Sub(tendered),
	}
}

// CheckSubmittable reports whether an order may be finalised: the cart must
// be non-empty, and for cash payments the tendered amount must cover the
// total. The two failure modes are distinct errors so callers can surface
// specific feedback.
func CheckSubmittable(items []model.CartItem, method model.PaymentMethod, total, tendered decimal.Decimal) error {
	if len(items) == 0 {
		return model.ErrEmptyCart
	}
	if method == model.PaymentCash && tendered.LessThan(total) {
		return model.ErrInsufficientCash
	}
	return nil
}
