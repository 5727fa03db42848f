package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PromotionKind classifies a discount rule.
type PromotionKind string

const (
	// PromotionPercentage discounts a percentage of the line subtotal.
	PromotionPercentage PromotionKind = "percentage"
	// PromotionFixed discounts a fixed currency amount from the line subtotal.
	PromotionFixed PromotionKind = "fixed"
	// PromotionNone applies no discount.
	PromotionNone PromotionKind = "none"
)

// NoPromotionCode is the reserved code for the "no discount" promotion.
const NoPromotionCode = "NONE"

// Promotion represents an immutable discount rule from the catalogue.
// Value is a percentage in [0,100] for percentage promotions and a currency
// amount for fixed promotions; it is ignored for the none kind.
type Promotion struct {
	ID          string          `json:"id" db:"id"`
	Code        string          `json:"code" db:"code"`
	Kind        PromotionKind   `json:"kind" db:"kind"`
	Value       decimal.Decimal `json:"value" db:"value"`
	Description string          `json:"description" db:"description"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
}

// IsNone reports whether the promotion leaves the line price untouched.
// A missing promotion and the reserved NONE code are treated the same way
// as the none kind.
func (p *Promotion) IsNone() bool {
	return p == nil || p.Code == NoPromotionCode || p.Kind == PromotionNone
}
