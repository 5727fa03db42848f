package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod identifies how an order is paid.
type PaymentMethod string

const (
	// PaymentCash is paid with tendered cash and may produce change.
	PaymentCash PaymentMethod = "cash"
	// PaymentCard is paid by card; change handling never applies.
	PaymentCard PaymentMethod = "card"
)

// CheckoutRequest is the payload for finalising a cart into an order.
type CheckoutRequest struct {
	CustomerName  string          `json:"customerName" validate:"required"`
	CustomerEmail string          `json:"customerEmail" validate:"required,email"`
	CustomerPhone string          `json:"customerPhone" validate:"required,len=10,numeric"`
	PaymentMethod PaymentMethod   `json:"paymentMethod" validate:"required,oneof=cash card"`
	CashAmount    decimal.Decimal `json:"cashAmount"`
}

// OrderDetails is the immutable snapshot taken at submission time.
// It captures the cart, the computed total and the settled change amount.
type OrderDetails struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	CustomerName  string          `json:"customerName" db:"customer_name"`
	CustomerEmail string          `json:"customerEmail" db:"customer_email"`
	CustomerPhone string          `json:"customerPhone" db:"customer_phone"`
	PaymentMethod PaymentMethod   `json:"paymentMethod" db:"payment_method"`
	CashAmount    decimal.Decimal `json:"cashAmount" db:"cash_amount"`
	Items         []OrderItem     `json:"items"`
	TotalAmount   decimal.Decimal `json:"totalAmount" db:"total_amount"`
	ChangeAmount  decimal.Decimal `json:"changeAmount" db:"change_amount"`
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`
}

// OrderItem is a priced line item frozen into an order snapshot.
type OrderItem struct {
	ID            uuid.UUID       `json:"-" db:"id"`
	OrderID       uuid.UUID       `json:"-" db:"order_id"`
	ProductID     string          `json:"productId" db:"product_id"`
	Name          string          `json:"name" db:"name"`
	UnitPrice     decimal.Decimal `json:"unitPrice" db:"unit_price"`
	Quantity      int             `json:"quantity" db:"quantity"`
	PromotionCode string          `json:"promotionCode" db:"promotion_code"`
	LinePrice     decimal.Decimal `json:"linePrice" db:"line_price"`
}
