package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents an immutable catalogue entry.
type Product struct {
	ID        string          `json:"id" db:"id"`
	Name      string          `json:"name" db:"name"`
	Price     decimal.Decimal `json:"price" db:"price"`
	Category  string          `json:"category,omitempty" db:"category"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
}
