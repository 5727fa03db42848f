package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is a product snapshot in a cart with its own quantity, unit price
// and applied promotion. The unit price may be edited away from the catalogue
// price; quantity is always >= 1.
type CartItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	Promotion *Promotion      `json:"promotion,omitempty"`
}

// Cart is an ordered collection of line items keyed by product ID.
// It is owned by a single session and never persisted.
type Cart struct {
	ID    uuid.UUID  `json:"id"`
	Items []CartItem `json:"items"`
}

// Find returns the index of the line item for the given product ID,
// or -1 when the product is not in the cart.
func (c *Cart) Find(productID string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}
