package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON          = "INVALID_JSON"
	ErrCodeValidation           = "VALIDATION_FAILED"
	ErrCodeEmptyCart            = "EMPTY_CART"
	ErrCodeInsufficientCash     = "INSUFFICIENT_CASH"
	ErrCodeProductNotFound      = "PRODUCT_NOT_FOUND"
	ErrCodePromotionNotFound    = "PROMOTION_NOT_FOUND"
	ErrCodeCartNotFound         = "CART_NOT_FOUND"
	ErrCodeOrderNotFound        = "ORDER_NOT_FOUND"
	ErrCodeItemNotFound         = "ITEM_NOT_FOUND"
	ErrCodeInvalidQuantity      = "INVALID_QUANTITY"
	ErrCodeInvalidPrice         = "INVALID_PRICE"
	ErrCodeUnknownPromotionKind = "UNKNOWN_PROMOTION_KIND"
	ErrCodeUnauthorised         = "UNAUTHORIZED"
	ErrCodeInternalError        = "INTERNAL_ERROR"
)

// DomainError carries an API error code alongside the message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	// ErrEmptyCart blocks submission of an order with no line items.
	ErrEmptyCart = NewDomainError(ErrCodeEmptyCart, "Cart must contain at least one item")
	// ErrInsufficientCash blocks submission when tendered cash is below the total.
	ErrInsufficientCash = NewDomainError(ErrCodeInsufficientCash, "Cash amount is insufficient for payment")
	// ErrProductNotFound indicates a product ID missing from the catalogue.
	ErrProductNotFound = NewDomainError(ErrCodeProductNotFound, "Product not found")
	// ErrPromotionNotFound indicates a promotion ID missing from the catalogue.
	ErrPromotionNotFound = NewDomainError(ErrCodePromotionNotFound, "Promotion not found")
	// ErrCartNotFound indicates an unknown cart session.
	ErrCartNotFound = NewDomainError(ErrCodeCartNotFound, "Cart not found")
	// ErrItemNotFound indicates the product is not in the cart.
	ErrItemNotFound = NewDomainError(ErrCodeItemNotFound, "Item not in cart")
	// ErrInvalidQuantity rejects quantity updates below 1.
	ErrInvalidQuantity = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	// ErrInvalidPrice rejects non-positive unit price updates.
	ErrInvalidPrice = NewDomainError(ErrCodeInvalidPrice, "Price must be greater than zero")
	// ErrUnknownPromotionKind signals a catalogue-consistency bug: a promotion
	// whose kind is outside the closed set. Callers must fail loudly rather
	// than silently charging full price.
	ErrUnknownPromotionKind = NewDomainError(ErrCodeUnknownPromotionKind, "Promotion kind is not recognised")
)
