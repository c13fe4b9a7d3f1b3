package entity

import "errors"

var (
	ErrStoreIDRequired    = errors.New("store_id is required")
	ErrInvalidOrderType   = errors.New("invalid order type")
	ErrInvalidTaxRate     = errors.New("tax_rate must be between 0 and 1")
	ErrSessionNotFound    = errors.New("sale session not found")
	ErrInvalidQuantity    = errors.New("quantity must be greater than 0")
	ErrProductIDRequired  = errors.New("product_id is required")
	ErrInvalidPrice       = errors.New("price must be greater than or equal to 0")
	ErrInsufficientStock  = errors.New("insufficient stock for requested quantity")
	ErrProductNotFound    = errors.New("product not found")
	ErrCustomerNotFound   = errors.New("customer not found")

	// HITO CAJA-02 - Multi-pago
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidAmount        = errors.New("amount must be greater than 0")
	ErrPaymentNotAllowed    = errors.New("payment exceeds remaining balance")
	ErrCannotFinalize       = errors.New("payment state does not allow finalization")

	// HITO CAJA-03 - Journal de ventas
	ErrOrderIDRequired   = errors.New("order_id is required")
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
)
