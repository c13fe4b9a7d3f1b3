package request

import (
	"github.com/shopspring/decimal"
)

// OrderItemRequest línea del payload de creación de orden
type OrderItemRequest struct {
	ProductID          string          `json:"product_id"`
	Quantity           int             `json:"quantity"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
}

// CreateOrderRequest payload wire-level que la caja envía al backend para
// confirmar una venta. Es una transformación pura del estado de la sesión:
// construirlo no ejecuta ningún I/O.
type CreateOrderRequest struct {
	StoreID        string             `json:"store_id"`
	CustomerID     *string            `json:"customer_id"`
	OrderType      string             `json:"order_type"`
	Items          []OrderItemRequest `json:"items"`
	DiscountAmount decimal.Decimal    `json:"discount_amount"`
	TaxRate        decimal.Decimal    `json:"tax_rate"`
	Notes          *string            `json:"notes"`
	PaymentMethod  *string            `json:"payment_method"`
	AmountPaid     *decimal.Decimal   `json:"amount_paid"`
	Payments       []PaymentRequest   `json:"payments,omitempty"`
	Currency       string             `json:"currency,omitempty"`
}

// PaymentRequest un pago del historial incluido en la confirmación
type PaymentRequest struct {
	Method    string          `json:"method"`
	Amount    decimal.Decimal `json:"amount"`
	Notes     string          `json:"notes,omitempty"`
	Reference string          `json:"reference,omitempty"`
}
