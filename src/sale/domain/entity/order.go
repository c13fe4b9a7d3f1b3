package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderType tipo de venta que determina la política de validación y el
// documento generado por el backend (recibo, factura a crédito, proforma)
type OrderType string

const (
	OrderTypeDirectSale OrderType = "DIRECT_SALE"
	OrderTypeCreditSale OrderType = "CREDIT_SALE"
	OrderTypeProforma   OrderType = "PROFORMA"
)

// IsValid indica si el tipo de venta es uno de los soportados
func (t OrderType) IsValid() bool {
	switch t {
	case OrderTypeDirectSale, OrderTypeCreditSale, OrderTypeProforma:
		return true
	}
	return false
}

// IsCredit indica si el tipo de venta es a crédito
func (t OrderType) IsCredit() bool {
	return t == OrderTypeCreditSale
}

// OrderLine línea de una orden ya confirmada por el backend
type OrderLine struct {
	ProductID          string          `json:"product_id"`
	SKU                string          `json:"sku"`
	ProductName        string          `json:"product_name"`
	Quantity           int             `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	Total              decimal.Decimal `json:"total"`
}

// Order snapshot inmutable de una orden confirmada, producido por el backend.
// El dominio de venta nunca muta una Order: solo construye el request que la
// produce y la expone como estado de display read-only.
type Order struct {
	ID             string          `json:"order_id"`
	OrderNumber    string          `json:"order_number"`
	StoreID        string          `json:"store_id"`
	CustomerID     *string         `json:"customer_id"`
	OrderType      OrderType       `json:"order_type"`
	Status         string          `json:"status"`
	PaymentStatus  PaymentStatus   `json:"payment_status"`
	Items          []OrderLine     `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	AmountPaid     decimal.Decimal `json:"amount_paid"`
	Change         decimal.Decimal `json:"change"`
	Currency       string          `json:"currency"`
	Payments       []PaymentEntry  `json:"payments"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}
