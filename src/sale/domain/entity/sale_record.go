package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleRecord fila inmutable del journal local de ventas confirmadas
// HITO CAJA-03 - Journal de ventas para reportes diarios
//
// Se registra después de que el backend confirma la orden; es estado de
// display/reporte, nunca entra en los cálculos de una venta en curso.
type SaleRecord struct {
	ID             uuid.UUID       `json:"id"`
	StoreID        string          `json:"store_id"`
	OrderID        string          `json:"order_id"`
	OrderNumber    string          `json:"order_number"`
	OrderType      OrderType       `json:"order_type"`
	CustomerID     *string         `json:"customer_id"`
	ItemCount      int             `json:"item_count"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	AmountPaid     decimal.Decimal `json:"amount_paid"`
	CreditAmount   decimal.Decimal `json:"credit_amount"`
	ChangeGiven    decimal.Decimal `json:"change_given"`
	PaymentStatus  PaymentStatus   `json:"payment_status"`
	PaymentMethod  PaymentMethod   `json:"payment_method"`
	Currency       string          `json:"currency"`
	CreatedAt      time.Time       `json:"created_at"`
}

// NewSaleRecord crea una fila del journal a partir de la orden confirmada
// y el estado de pagos con el que se cerró la sesión
func NewSaleRecord(order *Order, ledger *PaymentLedger, primaryMethod PaymentMethod, changeGiven decimal.Decimal) (*SaleRecord, error) {
	if order == nil || order.ID == "" {
		return nil, ErrOrderIDRequired
	}
	if order.StoreID == "" {
		return nil, ErrStoreIDRequired
	}

	itemCount := 0
	for _, line := range order.Items {
		itemCount += line.Quantity
	}

	return &SaleRecord{
		ID:             uuid.New(),
		StoreID:        order.StoreID,
		OrderID:        order.ID,
		OrderNumber:    order.OrderNumber,
		OrderType:      order.OrderType,
		CustomerID:     order.CustomerID,
		ItemCount:      itemCount,
		Subtotal:       order.Subtotal,
		DiscountAmount: order.DiscountAmount,
		TaxAmount:      order.TaxAmount,
		TotalAmount:    order.TotalAmount,
		AmountPaid:     ledger.TotalPaid(),
		CreditAmount:   ledger.TotalCredit(),
		ChangeGiven:    changeGiven,
		PaymentStatus:  ledger.Status(order.TotalAmount),
		PaymentMethod:  primaryMethod,
		Currency:       order.Currency,
		CreatedAt:      time.Now(),
	}, nil
}
