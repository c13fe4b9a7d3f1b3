package response

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mirlondev/magasin-sub000/src/sale/domain/entity"
	"github.com/mirlondev/magasin-sub000/src/shared/domain/money"
)

// SubmitOrderResponse resultado de una venta confirmada por el backend.
// DTO listo para imprimir el documento correspondiente (recibo, factura
// a crédito o proforma).
type SubmitOrderResponse struct {
	OrderID       string          `json:"order_id"`
	OrderNumber   string          `json:"order_number"`
	OrderType     string          `json:"order_type"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"payment_status"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	Change        decimal.Decimal `json:"change"`
	DisplayTotal  string          `json:"display_total"`
	Currency      string          `json:"currency"`
	CreatedAt     time.Time       `json:"created_at"`
	Order         *entity.Order   `json:"order"`
}

// NewSubmitOrderResponse arma el response desde la orden confirmada
func NewSubmitOrderResponse(order *entity.Order, change decimal.Decimal) *SubmitOrderResponse {
	return &SubmitOrderResponse{
		OrderID:       order.ID,
		OrderNumber:   order.OrderNumber,
		OrderType:     string(order.OrderType),
		Status:        order.Status,
		PaymentStatus: string(order.PaymentStatus),
		TotalAmount:   order.TotalAmount,
		AmountPaid:    order.AmountPaid,
		Change:        change,
		DisplayTotal:  money.Format(order.TotalAmount, order.Currency),
		Currency:      order.Currency,
		CreatedAt:     order.CreatedAt,
		Order:         order,
	}
}
