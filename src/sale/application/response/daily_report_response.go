package response

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyReportResponse reporte diario agregado del journal de ventas
// HITO CAJA-03 - Journal de ventas para reportes diarios
type DailyReportResponse struct {
	Date               string          `json:"date"`
	SalesCount         int             `json:"sales_count"`
	GrossTotal         decimal.Decimal `json:"gross_total"`
	TotalDiscounts     decimal.Decimal `json:"total_discounts"`
	TotalTax           decimal.Decimal `json:"total_tax"`
	NetTotal           decimal.Decimal `json:"net_total"`
	CashCollected      decimal.Decimal `json:"cash_collected"`
	CreditOutstanding  decimal.Decimal `json:"credit_outstanding"`
	FirstTransactionAt *time.Time      `json:"first_transaction_at,omitempty"`
	LastTransactionAt  *time.Time      `json:"last_transaction_at,omitempty"`
}

// ListSalesResponse listado paginado del journal de ventas
type ListSalesResponse struct {
	Items      []SaleRecordItem `json:"items"`
	TotalCount int              `json:"total_count"`
}

// SaleRecordItem fila del journal para listado
type SaleRecordItem struct {
	ID            string          `json:"id"`
	OrderID       string          `json:"order_id"`
	OrderNumber   string          `json:"order_number"`
	OrderType     string          `json:"order_type"`
	CustomerID    *string         `json:"customer_id"`
	ItemCount     int             `json:"item_count"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	CreditAmount  decimal.Decimal `json:"credit_amount"`
	PaymentStatus string          `json:"payment_status"`
	PaymentMethod string          `json:"payment_method"`
	Currency      string          `json:"currency"`
	CreatedAt     time.Time       `json:"created_at"`
}
