package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mirlondev/magasin-sub000/src/sale/domain/entity"
	"github.com/mirlondev/magasin-sub000/src/shared/domain/money"
)

// CartLineResponse línea del carrito lista para display
type CartLineResponse struct {
	ProductID          string          `json:"product_id"`
	SKU                string          `json:"sku"`
	Name               string          `json:"name"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	Quantity           int             `json:"quantity"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	LineTotal          decimal.Decimal `json:"line_total"`
	DisplayTotal       string          `json:"display_total"`
}

// CustomerResponse cliente asociado a la venta
type CustomerResponse struct {
	CustomerID string `json:"customer_id"`
	FullName   string `json:"full_name"`
	Phone      string `json:"phone,omitempty"`
}

// CartResponse estado del carrito con todos los derivados monetarios
type CartResponse struct {
	Lines           []CartLineResponse `json:"lines"`
	ItemCount       int                `json:"item_count"`
	UniqueLineCount int                `json:"unique_line_count"`
	Customer        *CustomerResponse  `json:"customer"`
	Notes           string             `json:"notes,omitempty"`
	Subtotal        decimal.Decimal    `json:"subtotal"`
	GlobalDiscount  decimal.Decimal    `json:"global_discount"`
	TotalBeforeTax  decimal.Decimal    `json:"total_before_tax"`
	TaxRate         decimal.Decimal    `json:"tax_rate"`
	TaxAmount       decimal.Decimal    `json:"tax_amount"`
	Total           decimal.Decimal    `json:"total"`
	DisplayTotal    string             `json:"display_total"`
}

// PaymentEntryResponse un pago registrado, con su índice para removerlo
type PaymentEntryResponse struct {
	Index     int             `json:"index"`
	Method    string          `json:"method"`
	Amount    decimal.Decimal `json:"amount"`
	Notes     string          `json:"notes,omitempty"`
	Reference string          `json:"reference,omitempty"`
}

// PaymentStateResponse estado de pagos derivado del ledger
type PaymentStateResponse struct {
	Entries     []PaymentEntryResponse `json:"entries"`
	TotalPaid   decimal.Decimal        `json:"total_paid"`
	TotalCredit decimal.Decimal        `json:"total_credit"`
	Remaining   decimal.Decimal        `json:"remaining"`
	Status      string                 `json:"status"`
}

// SessionResponse estado completo de una sesión de venta
type SessionResponse struct {
	SessionID uuid.UUID            `json:"session_id"`
	StoreID   string               `json:"store_id"`
	OrderType string               `json:"order_type"`
	Currency  string               `json:"currency"`
	Cart      CartResponse         `json:"cart"`
	Payment   PaymentStateResponse `json:"payment"`
	CreatedAt time.Time            `json:"created_at"`
}

// AddPaymentResponse resultado de registrar un pago: el vuelto solo es
// distinto de cero para sobrepagos en efectivo
type AddPaymentResponse struct {
	Session SessionResponse `json:"session"`
	Change  decimal.Decimal `json:"change"`
}

// NewSessionResponse arma el response de display desde la sesión
func NewSessionResponse(s *entity.SaleSession) SessionResponse {
	cart := s.Cart
	total := cart.Total()

	lines := make([]CartLineResponse, 0, cart.UniqueLineCount())
	for _, l := range cart.Lines() {
		lines = append(lines, CartLineResponse{
			ProductID:          l.Product.ID,
			SKU:                l.Product.SKU,
			Name:               l.Product.Name,
			UnitPrice:          l.Product.UnitPrice,
			Quantity:           l.Quantity,
			DiscountPercentage: l.DiscountPercentage,
			LineTotal:          l.Total(),
			DisplayTotal:       money.Format(l.Total(), s.Currency),
		})
	}

	var customer *CustomerResponse
	if c := cart.Customer(); c != nil {
		customer = &CustomerResponse{
			CustomerID: c.ID,
			FullName:   c.FullName(),
			Phone:      c.Phone,
		}
	}

	entries := make([]PaymentEntryResponse, 0, s.Ledger.Len())
	for i, e := range s.Ledger.Entries() {
		entries = append(entries, PaymentEntryResponse{
			Index:     i,
			Method:    string(e.Method),
			Amount:    e.Amount,
			Notes:     e.Notes,
			Reference: e.Reference,
		})
	}

	return SessionResponse{
		SessionID: s.ID,
		StoreID:   s.StoreID,
		OrderType: string(s.OrderType),
		Currency:  s.Currency,
		Cart: CartResponse{
			Lines:           lines,
			ItemCount:       cart.ItemCount(),
			UniqueLineCount: cart.UniqueLineCount(),
			Customer:        customer,
			Notes:           cart.Notes(),
			Subtotal:        cart.Subtotal(),
			GlobalDiscount:  cart.GlobalDiscount(),
			TotalBeforeTax:  cart.TotalBeforeTax(),
			TaxRate:         cart.TaxRate(),
			TaxAmount:       cart.TaxAmount(),
			Total:           total,
			DisplayTotal:    money.Format(total, s.Currency),
		},
		Payment: PaymentStateResponse{
			Entries:     entries,
			TotalPaid:   s.Ledger.TotalPaid(),
			TotalCredit: s.Ledger.TotalCredit(),
			Remaining:   s.Ledger.Remaining(total),
			Status:      string(s.Ledger.Status(total)),
		},
		CreatedAt: s.CreatedAt,
	}
}
