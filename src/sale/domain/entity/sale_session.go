package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleSession sesión de venta activa en una caja (Aggregate Root)
//
// Cada workflow de venta posee exactamente un carrito y un ledger de pagos.
// La sesión vive solo en memoria: se crea vacía al abrir la venta, se muta
// durante el workflow y se limpia al confirmar o cancelar. Nunca se persiste
// directamente; solo la Order resultante queda en el backend.
type SaleSession struct {
	ID        uuid.UUID      `json:"session_id"`
	StoreID   string         `json:"store_id"`
	OrderType OrderType      `json:"order_type"`
	Currency  string         `json:"currency"`
	Cart      *Cart          `json:"-"`
	Ledger    *PaymentLedger `json:"-"`
	CreatedAt time.Time      `json:"created_at"`
}

// NewSaleSession crea una sesión vacía para un tipo de venta dado
func NewSaleSession(storeID string, orderType OrderType, taxRate decimal.Decimal, currency string) (*SaleSession, error) {
	if storeID == "" {
		return nil, ErrStoreIDRequired
	}
	if !orderType.IsValid() {
		return nil, ErrInvalidOrderType
	}
	if taxRate.LessThan(decimal.Zero) || taxRate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, ErrInvalidTaxRate
	}
	if currency == "" {
		currency = "XOF"
	}

	return &SaleSession{
		ID:        uuid.New(),
		StoreID:   storeID,
		OrderType: orderType,
		Currency:  currency,
		Cart:      NewCart(taxRate),
		Ledger:    NewPaymentLedger(),
		CreatedAt: time.Now(),
	}, nil
}

// Clear descarta todo el estado no confirmado (cancelación o post-confirmación)
func (s *SaleSession) Clear() {
	s.Cart.Clear()
	s.Ledger.Clear()
}
