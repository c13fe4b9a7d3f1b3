package entity

import "github.com/shopspring/decimal"

// PaymentMethod método de pago aceptado por la caja
type PaymentMethod string

const (
	PaymentCash          PaymentMethod = "CASH"
	PaymentCreditCard    PaymentMethod = "CREDIT_CARD"
	PaymentDebitCard     PaymentMethod = "DEBIT_CARD"
	PaymentMobileMoney   PaymentMethod = "MOBILE_MONEY"
	PaymentBankTransfer  PaymentMethod = "BANK_TRANSFER"
	PaymentCheck         PaymentMethod = "CHECK"
	PaymentLoyaltyPoints PaymentMethod = "LOYALTY_POINTS"
	PaymentCredit        PaymentMethod = "CREDIT"
	PaymentMixed         PaymentMethod = "MIXED"
)

// IsValid indica si el método de pago es uno de los aceptados
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentCreditCard, PaymentDebitCard, PaymentMobileMoney,
		PaymentBankTransfer, PaymentCheck, PaymentLoyaltyPoints, PaymentCredit, PaymentMixed:
		return true
	}
	return false
}

// IsCredit indica si el método representa deuda diferida del cliente
// (excluido de total_paid, incluido en total_credit)
func (m PaymentMethod) IsCredit() bool {
	return m == PaymentCredit
}

// PaymentStatus estado de pago derivado del historial de pagos.
// Siempre se deriva del ledger, nunca se almacena como estado mutable
// independiente (garantiza que no puede desincronizarse de los pagos).
type PaymentStatus string

const (
	PaymentStatusUnpaid        PaymentStatus = "UNPAID"
	PaymentStatusPartiallyPaid PaymentStatus = "PARTIALLY_PAID"
	PaymentStatusPaid          PaymentStatus = "PAID"
	PaymentStatusCredit        PaymentStatus = "CREDIT"
)

// PaymentEntry un pago registrado contra la venta.
// Inmutable una vez agregado al ledger; removible por índice solo antes de
// confirmar la venta (después forma parte de la Order persistida).
type PaymentEntry struct {
	Method    PaymentMethod   `json:"method"`
	Amount    decimal.Decimal `json:"amount"`
	Notes     string          `json:"notes,omitempty"`
	Reference string          `json:"reference,omitempty"`
}

// NewPaymentEntry crea un pago validando método y monto
func NewPaymentEntry(method PaymentMethod, amount decimal.Decimal, notes, reference string) (*PaymentEntry, error) {
	if !method.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}
	if amount.LessThan(decimal.Zero) {
		return nil, ErrInvalidAmount
	}
	return &PaymentEntry{
		Method:    method,
		Amount:    amount,
		Notes:     notes,
		Reference: reference,
	}, nil
}
