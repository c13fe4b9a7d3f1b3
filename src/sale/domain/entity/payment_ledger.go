package entity

import "github.com/shopspring/decimal"

// PaymentLedger acumulador ordenado de pagos contra un total objetivo
// HITO CAJA-02 - Multi-pago (efectivo, tarjeta, mobile money, crédito)
//
// El ledger no aplica políticas de negocio al agregar: la validación de
// "no exceder el restante para métodos no-efectivo" es del OrderValidator,
// porque el efectivo intencionalmente permite sobrepago para calcular vuelto.
// Todos los derivados se recalculan desde la secuencia de pagos.
type PaymentLedger struct {
	entries []PaymentEntry
}

// NewPaymentLedger crea un ledger vacío
func NewPaymentLedger() *PaymentLedger {
	return &PaymentLedger{}
}

// AddPayment agrega un pago al final del ledger, sin condiciones
func (pl *PaymentLedger) AddPayment(entry PaymentEntry) {
	pl.entries = append(pl.entries, entry)
}

// RemovePayment elimina un pago por posición; no-op si el índice está fuera de rango
func (pl *PaymentLedger) RemovePayment(index int) {
	if index < 0 || index >= len(pl.entries) {
		return
	}
	pl.entries = append(pl.entries[:index], pl.entries[index+1:]...)
}

// Clear vacía el ledger
func (pl *PaymentLedger) Clear() {
	pl.entries = nil
}

// Entries retorna una copia de los pagos en orden de inserción
func (pl *PaymentLedger) Entries() []PaymentEntry {
	out := make([]PaymentEntry, len(pl.entries))
	copy(out, pl.entries)
	return out
}

// Len retorna la cantidad de pagos registrados
func (pl *PaymentLedger) Len() int {
	return len(pl.entries)
}

// TotalPaid suma los montos de pagos con fondos reales (método != CREDIT)
func (pl *PaymentLedger) TotalPaid() decimal.Decimal {
	total := decimal.Zero
	for _, e := range pl.entries {
		if !e.Method.IsCredit() {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// TotalCredit suma los montos de pagos a crédito (deuda diferida del cliente)
func (pl *PaymentLedger) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, e := range pl.entries {
		if e.Method.IsCredit() {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// Remaining retorna el saldo pendiente contra el total objetivo, con piso en 0
func (pl *PaymentLedger) Remaining(targetTotal decimal.Decimal) decimal.Decimal {
	remaining := targetTotal.Sub(pl.TotalPaid()).Sub(pl.TotalCredit())
	if remaining.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return remaining
}

// ChangeDue calcula el vuelto para un monto de efectivo recibido, ANTES de
// registrar el pago. El pago que se registra queda topeado al restante; el
// excedente es vuelto y no se almacena como pago.
func (pl *PaymentLedger) ChangeDue(targetTotal, cashReceived decimal.Decimal) decimal.Decimal {
	change := cashReceived.Sub(pl.Remaining(targetTotal))
	if change.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return change
}

// Status deriva el estado de pago como función pura de
// (total_paid, total_credit, total objetivo):
//   - sin pagos registrados            -> UNPAID
//   - cobertura menor al total         -> PARTIALLY_PAID
//   - cubierto solo con crédito        -> CREDIT
//   - cualquier otro caso cubierto     -> PAID
//
// Regla de compatibilidad: un mixto con efectivo parcial y resto a crédito
// mapea a PAID, no a un estado mixto distinto.
func (pl *PaymentLedger) Status(targetTotal decimal.Decimal) PaymentStatus {
	paid := pl.TotalPaid()
	credit := pl.TotalCredit()
	covered := paid.Add(credit)

	switch {
	case covered.IsZero():
		return PaymentStatusUnpaid
	case covered.LessThan(targetTotal):
		return PaymentStatusPartiallyPaid
	case paid.IsZero():
		return PaymentStatusCredit
	default:
		return PaymentStatusPaid
	}
}
