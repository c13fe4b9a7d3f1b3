package service

import (
	"github.com/shopspring/decimal"

	"github.com/mirlondev/magasin-sub000/src/sale/domain/entity"
)

// Mensajes de validación orientados al usuario de la caja.
// El orden de los chequeos es estable: los tests y la UI dependen de que
// los errores salgan siempre en el mismo orden de inserción.
const (
	MsgCartEmpty        = "cart is empty"
	MsgTotalNotPositive = "total must be positive"
	MsgCustomerRequired = "customer is required for credit sale"
)

// ValidationResult resultado estructurado de una validación de venta.
// Una validación fallida no es un error de Go: es data que la caja muestra.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

func (r *ValidationResult) add(msg string) {
	r.Valid = false
	r.Errors = append(r.Errors, msg)
}

// OrderValidator políticas de validación por tipo de venta.
// Un solo validador parametrizado por OrderType (composición, no herencia):
// cada workflow elige la política por tag.
type OrderValidator struct{}

// NewOrderValidator crea una nueva instancia del validador
func NewOrderValidator() *OrderValidator {
	return &OrderValidator{}
}

// ValidateForOrderType despacha la validación según el tipo de venta
func (v *OrderValidator) ValidateForOrderType(cart *entity.Cart, orderType entity.OrderType) ValidationResult {
	switch orderType {
	case entity.OrderTypeCreditSale:
		return v.ValidateForCreditSale(cart)
	case entity.OrderTypeProforma:
		return v.ValidateForQuote(cart)
	default:
		return v.ValidateForDirectSale(cart)
	}
}

// ValidateForDirectSale valida precondiciones de una venta directa de caja
func (v *OrderValidator) ValidateForDirectSale(cart *entity.Cart) ValidationResult {
	result := ValidationResult{Valid: true}
	if cart.ItemCount() == 0 {
		result.add(MsgCartEmpty)
	}
	if !cart.Total().GreaterThan(decimal.Zero) {
		result.add(MsgTotalNotPositive)
	}
	return result
}

// ValidateForCreditSale valida una venta a crédito: igual que la venta
// directa, más cliente obligatorio (la deuda necesita un deudor)
func (v *OrderValidator) ValidateForCreditSale(cart *entity.Cart) ValidationResult {
	result := v.ValidateForDirectSale(cart)
	if cart.Customer() == nil {
		result.add(MsgCustomerRequired)
	}
	return result
}

// ValidateForQuote valida una proforma/cotización: solo exige items
func (v *OrderValidator) ValidateForQuote(cart *entity.Cart) ValidationResult {
	result := ValidationResult{Valid: true}
	if cart.ItemCount() == 0 {
		result.add(MsgCartEmpty)
	}
	return result
}

// CanAddPayment decide si un pago candidato puede registrarse.
// El efectivo siempre puede (el sobrepago se convierte en vuelto); todo
// otro método queda limitado al saldo restante.
func (v *OrderValidator) CanAddPayment(ledger *entity.PaymentLedger, targetTotal, candidateAmount decimal.Decimal, method entity.PaymentMethod) bool {
	if !candidateAmount.GreaterThan(decimal.Zero) {
		return false
	}
	if method == entity.PaymentCash {
		return true
	}
	return candidateAmount.LessThanOrEqual(ledger.Remaining(targetTotal))
}

// CanFinalize decide si la venta puede confirmarse con el estado de pagos
// actual: saldo en cero, o al menos un pago registrado (pago parcial
// aceptado), o venta a crédito con el método CREDIT pendiente de registrar.
func (v *OrderValidator) CanFinalize(ledger *entity.PaymentLedger, targetTotal decimal.Decimal, orderType entity.OrderType, pendingMethod entity.PaymentMethod) bool {
	if ledger.Remaining(targetTotal).IsZero() {
		return true
	}
	if ledger.Len() > 0 {
		return true
	}
	return orderType.IsCredit() && pendingMethod == entity.PaymentCredit
}
