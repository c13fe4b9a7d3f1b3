package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/mirlondev/magasin-sub000/src/sale/application/request"
	"github.com/mirlondev/magasin-sub000/src/sale/domain/entity"
)

// OrderRequestBuilder transformación pura (carrito, ledger, metadata) →
// payload de confirmación. No ejecuta I/O: es 100% testeable sin mocks.
type OrderRequestBuilder struct{}

// NewOrderRequestBuilder crea una nueva instancia del builder
func NewOrderRequestBuilder() *OrderRequestBuilder {
	return &OrderRequestBuilder{}
}

// Build arma el CreateOrderRequest wire-level desde el estado de la sesión.
// primaryMethod y primaryAmount son opcionales (nil cuando no hay pagos).
func (b *OrderRequestBuilder) Build(
	cart *entity.Cart,
	ledger *entity.PaymentLedger,
	storeID string,
	orderType entity.OrderType,
	primaryMethod *entity.PaymentMethod,
	primaryAmount *decimal.Decimal,
) *request.CreateOrderRequest {
	lines := cart.Lines()
	items := make([]request.OrderItemRequest, 0, len(lines))
	for _, l := range lines {
		items = append(items, request.OrderItemRequest{
			ProductID:          l.Product.ID,
			Quantity:           l.Quantity,
			DiscountPercentage: l.DiscountPercentage,
		})
	}

	var customerID *string
	if c := cart.Customer(); c != nil {
		id := c.ID
		customerID = &id
	}

	var notes *string
	if n := cart.Notes(); n != "" {
		notes = &n
	}

	var method *string
	if primaryMethod != nil {
		m := string(*primaryMethod)
		method = &m
	}

	entries := ledger.Entries()
	payments := make([]request.PaymentRequest, 0, len(entries))
	for _, e := range entries {
		payments = append(payments, request.PaymentRequest{
			Method:    string(e.Method),
			Amount:    e.Amount,
			Notes:     e.Notes,
			Reference: e.Reference,
		})
	}

	return &request.CreateOrderRequest{
		StoreID:        storeID,
		CustomerID:     customerID,
		OrderType:      string(orderType),
		Items:          items,
		DiscountAmount: cart.GlobalDiscount(),
		TaxRate:        cart.TaxRate(),
		Notes:          notes,
		PaymentMethod:  method,
		AmountPaid:     primaryAmount,
		Payments:       payments,
	}
}

// PrimaryMethod deriva el método de pago principal del ledger: nil sin
// pagos, el método único si todos los pagos lo comparten, MIXED si hay
// métodos heterogéneos.
func (b *OrderRequestBuilder) PrimaryMethod(ledger *entity.PaymentLedger) *entity.PaymentMethod {
	entries := ledger.Entries()
	if len(entries) == 0 {
		return nil
	}
	method := entries[0].Method
	for _, e := range entries[1:] {
		if e.Method != method {
			mixed := entity.PaymentMixed
			return &mixed
		}
	}
	return &method
}
