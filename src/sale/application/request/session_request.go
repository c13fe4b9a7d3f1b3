package request

import "github.com/shopspring/decimal"

// OpenSessionRequest request para abrir una sesión de venta en una caja
type OpenSessionRequest struct {
	OrderType string           `json:"order_type" binding:"required,oneof=DIRECT_SALE CREDIT_SALE PROFORMA"`
	TaxRate   *decimal.Decimal `json:"tax_rate,omitempty"` // Default: tasa configurada del servicio
	Currency  string           `json:"currency,omitempty"` // Default: "XOF"
}

// AddItemRequest request para agregar un producto al carrito
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity,omitempty"` // Default: 1
}

// UpdateLineRequest request para editar una línea: delta de cantidad y/o
// descuento porcentual. Ambos campos son opcionales e independientes.
type UpdateLineRequest struct {
	QuantityDelta      *int             `json:"quantity_delta,omitempty"`
	DiscountPercentage *decimal.Decimal `json:"discount_percentage,omitempty"`
}

// SetCustomerRequest request para asociar o desasociar el cliente
// (customer_id null = consumidor final)
type SetCustomerRequest struct {
	CustomerID *string `json:"customer_id"`
}

// SetDiscountRequest request para fijar el descuento global (monto fijo)
type SetDiscountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// SetNotesRequest request para fijar las notas libres de la venta
type SetNotesRequest struct {
	Notes string `json:"notes"`
}

// AddPaymentRequest request para registrar un pago contra la sesión
type AddPaymentRequest struct {
	Method    string          `json:"method" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Notes     string          `json:"notes,omitempty"`
	Reference string          `json:"reference,omitempty"`
}

// SubmitOrderRequest request de confirmación de la venta.
// pending_method indica el método seleccionado pero aún no registrado
// (una venta a crédito puede confirmarse con CREDIT pendiente).
type SubmitOrderRequest struct {
	PendingMethod string `json:"pending_method,omitempty"`
}
