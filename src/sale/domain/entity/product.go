package entity

import "github.com/shopspring/decimal"

// Product snapshot de un producto del catálogo (read-only para el dominio de venta).
// El catálogo es la fuente de verdad; este snapshot es point-in-time y puede
// estar desactualizado respecto al stock real (el backend valida al confirmar).
type Product struct {
	ID                string          `json:"product_id"`
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	AvailableQuantity int             `json:"available_quantity"`
}

// HasStock indica si el snapshot tiene stock suficiente para la cantidad pedida.
// Lecturas stale son aceptadas: el enforcement autoritativo es del backend.
func (p Product) HasStock(quantity int) bool {
	return p.AvailableQuantity >= quantity
}
