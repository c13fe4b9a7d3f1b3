package entity

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// CartLine línea del carrito (Entity dentro del Aggregate Cart)
// Una línea por producto; el descuento es porcentual y aplica solo a la línea.
type CartLine struct {
	Product            Product         `json:"product"`
	Quantity           int             `json:"quantity"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"` // 0-100
}

// Total calcula el total de la línea: precio × cantidad × (1 − descuento/100)
func (l CartLine) Total() decimal.Decimal {
	gross := l.Product.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
	if l.DiscountPercentage.IsZero() {
		return gross
	}
	factor := decimal.NewFromInt(1).Sub(l.DiscountPercentage.Div(oneHundred))
	return gross.Mul(factor)
}

// clampDiscountPercentage acota un porcentaje de descuento al rango [0, 100]
func clampDiscountPercentage(p decimal.Decimal) decimal.Decimal {
	if p.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if p.GreaterThan(oneHundred) {
		return oneHundred
	}
	return p
}
