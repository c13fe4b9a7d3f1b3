package entity

import "github.com/shopspring/decimal"

// Cart acumulador del carrito de una venta no confirmada (Aggregate Root)
// HITO CAJA-01 - Carrito multi-item con descuentos por línea y global
//
// Todas las operaciones son funciones totales: ids desconocidos o índices
// fuera de rango se ignoran en silencio (modelo de edición best-effort
// dirigido por la caja). Los valores derivados se recalculan siempre desde
// las líneas, nunca se cachean.
type Cart struct {
	lines          []CartLine
	customer       *Customer
	notes          string
	globalDiscount decimal.Decimal
	taxRate        decimal.Decimal
	defaultTaxRate decimal.Decimal
}

// NewCart crea un carrito vacío con la tasa de impuesto por defecto
func NewCart(defaultTaxRate decimal.Decimal) *Cart {
	return &Cart{
		globalDiscount: decimal.Zero,
		taxRate:        defaultTaxRate,
		defaultTaxRate: defaultTaxRate,
	}
}

// AddItem agrega un producto al carrito. Si el producto ya está presente
// (por product_id) incrementa la cantidad de la línea existente; si no,
// agrega una nueva línea al final (orden de inserción = orden de display).
func (c *Cart) AddItem(product Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == product.ID {
			c.lines[i].Quantity += quantity
			return
		}
	}
	c.lines = append(c.lines, CartLine{
		Product:            product,
		Quantity:           quantity,
		DiscountPercentage: decimal.Zero,
	})
}

// UpdateQuantity aplica un delta a la cantidad de una línea.
// Si la cantidad resultante es <= 0 la línea se elimina (decrementar hasta
// cero es la forma idiomática de quitar un item desde la caja, no un error).
func (c *Cart) UpdateQuantity(productID string, delta int) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			newQty := c.lines[i].Quantity + delta
			if newQty <= 0 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
				return
			}
			c.lines[i].Quantity = newQty
			return
		}
	}
}

// SetLineDiscount fija el descuento porcentual de una línea, acotado a [0,100].
// No-op si la línea no existe.
func (c *Cart) SetLineDiscount(productID string, percentage decimal.Decimal) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].DiscountPercentage = clampDiscountPercentage(percentage)
			return
		}
	}
}

// RemoveItem elimina la línea del producto si está presente; no-op si no.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetCustomer asocia (o desasocia con nil) el cliente de la venta
func (c *Cart) SetCustomer(customer *Customer) {
	c.customer = customer
}

// SetNotes fija las notas libres de la venta
func (c *Cart) SetNotes(notes string) {
	c.notes = notes
}

// SetGlobalDiscount fija el descuento global (monto fijo), acotado a >= 0.
// El tope contra el subtotal se aplica al derivar TotalBeforeTax, no acá,
// porque el subtotal cambia en vivo mientras la caja edita líneas.
func (c *Cart) SetGlobalDiscount(amount decimal.Decimal) {
	if amount.LessThan(decimal.Zero) {
		amount = decimal.Zero
	}
	c.globalDiscount = amount
}

// SetTaxRate fija la tasa de impuesto (fracción, ej: 0.18)
func (c *Cart) SetTaxRate(rate decimal.Decimal) {
	c.taxRate = rate
}

// Clear resetea el carrito a su estado inicial vacío
func (c *Cart) Clear() {
	c.lines = nil
	c.customer = nil
	c.notes = ""
	c.globalDiscount = decimal.Zero
	c.taxRate = c.defaultTaxRate
}

// Lines retorna una copia de las líneas en orden de inserción
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Customer retorna el cliente asociado (nil = consumidor final)
func (c *Cart) Customer() *Customer {
	return c.customer
}

// Notes retorna las notas de la venta
func (c *Cart) Notes() string {
	return c.notes
}

// GlobalDiscount retorna el descuento global vigente
func (c *Cart) GlobalDiscount() decimal.Decimal {
	return c.globalDiscount
}

// TaxRate retorna la tasa de impuesto vigente
func (c *Cart) TaxRate() decimal.Decimal {
	return c.taxRate
}

// ItemCount retorna la suma de cantidades de todas las líneas
func (c *Cart) ItemCount() int {
	count := 0
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// UniqueLineCount retorna el número de líneas distintas
func (c *Cart) UniqueLineCount() int {
	return len(c.lines)
}

// Subtotal suma los totales de línea (descuentos por línea ya aplicados)
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, l := range c.lines {
		subtotal = subtotal.Add(l.Total())
	}
	return subtotal
}

// TotalBeforeTax retorna subtotal − descuento global, con piso en 0
// (un descuento mayor al subtotal nunca propaga montos negativos)
func (c *Cart) TotalBeforeTax() decimal.Decimal {
	total := c.Subtotal().Sub(c.globalDiscount)
	if total.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return total
}

// TaxAmount retorna el impuesto sobre la base imponible
func (c *Cart) TaxAmount() decimal.Decimal {
	return c.TotalBeforeTax().Mul(c.taxRate)
}

// Total retorna el total final de la venta (base + impuesto)
func (c *Cart) Total() decimal.Decimal {
	return c.TotalBeforeTax().Add(c.TaxAmount())
}
