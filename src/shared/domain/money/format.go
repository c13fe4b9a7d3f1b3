package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency moneda por defecto de la caja
const DefaultCurrency = "XOF"

// Format formatea un monto para presentación: separador de miles con espacio
// y código de moneda como sufijo (ej: "3 600 XOF", "1 250.50 XOF").
//
// Solo cosmético: los montos almacenados y derivados trabajan siempre sobre
// el decimal crudo, nunca sobre el string formateado (el round-trip por el
// formato sería lossy).
func Format(amount decimal.Decimal, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	return FormatAmount(amount) + " " + currency
}

// FormatAmount formatea solo la parte numérica, con miles separados por
// espacio; los decimales se muestran solo si el monto no es entero.
func FormatAmount(amount decimal.Decimal) string {
	s := amount.String()

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(digit)
	}
	if fracPart != "" {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
