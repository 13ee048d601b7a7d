// Package currency formatea montos para mostrar en la tienda (locale id-ID).
package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// RupiahPrefix antecede a todo precio mostrado.
const RupiahPrefix = "Rp "

// FormatRupiah devuelve el precio en formato indonesio: separador de miles "." y
// decimales con "," (hasta 3 dígitos), p. ej. 100000 -> "Rp 100.000".
func FormatRupiah(amount decimal.Decimal) string {
	p := message.NewPrinter(language.Indonesian)
	return RupiahPrefix + p.Sprintf("%v", number.Decimal(amount.InexactFloat64(), number.MaxFractionDigits(3)))
}
