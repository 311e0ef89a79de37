package quote

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var esMX = message.NewPrinter(language.MustParse("es-MX"))

// FormatPrice renders an MXN amount the way the quote form does: dollar
// sign, es-MX digit grouping, fraction only when one is present and at
// most two digits of it.
func FormatPrice(v float64) string {
	return esMX.Sprintf("$%v", number.Decimal(v,
		number.MinFractionDigits(0),
		number.MaxFractionDigits(2),
	))
}
