// Package quote holds the quotation value objects and the pricing rules
// shared by the PDF assembler and the HTTP boundary.
package quote

import (
	"fmt"
	"time"

	"shacman-mx/cotizador/internal/domain/catalog"
)

// Transmission is the optional gearbox choice from the form. The zero
// value means the seller left it blank.
type Transmission string

const (
	TransmissionAutomatic Transmission = "automatica"
	TransmissionStandard  Transmission = "estandar"
)

// Display maps the wire value to the label printed on the summary page.
func (t Transmission) Display() string {
	switch t {
	case TransmissionAutomatic:
		return "Automática"
	case TransmissionStandard:
		return "Estándar"
	default:
		return "N/A"
	}
}

// Quote is the set of parameters for one quotation. It lives for a single
// request and is never persisted.
type Quote struct {
	CreatedAt time.Time

	Seller  string
	Client  string
	Company string

	Model        catalog.Entry
	Transmission Transmission

	Qty             int
	DiscountPercent float64
	Notes           string
}

// Totals are derived per request, never stored.
type Totals struct {
	Subtotal       float64
	DiscountAmount float64
	Total          float64
}

// Totals recomputes the pricing from scratch. The arithmetic runs in
// float64 so the result matches the form's preview digit for digit (the
// browser computes the same expression in IEEE 754 doubles).
func (q Quote) Totals() Totals {
	subtotal := float64(q.Model.UnitPrice) * float64(q.Qty)
	discount := subtotal * q.DiscountPercent / 100
	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		Total:          subtotal - discount,
	}
}

// UnitsLabel renders the quantity with its pluralized unit suffix.
func (q Quote) UnitsLabel() string {
	if q.Qty == 1 {
		return "1 unidad"
	}
	return fmt.Sprintf("%d unidades", q.Qty)
}
