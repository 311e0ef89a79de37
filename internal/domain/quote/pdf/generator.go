package pdf

import "shacman-mx/cotizador/internal/domain/quote"

// Assembler builds the downloadable quote document: up to two pages copied
// from the model's ficha técnica followed by one rendered summary page.
type Assembler interface {
	Assemble(q quote.Quote) ([]byte, error)
}
