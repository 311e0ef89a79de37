// Package catalog holds the dealership's fixed truck model table.
package catalog

import "github.com/cockroachdb/errors"

// ErrUnknownModel is returned when a quote references a model id that is
// not in the table.
var ErrUnknownModel = errors.New("modelo no encontrado")

// Entry is one sellable configuration: list price in whole MXN pesos and
// the ficha técnica PDF shipped with the quote.
type Entry struct {
	ID        string
	Name      string
	UnitPrice int64
	SpecFile  string
}

// Entries is defined once at process start and never mutated. The embedded
// quote form carries an identical copy; the two must stay in sync.
var Entries = []Entry{
	{ID: "L5000", Name: "SHACMAN L5000", UnitPrice: 750000, SpecFile: "SHACMAN-L5000-4X2.pdf"},
	{ID: "X5000", Name: "SHACMAN X5000", UnitPrice: 1250000, SpecFile: "Shacman X5000 Ficha Técnica.pdf"},
	{ID: "F3000", Name: "SHACMAN F3000", UnitPrice: 980000, SpecFile: "SHACMAN-F3000.pdf"},
	{ID: "H3000", Name: "SHACMAN H3000", UnitPrice: 1150000, SpecFile: "SHACMAN-H3000.pdf"},
	{ID: "M3000", Name: "SHACMAN M3000", UnitPrice: 1070000, SpecFile: "SHACMAN-M3000.pdf"},
}

// Lookup resolves a model id by exact match.
func Lookup(id string) (Entry, error) {
	for _, e := range Entries {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, errors.Wrapf(ErrUnknownModel, "modelo %q", id)
}
