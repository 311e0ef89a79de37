package quote

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"shacman-mx/cotizador/internal/domain/catalog"
)

const brandPrefix = "SHACMAN "

var (
	// NFD decomposition followed by dropping the combining marks turns
	// "José" into "Jose".
	foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	disallowed = regexp.MustCompile(`[^a-zA-Z0-9 \-]+`)
	spaceRuns  = regexp.MustCompile(`\s+`)
)

// CleanName strips a free-text name down to what is safe inside a download
// filename: marks folded away, anything outside letters, digits, spaces
// and hyphens removed, interior whitespace collapsed. Idempotent.
func CleanName(s string) string {
	folded, _, err := transform.String(foldMarks, s)
	if err != nil {
		folded = s
	}
	folded = disallowed.ReplaceAllString(folded, "")
	folded = spaceRuns.ReplaceAllString(folded, " ")
	return strings.TrimSpace(folded)
}

// Filename derives the download name for an assembled quote: brand-stripped
// model, cleaned client name and the hyphenated es-MX short date in a fixed
// template. Same inputs always yield the same string.
func Filename(model catalog.Entry, client string, date time.Time) string {
	return fmt.Sprintf("Cotizacion Shacman - %s - %s - %s.pdf",
		strings.TrimPrefix(model.Name, brandPrefix),
		CleanName(client),
		date.Format("2-1-2006"),
	)
}
