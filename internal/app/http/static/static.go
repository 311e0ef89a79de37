// Package static serves the embedded quote form. The form duplicates the
// model catalog and the totals arithmetic client-side; both must stay in
// sync with internal/domain/catalog and internal/domain/quote.
package static

import (
	_ "embed"
	"net/http"
)

//go:embed index.html
var formHTML []byte

func Form(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(formHTML)
}
