package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"shacman-mx/cotizador/internal/domain/catalog"
	"shacman-mx/cotizador/internal/domain/quote"
)

// CreateQuoteRequest mirrors the form payload field for field. Quantity
// and discount bounds are enforced here as well, not only in the form.
type CreateQuoteRequest struct {
	Vendedor    string  `json:"vendedor" validate:"required"`
	Cliente     string  `json:"cliente" validate:"required"`
	Empresa     string  `json:"empresa"`
	Modelo      string  `json:"modelo" validate:"required"`
	Transmision string  `json:"transmision" validate:"omitempty,oneof=automatica estandar"`
	Cantidad    int     `json:"cantidad" validate:"gte=1"`
	Descuento   float64 `json:"descuento" validate:"gte=0,lte=100"`
	Notas       string  `json:"notas"`
}

var validate = validator.New()

// CreateQuote handles POST /v1/quotes: validate, resolve the model,
// assemble the PDF and hand it back as a download.
func (h *Handlers) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req CreateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}
	if err := validate.Struct(req); err != nil {
		h.Log.Warn("quote request rejected", "error", err)
		h.writeError(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}

	entry, err := catalog.Lookup(req.Modelo)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownModel) {
			h.writeError(w, http.StatusBadRequest, "Modelo no encontrado")
			return
		}
		h.Log.Error("catalog lookup failed", "modelo", req.Modelo, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Error al generar el PDF")
		return
	}

	q := quote.Quote{
		CreatedAt:       time.Now(),
		Seller:          req.Vendedor,
		Client:          req.Cliente,
		Company:         req.Empresa,
		Model:           entry,
		Transmission:    quote.Transmission(req.Transmision),
		Qty:             req.Cantidad,
		DiscountPercent: req.Descuento,
		Notes:           req.Notas,
	}

	pdfBytes, err := h.Assembler.Assemble(q)
	if err != nil {
		h.Log.Error("quote assembly failed", "modelo", entry.ID, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Error al generar el PDF")
		return
	}

	filename := quote.Filename(entry, q.Client, q.CreatedAt)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}
