package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"shacman-mx/cotizador/internal/app/config"
	"shacman-mx/cotizador/internal/domain/quote/pdf"
)

type Handlers struct {
	Cfg       config.Config
	Log       *slog.Logger
	Assembler pdf.Assembler
}

func New(cfg config.Config, log *slog.Logger, asm pdf.Assembler) *Handlers {
	return &Handlers{
		Cfg:       cfg,
		Log:       log,
		Assembler: asm,
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
