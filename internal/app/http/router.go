package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"shacman-mx/cotizador/internal/app/config"
	"shacman-mx/cotizador/internal/app/http/handlers"
	"shacman-mx/cotizador/internal/app/http/middleware"
	"shacman-mx/cotizador/internal/app/http/static"
	"shacman-mx/cotizador/internal/domain/quote/pdf"
)

func NewRouter(cfg config.Config, log *slog.Logger, asm pdf.Assembler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging(log))
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	h := handlers.New(cfg, log, asm)

	r.Get("/", static.Form)
	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/quotes", h.CreateQuote)
	})

	return r
}
