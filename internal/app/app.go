package app

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"shacman-mx/cotizador/internal/app/config"
	apphttp "shacman-mx/cotizador/internal/app/http"
	"shacman-mx/cotizador/internal/app/logging"
	pdfgen "shacman-mx/cotizador/internal/domain/quote/pdf/gofpdf"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	asm := pdfgen.New(cfg.SpecsDir, log)
	router := apphttp.NewRouter(cfg, log, asm)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info("listening", "addr", cfg.HTTPAddr, "specs_dir", cfg.SpecsDir)
	if err := srv.ListenAndServe(); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
