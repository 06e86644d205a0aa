package main

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/taxlens/taxlens/internal/config"
	"github.com/taxlens/taxlens/internal/db"
	"github.com/taxlens/taxlens/internal/imagegen"
	"github.com/taxlens/taxlens/internal/migrations"
	"github.com/taxlens/taxlens/internal/rates"
)

type server struct {
	db       *sql.DB
	schedule *rates.Schedule
	images   *imagegen.Client
}

func main() {
	cfg := config.Load()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	if cfg.IsDev() {
		if err := migrations.Up(database, "migrations"); err != nil {
			log.Fatalf("failed to run database migrations: %v", err)
		}
	}

	srv := &server{
		db:       database,
		schedule: rates.Year2024(),
		images:   imagegen.NewClient(cfg.ImageAPIBaseURL, cfg.ImageAPIKey),
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/api/tax-burden", srv.handleTaxBurden)
	r.Get("/api/rates/federal", srv.handleFederalRates)
	r.Get("/api/rates/provincial", srv.handleProvincialRates)
	r.Get("/api/rates/payroll", srv.handlePayrollRates)
	r.Get("/api/rates/gst-hst", srv.handleGSTHSTRates)
	r.Get("/api/employment-types", srv.handleEmploymentTypes)
	r.Get("/api/tax-tips", srv.handleTaxTips)
	r.Post("/api/scenarios", srv.handleScenarios)
	r.Post("/api/share-image", srv.handleShareImage)
	r.Get("/api/analyses", srv.handleAnalysesList)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (tax year %d)", addr, srv.schedule.Year)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
