package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/millbooks/millbooks/internal/adapter/http/handler"
	"github.com/millbooks/millbooks/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	ReportHandler   *handler.ReportHandler
	SnapshotHandler *handler.SnapshotHandler
	CategoryHandler *handler.CategoryHandler
	HealthHandler   *handler.HealthHandler
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/reports", func(r chi.Router) {
			r.Get("/rollup", cfg.ReportHandler.Rollup)
			r.Get("/rollup/{category}", cfg.ReportHandler.CategoryRollup)
		})

		r.Get("/categories", cfg.CategoryHandler.List)

		r.Route("/snapshots", func(r chi.Router) {
			r.Post("/", cfg.SnapshotHandler.Ingest)
			r.Get("/", cfg.SnapshotHandler.List)
			r.Get("/latest", cfg.SnapshotHandler.Latest)
		})
	})

	return r
}
