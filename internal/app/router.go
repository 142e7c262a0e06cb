package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jaksoftwares/inventory-master/internal/export"
	"github.com/jaksoftwares/inventory-master/internal/inventory"
	"github.com/jaksoftwares/inventory-master/internal/observability"
	"github.com/jaksoftwares/inventory-master/internal/reports"
	"github.com/jaksoftwares/inventory-master/internal/supplier"
	"github.com/jaksoftwares/inventory-master/jobs"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	InventoryHandler *inventory.Handler
	SupplierHandler  *supplier.Handler
	ReportsHandler   *reports.Handler
	ExportHandler    *export.Handler
	JobsHandler      *jobs.Handler
	Metrics          *observability.Metrics
}

// NewRouter constructs the chi.Router with application defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/inventory", params.InventoryHandler.MountRoutes)
	r.Route("/api/supplier", params.SupplierHandler.MountRoutes)
	if params.ReportsHandler != nil {
		r.Route("/api/reports", params.ReportsHandler.MountRoutes)
	}
	if params.ExportHandler != nil {
		r.Route("/api/export", params.ExportHandler.MountRoutes)
	}
	if params.JobsHandler != nil {
		r.Route("/api/jobs", params.JobsHandler.MountRoutes)
	}

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
