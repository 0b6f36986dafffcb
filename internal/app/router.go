package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/abkrino/cozmo-factor/internal/assistant"
	"github.com/abkrino/cozmo-factor/internal/catalog"
	"github.com/abkrino/cozmo-factor/internal/hr"
	"github.com/abkrino/cozmo-factor/internal/marketing"
	"github.com/abkrino/cozmo-factor/internal/observability"
	"github.com/abkrino/cozmo-factor/internal/procurement"
	"github.com/abkrino/cozmo-factor/internal/production"
	"github.com/abkrino/cozmo-factor/internal/quality"
	"github.com/abkrino/cozmo-factor/internal/report"
	"github.com/abkrino/cozmo-factor/internal/sales"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger *slog.Logger
	Config *Config

	CatalogHandler     *catalog.Handler
	ProductionHandler  *production.Handler
	SalesHandler       *sales.Handler
	ProcurementHandler *procurement.Handler
	QualityHandler     *quality.Handler
	HRHandler          *hr.Handler
	MarketingHandler   *marketing.Handler
	AssistantHandler   *assistant.Handler
	ReportHandler      *report.Handler

	Metrics *observability.Metrics
}

// NewRouter constructs the chi.Router for the console API.
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

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/inventory", params.CatalogHandler.MountRoutes)
		r.Route("/production", params.ProductionHandler.MountRoutes)
		r.Route("/sales", params.SalesHandler.MountRoutes)
		r.Route("/procurement", params.ProcurementHandler.MountRoutes)
		r.Route("/quality", params.QualityHandler.MountRoutes)
		r.Route("/hr", params.HRHandler.MountRoutes)
		r.Route("/marketing", params.MarketingHandler.MountRoutes)
		if params.AssistantHandler != nil {
			r.Route("/assistant", params.AssistantHandler.MountRoutes)
		}
		r.Route("/dashboard", params.ReportHandler.MountRoutes)
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
