package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abkrino/cozmo-factor/internal/app"
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
	"github.com/abkrino/cozmo-factor/internal/shared"
	"github.com/abkrino/cozmo-factor/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Error("load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg)

	var st *store.Store
	if cfg.SeedData {
		st = store.NewSeeded()
	} else {
		st = store.New()
	}
	clock := shared.SystemClock{}
	metrics := observability.NewMetrics()

	catalogService := catalog.NewService(st, clock)
	productionService := production.NewService(st, clock, metrics)
	salesService := sales.NewService(st, clock, metrics)
	procurementService := procurement.NewService(st, clock)
	qualityService := quality.NewService(st, clock)
	hrService := hr.NewService(st, clock)
	marketingService := marketing.NewService(st, clock)

	assistantClient := assistant.NewClient(logger, cfg.AssistantEndpoint, cfg.AssistantAPIKey, cfg.AssistantModel)

	router := app.NewRouter(app.RouterParams{
		Logger:             logger,
		Config:             cfg,
		CatalogHandler:     catalog.NewHandler(logger, catalogService),
		ProductionHandler:  production.NewHandler(logger, productionService),
		SalesHandler:       sales.NewHandler(logger, salesService),
		ProcurementHandler: procurement.NewHandler(logger, procurementService),
		QualityHandler:     quality.NewHandler(logger, qualityService),
		HRHandler:          hr.NewHandler(logger, hrService),
		MarketingHandler:   marketing.NewHandler(logger, marketingService),
		AssistantHandler:   assistant.NewHandler(logger, assistantClient, st),
		ReportHandler:      report.NewHandler(st),
		Metrics:            metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
