package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"steeldash/internal/config"
	"steeldash/internal/infrastructure"
	customMiddleware "steeldash/internal/middleware"
	"steeldash/internal/services"
	handlers "steeldash/internal/transport/http"
)

const (
	Version = "1.0.0"
	AppName = "Steel Plant Dashboard"
)

// Application is the assembled dashboard process: configuration,
// logger, the dataset service and the HTTP server that exposes it.
type Application struct {
	Config    *config.Config
	Logger    *slog.Logger
	Router    *chi.Mux
	Server    *http.Server
	Dashboard *services.DashboardService
	Registry  *prometheus.Registry
}

// NewApplication wires the application together. frontendFS holds the
// embedded dashboard page; a nil filesystem leaves the API without a
// front-end, which keeps tests lightweight.
func NewApplication(frontendFS fs.FS) (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := infrastructure.InitializeLogger(cfg.Logging)
	logger.Info("application starting",
		slog.String("name", AppName),
		slog.String("version", Version),
		slog.String("dataset", cfg.Dataset.Path),
		slog.String("sheet", cfg.Dataset.Sheet))

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app := &Application{
		Config:    cfg,
		Logger:    logger,
		Dashboard: services.NewDashboardService(cfg.Dataset, logger),
		Registry:  registry,
	}
	app.Router = app.buildRouter(frontendFS)
	app.Server = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      app.Router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	return app, nil
}

func (app *Application) buildRouter(frontendFS fs.FS) *chi.Mux {
	r := chi.NewRouter()

	r.Use(customMiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(customMiddleware.StructuredLogger(app.Logger))
	r.Use(customMiddleware.Recoverer(app.Logger))
	r.Use(customMiddleware.Metrics(app.Registry))

	dashboardHandler := handlers.NewDashboardHandler(app.Dashboard, app.Logger)
	healthHandler := handlers.NewHealthHandler(app.Dashboard, Version, app.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Use(customMiddleware.RateLimit(app.Config.Server.RateLimit))
		r.Get("/health", healthHandler.HealthCheck)
		r.Mount("/dashboard", dashboardHandler.Routes())
	})

	r.Handle("/metrics", promhttp.HandlerFor(app.Registry, promhttp.HandlerOpts{}))

	if frontendFS != nil {
		r.Handle("/*", http.FileServer(http.FS(frontendFS)))
	}
	return r
}

// Run starts the HTTP server and blocks until the process receives an
// interrupt, then shuts down gracefully within the configured
// timeout.
func (app *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Warm the dataset so the first user interaction is instant. A
	// failure here is not fatal: the error is cached and surfaced to
	// the client on every request, mirroring the dashboard page.
	if _, err := app.Dashboard.Snapshot(ctx); err != nil {
		app.Logger.Warn("dataset not available at startup",
			slog.String("error", err.Error()))
	}

	errCh := make(chan error, 1)
	go func() {
		app.Logger.Info("http server listening", slog.String("addr", app.Server.Addr))
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	app.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.Config.Server.ShutdownTimeout)
	defer cancel()
	if err := app.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
