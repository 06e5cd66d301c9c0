package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"inscripcli/internal/config"
	"inscripcli/internal/errors"
	"inscripcli/internal/infrastructure"
	customMiddleware "inscripcli/internal/middleware"
	"inscripcli/internal/services"
	handlers "inscripcli/internal/transport/http"
)

const (
	Version = "1.0.0"
	AppName = "Inscripciones - Course Enrollment Dashboard Service"
)

// Application represents the main application container
type Application struct {
	Config            *config.Config
	Router            *chi.Mux
	Server            *http.Server
	EnrollmentService *services.EnrollmentService
	Registry          *prometheus.Registry
	Logger            *slog.Logger
}

// NewApplication creates a new application instance with dependency injection
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("Application starting",
		slog.String("name", AppName),
		slog.String("version", Version))

	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app := &Application{
		Config:            cfg,
		Logger:            logger,
		Registry:          registry,
		EnrollmentService: services.NewEnrollmentService(logger, services.NewMetrics(registry)),
	}

	app.setupRouter()
	app.createServer()

	return app, nil
}

// setupRouter configures the middleware chain and mounts all handlers.
// Middleware ordering: RequestID, RealIP, StripSlashes, Compress, Logger,
// Recoverer, CORS, RateLimit.
func (a *Application) setupRouter() {
	r := chi.NewRouter()

	r.Use(customMiddleware.RequestID)
	r.Use(customMiddleware.RealIP)
	r.Use(customMiddleware.StripSlashes)
	r.Use(customMiddleware.Compress(5))
	r.Use(customMiddleware.StructuredLogger(a.Logger))
	r.Use(customMiddleware.Recoverer(a.Logger))
	r.Use(customMiddleware.CORS(customMiddleware.CORSConfig{
		AllowedOrigins: []string{"*"},
		Logger:         a.Logger,
	}))

	if a.Config.RateLimit.Enabled {
		r.Use(customMiddleware.NewRateLimiter(
			a.Config.RateLimit.RPS,
			a.Config.RateLimit.Burst,
			a.Logger,
		).Handler)
	}

	errorHandler := errors.NewErrorHandler(a.Logger, false)
	r.NotFound(errorHandler.NotFound)
	r.MethodNotAllowed(errorHandler.MethodNotAllowed)

	enrollmentHandler := handlers.NewEnrollmentHandler(
		a.EnrollmentService, a.Logger, errorHandler, a.Config.Upload.MaxBytes)
	r.Mount("/api/enrollments", enrollmentHandler.Routes())

	healthHandler := handlers.NewHealthHandler(a.EnrollmentService, a.Logger, Version)
	r.Get("/healthz", healthHandler.HealthCheck)

	// Prometheus endpoint sits outside the rate limited group on purpose:
	// scrapers poll it on a fixed interval.
	r.Handle("/metrics", promhttp.HandlerFor(a.Registry, promhttp.HandlerOpts{}))

	a.Router = r
}

func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:           fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:        a.Router,
		ReadTimeout:    a.Config.Server.ReadTimeout,
		WriteTimeout:   a.Config.Server.WriteTimeout,
		IdleTimeout:    a.Config.Server.IdleTimeout,
		MaxHeaderBytes: a.Config.Server.MaxHeaderBytes,
	}
}

// seedFromSampleFile loads the configured sample document into the service
// so a fresh instance starts warm. A missing or unreadable sample is
// non-fatal.
func (a *Application) seedFromSampleFile(ctx context.Context) {
	path := a.Config.Paths.SampleFile
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		a.Logger.WarnContext(ctx, "sample file not loaded",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return
	}

	if _, err := a.EnrollmentService.Ingest(ctx, path, string(data)); err != nil {
		a.Logger.WarnContext(ctx, "sample file yielded no snapshot",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return
	}

	a.Logger.InfoContext(ctx, "seeded initial snapshot from sample file",
		slog.String("path", path))
}

// Start starts the HTTP server in the background.
func (a *Application) Start(ctx context.Context, cancel context.CancelFunc) error {
	a.Logger.InfoContext(ctx, "Starting application",
		slog.String("name", AppName),
		slog.String("version", Version),
		slog.Int("port", a.Config.Server.Port),
		slog.String("level", a.Config.Logging.Level))

	a.seedFromSampleFile(ctx)

	go func() {
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.Logger.ErrorContext(ctx, "Server error", slog.String("error", err.Error()))
			cancel()
		}
	}()

	a.Logger.InfoContext(ctx, "Application started successfully",
		slog.String("address", fmt.Sprintf("http://localhost:%d", a.Config.Server.Port)))

	return nil
}

// Stop gracefully stops the application
func (a *Application) Stop(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "Shutting down application")

	shutdownCtx, cancel := context.WithTimeout(ctx, a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	infrastructure.CloseLogFile()

	a.Logger.InfoContext(ctx, "Application shutdown complete")
	return nil
}

// Run runs the application until interrupted
func (a *Application) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	if err := a.Start(ctx, cancel); err != nil {
		return err
	}

	select {
	case <-sigChan:
		a.Logger.InfoContext(ctx, "Received interrupt signal")
	case <-ctx.Done():
	}

	return a.Stop(context.Background())
}
