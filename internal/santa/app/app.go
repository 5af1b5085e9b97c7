package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/santa/internal/santa/http"
	"github.com/aussiebroadwan/santa/internal/santa/service"
	"github.com/aussiebroadwan/santa/internal/santa/store"
	"github.com/aussiebroadwan/santa/internal/santa/store/drivers/jsonfile"
	"github.com/aussiebroadwan/santa/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the santa service with all its dependencies
type Application struct {
	cfg      Config
	logger   *slog.Logger
	registry *prometheus.Registry

	// Core dependencies
	db store.Store

	// Services
	assignmentService   *service.AssignmentService
	groupService        *service.GroupService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
// An unwritable data directory is an error; the service cannot run without
// durable storage.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "santa-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
		registry: prometheus.NewRegistry(),
	}

	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if err := app.initStore(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start housekeeping service
	app.housekeepingService.Start()

	app.logger.Info("santa service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.housekeepingService.Stop()
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down santa service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop the housekeeping service
	app.housekeepingService.Stop()

	// Final flush of everything still in memory
	if err := app.db.Close(); err != nil {
		app.logger.Error("error flushing store", "error", err)
		return err
	}

	app.logger.Info("santa service stopped")
	return nil
}

// Handler returns the fully wired HTTP handler, for serving the API
// in-process.
func (app *Application) Handler() http.Handler {
	return app.router
}

// initStore opens the data directory and loads every resource.
func (app *Application) initStore() error {
	db := jsonfile.NewStore(app.cfg.DataDir,
		jsonfile.WithLogger(app.logger),
		jsonfile.WithRegisterer(app.registry),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Load(ctx); err != nil {
		return fmt.Errorf("failed to load data directory %q: %w", app.cfg.DataDir, err)
	}
	app.db = db

	groups, _ := db.Groups().Count(ctx)
	app.logger.Info("data directory loaded", "dir", app.cfg.DataDir, "groups", groups)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	metrics := service.NewMetrics(app.registry)

	app.assignmentService = service.NewAssignmentService(app.db, metrics, nil)
	app.groupService = &service.GroupService{
		Store:       app.db,
		Assignments: app.assignmentService,
		Metrics:     metrics,
		BaseURL:     app.cfg.BaseURL,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.FlushInterval,
		app.cfg.BackupRetention,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		BuildVersion,
		app.db,
		app.registry,
		app.logger,
	)

	// Wire services to router
	router.GroupService = app.groupService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
