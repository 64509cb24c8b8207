package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/yang-ventures/portfolio-backend/internal/api"
	"github.com/yang-ventures/portfolio-backend/internal/config"
	"github.com/yang-ventures/portfolio-backend/internal/database"
	"github.com/yang-ventures/portfolio-backend/internal/logger"
	"github.com/yang-ventures/portfolio-backend/internal/scheduler"
	"github.com/yang-ventures/portfolio-backend/internal/service"
	"github.com/yang-ventures/portfolio-backend/internal/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// The logger depends on the configuration, so fall back to a default one.
		logger.New("production", "info").Fatalw("Failed to load configuration", "error", err)
	}

	log := logger.New(cfg.App.Env, cfg.App.LogLevel)
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log.Desugar())

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalw("Failed to open database", "path", cfg.Database.Path, "error", err)
	}
	defer db.Close()

	applied, err := database.Migrate(context.Background(), db)
	if err != nil {
		log.Fatalw("Failed to migrate database", "error", err)
	}
	log.Infow("Connected to database",
		"path", cfg.Database.Path,
		"migrations_applied", applied,
		"version", version.Version,
	)

	services := service.NewServices(db, cfg, log)

	var snapshots *scheduler.Scheduler
	if cfg.Snapshot.Enabled {
		snapshots, err = scheduler.New(cfg.Snapshot.Schedule, services.Snapshot, log.Named("scheduler"))
		if err != nil {
			log.Fatalw("Failed to create snapshot scheduler", "error", err)
		}
		snapshots.Start()
	}

	router := api.NewRouter(services, cfg, log.Named("http"))

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("Starting server", "addr", cfg.Server.Addr, "funds", cfg.Funds)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("Server failed to start", "error", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if snapshots != nil {
		snapshots.Stop(ctx)
	}
	if err := server.Shutdown(ctx); err != nil {
		log.Errorw("Server forced to shutdown", "error", err)
		return
	}

	log.Info("Server exited")
}
