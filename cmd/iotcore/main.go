// iotcore is an IoT device-management backend.
//
// It exposes an HTTP API for account registration, bearer-token
// authentication, device registration, and telemetry ingestion, backed
// by an embedded SQLite database.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/farrand/iotcore/migrations"

	"github.com/farrand/iotcore/internal/api"
	"github.com/farrand/iotcore/internal/auth"
	"github.com/farrand/iotcore/internal/device"
	"github.com/farrand/iotcore/internal/infrastructure/config"
	"github.com/farrand/iotcore/internal/infrastructure/database"
	"github.com/farrand/iotcore/internal/infrastructure/logging"
	"github.com/farrand/iotcore/internal/telemetry"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting iotcore",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	if cfg.UsingFallbackSecret() {
		log.Warn("using built-in development JWT secret; set IOTCORE_JWT_SECRET before exposing this service")
	}

	// Open database
	db, err := database.Open(database.Config{
		Path:        cfg.Database.Path,
		WALMode:     cfg.Database.WALMode,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		log.Info("closing database")
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()
	log.Info("database connected", "path", cfg.Database.Path)

	if migrateErr := db.Migrate(ctx); migrateErr != nil {
		return fmt.Errorf("running migrations: %w", migrateErr)
	}
	log.Info("database migrations complete")

	userRepo := auth.NewUserRepository(db.DB)
	deviceRepo := device.NewSQLiteRepository(db.DB)
	telemetryRepo := telemetry.NewSQLiteRepository(db.DB)

	userCount, err := userRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting users: %w", err)
	}
	log.Info("repositories initialised", "users", userCount)

	server, err := api.New(api.Deps{
		Config:        cfg,
		Logger:        log,
		UserRepo:      userRepo,
		DeviceRepo:    deviceRepo,
		TelemetryRepo: telemetryRepo,
		Version:       version,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}

	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("starting API server: %w", err)
	}
	defer func() {
		if closeErr := server.Close(); closeErr != nil {
			log.Error("error closing API server", "error", closeErr)
		}
	}()

	if err := healthCheck(ctx, db, server); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	log.Info("all health checks passed")

	log.Info("initialisation complete, waiting for shutdown signal")

	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")
	log.Info("iotcore stopped")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses IOTCORE_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("IOTCORE_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}

// healthCheck verifies the database and API server are healthy.
func healthCheck(ctx context.Context, db *database.DB, server *api.Server) error {
	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := server.HealthCheck(ctx); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	return nil
}
