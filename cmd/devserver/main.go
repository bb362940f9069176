package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jafarshop/shopfront/internal/config"
	"github.com/jafarshop/shopfront/internal/devserver"
	"github.com/jafarshop/shopfront/internal/devserver/postgres"
	"github.com/jafarshop/shopfront/internal/pkg/clock"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Server.APIKey == "" {
		fmt.Fprintln(os.Stderr, "DEV_API_KEY is required")
		os.Exit(1)
	}
	apiKeyHash, err := devserver.HashAPIKey(cfg.Server.APIKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to hash API key: %v\n", err)
		os.Exit(1)
	}

	// Pick storage: Postgres when configured, in-memory otherwise.
	var catalog devserver.Catalog
	if cfg.Database.Host != "" {
		db, err := postgres.NewConnection(cfg.Database)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
			os.Exit(1)
		}
		defer db.Close()

		pgCatalog := postgres.NewCatalog(db, logger)
		if err := pgCatalog.EnsureSchema(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to prepare schema: %v\n", err)
			os.Exit(1)
		}
		catalog = pgCatalog
		logger.Info("Using Postgres catalog", zap.String("host", cfg.Database.Host))
	} else {
		catalog = devserver.NewMemoryCatalog()
		logger.Info("Using in-memory catalog")
	}

	router := devserver.NewRouter(devserver.Options{
		Environment: cfg.Environment,
		APIKeyHash:  apiKeyHash,
		UserID:      cfg.Backend.UserID,
	}, catalog, clock.RealClock{}, logger)

	logger.Info("Starting devserver", zap.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
