package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"inventory-service/config"
	"inventory-service/docs" // Swagger docs
	"inventory-service/internal/httpserver"
	"inventory-service/internal/inventory/repository"
	"inventory-service/internal/inventory/repository/memory"
	"inventory-service/internal/inventory/repository/sqldb"
	"inventory-service/pkg/database"
	"inventory-service/pkg/log"
	"inventory-service/pkg/photostore"
)

// @title       Inventory API
// @description Inventory service: register items with optional photos, list, update, delete and search them.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Configuration
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, config.ErrHelp) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Inventory Service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage driver: %s", cfg.Storage.Driver)

	// 3. Photo store
	photos, err := photostore.New(photostore.Config{
		Dir:       cfg.Storage.CacheDir,
		CacheSize: cfg.Photo.CacheSize,
	}, logger)
	if err != nil {
		logger.Error(ctx, "Failed to prepare cache directory: ", err)
		return err
	}
	logger.Infof(ctx, "Cache directory: %s", photos.Dir())

	// 4. Item store
	repo, db, err := openRepository(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open item store: ", err)
		return err
	}
	if db != nil {
		defer db.Close()
	}

	// 5. HTTP Server
	docs.SwaggerInfo.Host = cfg.Addr()
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Host:            cfg.HTTPServer.Host,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
		Repository:      repo,
		PhotoStore:      photos,
		BaseURL:         cfg.BaseURL(),
		EnableHello:     cfg.Storage.Driver == config.DriverMemory,
		DB:              db,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return err
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return err
	}

	logger.Info(ctx, "Server stopped gracefully")
	return nil
}

// openRepository returns the item store selected by storage.driver.
// The *sql.DB is nil for the in-memory store.
func openRepository(ctx context.Context, cfg *config.Config, l log.Logger) (repository.Repository, *sql.DB, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		db, err := database.OpenPostgres(ctx, database.PostgresConfig{
			Host:            cfg.Postgres.Host,
			Port:            cfg.Postgres.Port,
			User:            cfg.Postgres.User,
			Password:        cfg.Postgres.Password,
			Database:        cfg.Postgres.Database,
			SSLMode:         cfg.Postgres.SSLMode,
			ConnectAttempts: cfg.Postgres.ConnectAttempts,
			RetryDelay:      cfg.Postgres.RetryDelay,
		}, l)
		if err != nil {
			return nil, nil, err
		}
		return openSQLRepository(ctx, db, sqldb.Postgres, l)

	case config.DriverSQLite:
		db, err := database.OpenSQLite(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		l.Infof(ctx, "SQLite database: %s", cfg.Storage.SQLitePath)
		return openSQLRepository(ctx, db, sqldb.SQLite, l)

	default:
		return memory.New(), nil, nil
	}
}

func openSQLRepository(ctx context.Context, db *sql.DB, dialect sqldb.Dialect, l log.Logger) (repository.Repository, *sql.DB, error) {
	if err := sqldb.EnsureSchema(ctx, db, dialect); err != nil {
		db.Close()
		return nil, nil, err
	}
	return sqldb.New(db, dialect, l), db, nil
}
