// Package main implements the entry point for the item API server,
// a small CRUD service for items backed by a relational database.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jmallory/item-api/internal/api"
	"github.com/jmallory/item-api/internal/config"
	"github.com/jmallory/item-api/internal/platform/gormdb"
	"github.com/jmallory/item-api/internal/platform/logger"
	"github.com/jmallory/item-api/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

// run loads configuration, wires dependencies, and starts the HTTP server.
// Separated from main so initialization failures propagate as errors.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server)
	log.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("database_driver", cfg.Database.Driver))

	db, err := gormdb.NewDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := gormdb.CloseDB(db); err != nil {
			log.Error("failed to close database", slog.String("error", err.Error()))
		}
	}()

	if err := gormdb.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("database migrations completed")

	itemStore := gormdb.NewGormItemStore(db, log)
	itemService := service.NewItemService(itemStore, cfg.Validation, log)
	itemHandler := api.NewItemHandler(itemService, log)

	router := setupRouter(itemHandler, log)

	return startServer(cfg.Server, router, log)
}
