package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caseforge/caseforge/internal/catalog"
	"github.com/caseforge/caseforge/internal/config"
	"github.com/caseforge/caseforge/internal/database"
	"github.com/caseforge/caseforge/internal/database/postgres"
	"github.com/caseforge/caseforge/internal/opening"
	"github.com/caseforge/caseforge/internal/server"
	"github.com/caseforge/caseforge/internal/user"
)

const serviceName = "caseforge"

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)

	connString := cfg.GetDBConnString()
	if err := database.Migrate(connString); err != nil {
		slog.Error("Failed to apply migrations", "error", err)
		os.Exit(1)
	}

	pool, err := database.NewPool(context.Background(), connString, cfg.DBMaxConns)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	catalogService := catalog.NewService(postgres.NewCatalogRepository(pool))
	openingService := opening.NewService(catalogService, postgres.NewOpeningRepository(pool))
	userService := user.NewService(postgres.NewUserRepository(pool))

	srv := server.NewServer(cfg.Port, pool, catalogService, openingService, userService)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Stop(ctx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			os.Exit(1)
		}
	}
}
