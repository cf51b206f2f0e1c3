// Command pantry-server starts the pantry-keeper HTTP API server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nstepura/pantry-keeper/internal/config"
	"github.com/nstepura/pantry-keeper/internal/migrate"
	"github.com/nstepura/pantry-keeper/internal/quantity"
	"github.com/nstepura/pantry-keeper/internal/repository/postgres"
	httpserver "github.com/nstepura/pantry-keeper/internal/server/http"
	"github.com/nstepura/pantry-keeper/internal/service"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main loads configuration, runs migrations, wires the service graph and
// serves HTTP until interrupted.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback, _ := zap.NewProduction()
		fallback.Fatal("load config", zap.Error(err))
	}

	logger := newLogger(cfg.Log.Level)
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", cfg.Server.Addr),
	)

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrate.Up(ctx, cfg.Database.DSN); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	// DB pool
	db, err := postgres.New(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("postgres.New", zap.Error(err))
	}
	defer db.Close()

	// Repositories
	inventoryRepo := postgres.NewInventoryRepo(db)
	recipeRepo := postgres.NewRecipeRepo(db)
	feedRepo := postgres.NewFeedRepo(db)
	planRepo := postgres.NewMealPlanRepo(db)
	consumptionRepo := postgres.NewConsumptionRepo(db, quantity.ExactUnit{})

	// Services
	inventorySvc := service.NewInventoryService(inventoryRepo)
	recipeSvc := service.NewRecipeService(recipeRepo, inventoryRepo, consumptionRepo, quantity.ExactUnit{})
	feedSvc := service.NewFeedService(feedRepo, cfg.Feed.MaxPageSize)
	planSvc := service.NewMealPlanService(planRepo, recipeRepo)

	app := httpserver.New(inventorySvc, recipeSvc, feedSvc, planSvc, db, logger)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      app.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Server.Addr))
		errCh <- srv.ListenAndServe()
	}()

	// Wait for stop
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
			_ = srv.Close()
		}
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}

	logger.Info("stopped")
}

// newLogger builds a production zap logger at the configured level.
func newLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := cfg.Build()
	if err != nil {
		logger, _ = zap.NewProduction()
	}
	return logger
}
