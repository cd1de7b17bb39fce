package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/adapter/evaluator"
	httpadapter "github.com/ceverett10/experience-marketplace-platform-sub001/internal/adapter/http"
	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/adapter/postgres"
	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/adapter/usecase"
	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/config"
	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/port"
	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/db"
)

// main is the entry point of the bidding engine. It loads configuration,
// optionally runs database migrations and seeds demo data, wires the
// adapters into the engine, then either executes a single run (RUN_ONCE)
// or starts the HTTP trigger surface. On receiving a termination signal it
// gracefully shuts down the server.
func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured. We use the Psql sub-config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.SeedDemo {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("demo catalogue seeded")
	}

	repo := postgres.NewCatalogueRepository(pool)
	checker := postgres.NewInventoryChecker(pool)
	outbox := postgres.NewDeploymentOutbox(pool)

	// The AI quality evaluator is optional; an empty URL disables it.
	var qualityEval port.QualityEvaluator
	if cfg.Engine.EvaluatorURL != "" {
		qualityEval = evaluator.NewHTTPEvaluator(cfg.Engine.EvaluatorURL, cfg.Engine.EvaluatorTimeout)
	}

	engine, err := usecase.NewEngine(repo, checker, qualityEval, outbox, cfg.Bidding, logger)
	if err != nil {
		logger.Error("engine setup error", slog.Any("error", err))
		os.Exit(1)
	}

	if cfg.Engine.RunOnce {
		summary, err := engine.Run(ctx, port.RunMode(cfg.Engine.Mode))
		if err != nil {
			logger.Error("engine run failed", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("run complete",
			slog.String("run_id", summary.RunID),
			slog.Int("selected", summary.Selected),
			slog.Int("groups", summary.GroupsEmitted),
			slog.Float64("budget_allocated", summary.BudgetAllocated))
		return
	}

	handler := httpadapter.NewHandler(engine, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
