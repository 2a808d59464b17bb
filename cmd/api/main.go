package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/stackroast/stackroast/internal/api/handlers"
	"github.com/stackroast/stackroast/internal/api/router"
	"github.com/stackroast/stackroast/internal/config"
	"github.com/stackroast/stackroast/internal/pkg/logger"
	"github.com/stackroast/stackroast/internal/pkg/validator"
	"github.com/stackroast/stackroast/internal/repository/sqlite"
	"github.com/stackroast/stackroast/internal/services"
	"github.com/stackroast/stackroast/internal/worker"
	"github.com/stackroast/stackroast/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	db, err := sqlite.New(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := sqlite.RunMigrations(db, migrations.GetFS()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Repositories
	userRepo := sqlite.NewUserRepository(db)
	toolRepo := sqlite.NewToolRepository(db)
	stackRepo := sqlite.NewStackRepository(db)

	// Services
	userService := services.NewUserService(userRepo, log)
	toolService := services.NewToolService(toolRepo, log)
	stackService := services.NewStackService(stackRepo, toolService, log)
	roastService := services.NewRoastService(cfg.Roast.OpenAIAPIKey, log)
	recommendationService := services.NewRecommendationService(toolService, log)

	val := validator.New()

	h := &router.Handlers{
		Health:         handlers.NewHealthHandler(db, log),
		Auth:           handlers.NewAuthHandler(userService, cfg, log, val),
		Tool:           handlers.NewToolHandler(toolService, log, val),
		Stack:          handlers.NewStackHandler(stackService, toolService, roastService, log, val),
		Score:          handlers.NewScoreHandler(stackService, log, val),
		Recommendation: handlers.NewRecommendationHandler(recommendationService, log, val),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	refresher := worker.NewPercentileRefresher(stackService, cfg.Worker.PercentileSchedule, log)
	if err := refresher.Start(ctx); err != nil {
		log.Fatalf("Failed to start percentile refresher: %v", err)
	}
	defer refresher.Stop()

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.New(cfg, log, h),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(map[string]interface{}{
			"addr":        srv.Addr,
			"environment": cfg.Server.Environment,
			"db_driver":   cfg.Database.Driver,
		}).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		log.Fatalf("Server failed: %v", err)
	case <-ctx.Done():
		log.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.ErrorWithErr(err, "Graceful shutdown failed")
		srv.Close()
	}

	log.Info("Server stopped")
}
