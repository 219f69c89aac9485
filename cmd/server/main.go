package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/millbooks/millbooks/internal/adapter/http"
	"github.com/millbooks/millbooks/internal/adapter/http/handler"
	postgresRepo "github.com/millbooks/millbooks/internal/adapter/repository/postgres"
	redisRepo "github.com/millbooks/millbooks/internal/adapter/repository/redis"
	"github.com/millbooks/millbooks/internal/infrastructure/config"
	"github.com/millbooks/millbooks/internal/infrastructure/logger"
	"github.com/millbooks/millbooks/internal/infrastructure/metrics"
	"github.com/millbooks/millbooks/internal/infrastructure/postgres"
	"github.com/millbooks/millbooks/internal/infrastructure/redis"
	"github.com/millbooks/millbooks/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	log.Logger = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	zerolog.DefaultContextLogger = &log.Logger

	ctx := context.Background()

	// Run migrations
	if cfg.MigrationsPath != "" {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize metrics, repositories and use cases
	m := metrics.New()
	snapshotRepo := postgresRepo.NewSnapshotRepository(pool)
	reportCache := redisRepo.NewReportCache(redisClient)
	versionGen := postgresRepo.NewVersionGenerator()

	reportUC := usecase.NewReportUseCase(snapshotRepo, reportCache, cfg.RollupCacheTTL, m)
	snapshotUC := usecase.NewSnapshotUseCase(snapshotRepo, versionGen, m)

	// Initialize handlers
	reportHandler := handler.NewReportHandler(reportUC)
	snapshotHandler := handler.NewSnapshotHandler(snapshotUC)
	categoryHandler := handler.NewCategoryHandler()
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		ReportHandler:   reportHandler,
		SnapshotHandler: snapshotHandler,
		CategoryHandler: categoryHandler,
		HealthHandler:   healthHandler,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
