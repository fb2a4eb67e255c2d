package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/invoiceocr/backend/internal/api"
	"github.com/invoiceocr/backend/internal/infrastructure/config"
	"github.com/invoiceocr/backend/internal/infrastructure/db/postgres"
	"github.com/invoiceocr/backend/internal/infrastructure/db/redis"
	"github.com/invoiceocr/backend/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet.
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	if err := postgres.Migrate(ctx, cfg.Postgres.DSN); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	pool, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer pool.Close()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	e := api.NewRouter(pool, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
