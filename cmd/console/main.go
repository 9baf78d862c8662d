// Package main is the entry point for the warehouse console gateway.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"stockgate/internal/core/config"
	"stockgate/internal/domain/staging"
	v1 "stockgate/internal/infrastructure/http/v1"
	"stockgate/internal/infrastructure/notify"
	"stockgate/internal/infrastructure/storage/redisstore"
	"stockgate/internal/infrastructure/upstream"
	"stockgate/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.App.LogLevel,
		Development: cfg.App.Development(),
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// Quantities marshal as JSON numbers, matching the backend's wire format.
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	log.Info("starting console gateway")

	// --- Redis (batch slots + realtime notifications) ---
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalw("failed to ping redis", "error", err)
	}
	log.Info("redis connection established")

	// --- Upstream inventory backend ---
	upstreamClient := upstream.New(cfg.Upstream)
	log.Infow("upstream client configured", "base_url", cfg.Upstream.BaseURL)

	// --- Batch accumulator ---
	batchStore := redisstore.New(redisClient)
	publisher := notify.NewPublisher(redisClient, cfg.Notify.Channel)
	stagingService := staging.NewService(batchStore, upstreamClient, publisher, cfg.Notify.Channel)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Logger:   log,
		Upstream: upstreamClient,
		Staging:  stagingService,
		Redis:    redisClient,
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "addr", cfg.HTTP.Addr())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}
