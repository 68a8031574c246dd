package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"career-offer-tracker/internal/api/profile"
	"career-offer-tracker/internal/config"
	"career-offer-tracker/internal/device"
	"career-offer-tracker/internal/logger"
	"career-offer-tracker/internal/offers"
	"career-offer-tracker/internal/server"
	"career-offer-tracker/internal/storage/postgres"
	"career-offer-tracker/internal/storage/redis"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting career offer tracker",
		zap.String("log_level", cfg.LogLevel),
		zap.String("listen_addr", cfg.ListenAddr),
	)

	log.Info("connecting to PostgreSQL...")
	registry, err := postgres.New(cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to PostgreSQL", zap.Error(err))
	}
	defer registry.Close()

	log.Info("connecting to Redis...")
	cache, err := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, log)
	if err != nil {
		log.Fatal("failed to connect to Redis", zap.Error(err))
	}
	defer cache.Close()

	// Devices unseen for over a cookie lifetime can never return under the
	// same id; drop them on startup.
	if _, err := registry.PurgeStaleDevices(context.Background(), device.CookieLifetime); err != nil {
		log.Warn("stale device purge failed", zap.Error(err))
	}

	profileClient := profile.New(cfg.ProfileAPIBaseURL, cfg.ProfileAPITimeout, log)
	log.Info("profile service client created")

	engine := offers.New(cache, profileClient, log)
	identity := device.New(registry, log)
	handler := server.NewHandler(engine, identity, log)

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      server.NewRouter(handler, log),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Info("received shutdown signal", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("shutdown failed", zap.Error(err))
		}
	}()

	log.Info("server is running...")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server stopped with error", zap.Error(err))
	}

	log.Info("server stopped")
}
