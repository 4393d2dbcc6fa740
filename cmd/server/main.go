package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/smarthome_predictor/backend/internal/artifact"
	"github.com/smarthome_predictor/backend/internal/config"
	"github.com/smarthome_predictor/backend/internal/db"
	httpapi "github.com/smarthome_predictor/backend/internal/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger := log.Level(level).With().Str("service", "price-predictor").Logger()

	ctx := context.Background()

	// The artifact must be resident before serving; a missing or invalid
	// artifact is fatal, not retried.
	fetcher := &artifact.Fetcher{URL: cfg.ModelDownloadURL}
	if err := fetcher.EnsureLocal(ctx, cfg.ModelPath); err != nil {
		logger.Fatal().Err(err).Msg("failed to obtain model artifact")
	}

	artifacts := artifact.NewStore()
	if err := artifacts.Reload(cfg.ModelPath); err != nil {
		logger.Fatal().Err(err).Str("path", cfg.ModelPath).Msg("failed to load model artifact")
	}
	art, _ := artifacts.Snapshot()
	logger.Info().
		Strs("models", art.ModelNames()).
		Int("features", len(art.SelectedFeatures)).
		Bool("has_ensemble_model", art.EnsembleModel != nil).
		Msg("model artifact loaded")

	var history *db.Store
	if cfg.DatabaseURL != "" {
		history, err = db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect db")
		}
		defer history.Close()
		if err := history.EnsureSchema(ctx); err != nil {
			logger.Fatal().Err(err).Msg("failed to ensure history schema")
		}
	} else {
		logger.Info().Msg("no DATABASE_URL set, prediction history disabled")
	}

	router := httpapi.Router(cfg, artifacts, history, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	logger.Info().Msg("server stopped")
}
