// CloudCompass - Cloud Provider and Service Model Recommendation
// Copyright 2026 The CloudCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cloudcompass/cloudcompass

// Command server runs the CloudCompass recommendation API.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/cloudcompass/cloudcompass/internal/api"
	"github.com/cloudcompass/cloudcompass/internal/config"
	"github.com/cloudcompass/cloudcompass/internal/logging"
	"github.com/cloudcompass/cloudcompass/internal/recommend"
	"github.com/cloudcompass/cloudcompass/internal/supervisor"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: os.Stderr,
	})
	logger := logging.Logger()

	engine, err := recommend.NewEngine(cfg.EngineConfig(), logger)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to initialize recommendation engine")
	}

	router := api.NewRouter(cfg, engine)
	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	tree := supervisor.NewTree(logger)
	tree.Add(supervisor.NewHTTPService("api-http", server, cfg.Addr(), cfg.Server.ShutdownTimeout, logger))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info().
		Str("addr", cfg.Addr()).
		Str("log_level", cfg.Logging.Level).
		Msg("cloudcompass starting")

	if err := tree.Serve(ctx); err != nil {
		logging.Fatal().Err(err).Msg("service exited with error")
	}
	logger.Info().Msg("cloudcompass stopped")
}
