// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/parkstats/internal/api"
	"github.com/tomtom215/parkstats/internal/config"
	"github.com/tomtom215/parkstats/internal/engine"
	"github.com/tomtom215/parkstats/internal/logging"
	"github.com/tomtom215/parkstats/internal/middleware"
	"github.com/tomtom215/parkstats/internal/supervisor"
	"github.com/tomtom215/parkstats/internal/supervisor/services"
)

// performanceWindow is the number of recent requests kept for percentiles.
const performanceWindow = 1000

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", api.Version).
		Str("environment", cfg.Server.Environment).
		Str("config_path", cfg.Path).
		Str("timezone", cfg.Analytics.Timezone).
		Dur("cache_ttl", cfg.Analytics.CacheTTL).
		Msg("Starting Parkstats with supervisor tree")

	eng, err := engine.NewEngine(&engine.Config{
		CacheTTL: cfg.Analytics.CacheTTL,
		Timezone: cfg.Analytics.Timezone,
	}, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize analytics engine")
	}
	if len(cfg.Registry.Venues) > 0 {
		eng.ReloadRegistry(cfg.Registry.Entries())
		logging.Info().Int("overrides", len(cfg.Registry.Venues)).Msg("Venue overrides applied")
	}
	logging.Info().Int("venues", eng.Registry().Len()).Msg("Venue registry loaded")

	perfMon := middleware.NewPerformanceMonitor(performanceWindow, middleware.DefaultSlowThreshold)
	handler := api.NewHandler(eng, cfg, perfMon)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg.Security), perfMon)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	slogger := slog.New(logging.NewSlogHandlerWithLogger(logging.Logger()))
	tree, err := supervisor.NewSupervisorTree(slogger, supervisor.TreeConfig{})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if cfg.Registry.Watch {
		if cfg.Path == "" {
			logging.Warn().Msg("registry.watch is enabled but no config file was loaded, skipping watcher")
		} else {
			tree.AddConfigService(services.NewRegistryWatchService(cfg.Path, eng))
			logging.Info().Str("path", cfg.Path).Msg("Registry watcher added to supervisor tree")
		}
	}

	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
