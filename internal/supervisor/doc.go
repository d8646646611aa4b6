// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

/*
Package supervisor provides process supervision for Parkstats using suture v4.

The supervisor tree manages every long-running service with automatic
restart, failure isolation and graceful shutdown.

# Overview

Services are organized into two layers:

	RootSupervisor ("parkstats")
	├── ConfigSupervisor ("config-layer")
	│   └── RegistryWatchService (if registry.watch is enabled)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A config watcher that keeps failing is restarted inside its own layer and
never takes the HTTP server down with it.

# Usage

	tree, err := supervisor.NewSupervisorTree(logger, supervisor.TreeConfig{})
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, timeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

# Configuration

TreeConfig controls failure thresholds and timeouts. Zero values are replaced
by DefaultTreeConfig, which mirrors suture's own defaults:

  - FailureThreshold: 5 failures before backoff
  - FailureDecay: 30 seconds
  - FailureBackoff: 15 seconds
  - ShutdownTimeout: 10 seconds

# Logging

Suture events are routed through sutureslog into the zerolog-backed slog
adapter from the logging package, so restarts and backoff appear in the
application log with the rest of the structured output.
*/
package supervisor
