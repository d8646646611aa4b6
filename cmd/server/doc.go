// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

/*
Package main is the entry point for the Parkstats server application.

Parkstats turns a runner's exported parkrun history into statistics: venue
and volunteering rankings, regional coverage, an activity calendar, yearly
performance series, milestones, and a proximity lookup over a built-in venue
coordinate registry. Clients POST their records as JSON; the server keeps no
per-user state beyond a short-lived memoization cache.

# Application Architecture

The server runs under Suture v4 process supervision:

	RootSupervisor ("parkstats")
	├── ConfigSupervisor ("config-layer")
	│   └── Registry watcher (registry.watch: true)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config file and environment variables
 2. Logging: zerolog with JSON/console output modes
 3. Engine: analytics engine with coordinate registry and memoization cache
 4. HTTP: Chi router with request ID, CORS, rate limiting and metrics middleware
 5. Supervisor Tree: HTTP server plus the optional config watcher

# Configuration

Configuration is layered (highest priority wins):
  - Environment variables (HTTP_PORT, CACHE_TTL, LOG_LEVEL, ...)
  - Config file (CONFIG_PATH, or config.yaml in the working directory)
  - Built-in defaults

Venue coordinates missing from the built-in table can be added under
registry.venues in the config file. With registry.watch enabled, edits are
applied without a restart.

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server stops accepting
connections and drains in-flight requests before the process exits.

# Example Usage

	export HTTP_PORT=8857
	export LOG_FORMAT=console
	./parkstats

	curl -X POST localhost:8857/api/v1/analytics/summary \
	  -d '{"runs":[{"date":"01/07/2023","event":"Bushy parkrun","time":"24:40"}]}'
*/
package main
