// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

/*
Package config provides centralized configuration management for Parkstats.

Configuration is loaded with Koanf v2 from three layers, later layers
overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file (CONFIG_PATH, then config.yaml, config.yml,
    /etc/parkstats/config.yaml, /etc/parkstats/config.yml)
 3. Environment variables

# Configuration Structure

  - ServerConfig: bind address, port, request timeout, environment
  - AnalyticsConfig: cache TTL, calendar timezone, nearby radius, record cap
  - RegistryConfig: venue coordinate overrides and hot reload
  - SecurityConfig: CORS origins and rate limiting
  - LoggingConfig: level, format, caller info

# Environment Variables

  - HTTP_HOST, HTTP_PORT, SERVER_TIMEOUT, ENVIRONMENT
  - CACHE_TTL (default: 10m), ANALYTICS_TIMEZONE (default: UTC)
  - NEARBY_RADIUS_KM (default: 25), MAX_RECORDS (default: 10000)
  - REGISTRY_WATCH (default: false)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT, CORS_ORIGINS
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

CORS_ORIGINS is comma separated. Unmapped environment variables are ignored.

# Venue Overrides

Venue coordinates can only come from the config file:

	registry:
	  watch: true
	  venues:
	    - name: "Lee Valley parkrun"
	      latitude: 51.5562
	      longitude: -0.0356

With watch enabled the file is re-read on change and the overrides are
applied to the running registry.

# Usage

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    log.Fatal(err)
	}
*/
package config
