// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/parkstats/internal/logging"
)

// maxNearbyRadiusKm bounds proximity queries so a single request cannot scan the world.
const maxNearbyRadiusKm = 500

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateAnalytics(); err != nil {
		return err
	}

	if err := c.validateRegistry(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("SERVER_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	switch c.Server.Environment {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("ENVIRONMENT must be one of development, staging, production, got %q", c.Server.Environment)
	}
	return nil
}

func (c *Config) validateAnalytics() error {
	if c.Analytics.CacheTTL < time.Second {
		return fmt.Errorf("CACHE_TTL must be at least 1s, got %v", c.Analytics.CacheTTL)
	}
	if _, err := time.LoadLocation(c.Analytics.Timezone); err != nil {
		return fmt.Errorf("ANALYTICS_TIMEZONE %q is not a valid IANA zone: %w", c.Analytics.Timezone, err)
	}
	if c.Analytics.NearbyRadiusKm <= 0 || c.Analytics.NearbyRadiusKm > maxNearbyRadiusKm {
		return fmt.Errorf("NEARBY_RADIUS_KM must be in (0, %d], got %v", maxNearbyRadiusKm, c.Analytics.NearbyRadiusKm)
	}
	if c.Analytics.MaxRecords < 1 {
		return fmt.Errorf("MAX_RECORDS must be at least 1, got %d", c.Analytics.MaxRecords)
	}
	return nil
}

// validateRegistry checks venue overrides. Zero coordinates are accepted
// because 0,0 is a real point, only the ranges are enforced.
func (c *Config) validateRegistry() error {
	seen := make(map[string]struct{}, len(c.Registry.Venues))
	for i, v := range c.Registry.Venues {
		name := strings.TrimSpace(v.Name)
		if name == "" {
			return fmt.Errorf("registry.venues[%d]: name is required", i)
		}
		if v.Latitude < -90 || v.Latitude > 90 {
			return fmt.Errorf("registry.venues[%d] %q: latitude %v out of range", i, name, v.Latitude)
		}
		if v.Longitude < -180 || v.Longitude > 180 {
			return fmt.Errorf("registry.venues[%d] %q: longitude %v out of range", i, name, v.Longitude)
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("registry.venues[%d]: duplicate venue %q", i, name)
		}
		seen[key] = struct{}{}
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitReqs)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %v", c.Security.RateLimitWindow)
		}
	}
	if c.Server.Environment == "production" {
		for _, origin := range c.Security.CORSOrigins {
			if origin == "*" {
				return fmt.Errorf("CORS_ORIGINS must not contain '*' in production")
			}
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL %q is not a valid level (trace, debug, info, warn, error)", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
