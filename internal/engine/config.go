// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package engine

import (
	"fmt"
	"time"

	"github.com/tomtom215/parkstats/internal/cache"
)

// Config holds engine configuration.
type Config struct {
	// CacheTTL is how long a memoized result stays fresh.
	// Default: 10m
	CacheTTL time.Duration

	// Timezone is the IANA zone used for calendar day boundaries.
	// Default: UTC
	Timezone string
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		CacheTTL: cache.DefaultTTL,
		Timezone: "UTC",
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.CacheTTL <= 0 {
		return fmt.Errorf("cache TTL must be positive, got %s", c.CacheTTL)
	}
	if _, err := c.location(); err != nil {
		return err
	}
	return nil
}

func (c *Config) location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
