// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package config

import (
	"time"

	"github.com/tomtom215/parkstats/internal/geo"
	"github.com/tomtom215/parkstats/internal/models"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Analytics AnalyticsConfig `koanf:"analytics"`
	Registry  RegistryConfig  `koanf:"registry"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`

	// Path is the config file that was loaded, empty when none was found.
	Path string `koanf:"-"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development", "staging", "production"
}

// AnalyticsConfig holds engine settings
type AnalyticsConfig struct {
	// CacheTTL is how long memoized venue statistics and calendars stay fresh.
	// Default: 10m
	CacheTTL time.Duration `koanf:"cache_ttl"`

	// Timezone is the IANA zone used for activity calendar day boundaries.
	// Default: UTC
	Timezone string `koanf:"timezone"`

	// NearbyRadiusKm is the default radius for venue proximity queries.
	// Default: 25
	NearbyRadiusKm float64 `koanf:"nearby_radius_km"`

	// MaxRecords caps the number of runs or volunteer records per request.
	// Default: 10000
	MaxRecords int `koanf:"max_records"`
}

// RegistryConfig holds coordinate registry overrides
type RegistryConfig struct {
	// Venues adds or moves registry entries on top of the built-in table.
	Venues []VenueOverride `koanf:"venues"`

	// Watch reloads the overrides when the config file changes.
	// Default: false
	Watch bool `koanf:"watch"`
}

// VenueOverride is one registry entry supplied by configuration.
type VenueOverride struct {
	Name      string  `koanf:"name"`
	Latitude  float64 `koanf:"latitude"`
	Longitude float64 `koanf:"longitude"`
}

// Entries converts the overrides to registry entries.
func (r RegistryConfig) Entries() []geo.VenueEntry {
	entries := make([]geo.VenueEntry, 0, len(r.Venues))
	for _, v := range r.Venues {
		entries = append(entries, geo.VenueEntry{
			Name:       v.Name,
			Coordinate: models.Coordinate{Lat: v.Latitude, Lon: v.Longitude},
		})
	}
	return entries
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}
