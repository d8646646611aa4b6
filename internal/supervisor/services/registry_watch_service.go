// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/parkstats/internal/config"
	"github.com/tomtom215/parkstats/internal/geo"
	"github.com/tomtom215/parkstats/internal/logging"
	"github.com/tomtom215/parkstats/internal/metrics"
)

// DefaultReloadDebounce coalesces the burst of events editors produce on save.
const DefaultReloadDebounce = 250 * time.Millisecond

// RegistryReloader applies venue overrides. Satisfied by *engine.Engine.
type RegistryReloader interface {
	ReloadRegistry(entries []geo.VenueEntry)
}

// OverrideLoader reads venue overrides from a config file.
type OverrideLoader func(path string) ([]geo.VenueEntry, error)

// FileWatcher invokes onChange whenever path changes until stop is called.
type FileWatcher func(path string, onChange func()) (stop func() error, err error)

// RegistryWatchService reloads venue coordinate overrides when the config
// file changes. Overrides are additive: removing a venue from the file does
// not unregister it until the process restarts.
type RegistryWatchService struct {
	path     string
	reloader RegistryReloader
	load     OverrideLoader
	watch    FileWatcher
	debounce time.Duration
	name     string
}

// RegistryWatchOption configures a RegistryWatchService.
type RegistryWatchOption func(*RegistryWatchService)

// WithOverrideLoader replaces the config-file loader.
func WithOverrideLoader(load OverrideLoader) RegistryWatchOption {
	return func(s *RegistryWatchService) {
		s.load = load
	}
}

// WithFileWatcher replaces the koanf file watcher.
func WithFileWatcher(watch FileWatcher) RegistryWatchOption {
	return func(s *RegistryWatchService) {
		s.watch = watch
	}
}

// WithDebounce sets the quiet period before a reload. Zero reloads on every event.
func WithDebounce(d time.Duration) RegistryWatchOption {
	return func(s *RegistryWatchService) {
		s.debounce = d
	}
}

// NewRegistryWatchService creates a watcher for the config file at path.
func NewRegistryWatchService(path string, reloader RegistryReloader, opts ...RegistryWatchOption) *RegistryWatchService {
	s := &RegistryWatchService{
		path:     path,
		reloader: reloader,
		load:     loadOverrides,
		watch:    config.WatchConfigFile,
		debounce: DefaultReloadDebounce,
		name:     "registry-watcher",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// loadOverrides re-reads the full layered configuration so a file that no
// longer validates is rejected as a whole.
func loadOverrides(path string) ([]geo.VenueEntry, error) {
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return cfg.Registry.Entries(), nil
}

// Serve implements suture.Service. A failure to start watching is returned
// so the supervisor retries with backoff.
func (s *RegistryWatchService) Serve(ctx context.Context) error {
	changes := make(chan struct{}, 1)
	stop, err := s.watch(s.path, func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", s.path, err)
	}
	defer func() {
		if err := stop(); err != nil {
			logging.Warn().Err(err).Str("service", s.name).Msg("Failed to stop config watcher")
		}
	}()

	logging.Info().Str("service", s.name).Str("path", s.path).Msg("Watching config file for venue overrides")

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-changes:
			if s.debounce <= 0 {
				s.reload()
				continue
			}
			if timer == nil {
				timer = time.NewTimer(s.debounce)
			} else {
				timer.Reset(s.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			s.reload()
		}
	}
}

func (s *RegistryWatchService) reload() {
	entries, err := s.load(s.path)
	if err != nil {
		metrics.RecordRegistryReload(err, 0)
		logging.Warn().Err(err).Str("path", s.path).Msg("Config reload failed, keeping current venue registry")
		return
	}
	s.reloader.ReloadRegistry(entries)
}

// String implements fmt.Stringer; suture uses it in log events.
func (s *RegistryWatchService) String() string {
	return s.name
}
