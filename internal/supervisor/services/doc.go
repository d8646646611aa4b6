// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

/*
Package services provides suture.Service wrappers for Parkstats components.

Each wrapper translates a component lifecycle into suture's context-aware
Serve pattern:

	type Service interface {
	    Serve(ctx context.Context) error
	}

# Available Services

HTTPServerService runs an *http.Server. ListenAndServe runs in a goroutine
and the server is shut down gracefully when the context is canceled:

	svc := services.NewHTTPServerService(server, 10*time.Second)
	tree.AddAPIService(svc)

RegistryWatchService watches the config file and re-applies venue coordinate
overrides to the analytics engine when it changes. Bursts of file events are
debounced, and a file that fails to load or validate is logged and ignored:

	svc := services.NewRegistryWatchService(cfg.Path, eng)
	tree.AddConfigService(svc)

# Return Values

Both services return ctx.Err() on a clean shutdown so suture does not restart
them. Any other error triggers a restart with backoff.
*/
package services
