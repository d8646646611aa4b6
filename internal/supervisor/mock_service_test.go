// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
)

// stubService implements suture.Service for tree tests. It fails the first
// failures calls and then runs until its context is canceled.
type stubService struct {
	name       string
	failures   int32
	startCount atomic.Int32
	started    chan struct{}
}

func newStubService(name string, failures int32) *stubService {
	return &stubService{name: name, failures: failures, started: make(chan struct{}, 16)}
}

func (s *stubService) Serve(ctx context.Context) error {
	n := s.startCount.Add(1)
	select {
	case s.started <- struct{}{}:
	default:
	}
	if n <= s.failures {
		return errors.New("simulated failure")
	}
	<-ctx.Done()
	return ctx.Err()
}

func (s *stubService) String() string {
	return s.name
}
