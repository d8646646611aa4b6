// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package services

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

// mockHTTPServer is a test double for the HTTPServer interface.
type mockHTTPServer struct {
	listenAndServeErr    error
	listenAndServeBlock  bool
	shutdownErr          error
	listenAndServeCount  atomic.Int32
	shutdownCount        atomic.Int32
	listenAndServeCalled chan struct{}
	stopCh               chan struct{}
}

func newMockHTTPServer() *mockHTTPServer {
	return &mockHTTPServer{
		listenAndServeCalled: make(chan struct{}, 1),
		stopCh:               make(chan struct{}),
	}
}

func (m *mockHTTPServer) ListenAndServe() error {
	m.listenAndServeCount.Add(1)

	select {
	case m.listenAndServeCalled <- struct{}{}:
	default:
	}

	if m.listenAndServeErr != nil {
		return m.listenAndServeErr
	}
	if m.listenAndServeBlock {
		<-m.stopCh
		return http.ErrServerClosed
	}
	return nil
}

func (m *mockHTTPServer) Shutdown(_ context.Context) error {
	m.shutdownCount.Add(1)
	if m.listenAndServeBlock {
		close(m.stopCh)
	}
	return m.shutdownErr
}

var _ suture.Service = (*HTTPServerService)(nil)

func TestNewHTTPServerService(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		timeout time.Duration
		want    time.Duration
	}{
		{"explicit timeout", 5 * time.Second, 5 * time.Second},
		{"zero uses default", 0, DefaultShutdownTimeout},
		{"negative uses default", -time.Second, DefaultShutdownTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := NewHTTPServerService(newMockHTTPServer(), tt.timeout)
			if svc.shutdownTimeout != tt.want {
				t.Errorf("shutdownTimeout = %v, want %v", svc.shutdownTimeout, tt.want)
			}
			if svc.String() != "http-server" {
				t.Errorf("String() = %q, want %q", svc.String(), "http-server")
			}
		})
	}
}

func TestHTTPServerService_GracefulShutdown(t *testing.T) {
	t.Parallel()

	mock := newMockHTTPServer()
	mock.listenAndServeBlock = true
	svc := NewHTTPServerService(mock, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	select {
	case <-mock.listenAndServeCalled:
	case <-time.After(2 * time.Second):
		t.Fatal("ListenAndServe was not called")
	}

	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}

	if got := mock.shutdownCount.Load(); got != 1 {
		t.Errorf("Shutdown called %d times, want 1", got)
	}
}

func TestHTTPServerService_StartFailure(t *testing.T) {
	t.Parallel()

	mock := newMockHTTPServer()
	mock.listenAndServeErr = errors.New("address already in use")
	svc := NewHTTPServerService(mock, time.Second)

	err := svc.Serve(context.Background())
	if err == nil {
		t.Fatal("expected error when ListenAndServe fails")
	}
	if !errors.Is(err, mock.listenAndServeErr) {
		t.Errorf("error should wrap the listen error, got %v", err)
	}
	if got := mock.shutdownCount.Load(); got != 0 {
		t.Errorf("Shutdown called %d times, want 0", got)
	}
}

func TestHTTPServerService_UnexpectedStop(t *testing.T) {
	t.Parallel()

	svc := NewHTTPServerService(newMockHTTPServer(), time.Second)
	if err := svc.Serve(context.Background()); err == nil {
		t.Fatal("expected error when server returns without being shut down")
	}
}

func TestHTTPServerService_ShutdownError(t *testing.T) {
	t.Parallel()

	mock := newMockHTTPServer()
	mock.listenAndServeBlock = true
	mock.shutdownErr = errors.New("drain timeout")
	svc := NewHTTPServerService(mock, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	<-mock.listenAndServeCalled
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, mock.shutdownErr) {
			t.Errorf("Serve() error = %v, want wrapped shutdown error", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
