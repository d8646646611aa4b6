// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"line\nbreak", `line\x0abreak`},
		{"tab\there", `tab\x09here`},
		{"del\x7f", `del\x7f`},
	}
	for _, tt := range tests {
		if got := sanitizeLogValue(tt.in); got != tt.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateETag(t *testing.T) {
	t.Parallel()

	a := generateETag([]byte(`{"a":1}`))
	b := generateETag([]byte(`{"a":2}`))
	if a == b {
		t.Error("different bodies should produce different ETags")
	}
	if !strings.HasPrefix(a, `W/"`) || !strings.HasSuffix(a, `"`) {
		t.Errorf("ETag %q should be a quoted weak validator", a)
	}
	if a != generateETag([]byte(`{"a":1}`)) {
		t.Error("ETag should be deterministic")
	}
}

func TestGetYearParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query   string
		want    int
		wantErr bool
	}{
		{"", 0, false},
		{"year=2024", 2024, false},
		{"year=%202019%20", 2019, false},
		{"year=2003", 0, true},
		{"year=twenty", 0, true},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/x?"+tt.query, nil)
		got, apiErr := getYearParam(req)
		if (apiErr != nil) != tt.wantErr {
			t.Errorf("getYearParam(%q) error = %v, wantErr %v", tt.query, apiErr, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("getYearParam(%q) = %d, want %d", tt.query, got, tt.want)
		}
	}
}

func TestGetFloatParam(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/x?radius_km=7.5&bad=x", nil)
	if got, ok := getFloatParam(req, "radius_km", 25); !ok || got != 7.5 {
		t.Errorf("radius_km = %v, %v", got, ok)
	}
	if got, ok := getFloatParam(req, "missing", 25); !ok || got != 25 {
		t.Errorf("missing = %v, %v, want default", got, ok)
	}
	if _, ok := getFloatParam(req, "bad", 25); ok {
		t.Error("bad value should report !ok")
	}
}

func TestDecodeJSON_ContentLengthTooLarge(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader("{}"))
	req.ContentLength = maxBodyBytes + 1
	rec := httptest.NewRecorder()

	var dst map[string]interface{}
	if err := decodeJSON(rec, req, &dst); err != ErrBodyTooLarge {
		t.Errorf("decodeJSON() error = %v, want ErrBodyTooLarge", err)
	}
}
