// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestTimeoutFastHandler(t *testing.T) {
	handler := Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("done"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
	if rec.Body.String() != "done" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "done")
	}
}

func TestTimeoutSlowHandler(t *testing.T) {
	release := make(chan struct{})
	handler := Timeout(20*time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	close(release)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
	if rec.Body.String() != "Request timeout" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestStripTrailingSlash(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		wantRedirect string // empty means pass-through
	}{
		{"root untouched", "/", ""},
		{"indonesian root untouched", "/id/", ""},
		{"page redirected", "/about/", "/about"},
		{"nested redirected", "/id/products/boxes/", "/id/products/boxes"},
		{"no slash untouched", "/about", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := StripTrailingSlash(okHandler())
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if tt.wantRedirect == "" {
				if rec.Code != http.StatusOK {
					t.Errorf("status = %d, want 200", rec.Code)
				}
				return
			}
			if rec.Code != http.StatusMovedPermanently {
				t.Fatalf("status = %d, want 301", rec.Code)
			}
			if got := rec.Header().Get("Location"); got != tt.wantRedirect {
				t.Errorf("Location = %q, want %q", got, tt.wantRedirect)
			}
		})
	}
}

func TestStripTrailingSlashKeepsQuery(t *testing.T) {
	handler := StripTrailingSlash(okHandler())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blog/?page=2", nil))

	if got := rec.Header().Get("Location"); got != "/blog?page=2" {
		t.Errorf("Location = %q, want %q", got, "/blog?page=2")
	}
}
