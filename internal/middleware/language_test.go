// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kemasindo/kemas/internal/model"
)

func TestLanguagePrefixDetection(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantLang string
		wantPath string
	}{
		{"english root", "/", model.LangEnglish, "/"},
		{"english page", "/products/boxes", model.LangEnglish, "/products/boxes"},
		{"indonesian root", "/id", model.LangIndonesian, "/"},
		{"indonesian root slash", "/id/", model.LangIndonesian, "/"},
		{"indonesian page", "/id/products/boxes", model.LangIndonesian, "/products/boxes"},
		{"slug starting with id", "/identity", model.LangEnglish, "/identity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotLang, gotPath string
			handler := Language(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotLang = Lang(r)
				gotPath = r.URL.Path
			}))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if gotLang != tt.wantLang {
				t.Errorf("lang = %q, want %q", gotLang, tt.wantLang)
			}
			if gotPath != tt.wantPath {
				t.Errorf("path = %q, want %q", gotPath, tt.wantPath)
			}
		})
	}
}

func TestLangDefaultsToEnglish(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := Lang(req); got != model.LangEnglish {
		t.Errorf("Lang without middleware = %q, want %q", got, model.LangEnglish)
	}
}
