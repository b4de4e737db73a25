// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"strings"
	"testing"
)

const testSecret = "Abc123!xyz-Abc123!xyz-Abc123!xyz"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("KEMAS_SESSION_SECRET", testSecret)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DBPath != "./data/kemas.db" {
		t.Errorf("DBPath = %q, want default", cfg.DBPath)
	}
	if cfg.ServerAddr() != "localhost:8080" {
		t.Errorf("ServerAddr() = %q, want localhost:8080", cfg.ServerAddr())
	}
	if !cfg.IsDevelopment() {
		t.Error("default env should be development")
	}
	if cfg.Timezone != "Asia/Jakarta" {
		t.Errorf("Timezone = %q, want Asia/Jakarta", cfg.Timezone)
	}
	if cfg.UseRedisCache() {
		t.Error("Redis should be off by default")
	}
	if cfg.GeoIPEnabled() {
		t.Error("GeoIP should be off by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("KEMAS_SESSION_SECRET", testSecret)
	t.Setenv("KEMAS_SERVER_HOST", "0.0.0.0")
	t.Setenv("KEMAS_SERVER_PORT", "9090")
	t.Setenv("KEMAS_ENV", "production")
	t.Setenv("KEMAS_REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("KEMAS_SITE_URL", "https://www.kemasindo.co.id")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ServerAddr() != "0.0.0.0:9090" {
		t.Errorf("ServerAddr() = %q", cfg.ServerAddr())
	}
	if cfg.IsDevelopment() {
		t.Error("production env reported as development")
	}
	if !cfg.UseRedisCache() {
		t.Error("Redis URL set but UseRedisCache() = false")
	}
	if cfg.SiteURL != "https://www.kemasindo.co.id" {
		t.Errorf("SiteURL = %q", cfg.SiteURL)
	}
}

func TestLoadMissingSecret(t *testing.T) {
	t.Setenv("KEMAS_SESSION_SECRET", "")
	if _, err := Load(); err == nil {
		t.Error("Load() should fail without a session secret")
	}
}

func TestLoadShortSecret(t *testing.T) {
	t.Setenv("KEMAS_SESSION_SECRET", "too-short")
	_, err := Load()
	if err == nil {
		t.Fatal("Load() should reject short secrets")
	}
	if !strings.Contains(err.Error(), "32") {
		t.Errorf("error should mention required length: %v", err)
	}
}

func TestLoadWeakSecret(t *testing.T) {
	t.Setenv("KEMAS_SESSION_SECRET", "change-me-to-32-byte-secret-key!")
	if _, err := Load(); err == nil {
		t.Error("Load() should reject known default secrets")
	}
}

func TestLocationFallback(t *testing.T) {
	cfg := Config{Timezone: "Not/AZone"}
	if loc := cfg.Location(); loc.String() != "UTC" {
		t.Errorf("Location() = %v, want UTC fallback", loc)
	}
}

func TestHasMinimumEntropy(t *testing.T) {
	tests := []struct {
		secret string
		want   bool
	}{
		{"Abc123!secure", true},
		{"alllowercaseonly", false},
		{"lower123only", false},
		{"Lower123Mixed", true},
	}
	for _, tt := range tests {
		if got := hasMinimumEntropy(tt.secret); got != tt.want {
			t.Errorf("hasMinimumEntropy(%q) = %v, want %v", tt.secret, got, tt.want)
		}
	}
}
