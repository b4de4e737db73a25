// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads application configuration from KEMAS_* environment
// variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must never reach
// production.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Config holds the application configuration loaded from environment
// variables.
type Config struct {
	DBPath        string `env:"KEMAS_DB_PATH" envDefault:"./data/kemas.db"`
	SessionSecret string `env:"KEMAS_SESSION_SECRET,required"`
	ServerHost    string `env:"KEMAS_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"KEMAS_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"KEMAS_ENV" envDefault:"development"`
	LogLevel      string `env:"KEMAS_LOG_LEVEL" envDefault:"info"`
	UploadsDir    string `env:"KEMAS_UPLOADS_DIR" envDefault:"./uploads"`

	// SiteURL is the public origin used for absolute links in the sitemap
	// and robots.txt, e.g. "https://www.kemasindo.co.id".
	SiteURL string `env:"KEMAS_SITE_URL" envDefault:"http://localhost:8080"`

	// Timezone used when interpreting scheduled publish times entered in
	// the admin panel.
	Timezone string `env:"KEMAS_TIMEZONE" envDefault:"Asia/Jakarta"`

	// Cache configuration. Redis is optional; without it an in-process
	// memory cache is used.
	RedisURL     string `env:"KEMAS_REDIS_URL"`
	CachePrefix  string `env:"KEMAS_CACHE_PREFIX" envDefault:"kemas:"`
	CacheTTL     int    `env:"KEMAS_CACHE_TTL" envDefault:"3600"`
	CacheMaxSize int    `env:"KEMAS_CACHE_MAX_SIZE" envDefault:"10000"`

	// GeoIP configuration. Optional country lookup for contact
	// submissions; points at a GeoLite2-Country.mmdb file.
	GeoIPDBPath string `env:"KEMAS_GEOIP_DB_PATH"`

	// DoSeed enables first-run database seeding (admin user, static page
	// rows, demo content blocks).
	DoSeed bool `env:"KEMAS_DO_SEED" envDefault:"false"`
}

// IsDevelopment returns true when running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the listen address in host:port form.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// GeoIPEnabled returns true if a GeoIP database is configured.
func (c Config) GeoIPEnabled() bool {
	return c.GeoIPDBPath != ""
}

// Location resolves the configured timezone, falling back to UTC when the
// name is unknown.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		slog.Warn("unknown timezone, using UTC", "timezone", c.Timezone)
		return time.UTC
	}
	return loc
}

// MinSessionSecretLength is the minimum required session secret length.
// AES-256 requires 32 bytes.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("KEMAS_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	for _, weak := range knownWeakSecrets {
		if cfg.SessionSecret == weak {
			return nil, fmt.Errorf("KEMAS_SESSION_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	if !hasMinimumEntropy(cfg.SessionSecret) {
		slog.Warn("KEMAS_SESSION_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret spans at least 3 character
// classes.
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
