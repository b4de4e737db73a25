// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"log/slog"
	"time"
)

// Config selects and configures the cache backend.
type Config struct {
	RedisURL        string // empty means in-memory
	Prefix          string
	DefaultTTL      time.Duration
	MaxSize         int
	CleanupInterval time.Duration
}

// New builds a Cacher from config. When RedisURL is set it tries Redis
// first and falls back to the in-memory cache on connection failure, so
// a missing Redis never takes the site down.
func New(cfg Config, logger *slog.Logger) Cacher {
	if cfg.RedisURL != "" {
		opts := DefaultRedisCacheOptions()
		opts.URL = cfg.RedisURL
		if cfg.Prefix != "" {
			opts.Prefix = cfg.Prefix
		}
		if cfg.DefaultTTL > 0 {
			opts.DefaultTTL = cfg.DefaultTTL
		}

		c, err := NewRedisCache(opts)
		if err == nil {
			logger.Info("cache: using Redis backend", "prefix", opts.Prefix)
			return c
		}
		logger.Warn("cache: Redis unavailable, falling back to memory", "error", err)
	}

	memOpts := DefaultMemoryCacheOptions()
	if cfg.DefaultTTL > 0 {
		memOpts.DefaultTTL = cfg.DefaultTTL
	}
	if cfg.MaxSize > 0 {
		memOpts.MaxSize = cfg.MaxSize
	}
	if cfg.CleanupInterval > 0 {
		memOpts.CleanupInterval = cfg.CleanupInterval
	}
	return NewMemoryCache(memOpts)
}
