// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"encoding/json"
	"time"
)

// TypedCache wraps a Cacher with JSON serialization for a concrete type.
type TypedCache[T any] struct {
	cache Cacher
	ttl   time.Duration
}

// NewTypedCache creates a typed view over a Cacher. ttl of 0 uses the
// backend default.
func NewTypedCache[T any](cache Cacher, ttl time.Duration) *TypedCache[T] {
	return &TypedCache[T]{cache: cache, ttl: ttl}
}

// Get retrieves and unmarshals a value.
func (tc *TypedCache[T]) Get(ctx context.Context, key string) (T, error) {
	var zero T

	data, err := tc.cache.Get(ctx, key)
	if err != nil {
		return zero, err
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		// Stale or corrupt entry; drop it so the next read repopulates.
		_ = tc.cache.Delete(ctx, key)
		return zero, err
	}
	return value, nil
}

// Set marshals and stores a value with the default TTL.
func (tc *TypedCache[T]) Set(ctx context.Context, key string, value T) error {
	return tc.SetWithTTL(ctx, key, value, tc.ttl)
}

// SetWithTTL marshals and stores a value with an explicit TTL.
func (tc *TypedCache[T]) SetWithTTL(ctx context.Context, key string, value T, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return tc.cache.Set(ctx, key, data, ttl)
}

// Delete removes a key.
func (tc *TypedCache[T]) Delete(ctx context.Context, key string) error {
	return tc.cache.Delete(ctx, key)
}

// Has reports whether a key exists.
func (tc *TypedCache[T]) Has(ctx context.Context, key string) (bool, error) {
	return tc.cache.Has(ctx, key)
}

// GetOrSet returns the cached value, or computes, caches, and returns it
// on a miss. Compute errors are returned without caching.
func (tc *TypedCache[T]) GetOrSet(ctx context.Context, key string, compute func() (T, error)) (T, error) {
	value, err := tc.Get(ctx, key)
	if err == nil {
		return value, nil
	}

	value, err = compute()
	if err != nil {
		var zero T
		return zero, err
	}

	// Best-effort; a failed write just means the next call recomputes.
	_ = tc.Set(ctx, key, value)
	return value, nil
}
