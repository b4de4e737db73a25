// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"sync"
	"time"
)

// SitemapCache caches generated sitemap XML so every crawler hit does
// not rebuild it from the database. Content edits call Invalidate.
type SitemapCache struct {
	mu          sync.RWMutex
	data        []byte
	generatedAt time.Time
	ttl         time.Duration
	generate    func(ctx context.Context) ([]byte, error)
}

// NewSitemapCache wires a generator function with a TTL. ttl of 0 means
// entries only expire via Invalidate.
func NewSitemapCache(ttl time.Duration, generate func(ctx context.Context) ([]byte, error)) *SitemapCache {
	return &SitemapCache{
		ttl:      ttl,
		generate: generate,
	}
}

// Get returns the cached XML, regenerating it when missing or expired.
func (s *SitemapCache) Get(ctx context.Context) ([]byte, error) {
	s.mu.RLock()
	if s.valid() {
		data := s.data
		s.mu.RUnlock()
		return data, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another goroutine may have regenerated while we waited.
	if s.valid() {
		return s.data, nil
	}

	data, err := s.generate(ctx)
	if err != nil {
		return nil, err
	}
	s.data = data
	s.generatedAt = time.Now()
	return data, nil
}

// valid reports whether the cached copy is usable. Caller holds a lock.
func (s *SitemapCache) valid() bool {
	if s.data == nil {
		return false
	}
	if s.ttl > 0 && time.Since(s.generatedAt) > s.ttl {
		return false
	}
	return true
}

// Invalidate drops the cached copy.
func (s *SitemapCache) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	s.generatedAt = time.Time{}
}

// IsCached reports whether a valid copy is held.
func (s *SitemapCache) IsCached() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.valid()
}

// CachedAt returns when the cached copy was generated.
func (s *SitemapCache) CachedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generatedAt
}
