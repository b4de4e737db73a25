// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSitemapCacheGeneratesOnce(t *testing.T) {
	calls := 0
	sc := NewSitemapCache(0, func(_ context.Context) ([]byte, error) {
		calls++
		return []byte("<urlset/>"), nil
	})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		data, err := sc.Get(ctx)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if string(data) != "<urlset/>" {
			t.Errorf("Get = %q, want %q", data, "<urlset/>")
		}
	}
	if calls != 1 {
		t.Errorf("generator called %d times, want 1", calls)
	}
}

func TestSitemapCacheInvalidate(t *testing.T) {
	calls := 0
	sc := NewSitemapCache(0, func(_ context.Context) ([]byte, error) {
		calls++
		return []byte("x"), nil
	})
	ctx := context.Background()

	sc.Get(ctx)
	if !sc.IsCached() {
		t.Fatal("IsCached = false after Get")
	}

	sc.Invalidate()
	if sc.IsCached() {
		t.Error("IsCached = true after Invalidate")
	}

	sc.Get(ctx)
	if calls != 2 {
		t.Errorf("generator called %d times, want 2", calls)
	}
}

func TestSitemapCacheTTL(t *testing.T) {
	calls := 0
	sc := NewSitemapCache(10*time.Millisecond, func(_ context.Context) ([]byte, error) {
		calls++
		return []byte("x"), nil
	})
	ctx := context.Background()

	sc.Get(ctx)
	time.Sleep(20 * time.Millisecond)
	sc.Get(ctx)

	if calls != 2 {
		t.Errorf("generator called %d times, want 2", calls)
	}
}

func TestSitemapCacheGeneratorError(t *testing.T) {
	wantErr := errors.New("query failed")
	sc := NewSitemapCache(0, func(_ context.Context) ([]byte, error) {
		return nil, wantErr
	})

	if _, err := sc.Get(context.Background()); !errors.Is(err, wantErr) {
		t.Errorf("Get error = %v, want %v", err, wantErr)
	}
	if sc.IsCached() {
		t.Error("IsCached = true after generator error")
	}
}
