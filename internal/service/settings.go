// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/kemasindo/kemas/internal/cache"
	"github.com/kemasindo/kemas/internal/model"
	"github.com/kemasindo/kemas/internal/store"
)

const settingsCacheKey = "settings:all"

// SettingsService reads and writes site settings, keeping a cached copy
// of the full map for the public site's per-request lookups.
type SettingsService struct {
	queries *store.Queries
	cache   *cache.TypedCache[map[string]string]
}

// NewSettingsService creates a SettingsService backed by the given cache.
func NewSettingsService(db *sql.DB, c cache.Cacher) *SettingsService {
	return &SettingsService{
		queries: store.New(db),
		cache:   cache.NewTypedCache[map[string]string](c, 10*time.Minute),
	}
}

// All returns every setting merged over the defaults.
func (s *SettingsService) All(ctx context.Context) (map[string]string, error) {
	return s.cache.GetOrSet(ctx, settingsCacheKey, func() (map[string]string, error) {
		rows, err := s.queries.ListSettings(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing settings: %w", err)
		}
		values := make(map[string]string, len(rows)+len(model.SettingsDefaults))
		for key, def := range model.SettingsDefaults {
			values[key] = def
		}
		for _, row := range rows {
			values[row.Key] = row.Value
		}
		return values, nil
	})
}

// Get returns one setting, falling back to its default.
func (s *SettingsService) Get(ctx context.Context, key string) string {
	values, err := s.All(ctx)
	if err != nil {
		return model.SettingsDefaults[key]
	}
	return values[key]
}

// Bool returns a boolean setting.
func (s *SettingsService) Bool(ctx context.Context, key string) bool {
	return model.BoolSetting(s.Get(ctx, key))
}

// SiteName returns the site name for a content language.
func (s *SettingsService) SiteName(ctx context.Context, lang string) string {
	if lang == model.LangIndonesian {
		if name := s.Get(ctx, model.SettingSiteNameID); name != "" {
			return name
		}
	}
	return s.Get(ctx, model.SettingSiteName)
}

// SiteDescription returns the site description for a content language.
func (s *SettingsService) SiteDescription(ctx context.Context, lang string) string {
	if lang == model.LangIndonesian {
		if desc := s.Get(ctx, model.SettingSiteDescriptionID); desc != "" {
			return desc
		}
	}
	return s.Get(ctx, model.SettingSiteDescription)
}

// Update writes a batch of settings and drops the cached map.
func (s *SettingsService) Update(ctx context.Context, values map[string]string) error {
	now := time.Now()
	for key, value := range values {
		if err := s.queries.UpsertSetting(ctx, store.UpsertSettingParams{
			Key:       key,
			Value:     value,
			UpdatedAt: now,
		}); err != nil {
			return fmt.Errorf("saving setting %s: %w", key, err)
		}
	}
	return s.cache.Delete(ctx, settingsCacheKey)
}
