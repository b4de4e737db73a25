// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs background jobs: publishing pages whose
// scheduled time has arrived and refreshing the GeoIP database.
package scheduler

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/kemasindo/kemas/internal/cache"
	"github.com/kemasindo/kemas/internal/geoip"
	"github.com/kemasindo/kemas/internal/store"
)

// Scheduler owns the cron instance and the jobs it runs.
type Scheduler struct {
	queries *store.Queries
	cron    *cron.Cron
	logger  *slog.Logger
	sitemap *cache.SitemapCache
	geo     *geoip.Lookup
}

// New creates a scheduler. sitemap and geo may be nil; the matching
// jobs are then skipped or become no-ops.
func New(db *sql.DB, logger *slog.Logger, sitemap *cache.SitemapCache, geo *geoip.Lookup) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		queries: store.New(db),
		cron:    cron.New(),
		logger:  logger,
		sitemap: sitemap,
		geo:     geo,
	}
}

// Start registers the jobs and begins the cron loop.
func (s *Scheduler) Start() error {
	// Check for due pages every minute.
	_, err := s.cron.AddFunc("* * * * *", func() {
		if err := s.PublishDuePages(context.Background()); err != nil {
			s.logger.Error("failed to publish due pages", "error", err)
		}
	})
	if err != nil {
		return err
	}

	if s.geo != nil && s.geo.IsEnabled() {
		// Nightly, after MaxMind's release window.
		_, err = s.cron.AddFunc("0 3 * * *", func() {
			if err := s.geo.Reload(); err != nil {
				s.logger.Error("failed to reload geoip database", "error", err)
			}
		})
		if err != nil {
			return err
		}
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// PublishDuePages flips every scheduled page whose publish time has
// passed to published and invalidates the sitemap when any changed.
func (s *Scheduler) PublishDuePages(ctx context.Context) error {
	now := time.Now()
	pages, err := s.queries.ListDuePages(ctx, now)
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		return nil
	}

	published := 0
	for _, page := range pages {
		err := s.queries.PublishCustomPage(ctx, store.PublishCustomPageParams{
			UpdatedAt: now,
			ID:        page.ID,
		})
		if err != nil {
			s.logger.Error("failed to publish scheduled page",
				"page_id", page.ID, "slug", page.Slug, "error", err)
			continue
		}
		published++
		s.logger.Info("published scheduled page",
			"page_id", page.ID, "slug", page.Slug, "publish_at", page.PublishAt.Time)
	}

	if published > 0 && s.sitemap != nil {
		s.sitemap.Invalidate()
	}
	return nil
}
