// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package scheduler

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/kemasindo/kemas/internal/store"
	"github.com/kemasindo/kemas/internal/testutil"
)

func createScheduledPage(t *testing.T, db *sql.DB, slug string, publishAt time.Time) store.CustomPage {
	t.Helper()
	queries := store.New(db)
	now := time.Now()
	user := testutil.CreateUser(t, db, slug+"@kemasindo.co.id", "editor")

	page, err := queries.CreateCustomPage(context.Background(), store.CreateCustomPageParams{
		Slug:      slug,
		TitleEn:   "Title " + slug,
		Template:  "default",
		Status:    "scheduled",
		PublishAt: sql.NullTime{Time: publishAt, Valid: true},
		ContentEn: "[]",
		ContentID: "[]",
		CreatedBy: user.ID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("creating page: %v", err)
	}
	return page
}

func TestPublishDuePages(t *testing.T) {
	db := testutil.NewDB(t)
	due := createScheduledPage(t, db, "due-page", time.Now().Add(-time.Minute))
	future := createScheduledPage(t, db, "future-page", time.Now().Add(time.Hour))

	s := New(db, nil, nil, nil)
	if err := s.PublishDuePages(context.Background()); err != nil {
		t.Fatalf("PublishDuePages: %v", err)
	}

	queries := store.New(db)
	reloaded, err := queries.GetCustomPage(context.Background(), due.ID)
	if err != nil {
		t.Fatalf("reloading due page: %v", err)
	}
	if reloaded.Status != "published" {
		t.Errorf("due page status = %q, want published", reloaded.Status)
	}

	reloaded, err = queries.GetCustomPage(context.Background(), future.ID)
	if err != nil {
		t.Fatalf("reloading future page: %v", err)
	}
	if reloaded.Status != "scheduled" {
		t.Errorf("future page status = %q, want scheduled", reloaded.Status)
	}
}

func TestPublishDuePagesEmpty(t *testing.T) {
	db := testutil.NewDB(t)

	s := New(db, nil, nil, nil)
	if err := s.PublishDuePages(context.Background()); err != nil {
		t.Fatalf("PublishDuePages on empty database: %v", err)
	}
}

func TestStartStop(t *testing.T) {
	db := testutil.NewDB(t)

	s := New(db, nil, nil, nil)
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s.Stop()
}
