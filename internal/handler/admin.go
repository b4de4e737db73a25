// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/kemasindo/kemas/internal/i18n"
	"github.com/kemasindo/kemas/internal/middleware"
	"github.com/kemasindo/kemas/internal/model"
	"github.com/kemasindo/kemas/internal/render"
	"github.com/kemasindo/kemas/internal/store"
)

// AdminHandler serves the dashboard.
type AdminHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager) *AdminHandler {
	return &AdminHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
	}
}

// DashboardData aggregates the counters shown on the dashboard.
type DashboardData struct {
	PageCount          int64
	DraftPageCount     int64
	ScheduledPageCount int64
	PostCount          int64
	MediaCount         int64
	SubmissionCount    int64
	UnreadSubmissions  int64
	RecentSubmissions  []store.ContactSubmission
}

// Dashboard renders the admin dashboard.
// GET /admin
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var data DashboardData
	var err error

	if data.PageCount, err = h.queries.CountCustomPages(ctx); err != nil {
		slog.Error("failed to count pages", "error", err)
	}
	if data.DraftPageCount, err = h.queries.CountCustomPagesByStatus(ctx, model.StatusDraft); err != nil {
		slog.Error("failed to count draft pages", "error", err)
	}
	if data.ScheduledPageCount, err = h.queries.CountCustomPagesByStatus(ctx, model.StatusScheduled); err != nil {
		slog.Error("failed to count scheduled pages", "error", err)
	}
	if data.PostCount, err = h.queries.CountPosts(ctx); err != nil {
		slog.Error("failed to count posts", "error", err)
	}
	if data.MediaCount, err = h.queries.CountMedia(ctx); err != nil {
		slog.Error("failed to count media", "error", err)
	}
	if data.SubmissionCount, err = h.queries.CountContactSubmissions(ctx); err != nil {
		slog.Error("failed to count submissions", "error", err)
	}
	if data.UnreadSubmissions, err = h.queries.CountUnreadContactSubmissions(ctx); err != nil {
		slog.Error("failed to count unread submissions", "error", err)
	}
	if data.RecentSubmissions, err = h.queries.ListContactSubmissions(ctx, store.ListContactSubmissionsParams{
		Limit:  5,
		Offset: 0,
	}); err != nil {
		slog.Error("failed to list recent submissions", "error", err)
	}

	lang := middleware.AdminLang(h.sessionManager, r)
	err = h.renderer.Render(w, r, "admin/dashboard", render.TemplateData{
		Title: i18n.T(lang, "admin.dashboard"),
		Lang:  lang,
		User:  middleware.GetUser(r),
		Data:  data,
	})
	if err != nil {
		logAndInternalError(w, "failed to render dashboard", "error", err)
	}
}
