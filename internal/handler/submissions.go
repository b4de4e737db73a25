// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/kemasindo/kemas/internal/i18n"
	"github.com/kemasindo/kemas/internal/middleware"
	"github.com/kemasindo/kemas/internal/render"
	"github.com/kemasindo/kemas/internal/store"
)

const adminSubmissionsURL = "/admin/submissions"

// SubmissionsHandler shows contact form submissions.
type SubmissionsHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
}

// NewSubmissionsHandler creates a SubmissionsHandler.
func NewSubmissionsHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager) *SubmissionsHandler {
	return &SubmissionsHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
	}
}

// submissionsListData feeds the submissions list template.
type submissionsListData struct {
	Submissions []store.ContactSubmission
	UnreadCount int64
	Pagination  Pagination
}

// List renders the submissions inbox.
// GET /admin/submissions
func (h *SubmissionsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	total, err := h.queries.CountContactSubmissions(ctx)
	if err != nil {
		logAndInternalError(w, "failed to count submissions", "error", err)
		return
	}
	p := NewPagination(pageParam(r), total, defaultPerPage, adminSubmissionsURL)
	rows, err := h.queries.ListContactSubmissions(ctx, store.ListContactSubmissionsParams{
		Limit:  int64(p.PerPage),
		Offset: p.Offset(),
	})
	if err != nil {
		logAndInternalError(w, "failed to list submissions", "error", err)
		return
	}
	unread, err := h.queries.CountUnreadContactSubmissions(ctx)
	if err != nil {
		slog.Error("failed to count unread submissions", "error", err)
	}

	lang := middleware.AdminLang(h.sessionManager, r)
	err = h.renderer.Render(w, r, "admin/submissions_list", render.TemplateData{
		Title: i18n.T(lang, "admin.submissions"),
		Lang:  lang,
		User:  middleware.GetUser(r),
		Data:  submissionsListData{Submissions: rows, UnreadCount: unread, Pagination: p},
	})
	if err != nil {
		logAndInternalError(w, "failed to render submissions list", "error", err)
	}
}

// View shows a single submission and marks it read.
// GET /admin/submissions/{id}
func (h *SubmissionsHandler) View(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		flashError(w, r, h.renderer, adminSubmissionsURL, "Submission not found")
		return
	}
	sub, err := h.queries.GetContactSubmission(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			flashError(w, r, h.renderer, adminSubmissionsURL, "Submission not found")
			return
		}
		logAndInternalError(w, "failed to get submission", "error", err, "submission_id", id)
		return
	}

	if sub.IsRead == 0 {
		if err := h.queries.MarkContactSubmissionRead(r.Context(), id); err != nil {
			slog.Error("failed to mark submission read", "error", err, "submission_id", id)
		}
	}

	lang := middleware.AdminLang(h.sessionManager, r)
	err = h.renderer.Render(w, r, "admin/submission_view", render.TemplateData{
		Title: sub.Subject,
		Lang:  lang,
		User:  middleware.GetUser(r),
		Data:  sub,
	})
	if err != nil {
		logAndInternalError(w, "failed to render submission", "error", err)
	}
}

// Delete removes a submission.
// POST /admin/submissions/{id}/delete
func (h *SubmissionsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		flashError(w, r, h.renderer, adminSubmissionsURL, "Submission not found")
		return
	}
	if err := h.queries.DeleteContactSubmission(r.Context(), id); err != nil {
		logAndInternalError(w, "failed to delete submission", "error", err, "submission_id", id)
		return
	}

	lang := middleware.AdminLang(h.sessionManager, r)
	flashSuccess(w, r, h.renderer, adminSubmissionsURL, i18n.T(lang, "admin.deleted"))
}

// csvHeader is the export column order.
var csvHeader = []string{
	"id", "created_at", "name", "email", "phone", "company", "subject",
	"message", "page_path", "lang", "country", "browser", "os", "device",
}

// ExportCSV streams every submission as a CSV download.
// GET /admin/submissions/export
func (h *SubmissionsHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	rows, err := h.queries.ListAllContactSubmissions(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to export submissions", "error", err)
		return
	}

	filename := fmt.Sprintf("submissions-%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		slog.Error("failed to write csv header", "error", err)
		return
	}
	for _, sub := range rows {
		record := []string{
			strconv.FormatInt(sub.ID, 10),
			sub.CreatedAt.Format(time.RFC3339),
			sub.Name,
			sub.Email,
			sub.Phone,
			sub.Company,
			sub.Subject,
			sub.Message,
			sub.PagePath,
			sub.Lang,
			sub.Country,
			sub.Browser,
			sub.Os,
			sub.Device,
		}
		if err := cw.Write(record); err != nil {
			slog.Error("failed to write csv record", "error", err, "submission_id", sub.ID)
			return
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		slog.Error("csv export flush failed", "error", err)
	}
}
