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
	"github.com/kemasindo/kemas/internal/service"
	"github.com/kemasindo/kemas/internal/store"
)

const adminMediaURL = "/admin/media"

// MediaHandler manages the media library.
type MediaHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
	media          *service.MediaService
}

// NewMediaHandler creates a MediaHandler.
func NewMediaHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager, media *service.MediaService) *MediaHandler {
	return &MediaHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
		media:          media,
	}
}

// mediaItem is one library entry with its URLs resolved.
type mediaItem struct {
	Media        store.Media
	URL          string
	ThumbnailURL string
}

// mediaListData feeds the media list template.
type mediaListData struct {
	Items      []mediaItem
	Folders    []string
	Folder     string
	Pagination Pagination
}

// List renders the media library, optionally filtered by folder.
// GET /admin/media
func (h *MediaHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	folder := r.URL.Query().Get("folder")

	total, err := h.queries.CountMedia(ctx)
	if err != nil {
		logAndInternalError(w, "failed to count media", "error", err)
		return
	}
	p := NewPagination(pageParam(r), total, defaultPerPage, adminMediaURL)

	var rows []store.Media
	if folder != "" {
		rows, err = h.queries.ListMediaByFolder(ctx, store.ListMediaByFolderParams{
			Folder: folder,
			Limit:  int64(p.PerPage),
			Offset: p.Offset(),
		})
	} else {
		rows, err = h.queries.ListMedia(ctx, store.ListMediaParams{
			Limit:  int64(p.PerPage),
			Offset: p.Offset(),
		})
	}
	if err != nil {
		logAndInternalError(w, "failed to list media", "error", err)
		return
	}

	folders, err := h.queries.ListMediaFolders(ctx)
	if err != nil {
		slog.Error("failed to list media folders", "error", err)
	}

	items := make([]mediaItem, 0, len(rows))
	for _, m := range rows {
		items = append(items, mediaItem{
			Media:        m,
			URL:          h.media.URL(m),
			ThumbnailURL: h.media.ThumbnailURL(m),
		})
	}

	lang := middleware.AdminLang(h.sessionManager, r)
	err = h.renderer.Render(w, r, "admin/media_list", render.TemplateData{
		Title: i18n.T(lang, "admin.media"),
		Lang:  lang,
		User:  middleware.GetUser(r),
		Data:  mediaListData{Items: items, Folders: folders, Folder: folder, Pagination: p},
	})
	if err != nil {
		logAndInternalError(w, "failed to render media list", "error", err)
	}
}

// Upload stores an uploaded image and answers JSON so the editor can
// insert the URL without a page reload.
// POST /admin/media
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(model.MaxUploadSize); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Upload too large or malformed")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Missing file")
		return
	}
	defer func() { _ = file.Close() }()

	result, err := h.media.Upload(r.Context(), file, header, middleware.GetUserID(r), r.FormValue("folder"))
	if err != nil {
		slog.Warn("media upload rejected", "error", err, "filename", header.Filename)
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	slog.Info("media uploaded", "media_id", result.Media.ID, "filename", result.Media.Filename)
	writeJSONSuccess(w, map[string]any{
		"id":        result.Media.ID,
		"url":       h.media.URL(result.Media),
		"thumbnail": h.media.ThumbnailURL(result.Media),
		"width":     result.Media.Width,
		"height":    result.Media.Height,
	})
}

// Delete removes a media row and its files.
// POST /admin/media/{id}/delete
func (h *MediaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		flashError(w, r, h.renderer, adminMediaURL, "File not found")
		return
	}
	if err := h.media.Delete(r.Context(), id); err != nil {
		logAndInternalError(w, "failed to delete media", "error", err, "media_id", id)
		return
	}

	slog.Info("media deleted", "media_id", id)
	lang := middleware.AdminLang(h.sessionManager, r)
	flashSuccess(w, r, h.renderer, adminMediaURL, i18n.T(lang, "admin.deleted"))
}
