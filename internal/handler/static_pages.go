// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/kemasindo/kemas/internal/blocks"
	"github.com/kemasindo/kemas/internal/i18n"
	"github.com/kemasindo/kemas/internal/middleware"
	"github.com/kemasindo/kemas/internal/model"
	"github.com/kemasindo/kemas/internal/render"
	"github.com/kemasindo/kemas/internal/store"
)

const adminStaticURL = "/admin/static"

// StaticPagesHandler edits the fixed site pages (home, about, products,
// services, contact). Rows are seeded; the admin can change titles and
// block content but never add or remove pages.
type StaticPagesHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
}

// NewStaticPagesHandler creates a StaticPagesHandler.
func NewStaticPagesHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager) *StaticPagesHandler {
	return &StaticPagesHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
	}
}

// List renders the static pages overview.
// GET /admin/static
func (h *StaticPagesHandler) List(w http.ResponseWriter, r *http.Request) {
	pages, err := h.queries.ListStaticPages(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list static pages", "error", err)
		return
	}

	lang := middleware.AdminLang(h.sessionManager, r)
	err = h.renderer.Render(w, r, "admin/static_list", render.TemplateData{
		Title: i18n.T(lang, "admin.static_pages"),
		Lang:  lang,
		User:  middleware.GetUser(r),
		Data:  pages,
	})
	if err != nil {
		logAndInternalError(w, "failed to render static pages list", "error", err)
	}
}

// staticEditorData feeds the static page editor template.
type staticEditorData struct {
	Page        store.StaticPage
	EditLang    string
	Blocks      []blocks.Block
	Definitions []blocks.Definition
}

// Editor renders the block editor for one static page and language.
// GET /admin/static/{key}
func (h *StaticPagesHandler) Editor(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	page, err := h.queries.GetStaticPage(r.Context(), key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			flashError(w, r, h.renderer, adminStaticURL, "Page not found")
			return
		}
		logAndInternalError(w, "failed to get static page", "error", err, "page_key", key)
		return
	}

	editLang := editorLang(r)
	list, err := blocks.UnmarshalList([]byte(staticContentFor(page, editLang)))
	if err != nil {
		slog.Error("failed to decode static page blocks", "error", err, "page_key", key, "lang", editLang)
		list = nil
	}

	lang := middleware.AdminLang(h.sessionManager, r)
	err = h.renderer.Render(w, r, "admin/static_editor", render.TemplateData{
		Title: page.TitleEn,
		Lang:  lang,
		User:  middleware.GetUser(r),
		Data: staticEditorData{
			Page:        page,
			EditLang:    editLang,
			Blocks:      list,
			Definitions: blocks.Definitions(),
		},
	})
	if err != nil {
		logAndInternalError(w, "failed to render static page editor", "error", err)
	}
}

// UpdateTitles saves the per-language titles of a static page.
// POST /admin/static/{key}
func (h *StaticPagesHandler) UpdateTitles(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	page, err := h.queries.GetStaticPage(r.Context(), key)
	if err != nil {
		flashError(w, r, h.renderer, adminStaticURL, "Page not found")
		return
	}
	if err := r.ParseForm(); err != nil {
		flashError(w, r, h.renderer, adminStaticURL, "Invalid form data")
		return
	}

	titleEn := strings.TrimSpace(r.FormValue("title_en"))
	titleID := strings.TrimSpace(r.FormValue("title_id"))
	if titleEn == "" {
		titleEn = page.TitleEn
	}
	if titleID == "" {
		titleID = page.TitleID
	}

	_, err = h.queries.UpsertStaticPage(r.Context(), store.UpsertStaticPageParams{
		PageKey:   key,
		TitleEn:   titleEn,
		TitleID:   titleID,
		ContentEn: page.ContentEn,
		ContentID: page.ContentID,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		logAndInternalError(w, "failed to update static page", "error", err, "page_key", key)
		return
	}

	lang := middleware.AdminLang(h.sessionManager, r)
	flashSuccess(w, r, h.renderer, adminStaticURL+"/"+key, i18n.T(lang, "admin.saved"))
}

// staticContentFor selects the block-array column for a language.
func staticContentFor(page store.StaticPage, lang string) string {
	if lang == model.LangIndonesian {
		return page.ContentID
	}
	return page.ContentEn
}

// staticPageBlocks adapts one static page row to the editor endpoints.
type staticPageBlocks struct {
	h   *StaticPagesHandler
	key string
}

func (s staticPageBlocks) Load(r *http.Request, lang string) ([]blocks.Block, error) {
	page, err := s.h.queries.GetStaticPage(r.Context(), s.key)
	if err != nil {
		return nil, err
	}
	return blocks.UnmarshalList([]byte(staticContentFor(page, lang)))
}

func (s staticPageBlocks) Save(r *http.Request, lang string, list []blocks.Block) error {
	page, err := s.h.queries.GetStaticPage(r.Context(), s.key)
	if err != nil {
		return err
	}
	encoded, err := blocks.MarshalList(list)
	if err != nil {
		return err
	}
	contentEn, contentID := page.ContentEn, page.ContentID
	if lang == model.LangIndonesian {
		contentID = string(encoded)
	} else {
		contentEn = string(encoded)
	}
	return s.h.queries.UpdateStaticPageContent(r.Context(), store.UpdateStaticPageContentParams{
		ContentEn: contentEn,
		ContentID: contentID,
		UpdatedAt: time.Now(),
		PageKey:   s.key,
	})
}

func (h *StaticPagesHandler) source(r *http.Request) blockSource {
	return staticPageBlocks{h: h, key: chi.URLParam(r, "key")}
}

// BlockAdd appends a block.
// POST /admin/static/{key}/blocks
func (h *StaticPagesHandler) BlockAdd(w http.ResponseWriter, r *http.Request) {
	blockAdd(w, r, h.source(r))
}

// BlockDelete removes a block.
// POST /admin/static/{key}/blocks/{blockId}/delete
func (h *StaticPagesHandler) BlockDelete(w http.ResponseWriter, r *http.Request) {
	blockDelete(w, r, h.source(r), chi.URLParam(r, "blockId"))
}

// BlockReorder moves a block to a new position.
// POST /admin/static/{key}/blocks/reorder
func (h *StaticPagesHandler) BlockReorder(w http.ResponseWriter, r *http.Request) {
	blockReorder(w, r, h.source(r))
}

// BlockUpdate replaces one block's data.
// POST /admin/static/{key}/blocks/{blockId}
func (h *StaticPagesHandler) BlockUpdate(w http.ResponseWriter, r *http.Request) {
	blockUpdate(w, r, h.source(r), chi.URLParam(r, "blockId"))
}
