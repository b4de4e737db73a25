// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/kemasindo/kemas/internal/blocks"
	"github.com/kemasindo/kemas/internal/cache"
	"github.com/kemasindo/kemas/internal/i18n"
	"github.com/kemasindo/kemas/internal/middleware"
	"github.com/kemasindo/kemas/internal/model"
	"github.com/kemasindo/kemas/internal/render"
	"github.com/kemasindo/kemas/internal/store"
	"github.com/kemasindo/kemas/internal/util"
)

const adminPagesURL = "/admin/pages"

// PagesHandler manages custom pages and their block arrays.
type PagesHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
	sitemap        *cache.SitemapCache
	location       *time.Location
}

// NewPagesHandler creates a PagesHandler. sitemap may be nil in tests.
func NewPagesHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager, sitemap *cache.SitemapCache, loc *time.Location) *PagesHandler {
	if loc == nil {
		loc = time.Local
	}
	return &PagesHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
		sitemap:        sitemap,
		location:       loc,
	}
}

func (h *PagesHandler) invalidateSitemap() {
	if h.sitemap != nil {
		h.sitemap.Invalidate()
	}
}

// List renders the custom pages list.
// GET /admin/pages
func (h *PagesHandler) List(w http.ResponseWriter, r *http.Request) {
	pages, err := h.queries.ListCustomPages(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list pages", "error", err)
		return
	}

	lang := middleware.AdminLang(h.sessionManager, r)
	err = h.renderer.Render(w, r, "admin/pages_list", render.TemplateData{
		Title: i18n.T(lang, "admin.custom_pages"),
		Lang:  lang,
		User:  middleware.GetUser(r),
		Data:  pages,
	})
	if err != nil {
		logAndInternalError(w, "failed to render pages list", "error", err)
	}
}

// pageFormData feeds the create/edit form template.
type pageFormData struct {
	Page        *store.CustomPage
	ParentPages []store.CustomPage
	Templates   []string
}

// NewForm renders the blank page form.
// GET /admin/pages/new
func (h *PagesHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, nil)
}

// EditForm renders the form for an existing page.
// GET /admin/pages/{id}
func (h *PagesHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		flashError(w, r, h.renderer, adminPagesURL, "Page not found")
		return
	}
	page, err := h.queries.GetCustomPage(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			flashError(w, r, h.renderer, adminPagesURL, "Page not found")
			return
		}
		logAndInternalError(w, "failed to get page", "error", err, "page_id", id)
		return
	}
	h.renderForm(w, r, &page)
}

func (h *PagesHandler) renderForm(w http.ResponseWriter, r *http.Request, page *store.CustomPage) {
	parents, err := h.queries.ListCustomPages(r.Context())
	if err != nil {
		slog.Error("failed to list parent pages", "error", err)
	}
	// A page cannot be nested under itself.
	if page != nil {
		filtered := parents[:0]
		for _, p := range parents {
			if p.ID != page.ID {
				filtered = append(filtered, p)
			}
		}
		parents = filtered
	}

	lang := middleware.AdminLang(h.sessionManager, r)
	title := i18n.T(lang, "admin.create")
	if page != nil {
		title = i18n.T(lang, "admin.edit")
	}
	err = h.renderer.Render(w, r, "admin/page_form", render.TemplateData{
		Title: title,
		Lang:  lang,
		User:  middleware.GetUser(r),
		Data: pageFormData{
			Page:        page,
			ParentPages: parents,
			Templates:   model.PageTemplates,
		},
	})
	if err != nil {
		logAndInternalError(w, "failed to render page form", "error", err)
	}
}

// pageForm holds the validated form values shared by Create and Update.
type pageForm struct {
	Slug              string
	ParentID          sql.NullInt64
	TitleEn           string
	TitleID           string
	MetaDescriptionEn string
	MetaDescriptionID string
	Template          string
	Status            string
	PublishAt         sql.NullTime
}

func (h *PagesHandler) parsePageForm(r *http.Request, excludeID int64) (pageForm, string) {
	var f pageForm

	f.TitleEn = strings.TrimSpace(r.FormValue("title_en"))
	f.TitleID = strings.TrimSpace(r.FormValue("title_id"))
	if f.TitleEn == "" {
		return f, "English title is required"
	}

	f.Slug = strings.TrimSpace(r.FormValue("slug"))
	if f.Slug == "" {
		f.Slug = util.Slugify(f.TitleEn)
	}
	if !util.IsValidSlug(f.Slug) {
		return f, "Invalid slug"
	}
	if model.ReservedSlugs[f.Slug] {
		return f, "Slug is reserved"
	}
	if existing, err := h.queries.GetCustomPageBySlug(r.Context(), f.Slug); err == nil && existing.ID != excludeID {
		return f, "Slug is already in use"
	}

	f.MetaDescriptionEn = strings.TrimSpace(r.FormValue("meta_description_en"))
	f.MetaDescriptionID = strings.TrimSpace(r.FormValue("meta_description_id"))

	f.Template = r.FormValue("template")
	if !model.ValidTemplate(f.Template) {
		f.Template = model.TemplateDefault
	}

	f.Status = r.FormValue("status")
	if !model.ValidStatus(f.Status) {
		f.Status = model.StatusDraft
	}
	if f.Status == model.StatusScheduled {
		f.PublishAt = util.ParseNullTime(r.FormValue("publish_at"), h.location)
		if !f.PublishAt.Valid {
			return f, "Scheduled pages need a publish time"
		}
	}

	f.ParentID = util.ParseNullInt64(r.FormValue("parent_id"))
	if f.ParentID.Valid && f.ParentID.Int64 == excludeID {
		return f, "A page cannot be its own parent"
	}

	return f, ""
}

// Create saves a new page with empty block arrays.
// POST /admin/pages
func (h *PagesHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flashError(w, r, h.renderer, adminPagesURL+"/new", "Invalid form data")
		return
	}
	f, errMsg := h.parsePageForm(r, 0)
	if errMsg != "" {
		flashError(w, r, h.renderer, adminPagesURL+"/new", errMsg)
		return
	}

	now := time.Now()
	page, err := h.queries.CreateCustomPage(r.Context(), store.CreateCustomPageParams{
		Slug:              f.Slug,
		ParentID:          f.ParentID,
		TitleEn:           f.TitleEn,
		TitleID:           f.TitleID,
		MetaDescriptionEn: f.MetaDescriptionEn,
		MetaDescriptionID: f.MetaDescriptionID,
		Template:          f.Template,
		Status:            f.Status,
		PublishAt:         f.PublishAt,
		ContentEn:         "[]",
		ContentID:         "[]",
		CreatedBy:         middleware.GetUserID(r),
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if err != nil {
		logAndInternalError(w, "failed to create page", "error", err)
		return
	}

	h.invalidateSitemap()
	slog.Info("page created", "page_id", page.ID, "slug", page.Slug)
	lang := middleware.AdminLang(h.sessionManager, r)
	flashSuccess(w, r, h.renderer, adminPagesURL, i18n.T(lang, "admin.saved"))
}

// Update saves page metadata. Block content is edited separately.
// POST /admin/pages/{id}
func (h *PagesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		flashError(w, r, h.renderer, adminPagesURL, "Page not found")
		return
	}
	if err := r.ParseForm(); err != nil {
		flashError(w, r, h.renderer, adminPagesURL, "Invalid form data")
		return
	}
	f, errMsg := h.parsePageForm(r, id)
	if errMsg != "" {
		flashError(w, r, h.renderer, adminPagesURL, errMsg)
		return
	}

	_, err := h.queries.UpdateCustomPage(r.Context(), store.UpdateCustomPageParams{
		Slug:              f.Slug,
		ParentID:          f.ParentID,
		TitleEn:           f.TitleEn,
		TitleID:           f.TitleID,
		MetaDescriptionEn: f.MetaDescriptionEn,
		MetaDescriptionID: f.MetaDescriptionID,
		Template:          f.Template,
		Status:            f.Status,
		PublishAt:         f.PublishAt,
		UpdatedAt:         time.Now(),
		ID:                id,
	})
	if err != nil {
		logAndInternalError(w, "failed to update page", "error", err, "page_id", id)
		return
	}

	h.invalidateSitemap()
	lang := middleware.AdminLang(h.sessionManager, r)
	flashSuccess(w, r, h.renderer, adminPagesURL, i18n.T(lang, "admin.saved"))
}

// Delete removes a page; child pages are detached, not deleted.
// POST /admin/pages/{id}/delete
func (h *PagesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		flashError(w, r, h.renderer, adminPagesURL, "Page not found")
		return
	}
	if err := h.queries.DeleteCustomPage(r.Context(), id); err != nil {
		logAndInternalError(w, "failed to delete page", "error", err, "page_id", id)
		return
	}

	h.invalidateSitemap()
	slog.Info("page deleted", "page_id", id)
	lang := middleware.AdminLang(h.sessionManager, r)
	flashSuccess(w, r, h.renderer, adminPagesURL, i18n.T(lang, "admin.deleted"))
}

// editorData feeds the block editor template.
type editorData struct {
	Page        store.CustomPage
	EditLang    string
	Blocks      []blocks.Block
	Definitions []blocks.Definition
}

// Editor renders the block editor for one page and language.
// GET /admin/pages/{id}/editor
func (h *PagesHandler) Editor(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		flashError(w, r, h.renderer, adminPagesURL, "Page not found")
		return
	}
	page, err := h.queries.GetCustomPage(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			flashError(w, r, h.renderer, adminPagesURL, "Page not found")
			return
		}
		logAndInternalError(w, "failed to get page", "error", err, "page_id", id)
		return
	}

	editLang := editorLang(r)
	list, err := blocks.UnmarshalList([]byte(pageContentFor(page, editLang)))
	if err != nil {
		slog.Error("failed to decode page blocks", "error", err, "page_id", id, "lang", editLang)
		list = nil
	}

	lang := middleware.AdminLang(h.sessionManager, r)
	err = h.renderer.Render(w, r, "admin/page_editor", render.TemplateData{
		Title: page.TitleEn,
		Lang:  lang,
		User:  middleware.GetUser(r),
		Data: editorData{
			Page:        page,
			EditLang:    editLang,
			Blocks:      list,
			Definitions: blocks.Definitions(),
		},
	})
	if err != nil {
		logAndInternalError(w, "failed to render page editor", "error", err)
	}
}

// pageContentFor selects the block-array column for a language.
func pageContentFor(page store.CustomPage, lang string) string {
	if lang == model.LangIndonesian {
		return page.ContentID
	}
	return page.ContentEn
}

// customPageBlocks adapts one custom page row to the editor endpoints.
type customPageBlocks struct {
	h  *PagesHandler
	id int64
}

func (s customPageBlocks) Load(r *http.Request, lang string) ([]blocks.Block, error) {
	page, err := s.h.queries.GetCustomPage(r.Context(), s.id)
	if err != nil {
		return nil, err
	}
	return blocks.UnmarshalList([]byte(pageContentFor(page, lang)))
}

func (s customPageBlocks) Save(r *http.Request, lang string, list []blocks.Block) error {
	page, err := s.h.queries.GetCustomPage(r.Context(), s.id)
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
	return s.h.saveContent(r.Context(), s.id, contentEn, contentID)
}

func (h *PagesHandler) saveContent(ctx context.Context, id int64, contentEn, contentID string) error {
	return h.queries.UpdateCustomPageContent(ctx, store.UpdateCustomPageContentParams{
		ContentEn: contentEn,
		ContentID: contentID,
		UpdatedAt: time.Now(),
		ID:        id,
	})
}

func (h *PagesHandler) blockSourceFromRequest(w http.ResponseWriter, r *http.Request) (blockSource, bool) {
	id, ok := urlParamID(r)
	if !ok {
		writeJSONError(w, http.StatusNotFound, "Page not found")
		return nil, false
	}
	return customPageBlocks{h: h, id: id}, true
}

// BlockAdd appends a block.
// POST /admin/pages/{id}/blocks
func (h *PagesHandler) BlockAdd(w http.ResponseWriter, r *http.Request) {
	if src, ok := h.blockSourceFromRequest(w, r); ok {
		blockAdd(w, r, src)
	}
}

// BlockDelete removes a block.
// POST /admin/pages/{id}/blocks/{blockId}/delete
func (h *PagesHandler) BlockDelete(w http.ResponseWriter, r *http.Request) {
	if src, ok := h.blockSourceFromRequest(w, r); ok {
		blockDelete(w, r, src, chi.URLParam(r, "blockId"))
	}
}

// BlockReorder moves a block to a new position.
// POST /admin/pages/{id}/blocks/reorder
func (h *PagesHandler) BlockReorder(w http.ResponseWriter, r *http.Request) {
	if src, ok := h.blockSourceFromRequest(w, r); ok {
		blockReorder(w, r, src)
	}
}

// BlockUpdate replaces one block's data.
// POST /admin/pages/{id}/blocks/{blockId}
func (h *PagesHandler) BlockUpdate(w http.ResponseWriter, r *http.Request) {
	if src, ok := h.blockSourceFromRequest(w, r); ok {
		blockUpdate(w, r, src, chi.URLParam(r, "blockId"))
	}
}
