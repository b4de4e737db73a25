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

	"github.com/kemasindo/kemas/internal/cache"
	"github.com/kemasindo/kemas/internal/i18n"
	"github.com/kemasindo/kemas/internal/middleware"
	"github.com/kemasindo/kemas/internal/model"
	"github.com/kemasindo/kemas/internal/render"
	"github.com/kemasindo/kemas/internal/store"
	"github.com/kemasindo/kemas/internal/util"
)

const adminPostsURL = "/admin/posts"

// PostsHandler manages blog posts.
type PostsHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
	sitemap        *cache.SitemapCache
}

// NewPostsHandler creates a PostsHandler. sitemap may be nil in tests.
func NewPostsHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager, sitemap *cache.SitemapCache) *PostsHandler {
	return &PostsHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
		sitemap:        sitemap,
	}
}

func (h *PostsHandler) invalidateSitemap() {
	if h.sitemap != nil {
		h.sitemap.Invalidate()
	}
}

// postsListData feeds the posts list template.
type postsListData struct {
	Posts      []store.Post
	Pagination Pagination
}

// List renders the posts list.
// GET /admin/posts
func (h *PostsHandler) List(w http.ResponseWriter, r *http.Request) {
	total, err := h.queries.CountPosts(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to count posts", "error", err)
		return
	}
	p := NewPagination(pageParam(r), total, defaultPerPage, adminPostsURL)
	posts, err := h.queries.ListPosts(r.Context(), store.ListPostsParams{
		Limit:  int64(p.PerPage),
		Offset: p.Offset(),
	})
	if err != nil {
		logAndInternalError(w, "failed to list posts", "error", err)
		return
	}

	lang := middleware.AdminLang(h.sessionManager, r)
	err = h.renderer.Render(w, r, "admin/posts_list", render.TemplateData{
		Title: i18n.T(lang, "admin.blog"),
		Lang:  lang,
		User:  middleware.GetUser(r),
		Data:  postsListData{Posts: posts, Pagination: p},
	})
	if err != nil {
		logAndInternalError(w, "failed to render posts list", "error", err)
	}
}

// NewForm renders the blank post form.
// GET /admin/posts/new
func (h *PostsHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, nil)
}

// EditForm renders the form for an existing post.
// GET /admin/posts/{id}
func (h *PostsHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		flashError(w, r, h.renderer, adminPostsURL, "Post not found")
		return
	}
	post, err := h.queries.GetPost(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			flashError(w, r, h.renderer, adminPostsURL, "Post not found")
			return
		}
		logAndInternalError(w, "failed to get post", "error", err, "post_id", id)
		return
	}
	h.renderForm(w, r, &post)
}

func (h *PostsHandler) renderForm(w http.ResponseWriter, r *http.Request, post *store.Post) {
	lang := middleware.AdminLang(h.sessionManager, r)
	title := i18n.T(lang, "admin.create")
	if post != nil {
		title = i18n.T(lang, "admin.edit")
	}
	err := h.renderer.Render(w, r, "admin/post_form", render.TemplateData{
		Title: title,
		Lang:  lang,
		User:  middleware.GetUser(r),
		Data:  post,
	})
	if err != nil {
		logAndInternalError(w, "failed to render post form", "error", err)
	}
}

// postForm holds the validated form values shared by Create and Update.
type postForm struct {
	Slug        string
	TitleEn     string
	TitleID     string
	ExcerptEn   string
	ExcerptID   string
	BodyEn      string
	BodyID      string
	CoverImage  string
	Status      string
	PublishedAt sql.NullTime
}

func (h *PostsHandler) parsePostForm(r *http.Request, excludeID int64) (postForm, string) {
	var f postForm

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
	if existing, err := h.queries.GetPostBySlug(r.Context(), f.Slug); err == nil && existing.ID != excludeID {
		return f, "Slug is already in use"
	}

	f.ExcerptEn = strings.TrimSpace(r.FormValue("excerpt_en"))
	f.ExcerptID = strings.TrimSpace(r.FormValue("excerpt_id"))
	f.BodyEn = r.FormValue("body_en")
	f.BodyID = r.FormValue("body_id")
	f.CoverImage = strings.TrimSpace(r.FormValue("cover_image"))

	f.Status = r.FormValue("status")
	if f.Status != model.StatusPublished {
		f.Status = model.StatusDraft
	}
	if f.Status == model.StatusPublished {
		f.PublishedAt = sql.NullTime{Time: time.Now(), Valid: true}
	}
	return f, ""
}

// Create saves a new post.
// POST /admin/posts
func (h *PostsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flashError(w, r, h.renderer, adminPostsURL+"/new", "Invalid form data")
		return
	}
	f, errMsg := h.parsePostForm(r, 0)
	if errMsg != "" {
		flashError(w, r, h.renderer, adminPostsURL+"/new", errMsg)
		return
	}

	now := time.Now()
	post, err := h.queries.CreatePost(r.Context(), store.CreatePostParams{
		Slug:        f.Slug,
		TitleEn:     f.TitleEn,
		TitleID:     f.TitleID,
		ExcerptEn:   f.ExcerptEn,
		ExcerptID:   f.ExcerptID,
		BodyEn:      f.BodyEn,
		BodyID:      f.BodyID,
		CoverImage:  f.CoverImage,
		Status:      f.Status,
		PublishedAt: f.PublishedAt,
		AuthorID:    middleware.GetUserID(r),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		logAndInternalError(w, "failed to create post", "error", err)
		return
	}

	h.invalidateSitemap()
	slog.Info("post created", "post_id", post.ID, "slug", post.Slug)
	lang := middleware.AdminLang(h.sessionManager, r)
	flashSuccess(w, r, h.renderer, adminPostsURL, i18n.T(lang, "admin.saved"))
}

// Update saves an existing post. The original publish time survives
// re-saving an already published post.
// POST /admin/posts/{id}
func (h *PostsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		flashError(w, r, h.renderer, adminPostsURL, "Post not found")
		return
	}
	existing, err := h.queries.GetPost(r.Context(), id)
	if err != nil {
		flashError(w, r, h.renderer, adminPostsURL, "Post not found")
		return
	}
	if err := r.ParseForm(); err != nil {
		flashError(w, r, h.renderer, adminPostsURL, "Invalid form data")
		return
	}
	f, errMsg := h.parsePostForm(r, id)
	if errMsg != "" {
		flashError(w, r, h.renderer, adminPostsURL, errMsg)
		return
	}
	if f.Status == model.StatusPublished && existing.PublishedAt.Valid {
		f.PublishedAt = existing.PublishedAt
	}

	_, err = h.queries.UpdatePost(r.Context(), store.UpdatePostParams{
		Slug:        f.Slug,
		TitleEn:     f.TitleEn,
		TitleID:     f.TitleID,
		ExcerptEn:   f.ExcerptEn,
		ExcerptID:   f.ExcerptID,
		BodyEn:      f.BodyEn,
		BodyID:      f.BodyID,
		CoverImage:  f.CoverImage,
		Status:      f.Status,
		PublishedAt: f.PublishedAt,
		UpdatedAt:   time.Now(),
		ID:          id,
	})
	if err != nil {
		logAndInternalError(w, "failed to update post", "error", err, "post_id", id)
		return
	}

	h.invalidateSitemap()
	lang := middleware.AdminLang(h.sessionManager, r)
	flashSuccess(w, r, h.renderer, adminPostsURL, i18n.T(lang, "admin.saved"))
}

// Delete removes a post.
// POST /admin/posts/{id}/delete
func (h *PostsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		flashError(w, r, h.renderer, adminPostsURL, "Post not found")
		return
	}
	if err := h.queries.DeletePost(r.Context(), id); err != nil {
		logAndInternalError(w, "failed to delete post", "error", err, "post_id", id)
		return
	}

	h.invalidateSitemap()
	slog.Info("post deleted", "post_id", id)
	lang := middleware.AdminLang(h.sessionManager, r)
	flashSuccess(w, r, h.renderer, adminPostsURL, i18n.T(lang, "admin.deleted"))
}
