// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/kemasindo/kemas/internal/blocks"
	"github.com/kemasindo/kemas/internal/cache"
	"github.com/kemasindo/kemas/internal/middleware"
	"github.com/kemasindo/kemas/internal/model"
	"github.com/kemasindo/kemas/internal/render"
	"github.com/kemasindo/kemas/internal/seo"
	"github.com/kemasindo/kemas/internal/service"
	"github.com/kemasindo/kemas/internal/store"
)

// blogPerPage is the public blog list page size.
const blogPerPage = 10

// maxPageDepth bounds custom page nesting when resolving URLs.
const maxPageDepth = 5

// Frontend serves the public site.
type Frontend struct {
	queries   *store.Queries
	renderer  *render.Renderer
	blocks    *blocks.Renderer
	contact   *service.ContactService
	settings  *service.SettingsService
	siteURL   string
	sitemap   *cache.SitemapCache
	markdown  goldmark.Markdown
	sanitizer *bluemonday.Policy
}

// NewFrontend creates the public site handler. The sitemap is cached for
// an hour and invalidated whenever admin handlers change content.
func NewFrontend(db *sql.DB, renderer *render.Renderer, blocksRenderer *blocks.Renderer, contact *service.ContactService, settings *service.SettingsService, siteURL string) *Frontend {
	f := &Frontend{
		queries:   store.New(db),
		renderer:  renderer,
		blocks:    blocksRenderer,
		contact:   contact,
		settings:  settings,
		siteURL:   strings.TrimSuffix(siteURL, "/"),
		markdown:  goldmark.New(goldmark.WithExtensions(extension.GFM)),
		sanitizer: bluemonday.UGCPolicy(),
	}
	f.sitemap = cache.NewSitemapCache(time.Hour, f.generateSitemap)
	return f
}

// SitemapCache exposes the sitemap cache so admin handlers can
// invalidate it on content changes.
func (f *Frontend) SitemapCache() *cache.SitemapCache {
	return f.sitemap
}

// sitePageData feeds the public page templates.
type sitePageData struct {
	Content       template.HTML
	Meta          *seo.Meta
	OrgSchema     template.JS
	ArticleSchema template.JS
	HeadScripts   template.HTML
	BodyScripts   template.HTML
	Settings      map[string]string
}

func (f *Frontend) siteConfig(ctx context.Context, lang string) *seo.SiteConfig {
	return &seo.SiteConfig{
		SiteName:        f.settings.SiteName(ctx, lang),
		SiteURL:         f.siteURL,
		SiteDescription: f.settings.SiteDescription(ctx, lang),
	}
}

func (f *Frontend) basePageData(ctx context.Context) sitePageData {
	values, err := f.settings.All(ctx)
	if err != nil {
		slog.Error("failed to load settings", "error", err)
		values = map[string]string{}
	}
	return sitePageData{
		// Script settings are operator-only and injected unsanitized.
		HeadScripts: template.HTML(values[model.SettingHeadScripts]),
		BodyScripts: template.HTML(values[model.SettingBodyScripts]),
		Settings:    values,
	}
}

// localized returns the Indonesian value when the language is Indonesian
// and the value is non-empty, otherwise the English value.
func localized(lang, en, id string) string {
	if lang == model.LangIndonesian && id != "" {
		return id
	}
	return en
}

// Home renders the homepage from the "home" static page.
// GET /
func (f *Frontend) Home(w http.ResponseWriter, r *http.Request) {
	f.renderStaticPage(w, r, "home", "/")
}

// StaticPage returns a handler for one fixed page key.
// GET /about etc.
func (f *Frontend) StaticPage(key string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.renderStaticPage(w, r, key, "/"+key)
	}
}

func (f *Frontend) renderStaticPage(w http.ResponseWriter, r *http.Request, key, path string) {
	lang := middleware.Lang(r)
	page, err := f.queries.GetStaticPage(r.Context(), key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			f.NotFound(w, r)
			return
		}
		logAndInternalError(w, "failed to get static page", "error", err, "page_key", key)
		return
	}

	list, err := blocks.UnmarshalList([]byte(staticContentFor(page, lang)))
	if err != nil {
		slog.Error("failed to decode static page blocks", "error", err, "page_key", key, "lang", lang)
		list = nil
	}

	data := f.basePageData(r.Context())
	data.Content = f.blocks.Render(list, blocks.PageContext{Lang: lang, Path: path})

	site := f.siteConfig(r.Context(), lang)
	title := localized(lang, page.TitleEn, page.TitleID)
	if key == "home" {
		data.Meta = seo.BuildMeta(nil, site, lang)
	} else {
		data.Meta = seo.BuildMeta(&seo.PageData{Title: title, Path: path}, site, lang)
	}
	data.OrgSchema = seo.BuildOrganizationSchema(site,
		f.settings.Get(r.Context(), model.SettingContactPhone),
		f.settings.Get(r.Context(), model.SettingContactEmail))

	err = f.renderer.Render(w, r, "site/page", render.TemplateData{
		Title:    data.Meta.Title,
		Lang:     lang,
		Path:     path,
		SiteName: site.SiteName,
		Meta:     data.Meta,
		Data:     data,
	})
	if err != nil {
		logAndInternalError(w, "failed to render static page", "error", err)
	}
}

// CustomPage resolves a nested slug path to a published custom page.
// GET /* (catch-all)
func (f *Frontend) CustomPage(w http.ResponseWriter, r *http.Request) {
	path := strings.Trim(r.URL.Path, "/")
	if path == "" {
		f.NotFound(w, r)
		return
	}

	page, ok := f.resolvePagePath(r.Context(), strings.Split(path, "/"))
	if !ok || page.Status != model.StatusPublished {
		f.NotFound(w, r)
		return
	}

	lang := middleware.Lang(r)
	list, err := blocks.UnmarshalList([]byte(pageContentFor(page, lang)))
	if err != nil {
		slog.Error("failed to decode page blocks", "error", err, "page_id", page.ID, "lang", lang)
		list = nil
	}

	pagePath := "/" + path
	data := f.basePageData(r.Context())
	data.Content = f.blocks.Render(list, blocks.PageContext{Lang: lang, Path: pagePath})

	site := f.siteConfig(r.Context(), lang)
	data.Meta = seo.BuildMeta(&seo.PageData{
		Title:           localized(lang, page.TitleEn, page.TitleID),
		Path:            pagePath,
		MetaDescription: localized(lang, page.MetaDescriptionEn, page.MetaDescriptionID),
		NoIndex:         !f.settings.Bool(r.Context(), model.SettingIndexingEnabled),
	}, site, lang)
	data.OrgSchema = seo.BuildOrganizationSchema(site,
		f.settings.Get(r.Context(), model.SettingContactPhone),
		f.settings.Get(r.Context(), model.SettingContactEmail))

	err = f.renderer.Render(w, r, siteTemplateFor(page.Template), render.TemplateData{
		Title:    data.Meta.Title,
		Lang:     lang,
		Path:     pagePath,
		SiteName: site.SiteName,
		Meta:     data.Meta,
		Data:     data,
	})
	if err != nil {
		logAndInternalError(w, "failed to render custom page", "error", err)
	}
}

// siteTemplateFor maps a page template name to a site template.
func siteTemplateFor(tmpl string) string {
	switch tmpl {
	case model.TemplateLanding:
		return "site/landing"
	case model.TemplateBlank:
		return "site/blank"
	default:
		return "site/page"
	}
}

// resolvePagePath looks up the page addressed by slug segments and
// verifies the parent chain matches the URL exactly.
func (f *Frontend) resolvePagePath(ctx context.Context, segments []string) (store.CustomPage, bool) {
	var zero store.CustomPage
	if len(segments) == 0 || len(segments) > maxPageDepth {
		return zero, false
	}

	page, err := f.queries.GetCustomPageBySlug(ctx, segments[len(segments)-1])
	if err != nil {
		return zero, false
	}

	// Walk up the parent chain; each ancestor must match the preceding
	// URL segment, and the chain must consume the whole path.
	current := page
	for i := len(segments) - 2; i >= 0; i-- {
		if !current.ParentID.Valid {
			return zero, false
		}
		parent, err := f.queries.GetCustomPage(ctx, current.ParentID.Int64)
		if err != nil || parent.Slug != segments[i] {
			return zero, false
		}
		current = parent
	}
	if current.ParentID.Valid {
		return zero, false
	}
	return page, true
}

// pagePath returns the full public path of a custom page.
func (f *Frontend) pagePath(ctx context.Context, page store.CustomPage) string {
	segments := []string{page.Slug}
	current := page
	for depth := 0; current.ParentID.Valid && depth < maxPageDepth; depth++ {
		parent, err := f.queries.GetCustomPage(ctx, current.ParentID.Int64)
		if err != nil {
			break
		}
		segments = append([]string{parent.Slug}, segments...)
		current = parent
	}
	return "/" + strings.Join(segments, "/")
}

// blogPostView is a post prepared for the public templates.
type blogPostView struct {
	Slug        string
	Title       string
	Excerpt     string
	CoverImage  string
	Body        template.HTML
	PublishedAt time.Time
}

// blogListData feeds the blog index template.
type blogListData struct {
	sitePageData
	Posts      []blogPostView
	Pagination Pagination
}

// BlogIndex renders the published post list.
// GET /blog
func (f *Frontend) BlogIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := middleware.Lang(r)
	now := time.Now()

	total, err := f.queries.CountPublishedPosts(ctx, now)
	if err != nil {
		logAndInternalError(w, "failed to count posts", "error", err)
		return
	}
	p := NewPagination(pageParam(r), total, blogPerPage, model.LangPrefix(lang)+"/blog")
	posts, err := f.queries.ListPublishedPosts(ctx, store.ListPublishedPostsParams{
		Now:    now,
		Limit:  int64(p.PerPage),
		Offset: p.Offset(),
	})
	if err != nil {
		logAndInternalError(w, "failed to list posts", "error", err)
		return
	}

	views := make([]blogPostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, blogPostView{
			Slug:        post.Slug,
			Title:       localized(lang, post.TitleEn, post.TitleID),
			Excerpt:     localized(lang, post.ExcerptEn, post.ExcerptID),
			CoverImage:  post.CoverImage,
			PublishedAt: post.PublishedAt.Time,
		})
	}

	site := f.siteConfig(ctx, lang)
	data := blogListData{sitePageData: f.basePageData(ctx), Posts: views, Pagination: p}
	data.Meta = seo.BuildMeta(&seo.PageData{
		Title: "Blog",
		Path:  "/blog",
		NoIndex: !f.settings.Bool(ctx, model.SettingBlogIndexingEnabled) ||
			!f.settings.Bool(ctx, model.SettingIndexingEnabled),
	}, site, lang)

	err = f.renderer.Render(w, r, "site/blog", render.TemplateData{
		Title:    data.Meta.Title,
		Lang:     lang,
		Path:     "/blog",
		SiteName: site.SiteName,
		Meta:     data.Meta,
		Data:     data,
	})
	if err != nil {
		logAndInternalError(w, "failed to render blog index", "error", err)
	}
}

// blogPostData feeds the post template.
type blogPostData struct {
	sitePageData
	Post blogPostView
}

// BlogPost renders one published post, its Markdown body converted and
// sanitized.
// GET /blog/{slug}
func (f *Frontend) BlogPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := middleware.Lang(r)

	post, err := f.queries.GetPostBySlug(ctx, chi.URLParam(r, "slug"))
	if err != nil {
		f.NotFound(w, r)
		return
	}
	if post.Status != model.StatusPublished || !post.PublishedAt.Valid || post.PublishedAt.Time.After(time.Now()) {
		f.NotFound(w, r)
		return
	}

	body, err := f.renderMarkdown(localized(lang, post.BodyEn, post.BodyID))
	if err != nil {
		slog.Error("failed to render post body", "error", err, "post_id", post.ID)
	}

	view := blogPostView{
		Slug:        post.Slug,
		Title:       localized(lang, post.TitleEn, post.TitleID),
		Excerpt:     localized(lang, post.ExcerptEn, post.ExcerptID),
		CoverImage:  post.CoverImage,
		Body:        body,
		PublishedAt: post.PublishedAt.Time,
	}

	postPath := "/blog/" + post.Slug
	site := f.siteConfig(ctx, lang)
	pageData := &seo.PageData{
		Title:           view.Title,
		Path:            postPath,
		MetaDescription: view.Excerpt,
		BodyText:        string(body),
		OGImageURL:      post.CoverImage,
		IsArticle:       true,
		PublishedAt:     &post.PublishedAt.Time,
		NoIndex: !f.settings.Bool(ctx, model.SettingBlogIndexingEnabled) ||
			!f.settings.Bool(ctx, model.SettingIndexingEnabled),
	}

	data := blogPostData{sitePageData: f.basePageData(ctx), Post: view}
	data.Meta = seo.BuildMeta(pageData, site, lang)
	data.ArticleSchema = seo.BuildArticleSchema(pageData, site)

	err = f.renderer.Render(w, r, "site/post", render.TemplateData{
		Title:    data.Meta.Title,
		Lang:     lang,
		Path:     postPath,
		SiteName: site.SiteName,
		Meta:     data.Meta,
		Data:     data,
	})
	if err != nil {
		logAndInternalError(w, "failed to render post", "error", err)
	}
}

// renderMarkdown converts Markdown to sanitized HTML.
func (f *Frontend) renderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := f.markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(f.sanitizer.SanitizeBytes(buf.Bytes())), nil
}

// ContactSubmit stores a contact form submission and redirects back to
// the originating page. The language middleware has already stripped any
// /id prefix, so one route serves both languages.
// POST /contact
func (f *Frontend) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	lang := middleware.Lang(r)
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, model.LangPrefix(lang)+"/", http.StatusSeeOther)
		return
	}

	pagePath := r.FormValue("page_path")
	if !strings.HasPrefix(pagePath, "/") {
		pagePath = "/"
	}
	returnTo := model.LangPrefix(lang) + pagePath

	input := service.ContactInput{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Phone:    r.FormValue("phone"),
		Company:  r.FormValue("company"),
		Subject:  r.FormValue("subject"),
		Message:  r.FormValue("message"),
		PagePath: pagePath,
		BlockID:  r.FormValue("block_id"),
		Lang:     lang,
	}

	_, err := f.contact.Submit(r.Context(), input, middleware.ClientIP(r), r.UserAgent())
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			http.Redirect(w, r, returnTo+"?contact=invalid", http.StatusSeeOther)
			return
		}
		slog.Error("failed to store contact submission", "error", err)
		http.Redirect(w, r, returnTo+"?contact=error", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, returnTo+"?contact=sent", http.StatusSeeOther)
}

// Sitemap serves the cached XML sitemap.
// GET /sitemap.xml
func (f *Frontend) Sitemap(w http.ResponseWriter, r *http.Request) {
	data, err := f.sitemap.Get(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to generate sitemap", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(data)
}

func (f *Frontend) generateSitemap(ctx context.Context) ([]byte, error) {
	builder := seo.NewSitemapBuilder(f.siteURL)
	builder.AddHomepage()

	staticPages, err := f.queries.ListStaticPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing static pages: %w", err)
	}
	for _, page := range staticPages {
		if page.PageKey == "home" {
			continue
		}
		builder.AddPage(seo.SitemapPage{Path: "/" + page.PageKey, UpdatedAt: page.UpdatedAt})
	}

	customPages, err := f.queries.ListPublishedCustomPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing custom pages: %w", err)
	}
	for _, page := range customPages {
		builder.AddPage(seo.SitemapPage{Path: f.pagePath(ctx, page), UpdatedAt: page.UpdatedAt})
	}

	if f.settings.Bool(ctx, model.SettingBlogIndexingEnabled) {
		builder.AddBlogIndex()
		posts, err := f.queries.ListPublishedPosts(ctx, store.ListPublishedPostsParams{
			Now:    time.Now(),
			Limit:  5000,
			Offset: 0,
		})
		if err != nil {
			return nil, fmt.Errorf("listing posts: %w", err)
		}
		for _, post := range posts {
			builder.AddPost(seo.SitemapPost{Slug: post.Slug, PublishedAt: post.PublishedAt.Time})
		}
	}

	return builder.Build()
}

// Robots serves robots.txt. When indexing is disabled site-wide the file
// disallows everything.
// GET /robots.txt
func (f *Frontend) Robots(w http.ResponseWriter, r *http.Request) {
	disallowAll := !f.settings.Bool(r.Context(), model.SettingIndexingEnabled)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(seo.GenerateRobots(f.siteURL, disallowAll)))
}

// SecurityTxt serves RFC 9116 security.txt.
// GET /.well-known/security.txt
func (f *Frontend) SecurityTxt(w http.ResponseWriter, r *http.Request) {
	email := f.settings.Get(r.Context(), model.SettingContactEmail)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(seo.GenerateSecurityTxt(f.siteURL, email)))
}

// NotFound renders the localized 404 page.
func (f *Frontend) NotFound(w http.ResponseWriter, r *http.Request) {
	lang := middleware.Lang(r)
	site := f.siteConfig(r.Context(), lang)
	data := f.basePageData(r.Context())
	data.Meta = seo.BuildMeta(&seo.PageData{Title: "404", Path: r.URL.Path, NoIndex: true}, site, lang)

	err := f.renderer.RenderStatus(w, r, http.StatusNotFound, "site/404", render.TemplateData{
		Title:    data.Meta.Title,
		Lang:     lang,
		Path:     r.URL.Path,
		SiteName: site.SiteName,
		Meta:     data.Meta,
		Data:     data,
	})
	if err != nil {
		http.NotFound(w, r)
	}
}
