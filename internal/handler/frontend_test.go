// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kemasindo/kemas/internal/blocks"
	"github.com/kemasindo/kemas/internal/cache"
	"github.com/kemasindo/kemas/internal/middleware"
	"github.com/kemasindo/kemas/internal/service"
	"github.com/kemasindo/kemas/internal/store"
)

const testSiteURL = "https://kemasindo.co.id"

type frontendEnv struct {
	*testEnv
	frontend *Frontend
	router   http.Handler
}

func newFrontendEnv(t *testing.T) *frontendEnv {
	t.Helper()
	env := newTestEnv(t)

	blocksRenderer, err := blocks.NewRenderer()
	if err != nil {
		t.Fatalf("building block renderer: %v", err)
	}

	mem := cache.NewMemoryCache(cache.MemoryCacheOptions{DefaultTTL: time.Minute})
	t.Cleanup(func() { _ = mem.Close() })

	f := NewFrontend(env.db, env.renderer, blocksRenderer,
		service.NewContactService(env.db, nil),
		service.NewSettingsService(env.db, mem),
		testSiteURL)

	r := chi.NewRouter()
	r.Get("/", f.Home)
	r.Get("/about", f.StaticPage("about"))
	r.Get("/products", f.StaticPage("products"))
	r.Get("/contact", f.StaticPage("contact"))
	r.Post("/contact", f.ContactSubmit)
	r.Get("/blog", f.BlogIndex)
	r.Get("/blog/{slug}", f.BlogPost)
	r.Get("/sitemap.xml", f.Sitemap)
	r.Get("/robots.txt", f.Robots)
	r.Get("/.well-known/security.txt", f.SecurityTxt)
	r.NotFound(f.CustomPage)

	return &frontendEnv{
		testEnv:  env,
		frontend: f,
		router:   middleware.Language(r),
	}
}

func (e *frontendEnv) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	return e.serve(e.router, httptest.NewRequest(http.MethodGet, path, nil))
}

func (e *testEnv) createStaticPage(t *testing.T, key, contentEn, contentID string) store.StaticPage {
	t.Helper()
	page, err := e.queries.UpsertStaticPage(context.Background(), store.UpsertStaticPageParams{
		PageKey:   key,
		TitleEn:   "Title " + key,
		TitleID:   "Judul " + key,
		ContentEn: contentEn,
		ContentID: contentID,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("creating static page: %v", err)
	}
	return page
}

func (e *frontendEnv) createPost(t *testing.T, slug, status string, publishedAt time.Time) store.Post {
	t.Helper()
	author := e.createUser(t, slug+"@kemasindo.co.id", "editor")
	now := time.Now()
	post, err := e.queries.CreatePost(context.Background(), store.CreatePostParams{
		Slug:        slug,
		TitleEn:     "Post " + slug,
		TitleID:     "Artikel " + slug,
		ExcerptEn:   "Excerpt",
		BodyEn:      "# Heading\n\nBody text with **markdown**.",
		BodyID:      "# Judul\n\nIsi artikel.",
		Status:      status,
		PublishedAt: sql.NullTime{Time: publishedAt, Valid: !publishedAt.IsZero()},
		AuthorID:    author.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		t.Fatalf("creating post: %v", err)
	}
	return post
}

func TestHomeRendersStaticBlocks(t *testing.T) {
	env := newFrontendEnv(t)
	env.createStaticPage(t, "home",
		`[{"id":"b1","type":"text","data":{"content":"Welcome to Kemasindo"}}]`,
		`[{"id":"b1","type":"text","data":{"content":"Selamat datang"}}]`)

	w := env.get(t, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", w.Code, w.Body.String())
	}
}

func TestStaticPageMissingKey404(t *testing.T) {
	env := newFrontendEnv(t)

	w := env.get(t, "/about")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestCustomPagePublished(t *testing.T) {
	env := newFrontendEnv(t)
	env.createPage(t, "corrugated-boxes", "published")

	w := env.get(t, "/corrugated-boxes")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", w.Code, w.Body.String())
	}
}

func TestCustomPageDraft404(t *testing.T) {
	env := newFrontendEnv(t)
	env.createPage(t, "unlaunched", "draft")

	w := env.get(t, "/unlaunched")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestCustomPageIndonesianPrefix(t *testing.T) {
	env := newFrontendEnv(t)
	env.createPage(t, "boxes", "published")

	w := env.get(t, "/id/boxes")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", w.Code, w.Body.String())
	}
}

func TestNestedPagePathMustMatchParentChain(t *testing.T) {
	env := newFrontendEnv(t)
	parent := env.createPage(t, "products-line", "published")

	author := env.createUser(t, "nested@kemasindo.co.id", "editor")
	now := time.Now()
	_, err := env.queries.CreateCustomPage(context.Background(), store.CreateCustomPageParams{
		Slug:      "food-grade",
		ParentID:  sql.NullInt64{Int64: parent.ID, Valid: true},
		TitleEn:   "Food Grade",
		Template:  "default",
		Status:    "published",
		ContentEn: "[]",
		ContentID: "[]",
		CreatedBy: author.ID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("creating child page: %v", err)
	}

	if w := env.get(t, "/products-line/food-grade"); w.Code != http.StatusOK {
		t.Errorf("nested path status = %d, want 200", w.Code)
	}
	// Child slug without its parent segment must not resolve.
	if w := env.get(t, "/food-grade"); w.Code != http.StatusNotFound {
		t.Errorf("bare child slug status = %d, want 404", w.Code)
	}
	if w := env.get(t, "/wrong-parent/food-grade"); w.Code != http.StatusNotFound {
		t.Errorf("wrong parent status = %d, want 404", w.Code)
	}
}

func TestBlogIndexListsOnlyPublished(t *testing.T) {
	env := newFrontendEnv(t)
	env.createPost(t, "published-post", "published", time.Now().Add(-time.Hour))
	env.createPost(t, "draft-post", "draft", time.Time{})
	env.createPost(t, "future-post", "published", time.Now().Add(24*time.Hour))

	w := env.get(t, "/blog")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", w.Code, w.Body.String())
	}
}

func TestBlogPostPublished(t *testing.T) {
	env := newFrontendEnv(t)
	env.createPost(t, "sustainable-packaging", "published", time.Now().Add(-time.Hour))

	w := env.get(t, "/blog/sustainable-packaging")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", w.Code, w.Body.String())
	}
}

func TestBlogPostDraftAndFuture404(t *testing.T) {
	env := newFrontendEnv(t)
	env.createPost(t, "draft-post", "draft", time.Time{})
	env.createPost(t, "future-post", "published", time.Now().Add(24*time.Hour))

	for _, slug := range []string{"draft-post", "future-post", "missing"} {
		if w := env.get(t, "/blog/"+slug); w.Code != http.StatusNotFound {
			t.Errorf("%s: status = %d, want 404", slug, w.Code)
		}
	}
}

func TestSitemapFiltersDrafts(t *testing.T) {
	env := newFrontendEnv(t)
	env.createStaticPage(t, "about", "[]", "[]")
	env.createPage(t, "visible", "published")
	env.createPage(t, "hidden", "draft")
	env.createPost(t, "news", "published", time.Now().Add(-time.Hour))

	w := env.get(t, "/sitemap.xml")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "application/xml") {
		t.Errorf("Content-Type = %q", ct)
	}

	body := w.Body.String()
	for _, want := range []string{
		testSiteURL + "/</loc>",
		testSiteURL + "/about</loc>",
		testSiteURL + "/visible</loc>",
		testSiteURL + "/blog</loc>",
		testSiteURL + "/blog/news</loc>",
		testSiteURL + "/id/visible</loc>",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("sitemap missing %q", want)
		}
	}
	if strings.Contains(body, "/hidden") {
		t.Error("sitemap lists draft page")
	}
}

func TestRobotsHonorsIndexingSetting(t *testing.T) {
	env := newFrontendEnv(t)

	w := env.get(t, "/robots.txt")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Sitemap: "+testSiteURL+"/sitemap.xml") {
		t.Errorf("robots.txt missing sitemap line: %q", w.Body.String())
	}
	if strings.Contains(w.Body.String(), "Disallow: /\n") {
		t.Errorf("robots.txt disallows everything by default: %q", w.Body.String())
	}
}

func TestRobotsDisallowAllWhenIndexingOff(t *testing.T) {
	env := newFrontendEnv(t)
	err := env.queries.UpsertSetting(context.Background(), store.UpsertSettingParams{
		Key:       "indexing_enabled",
		Value:     "0",
		UpdatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("disabling indexing: %v", err)
	}

	w := env.get(t, "/robots.txt")
	if !strings.Contains(w.Body.String(), "Disallow: /") {
		t.Errorf("robots.txt = %q, want disallow all", w.Body.String())
	}
}

func TestSecurityTxt(t *testing.T) {
	env := newFrontendEnv(t)
	err := env.queries.UpsertSetting(context.Background(), store.UpsertSettingParams{
		Key:       "contact_email",
		Value:     "security@kemasindo.co.id",
		UpdatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("setting contact email: %v", err)
	}

	w := env.get(t, "/.well-known/security.txt")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "mailto:security@kemasindo.co.id") {
		t.Errorf("security.txt = %q, want contact mailto", w.Body.String())
	}
}

func TestContactSubmit(t *testing.T) {
	env := newFrontendEnv(t)

	req := newFormRequest("/contact", url.Values{
		"name":      {"Budi Santoso"},
		"email":     {"budi@example.co.id"},
		"message":   {"Requesting a quote for 10,000 corrugated boxes."},
		"page_path": {"/contact"},
	})
	w := env.serve(env.router, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, body %q", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/contact?contact=sent" {
		t.Errorf("Location = %q, want /contact?contact=sent", loc)
	}

	subs, err := env.queries.ListContactSubmissions(context.Background(), store.ListContactSubmissionsParams{Limit: 10, Offset: 0})
	if err != nil {
		t.Fatalf("listing submissions: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("submission count = %d, want 1", len(subs))
	}
	if subs[0].Email != "budi@example.co.id" {
		t.Errorf("Email = %q", subs[0].Email)
	}
}

func TestContactSubmitIndonesianRedirect(t *testing.T) {
	env := newFrontendEnv(t)

	req := newFormRequest("/id/contact", url.Values{
		"name":      {"Siti"},
		"email":     {"siti@example.co.id"},
		"message":   {"Butuh penawaran harga kemasan."},
		"page_path": {"/contact"},
	})
	w := env.serve(env.router, req)

	if loc := w.Header().Get("Location"); loc != "/id/contact?contact=sent" {
		t.Errorf("Location = %q, want /id/contact?contact=sent", loc)
	}
}

func TestContactSubmitValidation(t *testing.T) {
	env := newFrontendEnv(t)

	req := newFormRequest("/contact", url.Values{
		"name":      {""},
		"email":     {"not-an-email"},
		"message":   {""},
		"page_path": {"/contact"},
	})
	w := env.serve(env.router, req)

	if loc := w.Header().Get("Location"); loc != "/contact?contact=invalid" {
		t.Errorf("Location = %q, want /contact?contact=invalid", loc)
	}

	subs, err := env.queries.ListAllContactSubmissions(context.Background())
	if err != nil {
		t.Fatalf("listing submissions: %v", err)
	}
	if len(subs) != 0 {
		t.Errorf("submission count = %d, want 0", len(subs))
	}
}
