// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/kemasindo/kemas/internal/i18n"
	"github.com/kemasindo/kemas/internal/middleware"
	"github.com/kemasindo/kemas/internal/render"
	"github.com/kemasindo/kemas/internal/store"
	"github.com/kemasindo/kemas/internal/testutil"
)

// stubTemplatesFS provides one minimal template per page the handlers
// render, so template lookups succeed without the real markup.
func stubTemplatesFS() fstest.MapFS {
	fsys := fstest.MapFS{
		"layouts/base.html": &fstest.MapFile{
			Data: []byte(`{{define "base"}}{{.Title}}|{{block "content" .}}{{end}}{{end}}`),
		},
		"layouts/admin.html": &fstest.MapFile{
			Data: []byte(`{{define "adminnav"}}{{end}}`),
		},
		"layouts/site.html": &fstest.MapFile{
			Data: []byte(`{{define "sitenav"}}{{end}}`),
		},
	}
	pages := map[string][]string{
		"admin": {
			"dashboard", "pages_list", "page_form", "page_editor",
			"static_list", "static_editor", "posts_list", "post_form",
			"media_list", "submissions_list", "submission_view",
			"settings", "users_list", "user_form",
		},
		"auth": {"login"},
		"site": {"page", "landing", "blank", "blog", "post", "404"},
	}
	for dir, names := range pages {
		for _, name := range names {
			fsys[dir+"/"+name+".html"] = &fstest.MapFile{
				Data: []byte(`{{define "content"}}` + name + `{{end}}`),
			}
		}
	}
	return fsys
}

// testEnv bundles the pieces most handler tests need.
type testEnv struct {
	db       *sql.DB
	queries  *store.Queries
	renderer *render.Renderer
	session  *scs.SessionManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if err := i18n.Init(nil); err != nil {
		t.Fatalf("i18n.Init() error = %v", err)
	}

	db := testutil.NewDB(t)
	sm := scs.New()

	renderer, err := render.New(render.Config{
		TemplatesFS:    stubTemplatesFS(),
		SessionManager: sm,
	})
	if err != nil {
		t.Fatalf("render.New() error = %v", err)
	}

	return &testEnv{
		db:       db,
		queries:  store.New(db),
		renderer: renderer,
		session:  sm,
	}
}

func (e *testEnv) createUser(t *testing.T, email, role string) store.User {
	t.Helper()
	now := time.Now()
	user, err := e.queries.CreateUser(context.Background(), store.CreateUserParams{
		Email: email,
		// argon2id hash of an unrelated password; login tests hash their own.
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
		Role:         role,
		Name:         "Test User",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("creating user: %v", err)
	}
	return user
}

func (e *testEnv) createPage(t *testing.T, slug, status string) store.CustomPage {
	t.Helper()
	user := e.createUser(t, slug+"-author@kemasindo.co.id", "editor")
	now := time.Now()
	page, err := e.queries.CreateCustomPage(context.Background(), store.CreateCustomPageParams{
		Slug:      slug,
		TitleEn:   "Title " + slug,
		TitleID:   "Judul " + slug,
		Template:  "default",
		Status:    status,
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

// serve runs a request through the session middleware, which flash
// handling and login depend on.
func (e *testEnv) serve(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.session.LoadAndSave(handler).ServeHTTP(w, req)
	return w
}

// withUser puts an authenticated user on the request context the way the
// auth middleware would.
func withUser(req *http.Request, user store.User) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.ContextKeyUser, user)
	return req.WithContext(ctx)
}
