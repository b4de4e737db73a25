// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/kemasindo/kemas/internal/auth"
)

func newUsersRouter(env *testEnv) http.Handler {
	h := NewUsersHandler(env.db, env.renderer, env.session)

	r := chi.NewRouter()
	r.Get("/admin/users", h.List)
	r.Get("/admin/users/new", h.NewForm)
	r.Post("/admin/users", h.Create)
	r.Post("/admin/users/{id}/password", h.UpdatePassword)
	r.Post("/admin/users/{id}/delete", h.Delete)
	return r
}

func TestUserCreate(t *testing.T) {
	env := newTestEnv(t)
	router := newUsersRouter(env)

	req := newFormRequest("/admin/users", url.Values{
		"name":     {"Dewi Lestari"},
		"email":    {"dewi@kemasindo.co.id"},
		"password": {"panjang-dan-aman"},
		"role":     {"editor"},
	})
	w := env.serve(router, req)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want redirect", w.Code)
	}

	user, err := env.queries.GetUserByEmail(context.Background(), "dewi@kemasindo.co.id")
	if err != nil {
		t.Fatalf("user not created: %v", err)
	}
	if user.Role != "editor" {
		t.Errorf("Role = %q, want editor", user.Role)
	}
	ok, err := auth.CheckPassword("panjang-dan-aman", user.PasswordHash)
	if err != nil || !ok {
		t.Errorf("stored hash does not verify: ok=%v err=%v", ok, err)
	}
}

func TestUserCreateRejectsShortPassword(t *testing.T) {
	env := newTestEnv(t)
	router := newUsersRouter(env)

	req := newFormRequest("/admin/users", url.Values{
		"name":     {"Dewi"},
		"email":    {"dewi@kemasindo.co.id"},
		"password": {"short"},
	})
	env.serve(router, req)

	if _, err := env.queries.GetUserByEmail(context.Background(), "dewi@kemasindo.co.id"); err == nil {
		t.Error("user with short password was created")
	}
}

func TestUserCreateRejectsDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	router := newUsersRouter(env)
	env.createUser(t, "dewi@kemasindo.co.id", "editor")

	req := newFormRequest("/admin/users", url.Values{
		"name":     {"Dewi Again"},
		"email":    {"dewi@kemasindo.co.id"},
		"password": {"panjang-dan-aman"},
	})
	env.serve(router, req)

	users, err := env.queries.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("listing users: %v", err)
	}
	if len(users) != 1 {
		t.Errorf("user count = %d, want 1", len(users))
	}
}

func TestUserUpdatePassword(t *testing.T) {
	env := newTestEnv(t)
	router := newUsersRouter(env)
	user := env.createUser(t, "dewi@kemasindo.co.id", "editor")

	req := newFormRequest(fmt.Sprintf("/admin/users/%d/password", user.ID), url.Values{
		"password": {"kata-sandi-baru"},
	})
	w := env.serve(router, req)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want redirect", w.Code)
	}

	reloaded, err := env.queries.GetUserByEmail(context.Background(), "dewi@kemasindo.co.id")
	if err != nil {
		t.Fatalf("reloading user: %v", err)
	}
	ok, err := auth.CheckPassword("kata-sandi-baru", reloaded.PasswordHash)
	if err != nil || !ok {
		t.Errorf("new password does not verify: ok=%v err=%v", ok, err)
	}
}

func TestUserDeleteBlocksSelf(t *testing.T) {
	env := newTestEnv(t)
	router := newUsersRouter(env)
	admin := env.createUser(t, "admin@kemasindo.co.id", "admin")

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/admin/users/%d/delete", admin.ID), nil)
	req = withUser(req, admin)
	env.serve(router, req)

	if _, err := env.queries.GetUserByEmail(context.Background(), "admin@kemasindo.co.id"); err != nil {
		t.Error("account was able to delete itself")
	}
}

func TestUserDeleteBlocksLastAdmin(t *testing.T) {
	env := newTestEnv(t)
	router := newUsersRouter(env)
	admin := env.createUser(t, "admin@kemasindo.co.id", "admin")
	actor := env.createUser(t, "editor@kemasindo.co.id", "editor")

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/admin/users/%d/delete", admin.ID), nil)
	req = withUser(req, actor)
	env.serve(router, req)

	if _, err := env.queries.GetUserByEmail(context.Background(), "admin@kemasindo.co.id"); err != nil {
		t.Error("last admin account was deleted")
	}
}

func TestUserDelete(t *testing.T) {
	env := newTestEnv(t)
	router := newUsersRouter(env)
	admin := env.createUser(t, "admin@kemasindo.co.id", "admin")
	second := env.createUser(t, "backup@kemasindo.co.id", "admin")

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/admin/users/%d/delete", second.ID), nil)
	req = withUser(req, admin)
	w := env.serve(router, req)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want redirect", w.Code)
	}

	if _, err := env.queries.GetUserByEmail(context.Background(), "backup@kemasindo.co.id"); err == nil {
		t.Error("user still exists after delete")
	}
}
