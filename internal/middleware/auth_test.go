// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"

	"github.com/kemasindo/kemas/internal/model"
	"github.com/kemasindo/kemas/internal/store"
)

func TestAuthRedirectsAnonymous(t *testing.T) {
	sm := scs.New()
	handler := sm.LoadAndSave(Auth(sm)(okHandler()))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != LoginPath {
		t.Errorf("Location = %q, want %q", got, LoginPath)
	}
}

func withUser(r *http.Request, user store.User) *http.Request {
	ctx := context.WithValue(r.Context(), ContextKeyUser, user)
	return r.WithContext(ctx)
}

func TestRequireRoleHierarchy(t *testing.T) {
	tests := []struct {
		name     string
		userRole string
		minRole  string
		want     int
	}{
		{"admin accesses admin", model.RoleAdmin, model.RoleAdmin, http.StatusOK},
		{"admin accesses editor", model.RoleAdmin, model.RoleEditor, http.StatusOK},
		{"editor accesses editor", model.RoleEditor, model.RoleEditor, http.StatusOK},
		{"editor denied admin", model.RoleEditor, model.RoleAdmin, http.StatusForbidden},
		{"unknown role denied", "viewer", model.RoleEditor, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RequireRole(tt.minRole)(okHandler())
			req := withUser(httptest.NewRequest(http.MethodGet, "/admin/users", nil), store.User{
				ID:   1,
				Role: tt.userRole,
			})
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestRequireRoleRedirectsWithoutUser(t *testing.T) {
	handler := RequireAdmin()(okHandler())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/users", nil))

	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want 303", rec.Code)
	}
}

func TestGetUser(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if GetUser(req) != nil {
		t.Error("GetUser on empty context should be nil")
	}
	if GetUserID(req) != 0 {
		t.Error("GetUserID on empty context should be 0")
	}

	req = withUser(req, store.User{ID: 42, Email: "admin@kemasindo.co.id"})
	user := GetUser(req)
	if user == nil || user.ID != 42 {
		t.Errorf("GetUser = %+v, want ID 42", user)
	}
	if GetUserID(req) != 42 {
		t.Errorf("GetUserID = %d, want 42", GetUserID(req))
	}
}
