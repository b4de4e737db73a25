// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"log/slog"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/kemasindo/kemas/internal/auth"
	"github.com/kemasindo/kemas/internal/i18n"
	"github.com/kemasindo/kemas/internal/middleware"
	"github.com/kemasindo/kemas/internal/model"
	"github.com/kemasindo/kemas/internal/render"
	"github.com/kemasindo/kemas/internal/store"
)

const adminUsersURL = "/admin/users"

// minPasswordLength is the floor for new account passwords.
const minPasswordLength = 10

// UsersHandler manages admin panel accounts. Admin role only.
type UsersHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
}

// NewUsersHandler creates a UsersHandler.
func NewUsersHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager) *UsersHandler {
	return &UsersHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
	}
}

// List renders the user list.
// GET /admin/users
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.queries.ListUsers(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list users", "error", err)
		return
	}

	lang := middleware.AdminLang(h.sessionManager, r)
	err = h.renderer.Render(w, r, "admin/users_list", render.TemplateData{
		Title: i18n.T(lang, "admin.users"),
		Lang:  lang,
		User:  middleware.GetUser(r),
		Data:  users,
	})
	if err != nil {
		logAndInternalError(w, "failed to render users list", "error", err)
	}
}

// NewForm renders the new user form.
// GET /admin/users/new
func (h *UsersHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	lang := middleware.AdminLang(h.sessionManager, r)
	err := h.renderer.Render(w, r, "admin/user_form", render.TemplateData{
		Title: i18n.T(lang, "admin.create"),
		Lang:  lang,
		User:  middleware.GetUser(r),
	})
	if err != nil {
		logAndInternalError(w, "failed to render user form", "error", err)
	}
}

// Create adds an account.
// POST /admin/users
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flashError(w, r, h.renderer, adminUsersURL+"/new", "Invalid form data")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	name := strings.TrimSpace(r.FormValue("name"))
	password := r.FormValue("password")
	role := r.FormValue("role")

	if _, err := mail.ParseAddress(email); err != nil {
		flashError(w, r, h.renderer, adminUsersURL+"/new", "Invalid email address")
		return
	}
	if name == "" {
		flashError(w, r, h.renderer, adminUsersURL+"/new", "Name is required")
		return
	}
	if len(password) < minPasswordLength {
		flashError(w, r, h.renderer, adminUsersURL+"/new", "Password is too short")
		return
	}
	if !model.ValidRole(role) {
		role = model.RoleEditor
	}
	if _, err := h.queries.GetUserByEmail(r.Context(), email); err == nil {
		flashError(w, r, h.renderer, adminUsersURL+"/new", "Email is already in use")
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		logAndInternalError(w, "failed to hash password", "error", err)
		return
	}

	now := time.Now()
	user, err := h.queries.CreateUser(r.Context(), store.CreateUserParams{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Name:         name,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		logAndInternalError(w, "failed to create user", "error", err)
		return
	}

	slog.Info("user created", "user_id", user.ID, "email", user.Email, "role", user.Role)
	lang := middleware.AdminLang(h.sessionManager, r)
	flashSuccess(w, r, h.renderer, adminUsersURL, i18n.T(lang, "admin.saved"))
}

// UpdatePassword sets a new password for an account.
// POST /admin/users/{id}/password
func (h *UsersHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		flashError(w, r, h.renderer, adminUsersURL, "User not found")
		return
	}
	if err := r.ParseForm(); err != nil {
		flashError(w, r, h.renderer, adminUsersURL, "Invalid form data")
		return
	}

	password := r.FormValue("password")
	if len(password) < minPasswordLength {
		flashError(w, r, h.renderer, adminUsersURL, "Password is too short")
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		logAndInternalError(w, "failed to hash password", "error", err)
		return
	}
	if err := h.queries.UpdateUserPassword(r.Context(), store.UpdateUserPasswordParams{
		PasswordHash: hash,
		UpdatedAt:    time.Now(),
		ID:           id,
	}); err != nil {
		logAndInternalError(w, "failed to update password", "error", err, "user_id", id)
		return
	}

	slog.Info("user password changed", "user_id", id)
	lang := middleware.AdminLang(h.sessionManager, r)
	flashSuccess(w, r, h.renderer, adminUsersURL, i18n.T(lang, "admin.saved"))
}

// Delete removes an account. The last admin and the current user are
// protected.
// POST /admin/users/{id}/delete
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		flashError(w, r, h.renderer, adminUsersURL, "User not found")
		return
	}
	if id == middleware.GetUserID(r) {
		flashError(w, r, h.renderer, adminUsersURL, "You cannot delete your own account")
		return
	}

	target, err := h.queries.GetUserByID(r.Context(), id)
	if err != nil {
		flashError(w, r, h.renderer, adminUsersURL, "User not found")
		return
	}
	if target.Role == model.RoleAdmin {
		users, err := h.queries.ListUsers(r.Context())
		if err != nil {
			logAndInternalError(w, "failed to list users", "error", err)
			return
		}
		admins := 0
		for _, u := range users {
			if u.Role == model.RoleAdmin {
				admins++
			}
		}
		if admins <= 1 {
			flashError(w, r, h.renderer, adminUsersURL, "Cannot delete the last admin")
			return
		}
	}

	if err := h.queries.DeleteUser(r.Context(), id); err != nil {
		logAndInternalError(w, "failed to delete user", "error", err, "user_id", id)
		return
	}

	slog.Info("user deleted", "user_id", id)
	lang := middleware.AdminLang(h.sessionManager, r)
	flashSuccess(w, r, h.renderer, adminUsersURL, i18n.T(lang, "admin.deleted"))
}
