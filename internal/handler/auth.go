// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/kemasindo/kemas/internal/auth"
	"github.com/kemasindo/kemas/internal/i18n"
	"github.com/kemasindo/kemas/internal/middleware"
	"github.com/kemasindo/kemas/internal/render"
	"github.com/kemasindo/kemas/internal/store"
)

// AuthHandler handles admin login and logout.
type AuthHandler struct {
	queries         *store.Queries
	renderer        *render.Renderer
	sessionManager  *scs.SessionManager
	loginProtection *middleware.LoginProtection
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager, lp *middleware.LoginProtection) *AuthHandler {
	return &AuthHandler{
		queries:         store.New(db),
		renderer:        renderer,
		sessionManager:  sm,
		loginProtection: lp,
	}
}

// LoginForm renders the login page. Already-authenticated users go
// straight to the dashboard.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if userID := h.sessionManager.GetInt64(r.Context(), middleware.SessionKeyUserID); userID > 0 {
		if _, err := h.queries.GetUserByID(r.Context(), userID); err == nil {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
	}

	lang := middleware.AdminLang(h.sessionManager, r)
	err := h.renderer.Render(w, r, "auth/login", render.TemplateData{
		Title: i18n.T(lang, "admin.login"),
		Lang:  lang,
	})
	if err != nil {
		logAndInternalError(w, "failed to render login page", "error", err)
	}
}

// Login handles the login form submission.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	lang := middleware.AdminLang(h.sessionManager, r)

	if err := r.ParseForm(); err != nil {
		flashError(w, r, h.renderer, middleware.LoginPath, "Invalid form data")
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")
	if email == "" || password == "" {
		flashError(w, r, h.renderer, middleware.LoginPath, i18n.T(lang, "admin.invalid_credentials"))
		return
	}

	if locked, _ := h.loginProtection.IsAccountLocked(email); locked {
		flashError(w, r, h.renderer, middleware.LoginPath, i18n.T(lang, "admin.too_many_attempts"))
		return
	}

	user, err := h.queries.GetUserByEmail(r.Context(), email)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Error("database error during login", "error", err)
		}
		// Record the failure for unknown accounts too, so the lockout
		// cannot be used to probe which emails exist.
		h.recordFailure(w, r, lang, email)
		return
	}

	valid, err := auth.CheckPassword(password, user.PasswordHash)
	if err != nil {
		slog.Error("password check error", "error", err, "user_id", user.ID)
		flashError(w, r, h.renderer, middleware.LoginPath, i18n.T(lang, "admin.invalid_credentials"))
		return
	}
	if !valid {
		slog.Debug("invalid password attempt", "email", email)
		h.recordFailure(w, r, lang, email)
		return
	}

	h.loginProtection.RecordSuccessfulLogin(email)

	// Migrate hashes created with older parameters on the fly.
	if auth.NeedsRehash(user.PasswordHash) {
		if newHash, hashErr := auth.HashPassword(password); hashErr == nil {
			if err := h.queries.UpdateUserPassword(r.Context(), store.UpdateUserPasswordParams{
				PasswordHash: newHash,
				UpdatedAt:    time.Now(),
				ID:           user.ID,
			}); err != nil {
				slog.Error("failed to re-hash password", "error", err, "user_id", user.ID)
			}
		}
	}

	if err := h.queries.UpdateUserLastLogin(r.Context(), store.UpdateUserLastLoginParams{
		LastLoginAt: sql.NullTime{Time: time.Now(), Valid: true},
		ID:          user.ID,
	}); err != nil {
		slog.Error("failed to update last login time", "error", err, "user_id", user.ID)
	}

	// New session ID on privilege change.
	if err := h.sessionManager.RenewToken(r.Context()); err != nil {
		logAndInternalError(w, "session renewal error", "error", err)
		return
	}
	h.sessionManager.Put(r.Context(), middleware.SessionKeyUserID, user.ID)

	slog.Info("user logged in", "user_id", user.ID, "email", user.Email)
	h.renderer.SetFlash(r, i18n.T(lang, "admin.welcome", user.Name), "success")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *AuthHandler) recordFailure(w http.ResponseWriter, r *http.Request, lang, email string) {
	if locked, _ := h.loginProtection.RecordFailedAttempt(email); locked {
		flashError(w, r, h.renderer, middleware.LoginPath, i18n.T(lang, "admin.too_many_attempts"))
		return
	}
	flashError(w, r, h.renderer, middleware.LoginPath, i18n.T(lang, "admin.invalid_credentials"))
}

// Logout destroys the session and returns to the login page.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID := h.sessionManager.GetInt64(r.Context(), middleware.SessionKeyUserID)
	if err := h.sessionManager.Destroy(r.Context()); err != nil {
		slog.Error("session destroy error", "error", err)
	}
	slog.Info("user logged out", "user_id", userID)
	http.Redirect(w, r, middleware.LoginPath, http.StatusSeeOther)
}

// SetLanguage stores the admin UI language preference in the session.
// POST /admin/language
func (h *AuthHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	lang := r.FormValue("lang")
	if i18n.IsSupported(lang) {
		h.sessionManager.Put(r.Context(), middleware.SessionKeyAdminLang, lang)
	}
	referer := r.Header.Get("Referer")
	if referer == "" {
		referer = "/admin"
	}
	http.Redirect(w, r, referer, http.StatusSeeOther)
}
