// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/kemasindo/kemas/internal/cache"
	"github.com/kemasindo/kemas/internal/i18n"
	"github.com/kemasindo/kemas/internal/middleware"
	"github.com/kemasindo/kemas/internal/model"
	"github.com/kemasindo/kemas/internal/render"
	"github.com/kemasindo/kemas/internal/service"
)

const adminSettingsURL = "/admin/settings"

// SettingsHandler edits site settings. Admin role only; the head/body
// script settings inject raw HTML into every public page.
type SettingsHandler struct {
	settings       *service.SettingsService
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
	sitemap        *cache.SitemapCache
}

// NewSettingsHandler creates a SettingsHandler. sitemap may be nil in tests.
func NewSettingsHandler(settings *service.SettingsService, renderer *render.Renderer, sm *scs.SessionManager, sitemap *cache.SitemapCache) *SettingsHandler {
	return &SettingsHandler{
		settings:       settings,
		renderer:       renderer,
		sessionManager: sm,
		sitemap:        sitemap,
	}
}

// settingsFormData feeds the settings template.
type settingsFormData struct {
	Keys   []string
	Values map[string]string
}

// Form renders the settings form.
// GET /admin/settings
func (h *SettingsHandler) Form(w http.ResponseWriter, r *http.Request) {
	values, err := h.settings.All(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to load settings", "error", err)
		return
	}

	lang := middleware.AdminLang(h.sessionManager, r)
	err = h.renderer.Render(w, r, "admin/settings", render.TemplateData{
		Title: i18n.T(lang, "admin.settings"),
		Lang:  lang,
		User:  middleware.GetUser(r),
		Data:  settingsFormData{Keys: model.SettingsKeys, Values: values},
	})
	if err != nil {
		logAndInternalError(w, "failed to render settings", "error", err)
	}
}

// Update saves all submitted settings. Only known keys are accepted.
// POST /admin/settings
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flashError(w, r, h.renderer, adminSettingsURL, "Invalid form data")
		return
	}

	values := make(map[string]string, len(model.SettingsKeys))
	for _, key := range model.SettingsKeys {
		if _, ok := r.PostForm[key]; ok {
			values[key] = r.PostForm.Get(key)
		}
	}

	if err := h.settings.Update(r.Context(), values); err != nil {
		logAndInternalError(w, "failed to save settings", "error", err)
		return
	}

	// Indexing toggles change what the sitemap lists.
	if h.sitemap != nil {
		h.sitemap.Invalidate()
	}

	lang := middleware.AdminLang(h.sessionManager, r)
	flashSuccess(w, r, h.renderer, adminSettingsURL, i18n.T(lang, "admin.saved"))
}
