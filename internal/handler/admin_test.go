// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDashboardRenders(t *testing.T) {
	env := newTestEnv(t)
	h := NewAdminHandler(env.db, env.renderer, env.session)

	admin := env.createUser(t, "admin@kemasindo.co.id", "admin")
	env.createPage(t, "boxes", "published")
	env.createPage(t, "bags", "draft")
	env.createSubmission(t, "Budi", "budi@example.co.id")

	req := withUser(httptest.NewRequest(http.MethodGet, "/admin", nil), admin)
	w := env.serve(http.HandlerFunc(h.Dashboard), req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", w.Code, w.Body.String())
	}
}
