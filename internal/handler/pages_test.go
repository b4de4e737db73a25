// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/kemasindo/kemas/internal/blocks"
)

func newPagesRouter(env *testEnv) http.Handler {
	h := NewPagesHandler(env.db, env.renderer, env.session, nil, nil)

	r := chi.NewRouter()
	r.Get("/admin/pages", h.List)
	r.Get("/admin/pages/new", h.NewForm)
	r.Post("/admin/pages", h.Create)
	r.Get("/admin/pages/{id}", h.EditForm)
	r.Post("/admin/pages/{id}", h.Update)
	r.Post("/admin/pages/{id}/delete", h.Delete)
	r.Get("/admin/pages/{id}/editor", h.Editor)
	r.Post("/admin/pages/{id}/blocks", h.BlockAdd)
	r.Post("/admin/pages/{id}/blocks/reorder", h.BlockReorder)
	r.Post("/admin/pages/{id}/blocks/{blockId}", h.BlockUpdate)
	r.Post("/admin/pages/{id}/blocks/{blockId}/delete", h.BlockDelete)
	return r
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response %q: %v", w.Body.String(), err)
	}
	return resp
}

func pageBlocks(t *testing.T, env *testEnv, id int64, lang string) []blocks.Block {
	t.Helper()
	page, err := env.queries.GetCustomPage(context.Background(), id)
	if err != nil {
		t.Fatalf("loading page: %v", err)
	}
	content := page.ContentEn
	if lang == "id" {
		content = page.ContentID
	}
	list, err := blocks.UnmarshalList([]byte(content))
	if err != nil {
		t.Fatalf("decoding blocks: %v", err)
	}
	return list
}

func TestPageCreate(t *testing.T) {
	env := newTestEnv(t)
	router := newPagesRouter(env)

	admin := env.createUser(t, "admin@kemasindo.co.id", "admin")
	req := withUser(newFormRequest("/admin/pages", url.Values{
		"title_en": {"Corrugated Boxes"},
		"title_id": {"Kotak Bergelombang"},
		"template": {"default"},
		"status":   {"published"},
	}), admin)
	w := env.serve(router, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d, body %q", w.Code, http.StatusSeeOther, w.Body.String())
	}

	page, err := env.queries.GetCustomPageBySlug(context.Background(), "corrugated-boxes")
	if err != nil {
		t.Fatalf("page not created: %v", err)
	}
	if page.ContentEn != "[]" || page.ContentID != "[]" {
		t.Errorf("new page content = %q / %q, want empty arrays", page.ContentEn, page.ContentID)
	}
	if page.Status != "published" {
		t.Errorf("Status = %q, want %q", page.Status, "published")
	}
}

func TestPageCreateRejectsReservedSlug(t *testing.T) {
	env := newTestEnv(t)
	router := newPagesRouter(env)

	req := newFormRequest("/admin/pages", url.Values{
		"title_en": {"Whatever"},
		"slug":     {"admin"},
	})
	w := env.serve(router, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want redirect", w.Code)
	}
	if _, err := env.queries.GetCustomPageBySlug(context.Background(), "admin"); err == nil {
		t.Error("page with reserved slug was created")
	}
}

func TestPageCreateRejectsDuplicateSlug(t *testing.T) {
	env := newTestEnv(t)
	router := newPagesRouter(env)
	env.createPage(t, "boxes", "published")

	req := newFormRequest("/admin/pages", url.Values{
		"title_en": {"Boxes Again"},
		"slug":     {"boxes"},
	})
	env.serve(router, req)

	total, err := env.queries.CountCustomPages(context.Background())
	if err != nil {
		t.Fatalf("counting pages: %v", err)
	}
	if total != 1 {
		t.Errorf("page count = %d, want 1", total)
	}
}

func TestBlockAddPersistsBlock(t *testing.T) {
	env := newTestEnv(t)
	router := newPagesRouter(env)
	page := env.createPage(t, "boxes", "draft")

	req := postJSON(fmt.Sprintf("/admin/pages/%d/blocks", page.ID), `{"type":"hero"}`)
	w := env.serve(router, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", w.Code, w.Body.String())
	}
	resp := decodeEnvelope(t, w)
	if resp["success"] != true {
		t.Fatalf("success = %v, want true", resp["success"])
	}

	list := pageBlocks(t, env, page.ID, "en")
	if len(list) != 1 {
		t.Fatalf("block count = %d, want 1", len(list))
	}
	if list[0].Type != blocks.TypeHero {
		t.Errorf("block type = %q, want hero", list[0].Type)
	}
	if list[0].ID == "" {
		t.Error("block has no id")
	}
}

func TestBlockAddUnknownType(t *testing.T) {
	env := newTestEnv(t)
	router := newPagesRouter(env)
	page := env.createPage(t, "boxes", "draft")

	req := postJSON(fmt.Sprintf("/admin/pages/%d/blocks", page.ID), `{"type":"carousel"}`)
	w := env.serve(router, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if len(pageBlocks(t, env, page.ID, "en")) != 0 {
		t.Error("unknown block type was persisted")
	}
}

func TestBlockAddLanguagesIndependent(t *testing.T) {
	env := newTestEnv(t)
	router := newPagesRouter(env)
	page := env.createPage(t, "boxes", "draft")

	req := postJSON(fmt.Sprintf("/admin/pages/%d/blocks?lang=id", page.ID), `{"type":"text"}`)
	w := env.serve(router, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", w.Code, w.Body.String())
	}

	if got := len(pageBlocks(t, env, page.ID, "id")); got != 1 {
		t.Errorf("indonesian block count = %d, want 1", got)
	}
	if got := len(pageBlocks(t, env, page.ID, "en")); got != 0 {
		t.Errorf("english block count = %d, want 0", got)
	}
}

func addBlock(t *testing.T, env *testEnv, router http.Handler, pageID int64, blockType string) string {
	t.Helper()
	req := postJSON(fmt.Sprintf("/admin/pages/%d/blocks", pageID), `{"type":"`+blockType+`"}`)
	w := env.serve(router, req)
	if w.Code != http.StatusOK {
		t.Fatalf("adding %s block: status %d, body %q", blockType, w.Code, w.Body.String())
	}
	resp := decodeEnvelope(t, w)
	block, ok := resp["block"].(map[string]any)
	if !ok {
		t.Fatalf("response missing block: %v", resp)
	}
	return block["id"].(string)
}

func TestBlockReorder(t *testing.T) {
	env := newTestEnv(t)
	router := newPagesRouter(env)
	page := env.createPage(t, "boxes", "draft")

	first := addBlock(t, env, router, page.ID, "hero")
	second := addBlock(t, env, router, page.ID, "text")
	third := addBlock(t, env, router, page.ID, "cta")

	req := postJSON(fmt.Sprintf("/admin/pages/%d/blocks/reorder", page.ID), `{"from":2,"to":0}`)
	w := env.serve(router, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", w.Code, w.Body.String())
	}

	list := pageBlocks(t, env, page.ID, "en")
	got := []string{list[0].ID, list[1].ID, list[2].ID}
	want := []string{third, first, second}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("order[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestBlockUpdateData(t *testing.T) {
	env := newTestEnv(t)
	router := newPagesRouter(env)
	page := env.createPage(t, "boxes", "draft")
	id := addBlock(t, env, router, page.ID, "hero")

	body := `{"data":{"title":"Packaging that protects","subtitle":"Custom corrugated boxes"}}`
	req := postJSON(fmt.Sprintf("/admin/pages/%d/blocks/%s", page.ID, id), body)
	w := env.serve(router, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", w.Code, w.Body.String())
	}

	list := pageBlocks(t, env, page.ID, "en")
	hero, ok := list[0].Data.(*blocks.HeroData)
	if !ok {
		t.Fatalf("block data type = %T, want *HeroData", list[0].Data)
	}
	if hero.Title != "Packaging that protects" {
		t.Errorf("Title = %q, want %q", hero.Title, "Packaging that protects")
	}
}

func TestBlockUpdateUnknownBlock(t *testing.T) {
	env := newTestEnv(t)
	router := newPagesRouter(env)
	page := env.createPage(t, "boxes", "draft")

	req := postJSON(fmt.Sprintf("/admin/pages/%d/blocks/nope", page.ID), `{"data":{}}`)
	w := env.serve(router, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestBlockDelete(t *testing.T) {
	env := newTestEnv(t)
	router := newPagesRouter(env)
	page := env.createPage(t, "boxes", "draft")
	first := addBlock(t, env, router, page.ID, "hero")
	second := addBlock(t, env, router, page.ID, "text")

	req := postJSON(fmt.Sprintf("/admin/pages/%d/blocks/%s/delete", page.ID, first), `{}`)
	w := env.serve(router, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", w.Code, w.Body.String())
	}

	list := pageBlocks(t, env, page.ID, "en")
	if len(list) != 1 || list[0].ID != second {
		t.Errorf("remaining blocks = %v, want just %s", list, second)
	}
}

func TestPageDelete(t *testing.T) {
	env := newTestEnv(t)
	router := newPagesRouter(env)
	page := env.createPage(t, "boxes", "published")

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/admin/pages/%d/delete", page.ID), nil)
	w := env.serve(router, req)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want redirect", w.Code)
	}
	if _, err := env.queries.GetCustomPage(context.Background(), page.ID); err == nil {
		t.Error("page still exists after delete")
	}
}

func TestPageEditorRenders(t *testing.T) {
	env := newTestEnv(t)
	router := newPagesRouter(env)
	page := env.createPage(t, "boxes", "draft")

	w := env.serve(router, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/admin/pages/%d/editor", page.ID), nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "page_editor") {
		t.Errorf("body = %q, want page_editor template", w.Body.String())
	}
}
