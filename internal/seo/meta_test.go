// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"strings"
	"testing"
	"time"

	"github.com/kemasindo/kemas/internal/model"
)

func testSite() *SiteConfig {
	return &SiteConfig{
		SiteName:        "Kemasindo Prima",
		SiteURL:         "https://kemasindo.co.id",
		SiteDescription: "Custom packaging manufacturer",
		DefaultOGImage:  "/static/img/og-default.jpg",
	}
}

func TestBuildMetaHomepage(t *testing.T) {
	meta := BuildMeta(nil, testSite(), model.LangEnglish)

	if meta.Title != "Kemasindo Prima" {
		t.Errorf("Title = %q, want site name", meta.Title)
	}
	if meta.Canonical != "https://kemasindo.co.id/" {
		t.Errorf("Canonical = %q", meta.Canonical)
	}
	if meta.OGImage != "https://kemasindo.co.id/static/img/og-default.jpg" {
		t.Errorf("OGImage = %q", meta.OGImage)
	}
	if meta.OGLocale != "en_US" {
		t.Errorf("OGLocale = %q, want en_US", meta.OGLocale)
	}
	if meta.Robots != "index,follow" {
		t.Errorf("Robots = %q", meta.Robots)
	}
}

func TestBuildMetaHomepageIndonesian(t *testing.T) {
	meta := BuildMeta(nil, testSite(), model.LangIndonesian)

	if meta.Canonical != "https://kemasindo.co.id/id/" {
		t.Errorf("Canonical = %q, want /id/ homepage", meta.Canonical)
	}
	if meta.OGLocale != "id_ID" {
		t.Errorf("OGLocale = %q, want id_ID", meta.OGLocale)
	}
}

func TestBuildMetaPage(t *testing.T) {
	page := &PageData{
		Title:           "Corrugated Boxes",
		Path:            "/products/corrugated-boxes",
		MetaDescription: "Strong corrugated boxes made to order.",
	}
	meta := BuildMeta(page, testSite(), model.LangEnglish)

	if meta.Title != "Corrugated Boxes | Kemasindo Prima" {
		t.Errorf("Title = %q", meta.Title)
	}
	if meta.Description != "Strong corrugated boxes made to order." {
		t.Errorf("Description = %q", meta.Description)
	}
	if meta.Canonical != "https://kemasindo.co.id/products/corrugated-boxes" {
		t.Errorf("Canonical = %q", meta.Canonical)
	}
}

func TestBuildMetaHreflangAlternates(t *testing.T) {
	page := &PageData{Title: "About", Path: "/about"}
	meta := BuildMeta(page, testSite(), model.LangIndonesian)

	if meta.Canonical != "https://kemasindo.co.id/id/about" {
		t.Errorf("Canonical = %q", meta.Canonical)
	}

	want := map[string]string{
		"en":        "https://kemasindo.co.id/about",
		"id":        "https://kemasindo.co.id/id/about",
		"x-default": "https://kemasindo.co.id/about",
	}
	if len(meta.Alternates) != len(want) {
		t.Fatalf("Alternates = %d entries, want %d", len(meta.Alternates), len(want))
	}
	for _, alt := range meta.Alternates {
		if want[alt.Lang] != alt.Href {
			t.Errorf("alternate %s = %q, want %q", alt.Lang, alt.Href, want[alt.Lang])
		}
	}
}

func TestBuildMetaDescriptionFallback(t *testing.T) {
	page := &PageData{
		Title:    "Services",
		Path:     "/services",
		BodyText: "<p>We offer <b>design</b> and printing services for packaging.</p>",
	}
	meta := BuildMeta(page, testSite(), model.LangEnglish)

	if strings.Contains(meta.Description, "<") {
		t.Errorf("Description contains HTML: %q", meta.Description)
	}
	if !strings.Contains(meta.Description, "design and printing") {
		t.Errorf("Description = %q", meta.Description)
	}
}

func TestBuildMetaNoIndex(t *testing.T) {
	page := &PageData{Title: "Draft", Path: "/draft", NoIndex: true}
	meta := BuildMeta(page, testSite(), model.LangEnglish)

	if meta.Robots != "noindex,nofollow" {
		t.Errorf("Robots = %q, want noindex,nofollow", meta.Robots)
	}
}

func TestBuildOrganizationSchema(t *testing.T) {
	got := string(BuildOrganizationSchema(testSite(), "+62 21 555 0100", "sales@kemasindo.co.id"))

	for _, want := range []string{
		`"@type": "Organization"`,
		`"name": "Kemasindo Prima"`,
		`"telephone": "+62 21 555 0100"`,
		`"email": "sales@kemasindo.co.id"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("schema missing %s:\n%s", want, got)
		}
	}
}

func TestBuildArticleSchema(t *testing.T) {
	published := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	page := &PageData{
		Title:       "Sustainable Packaging Trends",
		Path:        "/blog/sustainable-packaging",
		IsArticle:   true,
		PublishedAt: &published,
		AuthorName:  "Dewi Lestari",
	}
	got := string(BuildArticleSchema(page, testSite()))

	for _, want := range []string{
		`"@type": "Article"`,
		`"headline": "Sustainable Packaging Trends"`,
		`"datePublished": "2026-02-10T08:00:00Z"`,
		`"name": "Dewi Lestari"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("schema missing %s:\n%s", want, got)
		}
	}

	if BuildArticleSchema(nil, testSite()) != "" {
		t.Error("nil page should produce empty schema")
	}
}

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		maxLen int
		want   string
	}{
		{"short", "hello world", 50, "hello world"},
		{"exact", "hello", 5, "hello"},
		{"word boundary", "the quick brown fox jumps", 15, "the quick..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateText(tt.text, tt.maxLen); got != tt.want {
				t.Errorf("truncateText(%q, %d) = %q, want %q", tt.text, tt.maxLen, got, tt.want)
			}
		})
	}
}
