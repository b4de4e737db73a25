// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "testing"

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusDraft, StatusScheduled, StatusPublished} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false", s)
		}
	}
	if ValidStatus("archived") {
		t.Error("ValidStatus(\"archived\") = true")
	}
}

func TestValidTemplate(t *testing.T) {
	for _, tmpl := range PageTemplates {
		if !ValidTemplate(tmpl) {
			t.Errorf("ValidTemplate(%q) = false", tmpl)
		}
	}
	if ValidTemplate("custom") {
		t.Error("ValidTemplate(\"custom\") = true")
	}
}

func TestLangPrefix(t *testing.T) {
	if got := LangPrefix(LangEnglish); got != "" {
		t.Errorf("LangPrefix(en) = %q, want empty", got)
	}
	if got := LangPrefix(LangIndonesian); got != "/id" {
		t.Errorf("LangPrefix(id) = %q, want /id", got)
	}
}

func TestReservedSlugs(t *testing.T) {
	for _, slug := range []string{"admin", "blog", "contact", "id", "uploads"} {
		if !ReservedSlugs[slug] {
			t.Errorf("slug %q should be reserved", slug)
		}
	}
	if ReservedSlugs["corrugated-boxes"] {
		t.Error("ordinary slugs should not be reserved")
	}
}

func TestBoolSetting(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"0", false},
		{"", false},
		{"yes", false},
	}
	for _, tt := range tests {
		if got := BoolSetting(tt.value); got != tt.want {
			t.Errorf("BoolSetting(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
