// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"indonesian title", "Kemasan Ramah Lingkungan", "kemasan-ramah-lingkungan"},
		{"accents transliterated", "Café au Lait", "cafe-au-lait"},
		{"punctuation stripped", "Box (large), 20x30cm!", "box-large-20x30cm"},
		{"multiple spaces", "a   b", "a-b"},
		{"leading trailing", "  -Hello- ", "hello"},
		{"already slug", "custom-boxes", "custom-boxes"},
		{"empty", "", ""},
		{"symbols only", "!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlugifyTruncates(t *testing.T) {
	long := strings.Repeat("word ", 50)
	got := Slugify(long)
	if len(got) > maxSlugLen {
		t.Errorf("Slugify() length = %d, want <= %d", len(got), maxSlugLen)
	}
	if strings.HasSuffix(got, "-") {
		t.Errorf("Slugify() = %q, trailing hyphen after truncation", got)
	}
}

func TestIsValidSlug(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"hello-world", true},
		{"abc123", true},
		{"a", true},
		{"", false},
		{"Hello", false},
		{"-leading", false},
		{"trailing-", false},
		{"double--hyphen", false},
		{"with space", false},
		{"under_score", false},
	}
	for _, tt := range tests {
		if got := IsValidSlug(tt.input); got != tt.want {
			t.Errorf("IsValidSlug(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
