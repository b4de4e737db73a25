// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

// Package util provides general-purpose helpers: URL slug generation,
// nullable SQL type conversions, and filesystem path validation.
package util

import (
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

const maxSlugLen = 96

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)
	hyphenRuns   = regexp.MustCompile(`-{2,}`)
)

// Slugify converts a title to a URL-friendly slug. Non-ASCII text is
// transliterated first, so both English and Indonesian titles (and pasted
// product names in other scripts) produce readable slugs.
func Slugify(s string) string {
	out := unidecode.Unidecode(s)
	out = strings.ToLower(out)
	out = strings.ReplaceAll(out, " ", "-")
	out = nonSlugChars.ReplaceAllString(out, "")
	out = hyphenRuns.ReplaceAllString(out, "-")
	out = strings.Trim(out, "-")
	if len(out) > maxSlugLen {
		out = strings.Trim(out[:maxSlugLen], "-")
	}
	return out
}

// IsValidSlug reports whether s is already in canonical slug form:
// lowercase letters, digits, and single hyphens, not at the edges.
func IsValidSlug(s string) bool {
	if s == "" || len(s) > maxSlugLen {
		return false
	}
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-') {
			return false
		}
	}
	if s[0] == '-' || s[len(s)-1] == '-' || strings.Contains(s, "--") {
		return false
	}
	return true
}
