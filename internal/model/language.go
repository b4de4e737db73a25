// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Site languages. English is the default and lives at the URL root;
// Indonesian pages are served under the /id/ prefix.
const (
	LangEnglish    = "en"
	LangIndonesian = "id"
)

// Languages lists the supported site languages, default first.
var Languages = []string{LangEnglish, LangIndonesian}

// ValidLang reports whether lang is a supported site language.
func ValidLang(lang string) bool {
	return lang == LangEnglish || lang == LangIndonesian
}

// LangPrefix returns the URL prefix for a language: "" for the default
// language, "/id" for Indonesian.
func LangPrefix(lang string) string {
	if lang == LangIndonesian {
		return "/" + LangIndonesian
	}
	return ""
}
