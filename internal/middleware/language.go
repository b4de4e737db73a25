// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/kemasindo/kemas/internal/model"
)

// Language detects the public-site language from the URL. Paths under
// /id/ are Indonesian; the prefix is stripped so downstream handlers
// see language-neutral paths. Everything else is English.
//
//	/products/boxes     -> lang=en, path /products/boxes
//	/id/products/boxes  -> lang=id, path /products/boxes
//	/id                 -> lang=id, path /
func Language(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := model.LangEnglish
		path := r.URL.Path

		if path == "/id" || path == "/id/" {
			lang = model.LangIndonesian
			path = "/"
		} else if strings.HasPrefix(path, "/id/") {
			lang = model.LangIndonesian
			path = strings.TrimPrefix(path, "/id")
		}

		if path != r.URL.Path {
			r2 := r.Clone(r.Context())
			r2.URL.Path = path
			if r.URL.RawPath != "" {
				r2.URL.RawPath = strings.TrimPrefix(r.URL.RawPath, "/id")
			}
			r = r2
		}

		ctx := context.WithValue(r.Context(), ContextKeyLang, lang)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Lang returns the request language, defaulting to English.
func Lang(r *http.Request) string {
	lang, ok := r.Context().Value(ContextKeyLang).(string)
	if !ok || !model.ValidLang(lang) {
		return model.LangEnglish
	}
	return lang
}
