// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines domain constants and helpers shared by handlers,
// services, and the scheduler: page statuses and templates, user roles,
// site languages, settings keys, and media variants.
package model

// Page and post statuses.
const (
	StatusDraft     = "draft"
	StatusScheduled = "scheduled"
	StatusPublished = "published"
)

// ValidStatus reports whether s is a known page/post status.
func ValidStatus(s string) bool {
	return s == StatusDraft || s == StatusScheduled || s == StatusPublished
}

// Custom page templates. Default carries the site header and footer,
// landing drops the navigation for campaign pages, blank renders blocks
// with no chrome at all.
const (
	TemplateDefault = "default"
	TemplateLanding = "landing"
	TemplateBlank   = "blank"
)

// PageTemplates lists the selectable templates in admin form order.
var PageTemplates = []string{TemplateDefault, TemplateLanding, TemplateBlank}

// ValidTemplate reports whether t is a known page template.
func ValidTemplate(t string) bool {
	for _, known := range PageTemplates {
		if t == known {
			return true
		}
	}
	return false
}

// ReservedSlugs are first path segments claimed by fixed routes; custom
// pages cannot use them.
var ReservedSlugs = map[string]bool{
	"admin":   true,
	"api":     true,
	"blog":    true,
	"contact": true,
	"uploads": true,
	"static":  true,
	"about":   true,
	"products": true,
	"services": true,
	"id":      true,
}
