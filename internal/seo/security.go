// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"strings"
	"time"
)

// SecurityTxtConfig holds configuration for security.txt (RFC 9116).
type SecurityTxtConfig struct {
	// Contact is required: email, URL, or phone for reporting
	// vulnerabilities, e.g. "mailto:security@kemasindo.co.id".
	Contact []string

	// Expires marks when the file goes stale. Zero defaults to one
	// year from now.
	Expires time.Time

	// PreferredLanguages lists languages spoken by the team.
	PreferredLanguages string

	// Canonical is the canonical URL for this security.txt file.
	Canonical string
}

// SecurityTxtBuilder builds security.txt content.
type SecurityTxtBuilder struct {
	config SecurityTxtConfig
}

// NewSecurityTxtBuilder creates a security.txt builder.
func NewSecurityTxtBuilder(config SecurityTxtConfig) *SecurityTxtBuilder {
	return &SecurityTxtBuilder{config: config}
}

// Build generates the security.txt content.
func (b *SecurityTxtBuilder) Build() string {
	var sb strings.Builder

	for _, contact := range b.config.Contact {
		if contact != "" {
			sb.WriteString("Contact: ")
			sb.WriteString(contact)
			sb.WriteString("\n")
		}
	}

	expires := b.config.Expires
	if expires.IsZero() {
		expires = time.Now().AddDate(1, 0, 0)
	}
	sb.WriteString("Expires: ")
	sb.WriteString(expires.Format(time.RFC3339))
	sb.WriteString("\n")

	if b.config.PreferredLanguages != "" {
		sb.WriteString("Preferred-Languages: ")
		sb.WriteString(b.config.PreferredLanguages)
		sb.WriteString("\n")
	}

	if b.config.Canonical != "" {
		sb.WriteString("Canonical: ")
		sb.WriteString(b.config.Canonical)
		sb.WriteString("\n")
	}

	return sb.String()
}

// GenerateSecurityTxt builds a security.txt for the given site. The
// contact address comes from the site settings.
func GenerateSecurityTxt(siteURL, contactEmail string) string {
	return NewSecurityTxtBuilder(SecurityTxtConfig{
		Contact:            []string{"mailto:" + contactEmail},
		PreferredLanguages: "en, id",
		Canonical:          strings.TrimSuffix(siteURL, "/") + "/.well-known/security.txt",
	}).Build()
}
