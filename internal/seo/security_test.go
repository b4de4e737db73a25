// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"strings"
	"testing"
	"time"
)

func TestSecurityTxt(t *testing.T) {
	got := GenerateSecurityTxt("https://kemasindo.co.id", "security@kemasindo.co.id")

	for _, want := range []string{
		"Contact: mailto:security@kemasindo.co.id\n",
		"Preferred-Languages: en, id\n",
		"Canonical: https://kemasindo.co.id/.well-known/security.txt\n",
		"Expires: ",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("security.txt missing %q:\n%s", want, got)
		}
	}
}

func TestSecurityTxtExplicitExpires(t *testing.T) {
	expires := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	b := NewSecurityTxtBuilder(SecurityTxtConfig{
		Contact: []string{"mailto:it@kemasindo.co.id", ""},
		Expires: expires,
	})
	got := b.Build()

	if !strings.Contains(got, "Expires: 2027-01-01T00:00:00Z\n") {
		t.Errorf("missing explicit expiry in %q", got)
	}
	if strings.Count(got, "Contact:") != 1 {
		t.Errorf("empty contact entries should be skipped:\n%s", got)
	}
}
