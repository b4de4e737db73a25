// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// User roles.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// ValidRole reports whether r is a known user role.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleEditor
}
