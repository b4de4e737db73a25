// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

// Package version provides build-time version information.
package version

// Info contains build metadata injected via ldflags.
type Info struct {
	Version   string // semantic version from git tags, e.g. "v1.2.3"
	GitCommit string // short commit hash
	BuildTime string // RFC3339 build timestamp
}

// String formats the info for startup logs and the admin footer.
func (i Info) String() string {
	v := i.Version
	if v == "" {
		v = "dev"
	}
	if i.GitCommit != "" {
		v += " (" + i.GitCommit + ")"
	}
	return v
}
