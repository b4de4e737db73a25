// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package version

import "testing"

func TestInfoString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"empty", Info{}, "dev"},
		{"version only", Info{Version: "v1.2.0"}, "v1.2.0"},
		{"with commit", Info{Version: "v1.2.0", GitCommit: "abc1234"}, "v1.2.0 (abc1234)"},
		{"commit without tag", Info{GitCommit: "abc1234"}, "dev (abc1234)"},
	}
	for _, tt := range tests {
		if got := tt.info.String(); got != tt.want {
			t.Errorf("%s: String() = %q, want %q", tt.name, got, tt.want)
		}
	}
}
