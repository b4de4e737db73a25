// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package blocks

import "testing"

func TestYouTubeVideoID(t *testing.T) {
	tests := []struct {
		url    string
		wantID string
		wantOK bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://youtube.com/watch?t=30&v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://youtu.be/abc123", "abc123", true},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"not a url", "", false},
		{"", "", false},
		{"https://vimeo.com/123456", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			id, ok := YouTubeVideoID(tt.url)
			if ok != tt.wantOK {
				t.Fatalf("YouTubeVideoID(%q) ok = %v, want %v", tt.url, ok, tt.wantOK)
			}
			if id != tt.wantID {
				t.Errorf("YouTubeVideoID(%q) = %q, want %q", tt.url, id, tt.wantID)
			}
		})
	}
}
