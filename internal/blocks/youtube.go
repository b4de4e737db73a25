// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package blocks

import "regexp"

// youtubePatterns matches the URL forms operators paste into video blocks:
// full watch URLs, short youtu.be links, embed URLs, and shorts.
var youtubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?(?:[^#]*&)?v=([A-Za-z0-9_-]{5,})`),
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{5,})`),
	regexp.MustCompile(`youtube\.com/embed/([A-Za-z0-9_-]{5,})`),
	regexp.MustCompile(`youtube\.com/shorts/([A-Za-z0-9_-]{5,})`),
}

// YouTubeVideoID extracts the video id from a YouTube URL. It reports false
// for anything it cannot parse; video blocks with an unparseable URL render
// nothing.
func YouTubeVideoID(rawURL string) (string, bool) {
	if rawURL == "" {
		return "", false
	}
	for _, re := range youtubePatterns {
		if m := re.FindStringSubmatch(rawURL); m != nil {
			return m[1], true
		}
	}
	return "", false
}
