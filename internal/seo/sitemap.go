// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

// Package seo builds sitemaps, robots.txt, meta tags, and structured
// data for the public site. Every page exists in English and
// Indonesian, so URL builders emit both variants.
package seo

import (
	"encoding/xml"
	"strings"
	"time"

	"github.com/kemasindo/kemas/internal/model"
)

// XMLNamespace is the sitemap XML namespace.
const XMLNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// ChangeFreq represents the change frequency of a URL.
type ChangeFreq string

// Valid change frequency values.
const (
	ChangeFreqAlways  ChangeFreq = "always"
	ChangeFreqHourly  ChangeFreq = "hourly"
	ChangeFreqDaily   ChangeFreq = "daily"
	ChangeFreqWeekly  ChangeFreq = "weekly"
	ChangeFreqMonthly ChangeFreq = "monthly"
	ChangeFreqYearly  ChangeFreq = "yearly"
	ChangeFreqNever   ChangeFreq = "never"
)

// SitemapURL is a single URL entry in the sitemap.
type SitemapURL struct {
	Loc        string     `xml:"loc"`
	LastMod    string     `xml:"lastmod,omitempty"`
	ChangeFreq ChangeFreq `xml:"changefreq,omitempty"`
	Priority   string     `xml:"priority,omitempty"`
}

// Sitemap is the complete urlset document.
type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapPage carries the data needed to add a content page.
// Path is the English-language path, e.g. "/about" or "/products/boxes".
type SitemapPage struct {
	Path      string
	UpdatedAt time.Time
}

// SitemapPost carries the data needed to add a blog post.
type SitemapPost struct {
	Slug        string
	PublishedAt time.Time
}

// SitemapBuilder accumulates URLs and renders the XML.
type SitemapBuilder struct {
	siteURL string
	urls    []SitemapURL
}

// NewSitemapBuilder creates a builder rooted at siteURL.
func NewSitemapBuilder(siteURL string) *SitemapBuilder {
	return &SitemapBuilder{
		siteURL: strings.TrimSuffix(siteURL, "/"),
		urls:    make([]SitemapURL, 0),
	}
}

// addBilingual appends the English URL and its Indonesian twin.
func (b *SitemapBuilder) addBilingual(path string, lastMod time.Time, freq ChangeFreq, priority string) {
	for _, lang := range model.Languages {
		loc := b.siteURL + model.LangPrefix(lang) + path
		if path == "/" {
			// Root stays bare for English, "/id/" keeps its slash.
			loc = b.siteURL + model.LangPrefix(lang) + "/"
			if lang == model.LangEnglish {
				loc = b.siteURL + "/"
			}
		}
		url := SitemapURL{
			Loc:        loc,
			ChangeFreq: freq,
			Priority:   priority,
		}
		if !lastMod.IsZero() {
			url.LastMod = lastMod.Format(time.RFC3339)
		}
		b.urls = append(b.urls, url)
	}
}

// AddHomepage adds both language homepages.
func (b *SitemapBuilder) AddHomepage() {
	b.addBilingual("/", time.Time{}, ChangeFreqDaily, "1.0")
}

// AddPage adds a content page in both languages.
func (b *SitemapBuilder) AddPage(page SitemapPage) {
	path := page.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	b.addBilingual(path, page.UpdatedAt, ChangeFreqWeekly, "0.8")
}

// AddPages adds multiple content pages.
func (b *SitemapBuilder) AddPages(pages []SitemapPage) {
	for _, p := range pages {
		b.AddPage(p)
	}
}

// AddPost adds a blog post in both languages.
func (b *SitemapBuilder) AddPost(post SitemapPost) {
	b.addBilingual("/blog/"+post.Slug, post.PublishedAt, ChangeFreqMonthly, "0.6")
}

// AddPosts adds multiple blog posts.
func (b *SitemapBuilder) AddPosts(posts []SitemapPost) {
	for _, p := range posts {
		b.AddPost(p)
	}
}

// AddBlogIndex adds the blog listing pages.
func (b *SitemapBuilder) AddBlogIndex() {
	b.addBilingual("/blog", time.Time{}, ChangeFreqDaily, "0.7")
}

// Len reports how many URL entries have been added.
func (b *SitemapBuilder) Len() int {
	return len(b.urls)
}

// Build renders the sitemap XML with the standard header.
func (b *SitemapBuilder) Build() ([]byte, error) {
	sitemap := Sitemap{
		XMLNS: XMLNamespace,
		URLs:  b.urls,
	}

	output := []byte(xml.Header)
	xmlBytes, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(output, xmlBytes...), nil
}
