// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"encoding/json"
	"html/template"
	"strings"
	"time"

	"github.com/kemasindo/kemas/internal/model"
)

// Meta holds all SEO meta tag data for a page.
type Meta struct {
	Title         string // page title for <title>
	Description   string // meta description
	Canonical     string // canonical URL
	OGTitle       string // Open Graph title
	OGDescription string // Open Graph description
	OGImage       string // Open Graph image URL (absolute)
	OGType        string // website or article
	OGSiteName    string
	OGURL         string
	OGLocale      string // en_US or id_ID
	Robots        string // index,follow or noindex,nofollow
	Alternates    []HreflangLink
}

// HreflangLink is one <link rel="alternate" hreflang=...> entry.
type HreflangLink struct {
	Lang string // hreflang value: en, id, x-default
	Href string
}

// PageData contains page information for building meta tags.
type PageData struct {
	Title           string
	Path            string // English-language path, e.g. "/products/boxes"
	MetaDescription string
	BodyText        string // fallback source for the description
	OGImageURL      string
	NoIndex         bool
	IsArticle       bool
	PublishedAt     *time.Time
	AuthorName      string
}

// SiteConfig contains site-wide settings for SEO. Name and Description
// are already resolved for the language being rendered.
type SiteConfig struct {
	SiteName        string
	SiteURL         string
	SiteDescription string
	DefaultOGImage  string
}

// ogLocales maps site languages to Open Graph locale codes.
var ogLocales = map[string]string{
	model.LangEnglish:    "en_US",
	model.LangIndonesian: "id_ID",
}

// BuildMeta creates a Meta for a page in the given language, with
// hreflang alternates pointing at the other language's URL. A nil page
// produces homepage metadata.
func BuildMeta(page *PageData, site *SiteConfig, lang string) *Meta {
	meta := &Meta{
		OGType:     "website",
		OGSiteName: site.SiteName,
		OGLocale:   ogLocales[lang],
		Robots:     "index,follow",
	}

	path := "/"
	if page != nil {
		path = page.Path
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}

		if page.IsArticle {
			meta.OGType = "article"
		}

		if page.Title != "" {
			meta.Title = page.Title + " | " + site.SiteName
			meta.OGTitle = page.Title
		} else {
			meta.Title = site.SiteName
			meta.OGTitle = site.SiteName
		}

		if page.MetaDescription != "" {
			meta.Description = page.MetaDescription
		} else if page.BodyText != "" {
			meta.Description = truncateText(stripHTML(page.BodyText), 160)
		} else {
			meta.Description = site.SiteDescription
		}
		meta.OGDescription = meta.Description

		if page.OGImageURL != "" {
			meta.OGImage = makeAbsoluteURL(page.OGImageURL, site.SiteURL)
		} else if site.DefaultOGImage != "" {
			meta.OGImage = makeAbsoluteURL(site.DefaultOGImage, site.SiteURL)
		}

		if page.NoIndex {
			meta.Robots = "noindex,nofollow"
		}
	} else {
		meta.Title = site.SiteName
		meta.OGTitle = site.SiteName
		meta.Description = site.SiteDescription
		meta.OGDescription = site.SiteDescription
		if site.DefaultOGImage != "" {
			meta.OGImage = makeAbsoluteURL(site.DefaultOGImage, site.SiteURL)
		}
	}

	base := strings.TrimSuffix(site.SiteURL, "/")
	meta.Canonical = base + langPath(lang, path)
	meta.OGURL = meta.Canonical

	// hreflang alternates: both languages plus x-default on English.
	for _, l := range model.Languages {
		meta.Alternates = append(meta.Alternates, HreflangLink{
			Lang: l,
			Href: base + langPath(l, path),
		})
	}
	meta.Alternates = append(meta.Alternates, HreflangLink{
		Lang: "x-default",
		Href: base + langPath(model.LangEnglish, path),
	})

	return meta
}

// langPath prefixes a path for the language. The English root stays "/".
func langPath(lang, path string) string {
	prefix := model.LangPrefix(lang)
	if path == "/" {
		if prefix == "" {
			return "/"
		}
		return prefix + "/"
	}
	return prefix + path
}

// OrgSchema is JSON-LD Organization structured data.
type OrgSchema struct {
	Context string        `json:"@context,omitempty"`
	Type    string        `json:"@type"`
	Name    string        `json:"name"`
	URL     string        `json:"url,omitempty"`
	Logo    *ImageSchema  `json:"logo,omitempty"`
	Contact *ContactPoint `json:"contactPoint,omitempty"`
}

// ContactPoint is JSON-LD ContactPoint structured data.
type ContactPoint struct {
	Type        string `json:"@type"`
	Telephone   string `json:"telephone,omitempty"`
	Email       string `json:"email,omitempty"`
	ContactType string `json:"contactType,omitempty"`
}

// ImageSchema is JSON-LD ImageObject structured data.
type ImageSchema struct {
	Type string `json:"@type"`
	URL  string `json:"url"`
}

// PersonSchema is JSON-LD Person structured data.
type PersonSchema struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// ArticleSchema is JSON-LD Article structured data for blog posts.
type ArticleSchema struct {
	Context          string        `json:"@context"`
	Type             string        `json:"@type"`
	Headline         string        `json:"headline"`
	Description      string        `json:"description,omitempty"`
	Image            string        `json:"image,omitempty"`
	DatePublished    string        `json:"datePublished,omitempty"`
	Author           *PersonSchema `json:"author,omitempty"`
	Publisher        *OrgSchema    `json:"publisher,omitempty"`
	MainEntityOfPage string        `json:"mainEntityOfPage,omitempty"`
}

// BuildOrganizationSchema creates JSON-LD for the company, rendered on
// the homepage.
func BuildOrganizationSchema(site *SiteConfig, phone, email string) template.JS {
	org := OrgSchema{
		Context: "https://schema.org",
		Type:    "Organization",
		Name:    site.SiteName,
		URL:     site.SiteURL,
	}
	if site.DefaultOGImage != "" {
		org.Logo = &ImageSchema{
			Type: "ImageObject",
			URL:  makeAbsoluteURL(site.DefaultOGImage, site.SiteURL),
		}
	}
	if phone != "" || email != "" {
		org.Contact = &ContactPoint{
			Type:        "ContactPoint",
			Telephone:   phone,
			Email:       email,
			ContactType: "sales",
		}
	}
	return marshalJSONLD(org)
}

// BuildArticleSchema creates JSON-LD Article structured data for a post.
func BuildArticleSchema(page *PageData, site *SiteConfig) template.JS {
	if page == nil {
		return ""
	}

	article := ArticleSchema{
		Context:          "https://schema.org",
		Type:             "Article",
		Headline:         page.Title,
		Description:      page.MetaDescription,
		MainEntityOfPage: strings.TrimSuffix(site.SiteURL, "/") + page.Path,
	}
	if page.OGImageURL != "" {
		article.Image = makeAbsoluteURL(page.OGImageURL, site.SiteURL)
	}
	if page.PublishedAt != nil {
		article.DatePublished = page.PublishedAt.Format(time.RFC3339)
	}
	if page.AuthorName != "" {
		article.Author = &PersonSchema{Type: "Person", Name: page.AuthorName}
	}
	article.Publisher = &OrgSchema{Type: "Organization", Name: site.SiteName}

	return marshalJSONLD(article)
}

// marshalJSONLD marshals structured data for a <script> tag.
func marshalJSONLD(v any) template.JS {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	return template.JS(data)
}

// stripHTML removes HTML tags from a string.
func stripHTML(html string) string {
	var result strings.Builder
	inTag := false
	for _, r := range html {
		if r == '<' {
			inTag = true
			continue
		}
		if r == '>' {
			inTag = false
			result.WriteRune(' ')
			continue
		}
		if !inTag {
			result.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(result.String()), " ")
}

// truncateText truncates text to maxLen characters at a word boundary.
func truncateText(text string, maxLen int) string {
	text = strings.TrimSpace(text)
	if len(text) <= maxLen {
		return text
	}

	truncated := text[:maxLen]
	lastSpace := strings.LastIndex(truncated, " ")
	if lastSpace > maxLen/2 {
		truncated = truncated[:lastSpace]
	}
	return strings.TrimSpace(truncated) + "..."
}

// makeAbsoluteURL prepends the site URL to relative paths.
func makeAbsoluteURL(url, siteURL string) string {
	if url == "" {
		return ""
	}
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	siteURL = strings.TrimSuffix(siteURL, "/")
	if !strings.HasPrefix(url, "/") {
		url = "/" + url
	}
	return siteURL + url
}
