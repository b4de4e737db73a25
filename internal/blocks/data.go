// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package blocks

import "encoding/json"

// Gallery layouts.
const (
	LayoutGrid     = "grid"
	LayoutCarousel = "carousel"
	LayoutMasonry  = "masonry"
)

// Contact form field names. Name and email are always required on submit
// regardless of which fields a block is configured to show.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldCompany = "company"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// ContactFormFields lists every field a contact_form block may show, in
// display order.
var ContactFormFields = []string{
	FieldName,
	FieldEmail,
	FieldPhone,
	FieldCompany,
	FieldSubject,
	FieldMessage,
}

// HeroData is the payload of a hero block: a full-bleed banner with up to
// two call-to-action buttons. Text color inverts when a background image
// is set.
type HeroData struct {
	Title               string `json:"title"`
	Subtitle            string `json:"subtitle"`
	BackgroundImage     string `json:"background_image"`
	PrimaryButtonText   string `json:"primary_button_text"`
	PrimaryButtonLink   string `json:"primary_button_link"`
	SecondaryButtonText string `json:"secondary_button_text"`
	SecondaryButtonLink string `json:"secondary_button_link"`
}

func (*HeroData) BlockType() Type { return TypeHero }

// TextData is the payload of a rich-text block. Content is free-form HTML
// and is sanitized before rendering.
type TextData struct {
	Content string `json:"content"`
}

func (*TextData) BlockType() Type { return TypeText }

// ImageGalleryData is the payload of an image gallery block.
type ImageGalleryData struct {
	Images []string `json:"images"`
	Layout string   `json:"layout"`
}

func (*ImageGalleryData) BlockType() Type { return TypeImageGallery }

// CTAData is the payload of a call-to-action block.
type CTAData struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ButtonText  string `json:"button_text"`
	ButtonLink  string `json:"button_link"`
}

func (*CTAData) BlockType() Type { return TypeCTA }

// FeatureItem is one entry in a features block.
type FeatureItem struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// FeaturesData is the payload of a features block.
type FeaturesData struct {
	Items []FeatureItem `json:"items"`
}

func (*FeaturesData) BlockType() Type { return TypeFeatures }

// TestimonialData is the payload of a testimonial block.
type TestimonialData struct {
	Quote       string `json:"quote"`
	AuthorName  string `json:"author_name"`
	AuthorTitle string `json:"author_title"`
	AuthorImage string `json:"author_image"`
}

func (*TestimonialData) BlockType() Type { return TypeTestimonial }

// VideoData is the payload of an embedded video block.
type VideoData struct {
	YouTubeURL string `json:"youtube_url"`
}

func (*VideoData) BlockType() Type { return TypeVideo }

// FAQItem is one question/answer pair in a FAQ block.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQData is the payload of a FAQ accordion block.
type FAQData struct {
	Items []FAQItem `json:"items"`
}

func (*FAQData) BlockType() Type { return TypeFAQ }

// PricingPlan is one column in a pricing table block.
type PricingPlan struct {
	Name       string   `json:"name"`
	Price      string   `json:"price"`
	Period     string   `json:"period"`
	Features   []string `json:"features"`
	IsPopular  bool     `json:"is_popular"`
	ButtonText string   `json:"button_text"`
	ButtonLink string   `json:"button_link"`
}

// PricingTableData is the payload of a pricing table block.
type PricingTableData struct {
	Plans []PricingPlan `json:"plans"`
}

func (*PricingTableData) BlockType() Type { return TypePricingTable }

// TeamMember is one card in a team members block.
type TeamMember struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Image    string `json:"image"`
	Bio      string `json:"bio"`
	LinkedIn string `json:"linkedin"`
}

// TeamMembersData is the payload of a team members block.
type TeamMembersData struct {
	Members []TeamMember `json:"members"`
}

func (*TeamMembersData) BlockType() Type { return TypeTeamMembers }

// Stat is one figure in a stats counter block.
type Stat struct {
	Prefix string `json:"prefix"`
	Value  string `json:"value"`
	Suffix string `json:"suffix"`
	Label  string `json:"label"`
}

// StatsCounterData is the payload of a stats counter block. Values are
// displayed statically, without animation.
type StatsCounterData struct {
	Stats []Stat `json:"stats"`
}

func (*StatsCounterData) BlockType() Type { return TypeStatsCounter }

// ContactFormData is the payload of a contact form block. Fields selects
// which inputs are shown; name and email are enforced on submit either way.
type ContactFormData struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	EmailTo     string   `json:"email_to"`
	Fields      []string `json:"fields"`
	ButtonText  string   `json:"button_text"`
}

func (*ContactFormData) BlockType() Type { return TypeContactForm }

// HTMLData is the payload of the legacy html block. Content is sanitized
// the same way as rich text.
type HTMLData struct {
	Content string `json:"content"`
}

func (*HTMLData) BlockType() Type { return TypeHTML }

// RawData preserves the payload of a block whose type is not known to this
// build. It renders nothing and round-trips byte-for-byte.
type RawData struct {
	Tag Type
	Raw json.RawMessage
}

func (r RawData) BlockType() Type { return r.Tag }
