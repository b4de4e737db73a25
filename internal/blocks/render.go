// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package blocks

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

//go:embed templates/*.html
var templateFS embed.FS

// htmlSanitizer strips script-executing constructs from free-form HTML
// before it reaches the page. Applies to text and legacy html blocks, the
// only block types carrying operator-authored markup.
var htmlSanitizer = bluemonday.UGCPolicy()

// PageContext carries the request-scoped inputs rendering needs beyond the
// blocks themselves: the content language and the page path (used by the
// contact form to record where a submission came from).
type PageContext struct {
	Lang string
	Path string
}

// Renderer maps an ordered block array to HTML sections. It is stateless:
// output is a pure function of the block array and the page context. Blocks
// with missing or malformed data render nothing rather than erroring.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded block templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("blocks").Funcs(template.FuncMap{
		"icon": func(name string) template.HTML {
			return LookupIcon(name).SVG()
		},
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing block templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render renders blocks strictly in array order. Empty input renders
// nothing, and a block whose type or data cannot be rendered is skipped.
func (r *Renderer) Render(blocks []Block, pc PageContext) template.HTML {
	if len(blocks) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, b := range blocks {
		out, err := r.renderBlock(b, pc)
		if err != nil {
			slog.Debug("skipping unrenderable block", "block_id", b.ID, "type", b.Type, "error", err)
			continue
		}
		sb.WriteString(string(out))
	}
	return template.HTML(sb.String())
}

// renderBlock dispatches on the block's data variant. The default arm is
// the uniform fallback policy: unknown and legacy-unknown types render
// nothing, never error.
func (r *Renderer) renderBlock(b Block, pc PageContext) (template.HTML, error) {
	switch data := b.Data.(type) {
	case *HeroData:
		return r.renderHero(data)
	case *TextData:
		return r.renderRichText(data.Content)
	case *ImageGalleryData:
		return r.renderGallery(data)
	case *CTAData:
		return r.renderCTA(data)
	case *FeaturesData:
		return r.renderFeatures(data)
	case *TestimonialData:
		return r.renderTestimonial(data)
	case *VideoData:
		return r.renderVideo(data)
	case *FAQData:
		return r.renderFAQ(data)
	case *PricingTableData:
		return r.renderPricing(data, pc.Lang)
	case *TeamMembersData:
		return r.renderTeam(data)
	case *StatsCounterData:
		return r.renderStats(data)
	case *ContactFormData:
		return r.renderContactForm(b.ID, data, pc)
	case *HTMLData:
		return r.renderRichText(data.Content)
	default:
		return "", nil
	}
}

func (r *Renderer) execute(name string, view any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, view); err != nil {
		return "", fmt.Errorf("executing %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

type heroButton struct {
	Text string
	Link string
}

type heroView struct {
	Title           string
	Subtitle        string
	BackgroundImage string
	Inverted        bool
	Primary         *heroButton
	Secondary       *heroButton
}

func (r *Renderer) renderHero(d *HeroData) (template.HTML, error) {
	view := heroView{
		Title:           d.Title,
		Subtitle:        d.Subtitle,
		BackgroundImage: d.BackgroundImage,
		Inverted:        d.BackgroundImage != "",
	}
	if d.PrimaryButtonText != "" {
		view.Primary = &heroButton{Text: d.PrimaryButtonText, Link: orHash(d.PrimaryButtonLink)}
	}
	if d.SecondaryButtonText != "" {
		view.Secondary = &heroButton{Text: d.SecondaryButtonText, Link: orHash(d.SecondaryButtonLink)}
	}
	if view.Title == "" && view.Subtitle == "" && view.BackgroundImage == "" &&
		view.Primary == nil && view.Secondary == nil {
		return "", nil
	}
	return r.execute("block_hero", view)
}

type textView struct {
	Content template.HTML
}

func (r *Renderer) renderRichText(content string) (template.HTML, error) {
	sanitized := htmlSanitizer.Sanitize(content)
	if strings.TrimSpace(sanitized) == "" {
		return "", nil
	}
	return r.execute("block_text", textView{Content: template.HTML(sanitized)})
}

type galleryView struct {
	Images []string
	Layout string
}

func (r *Renderer) renderGallery(d *ImageGalleryData) (template.HTML, error) {
	if len(d.Images) == 0 {
		return "", nil
	}
	layout := d.Layout
	switch layout {
	case LayoutGrid, LayoutCarousel, LayoutMasonry:
	default:
		layout = LayoutGrid
	}
	return r.execute("block_image_gallery", galleryView{Images: d.Images, Layout: layout})
}

func (r *Renderer) renderCTA(d *CTAData) (template.HTML, error) {
	if d.Title == "" && d.Description == "" && d.ButtonText == "" {
		return "", nil
	}
	return r.execute("block_cta", d)
}

type featureItemView struct {
	IconSVG     template.HTML
	Title       string
	Description string
}

type featuresView struct {
	Items []featureItemView
}

func (r *Renderer) renderFeatures(d *FeaturesData) (template.HTML, error) {
	if len(d.Items) == 0 {
		return "", nil
	}
	view := featuresView{Items: make([]featureItemView, 0, len(d.Items))}
	for _, item := range d.Items {
		view.Items = append(view.Items, featureItemView{
			IconSVG:     LookupIcon(item.Icon).SVG(),
			Title:       item.Title,
			Description: item.Description,
		})
	}
	return r.execute("block_features", view)
}

func (r *Renderer) renderTestimonial(d *TestimonialData) (template.HTML, error) {
	if d.Quote == "" {
		return "", nil
	}
	return r.execute("block_testimonial", d)
}

type videoView struct {
	EmbedURL string
}

func (r *Renderer) renderVideo(d *VideoData) (template.HTML, error) {
	id, ok := YouTubeVideoID(d.YouTubeURL)
	if !ok {
		return "", nil
	}
	return r.execute("block_video", videoView{EmbedURL: "https://www.youtube.com/embed/" + id})
}

func (r *Renderer) renderFAQ(d *FAQData) (template.HTML, error) {
	if len(d.Items) == 0 {
		return "", nil
	}
	return r.execute("block_faq", d)
}

type pricingView struct {
	Plans        []PricingPlan
	ColumnsClass string
	PopularLabel string
}

func (r *Renderer) renderPricing(d *PricingTableData, lang string) (template.HTML, error) {
	if len(d.Plans) == 0 {
		return "", nil
	}
	cols := "pricing-cols-3"
	switch len(d.Plans) {
	case 1:
		cols = "pricing-cols-1"
	case 2:
		cols = "pricing-cols-2"
	}
	return r.execute("block_pricing_table", pricingView{
		Plans:        d.Plans,
		ColumnsClass: cols,
		PopularLabel: uiLabel(lang, "popular"),
	})
}

func (r *Renderer) renderTeam(d *TeamMembersData) (template.HTML, error) {
	if len(d.Members) == 0 {
		return "", nil
	}
	return r.execute("block_team_members", d)
}

func (r *Renderer) renderStats(d *StatsCounterData) (template.HTML, error) {
	if len(d.Stats) == 0 {
		return "", nil
	}
	return r.execute("block_stats_counter", d)
}

type contactFieldView struct {
	Name      string
	Label     string
	InputType string
	Required  bool
}

type contactFormView struct {
	Title       string
	Description string
	BlockID     string
	PagePath    string
	Action      string
	Fields      []contactFieldView
	ButtonText  string
}

func (r *Renderer) renderContactForm(blockID string, d *ContactFormData, pc PageContext) (template.HTML, error) {
	view := contactFormView{
		Title:       d.Title,
		Description: d.Description,
		BlockID:     blockID,
		PagePath:    pc.Path,
		Action:      contactAction(pc.Lang),
		ButtonText:  d.ButtonText,
	}
	if view.ButtonText == "" {
		view.ButtonText = uiLabel(pc.Lang, "send")
	}
	for _, name := range contactFieldNames(d.Fields) {
		view.Fields = append(view.Fields, contactFieldView{
			Name:      name,
			Label:     uiLabel(pc.Lang, name),
			InputType: contactInputType(name),
			Required:  name == FieldName || name == FieldEmail,
		})
	}
	return r.execute("block_contact_form", view)
}

// contactFieldNames returns the configured field subset in canonical order,
// always including name and email.
func contactFieldNames(configured []string) []string {
	want := map[string]bool{FieldName: true, FieldEmail: true}
	for _, f := range configured {
		want[f] = true
	}
	var out []string
	for _, f := range ContactFormFields {
		if want[f] {
			out = append(out, f)
		}
	}
	return out
}

func contactInputType(field string) string {
	switch field {
	case FieldEmail:
		return "email"
	case FieldPhone:
		return "tel"
	case FieldMessage:
		return "textarea"
	default:
		return "text"
	}
}

func contactAction(lang string) string {
	if lang != "" && lang != "en" {
		return "/" + lang + "/contact"
	}
	return "/contact"
}

func orHash(link string) string {
	if link == "" {
		return "#"
	}
	return link
}

// uiStrings holds the handful of fixed labels blocks render themselves, in
// both site languages. Everything else in a rendered block comes from
// operator-authored data.
var uiStrings = map[string]LocalizedText{
	"popular":    {EN: "Popular", ID: "Populer"},
	"send":       {EN: "Send Message", ID: "Kirim Pesan"},
	FieldName:    {EN: "Name", ID: "Nama"},
	FieldEmail:   {EN: "Email", ID: "Email"},
	FieldPhone:   {EN: "Phone", ID: "Telepon"},
	FieldCompany: {EN: "Company", ID: "Perusahaan"},
	FieldSubject: {EN: "Subject", ID: "Subjek"},
	FieldMessage: {EN: "Message", ID: "Pesan"},
}

func uiLabel(lang, key string) string {
	return uiStrings[key].In(lang)
}
