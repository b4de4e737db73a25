// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package blocks

// LocalizedText holds an English and an Indonesian rendering of a short UI
// string.
type LocalizedText struct {
	EN string
	ID string
}

// In returns the text for the given language code, falling back to English.
func (t LocalizedText) In(lang string) string {
	if lang == "id" && t.ID != "" {
		return t.ID
	}
	return t.EN
}

// Definition describes one block type for the editor: display metadata and
// the default payload a freshly added block starts with.
type Definition struct {
	Type        Type
	Label       LocalizedText
	Description LocalizedText
	Icon        Icon
	NewData     func() Data
}

// registry lists every block type the editor offers, in add-menu order.
// The legacy html type is deliberately absent: it is renderer-only.
var registry = []Definition{
	{
		Type:        TypeHero,
		Label:       LocalizedText{EN: "Hero", ID: "Hero"},
		Description: LocalizedText{EN: "Full-width banner with title and buttons", ID: "Banner lebar penuh dengan judul dan tombol"},
		Icon:        IconLayout,
		NewData:     func() Data { return &HeroData{} },
	},
	{
		Type:        TypeText,
		Label:       LocalizedText{EN: "Text", ID: "Teks"},
		Description: LocalizedText{EN: "Rich text content", ID: "Konten teks berformat"},
		Icon:        IconAlignLeft,
		NewData:     func() Data { return &TextData{} },
	},
	{
		Type:        TypeImageGallery,
		Label:       LocalizedText{EN: "Image Gallery", ID: "Galeri Gambar"},
		Description: LocalizedText{EN: "Grid, carousel or masonry of images", ID: "Gambar dalam susunan grid, carousel, atau masonry"},
		Icon:        IconImage,
		NewData:     func() Data { return &ImageGalleryData{Images: []string{}, Layout: LayoutGrid} },
	},
	{
		Type:        TypeCTA,
		Label:       LocalizedText{EN: "Call to Action", ID: "Ajakan Bertindak"},
		Description: LocalizedText{EN: "Highlighted message with a button", ID: "Pesan menonjol dengan tombol"},
		Icon:        IconMegaphone,
		NewData:     func() Data { return &CTAData{} },
	},
	{
		Type:        TypeFeatures,
		Label:       LocalizedText{EN: "Features", ID: "Fitur"},
		Description: LocalizedText{EN: "Icon, title and description items", ID: "Daftar fitur dengan ikon, judul, dan deskripsi"},
		Icon:        IconGrid,
		NewData:     func() Data { return &FeaturesData{Items: []FeatureItem{}} },
	},
	{
		Type:        TypeTestimonial,
		Label:       LocalizedText{EN: "Testimonial", ID: "Testimoni"},
		Description: LocalizedText{EN: "Customer quote with author", ID: "Kutipan pelanggan dengan nama penulis"},
		Icon:        IconQuote,
		NewData:     func() Data { return &TestimonialData{} },
	},
	{
		Type:        TypeVideo,
		Label:       LocalizedText{EN: "Video", ID: "Video"},
		Description: LocalizedText{EN: "Embedded YouTube video", ID: "Video YouTube tersemat"},
		Icon:        IconVideo,
		NewData:     func() Data { return &VideoData{} },
	},
	{
		Type:        TypeFAQ,
		Label:       LocalizedText{EN: "FAQ", ID: "Tanya Jawab"},
		Description: LocalizedText{EN: "Accordion of questions and answers", ID: "Akordeon pertanyaan dan jawaban"},
		Icon:        IconHelp,
		NewData:     func() Data { return &FAQData{Items: []FAQItem{}} },
	},
	{
		Type:        TypePricingTable,
		Label:       LocalizedText{EN: "Pricing Table", ID: "Tabel Harga"},
		Description: LocalizedText{EN: "Plan columns with feature lists", ID: "Kolom paket dengan daftar fitur"},
		Icon:        IconTag,
		NewData:     func() Data { return &PricingTableData{Plans: []PricingPlan{}} },
	},
	{
		Type:        TypeTeamMembers,
		Label:       LocalizedText{EN: "Team Members", ID: "Anggota Tim"},
		Description: LocalizedText{EN: "Grid of people cards", ID: "Kartu profil anggota tim"},
		Icon:        IconUsers,
		NewData:     func() Data { return &TeamMembersData{Members: []TeamMember{}} },
	},
	{
		Type:        TypeStatsCounter,
		Label:       LocalizedText{EN: "Stats", ID: "Statistik"},
		Description: LocalizedText{EN: "Row of key figures", ID: "Deretan angka penting"},
		Icon:        IconBarChart,
		NewData:     func() Data { return &StatsCounterData{Stats: []Stat{}} },
	},
	{
		Type:        TypeContactForm,
		Label:       LocalizedText{EN: "Contact Form", ID: "Formulir Kontak"},
		Description: LocalizedText{EN: "Inquiry form writing to contact submissions", ID: "Formulir pertanyaan yang tersimpan sebagai submisi kontak"},
		Icon:        IconMail,
		NewData: func() Data {
			return &ContactFormData{
				Fields:     []string{FieldName, FieldEmail, FieldMessage},
				ButtonText: "",
			}
		},
	},
}

// Definitions returns the registered block definitions in add-menu order.
func Definitions() []Definition {
	out := make([]Definition, len(registry))
	copy(out, registry)
	return out
}

// DefinitionFor returns the definition for a block type.
func DefinitionFor(t Type) (Definition, bool) {
	for _, def := range registry {
		if def.Type == t {
			return def, true
		}
	}
	return Definition{}, false
}

// IsRegistered reports whether the editor offers the given block type.
func IsRegistered(t Type) bool {
	_, ok := DefinitionFor(t)
	return ok
}

// DefaultData returns the default payload for a registered block type, or
// nil for types the editor does not offer.
func DefaultData(t Type) Data {
	def, ok := DefinitionFor(t)
	if !ok {
		return nil
	}
	return def.NewData()
}
