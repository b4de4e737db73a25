// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kemasindo/kemas/internal/auth"
	"github.com/kemasindo/kemas/internal/blocks"
)

// Default admin credentials, printed at first seed so operators can log
// in and change them.
const (
	DefaultAdminEmail    = "admin@kemasindo.co.id"
	DefaultAdminPassword = "changeme"
	DefaultAdminName     = "Administrator"
)

// StaticPageKeys lists the fixed site pages created at seed time.
var StaticPageKeys = []string{"home", "about", "products", "services", "contact"}

// Seed creates the initial admin user and static page rows. It is
// idempotent: an existing admin user skips the whole seed.
func Seed(ctx context.Context, db *sql.DB) error {
	queries := New(db)

	_, err := queries.GetUserByEmail(ctx, DefaultAdminEmail)
	if err == nil {
		slog.Info("admin user already exists, skipping seed")
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("checking for admin user: %w", err)
	}

	passwordHash, err := auth.HashPassword(DefaultAdminPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now()
	user, err := queries.CreateUser(ctx, CreateUserParams{
		Email:        DefaultAdminEmail,
		PasswordHash: passwordHash,
		Role:         "admin",
		Name:         DefaultAdminName,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}

	slog.Info("created default admin user",
		"id", user.ID,
		"email", user.Email,
		"password", DefaultAdminPassword,
	)

	for _, key := range StaticPageKeys {
		contentEn, contentID := seedContent(key)
		if _, err := queries.UpsertStaticPage(ctx, UpsertStaticPageParams{
			PageKey:   key,
			TitleEn:   seedTitles[key].EN,
			TitleID:   seedTitles[key].ID,
			ContentEn: contentEn,
			ContentID: contentID,
			UpdatedAt: now,
		}); err != nil {
			return fmt.Errorf("seeding static page %q: %w", key, err)
		}
	}

	slog.Info("seeded static pages", "count", len(StaticPageKeys))
	return nil
}

var seedTitles = map[string]blocks.LocalizedText{
	"home":     {EN: "Home", ID: "Beranda"},
	"about":    {EN: "About Us", ID: "Tentang Kami"},
	"products": {EN: "Products", ID: "Produk"},
	"services": {EN: "Services", ID: "Layanan"},
	"contact":  {EN: "Contact", ID: "Kontak"},
}

// seedContent builds a starter block array per language so new sites show
// something editable instead of blank pages.
func seedContent(key string) (en string, id string) {
	enBlocks, idBlocks := seedBlocks(key)
	return mustMarshalBlocks(enBlocks), mustMarshalBlocks(idBlocks)
}

func seedBlocks(key string) (en []blocks.Block, id []blocks.Block) {
	switch key {
	case "home":
		en = []blocks.Block{{
			ID:   blocks.NewID(),
			Type: blocks.TypeHero,
			Data: &blocks.HeroData{
				Title:             "Packaging That Protects Your Product",
				Subtitle:          "Custom boxes, flexible packaging, and labels for businesses of every size.",
				PrimaryButtonText: "View Products",
				PrimaryButtonLink: "/products",
			},
		}}
		id = []blocks.Block{{
			ID:   blocks.NewID(),
			Type: blocks.TypeHero,
			Data: &blocks.HeroData{
				Title:             "Kemasan yang Melindungi Produk Anda",
				Subtitle:          "Kotak custom, kemasan fleksibel, dan label untuk bisnis segala ukuran.",
				PrimaryButtonText: "Lihat Produk",
				PrimaryButtonLink: "/id/products",
			},
		}}
	case "contact":
		en = []blocks.Block{{
			ID:   blocks.NewID(),
			Type: blocks.TypeContactForm,
			Data: &blocks.ContactFormData{
				Title:  "Get in Touch",
				Fields: []string{blocks.FieldName, blocks.FieldEmail, blocks.FieldPhone, blocks.FieldMessage},
			},
		}}
		id = []blocks.Block{{
			ID:   blocks.NewID(),
			Type: blocks.TypeContactForm,
			Data: &blocks.ContactFormData{
				Title:  "Hubungi Kami",
				Fields: []string{blocks.FieldName, blocks.FieldEmail, blocks.FieldPhone, blocks.FieldMessage},
			},
		}}
	}
	return en, id
}

func mustMarshalBlocks(list []blocks.Block) string {
	data, err := blocks.MarshalList(list)
	if err != nil {
		// Seed content is static; a marshal failure is a programming error.
		panic(fmt.Sprintf("marshaling seed blocks: %v", err))
	}
	return string(data)
}
