// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"database/sql"
	"time"
)

// User is a row in the users table.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLoginAt  sql.NullTime
}

// StaticPage is a fixed site page addressed by key. ContentEn and
// ContentID hold the content-block arrays as JSON.
type StaticPage struct {
	ID        int64
	PageKey   string
	TitleEn   string
	TitleID   string
	ContentEn string
	ContentID string
	UpdatedAt time.Time
}

// CustomPage is an operator-created page, optionally nested under a
// parent page.
type CustomPage struct {
	ID                int64
	Slug              string
	ParentID          sql.NullInt64
	TitleEn           string
	TitleID           string
	MetaDescriptionEn string
	MetaDescriptionID string
	Template          string
	Status            string
	PublishAt         sql.NullTime
	ContentEn         string
	ContentID         string
	CreatedBy         int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Post is a blog post with Markdown bodies per language.
type Post struct {
	ID          int64
	Slug        string
	TitleEn     string
	TitleID     string
	ExcerptEn   string
	ExcerptID   string
	BodyEn      string
	BodyID      string
	CoverImage  string
	Status      string
	PublishedAt sql.NullTime
	AuthorID    int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ContactSubmission is a message sent through a contact form block.
type ContactSubmission struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Company   string
	Subject   string
	Message   string
	PagePath  string
	BlockID   string
	Lang      string
	IPAddress string
	UserAgent string
	Browser   string
	Os        string
	Device    string
	Country   string
	IsRead    int64
	CreatedAt time.Time
}

// Media is an uploaded image file.
type Media struct {
	ID           int64
	Filename     string
	OriginalName string
	MimeType     string
	Size         int64
	Width        int64
	Height       int64
	Folder       string
	UploadedBy   int64
	CreatedAt    time.Time
}

// Setting is a key/value site setting.
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
