// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/mileusna/useragent"

	"github.com/kemasindo/kemas/internal/geoip"
	"github.com/kemasindo/kemas/internal/model"
	"github.com/kemasindo/kemas/internal/store"
)

// Field length limits for contact submissions. Oversized input is a
// validation error rather than silent truncation.
const (
	maxNameLen    = 200
	maxEmailLen   = 254
	maxPhoneLen   = 50
	maxCompanyLen = 200
	maxSubjectLen = 300
	maxMessageLen = 5000
)

// ContactInput is a contact form submission before enrichment.
type ContactInput struct {
	Name     string
	Email    string
	Phone    string
	Company  string
	Subject  string
	Message  string
	PagePath string
	BlockID  string
	Lang     string
}

// ValidationError reports a rejected contact field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ContactService stores contact form submissions enriched with client
// metadata: parsed user agent and GeoIP country.
type ContactService struct {
	queries *store.Queries
	geo     *geoip.Lookup
}

// NewContactService creates a contact service. geo may be nil when
// GeoIP is not configured.
func NewContactService(db *sql.DB, geo *geoip.Lookup) *ContactService {
	return &ContactService{
		queries: store.New(db),
		geo:     geo,
	}
}

// Submit validates and stores a submission. ip and rawUA come from the
// request; both may be empty.
func (s *ContactService) Submit(ctx context.Context, input ContactInput, ip, rawUA string) (store.ContactSubmission, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Company = strings.TrimSpace(input.Company)
	input.Subject = strings.TrimSpace(input.Subject)
	input.Message = strings.TrimSpace(input.Message)

	if err := validateContact(input); err != nil {
		return store.ContactSubmission{}, err
	}

	if !model.ValidLang(input.Lang) {
		input.Lang = model.LangEnglish
	}

	browser, osName, device := parseUserAgent(rawUA)

	country := ""
	if s.geo != nil {
		country = s.geo.LookupCountry(ip)
	}

	submission, err := s.queries.CreateContactSubmission(ctx, store.CreateContactSubmissionParams{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Company:   input.Company,
		Subject:   input.Subject,
		Message:   input.Message,
		PagePath:  input.PagePath,
		BlockID:   input.BlockID,
		Lang:      input.Lang,
		IPAddress: ip,
		UserAgent: rawUA,
		Browser:   browser,
		Os:        osName,
		Device:    device,
		Country:   country,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return store.ContactSubmission{}, fmt.Errorf("storing contact submission: %w", err)
	}
	return submission, nil
}

// validateContact enforces required fields and size limits.
func validateContact(input ContactInput) error {
	if input.Name == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	if len(input.Name) > maxNameLen {
		return &ValidationError{Field: "name", Reason: "too long"}
	}

	if input.Email == "" {
		return &ValidationError{Field: "email", Reason: "required"}
	}
	if len(input.Email) > maxEmailLen {
		return &ValidationError{Field: "email", Reason: "too long"}
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return &ValidationError{Field: "email", Reason: "not a valid address"}
	}

	// Only name and email are required; a form block may omit the
	// message field entirely.
	if len(input.Message) > maxMessageLen {
		return &ValidationError{Field: "message", Reason: "too long"}
	}

	if len(input.Phone) > maxPhoneLen {
		return &ValidationError{Field: "phone", Reason: "too long"}
	}
	if len(input.Company) > maxCompanyLen {
		return &ValidationError{Field: "company", Reason: "too long"}
	}
	if len(input.Subject) > maxSubjectLen {
		return &ValidationError{Field: "subject", Reason: "too long"}
	}

	return nil
}

// parseUserAgent extracts browser, OS, and device type from a raw
// user agent string.
func parseUserAgent(rawUA string) (browser, osName, device string) {
	if rawUA == "" {
		return "Unknown", "Unknown", "unknown"
	}

	ua := useragent.Parse(rawUA)

	browser = ua.Name
	if browser == "" {
		browser = "Unknown"
	}
	osName = ua.OS
	if osName == "" {
		osName = "Unknown"
	}

	switch {
	case ua.Mobile:
		device = "mobile"
	case ua.Tablet:
		device = "tablet"
	case ua.Bot:
		device = "bot"
	default:
		device = "desktop"
	}
	return browser, osName, device
}
