// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service holds the application services between handlers and
// the store: media uploads and contact form intake.
package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kemasindo/kemas/internal/imaging"
	"github.com/kemasindo/kemas/internal/model"
	"github.com/kemasindo/kemas/internal/store"
	"github.com/kemasindo/kemas/internal/util"
)

// DefaultUploadDir is used when no upload directory is configured.
const DefaultUploadDir = "./uploads"

// UploadResult contains the stored media row and its generated variants.
type UploadResult struct {
	Media    store.Media
	Variants []*imaging.VariantResult
}

// MediaService handles image upload, variant generation, and deletion.
type MediaService struct {
	queries   *store.Queries
	processor *imaging.Processor
}

// NewMediaService creates a media service writing under uploadDir.
func NewMediaService(db *sql.DB, uploadDir string) *MediaService {
	if uploadDir == "" {
		uploadDir = DefaultUploadDir
	}
	return &MediaService{
		queries:   store.New(db),
		processor: imaging.NewProcessor(uploadDir),
	}
}

// Upload validates, processes, and stores an uploaded image. folder
// groups files in the media library ("products", "blog", ...); empty
// means the library root.
func (s *MediaService) Upload(ctx context.Context, file multipart.File, header *multipart.FileHeader, userID int64, folder string) (*UploadResult, error) {
	if header.Size > model.MaxUploadSize {
		return nil, fmt.Errorf("file exceeds the %dMB upload limit", model.MaxUploadSize>>20)
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = mimeTypeFromExtension(header.Filename)
	}
	ext, ok := model.AllowedImageMimeTypes[mimeType]
	if !ok {
		return nil, fmt.Errorf("file type %s is not allowed; images only", mimeType)
	}

	folder = sanitizeFolder(folder)
	relPath := buildRelPath(folder, header.Filename, ext)

	processResult, err := s.processor.Process(file, relPath)
	if err != nil {
		return nil, fmt.Errorf("processing image: %w", err)
	}

	media, err := s.queries.CreateMedia(ctx, store.CreateMediaParams{
		Filename:     relPath,
		OriginalName: filepath.Base(header.Filename),
		MimeType:     processResult.MimeType,
		Size:         processResult.Size,
		Width:        int64(processResult.Width),
		Height:       int64(processResult.Height),
		Folder:       folder,
		UploadedBy:   userID,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		_ = s.processor.Delete(relPath)
		return nil, fmt.Errorf("creating media record: %w", err)
	}

	// Variants are best effort; the original is already safe.
	variants, err := s.processor.CreateVariants(relPath)
	if err != nil {
		slog.Warn("variant generation failed", "file", relPath, "error", err)
	}

	return &UploadResult{Media: media, Variants: variants}, nil
}

// Delete removes a media row and its files. Files are removed after
// the row so a disk failure leaves no dangling database entry.
func (s *MediaService) Delete(ctx context.Context, mediaID int64) error {
	media, err := s.queries.GetMedia(ctx, mediaID)
	if err != nil {
		return fmt.Errorf("getting media: %w", err)
	}

	if err := s.queries.DeleteMedia(ctx, mediaID); err != nil {
		return fmt.Errorf("deleting media record: %w", err)
	}

	if err := s.processor.Delete(media.Filename); err != nil {
		slog.Warn("deleting media files failed", "media_id", mediaID, "file", media.Filename, "error", err)
	}

	return nil
}

// URL returns the public path for a media item's original file.
func (s *MediaService) URL(media store.Media) string {
	return "/uploads/" + media.Filename
}

// VariantURL returns the public path for a named variant.
func (s *MediaService) VariantURL(media store.Media, variant string) string {
	if variant == "" {
		return s.URL(media)
	}
	return "/uploads/" + variant + "/" + media.Filename
}

// ThumbnailURL returns the 300x300 thumbnail path.
func (s *MediaService) ThumbnailURL(media store.Media) string {
	return s.VariantURL(media, model.VariantThumbnail)
}

// buildRelPath makes a collision-free storage path: the slugified base
// name with a short unique suffix, inside the folder.
func buildRelPath(folder, originalName, ext string) string {
	base := filepath.Base(originalName)
	base = util.Slugify(strings.TrimSuffix(base, filepath.Ext(base)))
	if base == "" {
		base = "upload"
	}

	name := base + "-" + uuid.New().String()[:8] + ext
	if folder == "" {
		return name
	}
	return path.Join(folder, name)
}

// sanitizeFolder keeps folder names to a single safe path segment.
func sanitizeFolder(folder string) string {
	return util.Slugify(strings.Trim(folder, "/"))
}

// mimeTypeFromExtension guesses the MIME type when the client did not
// send one.
func mimeTypeFromExtension(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return model.MimeTypeJPEG
	case ".png":
		return model.MimeTypePNG
	case ".gif":
		return model.MimeTypeGIF
	case ".webp":
		return model.MimeTypeWebP
	default:
		return "application/octet-stream"
	}
}
