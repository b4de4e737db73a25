// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// MaxUploadSize is the largest accepted upload (5MB).
const MaxUploadSize = 5 << 20

// Image variant names.
const (
	VariantThumbnail = "thumbnail"
	VariantMedium    = "medium"
)

// Accepted image MIME types. Uploads are image-only.
const (
	MimeTypeJPEG = "image/jpeg"
	MimeTypePNG  = "image/png"
	MimeTypeGIF  = "image/gif"
	MimeTypeWebP = "image/webp"
)

// AllowedImageMimeTypes maps accepted MIME types to their canonical file
// extension.
var AllowedImageMimeTypes = map[string]string{
	MimeTypeJPEG: ".jpg",
	MimeTypePNG:  ".png",
	MimeTypeGIF:  ".gif",
	MimeTypeWebP: ".webp",
}

// ImageVariantConfig defines how a generated variant is sized.
type ImageVariantConfig struct {
	Width   int
	Height  int
	Quality int
	Crop    bool // true = crop to exact size, false = fit within bounds
}

// ImageVariants defines the variants generated for each upload.
var ImageVariants = map[string]ImageVariantConfig{
	VariantThumbnail: {Width: 300, Height: 300, Quality: 80, Crop: true},
	VariantMedium:    {Width: 1024, Height: 1024, Quality: 85, Crop: false},
}
