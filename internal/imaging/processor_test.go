// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/kemasindo/kemas/internal/model"
)

func testJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return buf.Bytes()
}

func TestProcess(t *testing.T) {
	p := NewProcessor(t.TempDir())
	data := testJPEG(t, 640, 480)

	result, err := p.Process(bytes.NewReader(data), "products/box.jpg")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if result.Width != 640 || result.Height != 480 {
		t.Errorf("dimensions = %dx%d, want 640x480", result.Width, result.Height)
	}
	if result.MimeType != model.MimeTypeJPEG {
		t.Errorf("MimeType = %q", result.MimeType)
	}
	if _, err := os.Stat(result.FilePath); err != nil {
		t.Errorf("original not saved: %v", err)
	}
}

func TestProcessRejectsNonImage(t *testing.T) {
	p := NewProcessor(t.TempDir())
	if _, err := p.Process(bytes.NewReader([]byte("<html>not an image</html>")), "x.jpg"); err == nil {
		t.Error("Process() should reject non-image data")
	}
}

func TestProcessRejectsTraversal(t *testing.T) {
	p := NewProcessor(t.TempDir())
	data := testJPEG(t, 10, 10)
	if _, err := p.Process(bytes.NewReader(data), "../escape.jpg"); err == nil {
		t.Error("Process() should reject traversal in relPath")
	}
}

func TestCreateVariants(t *testing.T) {
	dir := t.TempDir()
	p := NewProcessor(dir)
	data := testJPEG(t, 2000, 1500)

	if _, err := p.Process(bytes.NewReader(data), "products/big.jpg"); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	variants, err := p.CreateVariants("products/big.jpg")
	if err != nil {
		t.Fatalf("CreateVariants() error = %v", err)
	}
	if len(variants) != len(model.ImageVariants) {
		t.Fatalf("variants = %d, want %d", len(variants), len(model.ImageVariants))
	}
	for _, v := range variants {
		cfg := model.ImageVariants[v.Type]
		if v.Width > cfg.Width || v.Height > cfg.Height {
			t.Errorf("%s variant %dx%d exceeds %dx%d", v.Type, v.Width, v.Height, cfg.Width, cfg.Height)
		}
		if cfg.Crop && (v.Width != cfg.Width || v.Height != cfg.Height) {
			t.Errorf("%s crop variant = %dx%d, want exact %dx%d", v.Type, v.Width, v.Height, cfg.Width, cfg.Height)
		}
		if _, err := os.Stat(v.FilePath); err != nil {
			t.Errorf("%s variant not saved: %v", v.Type, err)
		}
	}
}

func TestCreateVariantsSkipsSmallSource(t *testing.T) {
	dir := t.TempDir()
	p := NewProcessor(dir)
	data := testJPEG(t, 200, 200)

	if _, err := p.Process(bytes.NewReader(data), "small.jpg"); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	variants, err := p.CreateVariants("small.jpg")
	if err != nil {
		t.Fatalf("CreateVariants() error = %v", err)
	}
	// The fit-mode variant is skipped; the cropped thumbnail still runs.
	for _, v := range variants {
		if v.Type == model.VariantMedium {
			t.Error("medium variant should be skipped for a 200x200 source")
		}
	}
}

func TestDelete(t *testing.T) {
	dir := t.TempDir()
	p := NewProcessor(dir)
	data := testJPEG(t, 2000, 1500)

	if _, err := p.Process(bytes.NewReader(data), "gone.jpg"); err != nil {
		t.Fatal(err)
	}
	if _, err := p.CreateVariants("gone.jpg"); err != nil {
		t.Fatal(err)
	}
	if err := p.Delete("gone.jpg"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "gone.jpg")); !os.IsNotExist(err) {
		t.Error("original still exists after Delete()")
	}
	for variant := range model.ImageVariants {
		if _, err := os.Stat(filepath.Join(dir, variant, "gone.jpg")); !os.IsNotExist(err) {
			t.Errorf("%s variant still exists after Delete()", variant)
		}
	}

	// Deleting again is a no-op.
	if err := p.Delete("gone.jpg"); err != nil {
		t.Errorf("second Delete() error = %v", err)
	}
}

func TestDetectMimeType(t *testing.T) {
	p := NewProcessor(t.TempDir())

	if got := p.DetectMimeType(testJPEG(t, 10, 10)); got != model.MimeTypeJPEG {
		t.Errorf("DetectMimeType(jpeg) = %q", got)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatal(err)
	}
	if got := p.DetectMimeType(buf.Bytes()); got != model.MimeTypePNG {
		t.Errorf("DetectMimeType(png) = %q", got)
	}
}

func TestIsImage(t *testing.T) {
	p := NewProcessor(t.TempDir())
	for _, mime := range []string{model.MimeTypeJPEG, model.MimeTypePNG, model.MimeTypeGIF, model.MimeTypeWebP} {
		if !p.IsImage(mime) {
			t.Errorf("IsImage(%q) = false", mime)
		}
	}
	for _, mime := range []string{"application/pdf", "video/mp4", "text/html"} {
		if p.IsImage(mime) {
			t.Errorf("IsImage(%q) = true", mime)
		}
	}
}
