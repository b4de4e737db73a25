// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"bytes"
	"database/sql"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kemasindo/kemas/internal/store"
	"github.com/kemasindo/kemas/internal/testutil"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return testutil.NewDB(t)
}

func newTestUser(t *testing.T, db *sql.DB) store.User {
	t.Helper()
	return testutil.CreateUser(t, db, "editor@kemasindo.co.id", "editor")
}

// testJPEG produces an encoded gradient image of the given size.
func testJPEG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return buf.Bytes()
}

// pngBytes produces a small encoded PNG.
func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 80, B: 40, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test png: %v", err)
	}
	return buf.Bytes()
}

// multipartUpload wraps raw bytes in a parsed multipart form so the
// service sees what a real handler would hand it.
func multipartUpload(t *testing.T, filename, contentType string, data []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreatePart(map[string][]string{
		"Content-Disposition": {`form-data; name="file"; filename="` + filename + `"`},
		"Content-Type":        {contentType},
	})
	if err != nil {
		t.Fatalf("creating form part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("writing form part: %v", err)
	}
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/admin/media", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	file, header, err := req.FormFile("file")
	if err != nil {
		t.Fatalf("parsing form file: %v", err)
	}
	t.Cleanup(func() { _ = file.Close() })
	return file, header
}
