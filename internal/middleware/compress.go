// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// gzipWriterPool pools gzip.Writer instances to reduce allocations.
var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(io.Discard)
	},
}

// compressibleContentTypes lists content types worth compressing.
// Images and already-compressed formats are skipped.
var compressibleContentTypes = []string{
	"text/html",
	"text/css",
	"text/plain",
	"text/javascript",
	"application/javascript",
	"application/json",
	"application/xml",
	"text/xml",
	"image/svg+xml",
}

// Compress gzip-compresses responses with compressible content types
// for clients that accept it. Responses smaller than minSize are sent
// uncompressed.
func Compress(minSize int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			cw := &compressWriter{
				ResponseWriter: w,
				minSize:        minSize,
			}
			next.ServeHTTP(cw, r)
			cw.flush()
		})
	}
}

// compressWriter buffers the response and decides at the end whether
// compression pays off.
type compressWriter struct {
	http.ResponseWriter
	minSize    int
	buffer     []byte
	statusCode int
}

func (cw *compressWriter) WriteHeader(statusCode int) {
	cw.statusCode = statusCode
}

func (cw *compressWriter) Write(b []byte) (int, error) {
	cw.buffer = append(cw.buffer, b...)
	return len(b), nil
}

func (cw *compressWriter) flush() {
	if len(cw.buffer) == 0 {
		if cw.statusCode != 0 {
			cw.ResponseWriter.WriteHeader(cw.statusCode)
		}
		return
	}

	shouldCompress := len(cw.buffer) >= cw.minSize &&
		isCompressible(cw.Header().Get("Content-Type"))

	if shouldCompress {
		cw.Header().Set("Content-Encoding", "gzip")
		cw.Header().Set("Vary", "Accept-Encoding")
		cw.Header().Del("Content-Length")
	}

	if cw.statusCode != 0 {
		cw.ResponseWriter.WriteHeader(cw.statusCode)
	}

	if shouldCompress {
		gz := gzipWriterPool.Get().(*gzip.Writer)
		gz.Reset(cw.ResponseWriter)
		_, _ = gz.Write(cw.buffer)
		_ = gz.Close()
		gzipWriterPool.Put(gz)
	} else {
		_, _ = cw.ResponseWriter.Write(cw.buffer)
	}
}

// isCompressible checks whether the content type should be compressed.
func isCompressible(contentType string) bool {
	if contentType == "" {
		return false
	}
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = strings.TrimSpace(contentType[:idx])
	}
	for _, ct := range compressibleContentTypes {
		if strings.EqualFold(contentType, ct) {
			return true
		}
	}
	return strings.HasPrefix(strings.ToLower(contentType), "text/")
}
