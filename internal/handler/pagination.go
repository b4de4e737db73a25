// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"fmt"
	"net/http"
	"strconv"
)

// defaultPerPage is the admin list page size.
const defaultPerPage = 25

// Pagination holds paging data for admin list templates.
type Pagination struct {
	CurrentPage int
	TotalPages  int
	TotalItems  int64
	PerPage     int
	BaseURL     string
}

// NewPagination computes paging data for a list of totalItems rows.
func NewPagination(currentPage int, totalItems int64, perPage int, baseURL string) Pagination {
	totalPages := int((totalItems + int64(perPage) - 1) / int64(perPage))
	if totalPages < 1 {
		totalPages = 1
	}
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}
	return Pagination{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		PerPage:     perPage,
		BaseURL:     baseURL,
	}
}

// HasPrev reports whether a previous page exists.
func (p Pagination) HasPrev() bool { return p.CurrentPage > 1 }

// HasNext reports whether a next page exists.
func (p Pagination) HasNext() bool { return p.CurrentPage < p.TotalPages }

// PrevURL returns the URL of the previous page.
func (p Pagination) PrevURL() string { return p.pageURL(p.CurrentPage - 1) }

// NextURL returns the URL of the next page.
func (p Pagination) NextURL() string { return p.pageURL(p.CurrentPage + 1) }

// ShouldShow reports whether the paging controls are worth rendering.
func (p Pagination) ShouldShow() bool { return p.TotalPages > 1 }

// Offset returns the SQL offset for the current page.
func (p Pagination) Offset() int64 {
	return int64(p.CurrentPage-1) * int64(p.PerPage)
}

func (p Pagination) pageURL(page int) string {
	return fmt.Sprintf("%s?page=%d", p.BaseURL, page)
}

// pageParam reads the ?page query parameter, defaulting to 1.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
