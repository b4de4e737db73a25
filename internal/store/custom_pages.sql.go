// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const customPageColumns = `id, slug, parent_id, title_en, title_id,
meta_description_en, meta_description_id, template, status, publish_at,
content_en, content_id, created_by, created_at, updated_at`

func scanCustomPage(row interface{ Scan(...any) error }) (CustomPage, error) {
	var i CustomPage
	err := row.Scan(
		&i.ID,
		&i.Slug,
		&i.ParentID,
		&i.TitleEn,
		&i.TitleID,
		&i.MetaDescriptionEn,
		&i.MetaDescriptionID,
		&i.Template,
		&i.Status,
		&i.PublishAt,
		&i.ContentEn,
		&i.ContentID,
		&i.CreatedBy,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createCustomPage = `-- name: CreateCustomPage :one
INSERT INTO custom_pages (slug, parent_id, title_en, title_id,
    meta_description_en, meta_description_id, template, status, publish_at,
    content_en, content_id, created_by, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING ` + customPageColumns

type CreateCustomPageParams struct {
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

func (q *Queries) CreateCustomPage(ctx context.Context, arg CreateCustomPageParams) (CustomPage, error) {
	row := q.db.QueryRowContext(ctx, createCustomPage,
		arg.Slug,
		arg.ParentID,
		arg.TitleEn,
		arg.TitleID,
		arg.MetaDescriptionEn,
		arg.MetaDescriptionID,
		arg.Template,
		arg.Status,
		arg.PublishAt,
		arg.ContentEn,
		arg.ContentID,
		arg.CreatedBy,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return scanCustomPage(row)
}

const getCustomPage = `-- name: GetCustomPage :one
SELECT ` + customPageColumns + ` FROM custom_pages WHERE id = ?`

func (q *Queries) GetCustomPage(ctx context.Context, id int64) (CustomPage, error) {
	return scanCustomPage(q.db.QueryRowContext(ctx, getCustomPage, id))
}

const getCustomPageBySlug = `-- name: GetCustomPageBySlug :one
SELECT ` + customPageColumns + ` FROM custom_pages WHERE slug = ?`

func (q *Queries) GetCustomPageBySlug(ctx context.Context, slug string) (CustomPage, error) {
	return scanCustomPage(q.db.QueryRowContext(ctx, getCustomPageBySlug, slug))
}

const listCustomPages = `-- name: ListCustomPages :many
SELECT ` + customPageColumns + ` FROM custom_pages ORDER BY slug`

func (q *Queries) ListCustomPages(ctx context.Context) ([]CustomPage, error) {
	return q.queryCustomPages(ctx, listCustomPages)
}

const listPublishedCustomPages = `-- name: ListPublishedCustomPages :many
SELECT ` + customPageColumns + ` FROM custom_pages WHERE status = 'published' ORDER BY slug`

func (q *Queries) ListPublishedCustomPages(ctx context.Context) ([]CustomPage, error) {
	return q.queryCustomPages(ctx, listPublishedCustomPages)
}

const listCustomPagesByParent = `-- name: ListCustomPagesByParent :many
SELECT ` + customPageColumns + ` FROM custom_pages WHERE parent_id = ? ORDER BY slug`

func (q *Queries) ListCustomPagesByParent(ctx context.Context, parentID sql.NullInt64) ([]CustomPage, error) {
	return q.queryCustomPages(ctx, listCustomPagesByParent, parentID)
}

const listDuePages = `-- name: ListDuePages :many
SELECT ` + customPageColumns + ` FROM custom_pages
WHERE status = 'scheduled' AND publish_at IS NOT NULL AND publish_at <= ?`

// ListDuePages returns scheduled pages whose publish time has arrived.
func (q *Queries) ListDuePages(ctx context.Context, now time.Time) ([]CustomPage, error) {
	return q.queryCustomPages(ctx, listDuePages, now)
}

func (q *Queries) queryCustomPages(ctx context.Context, query string, args ...any) ([]CustomPage, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CustomPage
	for rows.Next() {
		i, err := scanCustomPage(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countCustomPages = `-- name: CountCustomPages :one
SELECT COUNT(*) FROM custom_pages
`

func (q *Queries) CountCustomPages(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countCustomPages)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countCustomPagesByStatus = `-- name: CountCustomPagesByStatus :one
SELECT COUNT(*) FROM custom_pages WHERE status = ?
`

func (q *Queries) CountCustomPagesByStatus(ctx context.Context, status string) (int64, error) {
	row := q.db.QueryRowContext(ctx, countCustomPagesByStatus, status)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const updateCustomPage = `-- name: UpdateCustomPage :one
UPDATE custom_pages SET
    slug = ?,
    parent_id = ?,
    title_en = ?,
    title_id = ?,
    meta_description_en = ?,
    meta_description_id = ?,
    template = ?,
    status = ?,
    publish_at = ?,
    updated_at = ?
WHERE id = ?
RETURNING ` + customPageColumns

type UpdateCustomPageParams struct {
	Slug              string
	ParentID          sql.NullInt64
	TitleEn           string
	TitleID           string
	MetaDescriptionEn string
	MetaDescriptionID string
	Template          string
	Status            string
	PublishAt         sql.NullTime
	UpdatedAt         time.Time
	ID                int64
}

func (q *Queries) UpdateCustomPage(ctx context.Context, arg UpdateCustomPageParams) (CustomPage, error) {
	row := q.db.QueryRowContext(ctx, updateCustomPage,
		arg.Slug,
		arg.ParentID,
		arg.TitleEn,
		arg.TitleID,
		arg.MetaDescriptionEn,
		arg.MetaDescriptionID,
		arg.Template,
		arg.Status,
		arg.PublishAt,
		arg.UpdatedAt,
		arg.ID,
	)
	return scanCustomPage(row)
}

const updateCustomPageContent = `-- name: UpdateCustomPageContent :exec
UPDATE custom_pages SET content_en = ?, content_id = ?, updated_at = ? WHERE id = ?
`

type UpdateCustomPageContentParams struct {
	ContentEn string
	ContentID string
	UpdatedAt time.Time
	ID        int64
}

func (q *Queries) UpdateCustomPageContent(ctx context.Context, arg UpdateCustomPageContentParams) error {
	_, err := q.db.ExecContext(ctx, updateCustomPageContent,
		arg.ContentEn,
		arg.ContentID,
		arg.UpdatedAt,
		arg.ID,
	)
	return err
}

const publishCustomPage = `-- name: PublishCustomPage :exec
UPDATE custom_pages SET status = 'published', publish_at = NULL, updated_at = ? WHERE id = ?
`

type PublishCustomPageParams struct {
	UpdatedAt time.Time
	ID        int64
}

func (q *Queries) PublishCustomPage(ctx context.Context, arg PublishCustomPageParams) error {
	_, err := q.db.ExecContext(ctx, publishCustomPage, arg.UpdatedAt, arg.ID)
	return err
}

const deleteCustomPage = `-- name: DeleteCustomPage :exec
DELETE FROM custom_pages WHERE id = ?
`

func (q *Queries) DeleteCustomPage(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteCustomPage, id)
	return err
}
