// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"
)

const getStaticPage = `-- name: GetStaticPage :one
SELECT id, page_key, title_en, title_id, content_en, content_id, updated_at
FROM static_pages WHERE page_key = ?
`

func (q *Queries) GetStaticPage(ctx context.Context, pageKey string) (StaticPage, error) {
	row := q.db.QueryRowContext(ctx, getStaticPage, pageKey)
	var i StaticPage
	err := row.Scan(
		&i.ID,
		&i.PageKey,
		&i.TitleEn,
		&i.TitleID,
		&i.ContentEn,
		&i.ContentID,
		&i.UpdatedAt,
	)
	return i, err
}

const listStaticPages = `-- name: ListStaticPages :many
SELECT id, page_key, title_en, title_id, content_en, content_id, updated_at
FROM static_pages ORDER BY page_key
`

func (q *Queries) ListStaticPages(ctx context.Context) ([]StaticPage, error) {
	rows, err := q.db.QueryContext(ctx, listStaticPages)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []StaticPage
	for rows.Next() {
		var i StaticPage
		if err := rows.Scan(
			&i.ID,
			&i.PageKey,
			&i.TitleEn,
			&i.TitleID,
			&i.ContentEn,
			&i.ContentID,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const upsertStaticPage = `-- name: UpsertStaticPage :one
INSERT INTO static_pages (page_key, title_en, title_id, content_en, content_id, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (page_key) DO UPDATE SET
    title_en = excluded.title_en,
    title_id = excluded.title_id,
    content_en = excluded.content_en,
    content_id = excluded.content_id,
    updated_at = excluded.updated_at
RETURNING id, page_key, title_en, title_id, content_en, content_id, updated_at
`

type UpsertStaticPageParams struct {
	PageKey   string
	TitleEn   string
	TitleID   string
	ContentEn string
	ContentID string
	UpdatedAt time.Time
}

func (q *Queries) UpsertStaticPage(ctx context.Context, arg UpsertStaticPageParams) (StaticPage, error) {
	row := q.db.QueryRowContext(ctx, upsertStaticPage,
		arg.PageKey,
		arg.TitleEn,
		arg.TitleID,
		arg.ContentEn,
		arg.ContentID,
		arg.UpdatedAt,
	)
	var i StaticPage
	err := row.Scan(
		&i.ID,
		&i.PageKey,
		&i.TitleEn,
		&i.TitleID,
		&i.ContentEn,
		&i.ContentID,
		&i.UpdatedAt,
	)
	return i, err
}

const updateStaticPageContent = `-- name: UpdateStaticPageContent :exec
UPDATE static_pages SET content_en = ?, content_id = ?, updated_at = ? WHERE page_key = ?
`

type UpdateStaticPageContentParams struct {
	ContentEn string
	ContentID string
	UpdatedAt time.Time
	PageKey   string
}

func (q *Queries) UpdateStaticPageContent(ctx context.Context, arg UpdateStaticPageContentParams) error {
	_, err := q.db.ExecContext(ctx, updateStaticPageContent,
		arg.ContentEn,
		arg.ContentID,
		arg.UpdatedAt,
		arg.PageKey,
	)
	return err
}
