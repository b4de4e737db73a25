// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"
)

const mediaColumns = `id, filename, original_name, mime_type, size, width, height,
folder, uploaded_by, created_at`

func scanMedia(row interface{ Scan(...any) error }) (Media, error) {
	var i Media
	err := row.Scan(
		&i.ID,
		&i.Filename,
		&i.OriginalName,
		&i.MimeType,
		&i.Size,
		&i.Width,
		&i.Height,
		&i.Folder,
		&i.UploadedBy,
		&i.CreatedAt,
	)
	return i, err
}

const createMedia = `-- name: CreateMedia :one
INSERT INTO media (filename, original_name, mime_type, size, width, height,
    folder, uploaded_by, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING ` + mediaColumns

type CreateMediaParams struct {
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

func (q *Queries) CreateMedia(ctx context.Context, arg CreateMediaParams) (Media, error) {
	row := q.db.QueryRowContext(ctx, createMedia,
		arg.Filename,
		arg.OriginalName,
		arg.MimeType,
		arg.Size,
		arg.Width,
		arg.Height,
		arg.Folder,
		arg.UploadedBy,
		arg.CreatedAt,
	)
	return scanMedia(row)
}

const getMedia = `-- name: GetMedia :one
SELECT ` + mediaColumns + ` FROM media WHERE id = ?`

func (q *Queries) GetMedia(ctx context.Context, id int64) (Media, error) {
	return scanMedia(q.db.QueryRowContext(ctx, getMedia, id))
}

const getMediaByFilename = `-- name: GetMediaByFilename :one
SELECT ` + mediaColumns + ` FROM media WHERE filename = ?`

func (q *Queries) GetMediaByFilename(ctx context.Context, filename string) (Media, error) {
	return scanMedia(q.db.QueryRowContext(ctx, getMediaByFilename, filename))
}

const listMedia = `-- name: ListMedia :many
SELECT ` + mediaColumns + ` FROM media ORDER BY created_at DESC LIMIT ? OFFSET ?`

type ListMediaParams struct {
	Limit  int64
	Offset int64
}

func (q *Queries) ListMedia(ctx context.Context, arg ListMediaParams) ([]Media, error) {
	return q.queryMedia(ctx, listMedia, arg.Limit, arg.Offset)
}

const listMediaByFolder = `-- name: ListMediaByFolder :many
SELECT ` + mediaColumns + ` FROM media WHERE folder = ?
ORDER BY created_at DESC LIMIT ? OFFSET ?`

type ListMediaByFolderParams struct {
	Folder string
	Limit  int64
	Offset int64
}

func (q *Queries) ListMediaByFolder(ctx context.Context, arg ListMediaByFolderParams) ([]Media, error) {
	return q.queryMedia(ctx, listMediaByFolder, arg.Folder, arg.Limit, arg.Offset)
}

func (q *Queries) queryMedia(ctx context.Context, query string, args ...any) ([]Media, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Media
	for rows.Next() {
		i, err := scanMedia(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listMediaFolders = `-- name: ListMediaFolders :many
SELECT DISTINCT folder FROM media WHERE folder != '' ORDER BY folder
`

func (q *Queries) ListMediaFolders(ctx context.Context) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, listMediaFolders)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []string
	for rows.Next() {
		var folder string
		if err := rows.Scan(&folder); err != nil {
			return nil, err
		}
		items = append(items, folder)
	}
	return items, rows.Err()
}

const countMedia = `-- name: CountMedia :one
SELECT COUNT(*) FROM media
`

func (q *Queries) CountMedia(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countMedia)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const deleteMedia = `-- name: DeleteMedia :exec
DELETE FROM media WHERE id = ?
`

func (q *Queries) DeleteMedia(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteMedia, id)
	return err
}
