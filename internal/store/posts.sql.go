// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const postColumns = `id, slug, title_en, title_id, excerpt_en, excerpt_id,
body_en, body_id, cover_image, status, published_at, author_id, created_at, updated_at`

func scanPost(row interface{ Scan(...any) error }) (Post, error) {
	var i Post
	err := row.Scan(
		&i.ID,
		&i.Slug,
		&i.TitleEn,
		&i.TitleID,
		&i.ExcerptEn,
		&i.ExcerptID,
		&i.BodyEn,
		&i.BodyID,
		&i.CoverImage,
		&i.Status,
		&i.PublishedAt,
		&i.AuthorID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createPost = `-- name: CreatePost :one
INSERT INTO posts (slug, title_en, title_id, excerpt_en, excerpt_id,
    body_en, body_id, cover_image, status, published_at, author_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING ` + postColumns

type CreatePostParams struct {
	Slug        string
	TitleEn     string
	TitleID     string
	ExcerptEn   string
	ExcerptID   string
	BodyEn      string
	BodyID      string
	CoverImage  string
	Status      string
	PublishedAt sql.NullTime
	AuthorID    int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (q *Queries) CreatePost(ctx context.Context, arg CreatePostParams) (Post, error) {
	row := q.db.QueryRowContext(ctx, createPost,
		arg.Slug,
		arg.TitleEn,
		arg.TitleID,
		arg.ExcerptEn,
		arg.ExcerptID,
		arg.BodyEn,
		arg.BodyID,
		arg.CoverImage,
		arg.Status,
		arg.PublishedAt,
		arg.AuthorID,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return scanPost(row)
}

const getPost = `-- name: GetPost :one
SELECT ` + postColumns + ` FROM posts WHERE id = ?`

func (q *Queries) GetPost(ctx context.Context, id int64) (Post, error) {
	return scanPost(q.db.QueryRowContext(ctx, getPost, id))
}

const getPostBySlug = `-- name: GetPostBySlug :one
SELECT ` + postColumns + ` FROM posts WHERE slug = ?`

func (q *Queries) GetPostBySlug(ctx context.Context, slug string) (Post, error) {
	return scanPost(q.db.QueryRowContext(ctx, getPostBySlug, slug))
}

const listPosts = `-- name: ListPosts :many
SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC LIMIT ? OFFSET ?`

type ListPostsParams struct {
	Limit  int64
	Offset int64
}

func (q *Queries) ListPosts(ctx context.Context, arg ListPostsParams) ([]Post, error) {
	return q.queryPosts(ctx, listPosts, arg.Limit, arg.Offset)
}

const listPublishedPosts = `-- name: ListPublishedPosts :many
SELECT ` + postColumns + ` FROM posts
WHERE status = 'published' AND published_at <= ?
ORDER BY published_at DESC LIMIT ? OFFSET ?`

type ListPublishedPostsParams struct {
	Now    time.Time
	Limit  int64
	Offset int64
}

func (q *Queries) ListPublishedPosts(ctx context.Context, arg ListPublishedPostsParams) ([]Post, error) {
	return q.queryPosts(ctx, listPublishedPosts, arg.Now, arg.Limit, arg.Offset)
}

func (q *Queries) queryPosts(ctx context.Context, query string, args ...any) ([]Post, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Post
	for rows.Next() {
		i, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countPosts = `-- name: CountPosts :one
SELECT COUNT(*) FROM posts
`

func (q *Queries) CountPosts(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countPosts)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countPublishedPosts = `-- name: CountPublishedPosts :one
SELECT COUNT(*) FROM posts WHERE status = 'published' AND published_at <= ?
`

func (q *Queries) CountPublishedPosts(ctx context.Context, now time.Time) (int64, error) {
	row := q.db.QueryRowContext(ctx, countPublishedPosts, now)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const updatePost = `-- name: UpdatePost :one
UPDATE posts SET
    slug = ?,
    title_en = ?,
    title_id = ?,
    excerpt_en = ?,
    excerpt_id = ?,
    body_en = ?,
    body_id = ?,
    cover_image = ?,
    status = ?,
    published_at = ?,
    updated_at = ?
WHERE id = ?
RETURNING ` + postColumns

type UpdatePostParams struct {
	Slug        string
	TitleEn     string
	TitleID     string
	ExcerptEn   string
	ExcerptID   string
	BodyEn      string
	BodyID      string
	CoverImage  string
	Status      string
	PublishedAt sql.NullTime
	UpdatedAt   time.Time
	ID          int64
}

func (q *Queries) UpdatePost(ctx context.Context, arg UpdatePostParams) (Post, error) {
	row := q.db.QueryRowContext(ctx, updatePost,
		arg.Slug,
		arg.TitleEn,
		arg.TitleID,
		arg.ExcerptEn,
		arg.ExcerptID,
		arg.BodyEn,
		arg.BodyID,
		arg.CoverImage,
		arg.Status,
		arg.PublishedAt,
		arg.UpdatedAt,
		arg.ID,
	)
	return scanPost(row)
}

const deletePost = `-- name: DeletePost :exec
DELETE FROM posts WHERE id = ?
`

func (q *Queries) DeletePost(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deletePost, id)
	return err
}
