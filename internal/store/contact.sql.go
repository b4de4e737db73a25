// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"
)

const submissionColumns = `id, name, email, phone, company, subject, message,
page_path, block_id, lang, ip_address, user_agent, browser, os, device,
country, is_read, created_at`

func scanSubmission(row interface{ Scan(...any) error }) (ContactSubmission, error) {
	var i ContactSubmission
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.Phone,
		&i.Company,
		&i.Subject,
		&i.Message,
		&i.PagePath,
		&i.BlockID,
		&i.Lang,
		&i.IPAddress,
		&i.UserAgent,
		&i.Browser,
		&i.Os,
		&i.Device,
		&i.Country,
		&i.IsRead,
		&i.CreatedAt,
	)
	return i, err
}

const createContactSubmission = `-- name: CreateContactSubmission :one
INSERT INTO contact_submissions (name, email, phone, company, subject, message,
    page_path, block_id, lang, ip_address, user_agent, browser, os, device,
    country, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING ` + submissionColumns

type CreateContactSubmissionParams struct {
	Name      string
	Email     string
	Phone     string
	Company   string
	Subject   string
	Message   string
	PagePath  string
	BlockID   string
	Lang      string
	IPAddress string
	UserAgent string
	Browser   string
	Os        string
	Device    string
	Country   string
	CreatedAt time.Time
}

func (q *Queries) CreateContactSubmission(ctx context.Context, arg CreateContactSubmissionParams) (ContactSubmission, error) {
	row := q.db.QueryRowContext(ctx, createContactSubmission,
		arg.Name,
		arg.Email,
		arg.Phone,
		arg.Company,
		arg.Subject,
		arg.Message,
		arg.PagePath,
		arg.BlockID,
		arg.Lang,
		arg.IPAddress,
		arg.UserAgent,
		arg.Browser,
		arg.Os,
		arg.Device,
		arg.Country,
		arg.CreatedAt,
	)
	return scanSubmission(row)
}

const getContactSubmission = `-- name: GetContactSubmission :one
SELECT ` + submissionColumns + ` FROM contact_submissions WHERE id = ?`

func (q *Queries) GetContactSubmission(ctx context.Context, id int64) (ContactSubmission, error) {
	return scanSubmission(q.db.QueryRowContext(ctx, getContactSubmission, id))
}

const listContactSubmissions = `-- name: ListContactSubmissions :many
SELECT ` + submissionColumns + ` FROM contact_submissions
ORDER BY created_at DESC LIMIT ? OFFSET ?`

type ListContactSubmissionsParams struct {
	Limit  int64
	Offset int64
}

func (q *Queries) ListContactSubmissions(ctx context.Context, arg ListContactSubmissionsParams) ([]ContactSubmission, error) {
	return q.querySubmissions(ctx, listContactSubmissions, arg.Limit, arg.Offset)
}

const listAllContactSubmissions = `-- name: ListAllContactSubmissions :many
SELECT ` + submissionColumns + ` FROM contact_submissions ORDER BY created_at DESC`

// ListAllContactSubmissions returns every submission, oldest last, for
// the CSV export.
func (q *Queries) ListAllContactSubmissions(ctx context.Context) ([]ContactSubmission, error) {
	return q.querySubmissions(ctx, listAllContactSubmissions)
}

func (q *Queries) querySubmissions(ctx context.Context, query string, args ...any) ([]ContactSubmission, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ContactSubmission
	for rows.Next() {
		i, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countContactSubmissions = `-- name: CountContactSubmissions :one
SELECT COUNT(*) FROM contact_submissions
`

func (q *Queries) CountContactSubmissions(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countContactSubmissions)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countUnreadContactSubmissions = `-- name: CountUnreadContactSubmissions :one
SELECT COUNT(*) FROM contact_submissions WHERE is_read = 0
`

func (q *Queries) CountUnreadContactSubmissions(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countUnreadContactSubmissions)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const markContactSubmissionRead = `-- name: MarkContactSubmissionRead :exec
UPDATE contact_submissions SET is_read = 1 WHERE id = ?
`

func (q *Queries) MarkContactSubmissionRead(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, markContactSubmissionRead, id)
	return err
}

const deleteContactSubmission = `-- name: DeleteContactSubmission :exec
DELETE FROM contact_submissions WHERE id = ?
`

func (q *Queries) DeleteContactSubmission(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteContactSubmission, id)
	return err
}
