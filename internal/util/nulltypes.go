// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"database/sql"
	"strconv"
	"time"
)

// NullStringFromValue creates a sql.NullString that is valid only when
// the string is non-empty.
func NullStringFromValue(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// NullInt64FromValue creates a valid sql.NullInt64 from an int64.
func NullInt64FromValue(val int64) sql.NullInt64 {
	return sql.NullInt64{Int64: val, Valid: true}
}

// ParseNullInt64 parses a string into sql.NullInt64. Empty, "0", and
// unparseable input yield an invalid NullInt64, matching how optional
// numeric form fields arrive.
func ParseNullInt64(s string) sql.NullInt64 {
	if s == "" || s == "0" {
		return sql.NullInt64{}
	}
	if val, err := strconv.ParseInt(s, 10, 64); err == nil {
		return sql.NullInt64{Int64: val, Valid: true}
	}
	return sql.NullInt64{}
}

// NullTimeFromValue creates a sql.NullTime that is valid only when t is
// not the zero time.
func NullTimeFromValue(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

// ParseNullTime parses a datetime-local form value ("2006-01-02T15:04")
// in the given location. Empty or unparseable input yields an invalid
// NullTime.
func ParseNullTime(s string, loc *time.Location) sql.NullTime {
	if s == "" {
		return sql.NullTime{}
	}
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04", s, loc); err == nil {
		return sql.NullTime{Time: t.UTC(), Valid: true}
	}
	return sql.NullTime{}
}
