// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the data types shared by the entry server and the
// entry client. JSON tags define the snake_case wire form; Go field names are
// the in-memory form.
package models

// Entry is a single user-owned record.
type Entry struct {
	// ID is assigned by the backend on creation and never changes.
	ID string `json:"id"`

	// UserID is the owner scope. It is set on creation and is immutable.
	UserID string `json:"user_id"`

	// LastModified is a Unix timestamp in seconds refreshed by the backend
	// on every write. Together with ID it defines the scan order.
	LastModified int64 `json:"last_modified"`

	Title       string `json:"title"`
	Description string `json:"description"`
}

// Cursor returns the pagination key that resumes a scan right after e.
func (e Entry) Cursor() Cursor {
	return Cursor{ID: e.ID, UserID: e.UserID, LastModified: e.LastModified}
}

// Before reports whether e precedes other in scan order, which is
// (LastModified desc, ID desc).
func (e Entry) Before(other Entry) bool {
	if e.LastModified != other.LastModified {
		return e.LastModified > other.LastModified
	}
	return e.ID > other.ID
}
