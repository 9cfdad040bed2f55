// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Cursor identifies the last entry of a returned page. A nil *Cursor means
// "start from the beginning" when sent and "no further pages" when received.
//
// UserID mirrors the partition key of the backing store; it is informational
// only and never used to resume a scan across users.
type Cursor struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id,omitempty"`
	LastModified int64  `json:"last_modified"`
}

// Equal reports whether both cursors point at the same scan position.
// UserID is ignored.
func (c *Cursor) Equal(other *Cursor) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.ID == other.ID && c.LastModified == other.LastModified
}
