package models

// CreateEntryRequest is the body of POST /entries.
type CreateEntryRequest struct {
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateEntryRequest is the body of PUT /entries/{id}.
// Nil fields keep their stored value.
type UpdateEntryRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// EntriesRequest describes one page request of GET /entries.
type EntriesRequest struct {
	// UserID selects the partition to scan. Required.
	UserID string

	// After resumes the scan right after this key. Nil starts from the top.
	After *Cursor

	// Limit caps the page size. Zero means the server default.
	Limit int
}
