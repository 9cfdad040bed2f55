package models

// EntriesPage is the response body of GET /entries.
type EntriesPage struct {
	// Entries are ordered by (LastModified desc, ID desc).
	Entries []Entry `json:"entries"`

	// LastEvaluatedKey is the key to pass back to get the next page.
	// It is null when the scan is exhausted.
	LastEvaluatedKey *Cursor `json:"last_evaluated_key"`
}

// ErrorResponse is the body written by the server for every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// EmptyResponse is written by DELETE /entries/{id} on success.
type EmptyResponse struct{}
