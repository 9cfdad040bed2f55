package collection

import "errors"

var (
	// ErrDuplicateID is returned by InsertOne when an entry with the same id
	// is already held.
	ErrDuplicateID = errors.New("entry with this id already exists")

	// ErrNotFound is returned by ReplaceOne and RemoveOne when no entry with
	// the given id is held.
	ErrNotFound = errors.New("entry not found")
)
