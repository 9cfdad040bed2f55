package store

import (
	"context"

	"github.com/MKhiriev/go-entry-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/entry_repository_mock.go -package=mock -exclude_interfaces=ErrorClassificator

// EntryRepository persists entries partitioned by user and ordered by
// (last_modified desc, id desc) inside a partition.
type EntryRepository interface {
	// CreateEntry inserts a fully populated entry.
	CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error)

	// GetEntry returns the entry with the given id or [ErrEntryNotFound].
	GetEntry(ctx context.Context, id string) (models.Entry, error)

	// UpdateEntry applies the non-nil fields of update, sets last_modified and
	// returns the stored result, or [ErrEntryNotFound].
	UpdateEntry(ctx context.Context, id string, update models.UpdateEntryRequest, lastModified int64) (models.Entry, error)

	// DeleteEntry removes the entry or returns [ErrEntryNotFound].
	DeleteEntry(ctx context.Context, id string) error

	// ListEntries returns at most req.Limit entries of req.UserID that come
	// after req.After in scan order. LastEvaluatedKey is set only when more
	// entries follow.
	ListEntries(ctx context.Context, req models.EntriesRequest) (models.EntriesPage, error)
}

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
