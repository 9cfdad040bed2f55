package service

import (
	"context"

	"github.com/MKhiriev/go-entry-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=EntryServiceWrapper

// EntryService is the server-side entry use case layer.
type EntryService interface {
	// ListEntries returns one page of req.UserID's entries after req.After.
	ListEntries(ctx context.Context, req models.EntriesRequest) (models.EntriesPage, error)

	GetEntry(ctx context.Context, id string) (models.Entry, error)

	// CreateEntry assigns the id and last_modified and stores the entry.
	CreateEntry(ctx context.Context, req models.CreateEntryRequest) (models.Entry, error)

	// UpdateEntry applies the non-nil fields of req and refreshes
	// last_modified.
	UpdateEntry(ctx context.Context, id string, req models.UpdateEntryRequest) (models.Entry, error)

	DeleteEntry(ctx context.Context, id string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// EntryServiceWrapper defines middleware composition for EntryService.
// Implementations wrap an existing EntryService to add behavior such as
// logging or validating.
type EntryServiceWrapper interface {
	Wrap(EntryService) EntryService // returns a decorated EntryService applying additional behavior
}

// IDGenerator produces entry ids.
type IDGenerator interface {
	Generate() string
}
