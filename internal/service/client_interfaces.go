package service

import (
	"context"

	"github.com/MKhiriev/go-entry-keeper/internal/sorting"
	"github.com/MKhiriev/go-entry-keeper/models"
)

// ClientEntryFetcher requests bounded pages of one user's entries.
type ClientEntryFetcher interface {
	// FetchPage returns the page that follows cursor (nil starts from the
	// top) and the cursor of the next page, nil when the scan is exhausted.
	// Entries come in (last_modified desc, id desc) order. FetchPage never
	// retries and never touches a collection store.
	FetchPage(ctx context.Context, userID string, cursor *models.Cursor) ([]models.Entry, *models.Cursor, error)
}

// ClientEntryGateway performs mutations against the backend and reconciles
// their results with the collection store it is bound to. On any failure the
// store is left as it was.
type ClientEntryGateway interface {
	Create(ctx context.Context, userID, title, description string) (models.Entry, error)

	// Update requires the entry to be held in the store.
	Update(ctx context.Context, id, title, description string) (models.Entry, error)

	// Delete requires the entry to be held in the store.
	Delete(ctx context.Context, id string) error

	// Get reads a single entry from the backend. The store is not touched.
	Get(ctx context.Context, id string) (models.Entry, error)
}

// ClientEntrySession is the state a client screen drives: the active user,
// its collection store, the pagination cursor, the sort descriptor and the
// single current error.
//
// Only one backend operation runs at a time; others are refused with
// [ErrBusy]. While a current error is set every operation is refused with
// [ErrUncleared] until ClearError is called.
type ClientEntrySession interface {
	// SelectUser switches the scope. The previous store, cursor and error
	// are discarded.
	SelectUser(userID string) error
	UserID() string

	// LoadFirst replaces the store content with the first page.
	LoadFirst(ctx context.Context) error
	// LoadMore appends the next page. It fails with [ErrNoMorePages] after
	// the scan is exhausted.
	LoadMore(ctx context.Context) error
	HasMore() bool

	Create(ctx context.Context, title, description string) (models.Entry, error)
	Update(ctx context.Context, id, title, description string) (models.Entry, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (models.Entry, error)

	// View returns the held entries in display order.
	View() []models.Entry
	Len() int

	Sort() sorting.Descriptor
	SetSort(d sorting.Descriptor)
	ToggleSort(column sorting.Column)

	Busy() bool
	CurrentError() error
	ClearError()
}
