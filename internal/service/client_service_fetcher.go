package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-entry-keeper/internal/adapter"
	"github.com/MKhiriev/go-entry-keeper/internal/app"
	"github.com/MKhiriev/go-entry-keeper/internal/logger"
	"github.com/MKhiriev/go-entry-keeper/internal/pagination"
	"github.com/MKhiriev/go-entry-keeper/internal/validators"
	"github.com/MKhiriev/go-entry-keeper/models"
)

type clientEntryFetcher struct {
	serverAdapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientEntryFetcher(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientEntryFetcher {
	return &clientEntryFetcher{
		serverAdapter: serverAdapter,
		logger:        logger,
	}
}

func (f *clientEntryFetcher) FetchPage(ctx context.Context, userID string, cursor *models.Cursor) ([]models.Entry, *models.Cursor, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, nil, fmt.Errorf("%w: %w", ErrValidation, validators.ErrInvalidUserID)
	}

	page, err := f.serverAdapter.GetEntries(ctx, models.EntriesRequest{UserID: userID, After: cursor})
	if err != nil {
		f.logger.Err(err).Str("func", "clientEntryFetcher.FetchPage").Str("user_id", userID).Msg("fetch failed")
		return nil, nil, mapAdapterError(err, ErrFetchFailed, "fetch")
	}

	next := page.LastEvaluatedKey
	if next != nil {
		// a key that cannot be sent back would break the scan on the next call
		if _, err := pagination.DecodeCursor(pagination.EncodeCursor(next)); err != nil {
			return nil, nil, malformedCursorError(err)
		}
		// a key that does not move would repeat the same page forever
		if next.Equal(cursor) {
			return nil, nil, malformedCursorError(fmt.Errorf("%w: continuation key did not advance", pagination.ErrMalformedCursor))
		}
	}

	if !inScanOrder(page.Entries) {
		f.logger.Warn().
			Str("func", "clientEntryFetcher.FetchPage").
			Str("user_id", userID).
			Msg("page is not in (last_modified desc, id desc) order")
	}

	f.logger.Debug().
		Str("func", "clientEntryFetcher.FetchPage").
		Str("user_id", userID).
		Int("entries", len(page.Entries)).
		Bool("has_more", next != nil).
		Msg("page fetched")

	return page.Entries, next, nil
}

func malformedCursorError(err error) error {
	return &OperationError{
		Kind:    ErrFetchFailed,
		Op:      "fetch",
		Message: app.MsgMalformedCursor,
		Err:     err,
	}
}

// inScanOrder reports whether every entry precedes the next one.
func inScanOrder(entries []models.Entry) bool {
	for i := 1; i < len(entries); i++ {
		if !entries[i-1].Before(entries[i]) {
			return false
		}
	}
	return true
}
