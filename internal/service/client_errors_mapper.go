// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-entry-keeper/internal/adapter"
	"github.com/MKhiriev/go-entry-keeper/internal/app"
	"github.com/MKhiriev/go-entry-keeper/internal/pagination"
)

// mapAdapterError translates the adapter's transport error into an
// [*OperationError] of the given kind.
func mapAdapterError(err error, kind error, op string) error {
	if err == nil {
		return nil
	}

	msg := adapter.Message(err)

	cause := err
	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		if msg == app.MsgMalformedCursor {
			cause = fmt.Errorf("%w: %w", pagination.ErrMalformedCursor, err)
		}
	case errors.Is(err, adapter.ErrNotFound):
		if msg == "" {
			msg = app.MsgEntryNotFound
		}
	}

	if msg == "" {
		msg = fallbackMessage(kind)
	}

	return &OperationError{
		Kind:    kind,
		Op:      op,
		Message: msg,
		Err:     cause,
	}
}

func fallbackMessage(kind error) string {
	if errors.Is(kind, ErrFetchFailed) {
		return app.MsgFetchFailed
	}
	return app.MsgMutationFailed
}
