// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-entry-keeper/internal/collection"
	"github.com/MKhiriev/go-entry-keeper/internal/service"
)

// isRefusal reports whether err means the session did not run the operation.
func isRefusal(err error) bool {
	return errors.Is(err, service.ErrBusy) ||
		errors.Is(err, service.ErrUncleared) ||
		errors.Is(err, service.ErrNoUserSelected) ||
		errors.Is(err, service.ErrNoMorePages)
}

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrValidation):
		return "User, title and description are required"
	case errors.Is(err, collection.ErrNotFound):
		return "The entry is not loaded anymore, reload the list"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Server is unavailable"
	}

	return err.Error()
}
