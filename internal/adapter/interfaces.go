// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the entry server.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Non-2xx answers are returned as [*ResponseError], which wraps one of the
// status sentinels in errors.go so that callers can use [errors.Is] (e.g.
// [ErrNotFound] for 404) and [Message] to read the backend `message`.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-entry-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the entry
// server. One call is one request: implementations never retry.
type ServerAdapter interface {
	// GetEntries requests one page of req.UserID's entries, starting right
	// after req.After (nil starts from the top).
	GetEntries(ctx context.Context, req models.EntriesRequest) (models.EntriesPage, error)

	// GetEntry fetches a single entry by id.
	GetEntry(ctx context.Context, id string) (models.Entry, error)

	// CreateEntry creates an entry and returns it as stored, with the
	// backend-assigned ID and LastModified.
	CreateEntry(ctx context.Context, req models.CreateEntryRequest) (models.Entry, error)

	// UpdateEntry changes title and/or description of entry id and returns
	// the stored result.
	UpdateEntry(ctx context.Context, id string, req models.UpdateEntryRequest) (models.Entry, error)

	// DeleteEntry removes entry id.
	DeleteEntry(ctx context.Context, id string) error
}
