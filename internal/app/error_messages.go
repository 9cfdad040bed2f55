// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// entry server handlers and the entry client.
//
// All Msg* constants are human-readable message strings that are written into
// the `message` field of failure bodies. The client compares against the same
// constants, so wording must stay in sync on both sides.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	MsgNoUserIDProvided = "no user ID provided"

	// MsgMalformedCursor is returned when exactly one of the cursor query
	// parameters is present or a value cannot be parsed.
	MsgMalformedCursor = "malformed cursor"

	MsgEntryNotFound = "entry not found"

	MsgEntryAlreadyExists = "entry already exists"

	MsgInternalServerError = "internal server error"

	// Generic client-side messages shown when the backend sent none.
	MsgFetchFailed    = "failed to fetch entries"
	MsgMutationFailed = "failed to save changes"
)
