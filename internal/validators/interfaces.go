// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks entry payloads before they reach the backend or
// the repository. Both the server's validation wrapper and the client's
// mutation gateway use the same rules, so a request rejected locally would
// also be rejected by the server.
package validators

import "context"

// Validator validates v. When fields are given, only those fields are
// checked (see the Field* constants).
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
