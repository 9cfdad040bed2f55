// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pagination converts the opaque scan cursor to and from the query
// parameters of GET /entries. It is shared by the client adapter (encoding)
// and the server handler (decoding).
package pagination

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-entry-keeper/models"
)

// Query parameter names of the cursor fields.
const (
	ParamID           = "id"
	ParamLastModified = "last_modified"
)

// ErrMalformedCursor is returned when the cursor parameters are incomplete or
// cannot be parsed. Pagination must restart from a nil cursor.
var ErrMalformedCursor = errors.New("malformed cursor")

// EncodeCursor returns the query parameters that carry c.
// A nil cursor encodes to empty values.
func EncodeCursor(c *models.Cursor) url.Values {
	values := url.Values{}
	if c == nil {
		return values
	}

	values.Set(ParamID, c.ID)
	values.Set(ParamLastModified, strconv.FormatInt(c.LastModified, 10))
	return values
}

// DecodeCursor reads a cursor from values. It returns nil and no error when
// neither cursor parameter is present.
func DecodeCursor(values url.Values) (*models.Cursor, error) {
	_, hasID := values[ParamID]
	_, hasLastModified := values[ParamLastModified]

	switch {
	case !hasID && !hasLastModified:
		return nil, nil
	case !hasID:
		return nil, fmt.Errorf("%w: %s without %s", ErrMalformedCursor, ParamLastModified, ParamID)
	case !hasLastModified:
		return nil, fmt.Errorf("%w: %s without %s", ErrMalformedCursor, ParamID, ParamLastModified)
	}

	id := values.Get(ParamID)
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: empty %s", ErrMalformedCursor, ParamID)
	}

	lastModified, err := strconv.ParseInt(values.Get(ParamLastModified), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedCursor, ParamLastModified, err)
	}
	if lastModified < 0 {
		return nil, fmt.Errorf("%w: negative %s", ErrMalformedCursor, ParamLastModified)
	}

	return &models.Cursor{ID: id, LastModified: lastModified}, nil
}
