package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-entry-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldID          = "id"
	FieldUserID      = "user_id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCursor      = "cursor"
	FieldLimit       = "limit"

	// FieldFieldsUpdate requires at least one non-nil field of an update.
	FieldFieldsUpdate = "fields_update"
)

// EntryValidator checks entries and entry requests. Text fields are
// considered empty when they contain only whitespace.
type EntryValidator struct {
}

func NewEntryValidator() Validator {
	return &EntryValidator{}
}

func (v *EntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Entry:
		return v.validateEntry(ctx, value, fields...)
	case *models.Entry:
		return v.validateEntry(ctx, *value, fields...)

	case models.CreateEntryRequest:
		return v.validateCreateRequest(ctx, value, fields...)
	case *models.CreateEntryRequest:
		return v.validateCreateRequest(ctx, *value, fields...)

	case models.UpdateEntryRequest:
		return v.validateUpdateRequest(ctx, value, fields...)
	case *models.UpdateEntryRequest:
		return v.validateUpdateRequest(ctx, *value, fields...)

	case models.EntriesRequest:
		return v.validateEntriesRequest(ctx, value, fields...)
	case *models.EntriesRequest:
		return v.validateEntriesRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func (v *EntryValidator) validateEntry(_ context.Context, entry models.Entry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUserID, FieldTitle, FieldDescription}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if isBlank(entry.ID) {
				return ErrInvalidID
			}
		case FieldUserID:
			if isBlank(entry.UserID) {
				return ErrInvalidUserID
			}
		case FieldTitle:
			if isBlank(entry.Title) {
				return ErrEmptyTitle
			}
		case FieldDescription:
			if isBlank(entry.Description) {
				return ErrEmptyDescription
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EntryValidator) validateCreateRequest(_ context.Context, request models.CreateEntryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTitle, FieldDescription}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if isBlank(request.UserID) {
				return ErrInvalidUserID
			}
		case FieldTitle:
			if isBlank(request.Title) {
				return ErrEmptyTitle
			}
		case FieldDescription:
			if isBlank(request.Description) {
				return ErrEmptyDescription
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUpdateRequest checks only the fields that are present; an absent
// field keeps its stored value.
func (v *EntryValidator) validateUpdateRequest(_ context.Context, request models.UpdateEntryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFieldsUpdate, FieldTitle, FieldDescription}
	}

	for _, f := range fields {
		switch f {
		case FieldFieldsUpdate:
			if request.Title == nil && request.Description == nil {
				return ErrNoFieldsToUpdate
			}
		case FieldTitle:
			if request.Title != nil && isBlank(*request.Title) {
				return ErrEmptyTitle
			}
		case FieldDescription:
			if request.Description != nil && isBlank(*request.Description) {
				return ErrEmptyDescription
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EntryValidator) validateEntriesRequest(_ context.Context, request models.EntriesRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldCursor, FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if isBlank(request.UserID) {
				return ErrInvalidUserID
			}
		case FieldCursor:
			if request.After != nil && (request.After.ID == "" || request.After.LastModified < 0) {
				return ErrInvalidCursor
			}
		case FieldLimit:
			if request.Limit < 0 {
				return ErrInvalidLimit
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
