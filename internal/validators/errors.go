package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID        = errors.New("entry id is required")
	ErrInvalidUserID    = errors.New("user id is required")
	ErrEmptyTitle       = errors.New("title is required")
	ErrEmptyDescription = errors.New("description is required")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
	ErrInvalidCursor    = errors.New("cursor must carry an id and a non-negative last_modified")
	ErrInvalidLimit     = errors.New("limit must not be negative")
)
