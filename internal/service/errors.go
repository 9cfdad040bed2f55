package service

import "errors"

var (
	// ErrValidation marks input rejected before it reaches storage or the
	// backend. The wrapped error names the offending field.
	ErrValidation = errors.New("validation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
