package config

import "errors"

// Validation errors returned when the merged configuration is incomplete or
// invalid for the process that loads it.
var (
	// ErrInvalidServerConfigs indicates an empty listen address or a
	// non-positive request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN or an unsupported driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a negative page size).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, a non-positive request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrEndpointNotConfigured is returned to the client when no entry
	// server URL was provided by any source.
	ErrEndpointNotConfigured = errors.New("entry server endpoint is not configured")
)
