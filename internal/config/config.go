// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Storage drivers accepted in [DB.Driver].
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings shared by server and client.
	App App `envPrefix:"APP_"`

	// Storage holds the server's persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listening address and timeouts of the entry server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the backend endpoint.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// PageSize is the maximum number of entries the server returns per page.
	// Env: APP_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// Version is reported by GET /version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// UserID is the user scope the client opens on start. Optional.
	// Env: APP_USER_ID
	UserID string `env:"USER_ID"`

	// LogFile is where the client writes its logs.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// SortColumn and SortDirection set the client's initial display order
	// ("title", "description", "lastModified"; "ascending", "descending").
	// Empty keeps the newest entries first.
	// Env: APP_SORT_COLUMN, APP_SORT_DIRECTION
	SortColumn    string `env:"SORT_COLUMN"`
	SortDirection string `env:"SORT_DIRECTION"`
}

// Storage groups the configuration of the server storage backend.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the entries table.
type DB struct {
	// DSN is the connection string: a PostgreSQL URI for the pgx driver or a
	// file path for sqlite3.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Driver selects the database/sql driver: "pgx" or "sqlite3".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling time of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's outbound transport settings.
type Adapter struct {
	// HTTPAddress is the base URL of the entry server. There is no default:
	// an empty value leaves the client unconfigured.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// defaultConfig holds the lowest-priority values.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PageSize: 25,
			Version:  "dev",
		},
		Storage: Storage{
			DB: DB{Driver: DriverPostgres},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			RequestTimeout: 10 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges and validates the server configuration.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := loadStructuredConfig()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func loadStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(commandLineArgs()).
		withJSON().
		build()
}
