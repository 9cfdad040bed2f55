package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// UserID is the user scope opened on start. Empty asks the user.
	UserID string
	// LogFile is the client log destination.
	LogFile string
	// SortColumn and SortDirection name the initial display order.
	SortColumn    string
	SortDirection string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the entry server base URL.
	HTTPAddress string
	// RequestTimeout is the timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientConfig is the client configuration assembled from [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
}

// GetClientConfig builds and validates the client view of the merged
// structured configuration. Server-only fields are ignored.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := loadStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the fields relevant to the client runtime.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			UserID:  cfg.App.UserID,
			LogFile: cfg.App.LogFile,

			SortColumn:    cfg.App.SortColumn,
			SortDirection: cfg.App.SortDirection,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}
}
