package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for configuration files.
// The same keys are used in JSON and YAML.
type StructuredJSONConfig struct {
	App struct {
		PageSize int    `json:"page_size" yaml:"page_size"`
		Version  string `json:"version" yaml:"version"`
		UserID   string `json:"user_id" yaml:"user_id"`
		LogFile  string `json:"log_file" yaml:"log_file"`

		SortColumn    string `json:"sort_column" yaml:"sort_column"`
		SortDirection string `json:"sort_direction" yaml:"sort_direction"`
	} `json:"app,omitempty" yaml:"app"`

	Storage struct {
		DB struct {
			DSN    string `json:"dsn" yaml:"dsn"`
			Driver string `json:"driver" yaml:"driver"`
		} `json:"db,omitempty" yaml:"db"`
	} `json:"storage,omitempty" yaml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server,omitempty" yaml:"server"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter,omitempty" yaml:"adapter"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return jsonCfg.toStructured(), nil
}

// parseConfigFile picks the decoder by extension: .yaml and .yml are read as
// YAML, anything else as JSON.
func parseConfigFile(path string) (*StructuredConfig, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAML(path)
	default:
		return parseJSON(path)
	}
}

func (jsonCfg StructuredJSONConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PageSize: jsonCfg.App.PageSize,
			Version:  jsonCfg.App.Version,
			UserID:   jsonCfg.App.UserID,
			LogFile:  jsonCfg.App.LogFile,

			SortColumn:    jsonCfg.App.SortColumn,
			SortDirection: jsonCfg.App.SortDirection,
		},
		Storage: Storage{
			DB: DB{
				DSN:    jsonCfg.Storage.DB.DSN,
				Driver: jsonCfg.Storage.DB.Driver,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
	}
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
