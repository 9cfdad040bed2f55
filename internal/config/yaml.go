package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

func parseYAML(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a yaml file: %w", err)
	}

	var yamlCfg StructuredJSONConfig
	if err = yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("error decoding yaml configs: %w", err)
	}

	return yamlCfg.toStructured(), nil
}

// UnmarshalYAML accepts "30s" style strings and plain nanosecond integers,
// like the JSON form.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var nanos int64
	if err := value.Decode(&nanos); err == nil {
		*d = Duration(nanos)
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}
