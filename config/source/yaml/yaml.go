package yaml

import (
	"fmt"

	"github.com/pbarbashov/keycloak/config/source"

	"github.com/goccy/go-yaml"
)

// Load parses a YAML document and flattens it into dotted property keys.
// The top level must be a mapping.
func Load(data []byte) (map[string]string, error) {
	if len(data) == 0 {
		return nil, source.ErrEmptyData
	}

	var values map[string]any

	err := yaml.Unmarshal(data, &values)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	if values == nil {
		return nil, source.ErrNotMapping
	}

	return source.Flatten(values), nil
}

// LoadFile reads and flattens a YAML configuration file.
func LoadFile(fpath string) (map[string]string, error) {
	data, err := source.ReadFile(fpath)
	if err != nil {
		return nil, err
	}

	return Load(data)
}
