package toml

import (
	"fmt"

	"github.com/pbarbashov/keycloak/config/source"

	"github.com/BurntSushi/toml"
)

// Load parses a TOML document and flattens it into dotted property keys.
func Load(data []byte) (map[string]string, error) {
	if len(data) == 0 {
		return nil, source.ErrEmptyData
	}

	var values map[string]any

	err := toml.Unmarshal(data, &values)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return source.Flatten(values), nil
}

// LoadFile reads and flattens a TOML configuration file.
func LoadFile(fpath string) (map[string]string, error) {
	data, err := source.ReadFile(fpath)
	if err != nil {
		return nil, err
	}

	return Load(data)
}
