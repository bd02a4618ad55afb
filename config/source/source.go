package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathIsDirectory is returned when a path points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// ErrNotMapping is returned when a document's top level is not a mapping.
var ErrNotMapping = errors.New("top-level document is not a mapping")

// ReadFile reads a configuration file after cleaning and validating the path.
func ReadFile(fpath string) ([]byte, error) {
	cleanPath := filepath.Clean(fpath)

	stat, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
	}

	return data, nil
}

// Flatten converts a nested document into a flat map of dotted property
// keys. Nested mappings contribute path segments, sequence values are joined
// with commas, and scalar leaves are rendered with their natural string form.
func Flatten(values map[string]any) map[string]string {
	flat := map[string]string{}
	flattenInto(flat, "", values)

	return flat
}

func flattenInto(flat map[string]string, prefix string, values map[string]any) {
	for key, value := range values {
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}

		nested, ok := value.(map[string]any)
		if ok {
			flattenInto(flat, name, nested)

			continue
		}

		flat[name] = render(value)
	}
}

func render(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case []any:
		parts := make([]string, 0, len(typed))

		for _, item := range typed {
			parts = append(parts, render(item))
		}

		return strings.Join(parts, ",")
	default:
		return fmt.Sprintf("%v", typed)
	}
}
