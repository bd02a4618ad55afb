package store

import (
	"github.com/pbarbashov/keycloak/config"
)

// Layer is one named source of raw property values. The name identifies the
// layer in resolved values, so callers can tell where a value came from.
type Layer struct {
	name   string
	values map[string]string
}

// NewLayer builds a layer from a flat map of dotted property keys. The map is
// copied; later mutation of the argument does not affect the layer.
func NewLayer(name string, values map[string]string) Layer {
	copied := make(map[string]string, len(values))

	for key, value := range values {
		copied[key] = value
	}

	return Layer{name: name, values: copied}
}

// Defaults builds the built-in defaults layer. Values from it are treated as
// weaker than any explicit setting during resolution.
func Defaults(values map[string]string) Layer {
	return NewLayer(config.SourceDefaultValues, values)
}

// Name returns the layer name.
func (l Layer) Name() string {
	return l.name
}

// Store is an ordered collection of layers implementing config.Context.
// Layers are consulted highest precedence first; the defaults layer always
// sits below every other layer. A Store is immutable after construction and
// safe for concurrent readers.
type Store struct {
	layers []Layer
}

// NewStore builds a store from layers given in precedence order, highest
// first. Any defaults layers are sunk to the bottom regardless of where they
// appear in the arguments.
func NewStore(layers ...Layer) *Store {
	ordered := make([]Layer, 0, len(layers))

	var defaults []Layer

	for _, layer := range layers {
		if layer.name == config.SourceDefaultValues {
			defaults = append(defaults, layer)

			continue
		}

		ordered = append(ordered, layer)
	}

	return &Store{layers: append(ordered, defaults...)}
}

// Lookup returns the value for key from the highest-precedence layer that has
// it, or nil when no layer does.
func (s *Store) Lookup(key string) *config.Value {
	for _, layer := range s.layers {
		value, ok := layer.values[key]
		if !ok {
			continue
		}

		return &config.Value{Name: key, Value: value, Source: layer.name}
	}

	return nil
}

// Keys returns every distinct property key across all layers, unordered.
func (s *Store) Keys() []string {
	seen := map[string]struct{}{}

	var keys []string

	for _, layer := range s.layers {
		for key := range layer.values {
			if _, ok := seen[key]; ok {
				continue
			}

			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}

	return keys
}
