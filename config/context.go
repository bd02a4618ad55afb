package config

// Context looks up raw values by fully-qualified property key, following the
// layered precedence of its own sources. A nil result means the key has no
// value anywhere; lookup failures surface as nil, never as errors.
//
// See config/store for the in-repo implementation.
type Context interface {
	Lookup(key string) *Value
}

// Transformer maps a raw value to its effective form, with read access to the
// resolution context. Returning false means "no value": the mapper falls
// through to the next source in priority order. Transformers must be pure;
// they are called concurrently without coordination.
type Transformer func(value string, ctx Context) (string, bool)
