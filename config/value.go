package config

import "strings"

// Namespace for property keys. Every mapped source key lives under NSPrefix;
// dependency keys are namespaced by concatenating NSRoot with the short name.
const (
	// NSRoot is the root namespace for all properties.
	NSRoot = "kc"
	// NSPrefix is the namespace prefix prepended to source keys at construction.
	NSPrefix = NSRoot + "."
)

// SourceDefaultValues is the name of the built-in defaults layer. A value
// whose Source equals this name was not explicitly set by any real source.
// The name is a contract between mappers and their Context, not configurable.
const SourceDefaultValues = "default values"

// Value is a resolved configuration value: the property name it is reported
// under, the raw string value, and the name of the layer it came from.
// The zero Source means the value was synthesized by a mapper rather than
// read from a layer.
type Value struct {
	Name   string
	Value  string
	Source string
}

// ExplicitlySet reports whether the value came from a real source layer,
// as opposed to the built-in defaults layer.
func (v *Value) ExplicitlySet() bool {
	return !strings.EqualFold(v.Source, SourceDefaultValues)
}
