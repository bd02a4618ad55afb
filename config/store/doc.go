// Package store implements config.Context over an ordered stack of named
// layers.
//
// Each layer is a flat map of dotted property keys loaded by one of the
// config/source packages (YAML file, TOML file, process environment) or
// built in code. Lookup walks the stack top down and reports the layer name
// alongside the value, which is what lets mappers distinguish explicitly set
// values from built-in defaults.
package store
