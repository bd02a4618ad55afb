// Package source provides loaders that turn raw configuration inputs into
// flat maps of dotted property keys, suitable for store layers.
//
// The format-specific loaders live in subpackages (source/yaml, source/toml,
// source/env); this package holds the shared file reading and document
// flattening helpers.
package source
