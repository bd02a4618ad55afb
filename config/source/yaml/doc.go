// Package yaml loads YAML configuration documents into flat property maps
// using goccy/go-yaml.
package yaml
