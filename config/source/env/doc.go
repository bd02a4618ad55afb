// Package env loads prefixed environment variables into flat property maps.
package env
