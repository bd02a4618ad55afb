// Package logging provides structured logging using Go's standard library
// log/slog, in JSON format, plus helpers for rendering resolved
// configuration values with masked properties redacted.
package logging
