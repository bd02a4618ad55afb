package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/pbarbashov/keycloak/config"
)

// MaskedValue replaces the value of masked properties when rendered.
const MaskedValue = "*******"

// LoggerConfig holds configuration for the logger.
type LoggerConfig struct {
	Level string
}

// NewLogger creates a new slog.Logger with JSON handler and the specified output.
// The level is parsed from the config; defaults to INFO if invalid or empty.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	level := parseLevel(config.Level)
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource:   false,
		Level:       level,
		ReplaceAttr: nil,
	})

	return slog.New(handler)
}

// PropertyAttr renders a resolved value as a log attribute keyed by its
// property name, redacting the value when the owning mapper is masked.
// A nil value renders as the empty string.
func PropertyAttr(mapper *config.Mapper, value *config.Value) slog.Attr {
	name := mapper.To()
	if value != nil && value.Name != "" {
		name = value.Name
	}

	if value == nil {
		return slog.String(name, "")
	}

	if mapper.Masked() {
		return slog.String(name, MaskedValue)
	}

	return slog.String(name, value.Value)
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
