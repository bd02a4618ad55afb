package keycloak

import (
	"github.com/pbarbashov/keycloak/config"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	Mappers   []*config.Mapper
	Defaults  map[string]string
	YAMLFiles []string
	TOMLFiles []string
	UseEnv    bool
	EnvPrefix string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithMappers registers property mappers with the application. The mappers
// are supplied to the DI container as []*config.Mapper.
func WithMappers(mappers ...*config.Mapper) Option {
	return func(opts *Options) {
		opts.Mappers = append(opts.Mappers, mappers...)
	}
}

// WithDefaults adds the built-in "default values" layer to the store.
func WithDefaults(values map[string]string) Option {
	return func(opts *Options) {
		opts.Defaults = values
	}
}

// WithYAMLFile adds a YAML configuration file layer to the store.
// Call multiple times to layer several files, highest precedence first.
func WithYAMLFile(fpath string) Option {
	return func(opts *Options) {
		opts.YAMLFiles = append(opts.YAMLFiles, fpath)
	}
}

// WithTOMLFile adds a TOML configuration file layer to the store.
func WithTOMLFile(fpath string) Option {
	return func(opts *Options) {
		opts.TOMLFiles = append(opts.TOMLFiles, fpath)
	}
}

// WithEnv adds the process environment as the highest-precedence layer.
// An empty prefix selects the default KC_ prefix.
func WithEnv(prefix string) Option {
	return func(opts *Options) {
		opts.UseEnv = true
		opts.EnvPrefix = prefix
	}
}
