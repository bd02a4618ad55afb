package keycloak

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pbarbashov/keycloak/config"
	"github.com/pbarbashov/keycloak/config/source/env"
	"github.com/pbarbashov/keycloak/config/source/toml"
	"github.com/pbarbashov/keycloak/config/source/yaml"
	"github.com/pbarbashov/keycloak/config/store"
	"github.com/pbarbashov/keycloak/logging"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// App is a configured configuration subsystem running on Fx. It assembles
// the layered store from the configured sources and supplies the store, the
// registered mappers, and a logger to the DI container.
type App struct {
	app *fx.App
}

// NewApp creates a new instance of App with Fx configured.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return &App{
		app: configure(&options),
	}
}

func configure(options *Options) *fx.App {
	logger := createLogger(options.LogLevel, os.Stderr)
	slog.SetDefault(logger)

	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(logging.LoggerConfig{Level: options.LogLevel}),
		fx.Supply(logger),
		fx.Provide(newStore(options)),
		fx.Provide(
			fx.Annotate(
				func(s *store.Store) *store.Store { return s },
				fx.As(new(config.Context)),
			),
		),
		fx.Provide(func() []*config.Mapper {
			return options.Mappers
		}),
		fx.Options(options.Modules...),
	)
}

// newStore returns an Fx-friendly constructor building the layered store
// from the configured sources: environment above files above defaults.
func newStore(options *Options) func() (*store.Store, error) {
	return func() (*store.Store, error) {
		var layers []store.Layer

		if options.UseEnv {
			layers = append(layers, store.NewLayer("env", env.Parse(os.Environ(), options.EnvPrefix)))
		}

		for _, fpath := range options.TOMLFiles {
			values, err := toml.LoadFile(fpath)
			if err != nil {
				return nil, fmt.Errorf("loading TOML layer: %w", err)
			}

			layers = append(layers, store.NewLayer("config file", values))
		}

		for _, fpath := range options.YAMLFiles {
			values, err := yaml.LoadFile(fpath)
			if err != nil {
				return nil, fmt.Errorf("loading YAML layer: %w", err)
			}

			layers = append(layers, store.NewLayer("config file", values))
		}

		if options.Defaults != nil {
			layers = append(layers, store.Defaults(options.Defaults))
		}

		return store.NewStore(layers...), nil
	}
}

func createLogger(level string, w io.Writer) *slog.Logger {
	config := logging.LoggerConfig{Level: level}

	return logging.NewLogger(config, w)
}

// Start starts the Fx application.
func (app *App) Start() error {
	if app != nil && app.app != nil {
		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("failed to start app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Run starts the application and blocks until an OS signal is received, then shuts down gracefully.
func (app *App) Run() {
	if app == nil || app.app == nil {
		slog.Error("attempted to run an uninitialized app")

		return
	}

	app.app.Run()
}

// Stop stops the Fx application gracefully.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}
