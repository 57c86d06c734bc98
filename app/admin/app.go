// Package admin wires the administrative interface's route table:
// products, customers, invoices and login.
package admin

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/viewrouter/core/config"
	"github.com/dmitrymomot/viewrouter/core/logger"
	"github.com/dmitrymomot/viewrouter/core/registry"
	"github.com/dmitrymomot/viewrouter/core/routefile"
)

// App holds the configured registry for the admin interface.
type App struct {
	config   Config
	logger   *slog.Logger
	output   io.Writer
	registry *registry.Registry[View]
}

// AppOption configures an App.
type AppOption func(*App) error

// NewApp loads Config from the environment and builds the registry.
func NewApp(opts ...AppOption) (*App, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return NewAppWithConfig(cfg, opts...)
}

// NewAppWithConfig builds the App from an explicit configuration.
func NewAppWithConfig(cfg Config, opts ...AppOption) (*App, error) {
	app := &App{config: cfg}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.logger == nil {
		app.logger = newLogger(app.config, app.output)
	}

	defs, base, err := app.definitions()
	if err != nil {
		return nil, err
	}

	app.registry = registry.New(
		registry.WithLogger[View](app.logger),
		registry.WithBasePath[View](base),
		registry.WithStrictSlash[View](app.config.StrictSlash),
	)
	if err := app.registry.Register(defs); err != nil {
		return nil, fmt.Errorf("register admin routes: %w", err)
	}

	app.logger.Info("route table loaded",
		logger.Component("admin"),
		logger.Count("routes", app.registry.Len()),
		logger.Key("routes_file", nonEmpty(app.config.RoutesFile)),
	)
	return app, nil
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) AppOption {
	return func(app *App) error {
		app.logger = l
		return nil
	}
}

// WithOutput sets where the default logger writes.
func WithOutput(w io.Writer) AppOption {
	return func(app *App) error {
		app.output = w
		return nil
	}
}

// WithRoutesFile overrides Config.RoutesFile.
func WithRoutesFile(path string) AppOption {
	return func(app *App) error {
		app.config.RoutesFile = path
		return nil
	}
}

// Config returns the effective configuration.
func (app *App) Config() Config { return app.config }

// Logger returns the app logger.
func (app *App) Logger() *slog.Logger { return app.logger }

// Registry returns the populated route registry.
func (app *App) Registry() *registry.Registry[View] { return app.registry }

// definitions returns the route table and the base path to serve it under.
// A routes file base path takes precedence over Config.BasePath.
func (app *App) definitions() ([]registry.Definition[View], string, error) {
	if app.config.RoutesFile == "" {
		return Definitions(), app.config.BasePath, nil
	}

	file, err := routefile.Load(app.config.RoutesFile)
	if err != nil {
		return nil, "", err
	}

	entries := file.Definitions()
	defs := make([]registry.Definition[View], 0, len(entries))
	for _, d := range entries {
		defs = append(defs, registry.Definition[View]{Path: d.Path, Name: d.Name, Handle: View(d.Handle)})
	}

	base := app.config.BasePath
	if file.Base != "" {
		base = file.Base
	}
	return defs, base, nil
}

func newLogger(cfg Config, output io.Writer) *slog.Logger {
	opts := []logger.Option{
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithAttr(slog.String("service", cfg.AppName), slog.String("env", cfg.Env)),
		logger.WithOutput(output),
	}
	if cfg.LogFormat == "json" {
		opts = append(opts, logger.WithJSONFormatter())
	}
	return logger.New(opts...)
}

func nonEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
