// Package app provides the application context and dependency management
// for the paxmark CLI. It centralizes configuration, logging, and the
// attribute store behind a single injectable struct.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/edera-dev/paxmark/internal/appcontext"
	"github.com/edera-dev/paxmark/pkg/errors"
	"github.com/edera-dev/paxmark/pkg/xattrs"
)

// App represents the paxmark application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Attribute store (lazy-initialized, singleton)
	mu    sync.Mutex
	store *xattrs.Store
}

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// New creates a new App instance with the given version information.
// The app is initialized with default configuration that can be
// customized using functional options.
func New(version, commit, date string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("app", "failed to load configuration", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Store returns the attribute store, creating it lazily so that flag and
// config overrides of the attribute name are already applied.
func (a *App) Store() *xattrs.Store {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.store == nil {
		a.store = xattrs.New(xattrs.WithAttribute(a.config.Attr))
	}
	return a.store
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithStore sets a custom attribute store (useful for testing).
func WithStore(store *xattrs.Store) Option {
	return func(a *App) error {
		a.store = store
		return nil
	}
}
