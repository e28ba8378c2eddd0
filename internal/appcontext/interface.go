// Package appcontext provides the shared application context interface
// used by all commands. It gives subcommand packages a single narrow view
// of the app's dependencies without importing the app package itself.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/edera-dev/paxmark/pkg/xattrs"
)

// Interface defines the application context that commands need.
// The App struct from cmd/paxmark/app implements this interface,
// providing dependency injection for commands while keeping them
// testable against the Mock below.
type Interface interface {
	// Store returns the attribute store used to read and write marks.
	Store() *xattrs.Store

	// Logger returns the configured logger instance.
	// Commands should use this for all logging operations.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string
}
