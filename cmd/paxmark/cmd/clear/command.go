// Package clear implements the clear command: remove the mark attribute
// from targets entirely.
package clear

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/edera-dev/paxmark/pkg/xattrs"
)

// AppContext defines the interface that the clear command needs from the app.
type AppContext interface {
	Store() *xattrs.Store
	Logger() *zerolog.Logger
}

// NewCommand creates the clear command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear TARGET...",
		Short: "Remove stored security marks from binaries",
		Long: `Clear deletes the mark attribute from each target. A cleared binary
behaves as if it was never marked: every feature reads as enabled.
Clearing a target that has no stored marks is not an error.`,
		Example: `  paxmark clear /usr/bin/app
  paxmark clear a.out b.out`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(app, args)
		},
	}
}

func run(app AppContext, targets []string) error {
	log := app.Logger()
	store := app.Store()

	var failed int
	for _, target := range targets {
		if err := store.Remove(target); err != nil {
			log.Error().Err(err).Str("target", target).Msg("Failed to clear marks")
			failed++
			continue
		}
		log.Info().Str("target", target).Msg("Marks cleared")
	}

	if failed > 0 {
		return fmt.Errorf("failed to clear %d of %d target(s)", failed, len(targets))
	}
	return nil
}
