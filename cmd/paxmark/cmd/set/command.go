// Package set implements the set command: reconcile a target's stored
// marks against the requested per-mark changes and write the result back.
package set

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/edera-dev/paxmark/pkg/marks"
	"github.com/edera-dev/paxmark/pkg/xattrs"
)

// AppContext defines the interface that the set command needs from the app.
type AppContext interface {
	Store() *xattrs.Store
	Logger() *zerolog.Logger
}

// NewCommand creates the set command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	reqs := make(map[marks.Mark]*marks.Request, len(marks.Table))

	cmd := &cobra.Command{
		Use:   "set TARGET...",
		Short: "Reconcile and write security marks on binaries",
		Long: `Set updates the security marks stored on one or more binaries.

The existing mark string is read first and reconciled against the
requested changes: marks you enable or disable are forced to that state,
everything else keeps its current state. Duplicate or unrecognized
characters in the stored value are discarded with a warning, and marks
missing from it are restored. A binary without stored marks starts from
the all-enabled default.`,
		Example: `  paxmark set -m /usr/bin/app              # disable MPROTECT
  paxmark set -P -E /usr/bin/app           # enable PAGEEXEC and EMUTRAMP
  paxmark set --disable-segmexec a.out b.out`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(app, resolve(reqs), args)
		},
	}

	for _, info := range marks.Table {
		req := &marks.Request{}
		reqs[info.Mark] = req

		lower := strings.ToLower(info.Name)
		cmd.Flags().BoolVarP(&req.Enable, "enable-"+lower, info.Mark.Letter(), false, "enable "+info.Name)
		cmd.Flags().BoolVarP(&req.Disable, "disable-"+lower, strings.ToLower(info.Mark.Letter()), false, "disable "+info.Name)
	}

	return cmd
}

// resolve dereferences the flag-bound requests into a directive set.
func resolve(reqs map[marks.Mark]*marks.Request) marks.Set {
	byValue := make(map[marks.Mark]marks.Request, len(reqs))
	for mark, req := range reqs {
		byValue[mark] = *req
	}
	return marks.BuildDirectives(byValue)
}

// run reconciles and writes marks for every target. Targets are processed
// independently: a failure on one is logged and counted but does not stop
// the others.
func run(app AppContext, directives marks.Set, targets []string) error {
	log := app.Logger()
	store := app.Store()

	var failed int
	for _, target := range targets {
		raw, present, err := store.Read(target)
		if err != nil {
			// An unreadable value gets the same treatment as a missing one;
			// if the target is truly broken the write below will say so.
			log.Warn().Err(err).Str("target", target).Msg("Could not read stored marks, assuming all-enabled default")
			present = false
		}
		if !present {
			raw = marks.AllEnabled()
			log.Debug().Str("target", target).Msg("No stored marks, starting from all-enabled default")
		}

		canonical, valid := marks.Reconcile(raw, directives)
		if !valid {
			log.Warn().
				Str("target", target).
				Str("stored", raw).
				Str("resolved", canonical).
				Msg("Stored marks were malformed, using first valid occurrence of each mark")
		}

		if err := store.Write(target, canonical); err != nil {
			// Still report the computed value so the user can apply it by hand.
			log.Error().Err(err).
				Str("target", target).
				Str("marks", canonical).
				Msg("Failed to write marks")
			failed++
			continue
		}

		log.Info().
			Str("target", target).
			Str("marks", canonical).
			Msg("Marks updated")
	}

	if failed > 0 {
		return fmt.Errorf("failed to update %d of %d target(s)", failed, len(targets))
	}
	return nil
}
