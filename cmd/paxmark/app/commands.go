package app

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/edera-dev/paxmark/cmd/paxmark/cmd/clear"
	"github.com/edera-dev/paxmark/cmd/paxmark/cmd/set"
	"github.com/edera-dev/paxmark/cmd/paxmark/cmd/show"
)

// CreateSetCommand creates the set command with app dependencies.
func (a *App) CreateSetCommand() *cobra.Command {
	return set.NewCommand(a)
}

// CreateShowCommand creates the show command with app dependencies.
func (a *App) CreateShowCommand() *cobra.Command {
	return show.NewCommand(a)
}

// CreateClearCommand creates the clear command with app dependencies.
func (a *App) CreateClearCommand() *cobra.Command {
	return clear.NewCommand(a)
}

// CreateVersionCommand creates the version command.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("paxmark %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit: %s\n", a.commit)
				cmd.Printf("  built:  %s\n", a.date)
			}
		},
	}
}

// CreateManCommand creates the man command.
func (a *App) CreateManCommand() *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  "Generate man page",
		Hidden: true, // Hide from help output since it's mainly for internal use
		RunE: func(cmd *cobra.Command, _ []string) error {
			header := &doc.GenManHeader{
				Title:   "PAXMARK",
				Section: "1",
				Source:  "paxmark",
				Manual:  "paxmark Manual",
			}
			return doc.GenMan(cmd.Root(), header, os.Stdout)
		},
	}
}
