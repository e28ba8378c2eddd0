// Package show implements the show command: read a target's stored marks
// and render each mark's state.
package show

import (
	"fmt"
	"unicode"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/edera-dev/paxmark/internal/cmd/output"
	"github.com/edera-dev/paxmark/pkg/marks"
	"github.com/edera-dev/paxmark/pkg/xattrs"
)

// AppContext defines the interface that the show command needs from the app.
type AppContext interface {
	Store() *xattrs.Store
	Logger() *zerolog.Logger
	OutputFormat() string
}

// MarkState describes one mark's resolved state on a target.
type MarkState struct {
	Name    string `json:"name" yaml:"name"`
	Letter  string `json:"letter" yaml:"letter"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
}

// Report describes all marks on a single target.
type Report struct {
	Target string      `json:"target" yaml:"target"`
	Stored string      `json:"stored,omitempty" yaml:"stored,omitempty"`
	Valid  bool        `json:"valid" yaml:"valid"`
	Marks  []MarkState `json:"marks" yaml:"marks"`
}

// NewCommand creates the show command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show TARGET...",
		Short: "Show security marks stored on binaries",
		Long: `Show reads the mark string stored on each target and displays the
resolved state of every mark. A target without stored marks shows the
all-enabled default. Malformed stored values are resolved the same way
set resolves them and reported with a warning.`,
		Example: `  paxmark show /usr/bin/app
  paxmark show -o json /usr/bin/app
  paxmark show a.out b.out`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, app, args)
		},
	}
}

func run(cmd *cobra.Command, app AppContext, targets []string) error {
	log := app.Logger()
	store := app.Store()

	format, err := output.ParseFormat(app.OutputFormat())
	if err != nil {
		return err
	}
	if format == "" {
		format = output.DetectFormat("")
	}

	var failed int
	reports := make([]Report, 0, len(targets))
	for _, target := range targets {
		raw, present, err := store.Read(target)
		if err != nil {
			log.Error().Err(err).Str("target", target).Msg("Failed to read marks")
			failed++
			continue
		}
		if !present {
			raw = marks.AllEnabled()
			log.Debug().Str("target", target).Msg("No stored marks, showing all-enabled default")
		}

		report := buildReport(target, raw)
		if present {
			report.Stored = raw
		}
		if !report.Valid {
			log.Warn().
				Str("target", target).
				Str("stored", raw).
				Msg("Stored marks are malformed")
		}
		reports = append(reports, report)
	}

	if len(reports) > 0 {
		formatter := output.NewFormatter(format)
		data := any(reports)
		if format == output.FormatTable {
			data = toTableData(reports)
		}
		if err := formatter.Format(cmd.OutOrStdout(), data); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("failed to read %d of %d target(s)", failed, len(targets))
	}
	return nil
}

// buildReport canonicalizes raw without changing any state and records
// each mark's resolved letter and enabled flag.
func buildReport(target, raw string) Report {
	canonical, valid := marks.Reconcile(raw, marks.KeepAll())

	report := Report{
		Target: target,
		Valid:  valid,
		Marks:  make([]MarkState, 0, len(marks.Table)),
	}
	for _, r := range canonical {
		mark := marks.Mark(unicode.ToUpper(r))
		report.Marks = append(report.Marks, MarkState{
			Name:    mark.Name(),
			Letter:  string(r),
			Enabled: unicode.IsUpper(r),
		})
	}
	return report
}

// toTableData flattens the reports into rows, one per mark per target.
func toTableData(reports []Report) output.Data {
	data := output.Data{
		Headers: []string{"TARGET", "MARK", "LETTER", "STATE", "VALID"},
	}
	for _, report := range reports {
		validity := "yes"
		if !report.Valid {
			validity = "no"
		}
		for _, state := range report.Marks {
			stateText := "disabled"
			if state.Enabled {
				stateText = "enabled"
			}
			data.Rows = append(data.Rows, []string{
				report.Target,
				state.Name,
				state.Letter,
				stateText,
				validity,
			})
		}
	}
	return data
}
