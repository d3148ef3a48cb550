package cmd

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/goto/chrono/client/cmd/activity"
	"github.com/goto/chrono/client/cmd/interval"
	"github.com/goto/chrono/client/cmd/timeset"
	"github.com/goto/chrono/client/cmd/version"
)

// New constructs the root command with all subcommands registered.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "chrono <command> <subcommand> [flags]",
		Short:        "An exact algebra over the timeline",
		SilenceUsage: true,
		Long: heredoc.Doc(`
			Compose instants, intervals and disjoint unions of intervals with exact
			open/closed/unbounded boundary semantics.`),
		Example: heredoc.Doc(`
			$ chrono interval inspect --start 2024-01-01T00:00:00Z --end-excluded --end 2024-01-02T00:00:00Z
			$ chrono timeset union "[2024-01-01T00:00Z,2024-01-02T00:00Z]" "{2024-06-01T00:00Z}"
			$ chrono activity validate -f activities.yaml
		`),
		Annotations: map[string]string{
			"help:learn": heredoc.Doc(`
				Use 'chrono <command> <subcommand> --help' for more information about a command.
			`),
		},
	}

	cmd.AddCommand(
		activity.NewActivityCommand(),
		interval.NewIntervalCommand(),
		timeset.NewTimeSetCommand(),
		version.NewVersionCommand(),
	)

	return cmd
}
