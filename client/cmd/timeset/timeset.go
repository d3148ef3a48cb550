package timeset

import (
	"github.com/spf13/cobra"
)

// NewTimeSetCommand initializes the command group for time sets
func NewTimeSetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeset",
		Short: "Work with disjoint unions of timeline intervals",
	}
	cmd.AddCommand(NewUnionCommand())
	return cmd
}
