package interval

import (
	"github.com/spf13/cobra"
)

// NewIntervalCommand initializes the command group for single intervals
func NewIntervalCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interval",
		Short: "Work with single timeline intervals",
	}
	cmd.AddCommand(NewInspectCommand())
	return cmd
}
