package activity

import (
	"github.com/spf13/cobra"
)

// NewActivityCommand initializes the command group for activity documents
func NewActivityCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Work with activity hierarchy documents",
	}
	cmd.AddCommand(NewValidateCommand())
	return cmd
}
