package version

import (
	"fmt"

	"github.com/goto/salt/log"
	"github.com/spf13/cobra"

	"github.com/goto/chrono/client/cmd/internal/logger"
	"github.com/goto/chrono/config"
)

type versionCommand struct {
	logger log.Logger
}

// NewVersionCommand initializes command to get version
func NewVersionCommand() *cobra.Command {
	v := &versionCommand{
		logger: logger.NewClientLogger(),
	}

	cmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the client version information",
		Example: "chrono version",
		RunE:    v.RunE,
	}

	return cmd
}

func (v *versionCommand) RunE(_ *cobra.Command, _ []string) error {
	v.logger.Info(fmt.Sprintf("chrono %s", config.BuildVersion))
	if config.BuildCommit != "" {
		v.logger.Info(fmt.Sprintf("commit: %s, built: %s", config.BuildCommit, config.BuildDate))
	}
	return nil
}
