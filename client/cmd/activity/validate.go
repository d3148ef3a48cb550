package activity

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/log"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	"github.com/goto/chrono/client/cmd/internal/logger"
	"github.com/goto/chrono/config"
	"github.com/goto/chrono/core/activity"
	"github.com/goto/chrono/internal/errors"
)

type validateCommand struct {
	logger log.Logger

	configFilePath string
	documentPath   string
}

// NewValidateCommand initializes command to validate an activity document
func NewValidateCommand() *cobra.Command {
	validate := &validateCommand{
		logger: logger.NewClientLogger(),
	}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate an activity hierarchy document",
		Long: heredoc.Doc(`
			Load a YAML activity document, validate slugs, parent references and
			acyclicity, and print the resulting hierarchy.
		`),
		Example: "chrono activity validate -f activities.yaml",
		RunE:    validate.RunE,
	}

	validate.injectFlags(cmd)

	return cmd
}

func (c *validateCommand) injectFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&c.documentPath, "file", "f", "", "Path of the activity document")
	cmd.Flags().StringVarP(&c.configFilePath, "config", "c", config.EmptyPath, "File path for client configuration")
}

func (c *validateCommand) RunE(_ *cobra.Command, _ []string) error {
	path, err := c.resolveDocumentPath()
	if err != nil {
		return err
	}

	hierarchy, err := activity.Load(path)
	if err != nil {
		return err
	}

	c.logger.Info(fmt.Sprintf("%s is valid: %d activities", path, hierarchy.Count()))
	c.logger.Info(renderTree(hierarchy))
	return nil
}

func (c *validateCommand) resolveDocumentPath() (string, error) {
	if c.documentPath != "" {
		return c.documentPath, nil
	}

	conf, err := config.LoadClientConfig(c.configFilePath)
	if err != nil {
		return "", err
	}
	if conf.Activity.Path == "" {
		return "", errors.InvalidArgument(activity.EntityActivity, "no activity document given; pass --file or set activity.path in the client config")
	}
	return conf.Activity.Path, nil
}

// renderTree prints the hierarchy from its roots; an activity with several
// parents appears under each of them.
func renderTree(hierarchy activity.Hierarchy) string {
	tree := treeprint.New()
	for _, root := range hierarchy.Roots() {
		branch := tree.AddBranch(label(root))
		addChildren(branch, hierarchy, root)
	}
	return tree.String()
}

func addChildren(branch treeprint.Tree, hierarchy activity.Hierarchy, parent activity.Activity) {
	for _, child := range hierarchy.Children(parent.Slug()) {
		sub := branch.AddBranch(label(child))
		addChildren(sub, hierarchy, child)
	}
}

func label(a activity.Activity) string {
	return fmt.Sprintf("%s (%s)", a.Slug(), a.Title())
}
