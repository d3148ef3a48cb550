package timeset

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/MakeNowJust/heredoc"
	"github.com/fatih/color"
	"github.com/goto/salt/log"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/goto/chrono/client/cmd/internal/logger"
	"github.com/goto/chrono/core/timeline"
)

type unionCommand struct {
	logger log.Logger
}

// NewUnionCommand initializes command to union intervals into a canonical
// time set
func NewUnionCommand() *cobra.Command {
	union := &unionCommand{
		logger: logger.NewClientLogger(),
	}

	cmd := &cobra.Command{
		Use:   "union <interval>...",
		Short: "Union intervals into a canonical time set",
		Long: heredoc.Doc(`
			Union the given intervals and print the canonical components: sorted,
			merged where touching, separated by genuine gaps. Intervals use the
			bracket notation with UTC ISO-8601 bounds; an omitted bound extends to
			infinity, "{moment}" is a point.
		`),
		Example: heredoc.Doc(`
			$ chrono timeset union "[2024-01-01T00:00Z,2024-01-02T00:00Z]" "[2024-01-02T00:00Z,2024-01-03T00:00Z)"
			$ chrono timeset union "{2024-01-01T12:00Z}" "(2024-06-01T00:00Z,)"
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: union.RunE,
	}

	return cmd
}

func (c *unionCommand) RunE(_ *cobra.Command, args []string) error {
	intervals := make([]timeline.Interval, 0, len(args))
	for _, arg := range args {
		iv, err := parseInterval(arg)
		if err != nil {
			return err
		}
		intervals = append(intervals, iv)
	}

	set := timeline.Union(intervals...)
	c.logger.Info(color.GreenString(set.String()))
	c.logger.Info(c.describe(set))
	return nil
}

func (c *unionCommand) describe(set timeline.TimeSet) string {
	buff := &bytes.Buffer{}
	table := tablewriter.NewWriter(buff)
	table.SetBorder(false)
	table.SetHeader([]string{"#", "Component", "Duration"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for idx, component := range set.Components() {
		duration := "unbounded"
		if d, ok := component.Duration(); ok {
			duration = fmt.Sprintf("%v", d)
		}
		table.Append([]string{strconv.Itoa(idx + 1), component.String(), duration})
	}
	table.Render()

	total := "unbounded"
	if d, ok := set.Duration(); ok {
		total = fmt.Sprintf("%v", d)
	}
	fmt.Fprintf(buff, "Total duration: %s\n", total)

	return buff.String()
}
