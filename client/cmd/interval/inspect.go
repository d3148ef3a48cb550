package interval

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

type inspectCommand struct {
	logger log.Logger

	start         string
	end           string
	startExcluded bool
	endExcluded   bool
}

// NewInspectCommand initializes command to inspect an interval built from
// its boundaries
func NewInspectCommand() *cobra.Command {
	inspect := &inspectCommand{
		logger: logger.NewClientLogger(),
	}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Build an interval from boundaries and describe it",
		Long: heredoc.Doc(`
			Build an interval from its boundaries and print its shape, predicates,
			closure, interior and complement. Omitting a boundary extends the
			interval to infinity on that side; omitting both yields the entire
			timeline. Boundaries are UTC ISO-8601 timestamps.
		`),
		Example: heredoc.Doc(`
			$ chrono interval inspect --start 2024-01-01T00:00:00Z --end 2024-01-02T00:00:00Z
			$ chrono interval inspect --start 2024-01-01T00:00:00Z --end 2024-01-02T00:00:00Z --end-excluded
			$ chrono interval inspect --end 2024-06-01T00:00:00Z
		`),
		RunE: inspect.RunE,
	}

	inspect.injectFlags(cmd)

	return cmd
}

func (c *inspectCommand) injectFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&c.start, "start", "", "Start boundary, UTC ISO-8601; empty means -infinity")
	cmd.Flags().StringVar(&c.end, "end", "", "End boundary, UTC ISO-8601; empty means +infinity")
	cmd.Flags().BoolVar(&c.startExcluded, "start-excluded", false, "Exclude the start boundary")
	cmd.Flags().BoolVar(&c.endExcluded, "end-excluded", false, "Exclude the end boundary")
}

func (c *inspectCommand) RunE(_ *cobra.Command, _ []string) error {
	iv, err := c.buildInterval()
	if err != nil {
		return err
	}

	c.logger.Info(color.GreenString(iv.String()))
	c.logger.Info(c.describe(iv))
	return nil
}

func (c *inspectCommand) buildInterval() (timeline.Interval, error) {
	var start, end *timeline.Instant
	var startIncluded, endIncluded *bool

	if c.start != "" {
		moment, err := timeline.ParseUTC(c.start)
		if err != nil {
			return timeline.Interval{}, err
		}
		included := !c.startExcluded
		start, startIncluded = &moment, &included
	}
	if c.end != "" {
		moment, err := timeline.ParseUTC(c.end)
		if err != nil {
			return timeline.Interval{}, err
		}
		included := !c.endExcluded
		end, endIncluded = &moment, &included
	}

	return timeline.FromBoundaries(start, end, startIncluded, endIncluded)
}

func (c *inspectCommand) describe(iv timeline.Interval) string {
	buff := &bytes.Buffer{}
	table := tablewriter.NewWriter(buff)
	table.SetBorder(false)
	table.SetHeader([]string{"Property", "Value"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.Append([]string{"Kind", iv.Kind().String()})
	table.Append([]string{"Bounded", strconv.FormatBool(iv.IsBounded())})
	table.Append([]string{"Left bounded", strconv.FormatBool(iv.IsLeftBounded())})
	table.Append([]string{"Right bounded", strconv.FormatBool(iv.IsRightBounded())})
	table.Append([]string{"Open", strconv.FormatBool(iv.IsOpen())})
	table.Append([]string{"Closed", strconv.FormatBool(iv.IsClosed())})
	table.Append([]string{"Duration", formatDuration(iv)})
	table.Append([]string{"Closure", iv.Closure().String()})
	table.Append([]string{"Interior", iv.Interior().String()})
	table.Append([]string{"Complement", timeline.Union(iv).Complement().String()})
	table.Render()

	return buff.String()
}

func formatDuration(iv timeline.Interval) string {
	d, ok := iv.Duration()
	if !ok {
		return "unbounded"
	}
	return fmt.Sprintf("%v", d)
}
