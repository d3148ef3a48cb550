package timeset

import (
	"strings"

	"github.com/goto/chrono/core/timeline"
	"github.com/goto/chrono/internal/errors"
)

// parseInterval reads the bracket notation used on the command line:
// "[start,end]" with "(" / ")" for excluded bounds, an omitted bound for
// infinity, and "{moment}" for a point.
func parseInterval(raw string) (timeline.Interval, error) {
	if strings.HasPrefix(raw, "{") && strings.HasSuffix(raw, "}") {
		moment, err := timeline.ParseUTC(strings.TrimSpace(raw[1 : len(raw)-1]))
		if err != nil {
			return timeline.Interval{}, err
		}
		return timeline.Point(moment), nil
	}

	if len(raw) < 3 {
		return timeline.Interval{}, errors.InvalidArgument(timeline.EntityInterval, "invalid interval notation "+raw)
	}

	opening, closing := raw[0], raw[len(raw)-1]
	if (opening != '[' && opening != '(') || (closing != ']' && closing != ')') {
		return timeline.Interval{}, errors.InvalidArgument(timeline.EntityInterval, "interval notation must be wrapped in brackets: "+raw)
	}

	parts := strings.SplitN(raw[1:len(raw)-1], ",", 2)
	if len(parts) != 2 {
		return timeline.Interval{}, errors.InvalidArgument(timeline.EntityInterval, "interval notation needs a comma between the bounds: "+raw)
	}

	var start, end *timeline.Instant
	var startIncluded, endIncluded *bool

	if startStr := strings.TrimSpace(parts[0]); startStr != "" {
		moment, err := timeline.ParseUTC(startStr)
		if err != nil {
			return timeline.Interval{}, err
		}
		included := opening == '['
		start, startIncluded = &moment, &included
	} else if opening == '[' {
		return timeline.Interval{}, errors.InvalidArgument(timeline.EntityInterval, "an infinite start cannot be included: "+raw)
	}

	if endStr := strings.TrimSpace(parts[1]); endStr != "" {
		moment, err := timeline.ParseUTC(endStr)
		if err != nil {
			return timeline.Interval{}, err
		}
		included := closing == ']'
		end, endIncluded = &moment, &included
	} else if closing == ']' {
		return timeline.Interval{}, errors.InvalidArgument(timeline.EntityInterval, "an infinite end cannot be included: "+raw)
	}

	return timeline.FromBoundaries(start, end, startIncluded, endIncluded)
}
