package zone

import (
	"time"

	"github.com/goto/chrono/internal/errors"
)

const EntityZone = "zone"

// utc is the process wide UTC zone identity, constructed once and shared.
var utc = Zone{name: "Etc/UTC", loc: time.UTC}

// Zone is a named IANA time zone. A fixed numeric offset without a name is
// not a valid Zone.
type Zone struct {
	name string
	loc  *time.Location
}

func UTC() Zone {
	return utc
}

func From(name string) (Zone, error) {
	if name == "" {
		return Zone{}, errors.InvalidArgument(EntityZone, "zone name is empty")
	}
	if name == "Local" {
		return Zone{}, errors.InvalidArgument(EntityZone, "zone name must be an IANA name, not Local")
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return Zone{}, errors.InvalidArgument(EntityZone, "unknown time zone "+name)
	}

	return Zone{name: name, loc: loc}, nil
}

func (z Zone) Name() string {
	return z.name
}

func (z Zone) Location() *time.Location {
	return z.loc
}

func (z Zone) IsZero() bool {
	return z.loc == nil
}

func (z Zone) String() string {
	return z.name
}
