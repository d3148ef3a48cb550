package zone

import (
	"time"

	"github.com/goto/chrono/internal/errors"
)

// Source provides the wall clock and the zone the host records time in.
// Failures are environment errors: they mean the host is misconfigured,
// not that a caller passed bad input.
type Source interface {
	Now() time.Time
	Local() (Zone, error)
}

type systemSource struct{}

// System reads the clock and local zone from the operating system.
func System() Source {
	return systemSource{}
}

func (systemSource) Now() time.Time {
	return time.Now()
}

func (systemSource) Local() (Zone, error) {
	name := time.Local.String()
	if name == "" || name == "Local" {
		return Zone{}, errors.InternalError(EntityZone, "unable to determine the local time zone name", nil)
	}
	if name == "UTC" {
		return utc, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return Zone{}, errors.InternalError(EntityZone, "unable to resolve the local time zone "+name, err)
	}

	return Zone{name: name, loc: loc}, nil
}

type fixedSource struct {
	now  time.Time
	zone Zone
}

// Fixed returns a source frozen at the given moment and zone, for tests and
// reproducible runs.
func Fixed(now time.Time, z Zone) Source {
	return fixedSource{now: now, zone: z}
}

func (f fixedSource) Now() time.Time {
	return f.now
}

func (f fixedSource) Local() (Zone, error) {
	if f.zone.IsZero() {
		return Zone{}, errors.InternalError(EntityZone, "no zone configured for fixed source", nil)
	}
	return f.zone, nil
}
