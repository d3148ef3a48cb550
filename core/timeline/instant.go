package timeline

import (
	"time"

	"github.com/goto/chrono/internal/errors"
	"github.com/goto/chrono/internal/lib/zone"
)

const EntityInstant = "instant"

// layouts accepted by ParseUTC. Offset carrying forms come first, naive
// forms are interpreted as UTC.
var (
	utcOffsetLayouts = []string{
		"2006-01-02T15:04:05.999999999Z07:00",
		"2006-01-02T15:04Z07:00",
	}
	utcNaiveLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04",
		"2006-01-02",
	}
)

// Instant is an absolute point on the timeline together with the named zone
// it was recorded in. Comparison and arithmetic work on the absolute moment,
// the zone only affects display.
type Instant struct {
	t    time.Time
	zone zone.Zone
}

func NewInstant(t time.Time, z zone.Zone) (Instant, error) {
	if z.IsZero() {
		return Instant{}, errors.InvalidArgument(EntityInstant, "zone is not set")
	}
	return Instant{t: t.In(z.Location()), zone: z}, nil
}

// ParseUTC parses an ISO-8601 date-time as a UTC instant. A naive string is
// interpreted as UTC, a trailing Z or a zero offset is accepted, any
// non-zero offset is rejected.
func ParseUTC(raw string) (Instant, error) {
	for _, layout := range utcOffsetLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		if _, offset := t.Zone(); offset != 0 {
			return Instant{}, errors.InvalidArgument(EntityInstant, "the timestamp "+raw+" is not in UTC")
		}
		return Instant{t: t.In(time.UTC), zone: zone.UTC()}, nil
	}

	for _, layout := range utcNaiveLayouts {
		t, err := time.ParseInLocation(layout, raw, time.UTC)
		if err != nil {
			continue
		}
		return Instant{t: t, zone: zone.UTC()}, nil
	}

	return Instant{}, errors.InvalidArgument(EntityInstant, "invalid ISO-8601 datetime string: "+raw)
}

// Now reads the current moment from the given source, recorded in the
// host's local zone. Source failures are environment errors.
func Now(src zone.Source) (Instant, error) {
	z, err := src.Local()
	if err != nil {
		return Instant{}, err
	}
	return Instant{t: src.Now().In(z.Location()), zone: z}, nil
}

// NowUTC reads the current moment from the given source, recorded in UTC.
func NowUTC(src zone.Source) Instant {
	return Instant{t: src.Now().In(time.UTC), zone: zone.UTC()}
}

func (i Instant) Time() time.Time {
	return i.t
}

func (i Instant) Zone() zone.Zone {
	return i.zone
}

func (i Instant) IsZero() bool {
	return i.zone.IsZero()
}

// Add shifts the instant by the given duration, keeping the recording zone.
func (i Instant) Add(d time.Duration) Instant {
	return Instant{t: i.t.Add(d), zone: i.zone}
}

// Sub returns the signed duration between two instants.
func (i Instant) Sub(other Instant) time.Duration {
	return i.t.Sub(other.t)
}

// InZone converts the instant to another named zone. The absolute moment is
// unchanged.
func (i Instant) InZone(name string) (Instant, error) {
	z, err := zone.From(name)
	if err != nil {
		return Instant{}, err
	}
	return Instant{t: i.t.In(z.Location()), zone: z}, nil
}

func (i Instant) ToUTC() Instant {
	return Instant{t: i.t.In(time.UTC), zone: zone.UTC()}
}

// Equal compares the absolute moments; the display zones do not take part.
func (i Instant) Equal(other Instant) bool {
	return i.t.Equal(other.t)
}

func (i Instant) Before(other Instant) bool {
	return i.t.Before(other.t)
}

func (i Instant) After(other Instant) bool {
	return i.t.After(other.t)
}

func (i Instant) Compare(other Instant) int {
	return i.t.Compare(other.t)
}

// UTCString renders the instant in the canonical UTC form: ISO-8601 with no
// offset, terminated by Z.
func (i Instant) UTCString() string {
	return i.t.In(time.UTC).Format("2006-01-02T15:04:05.999999999") + "Z"
}

// String renders the instant in the zone it was recorded in, alongside the
// zone's IANA name.
func (i Instant) String() string {
	return i.t.Format("2006-01-02T15:04:05.999999999-07:00") + ", " + i.zone.Name()
}
