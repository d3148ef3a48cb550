package timeline_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/goto/chrono/core/timeline"
	"github.com/goto/chrono/internal/errors"
	"github.com/goto/chrono/internal/lib/zone"
)

func mustParse(t *testing.T, raw string) timeline.Instant {
	t.Helper()
	moment, err := timeline.ParseUTC(raw)
	assert.NoError(t, err)
	return moment
}

func TestInstantParseUTC(t *testing.T) {
	t.Run("accepts a naive string as UTC", func(t *testing.T) {
		moment := mustParse(t, "2026-01-20T10:36")
		assert.Equal(t, "2026-01-20T10:36:00Z", moment.UTCString())
	})
	t.Run("accepts a trailing Z", func(t *testing.T) {
		moment := mustParse(t, "2026-01-20T10:36:00Z")
		assert.Equal(t, "2026-01-20T10:36:00Z", moment.UTCString())
	})
	t.Run("accepts a zero offset", func(t *testing.T) {
		moment := mustParse(t, "2026-01-20T10:36:00+00:00")
		assert.Equal(t, "2026-01-20T10:36:00Z", moment.UTCString())
	})
	t.Run("accepts fractional seconds", func(t *testing.T) {
		moment := mustParse(t, "2026-01-20T10:36:00.250Z")
		assert.Equal(t, "2026-01-20T10:36:00.25Z", moment.UTCString())
	})
	t.Run("accepts a bare date", func(t *testing.T) {
		moment := mustParse(t, "2026-01-20")
		assert.Equal(t, "2026-01-20T00:00:00Z", moment.UTCString())
	})
	t.Run("rejects a non-zero offset and echoes the string", func(t *testing.T) {
		_, err := timeline.ParseUTC("2026-01-20T10:36:00+03:00")
		assert.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrInvalidArgument))
		assert.Contains(t, err.Error(), "2026-01-20T10:36:00+03:00")
	})
	t.Run("rejects a malformed string and echoes it", func(t *testing.T) {
		_, err := timeline.ParseUTC("not-a-timestamp")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not-a-timestamp")
	})
}

func TestInstant(t *testing.T) {
	t.Run("equality ignores the display zone", func(t *testing.T) {
		utcMoment := mustParse(t, "2024-06-01T12:00:00Z")
		shifted, err := utcMoment.InZone("America/New_York")
		assert.NoError(t, err)

		assert.True(t, utcMoment.Equal(shifted))
		assert.Equal(t, 0, utcMoment.Compare(shifted))
		assert.Equal(t, utcMoment.UTCString(), shifted.UTCString())
		assert.Equal(t, "America/New_York", shifted.Zone().Name())
	})
	t.Run("ordering works on the absolute moment", func(t *testing.T) {
		earlier := mustParse(t, "2024-06-01T12:00:00Z")
		later := mustParse(t, "2024-06-01T13:00:00Z")

		assert.True(t, earlier.Before(later))
		assert.True(t, later.After(earlier))
		assert.Equal(t, -1, earlier.Compare(later))
	})
	t.Run("shift and difference are inverse", func(t *testing.T) {
		moment := mustParse(t, "2024-06-01T12:00:00Z")
		shifted := moment.Add(90 * time.Minute)

		assert.Equal(t, 90*time.Minute, shifted.Sub(moment))
		assert.True(t, shifted.Add(-90*time.Minute).Equal(moment))
	})
	t.Run("shift keeps the recording zone", func(t *testing.T) {
		moment, err := mustParse(t, "2024-06-01T12:00:00Z").InZone("America/New_York")
		assert.NoError(t, err)

		shifted := moment.Add(time.Hour)
		assert.Equal(t, "America/New_York", shifted.Zone().Name())
	})
	t.Run("converting to an unknown zone fails", func(t *testing.T) {
		moment := mustParse(t, "2024-06-01T12:00:00Z")
		_, err := moment.InZone("Mars/Olympus")
		assert.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrInvalidArgument))
	})
	t.Run("renders the local form with the IANA name", func(t *testing.T) {
		moment := mustParse(t, "2024-06-01T12:00:00Z")
		assert.Equal(t, "2024-06-01T12:00:00+00:00, Etc/UTC", moment.String())
	})
	t.Run("ToUTC rebinds the display zone only", func(t *testing.T) {
		moment, err := mustParse(t, "2024-06-01T12:00:00Z").InZone("America/New_York")
		assert.NoError(t, err)

		back := moment.ToUTC()
		assert.Equal(t, "Etc/UTC", back.Zone().Name())
		assert.True(t, back.Equal(moment))
	})
}

func TestInstantNow(t *testing.T) {
	frozen := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Now records the source's local zone", func(t *testing.T) {
		local, err := zone.From("Asia/Jakarta")
		assert.NoError(t, err)
		src := zone.Fixed(frozen, local)

		moment, err := timeline.Now(src)
		assert.NoError(t, err)
		assert.Equal(t, "Asia/Jakarta", moment.Zone().Name())
		assert.Equal(t, "2024-06-01T12:00:00Z", moment.UTCString())
	})
	t.Run("Now surfaces a source failure as an environment error", func(t *testing.T) {
		src := zone.Fixed(frozen, zone.Zone{})
		_, err := timeline.Now(src)
		assert.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrInternalError))
	})
	t.Run("NowUTC records UTC", func(t *testing.T) {
		src := zone.Fixed(frozen, zone.Zone{})
		moment := timeline.NowUTC(src)
		assert.Equal(t, "Etc/UTC", moment.Zone().Name())
		assert.Equal(t, "2024-06-01T12:00:00Z", moment.UTCString())
	})
}
