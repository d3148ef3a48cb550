package timeset

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goto/chrono/core/timeline"
)

func TestParseInterval(t *testing.T) {
	t.Run("reads every bracket combination", func(t *testing.T) {
		for raw, kind := range map[string]timeline.Kind{
			"[2024-01-01,2024-01-02]": timeline.KindClosed,
			"[2024-01-01,2024-01-02)": timeline.KindClosedOpen,
			"(2024-01-01,2024-01-02]": timeline.KindOpenClosed,
			"(2024-01-01,2024-01-02)": timeline.KindOpen,
		} {
			iv, err := parseInterval(raw)
			assert.NoError(t, err, raw)
			assert.Equal(t, kind, iv.Kind(), raw)
		}
	})
	t.Run("an omitted bound means infinity", func(t *testing.T) {
		iv, err := parseInterval("[2024-01-01,)")
		assert.NoError(t, err)
		assert.Equal(t, timeline.KindRightClosed, iv.Kind())

		iv, err = parseInterval("(,2024-01-02]")
		assert.NoError(t, err)
		assert.Equal(t, timeline.KindLeftClosed, iv.Kind())

		iv, err = parseInterval("(,)")
		assert.NoError(t, err)
		assert.True(t, iv.IsTimeline())
	})
	t.Run("braces read a point", func(t *testing.T) {
		iv, err := parseInterval("{2024-01-01T12:00:00Z}")
		assert.NoError(t, err)
		assert.True(t, iv.IsPoint())
	})
	t.Run("tolerates spaces around the bounds", func(t *testing.T) {
		iv, err := parseInterval("[ 2024-01-01 , 2024-01-02 )")
		assert.NoError(t, err)
		assert.Equal(t, timeline.KindClosedOpen, iv.Kind())
	})
	t.Run("rejects an included infinite bound", func(t *testing.T) {
		_, err := parseInterval("[,2024-01-02]")
		assert.Error(t, err)

		_, err = parseInterval("[2024-01-01,]")
		assert.Error(t, err)
	})
	t.Run("rejects malformed notation", func(t *testing.T) {
		for _, raw := range []string{"", "[]", "2024-01-01,2024-01-02", "[2024-01-01 2024-01-02]", "[nope,2024-01-02]"} {
			_, err := parseInterval(raw)
			assert.Error(t, err, "raw %q", raw)
		}
	})
	t.Run("rejects a reversed range", func(t *testing.T) {
		_, err := parseInterval("[2024-01-02,2024-01-01]")
		assert.Error(t, err)
	})
}
