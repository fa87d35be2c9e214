package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsUnknownZone(t *testing.T) {
	_, err := New("Nowhere/Invalid")
	assert.Error(t, err)
}

func TestAtConvertsIntoCivilZone(t *testing.T) {
	ck, err := New("America/Los_Angeles")
	require.NoError(t, err)

	// Winter (PST, UTC-8): late UTC evening is still the previous local day.
	winter := ck.At(time.Date(2026, 1, 15, 1, 30, 0, 0, time.UTC))
	assert.Equal(t, "2026-01-14", winter.Day)
	assert.Equal(t, 17, winter.Hour)

	// Summer (PDT, UTC-7): the DST shift must be reflected.
	summer := ck.At(time.Date(2026, 7, 15, 1, 30, 0, 0, time.UTC))
	assert.Equal(t, "2026-07-14", summer.Day)
	assert.Equal(t, 18, summer.Hour)
}

func TestActiveWindowBoundaries(t *testing.T) {
	cases := map[int]bool{
		0: false, 5: false, 6: true, 12: true, 22: true, 23: false,
	}
	for hour, want := range cases {
		snap := Snapshot{Hour: hour}
		assert.Equal(t, want, snap.ActiveWindow(), "hour %d", hour)
	}
}
