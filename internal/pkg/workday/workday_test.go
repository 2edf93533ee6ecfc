package workday

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyClockIn(t *testing.T) {
	cases := []struct {
		clockTime string
		workStart string
		late      bool
		lateMins  int
	}{
		{"08:00", "08:00", false, 0},
		{"08:01", "08:00", true, 1},
		{"07:55", "08:00", false, 0},
		{"09:30", "08:00", true, 90},
		{"00:00", "08:00", false, 0},
	}
	for _, c := range cases {
		got, err := ClassifyClockIn(c.clockTime, c.workStart)
		require.NoError(t, err)
		assert.Equal(t, c.late, got.Late, "clock-in %s vs %s", c.clockTime, c.workStart)
		assert.Equal(t, c.lateMins, got.LateMinutes)
	}
}

func TestClassifyClockOut(t *testing.T) {
	cases := []struct {
		clockTime string
		workEnd   string
		early     bool
		earlyMins int
	}{
		{"17:00", "17:00", false, 0},
		{"16:59", "17:00", true, 1},
		{"17:30", "17:00", false, 0},
		{"14:00", "17:00", true, 180},
	}
	for _, c := range cases {
		got, err := ClassifyClockOut(c.clockTime, c.workEnd)
		require.NoError(t, err)
		assert.Equal(t, c.early, got.Early, "clock-out %s vs %s", c.clockTime, c.workEnd)
		assert.Equal(t, c.earlyMins, got.EarlyMinutes)
	}
}

func TestClassifyRejectsMalformedTimes(t *testing.T) {
	_, err := ClassifyClockIn("8am", "08:00")
	assert.Error(t, err)

	_, err = ClassifyClockIn("08:00", "25:00")
	assert.Error(t, err)

	_, err = ClassifyClockOut("", "17:00")
	assert.Error(t, err)
}

func TestMinutesOfDay(t *testing.T) {
	mins, err := MinutesOfDay("08:15")
	require.NoError(t, err)
	assert.Equal(t, 495, mins)

	_, err = MinutesOfDay("08:60")
	assert.Error(t, err)
}

func TestIsValidTime(t *testing.T) {
	assert.True(t, IsValidTime("00:00"))
	assert.True(t, IsValidTime("23:59"))
	assert.False(t, IsValidTime("24:00"))
	assert.False(t, IsValidTime("0800"))
}
