package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCurrentHourIndex_ExactMatch(t *testing.T) {
	times := []string{"2024-01-01T12:00", "2024-01-01T13:00"}
	now := time.Date(2024, 1, 1, 12, 34, 56, 0, time.UTC)

	index := ResolveCurrentHourIndex(times, "UTC", now)

	assert.Equal(t, 0, index)
}

func TestResolveCurrentHourIndex_ExactMatchInNamedTimezone(t *testing.T) {
	// 10:00 UTC is 12:00 in Asia/Jerusalem (UTC+2 in winter).
	times := []string{"2024-01-15T11:00", "2024-01-15T12:00", "2024-01-15T13:00"}
	now := time.Date(2024, 1, 15, 10, 5, 0, 0, time.UTC)

	index := ResolveCurrentHourIndex(times, "Asia/Jerusalem", now)

	assert.Equal(t, 1, index)
}

func TestResolveCurrentHourIndex_NearestWithinWindow(t *testing.T) {
	// No exact match: 11:45 started 15 minutes ago and beats the hour ahead.
	times := []string{"2024-01-01T11:00", "2024-01-01T11:45", "2024-01-01T13:00"}
	now := time.Date(2024, 1, 1, 12, 10, 0, 0, time.UTC)

	index := ResolveCurrentHourIndex(times, "UTC", now)

	assert.Equal(t, 1, index)
}

func TestResolveCurrentHourIndex_FutureEntryWins(t *testing.T) {
	// Entries more than 30 minutes in the past are excluded, so the earliest
	// future entry is chosen.
	times := []string{"2024-01-01T10:00", "2024-01-01T14:00", "2024-01-01T15:00"}
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	index := ResolveCurrentHourIndex(times, "UTC", now)

	assert.Equal(t, 1, index)
}

func TestResolveCurrentHourIndex_AllPastFallsBackToZero(t *testing.T) {
	times := []string{"2024-01-01T06:00", "2024-01-01T07:00", "2024-01-01T08:00"}
	now := time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC)

	index := ResolveCurrentHourIndex(times, "UTC", now)

	assert.Equal(t, 0, index)
}

func TestResolveCurrentHourIndex_EmptySeries(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, ResolveCurrentHourIndex(nil, "UTC", now))
}

func TestResolveCurrentHourIndex_UnknownTimezoneUsesUTC(t *testing.T) {
	times := []string{"2024-01-01T12:00"}
	now := time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC)

	index := ResolveCurrentHourIndex(times, "Not/AZone", now)

	assert.Equal(t, 0, index)
}

func TestEpochFromLocal(t *testing.T) {
	// Local noon at UTC+3 is 09:00 UTC.
	epoch, err := EpochFromLocal("2024-01-01T12:00", 10800)

	require.NoError(t, err)
	expected := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC).UnixMilli()
	assert.Equal(t, expected, epoch)
}

func TestEpochFromLocal_NegativeOffset(t *testing.T) {
	// Local noon at UTC-5 is 17:00 UTC.
	epoch, err := EpochFromLocal("2024-06-15T12:00", -18000)

	require.NoError(t, err)
	expected := time.Date(2024, 6, 15, 17, 0, 0, 0, time.UTC).UnixMilli()
	assert.Equal(t, expected, epoch)
}

func TestEpochFromLocal_InvalidTimestamp(t *testing.T) {
	_, err := EpochFromLocal("not-a-timestamp", 0)

	assert.Error(t, err)
}

func TestEpochFromLocalDate(t *testing.T) {
	epoch, err := EpochFromLocalDate("2024-03-10")

	require.NoError(t, err)
	expected := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC).UnixMilli()
	assert.Equal(t, expected, epoch)
}
