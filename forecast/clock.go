package forecast

import (
	"log/slog"
	"time"

	"skycast.app/errors"
)

// LocalTimeLayout is the provider's local wall-clock timestamp format:
// no offset, no seconds.
const LocalTimeLayout = "2006-01-02T15:04"

// LocalDateLayout is the provider's daily date format.
const LocalDateLayout = "2006-01-02"

// pastTolerance is how far behind "now" an hourly entry may start and still
// count as the current hour.
const pastTolerance = 30 * time.Minute

// ResolveCurrentHourIndex finds the index in the hourly series that represents
// "now" for the given IANA timezone.
//
// It first tries an exact string match against now truncated down to the hour
// in that timezone. Failing that, it picks the entry with the smallest time
// difference inside the window [-30min, +inf). If nothing qualifies (the whole
// series is in the past) it falls back to index 0.
func ResolveCurrentHourIndex(times []string, timezone string, now time.Time) int {
	if len(times) == 0 {
		return 0
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		slog.Warn("unknown timezone, using UTC", "timezone", timezone, "error", err)
		loc = time.UTC
	}

	nowLocal := now.In(loc)
	nowLocal = time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), nowLocal.Hour(), 0, 0, 0, loc)
	target := nowLocal.Format(LocalTimeLayout)

	for i, ts := range times {
		if ts == target {
			return i
		}
	}

	// Both sides parsed as naive UTC instants so the comparison stays in the
	// provider's local frame.
	targetNaive, err := time.Parse(LocalTimeLayout, target)
	if err != nil {
		return 0
	}

	bestIndex := -1
	var bestDiff time.Duration
	for i, ts := range times {
		entry, err := time.Parse(LocalTimeLayout, ts)
		if err != nil {
			continue
		}
		diff := entry.Sub(targetNaive)
		if diff < -pastTolerance {
			continue
		}
		if bestIndex == -1 || diff < bestDiff {
			bestIndex = i
			bestDiff = diff
		}
	}

	if bestIndex == -1 {
		slog.Warn("no hourly entry near current time, falling back to first entry",
			"timezone", timezone, "target", target)
		return 0
	}
	return bestIndex
}

// EpochFromLocal reconstructs an absolute instant from a provider-local
// timestamp and the bundle's fixed UTC offset. The result is epoch
// milliseconds; all arithmetic is integer.
func EpochFromLocal(ts string, utcOffsetSeconds int) (int64, error) {
	naive, err := time.Parse(LocalTimeLayout, ts)
	if err != nil {
		return 0, errors.NewProviderParseError("invalid local timestamp", err)
	}
	return naive.UnixMilli() - int64(utcOffsetSeconds)*1000, nil
}

// EpochFromLocalDate returns the epoch milliseconds of a daily entry's local
// midnight, interpreted in the naive UTC frame the rest of the daily series
// uses.
func EpochFromLocalDate(date string) (int64, error) {
	naive, err := time.Parse(LocalDateLayout, date)
	if err != nil {
		return 0, errors.NewProviderParseError("invalid local date", err)
	}
	return naive.UnixMilli(), nil
}
