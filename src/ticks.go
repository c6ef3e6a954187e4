package navmi

import (
	"fmt"
	"time"
)

/*
 * Timestamps are stored as .NET style ticks: 100 nanosecond units
 * counted from 0001-01-01T00:00:00.
 */

const (
	TicksPerMicrosecond = 10

	// Last tick of 9999-12-31, the end of the producer's calendar.
	MaxTicks int64 = 3155378975999999999
)

// Seconds from the Unix epoch back to 0001-01-01T00:00:00 UTC.
var tickEpochUnix = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()

// TickEpoch is the instant represented by zero ticks.
var TickEpoch = time.Unix(tickEpochUnix, 0).UTC()

// TicksToTime converts ticks to a UTC time with microsecond resolution.
// Sub-microsecond ticks are truncated toward zero, never rounded.
// time.Time covers the whole int64 tick domain so this never fails.
func TicksToTime(ticks int64) time.Time {
	var micros = ticks / TicksPerMicrosecond

	var secs = micros / 1_000_000

	var rem = micros % 1_000_000

	// time.Unix normalises a negative remainder.
	return time.Unix(tickEpochUnix+secs, rem*1000).UTC()
}

// TicksToInstant is TicksToTime restricted to the calendar the files are
// written with, 0001-01-01 through 9999-12-31.
func TicksToInstant(ticks int64) (time.Time, error) {
	if ticks < 0 || ticks > MaxTicks {
		return time.Time{}, fmt.Errorf("%w: %d ticks", ErrRange, ticks)
	}

	return TicksToTime(ticks), nil
}
