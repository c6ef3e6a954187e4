package navmi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestTicksToTimeEpoch(t *testing.T) {
	var got = TicksToTime(0)

	assert.True(t, TickEpoch.Equal(got), "got %v", got)
	assert.Equal(t, "0001-01-01T00:00:00.000000", got.Format("2006-01-02T15:04:05.000000"))
}

func TestTicksToTime(t *testing.T) {
	tests := []struct {
		name     string
		ticks    int64
		expected time.Time
	}{
		{
			name:     "one microsecond",
			ticks:    10,
			expected: TickEpoch.Add(time.Microsecond),
		},
		{
			name:     "sub microsecond truncated",
			ticks:    19,
			expected: TickEpoch.Add(time.Microsecond),
		},
		{
			name:     "less than a microsecond",
			ticks:    9,
			expected: TickEpoch,
		},
		{
			name:     "one hour",
			ticks:    36_000_000_000,
			expected: TickEpoch.Add(time.Hour),
		},
		{
			name:     "start of 2020",
			ticks:    637134336000000000,
			expected: time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "start of 2020 plus 1.5 seconds and part of a microsecond",
			ticks:    637134336015000007,
			expected: time.Date(2020, time.January, 1, 0, 0, 1, 500_000_000, time.UTC),
		},
		{
			name:     "negative truncates toward zero",
			ticks:    -9,
			expected: TickEpoch,
		},
		{
			name:     "negative microsecond",
			ticks:    -10,
			expected: TickEpoch.Add(-time.Microsecond),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got = TicksToTime(tt.ticks)
			assert.True(t, tt.expected.Equal(got), "expected %v, got %v", tt.expected, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestTicksToTimeMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var a = rapid.Int64().Draw(t, "a")
		var b = rapid.Int64().Draw(t, "b")

		if a > b {
			a, b = b, a
		}

		var ta, tb = TicksToTime(a), TicksToTime(b)

		if ta.After(tb) {
			t.Fatalf("ticks %d -> %v is after ticks %d -> %v", a, ta, b, tb)
		}

		if !TicksToTime(a).Equal(ta) {
			t.Fatalf("ticks %d converted differently twice", a)
		}
	})
}

func TestTicksToInstantRange(t *testing.T) {
	var last, err = TicksToInstant(MaxTicks)
	require.NoError(t, err)
	assert.True(t, time.Date(9999, time.December, 31, 23, 59, 59, 999_999_000, time.UTC).Equal(last), "got %v", last)

	_, err = TicksToInstant(MaxTicks + 1)
	require.ErrorIs(t, err, ErrRange)

	_, err = TicksToInstant(-1)
	require.ErrorIs(t, err, ErrRange)

	var first, firstErr = TicksToInstant(0)
	require.NoError(t, firstErr)
	assert.True(t, TickEpoch.Equal(first))
}

func TestTicksToInstantMatchesTicksToTime(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var ticks = rapid.Int64Range(0, MaxTicks).Draw(t, "ticks")

		var got, err = TicksToInstant(ticks)
		if err != nil {
			t.Fatalf("ticks %d: %v", ticks, err)
		}

		if !got.Equal(TicksToTime(ticks)) {
			t.Fatalf("ticks %d: %v != %v", ticks, got, TicksToTime(ticks))
		}
	})
}
