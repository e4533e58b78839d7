// internal/models/time_remaining_test.go
package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeRemainingAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		end     time.Time
		expired bool
		days    int64
		hours   int64
		minutes int64
		seconds int64
		message string
	}{
		{
			name:    "future offer",
			end:     now.Add(2*24*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second),
			days:    2,
			hours:   3,
			minutes: 4,
			seconds: 5,
			message: "2d 3h 4m 5s remaining",
		},
		{
			name:    "past offer",
			end:     now.Add(-time.Hour),
			expired: true,
			message: "Offer expired",
		},
		{
			name:    "exactly now is expired",
			end:     now,
			expired: true,
			message: "Offer expired",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := TimeRemainingAt(tt.end, now)

			assert.Equal(t, tt.expired, tr.Expired)
			assert.Equal(t, tt.days, tr.Days)
			assert.Equal(t, tt.hours, tr.Hours)
			assert.Equal(t, tt.minutes, tr.Minutes)
			assert.Equal(t, tt.seconds, tr.Seconds)
			assert.Equal(t, tt.message, tr.Message)
		})
	}
}

func TestTimeRemainingUnderOneMinute(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tr := TimeRemainingAt(now.Add(42*time.Second), now)

	assert.False(t, tr.Expired)
	assert.Equal(t, int64(0), tr.Days)
	assert.Equal(t, int64(0), tr.Hours)
	assert.Equal(t, int64(0), tr.Minutes)
	assert.Equal(t, int64(42), tr.Seconds)
	assert.Equal(t, int64(42000), tr.TotalMilliseconds)
	assert.Equal(t, "0d 0h 0m 42s remaining", tr.Message)
}

// The bucket decomposition must recombine to the total, whatever the
// delta.
func TestTimeRemainingRecombines(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	deltas := []time.Duration{
		time.Second,
		61 * time.Second,
		90 * time.Minute,
		25 * time.Hour,
		700*time.Hour + 31*time.Minute + 7*time.Second,
	}

	for _, delta := range deltas {
		tr := TimeRemainingAt(now.Add(delta), now)

		recombined := tr.Days*86400 + tr.Hours*3600 + tr.Minutes*60 + tr.Seconds
		assert.Equal(t, tr.TotalMilliseconds/1000, recombined)
		assert.Equal(t, delta.Milliseconds(), tr.TotalMilliseconds)
	}
}

func TestTimeRemainingExpiredZeroesBuckets(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tr := TimeRemainingAt(now.Add(-time.Millisecond), now)

	assert.True(t, tr.Expired)
	assert.Zero(t, tr.Days)
	assert.Zero(t, tr.Hours)
	assert.Zero(t, tr.Minutes)
	assert.Zero(t, tr.Seconds)
	assert.Zero(t, tr.TotalMilliseconds)
}
