// internal/models/time_remaining.go
package models

import (
	"fmt"
	"time"
)

// TimeRemaining is the countdown attached to every advertise content read.
// It is computed at response time and never persisted.
type TimeRemaining struct {
	Expired           bool   `json:"expired"`
	Days              int64  `json:"days"`
	Hours             int64  `json:"hours"`
	Minutes           int64  `json:"minutes"`
	Seconds           int64  `json:"seconds"`
	TotalMilliseconds int64  `json:"totalMilliseconds"`
	Message           string `json:"message"`
}

// TimeRemainingAt decomposes the delta between now and end into flat
// day/hour/minute/second buckets. Pure duration arithmetic: a day is
// exactly 24 hours, with no calendar awareness. A delta of zero or less
// is expired.
func TimeRemainingAt(end, now time.Time) TimeRemaining {
	diff := end.Sub(now).Milliseconds()

	if diff <= 0 {
		return TimeRemaining{
			Expired: true,
			Message: "Offer expired",
		}
	}

	days := diff / (1000 * 60 * 60 * 24)
	hours := (diff % (1000 * 60 * 60 * 24)) / (1000 * 60 * 60)
	minutes := (diff % (1000 * 60 * 60)) / (1000 * 60)
	seconds := (diff % (1000 * 60)) / 1000

	return TimeRemaining{
		Days:              days,
		Hours:             hours,
		Minutes:           minutes,
		Seconds:           seconds,
		TotalMilliseconds: diff,
		Message:           fmt.Sprintf("%dd %dh %dm %ds remaining", days, hours, minutes, seconds),
	}
}

// ComputeTimeRemaining reads the clock at call time. Two calls made
// microseconds apart may disagree at a second boundary.
func ComputeTimeRemaining(end time.Time) TimeRemaining {
	return TimeRemainingAt(end, time.Now())
}
