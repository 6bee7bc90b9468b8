package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// TimeSlotCapacity limits the number of concurrent appointments inside a
// configured time bucket. A nil Weekday applies the bucket to every weekday.
// Buckets for the same weekday must not share an identical (start, end) pair;
// the schedule service enforces that on create.
type TimeSlotCapacity struct {
	ID              int64
	Weekday         *time.Weekday // nil = all weekdays
	StartTime       types.TimeString
	EndTime         types.TimeString
	MaxAppointments int
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AppliesToWeekday reports whether the bucket applies on the given weekday.
// Matching is exact weekday equality.
func (c *TimeSlotCapacity) AppliesToWeekday(weekday time.Weekday) bool {
	return c.Weekday == nil || *c.Weekday == weekday
}

// IsWeekdaySpecific returns true if the bucket is bound to one weekday
func (c *TimeSlotCapacity) IsWeekdaySpecific() bool {
	return c.Weekday != nil
}

// ContainsTime reports whether t falls inside the bucket's [start, end) range
func (c *TimeSlotCapacity) ContainsTime(t types.TimeString) bool {
	return !t.IsBefore(c.StartTime) && t.IsBefore(c.EndTime)
}

// MatchBucket finds the active capacity bucket covering the given weekday and
// time. An explicit weekday bucket takes precedence over an all-weekdays one;
// returns nil when no bucket matches.
func MatchBucket(buckets []*TimeSlotCapacity, weekday time.Weekday, t types.TimeString) *TimeSlotCapacity {
	var fallback *TimeSlotCapacity

	for _, bucket := range buckets {
		if !bucket.Active || !bucket.AppliesToWeekday(weekday) || !bucket.ContainsTime(t) {
			continue
		}
		if bucket.IsWeekdaySpecific() {
			return bucket
		}
		if fallback == nil {
			fallback = bucket
		}
	}

	return fallback
}

// HasBucketForWeekday reports whether any active bucket covers the weekday,
// regardless of time
func HasBucketForWeekday(buckets []*TimeSlotCapacity, weekday time.Weekday) bool {
	for _, bucket := range buckets {
		if bucket.Active && bucket.AppliesToWeekday(weekday) {
			return true
		}
	}
	return false
}

// CountInBucket counts appointments on the bucket's date whose start time
// falls inside the bucket and whose status still occupies capacity
func CountInBucket(appointments []*Appointment, bucket *TimeSlotCapacity) int {
	count := 0
	for _, appt := range appointments {
		if appt.OccupiesCapacity() && bucket.ContainsTime(appt.StartTime) {
			count++
		}
	}
	return count
}
