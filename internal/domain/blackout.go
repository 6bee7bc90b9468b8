package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// BlackoutDate blocks bookings on a specific date or on a recurring
// weekly rule. An absent time range blocks the entire day.
type BlackoutDate struct {
	ID        int64
	Date      *time.Time // set for one-off blackouts, nil for recurring rules
	Recurring bool
	Weekdays  []time.Weekday // weekday set for recurring rules
	StartTime *types.TimeString
	EndTime   *types.TimeString
	Reason    *string
	CreatedAt time.Time
}

// AppliesToWholeDay returns true if the blackout has no time range
func (b *BlackoutDate) AppliesToWholeDay() bool {
	return b.StartTime == nil || b.EndTime == nil
}

// MatchesDate reports whether the blackout covers the given calendar date.
// Recurring rules match by exact weekday equality.
func (b *BlackoutDate) MatchesDate(date time.Time) bool {
	if b.Recurring {
		weekday := date.Weekday()
		for _, wd := range b.Weekdays {
			if wd == weekday {
				return true
			}
		}
		return false
	}

	if b.Date == nil {
		return false
	}
	y1, m1, d1 := b.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Matches reports whether the blackout blocks the given date and time.
// A blackout without a time range blocks any time on a matching date;
// otherwise the time must fall inside [StartTime, EndTime).
func (b *BlackoutDate) Matches(date time.Time, t types.TimeString) bool {
	if !b.MatchesDate(date) {
		return false
	}
	if b.AppliesToWholeDay() {
		return true
	}
	return !t.IsBefore(*b.StartTime) && t.IsBefore(*b.EndTime)
}
