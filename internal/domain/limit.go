package domain

import "time"

// UnlimitedBookings сигнальное значение "лимит отключен" для RemainingBookings
const UnlimitedBookings = -1

// BookingLimitSetting holds the daily per-customer booking limit.
// At most one record is current; when none exists or IsActive is false,
// the limit is treated as disabled (unbounded).
type BookingLimitSetting struct {
	ID                       int64
	DailyBookingLimitPerUser int
	IsActive                 bool
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// Enabled reports whether the limit should be enforced.
// A nil setting, an inactive record or a non-positive limit all disable it.
func (s *BookingLimitSetting) Enabled() bool {
	return s != nil && s.IsActive && s.DailyBookingLimitPerUser > 0
}
