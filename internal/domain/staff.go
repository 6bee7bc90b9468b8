package domain

import "time"

// StaffProfile is a user with the staff role. Staff have no table of their
// own - profiles are derived from the user store at query time.
type StaffProfile struct {
	ID   int64
	Name string
}

// StaffUnavailability is a personal day off for one staff member
type StaffUnavailability struct {
	ID        int64
	StaffID   int64
	Date      time.Time
	Reason    *string
	CreatedAt time.Time
}

// StaffCompletionStats агрегаты по завершаемости записей сотрудника
type StaffCompletionStats struct {
	Completed    int // записей со статусом completed
	NonCancelled int // всех записей, кроме отмененных
}

// CompletionRate returns the completed share of non-cancelled appointments.
// Returns 0 when the staff member has no non-cancelled appointments.
func (s StaffCompletionStats) CompletionRate() float64 {
	if s.NonCancelled == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.NonCancelled)
}

// CustomerHistoryStats агрегаты по истории записей клиента
type CustomerHistoryStats struct {
	Total         int // всех записей за все время
	NoShows       int // со статусом no_show
	Cancellations int // со статусом cancelled
}

// NoShowRate returns the customer's historical no-show share
func (s CustomerHistoryStats) NoShowRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.NoShows) / float64(s.Total)
}

// CancellationRate returns the customer's historical cancellation share
func (s CustomerHistoryStats) CancellationRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Cancellations) / float64(s.Total)
}
