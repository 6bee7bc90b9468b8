package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// checkSlotAvailable применяет правила доступности к уже загруженным данным.
// Порядок проверок тот же, что в проверке доступности: блэкаут, выходной,
// отсутствие бакета, заполненный бакет. Каждая проверка возвращает свою
// сентинельную ошибку.
func checkSlotAvailable(
	date time.Time,
	t types.TimeString,
	blackouts []*domain.BlackoutDate,
	buckets []*domain.TimeSlotCapacity,
	appointments []*domain.Appointment,
	closedWeekdays domain.ClosedWeekdays,
) error {
	for _, blackout := range blackouts {
		if blackout.Matches(date, t) {
			return ErrDateBlackedOut
		}
	}

	weekday := date.Weekday()

	if closedWeekdays.IsClosed(weekday) && !domain.HasBucketForWeekday(buckets, weekday) {
		return ErrClosedDay
	}

	bucket := domain.MatchBucket(buckets, weekday, t)
	if bucket == nil {
		return ErrOutsideBusinessHours
	}

	if domain.CountInBucket(appointments, bucket) >= bucket.MaxAppointments {
		return ErrCapacityFull
	}

	return nil
}
