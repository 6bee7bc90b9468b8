package check_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// resolveAvailability применяет правила доступности к уже загруженным данным.
// Порядок проверок фиксированный, первая сработавшая дает причину отказа:
// блэкаут, выходной день, отсутствие бакета, заполненный бакет.
func resolveAvailability(
	date time.Time,
	t types.TimeString,
	blackouts []*domain.BlackoutDate,
	buckets []*domain.TimeSlotCapacity,
	appointments []*domain.Appointment,
	closedWeekdays domain.ClosedWeekdays,
) (bool, *Reason) {
	// 1. Блэкаут: точная дата или повторяющееся правило по дню недели
	for _, blackout := range blackouts {
		if blackout.Matches(date, t) {
			return false, &Reason{
				Kind:    ReasonBlackout,
				Message: blackoutMessage(blackout),
			}
		}
	}

	weekday := date.Weekday()

	// 2. Выходной: день закрыт и ни один бакет его не покрывает
	if closedWeekdays.IsClosed(weekday) && !domain.HasBucketForWeekday(buckets, weekday) {
		return false, &Reason{
			Kind:    ReasonClosed,
			Message: fmt.Sprintf("business is closed on %s", weekday),
		}
	}

	// 3. Бакет вместимости: явный день недели приоритетнее правила "все дни"
	bucket := domain.MatchBucket(buckets, weekday, t)
	if bucket == nil {
		return false, &Reason{
			Kind:    ReasonDefault,
			Message: "outside business hours",
		}
	}

	// 4. Заполненность бакета: считаем только записи, занимающие вместимость
	count := domain.CountInBucket(appointments, bucket)
	if count >= bucket.MaxAppointments {
		return false, &Reason{
			Kind:    ReasonCapacity,
			Message: fmt.Sprintf("time slot is fully booked (%d of %d)", count, bucket.MaxAppointments),
		}
	}

	return true, nil
}

func blackoutMessage(blackout *domain.BlackoutDate) string {
	if blackout.Reason != nil && *blackout.Reason != "" {
		return fmt.Sprintf("date is blocked: %s", *blackout.Reason)
	}
	return "date is blocked by a blackout rule"
}
