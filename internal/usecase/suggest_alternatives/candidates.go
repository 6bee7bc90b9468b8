package suggest_alternatives

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// candidate кандидат в альтернативы с вычисленной занятостью бакета
type candidate struct {
	date        time.Time
	slot        types.TimeString
	available   int
	utilization float64
}

// collectDayCandidates перебирает сетку слотов на дату и оставляет кандидатов
// с занятостью бакета ниже порога. skipTime исключает запрошенное время
// на исходной дате; для следующих дней передается nil.
func collectDayCandidates(
	date time.Time,
	skipTime *types.TimeString,
	grid domain.SlotGrid,
	blackouts []*domain.BlackoutDate,
	buckets []*domain.TimeSlotCapacity,
	appointments []*domain.Appointment,
	closedWeekdays domain.ClosedWeekdays,
) ([]candidate, error) {
	slots, err := grid.Slots()
	if err != nil {
		return nil, err
	}

	weekday := date.Weekday()

	// Выходной без бакетов: на этой дате кандидатов нет
	if closedWeekdays.IsClosed(weekday) && !domain.HasBucketForWeekday(buckets, weekday) {
		return nil, nil
	}

	candidates := make([]candidate, 0)

	for _, slot := range slots {
		if skipTime != nil && slot.Equal(*skipTime) {
			continue
		}

		if blackoutBlocks(blackouts, date, slot) {
			continue
		}

		bucket := domain.MatchBucket(buckets, weekday, slot)
		if bucket == nil || bucket.MaxAppointments <= 0 {
			continue
		}

		count := domain.CountInBucket(appointments, bucket)
		utilization := float64(count) / float64(bucket.MaxAppointments)
		if utilization >= domain.AlternativeUtilizationCeiling {
			continue
		}

		candidates = append(candidates, candidate{
			date:        date,
			slot:        slot,
			available:   bucket.MaxAppointments - count,
			utilization: utilization,
		})
	}

	return candidates, nil
}

func blackoutBlocks(blackouts []*domain.BlackoutDate, date time.Time, t types.TimeString) bool {
	for _, blackout := range blackouts {
		if blackout.Matches(date, t) {
			return true
		}
	}
	return false
}

// rankCandidates сортирует кандидатов по возрастанию занятости; при равной
// занятости раньше идет более раннее время. Возвращает не больше limit.
func rankCandidates(candidates []candidate, limit int) []candidate {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].utilization != candidates[j].utilization {
			return candidates[i].utilization < candidates[j].utilization
		}
		return candidates[i].slot.IsBefore(candidates[j].slot)
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// describeOffset человекочитаемое описание сдвига альтернативы
// относительно запрошенной даты
func describeOffset(daysFromPreferred int) string {
	switch daysFromPreferred {
	case 0:
		return "same day, different time"
	case 1:
		return "next day"
	default:
		return fmt.Sprintf("in %d days", daysFromPreferred)
	}
}
