package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// SlotGrid описывает дневную сетку слотов: от начала рабочего дня до конца
// с фиксированным шагом. Последний слот начинается не позже EndTime - Step.
type SlotGrid struct {
	StartTime   types.TimeString
	EndTime     types.TimeString
	StepMinutes int
}

// DefaultSlotGrid возвращает сетку по умолчанию (09:00-17:00, шаг 30 минут)
func DefaultSlotGrid() SlotGrid {
	return SlotGrid{
		StartTime:   DefaultDayStart,
		EndTime:     DefaultDayEnd,
		StepMinutes: DefaultSlotStepMinutes,
	}
}

// Slots генерирует все времена начала слотов в сетке.
// Слот включается, только если он целиком помещается до EndTime.
func (g SlotGrid) Slots() ([]types.TimeString, error) {
	if err := g.StartTime.Validate(); err != nil {
		return nil, err
	}
	if err := g.EndTime.Validate(); err != nil {
		return nil, err
	}

	slots := make([]types.TimeString, 0)
	current := g.StartTime

	for current.IsBefore(g.EndTime) {
		slotEnd, err := current.AddMinutes(g.StepMinutes)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(g.EndTime) {
			break
		}

		slots = append(slots, current)
		current = slotEnd
	}

	return slots, nil
}

// ClosedWeekdays дни недели, в которые бизнес не работает
type ClosedWeekdays map[time.Weekday]bool

// DefaultClosedWeekdays возвращает выходные по умолчанию (суббота и воскресенье)
func DefaultClosedWeekdays() ClosedWeekdays {
	return ClosedWeekdays{
		time.Saturday: true,
		time.Sunday:   true,
	}
}

// IsClosed reports whether the business is configured closed on the weekday
func (c ClosedWeekdays) IsClosed(weekday time.Weekday) bool {
	return c[weekday]
}
