package recommend_time_slots

import (
	"sort"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// scoreSlot считает балл одного слота по уже собранным входам.
// Слот без свободных сотрудников получает 0 и помечается недоступным.
func scoreSlot(slot types.TimeString, availableStaff, bookings int) SlotScore {
	score := SlotScore{
		Time:           slot,
		Available:      availableStaff > 0,
		AvailableStaff: availableStaff,
		Bookings:       bookings,
	}

	if !score.Available {
		return score
	}

	// Предпочтительное дневное окно против просто рабочих часов
	if inMiddayWindow(slot) {
		score.Score += domain.SlotScoreMidday
	} else {
		score.Score += domain.SlotScoreBusinessHours
	}

	// Загруженность слота
	switch {
	case bookings == 0:
		score.Score += domain.SlotScoreEmpty
	case bookings <= domain.SlotQuietMaxBookings:
		score.Score += domain.SlotScoreQuiet
	}

	// Ровный час удобнее клиентам
	if slot.Minute() == 0 {
		score.Score += domain.SlotScoreOnTheHour
	}

	return score
}

// inMiddayWindow проверяет попадание в окно [MiddayWindowStart, MiddayWindowEnd)
func inMiddayWindow(slot types.TimeString) bool {
	return !slot.IsBefore(domain.MiddayWindowStart) && slot.IsBefore(domain.MiddayWindowEnd)
}

// rankSlots сортирует слоты: сначала все доступные по убыванию балла,
// затем недоступные; внутри групп порядок входа стабилен.
// Возвращает не больше limit.
func rankSlots(slots []SlotScore, limit int) []SlotScore {
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].Available != slots[j].Available {
			return slots[i].Available
		}
		return slots[i].Score > slots[j].Score
	})

	if len(slots) > limit {
		slots = slots[:limit]
	}
	return slots
}

// countFreeStaff считает сотрудников без отметки недоступности и без
// конфликтующей записи на это время
func countFreeStaff(
	staff []*domain.StaffProfile,
	unavailable map[int64]bool,
	appointments []*domain.Appointment,
	slot types.TimeString,
) int {
	free := 0
	for _, profile := range staff {
		if unavailable[profile.ID] {
			continue
		}
		if hasConflictAt(appointments, profile.ID, slot) {
			continue
		}
		free++
	}
	return free
}

func hasConflictAt(appointments []*domain.Appointment, staffID int64, t types.TimeString) bool {
	for _, appt := range appointments {
		if appt.AssignedTo(staffID) && appt.StartTime.Equal(t) {
			return true
		}
	}
	return false
}

// countBookingsAt считает записи, начинающиеся ровно в это время
func countBookingsAt(appointments []*domain.Appointment, t types.TimeString) int {
	count := 0
	for _, appt := range appointments {
		if appt.StartTime.Equal(t) {
			count++
		}
	}
	return count
}
