package recommend_time_slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модель запроса рекомендаций по временным слотам
type Request struct {
	Date time.Time // Дата, на которую подбираются слоты
}

// SlotScore оценка одного временного слота
type SlotScore struct {
	Time           types.TimeString // Время начала слота
	Score          int              // Итоговый балл, 0 для недоступного слота
	Available      bool             // Есть ли хотя бы один свободный сотрудник
	AvailableStaff int              // Сколько сотрудников свободно в это время
	Bookings       int              // Существующих записей на это время
}

// Response модель ответа: не больше domain.MaxSlotRecommendations слотов,
// недоступные всегда после доступных
type Response struct {
	Slots []SlotScore
}
