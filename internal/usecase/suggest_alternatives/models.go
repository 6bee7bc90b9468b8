package suggest_alternatives

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модель запроса подбора альтернативных слотов
type Request struct {
	PreferredDate time.Time        // Запрошенная дата
	PreferredTime types.TimeString // Запрошенное время, исключается из кандидатов
	DaysAhead     int              // Горизонт поиска в днях, 0 = значение по умолчанию
}

// Alternative альтернативный слот для записи
type Alternative struct {
	Date              time.Time        // Дата слота
	Time              types.TimeString // Время начала слота
	AvailableCapacity int              // Свободных мест в бакете
	Description       string           // Короткое описание: "same day, different time" и т.п.
}

// Response модель ответа со списком альтернатив, не больше
// domain.MaxAlternatives, отсортированных по возрастанию занятости
type Response struct {
	Alternatives []Alternative
}
